package logo

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
)

// ErrUnknownRole is returned when a Role does not name a palette entry.
var ErrUnknownRole = errors.New("logo: unknown palette role")

// Role names one entry of a Palette.
type Role string

// Palette roles.
const (
	RoleBackground    Role = "background"
	RoleAccent        Role = "accent"
	RoleAccentLight   Role = "accentLight"
	RoleAccentDark    Role = "accentDark"
	RoleTextPrimary   Role = "textPrimary"
	RoleTextSecondary Role = "textSecondary"

	// RoleNone resolves to transparent. Useful as a background for exports.
	RoleNone Role = "none"
)

// Palette holds the brand colors as hex strings ("#rrggbb", "#rgb",
// optionally with alpha).
type Palette struct {
	Background    string `yaml:"background"`
	Accent        string `yaml:"accent"`
	AccentLight   string `yaml:"accentLight"`
	AccentDark    string `yaml:"accentDark"`
	TextPrimary   string `yaml:"textPrimary"`
	TextSecondary string `yaml:"textSecondary"`
}

// DefaultPalette returns the site theme.
func DefaultPalette() Palette {
	return Palette{
		Background:    "#1652df",
		Accent:        "#1eb9c2",
		AccentLight:   "#ff9b8a",
		AccentDark:    "#698ad6",
		TextPrimary:   "#ffffff",
		TextSecondary: "#bbbbbb",
	}
}

// Hex returns the hex string stored for role.
func (p Palette) Hex(role Role) (string, error) {
	switch role {
	case RoleBackground:
		return p.Background, nil
	case RoleAccent:
		return p.Accent, nil
	case RoleAccentLight:
		return p.AccentLight, nil
	case RoleAccentDark:
		return p.AccentDark, nil
	case RoleTextPrimary:
		return p.TextPrimary, nil
	case RoleTextSecondary:
		return p.TextSecondary, nil
	case RoleNone:
		return "#00000000", nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRole, string(role))
}

// Color resolves role to a color. Unknown roles and malformed hex strings
// are errors.
func (p Palette) Color(role Role) (gg.RGBA, error) {
	hex, err := p.Hex(role)
	if err != nil {
		return gg.RGBA{}, err
	}
	if err := checkHex(hex); err != nil {
		return gg.RGBA{}, fmt.Errorf("logo: palette %s: %w", role, err)
	}
	return gg.Hex(hex), nil
}

// MustColor is like Color but returns transparent on error. Only use it on
// palettes that passed Validate.
func (p Palette) MustColor(role Role) gg.RGBA {
	c, _ := p.Color(role)
	return c
}

// Roles returns the six palette roles in declaration order.
func Roles() []Role {
	return []Role{RoleBackground, RoleAccent, RoleAccentLight, RoleAccentDark, RoleTextPrimary, RoleTextSecondary}
}

// Validate checks that every entry is a well-formed hex color.
func (p Palette) Validate() error {
	for _, role := range Roles() {
		if _, err := p.Color(role); err != nil {
			return err
		}
	}
	return nil
}

// checkHex accepts RGB, RGBA, RRGGBB and RRGGBBAA with an optional '#'.
func checkHex(s string) error {
	h := strings.TrimPrefix(s, "#")
	switch len(h) {
	case 3, 4, 6, 8:
	default:
		return fmt.Errorf("invalid hex color %q", s)
	}
	if _, err := strconv.ParseUint(h, 16, 32); err != nil {
		return fmt.Errorf("invalid hex color %q", s)
	}
	return nil
}

// withAlpha returns c with its alpha replaced.
func withAlpha(c gg.RGBA, a float64) gg.RGBA {
	c.A = a
	return c
}
