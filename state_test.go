package logo

import "testing"

func TestStateString(t *testing.T) {
	tests := []struct {
		s    State
		want string
	}{
		{Axes, "axes"},
		{Logo, "logo"},
		{Fade, "fade"},
		{Spin, "spin"},
		{State(9), "State(9)"},
		{State(-1), "State(-1)"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", int(tt.s), got, tt.want)
		}
	}
}

func TestStateNext(t *testing.T) {
	want := []State{Logo, Fade, Spin, Spin}
	for i, s := range []State{Axes, Logo, Fade, Spin} {
		if got := s.next(); got != want[i] {
			t.Errorf("%v.next() = %v, want %v", s, got, want[i])
		}
	}
	if !Spin.Terminal() || Fade.Terminal() {
		t.Error("only Spin is terminal")
	}
}
