// Package logo draws the Propel Tutoring brand mark.
//
// # Overview
//
// The mark is a rose curve whose radius is cos²(3θ/7), traced in six petals.
// The package has two parts:
//
//   - Curve engine: [Radius], [PointAt], [PetalBound], [Petals] and
//     [PetalSamples]. Pure functions with no state.
//   - Sequencer: [Sequencer] animates the mark on a [Surface], one call to
//     [Sequencer.Draw] per frame, moving through [Axes], [Logo], [Fade] and
//     [Spin].
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/gg"
//		"github.com/propeltutoring/logo"
//	)
//
//	dc := gg.NewContext(480, 400)
//	seq := logo.NewSequencer(logo.DefaultConfig())
//	defer seq.Close()
//
//	clock := logo.NewFrameClock(30)
//	for range 600 {
//		seq.Draw(dc, clock.Elapsed())
//		clock.Tick()
//	}
//	dc.SavePNG("spin.png")
//
// # Hosts
//
// The sequencer never owns a frame loop. Hosts drive it:
//
//   - export: still PNG, PNG frame sequences and animated GIF
//   - term: terminal preview built on tcell
//   - integration/window: GPU window preview built on gogpu
//
// # Coordinate System
//
// Same as gg: origin at top-left, X grows right, Y grows down, angles in
// radians. Curve points are relative to the canvas center.
package logo
