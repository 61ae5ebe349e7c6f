// Package export renders the logo without a live host: a high resolution
// still of the petals, a numbered PNG frame sequence of the animation, and
// an animated GIF.
//
// All exports run the sequencer against a deterministic frame clock, so the
// same config always produces the same pixels.
package export
