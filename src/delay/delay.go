// Package delay provides the busy-wait pacing between LED steps. There
// is no timer peripheral on the hello SoC, so pacing is a counted spin
// loop: wall time per count depends entirely on the core clock.
package delay

// Cell is one mutable 32-bit counter slot. The spin loop reloads the
// remaining count through a Cell on every pass so the loop survives the
// optimizer; on metal the cell has volatile access semantics.
type Cell interface {
	Get() uint32
	Set(v uint32)
}

// Spin burns n counter decrements and returns. Spin(0) returns at once.
// Callers share one package-owned counter cell, so Spin never allocates;
// it is not safe for concurrent use, and the firmware's single flow of
// control never needs it to be.
func Spin(n uint32) {
	SpinCell(sharedCell(), n)
}

// SpinCell runs the countdown against an explicit cell.
func SpinCell(c Cell, n uint32) {
	c.Set(n)
	for c.Get() > 0 {
		c.Set(c.Get() - 1)
	}
}
