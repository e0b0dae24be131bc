package delay

import "testing"

// countingCell records every value stored so tests can watch the
// countdown happen decrement by decrement.
type countingCell struct {
	v    uint32
	sets []uint32
	gets int
}

func (c *countingCell) Get() uint32 {
	c.gets++
	return c.v
}

func (c *countingCell) Set(v uint32) {
	c.v = v
	c.sets = append(c.sets, v)
}

func TestSpinCellCountsDownByOnes(t *testing.T) {
	c := &countingCell{}
	SpinCell(c, 5)
	want := []uint32{5, 4, 3, 2, 1, 0}
	if len(c.sets) != len(want) {
		t.Fatalf("recorded %d stores, want %d: %v", len(c.sets), len(want), c.sets)
	}
	for i, v := range want {
		if c.sets[i] != v {
			t.Errorf("store %d was %d, want %d", i, c.sets[i], v)
		}
	}
	if c.v != 0 {
		t.Errorf("cell left at %d, want 0", c.v)
	}
}

func TestSpinCellZero(t *testing.T) {
	c := &countingCell{}
	SpinCell(c, 0)
	// The count is loaded, checked once, and the body never runs.
	if len(c.sets) != 1 || c.sets[0] != 0 {
		t.Errorf("stores were %v, want just the initial 0", c.sets)
	}
	if c.gets != 1 {
		t.Errorf("cell read %d times, want 1", c.gets)
	}
}

func TestSpinTerminates(t *testing.T) {
	// The exported entry point with the shared cell.
	Spin(0)
	Spin(1000)
}

func TestSpinDoesNotAllocate(t *testing.T) {
	// Step spins once per LED step forever; a per-call allocation here
	// would mean allocating in the firmware's steady-state loop.
	if avg := testing.AllocsPerRun(200, func() { Spin(3) }); avg != 0 {
		t.Errorf("Spin allocates %.1f objects per call, want 0", avg)
	}
}
