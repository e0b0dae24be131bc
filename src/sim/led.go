package sim

// LED is the 4-bit LED latch. The history keeps raw written values so
// checks can tell a properly masked write from a lucky one; the pins
// themselves only ever show the low nibble.
type LED struct {
	value  uint32
	writes []uint32
}

func (l *LED) write(v uint32) {
	l.value = v
	l.writes = append(l.writes, v)
}

// Pins reports the nibble currently driving LED3..LED0.
func (l *LED) Pins() uint8 {
	return uint8(l.value & 0x0F)
}

// History returns every value written to the latch, oldest first.
func (l *LED) History() []uint32 {
	return l.writes
}
