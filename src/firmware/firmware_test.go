package firmware

import (
	"testing"

	"artyhello/src/hardware/arty"
)

// boardFake records the full bus access sequence so ordering between
// the banner and the first LED write can be checked.
type boardFake struct {
	uartBytes []byte
	ledWrites []uint32
	order     []byte // 'u' or 'l' per write, in bus order
}

func (b *boardFake) Read32(off uintptr) uint32 {
	// UART status: always idle.
	return 0
}

func (b *boardFake) Write32(off uintptr, v uint32) {
	switch off {
	case arty.UARTDataOffset:
		b.uartBytes = append(b.uartBytes, byte(v))
		b.order = append(b.order, 'u')
	case arty.LEDOffset:
		b.ledWrites = append(b.ledWrites, v)
		b.order = append(b.order, 'l')
	}
}

// newTestDriver wires the driver to the fake and replaces the real spin
// loop with a recorder.
func newTestDriver(b *boardFake) (*Driver, *[]uint32) {
	d := New(arty.Bind(b))
	spins := &[]uint32{}
	d.spin = func(n uint32) { *spins = append(*spins, n) }
	return d, spins
}

func TestGreetSendsBannerBytes(t *testing.T) {
	b := &boardFake{}
	d, _ := newTestDriver(b)
	d.Greet()
	if string(b.uartBytes) != Greeting {
		t.Errorf("sent %q, want %q", b.uartBytes, Greeting)
	}
	if len(b.ledWrites) != 0 {
		t.Errorf("Greet touched the LEDs: %v", b.ledWrites)
	}
}

func TestStepMasksToLowNibble(t *testing.T) {
	b := &boardFake{}
	d, spins := newTestDriver(b)
	for i := 0; i < 18; i++ {
		d.Step()
	}
	if len(b.ledWrites) != 18 {
		t.Fatalf("18 steps made %d LED writes", len(b.ledWrites))
	}
	for i, v := range b.ledWrites {
		if want := uint32(i) & 0x0F; v != want {
			t.Errorf("step %d wrote %#x, want %#x", i, v, want)
		}
	}
	// Steps 16 and 17 prove the wrap back to 0, 1.
	if b.ledWrites[16] != 0 || b.ledWrites[17] != 1 {
		t.Errorf("nibble did not wrap: %v", b.ledWrites[16:])
	}
	if len(*spins) != 18 {
		t.Errorf("18 steps spun %d times", len(*spins))
	}
}

func TestStepUsesConfiguredSpin(t *testing.T) {
	b := &boardFake{}
	d, spins := newTestDriver(b)
	if d.Spin != StepSpin {
		t.Errorf("default spin is %d, want %d", d.Spin, StepSpin)
	}
	d.Spin = 42
	d.Step()
	if len(*spins) != 1 || (*spins)[0] != 42 {
		t.Errorf("spins were %v, want [42]", *spins)
	}
}

func TestRunNBannerBeforeLEDs(t *testing.T) {
	b := &boardFake{}
	d, _ := newTestDriver(b)
	d.RunN(3)

	if string(b.uartBytes) != Greeting {
		t.Errorf("sent %q, want %q", b.uartBytes, Greeting)
	}
	if len(b.ledWrites) != 3 {
		t.Errorf("3 steps made %d LED writes", len(b.ledWrites))
	}
	// Every UART byte lands before the first LED write.
	sawLED := false
	for _, k := range b.order {
		if k == 'l' {
			sawLED = true
		}
		if k == 'u' && sawLED {
			t.Fatalf("UART write after an LED write: %q", b.order)
		}
	}
}

func TestRunNZeroStepsStillGreets(t *testing.T) {
	b := &boardFake{}
	d, _ := newTestDriver(b)
	d.RunN(0)
	if string(b.uartBytes) != Greeting {
		t.Errorf("sent %q, want %q", b.uartBytes, Greeting)
	}
	if len(b.ledWrites) != 0 {
		t.Errorf("zero steps made %d LED writes", len(b.ledWrites))
	}
}
