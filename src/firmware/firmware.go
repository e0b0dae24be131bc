// Package firmware is the whole program the soft core runs: say hello
// on the serial line once, then count on the four user LEDs forever.
package firmware

import (
	"artyhello/src/delay"
	"artyhello/src/hardware/arty"
	"artyhello/src/uart"
)

// Greeting goes out the UART exactly once, before the first LED write.
// CRLF is part of the string because the UART does no translation.
const Greeting = "Hello, Arty A7!\r\n"

// StepSpin is the busy-wait count between LED steps. At the Arty A7's
// 100MHz core clock this comes out near 50ms per step; on any other
// clock the pattern just runs at a different speed.
const StepSpin = 5_000_000

// Driver owns the boot sequence and the LED counter.
type Driver struct {
	// Spin is the per-step busy-wait count, StepSpin unless a harness
	// turns it down.
	Spin uint32

	led     arty.LED
	out     *uart.Transmitter
	spin    func(uint32)
	pattern uint8
}

func New(p *arty.Peripherals) *Driver {
	return &Driver{
		Spin: StepSpin,
		led:  p.LED,
		out:  uart.New(p),
		spin: delay.Spin,
	}
}

// Greet sends the power-on banner.
func (d *Driver) Greet() {
	d.out.WriteString(Greeting)
}

// Step shows the low four bits of the counter on the LEDs, advances the
// counter, and burns the inter-step delay. The mask happens here, not
// in the register handle: the LEDs only have four bits.
func (d *Driver) Step() {
	d.led.Set(uint32(d.pattern) & 0x0F)
	d.pattern++
	d.spin(d.Spin)
}

// Run is the firmware entry point: banner once, then steps forever.
// It never returns; there is nothing to return to.
func (d *Driver) Run() {
	d.Greet()
	for {
		d.Step()
	}
}

// RunN is Run with a step bound, for harnesses that need control back.
func (d *Driver) RunN(steps int) {
	d.Greet()
	for i := 0; i < steps; i++ {
		d.Step()
	}
}
