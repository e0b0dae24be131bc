// Package sim is a software model of the hello SoC's register file:
// the LED latch, the UART transmitter, and its status bit. It lets the
// firmware and host tools run against the real register protocol
// without a board on the desk.
package sim

import (
	"log"

	"artyhello/src/hardware/arty"
)

// Access is one bus transaction, in program order.
type Access struct {
	Op  byte // 'R' or 'W'
	Off uintptr
	V   uint32 // value written, or value returned by the read
}

// Board decodes 32-bit accesses at the peripheral base the way the
// fabric does, and keeps a transaction trace for protocol checks.
type Board struct {
	LED  *LED
	UART *UART

	trace []Access
	logf  func(format string, args ...interface{})
}

func New() *Board {
	return &Board{
		LED:  &LED{},
		UART: &UART{},
		logf: log.Printf,
	}
}

func (b *Board) Read32(off uintptr) uint32 {
	var v uint32
	switch off {
	case arty.UARTStatusOffset:
		v = b.UART.status()
	default:
		// LED and TX data are write-only; reads of them, like reads of
		// anything undecoded, return zero on this fabric.
		b.logf("sim: read of unmapped offset %#04x", off)
	}
	b.trace = append(b.trace, Access{Op: 'R', Off: off, V: v})
	return v
}

func (b *Board) Write32(off uintptr, v uint32) {
	b.trace = append(b.trace, Access{Op: 'W', Off: off, V: v})
	switch off {
	case arty.LEDOffset:
		b.LED.write(v)
	case arty.UARTDataOffset:
		b.UART.write(v)
	default:
		b.logf("sim: write %#x to unmapped offset %#04x dropped", v, off)
	}
}

// Trace returns every access the board has seen, oldest first.
func (b *Board) Trace() []Access {
	return b.trace
}
