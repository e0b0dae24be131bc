// Package arty is the register contract for the soft-core peripheral block
// on the Arty A7. The block hangs off the core's AXI master port:
//
//	base+0x00  GPIO_LED     (W)  led[3:0]
//	base+0x04  UART_TX      (W)  byte to transmit
//	base+0x08  UART_STATUS  (R)  bit 0 = tx busy
//
// The three registers are the whole hardware surface of the firmware. Each
// one gets a distinct handle type exposing only its legal operation, and the
// handles can only be built here, so every register access in the program
// funnels through this package at a fixed offset.
package arty

const (
	// Base is where the AXI port maps the peripheral block. It is a
	// property of the SoC wiring, not of this program; nothing anywhere
	// recomputes or rediscovers it.
	Base uintptr = 0x8000_0000

	LEDOffset        uintptr = 0x00
	UARTDataOffset   uintptr = 0x04
	UARTStatusOffset uintptr = 0x08
)

// TxBusy is the only meaningful bit of the status register.
const TxBusy uint32 = 1 << 0

// Mem32 is a single 32-bit peripheral access. Every call must reach the
// hardware (or the simulated hardware) exactly once: implementations may not
// cache, merge, reorder, or drop accesses, because the registers behind them
// change independently of this program.
type Mem32 interface {
	Read32(off uintptr) uint32
	Write32(off uintptr, v uint32)
}

// LED is the write-only handle for the LED output register. Only led[3:0]
// reach the pins, but the handle writes the word exactly as given and lets
// the hardware ignore the upper bits, so wire traffic matches the register
// map bit for bit.
type LED struct {
	mem Mem32
}

// Set drives the LED register with v, unmasked.
func (l LED) Set(v uint32) {
	l.mem.Write32(LEDOffset, v)
}

// UARTData is the write-only handle for the transmit data register.
// A write starts transmission of the low byte.
type UARTData struct {
	mem Mem32
}

// Write hands one byte to the transmitter.
func (u UARTData) Write(c byte) {
	u.mem.Write32(UARTDataOffset, uint32(c))
}

// UARTStatus is the read-only handle for the transmitter status register.
type UARTStatus struct {
	mem Mem32
}

// Busy reads the status register once and reports the tx busy bit.
func (s UARTStatus) Busy() bool {
	return s.mem.Read32(UARTStatusOffset)&TxBusy != 0
}

// Peripherals is the full register set. The handle fields are the only way
// to the registers; their offsets are fixed here and nowhere else.
type Peripherals struct {
	LED    LED
	Data   UARTData
	Status UARTStatus
}

// Bind builds the register handles over mem. The firmware binds the real bus
// via Open; tests and the simulator bind whatever Mem32 they like.
func Bind(mem Mem32) *Peripherals {
	return &Peripherals{
		LED:    LED{mem},
		Data:   UARTData{mem},
		Status: UARTStatus{mem},
	}
}
