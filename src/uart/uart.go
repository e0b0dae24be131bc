// Package uart drives the transmit half of the memory-mapped UART on
// the hello SoC. The peripheral has no FIFO: software must hold off
// while the previous byte is still shifting out.
package uart

import (
	"artyhello/src/hardware/arty"
)

// Transmitter sends bytes out the serial line one at a time.
type Transmitter struct {
	status arty.UARTStatus
	data   arty.UARTData
}

func New(p *arty.Peripherals) *Transmitter {
	return &Transmitter{status: p.Status, data: p.Data}
}

// WriteByte spins until the transmitter is idle, then hands c to the
// hardware. The data write never happens while the busy bit reads 1.
func (t *Transmitter) WriteByte(c byte) {
	for t.status.Busy() {
	}
	t.data.Write(c)
}

// WriteString sends every byte of s in order. No newline translation
// happens here; callers that want CRLF put it in the string.
func (t *Transmitter) WriteString(s string) {
	for i := 0; i < len(s); i++ {
		t.WriteByte(s[i])
	}
}
