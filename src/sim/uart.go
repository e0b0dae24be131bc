package sim

import (
	"io"

	"artyhello/src/hardware/arty"
)

// UART models the transmit half of the serial peripheral. A real shift
// register takes many cycles per byte; here that cost is charged in
// status polls so tests can prove the driver actually waits.
type UART struct {
	// BusyPerByte is how many status polls answer busy after each
	// accepted byte. Zero means the transmitter drains instantly.
	BusyPerByte int
	// AlwaysBusy pins the busy bit high, modeling a wedged shifter.
	AlwaysBusy bool
	// Output, when set, receives each byte as the firmware sends it.
	Output io.Writer

	// WroteWhileBusy counts data writes that arrived while the busy
	// bit was still high. Well-behaved firmware keeps this at zero; on
	// hardware those bytes would be garbled on the wire.
	WroteWhileBusy int

	bytes    []byte
	busyLeft int
}

func (u *UART) status() uint32 {
	if u.AlwaysBusy {
		return arty.TxBusy
	}
	if u.busyLeft > 0 {
		u.busyLeft--
		return arty.TxBusy
	}
	return 0
}

func (u *UART) write(v uint32) {
	if u.AlwaysBusy || u.busyLeft > 0 {
		u.WroteWhileBusy++
	}
	// Hardware latches only the low byte; the rest of the word falls off.
	c := byte(v)
	u.bytes = append(u.bytes, c)
	u.busyLeft = u.BusyPerByte
	if u.Output != nil {
		u.Output.Write([]byte{c})
	}
}

// Bytes returns everything the transmitter has accepted, oldest first.
func (u *UART) Bytes() []byte {
	return u.bytes
}

// String returns the transmit stream as text.
func (u *UART) String() string {
	return string(u.bytes)
}
