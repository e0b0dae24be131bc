//go:build baremetal

package arty

import (
	"runtime/volatile"
	"unsafe"
)

// busMem reaches the hardware through the fixed physical base. Routing every
// access through volatile.Register32 keeps the compiler from caching,
// reordering, or dropping them.
type busMem struct {
	base uintptr
}

func (m busMem) Read32(off uintptr) uint32 {
	return (*volatile.Register32)(unsafe.Pointer(m.base + off)).Get()
}

func (m busMem) Write32(off uintptr, v uint32) {
	(*volatile.Register32)(unsafe.Pointer(m.base + off)).Set(v)
}

// Open binds the handles to the hardware at Base. There is exactly one
// peripheral block and it is valid for the whole run; the registers have no
// reset or teardown path.
func Open() *Peripherals {
	return Bind(busMem{base: Base})
}
