//go:build !baremetal

package delay

import "sync/atomic"

// hostCell gives the spin loop the same can't-fold-this property the
// volatile cell has on metal.
type hostCell struct {
	v uint32
}

func (c *hostCell) Get() uint32  { return atomic.LoadUint32(&c.v) }
func (c *hostCell) Set(v uint32) { atomic.StoreUint32(&c.v, v) }

// package-level like the metal cell: Spin must not allocate per call
var cell hostCell

func sharedCell() Cell { return &cell }
