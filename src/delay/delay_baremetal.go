//go:build baremetal

package delay

import "runtime/volatile"

// gotta be volatile or the optimizer deletes the whole countdown;
// package-level so the blink loop never allocates
var cell volatile.Register32

func sharedCell() Cell { return &cell }
