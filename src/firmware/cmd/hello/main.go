//go:build baremetal

package main

import (
	"artyhello/src/firmware"
	"artyhello/src/hardware/arty"
)

func main() {
	firmware.New(arty.Open()).Run()
}
