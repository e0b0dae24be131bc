// artysim boots the hello firmware against the software board model.
// The UART stream goes to stdout, the run summary and optional bus
// trace go to stderr via log.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"artyhello/src/firmware"
	"artyhello/src/hardware/arty"
	"artyhello/src/ledtrace"
	"artyhello/src/sim"
)

var stepsFlag = flag.Int("steps", 64, "LED steps to run before stopping")
var spinFlag = flag.Uint("spin", 1000, "busy-wait count per step (the real firmware uses 5000000)")
var busyFlag = flag.Int("busy", 4, "status polls the UART stays busy after each byte")
var traceFlag = flag.Bool("trace", false, "dump the bus trace after the run")
var pngFlag = flag.String("png", "", "write an LED strip chart to this file")

func main() {
	flag.Parse()
	if *stepsFlag < 0 {
		log.Fatalf("steps must be >= 0, got %d", *stepsFlag)
	}
	spin, err := spinCount(uint64(*spinFlag))
	if err != nil {
		log.Fatalf("%v", err)
	}

	b := sim.New()
	b.UART.BusyPerByte = *busyFlag
	b.UART.Output = os.Stdout

	d := firmware.New(arty.Bind(b))
	d.Spin = spin
	d.RunN(*stepsFlag)

	if n := b.UART.WroteWhileBusy; n != 0 {
		log.Fatalf("protocol violation: %d UART writes while busy", n)
	}
	log.Printf("ran %d steps: %d UART bytes out, %d LED writes, LEDs now %04b",
		*stepsFlag, len(b.UART.Bytes()), len(b.LED.History()), b.LED.Pins())

	if *traceFlag {
		for i, a := range b.Trace() {
			log.Printf("%5d %c %#04x %#010x", i, a.Op, a.Off, a.V)
		}
	}
	if *pngFlag != "" {
		if err := ledtrace.WritePNG(*pngFlag, b.LED.History()); err != nil {
			log.Fatalf("unable to write strip chart: %v", err)
		}
		log.Printf("wrote %s", *pngFlag)
	}
}

// spinCount rejects counts the firmware's 32-bit spin knob cannot hold;
// on 64-bit hosts the flag parses values a silent conversion would wrap.
func spinCount(v uint64) (uint32, error) {
	if v > 0xffffffff {
		return 0, fmt.Errorf("spin does not fit in 32 bits: %d", v)
	}
	return uint32(v), nil
}
