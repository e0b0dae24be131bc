// artymon tails the serial port the board is wired to, echoes
// everything the firmware prints, and calls out the power-on banner
// when it arrives.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tty "github.com/mattn/go-tty"
	"go.bug.st/serial"

	"artyhello/src/firmware"
	"artyhello/src/tools/monitor"
)

var portFlag = flag.String("port", "", "serial device the board is wired to, e.g. /dev/ttyUSB1")
var baudFlag = flag.Int("baud", 115200, "line rate of the board's UART")

func main() {
	flag.Parse()
	if *portFlag == "" {
		usage()
	}

	port, err := serial.Open(*portFlag, &serial.Mode{BaudRate: *baudFlag})
	if err != nil {
		log.Fatalf("unable to open %s: %v", *portFlag, err)
	}
	defer port.Close()

	console, err := tty.Open()
	if err != nil {
		log.Fatalf("unable to open console: %v", err)
	}
	defer console.Close()

	// q (or ctrl-C, which arrives as a rune in raw mode) ends the session.
	quit := make(chan struct{})
	go func() {
		for {
			r, err := console.ReadRune()
			if err != nil || r == 'q' || r == 3 {
				close(quit)
				return
			}
		}
	}()

	chunks := make(chan []byte)
	readErr := make(chan error, 1)
	go func() {
		for {
			buf := make([]byte, 256)
			n, err := port.Read(buf)
			if err != nil {
				readErr <- err
				return
			}
			if n > 0 {
				chunks <- buf[:n]
			}
		}
	}()

	w := monitor.NewWatcher(firmware.Greeting)
	log.Printf("watching %s at %d baud, q quits", *portFlag, *baudFlag)
	for {
		select {
		case <-quit:
			return
		case err := <-readErr:
			log.Fatalf("serial read: %v", err)
		case c := <-chunks:
			os.Stdout.Write(c)
			was := w.Seen()
			if w.Feed(c) && !was {
				log.Printf("power-on banner seen at byte %d, board is alive", w.MatchOffset())
			}
		}
	}
}

func usage() {
	fmt.Printf("usage: artymon -port [serial device]\n")
	flag.PrintDefaults()
	os.Exit(1)
}
