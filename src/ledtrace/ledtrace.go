// Package ledtrace renders an LED write history as a strip chart, one
// column per write and one row per LED, so a simulated run can be eyed
// the way a logic analyzer capture would be.
package ledtrace

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"
)

// cell is the pixel size of one LED-state square.
const cell = 8

// Render draws the history with LED3 in the top row and the oldest
// write in the leftmost column. An empty history still renders a
// single dark column so callers always get a usable image.
func Render(history []uint32) image.Image {
	cols := len(history)
	if cols == 0 {
		cols = 1
	}
	dc := gg.NewContext(cols*cell, 4*cell)
	dc.SetRGB(0.08, 0.08, 0.08)
	dc.Clear()
	dc.SetRGB(0.20, 0.90, 0.30)
	for i, v := range history {
		for led := 0; led < 4; led++ {
			if v>>uint(led)&1 == 0 {
				continue
			}
			x := float64(i * cell)
			y := float64((3 - led) * cell)
			dc.DrawRectangle(x+1, y+1, cell-2, cell-2)
		}
	}
	dc.Fill()
	return dc.Image()
}

// WritePNG renders the history and saves it to path.
func WritePNG(path string, history []uint32) error {
	if err := gg.SavePNG(path, Render(history)); err != nil {
		return fmt.Errorf("save led strip chart: %w", err)
	}
	return nil
}
