package viz

import (
	"strings"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800 // Empty braille char
		}
	}
	return c
}

// Set marks a pixel at (x, y) in sub-pixel coordinates. The canvas size
// in sub-pixels is (Width*2) x (Height*4).
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	subX := x % 2
	subY := y % 4

	c.Grid[row][col] |= rune(pixelMap[subY][subX])
}

// DrawSeries scales (ts, vs) into the canvas and marks one sub-pixel per
// sample, connecting consecutive samples with short vertical fills.
func (c *Canvas) DrawSeries(ts, vs []float64) {
	if len(ts) < 2 || len(ts) != len(vs) {
		return
	}

	tMin, tMax := ts[0], ts[len(ts)-1]
	vMin, vMax := vs[0], vs[0]
	for _, v := range vs {
		if v < vMin {
			vMin = v
		}
		if v > vMax {
			vMax = v
		}
	}
	tRange := tMax - tMin
	vRange := vMax - vMin
	if tRange == 0 {
		tRange = 1
	}
	if vRange == 0 {
		vRange = 1
	}

	subW := c.Width*2 - 1
	subH := c.Height*4 - 1

	prevY := -1
	for i := range ts {
		px := int(float64(subW) * (ts[i] - tMin) / tRange)
		py := subH - int(float64(subH)*(vs[i]-vMin)/vRange)
		c.Set(px, py)
		if prevY >= 0 {
			step := 1
			if py < prevY {
				step = -1
			}
			for y := prevY; y != py; y += step {
				c.Set(px, y)
			}
		}
		prevY = py
	}
}

func (c *Canvas) String() string {
	var sb strings.Builder
	for _, row := range c.Grid {
		sb.WriteString(string(row))
		sb.WriteByte('\n')
	}
	return sb.String()
}
