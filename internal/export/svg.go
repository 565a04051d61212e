package export

import (
	"fmt"
	"strings"

	"github.com/paperlab/rollsim/internal/viz"
)

// CanvasToSVG converts a braille canvas to SVG, one dot per set sub-pixel.
func CanvasToSVG(canvas *viz.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width) * scale * 2
	height := float64(canvas.Height) * scale * 4

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g fill="#00ff00">
`, width, height, width, height))

	pixelMap := [4][2]int{
		{0x01, 0x08},
		{0x02, 0x10},
		{0x04, 0x20},
		{0x40, 0x80},
	}

	dotRadius := scale * 0.4

	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			r := canvas.Grid[row][col]
			if r < 0x2800 {
				continue
			}
			pattern := int(r - 0x2800)

			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4

			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] != 0 {
						cx := baseX + float64(dx)*scale + scale/2
						cy := baseY + float64(dy)*scale + scale/2
						sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, cx, cy, dotRadius))
					}
				}
			}
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// BrailleSVG rasterizes one series onto a braille canvas and renders the
// dot pattern. cols and rows size the canvas in character cells; each cell
// spans 2x4 sub-pixels.
func BrailleSVG(ts, vs []float64, cols, rows int, scale float64) string {
	if len(ts) < 2 || len(ts) != len(vs) {
		return ""
	}
	canvas := viz.NewCanvas(cols, rows)
	canvas.DrawSeries(ts, vs)
	return CanvasToSVG(canvas, scale)
}

// SeriesToSVG renders one time series as an SVG polyline scaled to fit.
func SeriesToSVG(ts, vs []float64, width, height int, strokeColor string) string {
	if len(ts) < 2 || len(ts) != len(vs) {
		return ""
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

	var pts strings.Builder
	margin := 10.0
	w := float64(width) - 2*margin
	h := float64(height) - 2*margin
	for i := range ts {
		x := margin + w*(ts[i]-tMin)/tRange
		y := margin + h*(1-(vs[i]-vMin)/vRange)
		fmt.Fprintf(&pts, "%.1f,%.1f ", x, y)
	}

	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<polyline points="%s" fill="none" stroke="%s" stroke-width="1.5"/>
</svg>`, width, height, width, height, strings.TrimSpace(pts.String()), strokeColor)
}
