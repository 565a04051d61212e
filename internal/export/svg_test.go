package export

import (
	"strings"
	"testing"

	"github.com/paperlab/rollsim/internal/viz"
)

func TestCanvasToSVG(t *testing.T) {
	c := viz.NewCanvas(4, 2)
	c.Set(0, 0)
	c.Set(7, 7)

	svg := CanvasToSVG(c, 4)
	if !strings.HasPrefix(svg, `<?xml version="1.0"`) {
		t.Error("missing XML declaration")
	}
	if !strings.Contains(svg, "<svg xmlns=") {
		t.Error("missing svg element")
	}
	if got := strings.Count(svg, "<circle"); got != 2 {
		t.Errorf("got %d circles, want 2", got)
	}
	if !strings.HasSuffix(svg, "</svg>") {
		t.Error("unterminated document")
	}
}

func TestCanvasToSVGNil(t *testing.T) {
	if CanvasToSVG(nil, 4) != "" {
		t.Error("nil canvas should render nothing")
	}
}

func TestSeriesToSVG(t *testing.T) {
	ts := []float64{0, 1, 2, 3}
	vs := []float64{0, 1, 4, 9}

	svg := SeriesToSVG(ts, vs, 400, 200, "#00ff00")
	if !strings.Contains(svg, `<polyline points="`) {
		t.Fatal("missing polyline")
	}
	if !strings.Contains(svg, `stroke="#00ff00"`) {
		t.Error("stroke color not applied")
	}
	if !strings.Contains(svg, `width="400" height="200"`) {
		t.Error("dimensions not applied")
	}
	// Four samples produce four points.
	points := strings.Split(svg, `points="`)[1]
	points = points[:strings.Index(points, `"`)]
	if got := len(strings.Fields(points)); got != 4 {
		t.Errorf("got %d points, want 4", got)
	}
}

func TestBrailleSVG(t *testing.T) {
	ts := []float64{0, 1, 2, 3, 4}
	vs := []float64{0, 1, 4, 9, 16}

	svg := BrailleSVG(ts, vs, 20, 6, 8)
	if !strings.Contains(svg, "<svg xmlns=") {
		t.Fatal("missing svg element")
	}
	// One dot per sample at minimum, plus vertical fill between samples.
	if got := strings.Count(svg, "<circle"); got < len(ts) {
		t.Errorf("got %d circles, want at least %d", got, len(ts))
	}
	if !strings.HasSuffix(svg, "</svg>") {
		t.Error("unterminated document")
	}

	if BrailleSVG([]float64{0}, []float64{1}, 20, 6, 8) != "" {
		t.Error("single sample should render nothing")
	}
	if BrailleSVG(ts, vs[:3], 20, 6, 8) != "" {
		t.Error("mismatched lengths should render nothing")
	}
}

func TestSeriesToSVGDegenerate(t *testing.T) {
	if SeriesToSVG([]float64{0}, []float64{1}, 100, 100, "#fff") != "" {
		t.Error("single sample should render nothing")
	}
	if SeriesToSVG([]float64{0, 1}, []float64{1}, 100, 100, "#fff") != "" {
		t.Error("mismatched lengths should render nothing")
	}
}
