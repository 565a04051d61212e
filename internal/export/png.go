package export

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/paperlab/rollsim/internal/dynamo"
)

var linePalette = []color.RGBA{
	{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
	{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
	{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
}

// SavePNG writes every state series of a trajectory into one PNG figure.
func SavePNG(path, title string, traj *dynamo.Trajectory) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "time (s)"
	p.Add(plotter.NewGrid())

	for i, label := range traj.Labels {
		line, err := plotter.NewLine(seriesXYs(traj.Times, traj.Component(i)))
		if err != nil {
			return fmt.Errorf("export: series %s: %w", label, err)
		}
		line.Color = linePalette[i%len(linePalette)]
		p.Add(line)
		p.Legend.Add(label, line)
	}
	p.Legend.Top = true

	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}

// SaveSeriesPNG writes a single series against time.
func SaveSeriesPNG(path, title, ylabel string, ts, vs []float64) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "time (s)"
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(seriesXYs(ts, vs))
	if err != nil {
		return err
	}
	line.Color = linePalette[0]
	p.Add(line)

	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}

func seriesXYs(ts, vs []float64) plotter.XYs {
	pts := make(plotter.XYs, len(ts))
	for i := range ts {
		pts[i].X = ts[i]
		pts[i].Y = vs[i]
	}
	return pts
}
