package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/paperlab/rollsim/internal/dynamo"
)

// SeriesCaptions maps state labels to human captions per scenario.
var SeriesCaptions = map[string]map[string]string{
	"roll": {
		"theta": "theta (angle rolled, rad)",
		"y":     "y (paper taken up, m)",
		"r":     "r (roll radius, m)",
	},
	"unroll": {
		"theta": "theta (angle unrolled, rad)",
		"omega": "omega (angular velocity, rad/s)",
		"y":     "y (paper remaining, m)",
	},
	"yoyo": {
		"theta": "theta (rotation, rad)",
		"omega": "omega (angular velocity, rad/s)",
		"y":     "y (string remaining, m)",
		"v":     "v (descent velocity, m/s)",
	},
}

// PlotTrajectory renders one asciigraph per state variable.
func PlotTrajectory(scenario string, traj *dynamo.Trajectory, height, width int) string {
	var sb strings.Builder
	captions := SeriesCaptions[scenario]

	for i, label := range traj.Labels {
		caption := fmt.Sprintf("%s vs time", label)
		if c, ok := captions[label]; ok {
			caption = c
		}

		graph := asciigraph.Plot(traj.Component(i),
			asciigraph.Height(height),
			asciigraph.Width(width),
			asciigraph.Caption(caption),
		)
		sb.WriteString(graph)
		sb.WriteString("\n\n")
	}
	return sb.String()
}

// Sparkline renders a compact single-series graph for the live view.
func Sparkline(data []float64, height, width int, caption string) string {
	if len(data) < 2 {
		return ""
	}
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}
