package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/paperlab/rollsim/internal/dynamo"
)

type runExport struct {
	Meta   RunMetadata          `json:"meta"`
	Times  []float64            `json:"times"`
	Series map[string][]float64 `json:"series"`
}

// ExportJSON writes a run as a single JSON document with one array per
// state variable.
func ExportJSON(w io.Writer, meta *RunMetadata, traj *dynamo.Trajectory) error {
	series := make(map[string][]float64, len(traj.Labels))
	for i, label := range traj.Labels {
		series[label] = traj.Component(i)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(runExport{Meta: *meta, Times: traj.Times, Series: series})
}

// ExportCSV streams a run's samples as CSV with a labeled header.
func ExportCSV(w io.Writer, traj *dynamo.Trajectory) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := append([]string{"time"}, traj.Labels...)
	if err := cw.Write(header); err != nil {
		return err
	}
	for i, t := range traj.Times {
		row := make([]string, 0, len(traj.Labels)+1)
		row = append(row, strconv.FormatFloat(t, 'f', 6, 64))
		for _, v := range traj.States[i] {
			row = append(row, strconv.FormatFloat(v, 'g', 10, 64))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return cw.Error()
}
