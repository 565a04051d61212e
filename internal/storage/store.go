// Package storage persists completed runs under a data directory, one
// subdirectory per run holding metadata.json and series.csv.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/paperlab/rollsim/internal/dynamo"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID         string             `json:"id"`
	Scenario   string             `json:"scenario"`
	Timestamp  time.Time          `json:"timestamp"`
	Integrator string             `json:"integrator"`
	Dt         float64            `json:"dt"`
	Duration   float64            `json:"duration"`
	Samples    int                `json:"samples"`
	Labels     []string           `json:"labels"`
	Metrics    map[string]float64 `json:"metrics"`
}

func (s *Store) Save(scenario, integrator string, dt float64, metricVals map[string]float64, traj *dynamo.Trajectory) (string, error) {
	runID := fmt.Sprintf("%s_%d", scenario, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	duration := 0.0
	if traj.Len() > 0 {
		duration = traj.Times[traj.Len()-1]
	}

	meta := RunMetadata{
		ID:         runID,
		Scenario:   scenario,
		Timestamp:  time.Now(),
		Integrator: integrator,
		Dt:         dt,
		Duration:   duration,
		Samples:    traj.Len(),
		Labels:     traj.Labels,
		Metrics:    metricVals,
	}

	if err := writeJSON(filepath.Join(runDir, "metadata.json"), meta); err != nil {
		return "", err
	}
	if err := writeSeriesCSV(filepath.Join(runDir, "series.csv"), traj); err != nil {
		return "", err
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		meta, err := s.Load(e.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}
	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadTrajectory reads series.csv back into a trajectory.
func (s *Store) LoadTrajectory(runID string) (*dynamo.Trajectory, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "series.csv"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("storage: empty series for run %s", runID)
	}

	header := rows[0]
	if len(header) < 2 || header[0] != "time" {
		return nil, fmt.Errorf("storage: malformed series header for run %s", runID)
	}

	traj := &dynamo.Trajectory{
		Labels: header[1:],
		Times:  make([]float64, 0, len(rows)-1),
		States: make([]dynamo.State, 0, len(rows)-1),
	}
	for _, row := range rows[1:] {
		t, err := strconv.ParseFloat(row[0], 64)
		if err != nil {
			return nil, err
		}
		state := make(dynamo.State, len(row)-1)
		for i, cell := range row[1:] {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, err
			}
			state[i] = v
		}
		traj.Times = append(traj.Times, t)
		traj.States = append(traj.States, state)
	}
	return traj, nil
}

func writeJSON(path string, meta RunMetadata) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func writeSeriesCSV(path string, traj *dynamo.Trajectory) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := append([]string{"time"}, traj.Labels...)
	if err := w.Write(header); err != nil {
		return err
	}
	for i, t := range traj.Times {
		row := make([]string, 0, len(traj.Labels)+1)
		row = append(row, strconv.FormatFloat(t, 'f', 6, 64))
		for _, v := range traj.States[i] {
			row = append(row, strconv.FormatFloat(v, 'g', 10, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}
