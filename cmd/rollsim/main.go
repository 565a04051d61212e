package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/paperlab/rollsim/internal/config"
	"github.com/paperlab/rollsim/internal/dynamo"
	"github.com/paperlab/rollsim/internal/export"
	"github.com/paperlab/rollsim/internal/interp"
	"github.com/paperlab/rollsim/internal/scenario"
	"github.com/paperlab/rollsim/internal/storage"
	"github.com/paperlab/rollsim/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	integrator string
	dt         float64
	samples    int
	adaptive   bool

	// Condition overrides, applied to whichever scenario is being run.
	rmin    float64
	rmax    float64
	rout    float64
	length  float64
	mcore   float64
	mroll   float64
	tension float64
	mass    float64
	gravity float64
	simTime float64

	outFile    string
	seriesName string
	braille    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rollsim",
		Short: "rolled-paper dynamics lab: roll, unroll and yo-yo scenarios",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".rollsim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [scenario]",
		Short: "integrate a scenario and store the trajectory",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}
	addConditionFlags(runCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	whenCmd := &cobra.Command{
		Use:   "when [run_id] [series] [value]",
		Short: "inverse query: time at which a series first reaches a value",
		Args:  cobra.ExactArgs(3),
		RunE:  whenQuery,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run samples as CSV on stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run metadata and series as JSON on stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export one series as an SVG line plot",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVar(&seriesName, "series", "y", "series label to export")
	exportSVGCmd.Flags().StringVar(&outFile, "out", "", "output file (default <run_id>.svg)")
	exportSVGCmd.Flags().BoolVar(&braille, "braille", false, "render as a braille dot raster instead of a polyline")

	exportPNGCmd := &cobra.Command{
		Use:   "export-png [run_id]",
		Short: "export all series of a run as a PNG figure",
		Args:  cobra.ExactArgs(1),
		RunE:  exportPNG,
	}
	exportPNGCmd.Flags().StringVar(&outFile, "out", "", "output file (default <run_id>.png)")
	exportPNGCmd.Flags().StringVar(&seriesName, "series", "", "export a single series instead of the full figure")

	presetsCmd := &cobra.Command{
		Use:   "presets [scenario]",
		Short: "list presets for a scenario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets(args[0])
			if len(names) == 0 {
				fmt.Printf("no presets for scenario: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range names {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	compareCmd := &cobra.Command{
		Use:   "compare [scenario] [integrator1] [integrator2] ...",
		Short: "compare integrators on the same scenario",
		Args:  cobra.MinimumNArgs(2),
		RunE:  compareIntegrators,
	}
	addConditionFlags(compareCmd)

	liveCmd := &cobra.Command{
		Use:   "live [scenario]",
		Short: "watch a scenario integrate in real time",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	addConditionFlags(liveCmd)

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "run all three worked examples concurrently",
		RunE:  runDemo,
	}

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, whenCmd, exportCSVCmd, exportJSONCmd,
		exportSVGCmd, exportPNGCmd, presetsCmd, compareCmd, liveCmd, demoCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addConditionFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset condition")
	cmd.Flags().StringVar(&integrator, "integrator", "rk4", "integrator (euler, rk4, rk45)")
	cmd.Flags().Float64Var(&dt, "dt", 0, "inner integration step (0 = scenario default)")
	cmd.Flags().IntVar(&samples, "samples", config.DefaultSamples, "trajectory samples")
	cmd.Flags().BoolVar(&adaptive, "adaptive", false, "adaptive stepping (rk45)")
	cmd.Flags().Float64Var(&rmin, "rmin", 0, "minimum roll radius (m)")
	cmd.Flags().Float64Var(&rmax, "rmax", 0, "maximum roll radius (m)")
	cmd.Flags().Float64Var(&rout, "rout", 0, "yo-yo body radius (m)")
	cmd.Flags().Float64Var(&length, "length", 0, "paper or string length (m)")
	cmd.Flags().Float64Var(&mcore, "mcore", 0, "core mass (kg)")
	cmd.Flags().Float64Var(&mroll, "mroll", 0, "paper mass (kg)")
	cmd.Flags().Float64Var(&tension, "tension", 0, "pull force (N)")
	cmd.Flags().Float64Var(&mass, "mass", 0, "yo-yo mass (kg)")
	cmd.Flags().Float64Var(&gravity, "gravity", 0, "gravitational acceleration (m/s^2)")
	cmd.Flags().Float64Var(&simTime, "time", 0, "simulated duration (s)")
}

// buildConfig resolves defaults, preset, config file and flag overrides,
// in that order.
func buildConfig(cmd *cobra.Command, scenarioName string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	cfg.Scenario = scenarioName

	if preset != "" {
		p := config.GetPreset(scenarioName, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(scenarioName))
		}
		c := *p // presets are shared, work on a copy
		cfg = &c
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		loaded.Scenario = scenarioName
		cfg = loaded
	}

	if cmd.Flags().Changed("integrator") {
		cfg.Integrator = integrator
	}
	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("samples") {
		cfg.Samples = samples
	}
	if cmd.Flags().Changed("adaptive") {
		cfg.Adaptive = adaptive
	}
	applyConditionOverrides(cmd, cfg)

	return cfg, nil
}

func applyConditionOverrides(cmd *cobra.Command, cfg *config.Config) {
	set := func(flag string, dst *float64, v float64) {
		if cmd.Flags().Changed(flag) {
			*dst = v
		}
	}
	switch cfg.Scenario {
	case "roll":
		set("rmin", &cfg.Roll.Rmin, rmin)
		set("rmax", &cfg.Roll.Rmax, rmax)
		set("length", &cfg.Roll.Length, length)
		set("time", &cfg.Roll.Duration, simTime)
	case "unroll":
		set("rmin", &cfg.Unroll.Rmin, rmin)
		set("rmax", &cfg.Unroll.Rmax, rmax)
		set("length", &cfg.Unroll.Length, length)
		set("mcore", &cfg.Unroll.Mcore, mcore)
		set("mroll", &cfg.Unroll.Mroll, mroll)
		set("tension", &cfg.Unroll.Tension, tension)
		set("time", &cfg.Unroll.Duration, simTime)
	case "yoyo":
		set("rmin", &cfg.Yoyo.Rmin, rmin)
		set("rmax", &cfg.Yoyo.Rmax, rmax)
		set("rout", &cfg.Yoyo.Rout, rout)
		set("length", &cfg.Yoyo.Length, length)
		set("mass", &cfg.Yoyo.Mass, mass)
		set("gravity", &cfg.Yoyo.Gravity, gravity)
		set("time", &cfg.Yoyo.Duration, simTime)
	}
}

func runScenario(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}

	run, err := scenario.Assemble(cfg)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Printf("running %s scenario...\n", run.Name)
	start := time.Now()

	traj, vals, err := run.Execute(context.Background())
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	runID, err := st.Save(run.Name, cfg.Integrator, run.SimCfg.Dt, vals, traj)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("samples: %d\n", traj.Len())
	fmt.Println("\nmetrics:")
	for name, val := range vals {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENARIO\tTIME\tDURATION\tSAMPLES\tINTEG")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2fs\t%d\t%s\n",
			run.ID,
			run.Scenario,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.Samples,
			run.Integrator,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	traj, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("scenario: %s\n", meta.Scenario)
	fmt.Printf("samples: %d\n\n", traj.Len())

	fmt.Print(viz.PlotTrajectory(meta.Scenario, traj, 10, 80))
	return nil
}

func whenQuery(cmd *cobra.Command, args []string) error {
	target, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return fmt.Errorf("bad target value %q: %w", args[2], err)
	}

	st := storage.New(dataDir)
	traj, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}

	vs, err := traj.Lookup(args[1])
	if err != nil {
		return err
	}

	t, err := interp.TimeOf(traj.Times, vs, target)
	if err != nil {
		return err
	}

	fmt.Printf("%s = %g at t = %.4f s\n", args[1], target, t)
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	traj, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}
	return storage.ExportCSV(os.Stdout, traj)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	traj, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(os.Stdout, meta, traj)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	traj, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}

	vs, err := traj.Lookup(seriesName)
	if err != nil {
		return err
	}

	out := outFile
	if out == "" {
		out = args[0] + ".svg"
	}

	svg := export.SeriesToSVG(traj.Times, vs, 800, 500, "#00ff88")
	if braille {
		svg = export.BrailleSVG(traj.Times, vs, 100, 16, 8)
	}
	if err := os.WriteFile(out, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", out)
	return nil
}

func exportPNG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	traj, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}

	out := outFile
	if out == "" {
		out = args[0] + ".png"
	}

	if seriesName != "" {
		vs, err := traj.Lookup(seriesName)
		if err != nil {
			return err
		}
		ylabel := seriesName
		if c, ok := viz.SeriesCaptions[meta.Scenario][seriesName]; ok {
			ylabel = c
		}
		if err := export.SaveSeriesPNG(out, meta.Scenario, ylabel, traj.Times, vs); err != nil {
			return err
		}
	} else if err := export.SavePNG(out, meta.Scenario, traj); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", out)
	return nil
}

func compareIntegrators(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}

	fmt.Printf("comparing integrators for %s\n\n", cfg.Scenario)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INTEGRATOR\tFINAL STATE\tDRIFT\tTIME")

	var baseline dynamo.State
	for _, name := range args[1:] {
		cfg.Integrator = name
		run, err := scenario.Assemble(cfg)
		if err != nil {
			fmt.Fprintf(w, "%s\terror: %v\t\t\n", name, err)
			continue
		}

		start := time.Now()
		traj, _, err := run.Execute(context.Background())
		elapsed := time.Since(start)
		if err != nil {
			fmt.Fprintf(w, "%s\terror: %v\t\t\n", name, err)
			continue
		}

		// Drift is the final-state distance from the first integrator.
		drift := "-"
		if baseline == nil {
			baseline = traj.Final()
		} else {
			drift = fmt.Sprintf("%.3g", traj.Final().Sub(baseline).Norm())
		}
		fmt.Fprintf(w, "%s\t%v\t%s\t%v\n", name, traj.Final(), drift, elapsed)
	}

	return w.Flush()
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}

	run, err := scenario.Assemble(cfg)
	if err != nil {
		return err
	}

	duration := run.Grid[len(run.Grid)-1]
	m := viz.NewLiveModel(run.Name, run.System, run.Integrator, run.X0, run.SimCfg.Dt, duration)

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func runDemo(cmd *cobra.Command, args []string) error {
	runs := make([]*scenario.Run, 0, 3)
	for _, name := range scenario.Names() {
		cfg := config.GetPreset(name, "demo")
		run, err := scenario.Assemble(cfg)
		if err != nil {
			return err
		}
		runs = append(runs, run)
	}

	start := time.Now()
	outcomes := scenario.All(context.Background(), runs)
	elapsed := time.Since(start)

	for _, o := range outcomes {
		if o.Err != nil {
			return o.Err
		}
		fmt.Printf("=== %s (%d samples)\n", o.Run.Name, o.Trajectory.Len())
		for name, val := range o.Metrics {
			fmt.Printf("  %s: %.6f\n", name, val)
		}
		fmt.Println()
	}
	fmt.Printf("all scenarios completed in %v\n", elapsed)
	return nil
}
