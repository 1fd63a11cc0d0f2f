package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/skidsim/internal/config"
	"github.com/san-kum/skidsim/internal/control"
	"github.com/san-kum/skidsim/internal/experiment"
	"github.com/san-kum/skidsim/internal/metrics"
	"github.com/san-kum/skidsim/internal/sim"
	"github.com/san-kum/skidsim/internal/storage"
	"github.com/san-kum/skidsim/internal/viz"
)

var (
	dataDir    string
	kp         float64
	ki         float64
	kd         float64
	target     float64
	heading    float64
	dt         float64
	duration   float64
	maxRate    float64
	historyCap int
	configFile string
	preset     string
	frameRate  int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "skidsim",
		Short: "skid-steer heading PID simulator",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the live dashboard when no command given
			return runLive(cmd, args)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".skidsim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a headless simulation and store the result",
		RunE:  runSimulation,
	}
	addLoopFlags(runCmd)
	runCmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration in seconds")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run with the live dashboard",
		RunE:  runLive,
	}
	addLoopFlags(liveCmd)
	liveCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	liveCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	liveCmd.Flags().IntVar(&frameRate, "fps", 10, "tick rate")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run samples to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range config.ListPresets() {
				fmt.Println(p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, listCmd, plotCmd, exportCmd, exportCSVCmd, exportJSONCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addLoopFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&kp, "kp", config.DefaultKp, "proportional gain")
	cmd.Flags().Float64Var(&ki, "ki", config.DefaultKi, "integral gain")
	cmd.Flags().Float64Var(&kd, "kd", config.DefaultKd, "derivative gain")
	cmd.Flags().Float64Var(&target, "target", config.DefaultTarget, "desired heading (degrees)")
	cmd.Flags().Float64Var(&heading, "heading", 0, "initial heading (degrees)")
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep (seconds)")
	cmd.Flags().Float64Var(&maxRate, "max-rate", config.DefaultMaxRate, "max turn rate (degrees/second)")
	cmd.Flags().IntVar(&historyCap, "cap", config.DefaultCap, "history buffer size")
}

// applyConfig folds preset and config file values into the flag variables.
// Explicit CLI flags win over the config file, which wins over the preset.
func applyConfig(cmd *cobra.Command) error {
	if preset != "" {
		cfg := config.GetPreset(preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		applyUnchanged(cmd, cfg)
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		applyUnchanged(cmd, cfg)
	}

	return nil
}

func applyUnchanged(cmd *cobra.Command, cfg *config.Config) {
	if !cmd.Flags().Changed("kp") {
		kp = cfg.Controller.Kp
	}
	if !cmd.Flags().Changed("ki") {
		ki = cfg.Controller.Ki
	}
	if !cmd.Flags().Changed("kd") {
		kd = cfg.Controller.Kd
	}
	if !cmd.Flags().Changed("target") {
		target = cfg.Controller.Target
	}
	if !cmd.Flags().Changed("heading") {
		heading = cfg.InitialHeading
	}
	if !cmd.Flags().Changed("dt") {
		dt = cfg.Dt
	}
	if cfg.Duration > 0 && cmd.Flags().Lookup("time") != nil && !cmd.Flags().Changed("time") {
		duration = cfg.Duration
	}
	if !cmd.Flags().Changed("max-rate") {
		maxRate = cfg.MaxTurnRate
	}
	if cfg.HistoryCap > 0 && !cmd.Flags().Changed("cap") {
		historyCap = cfg.HistoryCap
	}
}

func runSimulation(cmd *cobra.Command, args []string) error {
	if err := applyConfig(cmd); err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	exp := experiment.New(experiment.Config{
		Kp: kp, Ki: ki, Kd: kd,
		Target:         target,
		InitialHeading: heading,
		MaxTurnRate:    maxRate,
		HistoryCap:     historyCap,
		Dt:             dt,
		Duration:       duration,
	}, metrics.Default())

	fmt.Printf("running heading loop (kp=%.2f ki=%.2f kd=%.2f target=%.1f)...\n", kp, ki, kd, target)
	start := time.Now()

	result, err := exp.Run(context.Background())
	if err != nil {
		return err
	}

	runID, err := st.Save(storage.RunMetadata{
		Kp: kp, Ki: ki, Kd: kd,
		Target:   target,
		Dt:       dt,
		Duration: duration,
		MaxRate:  maxRate,
		Final:    result.Final,
		Metrics:  result.Metrics,
	}, result.Samples)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", time.Since(start))
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", len(result.Samples))
	fmt.Printf("final heading: %.2f°\n", result.Final)
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.4f\n", name, val)
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	if err := applyConfig(cmd); err != nil {
		return err
	}

	pid := control.NewPID(kp, ki, kd)
	s := sim.New(pid, sim.Config{
		InitialHeading: heading,
		DesiredHeading: target,
		MaxTurnRate:    maxRate,
		HistoryCap:     historyCap,
	})

	m := viz.NewModel(s, dt, frameRate)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
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
	fmt.Fprintln(w, "ID\tTIME\tKP\tKI\tKD\tTARGET\tDURATION\tFINAL")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%.2f\t%.2f\t%.1f\t%.1fs\t%.1f\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Kp, run.Ki, run.Kd,
			run.Target,
			run.Duration,
			run.Final,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	samples, err := st.LoadSamples(runID)
	if err != nil {
		return err
	}

	if len(samples) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("gains: kp=%.2f ki=%.2f kd=%.2f target=%.1f\n", meta.Kp, meta.Ki, meta.Kd, meta.Target)
	fmt.Printf("samples: %d\n\n", len(samples))

	series := []struct {
		caption string
		extract func(s sim.Sample) float64
	}{
		{"heading (deg)", func(s sim.Sample) float64 { return sim.WrapHeading(s.Heading) }},
		{"error (deg)", func(s sim.Sample) float64 { return s.Error }},
		{"output (deg/s)", func(s sim.Sample) float64 { return s.Output }},
	}

	for _, sp := range series {
		data := make([]float64, len(samples))
		for i, s := range samples {
			data[i] = sp.extract(s)
		}

		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(sp.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	return storage.ExportJSON(os.Stdout, meta, nil)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	samples, err := st.LoadSamples(args[0])
	if err != nil {
		return err
	}

	return storage.ExportCSV(os.Stdout, samples)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	samples, err := st.LoadSamples(args[0])
	if err != nil {
		return err
	}

	return storage.ExportJSON(os.Stdout, meta, samples)
}
