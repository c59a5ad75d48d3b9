package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"slices"
	"sort"
	"strings"
	"sync"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/heatsim/internal/analysis"
	"github.com/san-kum/heatsim/internal/config"
	"github.com/san-kum/heatsim/internal/heat"
	"github.com/san-kum/heatsim/internal/metrics"
	"github.com/san-kum/heatsim/internal/storage"
	"github.com/san-kum/heatsim/internal/viz"
)

var (
	dataDir string
	// construction flags
	points     int
	scheme     string
	maxTime    float64
	initKind   string
	amplitude  float64
	wavenumber float64
	center     float64
	width      float64
	configFile string
	preset     string
	// output flags
	progressEvery int
	plotMode      string
	outFile       string
	save          bool
)

// main registers the heatsim commands and exits with status 1 if the
// selected command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:          "heatsim",
		Short:        "1-D heat equation solver with spectral differentiation",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".heatsim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a simulation to its end time",
		Args:  cobra.NoArgs,
		RunE:  runSimulation,
	}
	addConstructionFlags(runCmd)
	runCmd.Flags().IntVar(&progressEvery, "progress", 0, "print the time every N steps (0 disables)")
	runCmd.Flags().StringVar(&plotMode, "plot", "ascii", "terminal plot: ascii, braille or none")
	runCmd.Flags().StringVar(&outFile, "out", "", "save a plot image (.png, .svg, .pdf)")
	runCmd.Flags().BoolVar(&save, "save", false, "store the run in the data directory")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run a simulation with a live terminal view",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}
	addConstructionFlags(liveCmd)

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "run the explicit and implicit schemes side by side",
		Args:  cobra.NoArgs,
		RunE:  compareSchemes,
	}
	addConstructionFlags(compareCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "plot a stored profile",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}
	showCmd.Flags().StringVar(&outFile, "out", "", "save a plot image (.png, .svg, .pdf)")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "print run metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "Fourier mode analysis of a stored profile",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tN\tSCHEME\tTIME\tINITIAL")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%d\t%s\t%.2f\t%s\n", name, p.N, p.Scheme, p.MaxTime, p.Initial.Kind)
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, compareCmd, listCmd, showCmd, exportCmd, analyzeCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addConstructionFlags(cmd *cobra.Command) {
	def := config.DefaultConfig()
	cmd.Flags().IntVar(&points, "n", def.N, "number of collocation points")
	cmd.Flags().StringVar(&scheme, "scheme", def.Scheme, "time stepping scheme: Explicit or Implicit")
	cmd.Flags().Float64Var(&maxTime, "time", def.MaxTime, "simulated time")
	cmd.Flags().StringVar(&initKind, "init", def.Initial.Kind, "initial condition: "+strings.Join(config.InitialKinds, ", "))
	cmd.Flags().Float64Var(&amplitude, "amp", def.Initial.Amplitude, "initial amplitude")
	cmd.Flags().Float64Var(&wavenumber, "k", def.Initial.Wavenumber, "wavenumber (sine)")
	cmd.Flags().Float64Var(&center, "center", def.Initial.Center, "center (gaussian, step)")
	cmd.Flags().Float64Var(&width, "width", def.Initial.Width, "width (gaussian, step)")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// resolveConfig layers defaults, preset, config file and explicitly set
// flags, in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("n") {
		cfg.N = points
	}
	if flags.Changed("scheme") {
		cfg.Scheme = scheme
	}
	if flags.Changed("time") {
		cfg.MaxTime = maxTime
	}
	if flags.Changed("init") {
		cfg.Initial.Kind = initKind
	}
	if flags.Changed("amp") {
		cfg.Initial.Amplitude = amplitude
	}
	if flags.Changed("k") {
		cfg.Initial.Wavenumber = wavenumber
	}
	if flags.Changed("center") {
		cfg.Initial.Center = center
	}
	if flags.Changed("width") {
		cfg.Initial.Width = width
	}
	if flags.Changed("progress") {
		cfg.ProgressEvery = progressEvery
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func buildSimulation(cfg *config.Config, s heat.Scheme) (*heat.Simulation, error) {
	sim, err := heat.New(cfg.N, s)
	if err != nil {
		return nil, err
	}
	f, err := cfg.Initial.Func()
	if err != nil {
		return nil, err
	}
	sim.Apply(f)
	return sim, nil
}

func profileMetrics(cfg *config.Config, sim *heat.Simulation) map[string]float64 {
	ms := metrics.Default()
	if strings.EqualFold(cfg.Initial.Kind, config.InitSine) {
		ms = append(ms, metrics.SineDecayError{
			Amplitude:  cfg.Initial.Amplitude,
			Wavenumber: cfg.Initial.Wavenumber,
			Time:       sim.Time(),
		})
	}
	return metrics.Summary(sim.Grid(), sim.Solution(), ms...)
}

func printMetrics(m map[string]float64) {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %s: %.6f\n", name, m[name])
	}
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if err := checkPlotMode(plotMode); err != nil {
		return err
	}
	s, err := cfg.ParsedScheme()
	if err != nil {
		return err
	}

	sim, err := buildSimulation(cfg, s)
	if err != nil {
		return err
	}
	if cfg.ProgressEvery > 0 {
		sim.SetProgress(viz.NewLogProgress(os.Stdout, cfg.ProgressEvery))
	}

	mid0 := sim.Midpoint()
	fmt.Printf("running %s scheme: n=%d dt=%.6g t=%.3g\n", s, sim.N(), sim.Dt(), cfg.MaxTime)
	start := time.Now()
	if err := sim.RunUntil(cfg.MaxTime); err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("steps: %d\n", sim.Steps())
	fmt.Printf("final time: %.6f\n", sim.Time())
	fmt.Printf("midpoint: %.6f\n", sim.Midpoint())

	m := profileMetrics(cfg, sim)
	if rate := analysis.DecayRate(mid0, sim.Midpoint(), 0, sim.Time()); !math.IsNaN(rate) {
		m["midpoint_decay_rate"] = rate
	}
	fmt.Println("\nmetrics:")
	printMetrics(m)
	fmt.Println()

	var sinks []heat.PlotSink
	switch plotMode {
	case "ascii":
		sinks = append(sinks, viz.NewASCIIPlot(os.Stdout, fmt.Sprintf("u(x) at t=%.4f", sim.Time())))
	case "braille":
		sinks = append(sinks, &viz.BraillePlot{W: os.Stdout, Cols: 70, Rows: 18})
	}
	if outFile != "" {
		sinks = append(sinks, viz.NewImagePlot(outFile, fmt.Sprintf("%s, t = %.4f", s, sim.Time())))
	}
	for _, sink := range sinks {
		if err := sim.Render(sink); err != nil {
			return err
		}
	}
	if outFile != "" {
		fmt.Printf("plot saved to %s\n", outFile)
	}

	if !save {
		return nil
	}
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(storage.RunMetadata{
		Scheme:    s.String(),
		N:         sim.N(),
		Dt:        sim.Dt(),
		MaxTime:   cfg.MaxTime,
		FinalTime: sim.Time(),
		Steps:     sim.Steps(),
		Initial:   cfg.Initial.Kind,
		Elapsed:   elapsed,
		Metrics:   m,
	}, sim.Grid(), sim.Solution())
	if err != nil {
		return err
	}
	fmt.Printf("run id: %s\n", runID)
	return nil
}

var plotModes = []string{"ascii", "braille", "none"}

func checkPlotMode(mode string) error {
	if mode == "" || slices.Contains(plotModes, mode) {
		return nil
	}
	return fmt.Errorf("unknown plot mode: %s (available: %s)", mode, strings.Join(plotModes, ", "))
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	s, err := cfg.ParsedScheme()
	if err != nil {
		return err
	}
	sim, err := buildSimulation(cfg, s)
	if err != nil {
		return err
	}

	m := viz.NewLive(sim, cfg.MaxTime, fmt.Sprintf("heat 1d / %s", cfg.Initial.Kind))
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	fmt.Printf("t=%.6f midpoint=%.6f\n", sim.Time(), sim.Midpoint())
	return nil
}

type schemeResult struct {
	scheme  heat.Scheme
	sim     *heat.Simulation
	elapsed time.Duration
}

// runSchemes runs every scheme on cfg concurrently, one goroutine each.
// Results are in heat.Schemes order.
func runSchemes(cfg *config.Config) ([]schemeResult, error) {
	results := make([]schemeResult, len(heat.Schemes))
	errs := make([]error, len(heat.Schemes))

	var wg sync.WaitGroup
	for i, s := range heat.Schemes {
		wg.Add(1)
		go func(idx int, s heat.Scheme) {
			defer wg.Done()

			sim, err := buildSimulation(cfg, s)
			if err != nil {
				errs[idx] = fmt.Errorf("%s: %w", s, err)
				return
			}
			start := time.Now()
			if err := sim.RunUntil(cfg.MaxTime); err != nil {
				errs[idx] = fmt.Errorf("%s: %w", s, err)
				return
			}
			results[idx] = schemeResult{scheme: s, sim: sim, elapsed: time.Since(start)}
		}(i, s)
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return results, nil
}

func resultFor(results []schemeResult, s heat.Scheme) *schemeResult {
	for i := range results {
		if results[i].scheme == s {
			return &results[i]
		}
	}
	return nil
}

func compareSchemes(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	results, err := runSchemes(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("n=%d t=%.3g initial=%s\n\n", cfg.N, cfg.MaxTime, cfg.Initial.Kind)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SCHEME\tDT\tSTEPS\tFINAL TIME\tMIDPOINT\tELAPSED")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%.6g\t%d\t%.6f\t%.6f\t%v\n",
			r.scheme, r.sim.Dt(), r.sim.Steps(), r.sim.Time(), r.sim.Midpoint(), r.elapsed)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	explicit, implicit := resultFor(results, heat.Explicit), resultFor(results, heat.Implicit)
	if explicit == nil || implicit == nil {
		return nil
	}
	fmt.Printf("\nmax |explicit - implicit|: %.6f\n", maxDifference(explicit.sim.Solution(), implicit.sim.Solution()))
	return nil
}

func maxDifference(a, b []float64) float64 {
	d := 0.0
	for i := range a {
		d = math.Max(d, math.Abs(a[i]-b[i]))
	}
	return d
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
	fmt.Fprintln(w, "ID\tSCHEME\tN\tTIME\tFINAL\tSTEPS\tINITIAL\tMIDPOINT")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%.4f\t%d\t%s\t%.6f\n",
			run.ID,
			run.Scheme,
			run.N,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.FinalTime,
			run.Steps,
			run.Initial,
			run.Metrics["midpoint"],
		)
	}

	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	grid, u, err := st.LoadProfile(runID)
	if err != nil {
		return err
	}
	if len(u) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("scheme: %s  n: %d  t: %.4f\n\n", meta.Scheme, meta.N, meta.FinalTime)

	if err := viz.NewASCIIPlot(os.Stdout, "u(x)").Render(grid, u); err != nil {
		return err
	}
	if outFile != "" {
		if err := viz.NewImagePlot(outFile, meta.ID).Render(grid, u); err != nil {
			return err
		}
		fmt.Printf("plot saved to %s\n", outFile)
	}
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	_, u, err := st.LoadProfile(runID)
	if err != nil {
		return err
	}
	if len(u) == 0 {
		return fmt.Errorf("no data")
	}

	fmt.Printf("mode analysis: %s\n\n", meta.ID)

	amps := analysis.Spectrum(u)
	plotData := amps
	if len(plotData) > 32 {
		plotData = plotData[:32]
	}
	graph := asciigraph.Plot(plotData,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption("mode amplitude"),
	)
	fmt.Println(graph)
	fmt.Println()

	k, a := analysis.DominantMode(u)
	fmt.Printf("dominant mode: k=%d amplitude=%.6f\n", k, a)
	if k > 0 && meta.FinalTime > 0 {
		// a pure mode k decays like e^{-k²t}
		kk := float64(k)
		fmt.Printf("single-mode decay factor at t=%.4f: %.6f\n", meta.FinalTime, math.Exp(-heat.Diffusivity*kk*kk*meta.FinalTime))
	}
	return nil
}
