package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/numlab/internal/config"
	"github.com/san-kum/numlab/internal/experiment"
	"github.com/san-kum/numlab/internal/optim"
	"github.com/san-kum/numlab/internal/quadrature"
	"github.com/san-kum/numlab/internal/report"
	"github.com/san-kum/numlab/internal/storage"
	"github.com/san-kum/numlab/internal/tui"
	"github.com/san-kum/numlab/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	plot       bool
	save       bool
	showValues bool
	workers    int

	tolerance float64
	omega     float64
	sweeps    int
	step      float64
	steps     int
	seed      int64

	ruleName  string
	integrand string
	lower     float64
	upper     float64
	intervals int

	omegaMin    float64
	omegaMax    float64
	omegaPoints int

	outFile string
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "numlab",
		Short:         "classical numerical methods, one example driver each",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return tui.Run(experiment.NewRegistry(), cfg, saver())
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".numlab", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().BoolVar(&plot, "plot", false, "plot recorded series")
	rootCmd.PersistentFlags().BoolVar(&save, "save", false, "save runs to the data directory")
	rootCmd.PersistentFlags().BoolVar(&showValues, "values", false, "print named result values")

	runCmd := &cobra.Command{
		Use:   "run [driver]",
		Short: "run one example driver",
		Args:  cobra.ExactArgs(1),
		RunE:  runDriver,
	}
	runCmd.Flags().Float64Var(&tolerance, "tol", 0, "tolerance for the driver's family")
	runCmd.Flags().Float64Var(&omega, "omega", config.DefaultOmega, "SOR relaxation factor")
	runCmd.Flags().IntVar(&sweeps, "sweeps", config.DefaultSweeps, "sweeps for the linear solvers")
	runCmd.Flags().Float64Var(&step, "h", config.DefaultStep, "ODE step size")
	runCmd.Flags().IntVar(&steps, "n", config.DefaultSteps, "ODE step count")
	runCmd.Flags().Int64Var(&seed, "seed", config.DefaultSeed, "seed for random starting vectors")

	allCmd := &cobra.Command{
		Use:   "all",
		Short: "run every driver in order",
		Args:  cobra.NoArgs,
		RunE:  runAll,
	}
	allCmd.Flags().IntVarP(&workers, "workers", "w", runtime.NumCPU(), "drivers run concurrently")

	sweepCmd := &cobra.Command{
		Use:   "sweep [driver]",
		Short: "run one driver under every preset",
		Long:  "run one driver under every preset; --config is loaded over each preset and --preset is ignored",
		Args:  cobra.ExactArgs(1),
		RunE:  runSweep,
	}
	sweepCmd.Flags().IntVarP(&workers, "workers", "w", runtime.NumCPU(), "presets run concurrently")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list drivers",
		Args:  cobra.NoArgs,
		RunE:  listDrivers,
	}

	quadCmd := &cobra.Command{
		Use:   "quad",
		Short: "integrate one function with one rule",
		Args:  cobra.NoArgs,
		RunE:  runQuad,
	}
	quadCmd.Flags().StringVar(&ruleName, "rule", "simpson13", "quadrature rule")
	quadCmd.Flags().StringVar(&integrand, "f", "sin", fmt.Sprintf("integrand %v", quadrature.IntegrandNames()))
	quadCmd.Flags().Float64Var(&lower, "a", 0, "lower limit")
	quadCmd.Flags().Float64Var(&upper, "b", 1, "upper limit")
	quadCmd.Flags().IntVar(&intervals, "n", 12, "number of intervals")

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "compare ODE steppers on y' = x + y",
		Args:  cobra.NoArgs,
		RunE:  runCompare,
	}
	compareCmd.Flags().Float64Var(&step, "h", config.DefaultStep, "step size")
	compareCmd.Flags().IntVar(&steps, "n", config.DefaultSteps, "step count")

	tuneCmd := &cobra.Command{
		Use:   "tune-sor",
		Short: "sweep the SOR relaxation factor",
		Args:  cobra.NoArgs,
		RunE:  runTuneSOR,
	}
	tuneCmd.Flags().Float64Var(&omegaMin, "min", 1.0, "smallest omega")
	tuneCmd.Flags().Float64Var(&omegaMax, "max", 1.9, "largest omega")
	tuneCmd.Flags().IntVar(&omegaPoints, "points", 19, "grid points")
	tuneCmd.Flags().IntVar(&sweeps, "sweeps", config.DefaultSweeps, "sweeps per trial")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("presets:")
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "list saved runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "show a saved run with plots",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVarP(&outFile, "output", "o", "", "output file (default stdout)")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run series to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}
	exportCSVCmd.Flags().StringVarP(&outFile, "output", "o", "", "output file (default stdout)")

	rootCmd.AddCommand(runCmd, allCmd, sweepCmd, listCmd, quadCmd, compareCmd, tuneCmd, presetsCmd, runsCmd, plotCmd, exportJSONCmd, exportCSVCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, viz.ErrorStyle.Render("error:"), err)
		os.Exit(1)
	}
}

// loadConfig resolves defaults, then the preset, then the config file, then
// any flag set explicitly on the command line.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("omega") {
		cfg.Linear.Omega = omega
	}
	if flags.Changed("sweeps") {
		cfg.Linear.Sweeps = sweeps
		cfg.Linear.JacobiSweeps = sweeps
	}
	if flags.Changed("h") {
		cfg.ODE.Step = step
	}
	if flags.Changed("n") {
		cfg.ODE.Steps = steps
	}
	if flags.Changed("seed") {
		cfg.Eigen.Seed = seed
	}

	return cfg, cfg.Validate()
}

// applyTolerance routes --tol to the section the driver reads.
func applyTolerance(cmd *cobra.Command, cfg *config.Config, family string) {
	if !cmd.Flags().Changed("tol") {
		return
	}
	switch family {
	case experiment.FamilyRoots:
		cfg.Roots.Tolerance = tolerance
		cfg.Roots.NewtonTolerance = tolerance
	case experiment.FamilyMatrix:
		cfg.Eigen.Tolerance = tolerance
	}
}

func saver() func(*report.Report) error {
	if !save {
		return nil
	}
	st := storage.New(dataDir)
	return func(r *report.Report) error {
		_, err := st.Save(r)
		return err
	}
}

func show(r *report.Report) error {
	opts := viz.Options{Plot: plot, Values: showValues}
	if err := viz.Render(os.Stdout, r, opts); err != nil {
		return err
	}

	if !save {
		return nil
	}
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(r)
	if err != nil {
		return err
	}
	fmt.Printf("\nrun id: %s\n", runID)
	return nil
}

func runDriver(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	d, err := experiment.NewRegistry().Get(args[0])
	if err != nil {
		return err
	}
	applyTolerance(cmd, cfg, d.Family)
	if err := cfg.Validate(); err != nil {
		return err
	}

	r, err := d.Execute(context.Background(), cfg)
	if err != nil {
		return renderFailure(os.Stdout, r, err)
	}
	return show(r)
}

// renderFailure prints whatever a failed driver produced and returns its
// error, with any render error attached.
func renderFailure(w io.Writer, r *report.Report, runErr error) error {
	if r == nil || len(r.Sections) == 0 {
		return runErr
	}
	if err := viz.Render(w, r, viz.Options{Plot: plot, Values: showValues}); err != nil {
		return fmt.Errorf("%w (render: %v)", runErr, err)
	}
	return runErr
}

func runAll(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	drivers := experiment.NewRegistry().List()
	outcomes := experiment.NewBatch(workers).Run(context.Background(), drivers, cfg)
	for _, o := range outcomes {
		if o.Err != nil {
			fmt.Fprintln(os.Stderr, viz.ErrorStyle.Render("error:"), o.Err)
			continue
		}
		if err := show(o.Report); err != nil {
			return err
		}
		fmt.Println()
	}

	if failed := experiment.Failed(outcomes); failed > 0 {
		return fmt.Errorf("%d drivers failed", failed)
	}
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	d, err := experiment.NewRegistry().Get(args[0])
	if err != nil {
		return err
	}

	names := config.ListPresets()
	outcomes := experiment.NewBatch(workers).Presets(context.Background(), d, names, configFile)

	keys := map[string]bool{}
	for _, o := range outcomes {
		if o.Report == nil {
			continue
		}
		for k := range o.Report.Values {
			keys[k] = true
		}
	}
	cols := make([]string, 0, len(keys))
	for k := range keys {
		cols = append(cols, k)
	}
	sort.Strings(cols)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "PRESET\t%s\n", strings.ToUpper(strings.Join(cols, "\t")))
	for _, o := range outcomes {
		if o.Err != nil {
			fmt.Fprintf(w, "%s\terror: %v\n", o.Label, o.Err)
			continue
		}
		row := make([]string, len(cols))
		for i, k := range cols {
			if v, ok := o.Report.Values[k]; ok {
				row[i] = fmt.Sprintf("%.6g", v)
			} else {
				row[i] = "-"
			}
		}
		fmt.Fprintf(w, "%s\t%s\n", o.Label, strings.Join(row, "\t"))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if failed := experiment.Failed(outcomes); failed > 0 {
		return fmt.Errorf("%d presets failed", failed)
	}
	return nil
}

func listDrivers(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tFAMILY\tTITLE")

	for _, d := range experiment.NewRegistry().List() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", d.Name, d.Family, d.Title)
	}

	return w.Flush()
}

func runQuad(cmd *cobra.Command, args []string) error {
	r, err := experiment.Quad(ruleName, integrand, lower, upper, intervals)
	if err != nil {
		return err
	}
	return show(r)
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	r, err := experiment.Compare(context.Background(), cfg)
	if err != nil {
		return err
	}
	return show(r)
}

func runTuneSOR(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("min") {
		cfg.Linear.OmegaMin = omegaMin
	}
	if flags.Changed("max") {
		cfg.Linear.OmegaMax = omegaMax
	}
	if flags.Changed("points") {
		cfg.Linear.OmegaPoints = omegaPoints
	}
	if cfg.Linear.OmegaPoints < 1 {
		return fmt.Errorf("points must be positive, got %d", cfg.Linear.OmegaPoints)
	}

	grid := optim.Linspace(cfg.Linear.OmegaMin, cfg.Linear.OmegaMax, cfg.Linear.OmegaPoints)
	r, err := experiment.TuneSOR(context.Background(), cfg, grid)
	if err != nil {
		return err
	}
	return show(r)
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
	fmt.Fprintln(w, "ID\tDRIVER\tFAMILY\tTIME\tSERIES\tWARNINGS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\n",
			run.ID,
			run.Driver,
			run.Family,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			len(run.Series),
			len(run.Warnings),
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	r, err := st.LoadReport(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("run %s (%s)\n", args[0], r.CreatedAt.Format("2006-01-02 15:04:05"))
	return viz.Render(os.Stdout, r, viz.Options{Plot: true, Values: true})
}

func exportJSON(cmd *cobra.Command, args []string) error {
	return export(args[0], func(st *storage.Store, f *os.File) error {
		return st.ExportJSON(f, args[0])
	})
}

func exportCSV(cmd *cobra.Command, args []string) error {
	return export(args[0], func(st *storage.Store, f *os.File) error {
		return st.ExportCSV(f, args[0])
	})
}

func export(runID string, write func(*storage.Store, *os.File) error) error {
	st := storage.New(dataDir)
	if outFile == "" {
		return write(st, os.Stdout)
	}

	f, err := os.Create(outFile)
	if err != nil {
		return err
	}
	if err := write(st, f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	fmt.Printf("exported %s to %s\n", runID, outFile)
	return nil
}
