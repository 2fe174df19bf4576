package cmd

import (
	"fmt"
	"log/slog"

	"github.com/adamsitnik/ClonePlayground/internal/harness"
	"github.com/adamsitnik/ClonePlayground/internal/textgen"
	"github.com/adamsitnik/ClonePlayground/internal/variants"
	"github.com/spf13/cobra"
)

var (
	runSize        int
	runCharset     string
	runRepeatChar  string
	runReps        int
	runWarmup      int
	runFormat      string
	runBaseline    string
	runSave        string
	runBaselineDir string
	runTolerance   float64
)

var runCmd = &cobra.Command{
	Use:   "run [group...]",
	Short: "Run benchmark groups and report statistics",
	Long: `Run generates one sample buffer, binds every benchmark group to it and
measures the named groups (all registered groups when none are named).

Each variant is measured over several repetitions of a statistical timing
loop; warm-up repetitions are discarded and the rest are aggregated into
mean, standard deviation and throughput figures. Results can be saved as
a named baseline and later runs compared against it.`,
	RunE: runBenchmarks,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().IntVar(&runSize, "size", textgen.DefaultSize, "sample buffer size in characters")
	runCmd.Flags().StringVar(&runCharset, "charset", textgen.DefaultCharset, "characters the random buffer is drawn from")
	runCmd.Flags().StringVar(&runRepeatChar, "repeat-char", "", "fill the buffer with one repeated character instead of random data")
	runCmd.Flags().IntVar(&runReps, "reps", harness.DefaultOptions().Repetitions, "measured repetitions per variant")
	runCmd.Flags().IntVar(&runWarmup, "warmup", harness.DefaultOptions().Warmup, "warm-up repetitions discarded before measuring")
	runCmd.Flags().StringVar(&runFormat, "format", harness.FormatText, "output format: text or json")
	runCmd.Flags().StringVar(&runBaseline, "baseline", "", "compare results against the named baseline")
	runCmd.Flags().StringVar(&runSave, "save-baseline", "", "save results as the named baseline")
	runCmd.Flags().StringVar(&runBaselineDir, "baseline-dir", ".clonebench", "directory for baseline snapshots")
	runCmd.Flags().Float64Var(&runTolerance, "tolerance", 0.10, "allowed mean-time regression fraction for baseline comparison")
}

func runBenchmarks(cmd *cobra.Command, args []string) error {
	data, err := sampleData()
	if err != nil {
		return err
	}
	for _, g := range variants.Groups(data) {
		harness.Register(g)
	}

	names := args
	if len(names) == 0 {
		names = harness.Groups()
	}
	opts := harness.Options{Repetitions: runReps, Warmup: runWarmup}

	var all []harness.Result
	for _, name := range names {
		g, ok := harness.Lookup(name)
		if !ok {
			return fmt.Errorf("unknown benchmark group %q", name)
		}
		slog.Info("running benchmark group",
			"group", name, "size", runSize, "reps", runReps, "warmup", runWarmup)
		results, err := harness.Run(g, opts)
		if err != nil {
			return err
		}
		all = append(all, results...)
	}

	if err := harness.WriteReport(cmd.OutOrStdout(), runFormat, all); err != nil {
		return err
	}

	if runSave != "" {
		path, err := harness.SaveBaseline(runBaselineDir, runSave, all)
		if err != nil {
			return err
		}
		slog.Info("baseline saved", "name", runSave, "path", path)
	}

	if runBaseline != "" {
		base, err := harness.LoadBaseline(runBaselineDir, runBaseline)
		if err != nil {
			return err
		}
		regressions := harness.Compare(all, base, runTolerance)
		for _, r := range regressions {
			slog.Warn("regression against baseline",
				"variant", r.Key, "baseline", r.BaselineMean,
				"current", r.CurrentMean, "ratio", fmt.Sprintf("%.2fx", r.Ratio))
		}
		if len(regressions) > 0 {
			return fmt.Errorf("%d variant(s) regressed more than %.0f%% against baseline %q",
				len(regressions), runTolerance*100, runBaseline)
		}
		slog.Info("no regressions against baseline", "name", runBaseline)
	}
	return nil
}

// sampleData generates the buffer every group in this run is bound to,
// keeping the timed length identical across compared variants.
func sampleData() ([]byte, error) {
	if runRepeatChar != "" {
		if len(runRepeatChar) != 1 {
			return nil, fmt.Errorf("--repeat-char takes a single character, got %q", runRepeatChar)
		}
		return textgen.Repeat(runSize, runRepeatChar[0])
	}
	return textgen.Random(runSize, runCharset)
}
