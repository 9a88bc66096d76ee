package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rootscan/rootscan/internal/config"
	"github.com/rootscan/rootscan/roots"
)

var version = "0.1.0"

type options struct {
	lower         string
	upper         string
	epsilon       float64
	maxIterations int
	function      string
	configPath    string
	polish        uint
	stats         bool
	json          bool
}

func newRootCmd() *cobra.Command {

	opts := &options{}

	cmd := &cobra.Command{
		Use:           "rootscan",
		Short:         "Find the real roots of a function over an interval",
		Long:          "rootscan seeds Newton's method at evenly spaced points of [lower, upper] and prints the distinct roots it converges to.",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.lower, "lower", "", "lower bound of the interval (prompted for if unset)")
	flags.StringVar(&opts.upper, "upper", "", "upper bound of the interval (prompted for if unset)")
	flags.Float64Var(&opts.epsilon, "epsilon", roots.DefaultEpsilon, "convergence tolerance, the seeds are 10*epsilon apart")
	flags.IntVar(&opts.maxIterations, "max-iterations", roots.DefaultMaxIterations, "Newton iteration cap per seed")
	flags.StringVar(&opts.function, "function", roots.DefaultFunction, fmt.Sprintf("function to scan, one of %v", roots.Names()))
	flags.StringVar(&opts.configPath, "config", "", fmt.Sprintf("YAML configuration file (default ./%s if present)", config.FileName))
	flags.UintVar(&opts.polish, "polish", 0, "refine the roots to this many bits of precision (0 = off)")
	flags.BoolVar(&opts.stats, "stats", false, "log scan statistics to stderr")
	flags.BoolVar(&opts.json, "json", false, "emit JSON")

	return cmd
}

// loadConfig merges the configuration file into the options that were not set on the command line.
func loadConfig(cmd *cobra.Command, opts *options) error {

	var cfg config.FileConfig
	var err error

	if opts.configPath != "" {
		cfg, err = config.LoadFile(opts.configPath)
	} else {
		var wd string
		if wd, err = os.Getwd(); err != nil {
			return err
		}
		cfg, err = config.LoadLocal(wd)
	}

	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	lit := cfg.ParametersLiteral()
	flags := cmd.Flags()

	if !flags.Changed("epsilon") && lit.Epsilon != 0 {
		opts.epsilon = lit.Epsilon
	}
	if !flags.Changed("max-iterations") && lit.MaxIterations != 0 {
		opts.maxIterations = lit.MaxIterations
	}
	if !flags.Changed("function") && cfg.Function != nil {
		opts.function = *cfg.Function
	}
	if !flags.Changed("polish") && cfg.Polish != nil {
		opts.polish = *cfg.Polish
	}

	return nil
}

// readBound returns the value of the flag, or prompts for it if the flag is unset.
func readBound(cmd *cobra.Command, in *bufio.Reader, flag, value, prompt string, code int) (float64, error) {

	if !cmd.Flags().Changed(flag) {
		fmt.Fprint(cmd.OutOrStdout(), prompt)
		line, err := in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return 0, &exitError{code: code, err: fmt.Errorf("read %s bound: %w", flag, err)}
		}
		value = line
	}

	x, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, &exitError{code: code, err: fmt.Errorf("invalid %s bound %q: not a number", flag, strings.TrimSpace(value))}
	}

	return x, nil
}

func runScan(cmd *cobra.Command, opts *options) error {

	if err := loadConfig(cmd, opts); err != nil {
		return err
	}

	in := bufio.NewReader(cmd.InOrStdin())

	lower, err := readBound(cmd, in, "lower", opts.lower, "Enter lower bound: ", exitLowerBound)
	if err != nil {
		return err
	}

	upper, err := readBound(cmd, in, "upper", opts.upper, "Enter upper bound: ", exitUpperBound)
	if err != nil {
		return err
	}

	f, err := roots.Lookup(opts.function)
	if err != nil {
		return err
	}

	// The flags carry the defaults, so an explicit zero is rejected rather than replaced.
	params, err := roots.NewParameters(opts.epsilon, opts.maxIterations)
	if err != nil {
		return err
	}

	report, err := roots.NewScanner(params).Scan(f, roots.Interval{Lower: lower, Upper: upper})
	if err != nil {
		return err
	}

	if opts.stats {
		logStats(log.New(cmd.ErrOrStderr(), "rootscan: ", 0), opts.function, report)
	}

	res := newResult(opts.function, report)

	if opts.polish > 0 {
		res.polish(f, opts.polish)
	}

	if opts.json {
		return res.writeJSON(cmd.OutOrStdout())
	}

	return res.writeText(cmd.OutOrStdout())
}

func logStats(logger *log.Logger, function string, report roots.Report) {
	logger.Printf("%s on [%v, %v]: seeds=%d rejected=%d exhausted=%d diverged=%d converged=%d out_of_bounds=%d duplicates=%d roots=%d",
		function, report.Lower, report.Upper, report.Seeds, report.Rejected, report.Exhausted, report.Diverged,
		report.Converged(), report.OutOfBounds, report.Duplicates, len(report.Roots))

	if summary, err := report.Summary(); err == nil {
		logger.Printf("newton iterations: %s", summary)
	}
}
