package main

import (
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/go-harry/harry/compute"
	"github.com/go-harry/harry/harryconfig"
	"github.com/go-harry/harry/input"
	"github.com/go-harry/harry/measure"
	"github.com/go-harry/harry/output"
	"github.com/go-harry/harry/output/libsvm"
	"github.com/go-harry/harry/output/text"
	"github.com/go-harry/harry/simmatrix"
	"github.com/go-harry/harry/tokenizer"
)

// computeFlags is the destination pflag binds to. Every field except
// config has a harryconfig.Config counterpart whose value fills it in when
// the user didn't pass that flag on the command line.
type computeFlags struct {
	measure   string
	delim     string
	xrange    string
	yrange    string
	split     string
	format    string
	input     string
	output    string
	inputKind string
	config    string
	workers   int
}

func newComputeCmd(verbose *bool) *cobra.Command {
	f := &computeFlags{}

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Fill a similarity/distance matrix and write it to a sink",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompute(cmd, f, *verbose)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.measure, "measure", measure.DefaultMeasure, "measure name")
	flags.StringVar(&f.delim, "delim", "", "delimiter spec (empty disables tokenization)")
	flags.StringVar(&f.xrange, "xrange", "", "x range spec \"a:b\"")
	flags.StringVar(&f.yrange, "yrange", "", "y range spec \"a:b\"")
	flags.StringVar(&f.split, "split", "", "split spec \"blocks:index\"")
	flags.StringVar(&f.format, "format", "text", "output format: text|libsvm")
	flags.StringVar(&f.input, "input", "", "input path")
	flags.StringVar(&f.output, "output", "-", "output path (\"-\" for stdout)")
	flags.StringVar(&f.inputKind, "input-kind", "line", "input adapter: line|file|dir|archive")
	flags.StringVar(&f.config, "config", "", "optional config file (yaml/toml/json)")
	flags.IntVar(&f.workers, "workers", 0, "worker pool size (0 = HARRY_WORKERS or GOMAXPROCS)")

	return cmd
}

// applyConfigFile merges file-sourced defaults into f for every flag the
// user did not explicitly set, matching viper's documented flags-win
// precedence.
func applyConfigFile(cmd *cobra.Command, f *computeFlags) error {
	if f.config == "" {
		return nil
	}

	cfg, err := harryconfig.Load(f.config)
	if err != nil {
		return err
	}

	changed := cmd.Flags().Changed
	if !changed("measure") && cfg.Measure != "" {
		f.measure = cfg.Measure
	}
	if !changed("delim") && cfg.Delim != "" {
		f.delim = cfg.Delim
	}
	if !changed("xrange") && cfg.XRange != "" {
		f.xrange = cfg.XRange
	}
	if !changed("yrange") && cfg.YRange != "" {
		f.yrange = cfg.YRange
	}
	if !changed("split") && cfg.Split != "" {
		f.split = cfg.Split
	}
	if !changed("format") && cfg.Format != "" {
		f.format = cfg.Format
	}
	if !changed("input") && cfg.Input != "" {
		f.input = cfg.Input
	}
	if !changed("output") && cfg.Output != "" {
		f.output = cfg.Output
	}
	if !changed("input-kind") && cfg.InputKind != "" {
		f.inputKind = cfg.InputKind
	}
	if !changed("workers") && cfg.Workers != 0 {
		f.workers = cfg.Workers
	}

	return nil
}

func resolveWorkers(flagVal int) int {
	if flagVal > 0 {
		return flagVal
	}
	if env, ok := os.LookupEnv("HARRY_WORKERS"); ok {
		if n, err := strconv.Atoi(env); err == nil && n > 0 {
			return n
		}
	}

	return runtime.GOMAXPROCS(0)
}

func buildInputAdapter(f *computeFlags) (input.Adapter, error) {
	switch f.inputKind {
	case "line":
		return input.LineAdapter{Path: f.input}, nil
	case "file":
		return input.FileAdapter{Paths: []string{f.input}}, nil
	case "dir":
		return input.DirAdapter{Root: f.input, Recursive: true}, nil
	case "archive":
		return input.ArchiveAdapter{Path: f.input}, nil
	default:
		return nil, fmt.Errorf("compute: unknown input-kind %q", f.inputKind)
	}
}

func buildOutputAdapter(format string) (output.Adapter, error) {
	switch format {
	case "text":
		return &text.Writer{}, nil
	case "libsvm":
		return &libsvm.Writer{}, nil
	default:
		return nil, fmt.Errorf("compute: unknown format %q", format)
	}
}

func runCompute(cmd *cobra.Command, f *computeFlags, verbose bool) error {
	if err := applyConfigFile(cmd, f); err != nil {
		return err
	}

	logger := newLogger(verbose)

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	adapter, err := buildInputAdapter(f)
	if err != nil {
		return err
	}

	batch, err := adapter.Read(ctx)
	if err != nil {
		return fmt.Errorf("compute: read input: %w", err)
	}

	if f.delim != "" {
		tokenizer.Set(f.delim)
		for i, s := range batch {
			tok, err := tokenizer.Tokenize(s)
			if err != nil {
				return fmt.Errorf("compute: tokenize element %d: %w", i, err)
			}
			batch[i] = tok
		}
	}

	m := simmatrix.Init(batch)
	if f.xrange != "" {
		if err := m.SetXRange(f.xrange); err != nil {
			logger.Warn().Err(err).Msg("invalid xrange, reverted to full range")
		}
	}
	if f.yrange != "" {
		if err := m.SetYRange(f.yrange); err != nil {
			logger.Warn().Err(err).Msg("invalid yrange, reverted to full range")
		}
	}
	if f.split != "" {
		if err := m.Split(f.split); err != nil {
			return fmt.Errorf("compute: split: %w", err)
		}
	}
	if err := m.Allocate(); err != nil {
		return fmt.Errorf("compute: allocate matrix: %w", err)
	}

	reg := measure.New()
	if err := reg.Configure(f.measure); err != nil {
		logger.Warn().Err(err).Msg("unknown measure, falling back to default")
	}

	opts := compute.DefaultOptions()
	opts.Workers = resolveWorkers(f.workers)

	stats, err := compute.Run(ctx, m, batch, reg, opts, logger)
	if err != nil {
		return fmt.Errorf("compute: fill matrix: %w", err)
	}
	logger.Info().Int("cells", stats.Cells).Dur("elapsed", stats.Elapsed).Msg("matrix computed")

	adapterOut, err := buildOutputAdapter(f.format)
	if err != nil {
		logger.Warn().Err(err).Msg("unknown format, falling back to text")
		adapterOut = &text.Writer{}
	}
	if err := adapterOut.Open(f.output); err != nil {
		return fmt.Errorf("compute: open output: %w", err)
	}
	defer adapterOut.Close()

	n, err := adapterOut.Write(m)
	if err != nil {
		return fmt.Errorf("compute: write output: %w", err)
	}
	logger.Info().Int("records", n).Msg("output written")

	return nil
}
