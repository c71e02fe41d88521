package main

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/sghaida/gopatterns/internal/catalog"
	"github.com/sghaida/gopatterns/internal/config"
	"github.com/sghaida/gopatterns/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// app holds everything one CLI invocation needs.
type app struct {
	cfg    config.Config
	reg    *catalog.Registry
	stdout io.Writer
	stderr io.Writer
	runID  string

	// newLogger is swapped in tests.
	newLogger func(config.Config, io.Writer) (*zap.Logger, error)
	log       *zap.Logger

	verbose bool
}

func newApp(cfg config.Config, reg *catalog.Registry, stdout, stderr io.Writer) *app {
	return &app{
		cfg:       cfg,
		reg:       reg,
		stdout:    stdout,
		stderr:    stderr,
		runID:     uuid.NewString(),
		newLogger: logging.New,
		log:       zap.NewNop(),
	}
}

// execute runs the command tree against args and returns the exit code.
func (a *app) execute(args []string) int {
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	err := root.Execute()
	if err != nil {
		_, _ = fmt.Fprintln(a.stderr, "error:", err)
	}
	return exitCode(err)
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "patterns",
		Short: "Run small design pattern demos",
		Long: `patterns runs minimal, self-contained demonstrations of classic design
patterns. Every demo prints a fixed transcript.

Run "patterns list" to see what is available.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			if a.verbose {
				cfg.LogLevel = "debug"
			}
			log, err := a.newLogger(cfg, a.stderr)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.log = log.With(zap.String("run_id", a.runID))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err: err}
	})

	root.AddCommand(a.listCmd(), a.runCmd(), a.allCmd())
	return root
}

// listEntry is the YAML/text shape of one catalogue row.
type listEntry struct {
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
	Summary  string `yaml:"summary"`
}

func (a *app) listCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List available demos",
		Aliases: []string{"ls"},
		Args:    usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := make([]listEntry, 0, a.reg.Len())
			for _, d := range a.reg.All() {
				entries = append(entries, listEntry{Name: d.Name, Category: string(d.Category), Summary: d.Summary})
			}

			switch strings.ToLower(format) {
			case "text":
				return writeTable(cmd.OutOrStdout(), entries)
			case "yaml":
				enc := yaml.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent(2)
				if err := enc.Encode(entries); err != nil {
					return fmt.Errorf("encode yaml: %w", err)
				}
				return enc.Close()
			default:
				return usageError{err: fmt.Errorf("unknown format %q (want text or yaml)", format)}
			}
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text or yaml")
	return cmd
}

func writeTable(w io.Writer, entries []listEntry) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, e := range entries {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Name, e.Category, e.Summary)
	}
	return tw.Flush()
}

func (a *app) runCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "run NAME...",
		Short: "Run one or more demos by name",
		Args:  usageArgs(cobra.MinimumNArgs(1)),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return a.reg.Names(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Resolve everything first so a typo fails before any output.
			for _, name := range args {
				if _, err := a.reg.Resolve(name); err != nil {
					return err
				}
			}
			return a.runDemos(cmd.OutOrStdout(), args, out)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the transcript to this file instead of stdout")
	return cmd
}

func (a *app) allCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "all",
		Short: "Run every demo in catalogue order",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDemos(cmd.OutOrStdout(), a.reg.Names(), out)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the transcript to this file instead of stdout")
	return cmd
}

// usageArgs marks positional-argument validation failures as usage errors.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return usageError{err: err}
		}
		return nil
	}
}

// runDemos runs names in order. With outPath set the transcript is written
// atomically to that file; otherwise it streams to stdout.
func (a *app) runDemos(stdout io.Writer, names []string, outPath string) error {
	var buf bytes.Buffer
	w := stdout
	if outPath != "" {
		w = &buf
	}

	headers := a.cfg.Headers && len(names) > 1
	for i, name := range names {
		if headers {
			if i > 0 {
				_, _ = fmt.Fprintln(w)
			}
			_, _ = fmt.Fprintf(w, "== %s ==\n", name)
		}

		start := time.Now()
		a.log.Debug("running demo", zap.String("demo", name))
		if err := a.reg.Run(name, w); err != nil {
			a.log.Error("demo failed", zap.String("demo", name), zap.Error(err))
			return err
		}
		a.log.Debug("demo finished", zap.String("demo", name), zap.Duration("took", time.Since(start)))
	}

	if outPath == "" {
		return nil
	}
	n, err := saveTranscript(outPath, &buf, 0o644)
	if err != nil {
		return fmt.Errorf("write transcript: %w", err)
	}
	a.log.Info("transcript written", zap.String("path", outPath), zap.Int64("bytes", n))
	return nil
}
