package gendry

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/arthur-debert/gendry/pkg/config"
	"github.com/arthur-debert/gendry/pkg/dryrun"
	"github.com/arthur-debert/gendry/pkg/errors"
	"github.com/arthur-debert/gendry/pkg/filesystem"
	"github.com/arthur-debert/gendry/pkg/logging"
	"github.com/arthur-debert/gendry/pkg/plan"
	"github.com/arthur-debert/gendry/pkg/preview"
	"github.com/arthur-debert/gendry/pkg/report"
	"github.com/arthur-debert/gendry/pkg/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type simulateOptions struct {
	outputDir     string
	skipOverwrite bool
	minimalUpdate bool
	capture       bool
	showData      bool
	workers       int
	format        string
	reportFile    string
	diff          bool
}

func newSimulateCmd(g *globalOptions) *cobra.Command {
	opts := &simulateOptions{}

	cmd := &cobra.Command{
		Use:     "simulate PLAN",
		Short:   MsgSimulateShort,
		Long:    MsgSimulateLong,
		Example: MsgSimulateExample,
		Args:    cobra.ExactArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig(opts.overrides(cmd))
			if err != nil {
				return err
			}
			return runSimulate(cmd, filesystem.NewOS(), cfg, args[0], opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.outputDir, "output-dir", "o", "", MsgFlagOutputDir)
	flags.BoolVar(&opts.skipOverwrite, "skip-overwrite", false, MsgFlagSkipOverwrite)
	flags.BoolVar(&opts.minimalUpdate, "minimal-update", false, MsgFlagMinimalUpdate)
	flags.BoolVar(&opts.capture, "capture", false, MsgFlagCapture)
	flags.BoolVar(&opts.showData, "show-data", false, MsgFlagShowData)
	flags.IntVarP(&opts.workers, "workers", "j", 1, MsgFlagWorkers)
	flags.StringVarP(&opts.format, "format", "f", "auto", MsgFlagFormat)
	flags.StringVar(&opts.reportFile, "report", "", MsgFlagReport)
	flags.BoolVar(&opts.diff, "diff", false, MsgFlagDiff)

	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "term", "text", "json", "yaml", "xml", "markdown"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// overrides returns config keys for the flags the user set explicitly, so
// unset flags do not mask the config file or environment.
func (o *simulateOptions) overrides(cmd *cobra.Command) map[string]interface{} {
	overrides := map[string]interface{}{}
	flags := cmd.Flags()
	if flags.Changed("skip-overwrite") {
		overrides["policy.skip_overwrite"] = o.skipOverwrite
	}
	if flags.Changed("minimal-update") {
		overrides["policy.minimal_update"] = o.minimalUpdate
	}
	if flags.Changed("capture") {
		overrides["capture.enabled"] = o.capture
	}
	if flags.Changed("show-data") {
		overrides["capture.show_data"] = o.showData
	}
	if flags.Changed("workers") {
		overrides["output.workers"] = o.workers
	}
	if flags.Changed("format") {
		overrides["output.format"] = o.format
	}
	if flags.Changed("diff") {
		overrides["output.diff"] = o.diff
	}
	return overrides
}

func runSimulate(cmd *cobra.Command, fsys types.FS, cfg *config.Config, planPath string, opts *simulateOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	p, err := plan.Load(fsys, planPath)
	if err != nil {
		return err
	}
	if opts.outputDir != "" {
		dir, err := filepath.Abs(opts.outputDir)
		if err != nil {
			return fmt.Errorf(MsgErrOutputDir, opts.outputDir, err)
		}
		p.BaseDir = dir
	}

	runID := uuid.NewString()
	logger := log.With().Str("run", runID).Logger()
	logger.Info().Str("plan", planPath).Str("baseDir", p.BaseDir).Int("entries", len(p.Outputs)).Msg("Plan loaded")

	m := dryrun.New(cfg.Policy,
		dryrun.WithFS(fsys),
		dryrun.WithLogger(logging.GetLogger("dryrun").With().Str("run", runID).Logger()),
	)
	if cfg.Capture.Enabled || cfg.Capture.ShowData {
		m.EnableTemplateDataCapturing()
	}

	replayLogger := logging.GetLogger("plan").With().Str("run", runID).Logger()
	if _, err := plan.Replay(ctx, p, m.Processor(), plan.ReplayOptions{Workers: cfg.Output.Workers, Logger: &replayLogger}); err != nil {
		return fmt.Errorf(MsgErrReplay, err)
	}

	rep := report.FromManager(m)
	rep.RunID = runID
	if cfg.Capture.ShowData {
		rep.AttachData(m.CapturedTemplateData)
	}
	if cfg.Output.Diff {
		diffs, err := contentDiffs(fsys, p, m)
		if err != nil {
			return err
		}
		rep.AttachDiffs(diffs)
	}

	format, err := report.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	if opts.reportFile != "" {
		return writeReport(cmd.OutOrStdout(), fsys, rep, format, cfg, opts.reportFile)
	}

	out := cmd.OutOrStdout()
	ropts := report.Options{ShowData: cfg.Capture.ShowData}
	if f, ok := out.(*os.File); ok {
		format = format.Resolve(f)
		ropts.Glamour = report.IsTerminal(f)
	} else if format == report.FormatAuto {
		format = report.FormatText
	}
	return report.Render(out, rep, format, ropts)
}

// contentDiffs diffs the contents of file entries a real run would write
func contentDiffs(fsys types.FS, p *plan.Plan, m *dryrun.Manager) (map[string]string, error) {
	diffs := make(map[string]string)
	for path, contents := range p.FileContents() {
		s, ok := m.Status(path)
		if !ok || !s.Kind.IsWrite() {
			continue
		}
		diff, err := preview.Diff(fsys, path, contents)
		if err != nil {
			return nil, err
		}
		if diff != "" {
			diffs[s.Path] = diff
		}
	}
	return diffs, nil
}

// writeReport renders to a file through fsys; auto means plain text there
func writeReport(out io.Writer, fsys types.FS, rep *report.Report, format report.Format, cfg *config.Config, path string) error {
	if format == report.FormatAuto || format == report.FormatTerminal {
		format = report.FormatText
	}

	var buf bytes.Buffer
	if err := report.Render(&buf, rep, format, report.Options{ShowData: cfg.Capture.ShowData}); err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := fsys.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, errors.ErrFileWrite, MsgErrWriteReport, path).WithDetail("path", path)
		}
	}
	if err := fsys.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, MsgErrWriteReport, path).WithDetail("path", path)
	}

	fmt.Fprintf(out, MsgReportWritten, path)
	return nil
}
