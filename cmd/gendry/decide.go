package gendry

import (
	"fmt"

	"github.com/arthur-debert/gendry/pkg/dryrun"
	"github.com/arthur-debert/gendry/pkg/filesystem"
	"github.com/arthur-debert/gendry/pkg/types"
	"github.com/spf13/cobra"
)

type decideOptions struct {
	exists        bool
	skipOverwrite bool
	minimalUpdate bool
}

func newDecideCmd(g *globalOptions) *cobra.Command {
	opts := &decideOptions{}

	cmd := &cobra.Command{
		Use:     "decide [PATH]",
		Short:   MsgDecideShort,
		Long:    MsgDecideLong,
		Args:    cobra.MaximumNArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := map[string]interface{}{}
			if cmd.Flags().Changed("skip-overwrite") {
				overrides["policy.skip_overwrite"] = opts.skipOverwrite
			}
			if cmd.Flags().Changed("minimal-update") {
				overrides["policy.minimal_update"] = opts.minimalUpdate
			}
			cfg, err := g.loadConfig(overrides)
			if err != nil {
				return err
			}

			if len(args) == 0 {
				kind := dryrun.DecideFor(cfg.Policy, opts.exists)
				fmt.Fprintf(cmd.OutOrStdout(), MsgDecideFormat, kind, kind.Code(), kind.Description())
				return nil
			}
			return decidePath(cmd, filesystem.NewOS(), cfg.Policy, args[0])
		},
	}

	cmd.Flags().BoolVar(&opts.exists, "exists", false, MsgFlagExists)
	cmd.Flags().BoolVar(&opts.skipOverwrite, "skip-overwrite", false, MsgFlagSkipOverwrite)
	cmd.Flags().BoolVar(&opts.minimalUpdate, "minimal-update", false, MsgFlagMinimalUpdate)

	return cmd
}

// decidePath runs a single simulated write against the real filesystem
func decidePath(cmd *cobra.Command, fsys types.FS, policy types.Policy, path string) error {
	m := dryrun.New(policy, dryrun.WithFS(fsys))
	handle, err := m.WriteToFile(path, nil)
	if err != nil {
		return err
	}

	kind := handle.Kind()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, MsgDecideFormat, kind, kind.Code(), handle.Path())
	if s, ok := m.Status(handle.Path()); ok && s.Context != "" {
		fmt.Fprintf(out, MsgContextFormat, s.Context)
	}
	return nil
}
