package gendry

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/gendry/pkg/config"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

// configDocument mirrors config.Config with TOML tags for printing
type configDocument struct {
	Policy struct {
		SkipOverwrite bool `toml:"skip_overwrite"`
		MinimalUpdate bool `toml:"minimal_update"`
	} `toml:"policy"`
	Capture struct {
		Enabled  bool `toml:"enabled"`
		ShowData bool `toml:"show_data"`
	} `toml:"capture"`
	Output struct {
		Format  string `toml:"format"`
		Workers int    `toml:"workers"`
		Diff    bool   `toml:"diff"`
	} `toml:"output"`
}

func newConfigCmd(g *globalOptions) *cobra.Command {
	var defaults bool

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if defaults {
				fmt.Fprint(out, config.DefaultsContent())
				return nil
			}

			cfg, err := g.loadConfig(nil)
			if err != nil {
				return err
			}
			data, err := marshalConfig(cfg)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, MsgConfigSources, strings.Join(cfg.Sources, ", "))
			_, err = out.Write(data)
			return err
		},
	}

	cmd.Flags().BoolVar(&defaults, "defaults", false, MsgFlagDefaults)
	return cmd
}

func marshalConfig(cfg *config.Config) ([]byte, error) {
	var doc configDocument
	doc.Policy.SkipOverwrite = cfg.Policy.SkipOverwrite
	doc.Policy.MinimalUpdate = cfg.Policy.MinimalUpdate
	doc.Capture.Enabled = cfg.Capture.Enabled
	doc.Capture.ShowData = cfg.Capture.ShowData
	doc.Output.Format = cfg.Output.Format
	doc.Output.Workers = cfg.Output.Workers
	doc.Output.Diff = cfg.Output.Diff
	return toml.Marshal(doc)
}
