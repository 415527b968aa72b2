package gendry

import (
	"embed"
	"fmt"
	"os"

	"github.com/arthur-debert/gendry/internal/version"
	"github.com/arthur-debert/gendry/pkg/cobrax/topics"
	"github.com/arthur-debert/gendry/pkg/config"
	"github.com/arthur-debert/gendry/pkg/logging"
	"github.com/arthur-debert/gendry/pkg/report"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics/*.md
var topicsFS embed.FS

// globalOptions are the persistent flags shared by every command
type globalOptions struct {
	verbosity  int
	configFile string
}

// loadConfig loads the layered configuration with overrides from flags
func (g *globalOptions) loadConfig(overrides map[string]interface{}) (*config.Config, error) {
	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: g.configFile,
		Overrides:  overrides,
	})
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoadConfig, err)
	}
	log.Debug().Strs("sources", cfg.Sources).Str("config", cfg.String()).Msg("Configuration loaded")
	return cfg, nil
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	g := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "gendry",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(g.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf(MsgNoCommandGiven)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&g.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&g.configFile, "config", "", MsgFlagConfig)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})

	rootCmd.AddCommand(newSimulateCmd(g))
	rootCmd.AddCommand(newDecideCmd(g))
	rootCmd.AddCommand(newConfigCmd(g))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	var renderer topics.Renderer = &topics.PlainRenderer{}
	if report.DetectFormat(os.Stdout) == report.FormatTerminal {
		renderer = topics.NewGlamourRenderer()
	}
	if _, err := topics.Initialize(rootCmd, topicsFS, "topics", topics.Options{Renderer: renderer}); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}
