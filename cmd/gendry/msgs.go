package gendry

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootShort       = "Simulate the file writes of a code generation run"
	MsgSimulateShort   = "Replay a plan and summarise what would be written"
	MsgDecideShort     = "Show the state a single write would get"
	MsgConfigShort     = "Show the effective configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages into a directory"

	// Output
	MsgVersionFormat  = "gendry version %s\n  commit: %s\n  built:  %s\n"
	MsgDecideFormat   = "%s (%s): %s\n"
	MsgContextFormat  = "  %s\n"
	MsgReportWritten  = "Report written to %s\n"
	MsgManWritten     = "Man pages written to %s\n"
	MsgConfigSources  = "# sources: %s\n"
	MsgNoCommandGiven = "no command specified"

	// Error messages
	MsgErrLoadConfig  = "failed to load configuration: %w"
	MsgErrReplay      = "failed to replay plan: %w"
	MsgErrOutputDir   = "invalid output directory %s: %w"
	MsgErrWriteReport = "failed to write report to %s"
	MsgErrManDir      = "failed to create man directory %s: %w"

	// Flag descriptions
	MsgFlagVerbose       = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig        = "Config file (default: .gendry.toml or gendry.toml in the working directory)"
	MsgFlagOutputDir     = "Directory relative plan paths are resolved against"
	MsgFlagSkipOverwrite = "Never overwrite files that already exist"
	MsgFlagMinimalUpdate = "Only write files that are new or changed"
	MsgFlagCapture       = "Capture the template data of every write"
	MsgFlagShowData      = "Include captured template data in the report (implies --capture)"
	MsgFlagWorkers       = "Number of plan entries replayed concurrently"
	MsgFlagFormat        = "Report format: auto, term, text, json, yaml, xml, markdown"
	MsgFlagReport        = "Write the report to FILE instead of stdout"
	MsgFlagDiff          = "Show how planned file contents differ from the files on disk"
	MsgFlagExists        = "Treat the target as existing"
	MsgFlagDefaults      = "Print the built-in defaults instead of the effective configuration"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/simulate-long.txt
	msgSimulateLongRaw string
	MsgSimulateLong    = strings.TrimSpace(msgSimulateLongRaw)

	//go:embed msgs/simulate-example.txt
	msgSimulateExampleRaw string
	MsgSimulateExample    = strings.TrimRight(msgSimulateExampleRaw, "\n")

	//go:embed msgs/decide-long.txt
	msgDecideLongRaw string
	MsgDecideLong    = strings.TrimSpace(msgDecideLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)
