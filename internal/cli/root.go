// Package cli builds the cobra command tree shared by the flights and
// trains binaries. The two binaries differ only in the record kind
// they pass in.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vsokolov/departures/internal/config"
	"github.com/vsokolov/departures/internal/logger"
	"github.com/vsokolov/departures/internal/record"
	"github.com/vsokolov/departures/internal/shell"
)

// configError marks a failure to load the configuration file, so
// Execute can map it to its own exit code.
type configError struct {
	err error
}

func (e *configError) Error() string { return e.err.Error() }
func (e *configError) Unwrap() error { return e.err }

// Execute runs the command tree for the given record kind and returns
// the process exit code.
func Execute(kind record.Kind, version string) int {
	if err := NewRootCmd(kind, version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return exitCode(err)
	}
	return ExitSuccess
}

func exitCode(err error) int {
	var ce *configError
	if errors.As(err, &ce) {
		return ExitConfigError
	}
	return ExitError
}

// NewRootCmd builds the root command. Without a subcommand it starts
// the interactive shell.
func NewRootCmd(kind record.Kind, version string) *cobra.Command {
	var (
		logPath  string
		dataPath string
	)

	cmd := &cobra.Command{
		Use:   kind.Plural,
		Short: fmt.Sprintf("Interactive %s departure record manager", kind.Noun),
		Long: fmt.Sprintf(`%s manages a collection of %s departure records.

Without a subcommand it starts an interactive prompt supporting the
add, list, select, load, save, help and exit commands. Records are
persisted as XML and can also be inspected non-interactively with the
list and select subcommands.`, kind.Plural, kind.Noun),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(kind, logPath)
		},
	}

	cmd.PersistentFlags().StringVar(&dataPath, "data", "", "XML data file for the list and select subcommands")
	cmd.Flags().StringVar(&logPath, "log", "", "Log file path (default: state directory)")

	cmd.AddCommand(newListCmd(kind, &dataPath))
	cmd.AddCommand(newSelectCmd(kind, &dataPath))

	return cmd
}

func runShell(kind record.Kind, logPath string) error {
	_ = godotenv.Load()

	cfg, err := config.Load(kind.Plural)
	if err != nil {
		return &configError{err}
	}
	if logPath == "" {
		logPath = cfg.LogFile
	}

	log, err := logger.New(kind.Plural, logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v, logging to stderr\n", err)
		log = logger.Fallback()
	}

	store := record.NewStore(kind)
	return shell.New(kind, store, os.Stdin, os.Stdout, os.Stderr, log).Run()
}

// resolveDataFile picks the XML file for the one-shot subcommands:
// the --file flag, then the root --data flag, then the configured
// data_file.
func resolveDataFile(kind record.Kind, flagFile, dataFlag string) (string, error) {
	if flagFile != "" {
		return flagFile, nil
	}
	if dataFlag != "" {
		return dataFlag, nil
	}

	_ = godotenv.Load()
	cfg, err := config.Load(kind.Plural)
	if err != nil {
		return "", &configError{err}
	}
	if cfg.DataFile == "" {
		return "", fmt.Errorf("no data file: pass --file or set data_file in %s", config.Path(kind.Plural))
	}
	return cfg.DataFile, nil
}
