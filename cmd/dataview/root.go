package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"production-board/config"
	"production-board/internal/view"
	"production-board/internal/view/usecase"
	"production-board/pkg/datemath"
	"production-board/pkg/log"
)

// app is shared by every subcommand once the root pre-run has loaded config.
type app struct {
	l  log.Logger
	uc view.UseCase
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "dataview",
		Short: "Derive schedules and filtered lists from shot, task and note exports.",
		Long: `dataview reads a JSON export (a bare array or a paginated envelope) and
prints the derived view as JSON, using the same configuration as the API.`,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logLevel, _ := cmd.Flags().GetString("loglevel")
			return a.init(cmd.ErrOrStderr(), logLevel)
		},
	}

	root.PersistentFlags().StringP("loglevel", "l", "warn", "Set log level. Available: debug, info, warn, error")

	root.AddCommand(newScheduleCmd(a), newListCmd(a))
	return root
}

func (a *app) init(logOut io.Writer, logLevel string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	a.l = log.Init(log.ZapConfig{
		Level:    logLevel,
		Mode:     cfg.Logger.Mode,
		Encoding: log.EncodingConsole,
		Writer:   logOut,
	})

	dm, err := datemath.NewParser(cfg.View.Timezone)
	if err != nil {
		return err
	}

	uc, err := usecase.New(a.l, dm, cfg.View)
	if err != nil {
		return err
	}
	a.uc = uc
	return nil
}

// readInput reads the file named by path, or stdin for "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(path)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
