package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"radixconv/internal/app"
	"radixconv/internal/logging"
)

var (
	home     string
	logLevel string
	appCtx   *app.App
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "radixconv",
		Short:        "Convert numbers between bases 2 to 36",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".radixconv")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			a, err := app.New(app.Config{
				Home:      home,
				LogLevel:  logLevel,
				LogOutput: cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			appCtx = a
			cmd.SetContext(logging.WithLogger(cmd.Context(), a.Log))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.radixconv)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error (default from config)")

	root.AddCommand(convertCmd(), inspectCmd(), interactiveCmd(), configCmd())
	return root
}
