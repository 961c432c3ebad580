package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"radixconv/internal/domain"
	"radixconv/internal/logging"
)

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change stored defaults",
	}
	cmd.AddCommand(configShowCmd(), configSetCmd())
	return cmd
}

func configShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the stored defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := appCtx.Prefs.Load()
			if err != nil {
				return err
			}
			b, err := yaml.Marshal(p)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
}

func configSetCmd() *cobra.Command {
	var (
		from, to int
		level    string
	)
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change the default bases or log level",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := appCtx.Prefs.Load()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("from") {
				p.DefaultFrom = domain.Radix(from)
			}
			if flags.Changed("to") {
				p.DefaultTo = domain.Radix(to)
			}
			if flags.Changed("level") {
				p.LogLevel = level
			}
			if err := p.Validate(); err != nil {
				return err
			}
			if err := appCtx.Prefs.Save(p); err != nil {
				return fmt.Errorf("save preferences: %w", err)
			}
			logging.FromContext(cmd.Context()).Info("config.saved",
				"default_from", int(p.DefaultFrom), "default_to", int(p.DefaultTo), "log_level", p.LogLevel)
			fmt.Fprintf(cmd.OutOrStdout(), "Defaults: base %d -> base %d, log level %s\n",
				p.DefaultFrom, p.DefaultTo, p.LogLevel)
			return nil
		},
	}
	cmd.Flags().IntVarP(&from, "from", "f", 0, "default source base")
	cmd.Flags().IntVarP(&to, "to", "t", 0, "default destination base")
	cmd.Flags().StringVar(&level, "level", "", "default log level (debug, info, warn, error)")
	return cmd
}
