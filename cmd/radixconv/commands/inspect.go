package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"radixconv/internal/domain"
)

func inspectCmd() *cobra.Command {
	var from int
	cmd := &cobra.Command{
		Use:   "inspect NUMBER",
		Short: "Show a number in bases 2, 8, 10, 16 and 36",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := pick(from, appCtx.Defaults.DefaultFrom)
			_, renderings, err := appCtx.Converter.Describe(cmd.Context(), domain.Numeral(args[0]), src)
			if err != nil {
				return errors.New(userMessage(err))
			}
			out := cmd.OutOrStdout()
			for _, r := range renderings {
				fmt.Fprintf(out, "base %2d: %s\n", r.Radix, r.Numeral)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&from, "from", "f", 0, "source base (default from config)")
	return cmd
}
