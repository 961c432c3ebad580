package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"radixconv/internal/domain"
)

func convertCmd() *cobra.Command {
	var from, to int
	cmd := &cobra.Command{
		Use:   "convert NUMBER",
		Short: "Convert a number from one base to another",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := domain.ConversionRequest{
				Input: domain.Numeral(args[0]),
				From:  pick(from, appCtx.Defaults.DefaultFrom),
				To:    pick(to, appCtx.Defaults.DefaultTo),
			}
			conv, err := appCtx.Converter.Convert(cmd.Context(), req)
			if err != nil {
				return errors.New(userMessage(err))
			}
			fmt.Fprintln(cmd.OutOrStdout(), conv.Output)
			return nil
		},
	}
	cmd.Flags().IntVarP(&from, "from", "f", 0, "source base (default from config)")
	cmd.Flags().IntVarP(&to, "to", "t", 0, "destination base (default from config)")
	return cmd
}

// pick returns the flag value, or fallback when the flag was left at zero.
func pick(flag int, fallback domain.Radix) domain.Radix {
	if flag == 0 {
		return fallback
	}
	return domain.Radix(flag)
}
