package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ignisf/bigdecimal"
)

func newFmt(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "fmt NUMBER...",
		Short: "Rounds numbers to the working precision and prints them.",
		Long: "Parses each number in the input base, rounds it to the working precision and prints\n" +
			"it in the output format. This is handy to convert between bases or to see how a\n" +
			"decimal fraction is represented in binary.",
		Example: "apcalc fmt --prec 24 0.1\napcalc fmt --format e --digits 20 0x1p-3",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return commandFmt(cfg, cmd, args)
		},
	}
}

func commandFmt(cfg *config, cmd *cobra.Command, args []string) error {
	for _, s := range args {
		d, b, err := bigdecimal.ParseDecimal(s, cfg.base, cfg.prec)
		if err != nil {
			return fmt.Errorf("failed to parse %q: %w", s, err)
		}
		cfg.log.Debug("parsed", "text", s, "base", b, "value", d, "acc", d.Acc())
		fmt.Fprintln(cmd.OutOrStdout(), cfg.text(d))
	}
	return nil
}
