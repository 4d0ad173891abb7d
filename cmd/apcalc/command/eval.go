package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ignisf/bigdecimal/internal/rpn"
)

func newEval(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "eval EXPR...",
		Short: "Evaluates reverse polish notation expressions.",
		Long: "Evaluates each expression and prints its result on a separate line.\n\n" +
			"Operators are + - * / % neg abs sqrt; for instance `apcalc eval '1 2 + 3 *'` prints 9.",
		Example: "apcalc eval --prec 200 '2 sqrt'",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return commandEval(cfg, cmd, args)
		},
	}
}

func commandEval(cfg *config, cmd *cobra.Command, args []string) error {
	e := rpn.Evaluator{Prec: cfg.prec, Base: cfg.base, Log: cfg.log}
	for _, expr := range args {
		z, err := e.Eval(expr)
		if err != nil {
			cfg.log.Error("evaluation failed", "expr", expr, "err", err)
			return fmt.Errorf("failed to evaluate %q: %w", expr, err)
		}
		cfg.log.Debug("evaluated", "expr", expr, "result", z, "acc", z.Acc())
		fmt.Fprintln(cmd.OutOrStdout(), cfg.text(z))
	}
	return nil
}
