package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"normform/ast"
	"normform/internal/log"
	"normform/normal"
	"normform/parser"
)

var ConvertCmd = &cobra.Command{
	Use:   `normform "<sentence>" [dnf]`,
	Short: "Convert a propositional sentence to simplified CNF (or DNF)",
	Long: `Converts a propositional-logic sentence into an equivalent, simplified
conjunctive normal form. Passing "dnf" as the second argument selects
disjunctive normal form instead.

The sentence grammar knows the connectives ~ && || and =>, grouping
parentheses, and treats every other whitespace-separated word as a term.`,
	RunE:         runConvert,
	Args:         cobra.RangeArgs(1, 2),
	SilenceUsage: true,
}

var logLevel *int

func init() {
	logLevel = ConvertCmd.Flags().IntP("log-level", "l", int(slog.LevelError), "log level")
}

func runConvert(cmd *cobra.Command, args []string) error {
	log.SetLevel(slog.Level(*logLevel))

	form := normal.CNF
	if len(args) >= 2 {
		if !strings.EqualFold(args[1], normal.DNF.String()) {
			return errors.Errorf("unknown output form %q: only %q selects something other than the default CNF", args[1], normal.DNF.String())
		}
		form = normal.DNF
	}

	expr, err := parser.ParseToAST(args[0])
	if err != nil {
		return errors.Wrap(err, "invalid sentence")
	}

	result := normal.Normalise(expr, form)
	_, err = fmt.Fprintln(cmd.OutOrStdout(), ast.ExprString(result))
	return err
}
