package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ndthuan92/colvec"
	"github.com/ndthuan92/colvec/client"
	"github.com/ndthuan92/colvec/internal/expr"
)

func newEvalCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "eval <expression>",
		Short: "Evaluate one column expression",
		Long: `Evaluate one expression, in-process by default or against a
running server with --addr.

Example:
  colvec eval 'flatten([[1, 2], [3, 4]])'
  colvec eval --addr :4141 'array_length(large([1, 2, 3]))'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := evalOne(addr, args[0])
			if err != nil {
				return err
			}
			b, err := json.MarshalIndent(res, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "server address (empty = in-process)")

	return cmd
}

func evalOne(addr, input string) (*expr.Result, error) {
	if addr == "" {
		return colvec.New().Eval(input)
	}
	c, err := client.Dial(addr, 5*time.Second)
	if err != nil {
		return nil, err
	}
	defer func() { _ = c.Close() }()
	c.SetRWTimeout(10 * time.Second)
	return c.Eval(input)
}
