package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/knetic/govaluate"
	"github.com/spf13/cobra"

	"github.com/hoppxi/lumo/pkg/brightness"
)

var setCmd = &cobra.Command{
	Use:   "set [value]",
	Short: "Set screen brightness to a value in [0, 1]",
	Long:  "Set screen brightness to a literal value, or to an expression over the variables current, system, min and max, e.g. `lumo set --expr \"current + 0.1\"`",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		gw, err := newGateway(cmd)
		if err != nil {
			log.Fatal("Gateway setup failed", "err", err)
		}
		ctx := cmd.Context()

		var target float64
		if expr, _ := cmd.Flags().GetString("expr"); expr != "" {
			current, err := gw.CurrentBrightness(ctx)
			if err != nil {
				log.Fatal("Read brightness failed", "err", err)
			}
			system, err := gw.SystemBrightness(ctx)
			if err != nil {
				log.Fatal("Read system brightness failed", "err", err)
			}

			target, err = evalExpr(expr, map[string]interface{}{
				"current": float64(current),
				"system":  float64(system),
				"min":     brightness.Min,
				"max":     brightness.Max,
			})
			if err != nil {
				log.Fatal("Bad expression", "expr", expr, "err", err)
			}
		} else if len(args) == 1 {
			target, err = strconv.ParseFloat(args[0], 64)
			if err != nil {
				log.Fatal("Not a number", "value", args[0])
			}
		} else {
			log.Fatal("Need a value or --expr")
		}

		if err := gw.SetBrightness(ctx, target); err != nil {
			log.Fatal("Set brightness failed", "value", target, "err", err)
		}
	},
}

func evalExpr(expr string, params map[string]interface{}) (float64, error) {
	e, err := govaluate.NewEvaluableExpression(expr)
	if err != nil {
		return 0, fmt.Errorf("parse expression: %w", err)
	}
	result, err := e.Evaluate(params)
	if err != nil {
		return 0, fmt.Errorf("evaluate expression: %w", err)
	}
	f, ok := result.(float64)
	if !ok {
		return 0, fmt.Errorf("expression result %v is not a number", result)
	}
	return f, nil
}

func init() {
	setCmd.Flags().String("expr", "", "Expression over current, system, min and max")
}
