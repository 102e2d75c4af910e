package cmd

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/mRW/internal/tools"
)

var (
	calcParams []string
	calcJSON   bool

	convertCategory string
	convertJSON     bool
)

var calcCmd = &cobra.Command{
	Use:   "calc <id|pfad> [name=wert ...]",
	Short: "Führt einen Rechner aus",
	Long: `Führt einen Rechner aus. Parameter werden als name=wert übergeben,
entweder mit -p oder direkt nach der ID. Fehlende Parameter mit
Standardwert werden ergänzt.

Beispiele:
  mrw calc bmi weight=70 height=175
  mrw calc /finance/loan -p principal=200000 -p rate=3,5 -p months=360
  mrw calc statistics values="3 5 5 9" --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCalc,
}

var convertCmd = &cobra.Command{
	Use:   "convert <wert> <von> <nach>",
	Short: "Rechnet Einheiten um",
	Long: `Rechnet einen Wert von einer Einheit in eine andere um. Die Kategorie
wird aus der Quelleinheit abgeleitet, wenn sie nicht angegeben ist.

Beispiele:
  mrw convert 100 km mi
  mrw convert 451 F C
  mrw convert 1 GiB MB --category data`,
	Args: cobra.ExactArgs(3),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(calcCmd)
	rootCmd.AddCommand(convertCmd)

	calcCmd.Flags().StringArrayVarP(&calcParams, "param", "p", nil, "Parameter als name=wert (mehrfach)")
	calcCmd.Flags().BoolVar(&calcJSON, "json", false, "Ergebnis als JSON ausgeben")

	convertCmd.Flags().StringVarP(&convertCategory, "category", "c", "", "Kategorie (length, weight, temperature, ...)")
	convertCmd.Flags().BoolVar(&convertJSON, "json", false, "Ergebnis als JSON ausgeben")
}

func runCalc(cmd *cobra.Command, args []string) error {
	params, err := tools.ParseParams(append(append([]string{}, calcParams...), args[1:]...))
	if err != nil {
		return err
	}
	return calculate(cmd.Context(), args[0], params, calcJSON)
}

func runConvert(cmd *cobra.Command, args []string) error {
	params := tools.Params{
		"value": args[0],
		"from":  args[1],
		"to":    args[2],
	}
	if c := strings.TrimSpace(convertCategory); c != "" {
		params["category"] = c
	}
	return calculate(cmd.Context(), "convert", params, convertJSON)
}

func calculate(ctx context.Context, tool string, params tools.Params, asJSON bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
	calc, err := newCalculator(ctx)
	if err != nil {
		return err
	}
	defer calc.Close()

	res, err := calc.Calculate(ctx, tool, params)
	if err != nil {
		return err
	}
	return printResult(os.Stdout, res, asJSON)
}
