package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/mRW/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Startet die interaktive Oberfläche",
	Long: `Startet den Rechner-Browser im Terminal: Rechner auswählen, Werte
eingeben, Ergebnis lesen. Tab wechselt zum Verlauf.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		calc, err := newCalculator(cmd.Context())
		if err != nil {
			return err
		}
		defer calc.Close()
		return tui.Run(calc)
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
