package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/mRW/internal/history"
)

var (
	historyLimit int
	historyType  string
	historyClear bool
	historyJSON  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Zeigt den Verlauf der letzten Berechnungen",
	Long: `Zeigt die letzten Berechnungen, neueste zuerst.

Beispiele:
  mrw history --limit 5
  mrw history --type finance
  mrw history --clear`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Anzahl Einträge (0 = alle)")
	historyCmd.Flags().StringVarP(&historyType, "type", "t", "", "Nur diese Kategorie")
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "Verlauf löschen")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "Als JSON ausgeben")
}

func runHistory(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	calc, err := newCalculator(ctx)
	if err != nil {
		return err
	}
	defer calc.Close()

	if historyClear {
		if err := calc.ClearHistory(ctx); err != nil {
			return err
		}
		fmt.Println("Verlauf gelöscht.")
		return nil
	}

	entries, err := calc.History(ctx, history.Filter{Type: historyType, Limit: historyLimit})
	if err != nil {
		return err
	}
	if historyJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}
	if len(entries) == 0 {
		fmt.Println("Noch keine Berechnungen.")
		return nil
	}
	for _, e := range entries {
		fmt.Printf("%s  %-24s %s\n", e.Timestamp.Local().Format("02.01.2006 15:04"), e.Name, e.Result)
	}
	return nil
}
