package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/mRW/foundation/core/errors"
	"github.com/msto63/mRW/internal/tools"
)

var (
	toolsCategory string
	toolsSearch   string
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "Listet die verfügbaren Rechner",
	Long: `Listet die Rechner nach Kategorie.

Beispiele:
  mrw tools
  mrw tools --category health
  mrw tools --search zins`,
	Args: cobra.NoArgs,
	RunE: runTools,
}

var toolsShowCmd = &cobra.Command{
	Use:   "show <id|pfad>",
	Short: "Zeigt die Parameter eines Rechners",
	Args:  cobra.ExactArgs(1),
	RunE:  runToolsShow,
}

func init() {
	rootCmd.AddCommand(toolsCmd)
	toolsCmd.AddCommand(toolsShowCmd)
	toolsCmd.Flags().StringVarP(&toolsCategory, "category", "c", "", "Nur diese Kategorie (finance, health, math, convert, text, fun)")
	toolsCmd.Flags().StringVarP(&toolsSearch, "search", "s", "", "Unscharfe Suche in Name und Beschreibung")
}

func runTools(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	calc, err := newCalculator(ctx)
	if err != nil {
		return err
	}
	defer calc.Close()

	list, categories, err := calc.Tools(ctx, toolsCategory, toolsSearch)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Println("Keine Rechner gefunden.")
		return nil
	}

	for _, c := range categories {
		var inCat []*tools.Tool
		for _, t := range list {
			if t.Category == c.ID {
				inCat = append(inCat, t)
			}
		}
		if len(inCat) == 0 {
			continue
		}
		fmt.Printf("%s %s (%d)\n", c.Icon, c.Name, len(inCat))
		for _, t := range inCat {
			fmt.Printf("  %-18s %-28s %s\n", t.ID, t.Name, t.Path)
		}
		fmt.Println()
	}
	return nil
}

func runToolsShow(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	calc, err := newCalculator(ctx)
	if err != nil {
		return err
	}
	defer calc.Close()

	list, _, err := calc.Tools(ctx, "", "")
	if err != nil {
		return err
	}
	t := findTool(list, args[0])
	if t == nil {
		return errors.NotFound(errors.ModuleTools, "show", args[0])
	}
	printTool(t)
	return nil
}

// findTool matches an id or a path with or without the leading slash
func findTool(list []*tools.Tool, idOrPath string) *tools.Tool {
	path := "/" + strings.TrimPrefix(idOrPath, "/")
	for _, t := range list {
		if t.ID == idOrPath || t.Path == path {
			return t
		}
	}
	return nil
}

func printTool(t *tools.Tool) {
	w := os.Stdout
	fmt.Fprintf(w, "%s %s\n", t.Icon, t.Name)
	fmt.Fprintf(w, "%s\n\n", t.Description)
	fmt.Fprintf(w, "  ID:         %s\n", t.ID)
	fmt.Fprintf(w, "  Pfad:       %s\n", t.Path)
	fmt.Fprintf(w, "  Kategorie:  %s\n", t.Category)
	if !t.Deterministic {
		fmt.Fprintln(w, "  Zufällig:   ja")
	}
	if len(t.Params) == 0 {
		return
	}

	fmt.Fprintln(w, "\nParameter:")
	for _, p := range t.Params {
		flags := string(p.Kind)
		if p.Required {
			flags += ", Pflicht"
		}
		if p.Default != "" {
			flags += ", Standard " + p.Default
		}
		fmt.Fprintf(w, "  %-14s %s (%s)\n", p.Name, p.Label, flags)
		if len(p.Choices) > 0 {
			fmt.Fprintf(w, "  %-14s Werte: %s\n", "", strings.Join(p.Choices, ", "))
		}
		if p.Help != "" {
			fmt.Fprintf(w, "  %-14s %s\n", "", p.Help)
		}
	}
}
