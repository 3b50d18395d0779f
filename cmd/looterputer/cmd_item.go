package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Domje/Arc-Looterputer/internal/handler"
)

func newItemCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "item <id>",
		Short:   "Show one item with its recipe, upgrade cost and recycle output",
		Example: "  looterputer item rusted_gear",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.loadCatalog()
			if err != nil {
				return err
			}
			item, err := c.ItemByID(args[0])
			if err != nil {
				return err
			}

			detail := handler.NewItemDetail(c, item, opts.langs())
			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), detail)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s)\n", detail.Name, detail.ID)
			printField(cmd, "Rarity", detail.Rarity)
			printField(cmd, "Category", detail.Category)
			printField(cmd, "Value", formatValue(detail.Value))
			printField(cmd, "Crafted at", strings.Join(detail.CraftBench, ", "))
			if detail.Description != "" {
				fmt.Fprintf(out, "\n%s\n", detail.Description)
			}
			printEntries(cmd, "Recipe", detail.Recipe)
			printEntries(cmd, "Upgrade cost", detail.UpgradeCost)
			printEntries(cmd, "Recycles into", detail.RecyclesInto)
			return nil
		},
	}
}

func printField(cmd *cobra.Command, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  %-10s %s\n", label+":", value)
}

func printEntries(cmd *cobra.Command, title string, entries []handler.EntryView) {
	if len(entries) == 0 {
		return
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\n%s:\n", title)
	for _, e := range entries {
		fmt.Fprintf(out, "  %dx %s (%s)\n", e.Quantity, e.Name, e.ID)
	}
}
