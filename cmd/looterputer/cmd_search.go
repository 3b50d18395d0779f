package main

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Domje/Arc-Looterputer/internal/domain"
	"github.com/Domje/Arc-Looterputer/internal/handler"
	"github.com/Domje/Arc-Looterputer/internal/locale"
	"github.com/Domje/Arc-Looterputer/internal/search"
)

// errNoResults makes an empty search exit non-zero
var errNoResults = errors.New("no items matched")

func newSearchCmd(opts *options) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search the item catalog",
		Long: `Searches item names, rarities and recycle chains. An item matches when
its name or rarity contains the query, or when anything it recycles into,
directly or further down the chain, has a name that does.

Reserved keywords list whole groups instead: recycle, craft and upgrade
(see "looterputer keywords"). Without a query every item is listed.`,
		Example: `  looterputer search gear
  looterputer search craftable --lang de`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.loadCatalog()
			if err != nil {
				return err
			}
			translator, err := locale.NewTranslator()
			if err != nil {
				return fmt.Errorf("failed to load translations: %w", err)
			}

			query := strings.TrimSpace(strings.Join(args, " "))
			result := search.NewService(c, search.DefaultCacheConfig).Search(cmd.Context(), query)
			langs := opts.langs()

			items := result.Items
			if limit > 0 && len(items) > limit {
				items = items[:limit]
			}

			if opts.jsonOutput {
				resp := handler.ItemSearchResponse{
					Query:       result.Query,
					Mode:        string(result.Mode),
					Count:       len(result.Items),
					Summary:     translator.ResultCount(langs, len(result.Items)),
					Items:       handler.NewItemViews(items, langs),
					Suggestions: result.Suggestions,
				}
				if resp.Count == 0 {
					resp.Summary = translator.NoResults(langs, query)
				}
				if len(result.Suggestions) > 0 {
					resp.DidYouMean = translator.DidYouMean(langs, strings.Join(result.Suggestions, ", "))
				}
				if err := writeJSON(cmd.OutOrStdout(), resp); err != nil {
					return err
				}
				if resp.Count == 0 {
					return errNoResults
				}
				return nil
			}

			out := cmd.OutOrStdout()
			if len(result.Items) == 0 {
				fmt.Fprintln(out, translator.NoResults(langs, query))
				if len(result.Suggestions) > 0 {
					fmt.Fprintln(out, translator.DidYouMean(langs, strings.Join(result.Suggestions, ", ")))
				}
				return errNoResults
			}

			fmt.Fprintln(out, translator.ResultCount(langs, len(result.Items)))
			return printItems(cmd, items, langs)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "show at most n items (0 shows all)")
	return cmd
}

func newKeywordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keywords",
		Short: "List the reserved search keywords",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, k := range search.Keywords() {
				fmt.Fprintln(cmd.OutOrStdout(), k)
			}
		},
	}
}

func printItems(cmd *cobra.Command, items []*domain.Item, langs []string) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tRARITY\tVALUE")
	for _, v := range handler.NewItemViews(items, langs) {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", v.ID, v.Name, v.Rarity, formatValue(v.Value))
	}
	return tw.Flush()
}

func formatValue(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.0f", *v)
}
