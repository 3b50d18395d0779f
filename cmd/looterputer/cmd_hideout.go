package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Domje/Arc-Looterputer/internal/handler"
	"github.com/Domje/Arc-Looterputer/internal/hideout"
	"github.com/Domje/Arc-Looterputer/internal/locale"
)

func newHideoutCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "hideout [station] [level]",
		Short: "List hideout stations or show what a station level needs",
		Example: `  looterputer hideout
  looterputer hideout gunsmith
  looterputer hideout gunsmith 2`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.loadCatalog()
			if err != nil {
				return err
			}
			svc := hideout.NewService(c)
			tr, err := locale.NewTranslator()
			if err != nil {
				return err
			}

			switch len(args) {
			case 0:
				return listStations(cmd, opts, svc, tr)
			case 1:
				return showStation(cmd, opts, svc, tr, args[0], 0)
			default:
				level, err := strconv.Atoi(args[1])
				if err != nil || level < 1 {
					return fmt.Errorf("invalid level %q: must be a positive number", args[1])
				}
				return showStation(cmd, opts, svc, tr, args[0], level)
			}
		},
	}
}

func listStations(cmd *cobra.Command, opts *options, svc hideout.Service, tr *locale.Translator) error {
	modules := svc.Modules()
	views := make([]handler.ModuleView, 0, len(modules))
	for i := range modules {
		views = append(views, handler.NewModuleView(&modules[i], opts.langs()))
	}
	if opts.jsonOutput {
		return writeJSON(cmd.OutOrStdout(), views)
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tLEVELS")
	for _, v := range views {
		levels := strconv.Itoa(v.MaxLevel)
		if v.AlwaysAvailable {
			levels = tr.AlwaysAvailable(opts.langs())
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", v.ID, v.Name, levels)
	}
	return tw.Flush()
}

// showStation prints every level of a station, or only the given one when
// level is positive.
func showStation(cmd *cobra.Command, opts *options, svc hideout.Service, tr *locale.Translator, id string, level int) error {
	module, err := svc.Module(id)
	if err != nil {
		return err
	}
	langs := opts.langs()

	view := handler.NewModuleView(module, langs)
	for i := range module.Levels {
		l := &module.Levels[i]
		if level > 0 && l.Level != level {
			continue
		}
		req, err := svc.Requirements(id, l.Level)
		if err != nil {
			return err
		}
		view.Levels = append(view.Levels, handler.NewLevelView(l, req, langs))
	}
	if level > 0 && len(view.Levels) == 0 {
		// reports the not-found error in the service's wording
		if _, err := svc.Level(id, level); err != nil {
			return err
		}
	}

	if opts.jsonOutput {
		if level > 0 {
			return writeJSON(cmd.OutOrStdout(), view.Levels[0])
		}
		return writeJSON(cmd.OutOrStdout(), view)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%s)\n", view.Name, view.ID)
	if view.AlwaysAvailable {
		fmt.Fprintf(out, "  %s\n", tr.AlwaysAvailable(langs))
		return nil
	}
	for _, l := range view.Levels {
		fmt.Fprintf(out, "\nLevel %d\n", l.Level)
		if l.Description != "" {
			fmt.Fprintf(out, "  %s\n", l.Description)
		}
		for _, e := range l.Items {
			fmt.Fprintf(out, "  %dx %s (%s)\n", e.Quantity, e.Name, e.ID)
		}
		if l.Coins > 0 {
			fmt.Fprintf(out, "  %s\n", tr.Coins(langs, l.Coins))
		}
		for _, o := range l.Other {
			if o.Kind == hideout.KindCoins {
				continue
			}
			fmt.Fprintf(out, "  • %s\n", o.Text)
		}
	}
	return nil
}
