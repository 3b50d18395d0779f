package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Domje/Arc-Looterputer/internal/catalog"
	"github.com/Domje/Arc-Looterputer/internal/validation"
)

var errCatalogInvalid = errors.New("catalog data has problems")

// validateOutput is the --json form of a validation run
type validateOutput struct {
	Items        int            `json:"items"`
	Modules      int            `json:"modules"`
	SchemaErrors []string       `json:"schemaErrors,omitempty"`
	Report       catalog.Report `json:"report"`
	Valid        bool           `json:"valid"`
}

func newValidateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check catalog data files",
		Long: `Checks the items and hideout files against their JSON schemas, then looks
for duplicate item ids and references to ids that do not exist.

Duplicate ids and schema violations fail the run. Dangling references are
reported and only fail the run with --strict.`,
		Example: `  looterputer validate --items data/items.json --hideout data/hideoutModules.json`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var out validateOutput

			schemas := validation.NewSchemaValidator()
			for _, f := range []struct{ path, schema string }{
				{opts.itemsPath, validation.ItemsSchema},
				{opts.hideoutPath, validation.HideoutSchema},
			} {
				if f.path == "" {
					continue
				}
				if err := schemas.ValidateFile(f.path, f.schema); err != nil {
					out.SchemaErrors = append(out.SchemaErrors, fmt.Sprintf("%s: %v", f.path, err))
				}
			}

			// lenient load keeps every record so the report sees duplicates
			lenient := *opts
			lenient.strict = false
			c, err := lenient.loadCatalog()
			if err != nil {
				return err
			}

			out.Items = c.Len()
			out.Modules = len(c.Modules())
			out.Report = catalog.Validate(c.Items(), c.Modules())
			out.Valid = len(out.SchemaErrors) == 0 && out.Report.Err() == nil &&
				(!opts.strict || len(out.Report.Dangling) == 0)

			if opts.jsonOutput {
				if err := writeJSON(cmd.OutOrStdout(), out); err != nil {
					return err
				}
			} else {
				printReport(cmd, out)
			}

			if !out.Valid {
				return errCatalogInvalid
			}
			return nil
		},
	}
}

func printReport(cmd *cobra.Command, out validateOutput) {
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%d items, %d hideout modules\n", out.Items, out.Modules)
	for _, e := range out.SchemaErrors {
		fmt.Fprintf(w, "schema: %s\n", e)
	}
	for _, id := range out.Report.DuplicateIDs {
		fmt.Fprintf(w, "duplicate id: %s\n", id)
	}
	for _, ref := range out.Report.Dangling {
		fmt.Fprintf(w, "unknown id: %s\n", ref)
	}
	if out.Valid {
		fmt.Fprintln(w, "OK")
	}
}
