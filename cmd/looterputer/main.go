// Command looterputer queries the item catalog from the terminal. It reads
// the same data files as the API server and needs no running services.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Domje/Arc-Looterputer/internal/catalog"
	"github.com/Domje/Arc-Looterputer/internal/config"
	"github.com/Domje/Arc-Looterputer/internal/handler"
	"github.com/Domje/Arc-Looterputer/internal/locale"
	"github.com/Domje/Arc-Looterputer/internal/logger"
)

const serviceName = "looterputer-cli"

// options are the persistent flags shared by every subcommand
type options struct {
	itemsPath   string
	hideoutPath string
	strict      bool
	lang        string
	jsonOutput  bool
	logLevel    string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "looterputer",
		Short: "Arc Raiders item catalog in the terminal",
		Long: `looterputer searches the Arc Raiders item catalog, shows hideout
station requirements and checks catalog data files.

Without --items and --hideout the sample data built into the binary is used.
ITEMS_PATH and HIDEOUT_PATH from the environment are honoured as defaults.`,
		Version:      handler.CurrentVersion().Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			// logs go to stderr so piped output stays clean
			logger.InitLoggerWithWriter(
				logger.NewConfig(opts.logLevel, logger.LogFormatText, serviceName, handler.CurrentVersion().Version, config.DefaultEnvironment, false),
				cmd.ErrOrStderr(),
			)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.itemsPath, "items", os.Getenv(config.EnvItemsPath), "path to items.json")
	flags.StringVar(&opts.hideoutPath, "hideout", os.Getenv(config.EnvHideoutPath), "path to hideoutModules.json")
	flags.BoolVar(&opts.strict, "strict", false, "fail on malformed catalog data instead of skipping it")
	flags.StringVarP(&opts.lang, "lang", "l", "", "display language, e.g. de or fr")
	flags.BoolVar(&opts.jsonOutput, "json", false, "print results as JSON")
	flags.StringVar(&opts.logLevel, "log-level", logger.LogLevelWarn, "log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		newSearchCmd(opts),
		newKeywordsCmd(),
		newItemCmd(opts),
		newHideoutCmd(opts),
		newValidateCmd(opts),
	)
	return rootCmd
}

func (o *options) loadCatalog() (*catalog.Catalog, error) {
	c, err := catalog.NewLoader(catalog.Options{Strict: o.strict}).Load(o.itemsPath, o.hideoutPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return c, nil
}

// langs returns the display languages for --lang. Names fall back to English.
func (o *options) langs() []string {
	return locale.Languages(o.lang, "")
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
