package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/metcollection/pkg/buildinfo"
	apperrors "github.com/matzehuels/metcollection/pkg/errors"
	"github.com/matzehuels/metcollection/pkg/integrations/met"
)

// appName is the application name used for display.
const appName = "metcollection"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	output      string
	verbose     bool
	baseURL     string
	clientOpts  []met.Option
	stderr      io.Writer
	interactive bool
}

// New creates a new CLI instance with a default logger.
// Extra client options are applied to every API client the commands create.
func New(w io.Writer, level log.Level, opts ...met.Option) *CLI {
	return &CLI{
		Logger:      newLogger(w, level),
		output:      OutputText,
		baseURL:     met.BaseURL,
		clientOpts:  opts,
		stderr:      w,
		interactive: isTerminal(w),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "Browse the Metropolitan Museum of Art collection",
		Long:          `metcollection queries the public Metropolitan Museum of Art Collection API: list object IDs, show an object's record, list departments and search the collection.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.SetLogLevel(LogDebug)
				// Debug lines and the spinner share stderr.
				c.interactive = false
			}
			if err := validateOutput(c.output); err != nil {
				return err
			}
			return apperrors.ValidateBaseURL(c.baseURL)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&c.output, "output", "o", OutputText, "output format: text, json or toml")
	root.PersistentFlags().StringVar(&c.baseURL, "base-url", met.BaseURL, "collection API root (for mirrors)")

	root.AddCommand(c.objectsCommand())
	root.AddCommand(c.objectCommand())
	root.AddCommand(c.departmentsCommand())
	root.AddCommand(c.searchCommand())
	root.AddCommand(c.completionCommand())
	root.CompletionOptions.DisableDefaultCmd = true

	return root
}

// newClient creates an API client that logs through the CLI logger.
// Options passed to [New] are applied last.
func (c *CLI) newClient() *met.Client {
	opts := append([]met.Option{met.WithLogger(c.Logger), met.WithBaseURL(c.baseURL)}, c.clientOpts...)
	return met.NewClient(opts...)
}
