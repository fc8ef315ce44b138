package cli

import (
	"github.com/spf13/cobra"

	"memeview/internal/config"
)

// CommandType represents the type of CLI command
type CommandType int

// Command type values
const (
	CommandBrowse CommandType = iota
	CommandFetch
	CommandVersion
	CommandHelp
)

// Options contains the parsed command-line arguments
type Options struct {
	Type      CommandType
	Endpoint  string
	Width     int
	NoPicture bool
}

// Apply overrides config values with the ones given on the command line
func (o *Options) Apply(cfg *config.Config) {
	if o.Endpoint != "" {
		cfg.Endpoint.URL = o.Endpoint
	}

	if o.Width > 0 {
		cfg.Render.Width = o.Width
	}
}

// Parse parses command-line args and returns an Options struct
func Parse(args []string) (*Options, error) {
	result := &Options{Type: CommandBrowse}

	var version bool

	root := buildRootCommand(result, &version)
	root.AddCommand(
		buildBrowseCommand(result),
		buildFetchCommand(result),
		buildVersionCommand(result),
	)

	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		return nil, err
	}

	if version {
		result.Type = CommandVersion
	}

	return result, nil
}

// buildRootCommand creates the root cobra command
func buildRootCommand(result *Options, version *bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:           config.AppName,
		Short:         config.AppDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandBrowse
		},
	}

	cmd.PersistentFlags().StringVarP(&result.Endpoint, "endpoint", "e", "", "Random item endpoint URL")
	cmd.PersistentFlags().IntVarP(&result.Width, "width", "w", 0, "Picture width in terminal cells")
	cmd.Flags().BoolVarP(version, "version", "v", false, "Show version information")

	cmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		result.Type = CommandHelp
	})

	return cmd
}

// buildBrowseCommand creates the browse subcommand, same as running without one
func buildBrowseCommand(result *Options) *cobra.Command {
	return &cobra.Command{
		Use:     "browse",
		Aliases: []string{"b"},
		Short:   "Browse random items interactively",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandBrowse
		},
	}
}

// buildFetchCommand creates the fetch subcommand
func buildFetchCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "fetch",
		Aliases: []string{"f"},
		Short:   "Fetch one random item and print it",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandFetch
		},
	}

	cmd.Flags().BoolVar(&result.NoPicture, "no-picture", false, "Print only the item details")

	return cmd
}

// buildVersionCommand creates the version subcommand
func buildVersionCommand(result *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandVersion
		},
	}
}
