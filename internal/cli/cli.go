package cli

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vk/treeweight/internal/app"
	"github.com/vk/treeweight/internal/config"
)

const longHelp = `treeweight - sums the values of every node in a tree.

Each input line describes one node:

  ID, PARENT_ID[, VALUE...]

PARENT_ID -1 marks the root. The VALUE fields of a node are added together and
the tool prints the total over every node reachable from the root. Any letter
in the input makes it invalid.

PATH is a file, a directory (every file with a matching extension is
evaluated), or "-" for standard input. Without PATH, piped standard input is
read.`

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
// loader reads the settings file named by --config.
func Parse(args []string, output io.Writer, loader config.Loader) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	var cfg *app.Config
	cmd := newCommand(loader, func(c *app.Config) { cfg = c })
	cmd.SetArgs(args)
	cmd.SetOut(output)
	cmd.SetErr(output)

	if err := cmd.Execute(); err != nil {
		return nil, false, &ExitError{Code: CodeUsage, Message: err.Error()}
	}

	if cfg == nil {
		// Help or version was printed.
		return nil, true, nil
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return cfg, false, nil
}

func newCommand(loader config.Loader, done func(*app.Config)) *cobra.Command {
	defaults := config.Default()

	cmd := &cobra.Command{
		Use:           "treeweight [flags] [PATH|-]",
		Short:         "Sum the node values of a tree description",
		Long:          longHelp,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolve(cmd.Context(), cmd, args, loader)
			if err != nil {
				return err
			}
			done(cfg)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringP("config", "c", "", "Path to an HCL settings file.")
	flags.StringP("output", "o", defaults.Output.Format, "Output format. Options: 'text', 'json', 'yaml'.")
	flags.String("order", defaults.Output.Order, "Traversal order. Options: 'preorder', 'postorder'.")
	flags.Bool("strict", false, "Reject duplicate ids, multiple roots, self-parented nodes and inputs without a root.")
	flags.Bool("two-pass", false, "Resolve parent ids declared after their children.")
	flags.Bool("coerce", false, "Count malformed values as zero and skip unreadable lines.")
	flags.StringSlice("ext", nil, "File extensions read from a directory (default .txt,.tree,.csv).")
	flags.BoolP("watch", "w", false, "Re-evaluate whenever the input changes.")
	flags.Duration("debounce", defaults.Watch.Debounce, "Quiet period before re-evaluating in watch mode.")
	flags.String("log-format", defaults.Logging.Format, "Log output format. Options: 'text' or 'json'.")
	flags.String("log-level", defaults.Logging.Level, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	return cmd
}

// resolve loads the settings file and applies every flag the user set on
// top of it.
func resolve(ctx context.Context, cmd *cobra.Command, args []string, loader config.Loader) (*app.Config, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	flags := cmd.Flags()

	configPath, _ := flags.GetString("config")
	model, err := loader.Load(ctx, configPath)
	if err != nil {
		return nil, err
	}

	if len(args) > 0 {
		model.Input.Path = args[0]
	}

	if flags.Changed("output") {
		model.Output.Format, _ = flags.GetString("output")
	}
	if flags.Changed("order") {
		model.Output.Order, _ = flags.GetString("order")
	}
	if flags.Changed("strict") {
		strict, _ := flags.GetBool("strict")
		model.Policy.SetStrict(strict)
	}
	if flags.Changed("two-pass") {
		if twoPass, _ := flags.GetBool("two-pass"); twoPass {
			model.Policy.Linking = "two_pass"
		} else {
			model.Policy.Linking = "single_pass"
		}
	}
	if flags.Changed("coerce") {
		model.Policy.CoerceMalformed, _ = flags.GetBool("coerce")
	}
	if flags.Changed("ext") {
		model.Input.Extensions, _ = flags.GetStringSlice("ext")
	}
	if flags.Changed("watch") {
		model.Watch.Enabled, _ = flags.GetBool("watch")
	}
	if flags.Changed("debounce") {
		model.Watch.Debounce, _ = flags.GetDuration("debounce")
	}
	if flags.Changed("log-format") {
		format, _ := flags.GetString("log-format")
		model.Logging.Format = strings.ToLower(format)
	}
	if flags.Changed("log-level") {
		level, _ := flags.GetString("log-level")
		model.Logging.Level = strings.ToLower(level)
	}
	slog.Debug("CLI parameter merge complete.", "input", model.Input.Path)

	return app.FromModel(model)
}
