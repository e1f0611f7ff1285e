package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/keshon/cix/internal/command"
	_ "github.com/keshon/cix/internal/command/alias"
	_ "github.com/keshon/cix/internal/command/echo"
	_ "github.com/keshon/cix/internal/command/help"
	_ "github.com/keshon/cix/internal/command/service"
	_ "github.com/keshon/cix/internal/command/tree"
	"github.com/keshon/cix/internal/config"
	"github.com/keshon/cix/internal/console"
	"github.com/keshon/cix/internal/dispatch"
	"github.com/keshon/cix/internal/logging"
	"github.com/keshon/cix/internal/middleware"
)

var (
	// Global flags
	configPath  string
	verbose     bool
	interactive bool

	// Logger
	logger *zap.Logger
)

// rootCmd runs one console command, or the interactive shell
var rootCmd = &cobra.Command{
	Use:   "cix [command...]",
	Short: "cix - console command interchange",
	Long: `cix resolves space separated command input against a tree of commands
and runs the most specific one with the remaining words as arguments.

Examples:
  cix service start web
  cix help service
  cix -i            # interactive shell`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	// flags after the first command word belong to the console command
	rootCmd.Flags().SetInterspersed(false)
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "config file (default: nearest cix.yaml)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "start the interactive shell")
}

func run(cmd *cobra.Command, args []string) error {
	path := configPath
	if path == "" {
		path = config.ResolveConfigPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	logger, err = logging.FromConfig(cfg.Logging, verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	logger.Debug("config loaded", zap.String("path", path), zap.String("name", cfg.Name))

	out := cmd.OutOrStdout()
	d, err := newDispatcher(cfg, out, logger)
	if err != nil {
		return err
	}

	if interactive {
		return runShell(cmd.InOrStdin(), out, d, cfg.Prompt)
	}
	return command.Execute(d, strings.Join(args, " "), out)
}

// newDispatcher builds the command tree described by cfg with every
// registered command mounted.
func newDispatcher(cfg *config.Config, out io.Writer, logger *zap.Logger) (*dispatch.Dispatcher, error) {
	root := command.NewRoot(cfg.Name, out, console.WithDivider(cfg.Divider))
	d, err := dispatch.New(root,
		dispatch.WithLogger(logger),
		dispatch.WithAliases(cfg.Aliases),
		dispatch.WithMaxDepth(cfg.MaxDepth),
	)
	if err != nil {
		return nil, err
	}

	err = command.MountAll(command.Env{
		Dispatcher: d,
		Out:        out,
		Logger:     logger,
		Middlewares: []command.Middleware{
			middleware.WithDebugArgsPrint(logger),
			middleware.WithRecover(logger),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to mount commands: %w", err)
	}
	return d, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
