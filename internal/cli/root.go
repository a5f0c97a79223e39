// Package cli implements the fspath command tree.
package cli

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jmgilman/go/fspath/fs/billy"
	"github.com/jmgilman/go/fspath/fs/core"
	"github.com/jmgilman/go/fspath/fs/local"
	"github.com/jmgilman/go/fspath/internal/config"
	"github.com/jmgilman/go/fspath/resolver"
)

// ErrFailed is returned when a command ran but reported failure, such as a
// path that could not be canonicalized. Its result has already been printed.
var ErrFailed = stderrors.New("command reported failure")

// app carries the state shared by every subcommand of one invocation.
type app struct {
	v          *viper.Viper
	configFile string
	cfg        config.Config
	logger     *slog.Logger
	resolver   *resolver.Resolver
}

// NewRootCmd builds the fspath command tree.
func NewRootCmd() *cobra.Command {
	a := &app{v: config.New()}
	d := config.Defaults()

	cmd := &cobra.Command{
		Use:   "fspath",
		Short: "Normalize, resolve and inspect filesystem paths",
		Long: `fspath normalizes, decomposes and resolves filesystem paths.

Every command accepts paths in any separator style and prints generic paths:
forward slashes only, no repeated separators. Settings can also be given as
FSPATH_* environment variables or in a YAML file passed with --config.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "Read settings from this YAML file")
	flags.StringP(config.KeyOutput, "o", d.Output, "Output format (text, json, yaml)")
	flags.String(config.KeyLogLevel, d.LogLevel, "Set the log level (debug, info, warn, error)")
	flags.Int(config.KeyMaxSymlinks, d.MaxSymlinks, "Maximum symbolic links substituted while canonicalizing")
	flags.String(config.KeyRoot, d.Root, "Confine filesystem operations to this directory")

	for _, key := range []string{config.KeyOutput, config.KeyLogLevel, config.KeyMaxSymlinks, config.KeyRoot} {
		if err := a.v.BindPFlag(key, flags.Lookup(key)); err != nil {
			panic(err)
		}
	}

	if err := cmd.MarkPersistentFlagFilename("config", "yaml", "yml"); err != nil {
		panic(err)
	}
	if err := cmd.MarkPersistentFlagDirname(config.KeyRoot); err != nil {
		panic(err)
	}

	cmd.AddCommand(
		a.newPathCmds()...,
	)
	cmd.AddCommand(
		a.newAbsCmd(),
		a.newResolveCmd(),
		a.newCanonicalCmd(),
		a.newReadlinkCmd(),
		a.newLsCmd(),
		a.newStatCmd(),
		a.newEquivalentCmd(),
		a.newEscapeCmd(),
		a.newHomeCmd(),
		a.newCwdCmd(),
		a.newMkdirCmd(),
		a.newRmCmd(),
	)

	return cmd
}

// setup loads settings and builds the logger and resolver.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.v, a.configFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level, err := log.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		return fmt.Errorf("invalid log-level %q: %w", cfg.LogLevel, err)
	}
	handler := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		Level:  level,
		Prefix: "fspath",
	})
	a.logger = slog.New(handler)

	ops, err := a.platform()
	if err != nil {
		return err
	}
	a.logger.Debug("platform selected", "type", ops.Type(), "convention", ops.Convention())

	a.resolver = resolver.New(ops,
		resolver.WithLogger(a.logger),
		resolver.WithMaxSymlinks(cfg.MaxSymlinks),
	)
	return nil
}

// platform returns the native filesystem, or a chroot when --root is set.
func (a *app) platform() (core.PlatformFileOps, error) {
	if a.cfg.Root == "" {
		return local.New(), nil
	}

	info, err := os.Stat(a.cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("opening root %s: %w", a.cfg.Root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("opening root %s: not a directory", a.cfg.Root)
	}

	return billy.NewLocal(a.cfg.Root,
		billy.WithEnv(environ()),
		billy.WithWorkingDir("/"),
	), nil
}

func environ() map[string]string {
	env := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}
	return env
}
