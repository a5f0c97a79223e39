package cli

import (
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jmgilman/go/fspath/errors"
	"github.com/jmgilman/go/fspath/generic"
)

// newPathCmds returns the commands that transform a path without touching
// the filesystem.
func (a *app) newPathCmds() []*cobra.Command {
	pure := []struct {
		use   string
		short string
		fn    func(string) string
	}{
		{"normalize", "Print the generic form of a path", generic.Normalize},
		{"parent", "Print everything before the last separator", generic.Parent},
		{"filename", "Print everything after the last separator", generic.FileName},
		{"stem", "Print the file name without its extension", generic.Stem},
		{"ext", "Print the extension including the dot, or \".\" if there is none", generic.Extension},
	}

	cmds := make([]*cobra.Command, 0, len(pure))
	for _, p := range pure {
		cmds = append(cmds, &cobra.Command{
			Use:   p.use + " PATH",
			Short: p.short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.write(cmd.OutOrStdout(), pathResult{Input: args[0], Result: p.fn(args[0])})
			},
		})
	}
	return cmds
}

func (a *app) newAbsCmd() *cobra.Command {
	var base string
	cmd := &cobra.Command{
		Use:   "abs PATH",
		Short: "Make a path absolute against the working directory or --base",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := a.resolver.AbsolutePath(args[0])
			if base != "" {
				result = a.resolver.AbsolutePathFrom(args[0], base)
			}
			return a.write(cmd.OutOrStdout(), pathResult{Input: args[0], Result: result})
		},
	}
	cmd.Flags().StringVar(&base, "base", "", "Directory relative paths are resolved against")
	return cmd
}

func (a *app) newResolveCmd() *cobra.Command {
	var relativeTo string
	var allowHome bool
	cmd := &cobra.Command{
		Use:   "resolve PATH",
		Short: "Expand a leading \".\" or \"~\"",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref := relativeTo
			if ref == "" {
				ref = a.resolver.CWDPath()
			}
			result := a.resolver.ResolvePath(args[0], ref, allowHome)
			return a.write(cmd.OutOrStdout(), pathResult{Input: args[0], Result: result})
		},
	}
	cmd.Flags().StringVar(&relativeTo, "relative-to", "", "Path a leading \".\" is replaced with (default: working directory)")
	cmd.Flags().BoolVar(&allowHome, "allow-home", false, "Replace a leading \"~\" with the home directory")
	return cmd
}

func (a *app) newCanonicalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "canonical PATH",
		Short: "Print the absolute path with links and dot segments removed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.resolver.Canonical(args[0])
			if err != nil {
				a.logger.Warn("cannot canonicalize path", "path", args[0], "error", err)
				if werr := a.write(cmd.OutOrStdout(), pathResult{Input: args[0], Error: errors.ToJSON(err)}); werr != nil {
					return werr
				}
				return ErrFailed
			}
			return a.write(cmd.OutOrStdout(), pathResult{Input: args[0], Result: result})
		},
	}
}

func (a *app) newReadlinkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "readlink PATH",
		Short: "Print the target of a symbolic link, one level deep",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := a.resolver.ResolveSymlink(args[0])
			if err := a.write(cmd.OutOrStdout(), pathResult{Input: args[0], Result: result}); err != nil {
				return err
			}
			if result == "" {
				return ErrFailed
			}
			return nil
		},
	}
}

func (a *app) newLsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ls PATH",
		Short: "List directory entries in byte order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.write(cmd.OutOrStdout(), listResult{
				Path:    generic.Normalize(args[0]),
				Entries: a.resolver.DirContent(args[0]),
			})
		},
	}
}

func (a *app) newStatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stat PATH...",
		Short: "Print every type and attribute predicate of one or more paths",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make(statResults, len(args))

			var g errgroup.Group
			g.SetLimit(runtime.GOMAXPROCS(0))
			for i, p := range args {
				g.Go(func() error {
					results[i] = a.stat(p)
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			if len(results) == 1 {
				return a.write(cmd.OutOrStdout(), results[0])
			}
			return a.write(cmd.OutOrStdout(), results)
		},
	}
}

func (a *app) stat(p string) statResult {
	r := a.resolver
	return statResult{
		Path:        generic.Normalize(p),
		Exists:      r.Exists(p),
		Directory:   r.IsDirectory(p),
		RegularFile: r.IsRegularFile(p),
		Symlink:     r.IsSymlink(p),
		Hidden:      r.IsHidden(p),
	}
}

func (a *app) newEquivalentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "equivalent PATH PATH",
		Short: "Report whether two paths name the same file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok := a.resolver.IsEquivalent(args[0], args[1])
			return a.finish(cmd, boolResult{Paths: args, OK: ok})
		},
	}
}

func (a *app) newEscapeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "escape PATH",
		Short: "Escape a path for the platform shell",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.write(cmd.OutOrStdout(), pathResult{Input: args[0], Result: a.resolver.EscapedPath(args[0])})
		},
	}
}

func (a *app) newHomeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "home",
		Short: "Print the home directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.write(cmd.OutOrStdout(), pathResult{Result: a.resolver.HomePath()})
		},
	}
}

func (a *app) newCwdCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cwd",
		Short: "Print the working directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.write(cmd.OutOrStdout(), pathResult{Result: a.resolver.CWDPath()})
		},
	}
}

func (a *app) newMkdirCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mkdir PATH",
		Short: "Create a directory and any missing parents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.finish(cmd, boolResult{Paths: args, OK: a.resolver.CreateDirectory(args[0])})
		},
	}
}

func (a *app) newRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm PATH",
		Short: "Remove a single file or link; a missing path counts as removed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.finish(cmd, boolResult{Paths: args, OK: a.resolver.RemoveFile(args[0])})
		},
	}
}

// finish prints a boolean result and fails the command when it is false.
func (a *app) finish(cmd *cobra.Command, result boolResult) error {
	if err := a.write(cmd.OutOrStdout(), result); err != nil {
		return err
	}
	if !result.OK {
		return ErrFailed
	}
	return nil
}
