package commands

import (
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
	"github.com/walteh/sceneport/cmd/sceneport/opts"
	"github.com/walteh/sceneport/pkg/log"
	"github.com/walteh/sceneport/pkg/scene"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// NewImportCmd creates a new import command
func NewImportCmd(o *opts.RootOpts) *cobra.Command {
	var (
		namespace string
		preserve  bool
		async     bool
	)

	cmd := &cobra.Command{
		Use:   "import <pattern>...",
		Short: "Import files into the current scene",
		Long: `Import brings one or more files into the current scene. Patterns use
doublestar globs, so "assets/**/*.ma" imports a whole tree. With --async
each file gets its own host connection and they import concurrently.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			files, err := expandPatterns(args)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				return errors.Errorf("no files match %v", args)
			}

			var sceneOpts []scene.Option
			if namespace != "" {
				sceneOpts = append(sceneOpts, scene.InNamespace(namespace))
			}
			if preserve {
				sceneOpts = append(sceneOpts, scene.PreserveReferences())
			}

			if async {
				return importAsync(cmd, o, files, sceneOpts)
			}

			s, err := o.Connect(ctx)
			if err != nil {
				return err
			}
			defer s.Close()
			defer o.Logger.EndHostOperation(ctx)

			for _, file := range files {
				start := time.Now()
				_, err := s.ImportFile(ctx, file, sceneOpts...)
				o.Logger.LogCommandOperation(ctx, log.CommandOperation{
					Command:  "file",
					Target:   file,
					Status:   statusOf(err),
					Duration: time.Since(start),
					IsError:  err != nil,
				})
				if err != nil {
					return errors.Errorf("importing %s: %w", file, err)
				}
			}

			o.Logger.Successf("imported %d files", len(files))
			return nil
		},
	}

	cmd.Flags().StringVarP(&namespace, "namespace", "n", "", "namespace for the imported content")
	cmd.Flags().BoolVarP(&preserve, "preserve-references", "p", false, "keep references as references")
	cmd.Flags().BoolVar(&async, "async", false, "import files concurrently over separate connections")

	return cmd
}

// importAsync imports each file over its own connection. The command port
// serializes commands per connection, so concurrency needs one connection
// per in-flight import.
func importAsync(cmd *cobra.Command, o *opts.RootOpts, files []string, sceneOpts []scene.Option) error {
	g, ctx := errgroup.WithContext(cmd.Context())

	for _, file := range files {
		file := file
		g.Go(func() error {
			s, err := o.Connect(ctx)
			if err != nil {
				return err
			}
			defer s.Close()

			if _, err := s.ImportFile(ctx, file, sceneOpts...); err != nil {
				return errors.Errorf("importing %s: %w", file, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	o.Logger.Successf("imported %d files", len(files))
	return nil
}

// expandPatterns resolves doublestar globs; non-pattern arguments pass
// through untouched so host-side paths keep working
func expandPatterns(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		if !hasGlobMeta(arg) {
			files = append(files, arg)
			continue
		}
		matches, err := doublestar.FilepathGlob(arg)
		if err != nil {
			return nil, errors.Errorf("expanding pattern %s: %w", arg, err)
		}
		files = append(files, matches...)
	}
	return files, nil
}

func hasGlobMeta(s string) bool {
	for _, r := range s {
		switch r {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}

func statusOf(err error) string {
	if err != nil {
		return "FAILED"
	}
	return "OK"
}
