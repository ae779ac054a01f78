package commands

import (
	"github.com/spf13/cobra"
	"github.com/walteh/sceneport/cmd/sceneport/opts"
	"gitlab.com/tozd/go/errors"
)

// NewPluginsCmd creates a new plugins command
func NewPluginsCmd(o *opts.RootOpts) *cobra.Command {
	var (
		load   string
		unload string
	)

	cmd := &cobra.Command{
		Use:   "plugins",
		Short: "List, load, or unload host plugins",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			s, err := o.Connect(ctx)
			if err != nil {
				return err
			}
			defer s.Close()
			defer o.Logger.EndHostOperation(ctx)

			if load != "" {
				if err := s.LoadPlugin(ctx, load); err != nil {
					return errors.Errorf("loading plugin: %w", err)
				}
				o.Logger.Successf("loaded %s", load)
				return nil
			}

			if unload != "" {
				if err := s.UnloadPlugin(ctx, unload); err != nil {
					return errors.Errorf("unloading plugin: %w", err)
				}
				o.Logger.Successf("unloaded %s", unload)
				return nil
			}

			plugins, err := s.ListPlugins(ctx)
			if err != nil {
				return errors.Errorf("listing plugins: %w", err)
			}

			for _, name := range plugins {
				o.Logger.Info(name)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&load, "load", "", "plugin to load")
	cmd.Flags().StringVar(&unload, "unload", "", "plugin to unload")

	return cmd
}
