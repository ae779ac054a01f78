package commands

import (
	"github.com/spf13/cobra"
	"github.com/walteh/sceneport/cmd/sceneport/opts"
	"github.com/walteh/sceneport/pkg/scene"
	"gitlab.com/tozd/go/errors"
)

// NewSaveCmd creates a new save command
func NewSaveCmd(o *opts.RootOpts) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "save [new-path]",
		Short: "Save the current scene, optionally under a new path",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			s, err := o.Connect(ctx)
			if err != nil {
				return err
			}
			defer s.Close()
			defer o.Logger.EndHostOperation(ctx)

			var sceneOpts []scene.Option
			if force {
				sceneOpts = append(sceneOpts, scene.Force())
			}

			var p scene.Path
			if len(args) == 1 {
				p, err = s.SaveAs(ctx, args[0], sceneOpts...)
			} else {
				p, err = s.SaveFile(ctx, sceneOpts...)
			}
			if err != nil {
				return errors.Errorf("saving scene: %w", err)
			}

			o.Logger.Successf("saved %s", p)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "save even if the host would prompt")

	return cmd
}
