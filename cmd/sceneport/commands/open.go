package commands

import (
	"github.com/spf13/cobra"
	"github.com/walteh/sceneport/cmd/sceneport/opts"
	"github.com/walteh/sceneport/pkg/scene"
	"gitlab.com/tozd/go/errors"
)

// NewOpenCmd creates a new open command
func NewOpenCmd(o *opts.RootOpts) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "open <file>",
		Short: "Open a scene file in the host",
		Args:  cobra.ExactArgs(1),
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

			p, err := s.OpenFile(ctx, args[0], sceneOpts...)
			if err != nil {
				return errors.Errorf("opening %s: %w", args[0], err)
			}

			o.Logger.Successf("opened %s", p)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "discard unsaved changes without prompting")

	return cmd
}
