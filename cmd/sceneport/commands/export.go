package commands

import (
	"github.com/spf13/cobra"
	"github.com/walteh/sceneport/cmd/sceneport/opts"
	"github.com/walteh/sceneport/pkg/scene"
	"gitlab.com/tozd/go/errors"
)

// NewExportCmd creates a new export command
func NewExportCmd(o *opts.RootOpts) *cobra.Command {
	var (
		selected bool
		force    bool
		preserve bool
		format   string
	)

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Export the scene (or the selection) to a file",
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
			if preserve {
				sceneOpts = append(sceneOpts, scene.PreserveReferences())
			}
			if format != "" {
				sceneOpts = append(sceneOpts, scene.Type(format))
			}

			export := s.ExportAll
			if selected {
				export = s.ExportSelected
			}

			p, err := export(ctx, args[0], sceneOpts...)
			if err != nil {
				return errors.Errorf("exporting to %s: %w", args[0], err)
			}

			o.Logger.Successf("exported %s", p)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&selected, "selected", "s", false, "export only the current selection")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file without prompting")
	cmd.Flags().BoolVarP(&preserve, "preserve-references", "p", false, "keep references as references")
	cmd.Flags().StringVarP(&format, "type", "t", "", "file format, inferred from the extension when omitted")

	return cmd
}
