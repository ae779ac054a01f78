package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/walteh/sceneport/cmd/sceneport/opts"
	"gitlab.com/tozd/go/errors"
)

// NewRefsCmd creates a new refs command
func NewRefsCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "refs",
		Short: "List the scene's file references",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			s, err := o.Connect(ctx)
			if err != nil {
				return err
			}
			defer s.Close()
			defer o.Logger.EndHostOperation(ctx)

			refs, err := s.ListReferences(ctx)
			if err != nil {
				return errors.Errorf("listing references: %w", err)
			}

			if len(refs) == 0 {
				o.Logger.Info("scene has no file references")
				return nil
			}

			rows := pterm.TableData{{"NODE", "PATH", "NAMESPACE", "LOADED"}}
			for _, ref := range refs {
				path, err := ref.Path(ctx)
				if err != nil {
					return errors.Errorf("querying reference %s: %w", ref, err)
				}
				ns, err := ref.Namespace(ctx)
				if err != nil {
					return errors.Errorf("querying reference %s: %w", ref, err)
				}
				loaded, err := ref.IsLoaded(ctx)
				if err != nil {
					return errors.Errorf("querying reference %s: %w", ref, err)
				}

				state := "no"
				if loaded {
					state = "yes"
				}
				rows = append(rows, []string{ref.RefNode(), path.String(), ns.String(), state})
			}

			return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
		},
	}

	return cmd
}
