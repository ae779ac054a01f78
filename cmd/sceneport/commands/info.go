package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/walteh/sceneport/cmd/sceneport/opts"
	"gitlab.com/tozd/go/errors"
)

// NewInfoCmd creates a new info command over the scene's key/value store
func NewInfoCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info [key [value]]",
		Short: "Read or write the scene's embedded key/value store",
		Long: `With no arguments, info lists every key/value pair stored in the scene
file. With a key it prints that key's value; with a key and a value it
stores the pair.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			s, err := o.Connect(ctx)
			if err != nil {
				return err
			}
			defer s.Close()
			defer o.Logger.EndHostOperation(ctx)

			info := s.FileInfo()

			switch len(args) {
			case 0:
				pairs, err := info.All(ctx)
				if err != nil {
					return errors.Errorf("listing scene info: %w", err)
				}

				rows := pterm.TableData{{"KEY", "VALUE"}}
				for _, pair := range pairs {
					rows = append(rows, []string{pair[0], pair[1]})
				}
				return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()

			case 1:
				value, ok, err := info.Get(ctx, args[0])
				if err != nil {
					return errors.Errorf("reading scene info: %w", err)
				}
				if !ok {
					return errors.Errorf("key %q is not set", args[0])
				}
				o.Logger.Info(value)
				return nil

			default:
				if err := info.Set(ctx, args[0], args[1]); err != nil {
					return errors.Errorf("writing scene info: %w", err)
				}
				o.Logger.Successf("set %s", args[0])
				return nil
			}
		},
	}

	return cmd
}
