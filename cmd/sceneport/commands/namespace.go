package commands

import (
	"github.com/spf13/cobra"
	"github.com/walteh/sceneport/cmd/sceneport/opts"
	"github.com/walteh/sceneport/pkg/scene"
	"gitlab.com/tozd/go/errors"
)

// NewNamespaceCmd creates a new ns command with list/add/rm subcommands
func NewNamespaceCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ns",
		Short: "Inspect and edit the scene's namespaces",
	}

	cmd.AddCommand(
		newNamespaceListCmd(o),
		newNamespaceAddCmd(o),
		newNamespaceRemoveCmd(o),
	)

	return cmd
}

func newNamespaceListCmd(o *opts.RootOpts) *cobra.Command {
	var recurse bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List namespaces under the current one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			s, err := o.Connect(ctx)
			if err != nil {
				return err
			}
			defer s.Close()
			defer o.Logger.EndHostOperation(ctx)

			namespaces, err := s.ListNamespaces(ctx, recurse)
			if err != nil {
				return errors.Errorf("listing namespaces: %w", err)
			}

			for _, ns := range namespaces {
				o.Logger.Info(ns.Absolute())
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&recurse, "recurse", "r", false, "walk the whole namespace hierarchy")

	return cmd
}

func newNamespaceAddCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a namespace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			s, err := o.Connect(ctx)
			if err != nil {
				return err
			}
			defer s.Close()
			defer o.Logger.EndHostOperation(ctx)

			ns, err := s.AddNamespace(ctx, args[0])
			if err != nil {
				return errors.Errorf("adding namespace: %w", err)
			}

			o.Logger.Successf("created %s", ns.Absolute())
			return nil
		},
	}

	return cmd
}

func newNamespaceRemoveCmd(o *opts.RootOpts) *cobra.Command {
	var (
		mergeRoot     bool
		deleteContent bool
	)

	cmd := &cobra.Command{
		Use:   "rm <name>",
		Short: "Remove a namespace",
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
			if mergeRoot {
				sceneOpts = append(sceneOpts, scene.MergeWithRoot())
			}
			if deleteContent {
				sceneOpts = append(sceneOpts, scene.DeleteContent())
			}

			ns := scene.NewNamespace(args[0])
			if err := s.RemoveNamespace(ctx, ns, sceneOpts...); err != nil {
				return errors.Errorf("removing namespace: %w", err)
			}

			o.Logger.Successf("removed %s", ns.Absolute())
			return nil
		},
	}

	cmd.Flags().BoolVar(&mergeRoot, "merge-root", false, "move the namespace's content to the root namespace")
	cmd.Flags().BoolVar(&deleteContent, "delete-content", false, "delete the namespace's content")

	return cmd
}
