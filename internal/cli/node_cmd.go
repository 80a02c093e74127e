package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/mindplan/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newNodeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "node",
		Short: "Edit the topics of a map",
		Long:  "Nodes are referenced by ID, unique ID prefix or topic.",
	}

	cmd.AddCommand(
		newNodeAddCmd(app),
		newNodeRenameCmd(app),
		newNodeRemoveCmd(app),
		newNodeMoveCmd(app),
	)

	return cmd
}

func newNodeAddCmd(app *App) *cobra.Command {
	var parent string
	var index int

	cmd := &cobra.Command{
		Use:   "add MAP TOPIC...",
		Short: "Add a child topic",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			m, err := resolveMap(ctx, app, args[0])
			if err != nil {
				return err
			}
			parentNode := m.Root
			if parent != "" {
				if parentNode, err = resolveNode(m.Root, parent); err != nil {
					return err
				}
			}
			node, err := app.Maps.AddNode(ctx, m.ID, parentNode.ID, strings.Join(args[1:], " "), index)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s %s under %s\n",
				formatter.Bold(node.Topic), formatter.TruncID(node.ID), parentNode.Topic)
			return nil
		},
	}

	cmd.Flags().StringVar(&parent, "parent", "", "parent node (default: root)")
	cmd.Flags().IntVar(&index, "index", -1, "position among siblings (-1 appends)")

	return cmd
}

func newNodeRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename MAP NODE TOPIC...",
		Short: "Change a node's topic",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			m, node, err := resolveMapNode(ctx, app, args[0], args[1])
			if err != nil {
				return err
			}
			topic := strings.Join(args[2:], " ")
			if err := app.Maps.RenameNode(ctx, m.ID, node.ID, topic); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Renamed %s to %s\n", node.Topic, formatter.Bold(topic))
			return nil
		},
	}
}

func newNodeRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove MAP NODE",
		Aliases: []string{"rm"},
		Short:   "Remove a node and its subtree",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			m, node, err := resolveMapNode(ctx, app, args[0], args[1])
			if err != nil {
				return err
			}
			if err := app.Maps.RemoveNode(ctx, m.ID, node.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", formatter.Bold(node.Topic))
			return nil
		},
	}
}

func newNodeMoveCmd(app *App) *cobra.Command {
	var index int

	cmd := &cobra.Command{
		Use:   "move MAP NODE",
		Short: "Reorder a node among its siblings",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			m, node, err := resolveMapNode(ctx, app, args[0], args[1])
			if err != nil {
				return err
			}
			if err := app.Maps.MoveNode(ctx, m.ID, node.ID, index); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Moved %s to position %d\n", formatter.Bold(node.Topic), index)
			return nil
		},
	}

	cmd.Flags().IntVar(&index, "index", 0, "new position among siblings (clamped)")
	_ = cmd.MarkFlagRequired("index")

	return cmd
}
