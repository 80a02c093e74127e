package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/mindplan/internal/cli/formatter"
	"github.com/alexanderramin/mindplan/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newMapCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "map",
		Short: "Manage mind maps",
	}

	cmd.AddCommand(
		newMapNewCmd(app),
		newMapImportCmd(app),
		newMapSaveCmd(app),
		newMapListCmd(app),
		newMapShowCmd(app),
		newMapDeleteCmd(app),
		newMapUndoCmd(app),
		newMapRedoCmd(app),
		newMapHistoryCmd(app),
	)

	return cmd
}

func newMapNewCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "new [TITLE]",
		Short: "Create an empty map",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := app.Maps.Create(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created map %s %s\n", formatter.Bold(m.Title), formatter.TruncID(m.ID))
			return nil
		},
	}
}

func newMapImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import a saved map file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := app.Maps.Import(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			nodes := domain.Count(m.Root)
			fmt.Fprintf(out, "Imported %s %s (%d nodes)\n", formatter.Bold(m.Title), formatter.TruncID(m.ID), nodes)
			if nodes > domain.PerfWarningNodeCount {
				fmt.Fprintln(out, formatter.Warning(fmt.Sprintf("large map: %d nodes may render slowly", nodes)))
			}
			return nil
		},
	}
}

func newMapSaveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "save MAP [FILE]",
		Short: "Write a map to a save file, or to stdout without FILE",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := resolveMap(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			if len(args) == 1 {
				data, err := app.Maps.ExportJSON(cmd.Context(), m.ID)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}
			if err := app.Maps.SaveFile(cmd.Context(), m.ID, args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s to %s\n", formatter.Bold(m.Title), args[1])
			return nil
		},
	}
}

func newMapListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List maps",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			maps, err := app.Maps.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMapList(maps, time.Now()))
			return nil
		},
	}
}

func newMapShowCmd(app *App) *cobra.Command {
	var depth int
	cmd := &cobra.Command{
		Use:   "show MAP",
		Short: "Show a map as a tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := resolveMap(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMapTree(m, app.today(), depth))
			return nil
		},
	}
	cmd.Flags().IntVar(&depth, "depth", -1, "deepest level to show (-1 for all)")
	return cmd
}

func newMapDeleteCmd(app *App) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "delete MAP",
		Short: "Delete a map and its history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := resolveMap(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			if !force && app.interactive() {
				confirmed := false
				form := huh.NewForm(huh.NewGroup(
					huh.NewConfirm().
						Title(fmt.Sprintf("Delete %q and its undo history?", m.Title)).
						Value(&confirmed),
				)).WithTheme(mindplanHuhTheme()).WithShowHelp(false)
				if err := form.Run(); err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Cancelled."))
					return nil
				}
			}
			if err := app.Maps.Delete(cmd.Context(), m.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted map %s\n", formatter.Bold(m.Title))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation")
	return cmd
}

func newMapUndoCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "undo MAP",
		Short: "Undo the last change to a map",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := resolveMap(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			m, err = app.Maps.Undo(cmd.Context(), m.ID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Undone. %s now has %d nodes\n", formatter.Bold(m.Title), domain.Count(m.Root))
			return nil
		},
	}
}

func newMapRedoCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "redo MAP",
		Short: "Redo the last undone change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := resolveMap(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			m, err = app.Maps.Redo(cmd.Context(), m.ID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Redone. %s now has %d nodes\n", formatter.Bold(m.Title), domain.Count(m.Root))
			return nil
		},
	}
}

func newMapHistoryCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "history MAP",
		Short: "List the undo history of a map",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := resolveMap(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			h, err := app.Maps.History(cmd.Context(), m.ID)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHistory(h, time.Now()))
			return nil
		},
	}
}
