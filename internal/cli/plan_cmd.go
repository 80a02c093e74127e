package cli

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/alexanderramin/mindplan/internal/cli/formatter"
	"github.com/alexanderramin/mindplan/internal/domain"
	"github.com/alexanderramin/mindplan/internal/service"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Edit the action plan of a node",
		Long: `Every node carries an optional plan: start date, due date, invested
hours, elapsed days, assignee and status. Changing a date re-derives the
elapsed days; changing the elapsed days moves the due date (or the start
date when only the due date is known).`,
	}

	cmd.AddCommand(
		newPlanSetCmd(app),
		newPlanShowCmd(app),
		newPlanClearCmd(app),
		newPlanEditCmd(app),
	)

	return cmd
}

func newPlanSetCmd(app *App) *cobra.Command {
	var (
		start, due  dateValue
		elapsed     int
		invested    float64
		assignee    string
		status      string
		clearFields []string
	)

	cmd := &cobra.Command{
		Use:   "set MAP NODE",
		Short: "Set plan fields",
		Example: `  mindplan plan set launch "Build" --start 2026-01-05 --due 2026-01-12
  mindplan plan set launch "Build" --elapsed 10 --business
  mindplan plan set launch "Build" --status in-progress --assignee "Grace Hopper"
  mindplan plan set launch "Build" --clear assignee,invested`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			excl, err := excludeWeekends(cmd, app)
			if err != nil {
				return err
			}

			var patch domain.PlanPatch
			flags := cmd.Flags()
			if flags.Changed("start") {
				patch.Values.StartDate = start.date
				patch.Set = append(patch.Set, domain.FieldStartDate)
			}
			if flags.Changed("due") {
				patch.Values.DueDate = due.date
				patch.Set = append(patch.Set, domain.FieldDueDate)
			}
			if flags.Changed("elapsed") {
				patch.Values.ElapsedTimeDays = &elapsed
				patch.Set = append(patch.Set, domain.FieldElapsedTime)
			}
			if flags.Changed("invested") {
				patch.Values.InvestedTimeHours = &invested
				patch.Set = append(patch.Set, domain.FieldInvestedTime)
			}
			if flags.Changed("assignee") {
				if a := strings.TrimSpace(assignee); a != "" {
					patch.Values.Assignee = &a
				}
				patch.Set = append(patch.Set, domain.FieldAssignee)
			}
			if flags.Changed("status") {
				s := parseStatus(status)
				patch.Values.Status = &s
				patch.Set = append(patch.Set, domain.FieldStatus)
			}
			for _, name := range clearFields {
				f, ok := planFieldFlags[strings.TrimSpace(name)]
				if !ok {
					return fmt.Errorf("unknown field %q for --clear (use %s)", name, clearableFields())
				}
				if slices.Contains(patch.Set, f) {
					return fmt.Errorf("field %q is both set and cleared", name)
				}
				patch.Set = append(patch.Set, f)
			}
			if len(patch.Set) == 0 {
				return errors.New("nothing to change: pass at least one field flag or --clear")
			}

			ctx := cmd.Context()
			m, node, err := resolveMapNode(ctx, app, args[0], args[1])
			if err != nil {
				return err
			}
			view, err := app.Plans.EditPlan(ctx, m.ID, node.ID, service.PlanEdit{Patch: patch, ExcludeWeekends: excl})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPlanView(view))
			return nil
		},
	}

	cmd.Flags().Var(&start, "start", "start date (empty clears)")
	cmd.Flags().Var(&due, "due", "due date (empty clears)")
	cmd.Flags().IntVar(&elapsed, "elapsed", 0, "elapsed days")
	cmd.Flags().Float64Var(&invested, "invested", 0, "invested hours")
	cmd.Flags().StringVar(&assignee, "assignee", "", "assignee name (empty clears)")
	cmd.Flags().StringVar(&status, "status", "", "Not Started, In Progress or Completed")
	cmd.Flags().StringSliceVar(&clearFields, "clear", nil, "fields to clear: "+clearableFields())

	return cmd
}

func clearableFields() string {
	names := make([]string, 0, len(planFieldFlags))
	for name := range planFieldFlags {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func newPlanShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show MAP NODE",
		Short: "Show a node's plan",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			m, node, err := resolveMapNode(ctx, app, args[0], args[1])
			if err != nil {
				return err
			}
			view, err := app.Plans.GetPlan(ctx, m.ID, node.ID)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPlanView(view))
			return nil
		},
	}
}

func newPlanClearCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear MAP NODE",
		Short: "Remove every plan field from a node",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			m, node, err := resolveMapNode(ctx, app, args[0], args[1])
			if err != nil {
				return err
			}
			if err := app.Plans.ClearPlan(ctx, m.ID, node.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared plan of %s\n", formatter.Bold(node.Topic))
			return nil
		},
	}
}

func newPlanEditCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit MAP NODE",
		Short: "Edit a node's plan in a form",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("plan edit: %w (use 'plan set')", errNotInteractive)
			}
			excl, err := excludeWeekends(cmd, app)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			m, node, err := resolveMapNode(ctx, app, args[0], args[1])
			if err != nil {
				return err
			}
			before := planFormValuesOf(domain.PlanOf(node))
			after := before
			if err := planEditForm(node.Topic, &after).Run(); err != nil {
				return err
			}
			patch, err := planFormPatch(before, after)
			if err != nil {
				return err
			}
			if len(patch.Set) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No changes."))
				return nil
			}
			view, err := app.Plans.EditPlan(ctx, m.ID, node.ID, service.PlanEdit{Patch: patch, ExcludeWeekends: excl})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPlanView(view))
			return nil
		},
	}
}
