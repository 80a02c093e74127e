package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/alexanderramin/mindplan/internal/cli/formatter"
	"github.com/alexanderramin/mindplan/internal/datecalc"
	"github.com/spf13/cobra"
)

func newDateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "date",
		Short: "Count, shift and derive dates",
		Long: `Date arithmetic used by plans. Dates are YYYY-MM-DD or DD-MMM-YYYY.
--business skips Saturdays and Sundays, --calendar counts every day; the
default comes from the config file.`,
	}

	cmd.AddCommand(
		newDateCountCmd(app),
		newDateShiftCmd(app, "add", "Add days to a date", datecalc.AddBusinessDays, datecalc.AddCalendarDays),
		newDateShiftCmd(app, "sub", "Subtract days from a date", datecalc.SubtractBusinessDays, datecalc.SubtractCalendarDays),
		newDateWeekendCmd(),
		newDateDeriveCmd(app),
	)

	return cmd
}

func newDateCountCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "count START DUE",
		Short: "Count the days from START to DUE",
		Long: `Business days are counted after START up to and including DUE, and are 0
when START is not before DUE. Calendar days are the absolute difference.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			business, err := excludeWeekends(cmd, app)
			if err != nil {
				return err
			}
			start, err := parseDateArg(args[0])
			if err != nil {
				return fmt.Errorf("start: %w", err)
			}
			due, err := parseDateArg(args[1])
			if err != nil {
				return fmt.Errorf("due: %w", err)
			}
			n := datecalc.CountCalendarDays(start, due)
			if business {
				n = datecalc.CountBusinessDays(start, due)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d %s days\n", n, formatter.DayMode(business))
			return nil
		},
	}
}

type shiftFunc func(datecalc.Date, int) (datecalc.Date, error)

func newDateShiftCmd(app *App, use, short string, business, calendar shiftFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use + " DATE DAYS",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			excl, err := excludeWeekends(cmd, app)
			if err != nil {
				return err
			}
			anchor, err := parseDateArg(args[0])
			if err != nil {
				return err
			}
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("days must be a whole number, got %q", args[1])
			}
			shift := calendar
			if excl {
				shift = business
			}
			d, err := shift(anchor, n)
			if err != nil {
				return err
			}
			printDate(cmd, d)
			return nil
		},
	}
}

func newDateWeekendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "weekend DATE",
		Short: "Report whether a date falls on a weekend",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseDateArg(args[0])
			if err != nil {
				return err
			}
			kind := "weekday"
			if d.IsWeekend() {
				kind = "weekend"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is a %s (%s)\n", d, kind, d.Weekday())
			return nil
		},
	}
}

func newDateDeriveCmd(app *App) *cobra.Command {
	var start, due dateValue
	var elapsed int

	cmd := &cobra.Command{
		Use:   "derive",
		Short: "Derive the missing one of start, due and elapsed days",
		Example: `  mindplan date derive --start 2026-01-01 --due 2026-01-09
  mindplan date derive --start 2026-01-01 --elapsed 6 --business
  mindplan date derive --due 09-Jan-2026 --elapsed 6`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			excl, err := excludeWeekends(cmd, app)
			if err != nil {
				return err
			}
			var days *int
			if cmd.Flags().Changed("elapsed") {
				days = &elapsed
			}
			given := 0
			for _, set := range []bool{start.date != nil, due.date != nil, days != nil} {
				if set {
					given++
				}
			}
			if given != 2 {
				return errors.New("provide exactly two of --start, --due and --elapsed")
			}

			s, d, e := start.date, due.date, days
			var derived string
			switch {
			case e == nil:
				e = datecalc.DeriveElapsedDays(s, d, excl)
				derived = "elapsed"
			case d == nil:
				if d, err = datecalc.DeriveDueDate(s, e, excl); err != nil {
					return err
				}
				derived = "due"
			default:
				if s, err = datecalc.DeriveStartDate(d, e, excl); err != nil {
					return err
				}
				derived = "start"
			}

			mark := func(name string) string {
				if name == derived {
					return formatter.Dim("  (derived)")
				}
				return ""
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-9s%s%s\n", "Start", s, mark("start"))
			fmt.Fprintf(out, "%-9s%s%s\n", "Due", d, mark("due"))
			fmt.Fprintf(out, "%-9s%d %s days%s\n", "Elapsed", *e, formatter.DayMode(excl), mark("elapsed"))
			return nil
		},
	}

	cmd.Flags().Var(&start, "start", "start date")
	cmd.Flags().Var(&due, "due", "due date")
	cmd.Flags().IntVar(&elapsed, "elapsed", 0, "elapsed days")

	return cmd
}

func printDate(cmd *cobra.Command, d datecalc.Date) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", d, formatter.Dim(d.Weekday().String()[:3]+" "+datecalc.FormatDisplay(d)))
}
