package cli

import (
	"errors"
	"time"

	"github.com/alexanderramin/mindplan/internal/config"
	"github.com/alexanderramin/mindplan/internal/datecalc"
	"github.com/alexanderramin/mindplan/internal/service"
	"github.com/spf13/cobra"
)

var errNotInteractive = errors.New("this command needs an interactive terminal")

// App holds the services and settings shared by every command.
type App struct {
	Maps    service.MapService
	Plans   service.PlanService
	Exports service.ExportService
	Config  config.Config

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool
	// Today returns the current civil date. Nil means the local clock.
	Today func() datecalc.Date
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) today() datecalc.Date {
	if a.Today != nil {
		return a.Today()
	}
	return datecalc.FromTime(time.Now())
}

// NewRootCmd creates the top-level "mindplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var logLevel string
	root := &cobra.Command{
		Use:           "mindplan",
		Short:         "Action planner for mind maps",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			ctx, err := app.Config.LoggerContext(cmd.Context(), cmd.ErrOrStderr(), logLevel)
			if err != nil {
				return err
			}
			cmd.SetContext(ctx)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")
	root.PersistentFlags().Bool("business", false, "count business days (Mon-Fri)")
	root.PersistentFlags().Bool("calendar", false, "count every calendar day")

	root.AddCommand(
		newDateCmd(app),
		newMapCmd(app),
		newNodeCmd(app),
		newPlanCmd(app),
		newExportCmd(app),
		newTableCmd(app),
	)

	return root
}

// excludeWeekends resolves --business and --calendar against the configured
// default.
func excludeWeekends(cmd *cobra.Command, app *App) (bool, error) {
	business, _ := cmd.Flags().GetBool("business")
	calendar, _ := cmd.Flags().GetBool("calendar")
	switch {
	case business && calendar:
		return false, errors.New("--business and --calendar cannot be combined")
	case business:
		return true, nil
	case calendar:
		return false, nil
	default:
		return app.Config.ExcludeWeekends, nil
	}
}
