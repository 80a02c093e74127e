package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/mindplan/internal/cli/formatter"
	"github.com/alexanderramin/mindplan/internal/export"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a map's plan as CSV or HTML",
	}

	cmd.AddCommand(
		newExportCSVCmd(app),
		newExportHTMLCmd(app),
	)

	return cmd
}

func newExportCSVCmd(app *App) *cobra.Command {
	var output string
	var bom bool

	cmd := &cobra.Command{
		Use:   "csv MAP",
		Short: "Export every node as a CSV row",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := resolveMap(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("bom") {
				bom = app.Config.CSVBOM
			}
			return writeExport(cmd, output, func(w io.Writer) error {
				return app.Exports.WriteCSV(cmd.Context(), m.ID, w, export.CSVOptions{BOM: bom})
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&bom, "bom", false, "prefix a UTF-8 byte order mark for spreadsheet apps")

	return cmd
}

func newExportHTMLCmd(app *App) *cobra.Command {
	var output, title string

	cmd := &cobra.Command{
		Use:   "html MAP",
		Short: "Export the plan as a standalone HTML table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := resolveMap(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			return writeExport(cmd, output, func(w io.Writer) error {
				return app.Exports.WriteHTML(cmd.Context(), m.ID, w, title)
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&title, "title", export.DefaultHTMLTitle, "document title")

	return cmd
}

// writeExport runs write against stdout, or against path when set.
func writeExport(cmd *cobra.Command, path string, write func(io.Writer) error) error {
	if path == "" {
		return write(cmd.OutOrStdout())
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "%s %s\n", formatter.Dim("Wrote"), path)
	return nil
}
