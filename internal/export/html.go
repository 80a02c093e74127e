package export

import (
	"fmt"
	"html/template"
	"io"
)

// DefaultHTMLTitle is used when WriteHTML is given an empty title.
const DefaultHTMLTitle = "Action Plan"

// notAvailable fills cells whose plan value is absent.
const notAvailable = "N/A"

// indentStep is the left padding per depth level in the title column.
const indentStep = 20

var htmlTmpl = template.Must(template.New("table").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <style>
    body { font-family: Calibri, Arial, sans-serif; margin: 20px; color: #333; }
    h1 { margin-top: 0; color: #2c3e50; font-size: 24px; }
    table { border-collapse: collapse; width: 100%; margin-top: 20px; border: 1px solid #ddd; }
    th { background-color: #34495e; color: white; padding: 12px; text-align: left; font-weight: bold; border: 1px solid #ddd; }
    td { padding: 10px 12px; border: 1px solid #ddd; }
    tr:nth-child(even) { background-color: #f8f9fa; }
    .footer { margin-top: 30px; font-size: 12px; color: #7f8c8d; border-top: 1px solid #ddd; padding-top: 15px; }
  </style>
</head>
<body>
  <h1>{{.Title}}</h1>
  <table>
    <thead>
      <tr>
        {{- range .Headers}}
        <th>{{.}}</th>
        {{- end}}
      </tr>
    </thead>
    <tbody>
      {{- range .Rows}}
      <tr>
        <td>{{.ID}}</td>
        <td>{{.Depth}}</td>
        <td style="padding-left: {{.Indent}}px;">{{.Title}}</td>
        {{- range .Cells}}
        <td>{{.}}</td>
        {{- end}}
        <td>{{.ParentPath}}</td>
      </tr>
      {{- end}}
    </tbody>
  </table>
  <div class="footer">
    <p>Generated from Memory Map Action Planner</p>
  </div>
</body>
</html>
`))

type htmlRow struct {
	ID         string
	Depth      int
	Indent     int
	Title      string
	Cells      []string
	ParentPath string
}

// WriteHTML renders rows as a complete HTML document. All text is escaped and
// absent plan values show as N/A.
func WriteHTML(w io.Writer, rows []Row, title string) error {
	if title == "" {
		title = DefaultHTMLTitle
	}
	view := struct {
		Title   string
		Headers []string
		Rows    []htmlRow
	}{Title: title, Headers: Headers}

	for _, r := range rows {
		f := r.fields()
		cells := f[3:9]
		for i, c := range cells {
			if c == "" && r.planValueAbsent(i) {
				cells[i] = notAvailable
			}
		}
		view.Rows = append(view.Rows, htmlRow{
			ID:         r.ID,
			Depth:      r.Depth,
			Indent:     r.Depth * indentStep,
			Title:      r.Title,
			Cells:      cells,
			ParentPath: r.ParentPath,
		})
	}
	if err := htmlTmpl.Execute(w, view); err != nil {
		return fmt.Errorf("rendering html table: %w", err)
	}
	return nil
}

// planValueAbsent reports whether the i-th plan column (start date through
// status) is unset, as opposed to set to an empty string.
func (r Row) planValueAbsent(i int) bool {
	switch i {
	case 0:
		return r.StartDate == nil
	case 1:
		return r.DueDate == nil
	case 2:
		return r.InvestedTimeHours == nil
	case 3:
		return r.ElapsedTimeDays == nil
	case 4:
		return r.Assignee == nil
	case 5:
		return r.Status == nil
	}
	return false
}
