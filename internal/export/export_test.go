package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexanderramin/mindplan/internal/datecalc"
	"github.com/alexanderramin/mindplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func date(t *testing.T, s string) *datecalc.Date {
	t.Helper()
	d, err := datecalc.ParseISODate(s)
	require.NoError(t, err)
	return &d
}

func planTree(t *testing.T) *domain.Node {
	t.Helper()
	return &domain.Node{ID: "root", Topic: "Project", Children: []*domain.Node{
		{ID: "p1", Topic: "Phase 1", Children: []*domain.Node{
			{ID: "task-a", Topic: `Task "A", urgent`, Extended: &domain.Extended{Plan: &domain.PlanAttributes{
				StartDate:         date(t, "2026-01-01"),
				DueDate:           date(t, "2026-01-09"),
				InvestedTimeHours: ptr(2.5),
				ElapsedTimeDays:   ptr(6),
				Assignee:          ptr("Ana"),
				Status:            ptr(domain.StatusInProgress),
			}}},
		}},
		{ID: "p2", Topic: "Phase 2"},
	}}
}

// goldenTest compares got against testdata/<name>.golden.
// Set GOLDEN_UPDATE=1 to regenerate golden files.
func goldenTest(t *testing.T, name, got string) {
	t.Helper()
	goldenPath := filepath.Join("testdata", name+".golden")

	if os.Getenv("GOLDEN_UPDATE") == "1" {
		require.NoError(t, os.MkdirAll("testdata", 0755))
		require.NoError(t, os.WriteFile(goldenPath, []byte(got), 0644))
		t.Logf("updated golden file: %s", goldenPath)
		return
	}

	expected, err := os.ReadFile(goldenPath)
	require.NoError(t, err, "run with GOLDEN_UPDATE=1 to create %s", goldenPath)
	assert.Equal(t, string(expected), got,
		"output does not match golden file %s; run with GOLDEN_UPDATE=1 to update", goldenPath)
}

func TestFlatten(t *testing.T) {
	rows := Flatten(planTree(t))
	require.Len(t, rows, 4)

	ids := []string{rows[0].ID, rows[1].ID, rows[2].ID, rows[3].ID}
	assert.Equal(t, []string{"root", "p1", "task-a", "p2"}, ids)

	assert.Equal(t, "", rows[0].ParentPath)
	assert.Equal(t, "Project", rows[1].ParentPath)
	assert.Equal(t, "Project > Phase 1", rows[2].ParentPath)
	assert.Equal(t, "Project", rows[3].ParentPath)

	assert.Equal(t, 2, rows[2].Depth)
	assert.Equal(t, "2026-01-09", *rows[2].DueDate)
	assert.Equal(t, "In Progress", *rows[2].Status)
	assert.Nil(t, rows[3].Assignee)
}

func TestFlatten_Nil(t *testing.T) {
	assert.Empty(t, Flatten(nil))
}

func TestSameIDs(t *testing.T) {
	a := Flatten(planTree(t))
	b := Flatten(planTree(t))
	assert.True(t, SameIDs(a, b))

	b[1].ID = "other"
	assert.False(t, SameIDs(a, b))
	assert.False(t, SameIDs(a, a[:2]))
}

func TestWriteCSV_Golden(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, Flatten(planTree(t)), CSVOptions{}))
	goldenTest(t, "plan.csv", buf.String())
}

func TestWriteCSV_CRLFAndQuoting(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, Flatten(planTree(t)), CSVOptions{}))

	out := buf.String()
	lines := strings.Split(strings.TrimSuffix(out, "\r\n"), "\r\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "ID,Depth,Title,Start Date,Due Date,Invested Time (hours),Elapsed Time (days),Assignee,Status,Parent Path", lines[0])
	assert.Equal(t, `task-a,2,"Task ""A"", urgent",2026-01-01,2026-01-09,2.5,6,Ana,In Progress,Project > Phase 1`, lines[3])
	assert.Equal(t, "p2,1,Phase 2,,,,,,,Project", lines[4])
}

func TestWriteCSV_BOM(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil, CSVOptions{BOM: true}))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte{0xEF, 0xBB, 0xBF}))
	assert.Equal(t, "\uFEFF"+strings.Join(Headers, ",")+"\r\n", buf.String())
}

func TestWriteHTML(t *testing.T) {
	tree := planTree(t)
	tree.Children[1].Topic = "<script>alert('x')</script> & more"

	var buf bytes.Buffer
	require.NoError(t, WriteHTML(&buf, Flatten(tree), ""))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<title>Action Plan</title>")
	assert.Contains(t, out, "<th>Invested Time (hours)</th>")
	assert.Contains(t, out, `<td style="padding-left: 40px;">Task &#34;A&#34;, urgent</td>`)
	assert.Contains(t, out, `<td style="padding-left: 0px;">Project</td>`)
	assert.Contains(t, out, "<td>2.5</td>")
	assert.Contains(t, out, "<td>N/A</td>")
	assert.Contains(t, out, "&lt;script&gt;alert(&#39;x&#39;)&lt;/script&gt; &amp; more")
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "Generated from Memory Map Action Planner")
}

func TestWriteHTML_EmptyAssigneeIsNotNA(t *testing.T) {
	rows := []Row{{ID: "n", Title: "N", Assignee: ptr("")}}
	var buf bytes.Buffer
	require.NoError(t, WriteHTML(&buf, rows, "Sprint <1>"))
	out := buf.String()

	assert.Contains(t, out, "<title>Sprint &lt;1&gt;</title>")
	assert.Equal(t, 5, strings.Count(out, "<td>N/A</td>"))
}
