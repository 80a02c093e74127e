package teatest

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

type bumpMsg struct{}

// counter counts bumps; "b" bumps twice through a batch, "q" quits.
type counter struct {
	n      int
	width  int
	quitAt int
}

func (c counter) Init() tea.Cmd {
	return func() tea.Msg { return bumpMsg{} }
}

func (c counter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case bumpMsg:
		c.n++
	case tea.WindowSizeMsg:
		c.width = msg.Width
	case tea.QuitMsg:
		c.quitAt = c.n
	case tea.KeyMsg:
		switch msg.String() {
		case "b":
			bump := func() tea.Msg { return bumpMsg{} }
			return c, tea.Batch(bump, bump)
		case "q":
			return c, tea.Quit
		}
	}
	return c, nil
}

func (c counter) View() string {
	return fmt.Sprintf("\x1b[1mcount %d\x1b[0m width %d", c.n, c.width)
}

func TestDriver_InitBatchAndQuit(t *testing.T) {
	d := New(t, counter{}, WithSize(80, 24))
	assert.Equal(t, "count 1 width 80", d.View())

	d.Press("b")
	assert.Equal(t, "count 3 width 80", d.View())

	d.Press("q")
	assert.True(t, d.Quitting)
	assert.Equal(t, 3, d.Model.(counter).quitAt)

	d.Press("b")
	assert.Equal(t, "count 3 width 80", d.View())
}

func TestDriver_DropsBlockingCmds(t *testing.T) {
	block := make(chan struct{})
	defer close(block)
	d := New(t, counter{})
	d.Send(tea.WindowSizeMsg{Width: 10})
	d.drain(func() tea.Msg { <-block; return bumpMsg{} }, 0)
	assert.Equal(t, "count 1 width 10", d.View())
}

func TestKeyMsg(t *testing.T) {
	assert.Equal(t, "tab", keyMsg("tab").String())
	assert.Equal(t, "down", keyMsg("down").String())
	assert.Equal(t, "x", keyMsg("x").String())
}
