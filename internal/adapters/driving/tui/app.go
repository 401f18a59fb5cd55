// Package tui provides an interactive chat view for exercising the
// message handler locally: what a user would see in the chat room,
// rendered in the terminal.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/panseek/panseek/internal/core/ports/driving"
)

// localOwnerID is the session key for the single local user.
const localOwnerID = "local"

// handlerTimeout bounds one simulated message round trip.
const handlerTimeout = 45 * time.Second

// repliesMsg carries the handler's replies back into the update loop.
type repliesMsg struct {
	texts []string
	err   error
}

var (
	userStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#06B6D4")).Bold(true)
	botStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#CDD6F4"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8"))
	faintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
	inputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#45475A")).
			Padding(0, 1)
)

// App is the bubbletea model for the chat view.
type App struct {
	handler  driving.MessageHandler
	input    textinput.Model
	view     viewport.Model
	lines    []string
	waiting  bool
	ready    bool
	quitting bool
}

// NewApp creates the chat view over a message handler.
func NewApp(handler driving.MessageHandler) *App {
	ti := textinput.New()
	ti.Placeholder = `Try "search <keyword>", a number, "next" or "prev"`
	ti.Focus()
	ti.CharLimit = 256

	return &App{
		handler: handler,
		input:   ti,
		lines: []string{
			faintStyle.Render("PanSeek chat. Messages go through the same dispatcher a chat bridge uses. Ctrl+C to quit."),
		},
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.input.Width = msg.Width - 6
		height := msg.Height - 4
		if height < 3 {
			height = 3
		}
		if !a.ready {
			a.view = viewport.New(msg.Width, height)
			a.ready = true
		} else {
			a.view.Width = msg.Width
			a.view.Height = height
		}
		a.refresh()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			a.quitting = true
			return a, tea.Quit
		case tea.KeyEnter:
			text := strings.TrimSpace(a.input.Value())
			if text == "" || a.waiting {
				return a, nil
			}
			a.input.Reset()
			a.appendLine(userStyle.Render("you> ") + text)
			a.waiting = true
			return a, a.send(text)
		}

	case repliesMsg:
		a.waiting = false
		if msg.err != nil {
			a.appendLine(errStyle.Render("error: " + msg.err.Error()))
		}
		if len(msg.texts) == 0 && msg.err == nil {
			a.appendLine(faintStyle.Render("(no reply)"))
		}
		for _, text := range msg.texts {
			a.appendLine(botStyle.Render("bot> " + text))
		}
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	cmds = append(cmds, cmd)
	a.view, cmd = a.view.Update(msg)
	cmds = append(cmds, cmd)
	return a, tea.Batch(cmds...)
}

// send runs one message through the handler off the UI goroutine.
func (a *App) send(text string) tea.Cmd {
	handler := a.handler
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
		defer cancel()

		var replies []string
		err := handler.HandleMessage(ctx, localOwnerID, text, func(reply string) {
			replies = append(replies, reply)
		})
		return repliesMsg{texts: replies, err: err}
	}
}

// appendLine adds one rendered line and scrolls to the bottom.
func (a *App) appendLine(line string) {
	a.lines = append(a.lines, line)
	a.refresh()
}

// refresh re-renders the viewport content.
func (a *App) refresh() {
	if !a.ready {
		return
	}
	a.view.SetContent(strings.Join(a.lines, "\n\n"))
	a.view.GotoBottom()
}

// View implements tea.Model.
func (a *App) View() string {
	if a.quitting {
		return ""
	}
	if !a.ready {
		return "loading..."
	}
	status := ""
	if a.waiting {
		status = faintStyle.Render(" thinking...")
	}
	return fmt.Sprintf("%s\n%s%s", a.view.View(), inputStyle.Render(a.input.View()), status)
}
