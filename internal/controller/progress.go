package controller

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// buildProgress shows a spinner next to the profile being built. One
// instance runs per profile; Stop blocks until the line is cleared.
type buildProgress struct {
	program *tea.Program
	done    chan struct{}
}

func startBuildProgress(output io.Writer, label string) *buildProgress {
	program := tea.NewProgram(
		newProgressModel(label),
		tea.WithOutput(output),
		tea.WithInput(nil),
		tea.WithoutSignalHandler(),
	)

	p := &buildProgress{program: program, done: make(chan struct{})}

	go func() {
		defer close(p.done)

		if _, err := program.Run(); err != nil {
			slog.Warn("Build progress display stopped", "error", err)
		}
	}()

	return p
}

// Stop ends the spinner and waits for the program to release the output.
func (p *buildProgress) Stop() {
	p.program.Send(progressDoneMsg{})
	<-p.done
}

type progressDoneMsg struct{}

type progressModel struct {
	spinner spinner.Model
	label   string
	done    bool
}

func newProgressModel(label string) progressModel {
	return progressModel{
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(passStyle)),
		label:   label,
	}
}

func (pm progressModel) Init() tea.Cmd {
	return pm.spinner.Tick
}

func (pm progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressDoneMsg:
		pm.done = true

		return pm, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd

		pm.spinner, cmd = pm.spinner.Update(msg)

		return pm, cmd
	}

	return pm, nil
}

func (pm progressModel) View() string {
	if pm.done {
		return ""
	}

	return pm.spinner.View() + " " + dimStyle.Render(pm.label)
}
