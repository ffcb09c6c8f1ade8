package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pixvec/pixvec/pkg/batch"
)

// spinnerFrames animates the currently converting entry.
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// jobState tracks the lifecycle of one batch entry in the progress view.
type jobState int

const (
	statePending jobState = iota
	stateRunning
	stateDone
	stateCached
	stateFailed
)

// convertResultMsg carries one finished conversion into the model.
type convertResultMsg struct {
	index    int
	res      batch.Result
	written  []string
	writeErr error
}

// convertDoneMsg signals that the whole batch finished.
type convertDoneMsg struct{}

// tickMsg advances the spinner animation.
type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// convertModel is the bubbletea model for batch conversion progress.
type convertModel struct {
	names  []string
	states []jobState
	shapes []int
	errs   []error
	frame  int
	done   bool
	cancel context.CancelFunc
}

func newConvertModel(jobs []batch.Job, cancel context.CancelFunc) convertModel {
	names := make([]string, len(jobs))
	for i, job := range jobs {
		names[i] = filepath.Base(job.Path)
	}
	states := make([]jobState, len(jobs))
	if len(states) > 0 {
		states[0] = stateRunning
	}
	return convertModel{
		names:  names,
		states: states,
		shapes: make([]int, len(jobs)),
		errs:   make([]error, len(jobs)),
		cancel: cancel,
	}
}

func (m convertModel) Init() tea.Cmd {
	return tick()
}

func (m convertModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.cancel()
			return m, tea.Quit
		}
	case tickMsg:
		if m.done {
			return m, nil
		}
		m.frame++
		return m, tick()
	case convertResultMsg:
		m = m.applyResult(msg)
		return m, nil
	case convertDoneMsg:
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m convertModel) applyResult(msg convertResultMsg) convertModel {
	switch {
	case msg.res.Err != nil:
		m.states[msg.index] = stateFailed
		m.errs[msg.index] = msg.res.Err
	case msg.writeErr != nil:
		m.states[msg.index] = stateFailed
		m.errs[msg.index] = msg.writeErr
	case msg.res.CacheHit:
		m.states[msg.index] = stateCached
		m.shapes[msg.index] = msg.res.Diagnostics.ShapeCount
	default:
		m.states[msg.index] = stateDone
		m.shapes[msg.index] = msg.res.Diagnostics.ShapeCount
	}
	if next := msg.index + 1; next < len(m.states) {
		m.states[next] = stateRunning
	}
	return m
}

func (m convertModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Converting"))
	b.WriteString("\n\n")

	completed := 0
	for i, name := range m.names {
		switch m.states[i] {
		case statePending:
			b.WriteString("  " + StyleDim.Render(name))
		case stateRunning:
			frame := spinnerFrames[m.frame%len(spinnerFrames)]
			b.WriteString(styleIconSpinner.Render(frame) + " " + StyleValue.Render(name))
		case stateDone:
			completed++
			b.WriteString(styleIconSuccess.Render(iconSuccess) + " " + name +
				StyleDim.Render(fmt.Sprintf("  %d shapes", m.shapes[i])))
		case stateCached:
			completed++
			b.WriteString(styleIconSuccess.Render(iconSuccess) + " " + name +
				StyleDim.Render(fmt.Sprintf("  %d shapes · ", m.shapes[i])) +
				styleCached.Render(iconCached))
		case stateFailed:
			completed++
			b.WriteString(styleIconError.Render(iconError) + " " + name +
				StyleDim.Render("  "+m.errs[i].Error()))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("  [%d/%d]  q to cancel", completed, len(m.names))))
	b.WriteString("\n")

	return b.String()
}

// succeeded counts conversions that completed without error.
func (m convertModel) succeeded() int {
	n := 0
	for _, s := range m.states {
		if s == stateDone || s == stateCached {
			n++
		}
	}
	return n
}

// runConvertTUI runs the batch with an interactive progress display.
// Artifacts are written as each result arrives so a cancelled batch keeps
// the conversions already finished.
func (c *CLI) runConvertTUI(ctx context.Context, runner *batch.Runner, jobs []batch.Job, outDir string) (int, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(newConvertModel(jobs, cancel))

	go func() {
		i := 0
		for res := range runner.Run(ctx, jobs) {
			written, err := writeArtifacts(res, outDir)
			p.Send(convertResultMsg{index: i, res: res, written: written, writeErr: err})
			i++
		}
		p.Send(convertDoneMsg{})
	}()

	final, err := p.Run()
	if err != nil {
		return 0, err
	}
	m, ok := final.(convertModel)
	if !ok {
		return 0, fmt.Errorf("unexpected model type %T", final)
	}
	return m.succeeded(), nil
}
