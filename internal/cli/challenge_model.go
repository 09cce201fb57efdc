package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lucasferreira/webquest/internal/catalog"
	"github.com/lucasferreira/webquest/internal/challenge"
	"github.com/lucasferreira/webquest/internal/cli/formatter"
)

// challengeKeyMap holds the key bindings for the challenge screen.
type challengeKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Pause  key.Binding
	Quit   key.Binding
}

func defaultChallengeKeys() challengeKeyMap {
	return challengeKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "answer")),
		Pause:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		Quit:   key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "abort")),
	}
}

// challengeTickMsg drives the countdown display.
type challengeTickMsg time.Time

func challengeTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return challengeTickMsg(t)
	})
}

// challengeModel runs one timed challenge: a question sequence against a
// pausable countdown. When the clock runs out the run ends with whatever
// answers were given so far.
type challengeModel struct {
	def    catalog.Challenge
	timer  *challenge.Timer
	keys   challengeKeyMap
	index  int
	cursor int

	correct  int
	finished bool
	aborted  bool
	paused   bool
}

func newChallengeModel(def catalog.Challenge, timer *challenge.Timer) *challengeModel {
	return &challengeModel{
		def:   def,
		timer: timer,
		keys:  defaultChallengeKeys(),
	}
}

func (m *challengeModel) Init() tea.Cmd {
	m.timer.Start()
	return challengeTick()
}

func (m *challengeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case challengeTickMsg:
		if m.finished || m.aborted {
			return m, nil
		}
		if m.timer.Expired() {
			m.finish()
			return m, tea.Quit
		}
		return m, challengeTick()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.aborted = true
			m.timer.Stop()
			return m, tea.Quit

		case key.Matches(msg, m.keys.Pause):
			if m.paused {
				m.timer.Resume()
			} else {
				m.timer.Pause()
			}
			m.paused = !m.paused
			return m, nil

		case m.paused || m.finished:
			return m, nil

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.currentQuestion().Options)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, m.keys.Select):
			if m.cursor == m.currentQuestion().CorrectAnswer {
				m.correct++
			}
			m.index++
			m.cursor = 0
			if m.index >= len(m.def.Questions) {
				m.finish()
				return m, tea.Quit
			}
			return m, nil
		}
	}
	return m, nil
}

func (m *challengeModel) View() string {
	var b strings.Builder

	remaining := int(m.timer.Remaining().Seconds())
	pct := float64(remaining) / float64(m.def.TimeLimit)
	b.WriteString(fmt.Sprintf("%s  %s %s\n\n",
		formatter.Bold(m.def.Title),
		formatter.RenderBar(pct, 20),
		formatter.FormatSeconds(remaining)))

	if m.paused {
		b.WriteString(formatter.StyleYellow.Render("PAUSED") + formatter.Dim("  press p to resume") + "\n")
		return b.String()
	}
	if m.finished || m.aborted {
		return b.String()
	}

	q := m.currentQuestion()
	b.WriteString(fmt.Sprintf("%s %s\n\n",
		formatter.Dim(fmt.Sprintf("%d/%d", m.index+1, len(m.def.Questions))),
		formatter.Bold(q.Prompt)))

	for i, opt := range q.Options {
		if i == m.cursor {
			b.WriteString(formatter.StyleHeader.Render("> ") + formatter.StyleFg.Render(opt) + "\n")
		} else {
			b.WriteString("  " + formatter.Dim(opt) + "\n")
		}
	}

	b.WriteString("\n" + formatter.Dim("↑/↓ move · enter answer · p pause · esc abort") + "\n")
	return b.String()
}

func (m *challengeModel) currentQuestion() catalog.Question {
	return m.def.Questions[m.index]
}

func (m *challengeModel) finish() {
	m.finished = true
	m.timer.Stop()
}

// Results returns the run outcome once the program has quit.
func (m *challengeModel) Results() (correct, elapsedSeconds int, aborted bool) {
	return m.correct, int(m.timer.Elapsed().Seconds()), m.aborted
}
