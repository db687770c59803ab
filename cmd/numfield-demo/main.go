package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/numfield"
	"github.com/iw2rmb/numfield/numeric"
)

type model struct {
	fields  []numeric.Model
	focus   int
	last    map[string]int64
	history int
}

func newModel(cfg *Config) model {
	m := model{last: make(map[string]int64, len(cfg.Fields))}
	for i, fc := range cfg.Fields {
		nc := fc.NumericConfig()
		nc.Blurred = i != 0
		f := numeric.New(nc).SetPosition(0, i)
		m.fields = append(m.fields, f)
		m.last[f.ID()] = f.Number()
	}
	return m
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case numeric.ChangedMsg:
		m.last[msg.ID] = msg.Value
		m.history++
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+q":
			return m, tea.Quit
		case "tab":
			return m.moveFocus(1)
		case "shift+tab":
			return m.moveFocus(-1)
		}
		var cmd tea.Cmd
		m.fields[m.focus], cmd = m.fields[m.focus].Update(msg)
		return m, cmd
	case tea.MouseMsg:
		// Every field hit-tests the event itself.
		cmds := make([]tea.Cmd, 0, len(m.fields))
		for i := range m.fields {
			var cmd tea.Cmd
			m.fields[i], cmd = m.fields[i].Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}
	return m, nil
}

func (m model) moveFocus(delta int) (model, tea.Cmd) {
	if len(m.fields) < 2 {
		return m, nil
	}
	var cmd tea.Cmd
	m.fields[m.focus], cmd = m.fields[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.fields)) % len(m.fields)
	m.fields[m.focus] = m.fields[m.focus].Focus()
	return m, cmd
}

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

func (m model) View() string {
	rows := make([]string, 0, len(m.fields)+4)
	for _, f := range m.fields {
		rows = append(rows, f.View())
	}

	status := []string{
		"",
		"committed:",
	}
	for _, f := range m.fields {
		status = append(status, fmt.Sprintf("  %s = %d", f.ID(), m.last[f.ID()]))
	}
	status = append(status,
		fmt.Sprintf("notifications: %d", m.history),
		"tab/shift+tab: next/prev field, ↑/↓ or wheel (ctrl: x6): step, enter/esc: commit, ctrl+q: quit",
	)
	rows = append(rows, statusStyle.Render(strings.Join(status, "\n")))
	return strings.Join(rows, "\n")
}

var errVersionPrinted = errors.New("version printed")

func loadFromFlags(args []string) (*Config, error) {
	fs := flag.NewFlagSet("numfield-demo", flag.ContinueOnError)
	path := fs.String("config", "", "YAML file describing the fields")
	lo := fs.Int64("min", 0, "lower bound of the single field (when -config is empty)")
	hi := fs.Int64("max", 100, "upper bound of the single field (when -config is empty)")
	value := fs.Int64("value", 0, "initial value of the single field (when -config is empty)")
	version := fs.Bool("version", false, "print the version and exit")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if *version {
		fmt.Println(numfield.Banner())
		return nil, errVersionPrinted
	}

	if *path != "" {
		return LoadConfig(*path)
	}
	cfg := &Config{Fields: []FieldConfig{{Name: "value", Min: lo, Max: hi, Value: *value}}}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func main() {
	cfg, err := loadFromFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) || errors.Is(err, errVersionPrinted) {
			return
		}
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(2)
	}

	p := tea.NewProgram(newModel(cfg), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
