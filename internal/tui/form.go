package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// formFields is a column of single-line inputs followed by one multi-line
// text area. Field names follow the models field constants.
type formFields struct {
	names  []string
	labels []string
	inputs []textinput.Model
	area   textarea.Model
	focus  int
}

// newFormFields builds one input per name; the last name gets the text area.
func newFormFields(names, labels []string) formFields {
	inputs := make([]textinput.Model, len(names)-1)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].CharLimit = 256
		inputs[i].Width = 40
	}

	area := textarea.New()
	area.ShowLineNumbers = false
	area.SetWidth(42)
	area.SetHeight(3)

	return formFields{
		names:  names,
		labels: labels,
		inputs: inputs,
		area:   area,
	}
}

func (f *formFields) size() int {
	return len(f.inputs) + 1
}

func (f *formFields) onArea() bool {
	return f.focus == len(f.inputs)
}

func (f *formFields) current() string {
	return f.names[f.focus]
}

func (f *formFields) value() string {
	if f.onArea() {
		return f.area.Value()
	}
	return f.inputs[f.focus].Value()
}

func (f *formFields) focusCurrent() tea.Cmd {
	if f.onArea() {
		return f.area.Focus()
	}
	return f.inputs[f.focus].Focus()
}

func (f *formFields) blurAll() {
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
	f.area.Blur()
}

func (f *formFields) move(delta int) tea.Cmd {
	f.blurAll()
	n := f.size()
	f.focus = ((f.focus+delta)%n + n) % n
	return f.focusCurrent()
}

func (f *formFields) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if f.onArea() {
		f.area, cmd = f.area.Update(msg)
		return cmd
	}
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

// set replaces the value of the field called name.
func (f *formFields) set(name, value string) {
	for i, n := range f.names {
		if n != name {
			continue
		}
		if i == len(f.inputs) {
			f.area.SetValue(value)
		} else {
			f.inputs[i].SetValue(value)
		}
		return
	}
}

func (f *formFields) view(readOnly bool) string {
	labelWidth := 0
	for _, l := range f.labels {
		if w := lipgloss.Width(l); w > labelWidth {
			labelWidth = w
		}
	}

	var b strings.Builder
	for i, input := range f.inputs {
		row := fmt.Sprintf("%-*s │ [%s]", labelWidth, f.labels[i], input.View())
		if readOnly {
			row = fmt.Sprintf("%-*s │ %s", labelWidth, f.labels[i], readOnlyStyle.Render(input.Value()))
		}
		b.WriteString(row)
		b.WriteString("\n")
	}

	last := f.labels[len(f.inputs)]
	if readOnly {
		b.WriteString(fmt.Sprintf("%-*s │ %s\n", labelWidth, last, readOnlyStyle.Render(f.area.Value())))
		return b.String()
	}
	b.WriteString(fmt.Sprintf("%-*s │\n", labelWidth, last))
	b.WriteString(f.area.View())
	b.WriteString("\n")
	return b.String()
}
