package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dmitrijs2005/payforms/internal/client/forms"
)

// submitDoneMsg carries the outcome of one submission back to Update. form
// identifies the view it belongs to so answers for a closed view are dropped.
type submitDoneMsg struct {
	form *forms.Form
	out  forms.Outcome
}

// formView is one mounted screen.
type formView struct {
	form    *forms.Form
	inputs  []textinput.Model
	focus   int
	spinner spinner.Model
	pending bool
	result  string
	failed  bool
}

func newFormView(form *forms.Form) *formView {
	v := &formView{
		form:    form,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}

	for i, f := range form.Spec().Fields {
		ti := textinput.New()
		ti.Prompt = f.Label + ": "
		if f.Optional {
			ti.Placeholder = "optional"
		}
		if f.Secret {
			ti.EchoMode = textinput.EchoPassword
			ti.EchoCharacter = '•'
		}
		if i == 0 {
			ti.Focus()
		}
		v.inputs = append(v.inputs, ti)
	}
	return v
}

func (v *formView) move(delta int) tea.Cmd {
	if len(v.inputs) == 0 {
		return nil
	}
	v.inputs[v.focus].Blur()
	v.focus = (v.focus + delta + len(v.inputs)) % len(v.inputs)
	return v.inputs[v.focus].Focus()
}

// submit copies the inputs into the form and starts the request. It returns
// nil while a request is already pending.
func (v *formView) submit(ctx context.Context) tea.Cmd {
	if v.pending {
		return nil
	}
	for i, f := range v.form.Spec().Fields {
		v.form.Set(f.Key, v.inputs[i].Value())
	}
	v.pending = true

	form := v.form
	return tea.Batch(v.spinner.Tick, func() tea.Msg {
		return submitDoneMsg{form: form, out: form.Submit(ctx)}
	})
}

func (v *formView) done(out forms.Outcome) {
	v.pending = false
	v.result = out.Result
	v.failed = !out.OK
}

func (v *formView) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !v.pending {
			return nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return cmd
	case tea.KeyMsg:
		if len(v.inputs) == 0 || v.pending {
			return nil
		}
		var cmd tea.Cmd
		v.inputs[v.focus], cmd = v.inputs[v.focus].Update(msg)
		return cmd
	}
	return nil
}

func (v *formView) view() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(v.form.Spec().Title))
	b.WriteString("\n\n")

	for _, in := range v.inputs {
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	if len(v.inputs) > 0 {
		b.WriteString("\n")
	}

	switch {
	case v.pending:
		b.WriteString(v.spinner.View() + " Submitting...")
	case v.failed:
		b.WriteString(failureStyle.Render(v.result))
	case v.result != "":
		b.WriteString(resultStyle.Render(v.result))
	}

	b.WriteString("\n\n")
	b.WriteString(hintStyle.Render("enter: next/submit • tab: next field • esc: back • ctrl+c: quit"))
	return b.String()
}
