package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dmitrijs2005/payforms/internal/client/forms"
	"github.com/dmitrijs2005/payforms/internal/client/services"
	"github.com/dmitrijs2005/payforms/internal/logging"
)

type appState int

const (
	stateMenu appState = iota
	stateForm
)

const itemLogout = "logout"

type menuItem struct {
	name  string
	title string
	desc  string
}

func (i menuItem) Title() string       { return i.title }
func (i menuItem) Description() string { return i.desc }
func (i menuItem) FilterValue() string { return i.title }

// App is the bubbletea model.
type App struct {
	ctx    context.Context
	auth   services.AuthService
	sender forms.Sender
	specs  []forms.Spec
	log    logging.Logger

	state     appState
	menu      list.Model
	view      *formView
	statusMsg string
	width     int
	height    int
}

// NewApp builds the model. Requests run under ctx.
func NewApp(ctx context.Context, auth services.AuthService, sender forms.Sender, log logging.Logger) *App {
	specs := forms.Catalog(auth)

	items := make([]list.Item, 0, len(specs)+1)
	for _, s := range specs {
		items = append(items, menuItem{name: s.Name, title: s.Title, desc: s.Method + " " + s.Path})
	}
	items = append(items, menuItem{name: itemLogout, title: "Logout", desc: "end the session"})

	menu := list.New(items, list.NewDefaultDelegate(), 0, 0)
	menu.Title = "payforms"
	menu.SetShowStatusBar(false)
	menu.SetFilteringEnabled(false)

	return &App{
		ctx:    ctx,
		auth:   auth,
		sender: sender,
		specs:  specs,
		log:    log,
		state:  stateMenu,
		menu:   menu,
	}
}

// Run starts the program and blocks until the user quits or ctx is done.
func Run(ctx context.Context, app *App, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, opts...)
	_, err := tea.NewProgram(app, opts...).Run()
	app.closeForm()
	return err
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.menu.SetSize(max(0, msg.Width-4), max(0, msg.Height-6))
		return a, nil

	case submitDoneMsg:
		return a, a.handleDone(msg)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			a.closeForm()
			return a, tea.Quit
		case "esc":
			a.closeForm()
			return a, nil
		case "q":
			if a.state == stateMenu {
				return a, tea.Quit
			}
		case "enter":
			if a.state == stateMenu {
				return a, a.selectMenuItem()
			}
			return a, a.enterOnForm()
		case "tab", "down":
			if a.state == stateForm {
				return a, a.view.move(1)
			}
		case "shift+tab", "up":
			if a.state == stateForm {
				return a, a.view.move(-1)
			}
		}
	}

	if a.state == stateForm {
		return a, a.view.update(msg)
	}

	var cmd tea.Cmd
	a.menu, cmd = a.menu.Update(msg)
	return a, cmd
}

func (a *App) selectMenuItem() tea.Cmd {
	item, ok := a.menu.SelectedItem().(menuItem)
	if !ok {
		return nil
	}
	if item.name == itemLogout {
		a.logout()
		return nil
	}
	return a.open(item.name)
}

func (a *App) logout() {
	if !a.auth.LoggedIn() {
		a.statusMsg = "Not logged in"
		return
	}
	if err := a.auth.Logout(a.ctx); err != nil {
		a.statusMsg = "Logout failed"
		return
	}
	a.statusMsg = "Logged out"
}

// open mounts a screen, replacing (and closing) the current one.
func (a *App) open(name string) tea.Cmd {
	spec, ok := forms.Lookup(a.specs, name)
	if !ok {
		a.statusMsg = fmt.Sprintf("unknown screen %q", name)
		return nil
	}

	a.closeForm()
	a.view = newFormView(forms.New(spec, a.sender, a.log))
	a.state = stateForm
	a.statusMsg = ""

	if spec.AutoSubmit {
		return a.view.submit(a.ctx)
	}
	return nil
}

func (a *App) enterOnForm() tea.Cmd {
	if a.view.focus < len(a.view.inputs)-1 {
		return a.view.move(1)
	}
	return a.view.submit(a.ctx)
}

func (a *App) handleDone(msg submitDoneMsg) tea.Cmd {
	if a.view == nil || msg.form != a.view.form || msg.out.Skipped {
		return nil
	}
	a.view.done(msg.out)

	if msg.out.OK && msg.out.Next != "" {
		result := msg.out.Result
		cmd := a.open(msg.out.Next)
		a.statusMsg = result
		return cmd
	}
	return nil
}

// closeForm cancels the current screen's request and returns to the menu.
func (a *App) closeForm() {
	if a.view != nil {
		a.view.form.Close()
		a.view = nil
	}
	a.state = stateMenu
}

func (a *App) View() string {
	var content string
	switch a.state {
	case stateMenu:
		content = a.menu.View()
	case stateForm:
		content = a.view.view()
	}

	var b strings.Builder
	b.WriteString(statusStyle.Render(a.auth.Status(time.Now())))
	if a.statusMsg != "" {
		b.WriteString(statusStyle.Render(" • " + a.statusMsg))
	}
	b.WriteString("\n\n")
	b.WriteString(content)
	return b.String()
}
