package term

import (
	"image"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jgkn/gadget"
)

// Model drives a gadget UI as a tea.Model. Run it with
// tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).
type Model struct {
	Env *gadget.Env

	root    gadget.UI
	canvas  *Canvas
	mouse   gadget.Mouse
	overlay overlay // active file/color dialog, nil when none
}

// overlay is a host-side modal (the terminal has no native dialogs). It takes
// all key input while active; done means it should be dismissed.
type overlay interface {
	key(msg tea.KeyMsg) (done bool)
	draw(c *Canvas)
}

// New returns a model displaying root. The model's Env carries the term
// implementations of FileDialog and ColorDialog.
func New(root gadget.UI) *Model {
	c := NewCanvas(80, 24)
	m := &Model{root: root, canvas: c, Env: gadget.NewEnv(c)}
	m.Env.Pad = image.Pt(1, 0) // cells are coarse; pixel padding would eat whole rows
	m.Env.Files = &fileDialog{m}
	m.Env.Picker = &colorDialog{m}
	return m
}

type blinkMsg time.Time

// callMsg carries a function from Env.Call onto the tea loop.
type callMsg func()

func blinkTick() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return blinkMsg(t)
	})
}

func (m *Model) waitCall() tea.Cmd {
	return func() tea.Msg {
		return callMsg(<-m.Env.Call)
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(blinkTick(), m.waitCall())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.canvas.Resize(msg.Width, msg.Height)
	case blinkMsg:
		return m, blinkTick()
	case callMsg:
		msg()
		return m, m.waitCall()
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.overlay != nil {
			if m.overlay.key(msg) {
				m.overlay = nil
			}
			return m, nil
		}
		if k, ok := keyRune(msg); ok {
			m.root.Key(m.Env, k)
		}
	case tea.MouseMsg:
		if m.overlay != nil {
			return m, nil
		}
		m.handleMouse(tea.MouseEvent(msg))
	}
	return m, nil
}

func (m *Model) dispatch(mouse gadget.Mouse) {
	m.mouse = mouse
	m.root.Mouse(m.Env, mouse)
}

func (m *Model) handleMouse(me tea.MouseEvent) {
	p := image.Pt(me.X, me.Y)
	buttons := m.mouse.Buttons
	switch me.Action {
	case tea.MouseActionPress:
		switch me.Button {
		case tea.MouseButtonLeft:
			m.dispatch(gadget.Mouse{Point: p, Buttons: buttons | gadget.Button1})
		case tea.MouseButtonMiddle:
			m.dispatch(gadget.Mouse{Point: p, Buttons: buttons | gadget.Button2})
		case tea.MouseButtonRight:
			m.dispatch(gadget.Mouse{Point: p, Buttons: buttons | gadget.Button3})
		case tea.MouseButtonWheelUp:
			// terminals deliver no wheel release; pulse the button
			m.dispatch(gadget.Mouse{Point: p, Buttons: buttons | gadget.Button4})
			m.dispatch(gadget.Mouse{Point: p, Buttons: buttons})
		case tea.MouseButtonWheelDown:
			m.dispatch(gadget.Mouse{Point: p, Buttons: buttons | gadget.Button5})
			m.dispatch(gadget.Mouse{Point: p, Buttons: buttons})
		}
	case tea.MouseActionRelease:
		m.dispatch(gadget.Mouse{Point: p, Buttons: 0})
	case tea.MouseActionMotion:
		m.dispatch(gadget.Mouse{Point: p, Buttons: buttons})
	}
}

func keyRune(msg tea.KeyMsg) (rune, bool) {
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) > 0 {
			return msg.Runes[0], true
		}
	case tea.KeySpace:
		return ' ', true
	case tea.KeyEnter:
		return '\n', true
	case tea.KeyTab:
		return '\t', true
	case tea.KeyBackspace:
		return gadget.KeyBackspace, true
	case tea.KeyDelete:
		return gadget.KeyDelete, true
	case tea.KeyEsc:
		return gadget.KeyEscape, true
	case tea.KeyUp:
		return gadget.KeyUp, true
	case tea.KeyDown:
		return gadget.KeyDown, true
	case tea.KeyLeft:
		return gadget.KeyLeft, true
	case tea.KeyRight:
		return gadget.KeyRight, true
	case tea.KeyHome:
		return gadget.KeyHome, true
	case tea.KeyEnd:
		return gadget.KeyEnd, true
	}
	return 0, false
}

func (m *Model) View() string {
	m.canvas.Clear(m.Env.Background)
	m.root.Draw(m.Env, m.mouse)
	if m.overlay != nil {
		m.overlay.draw(m.canvas)
	}
	return m.canvas.View()
}
