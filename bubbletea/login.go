package bubbletea

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tellerhq/teller"
)

const (
	fieldName = iota
	fieldAccount
	fieldAuthCode
	fieldCount
)

// LoginForm is the three-field credential form shown while no session
// exists.
type LoginForm struct {
	inputs [fieldCount]textinput.Model
	focus  int
	styles Styles
}

// NewLoginForm creates a LoginForm with the name field focused.
func NewLoginForm(styles Styles) LoginForm {
	f := LoginForm{styles: styles}

	name := textinput.New()
	name.Placeholder = "Full name"
	name.CharLimit = 0
	f.inputs[fieldName] = name

	account := textinput.New()
	account.Placeholder = "Account number"
	f.inputs[fieldAccount] = account

	auth := textinput.New()
	auth.Placeholder = "Auth code"
	auth.EchoMode = textinput.EchoPassword
	auth.EchoCharacter = '•'
	f.inputs[fieldAuthCode] = auth

	f.inputs[f.focus].Focus()
	return f
}

// Credentials returns the current field values.
func (f LoginForm) Credentials() teller.Credentials {
	return teller.Credentials{
		Name:          f.inputs[fieldName].Value(),
		AccountNumber: f.inputs[fieldAccount].Value(),
		AuthCode:      f.inputs[fieldAuthCode].Value(),
	}
}

// Reset clears all fields and focuses the first, mirroring the cleared
// form the user sees after logout.
func (f LoginForm) Reset() LoginForm {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.focus = fieldName
	f.inputs[f.focus].Focus()
	return f
}

// Next moves focus to the following field, wrapping around.
func (f LoginForm) Next() (LoginForm, tea.Cmd) {
	return f.setFocus((f.focus + 1) % fieldCount)
}

// Prev moves focus to the preceding field, wrapping around.
func (f LoginForm) Prev() (LoginForm, tea.Cmd) {
	return f.setFocus((f.focus + fieldCount - 1) % fieldCount)
}

func (f LoginForm) setFocus(i int) (LoginForm, tea.Cmd) {
	f.inputs[f.focus].Blur()
	f.focus = i
	return f, f.inputs[f.focus].Focus()
}

// Update forwards a message to the focused field.
func (f LoginForm) Update(msg tea.Msg) (LoginForm, tea.Cmd) {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

// SetWidth sizes all fields.
func (f LoginForm) SetWidth(w int) LoginForm {
	for i := range f.inputs {
		f.inputs[i].Width = w
	}
	return f
}

// View renders the form.
func (f LoginForm) View() string {
	var b strings.Builder
	b.WriteString(f.styles.Accent.Render("Banking Assistant"))
	b.WriteString("\n\n")
	labels := [fieldCount]string{"Name", "Account Number", "Auth Code"}
	for i, in := range f.inputs {
		b.WriteString(f.styles.Muted.Render(labels[i]))
		b.WriteString("\n")
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(f.styles.Muted.Render("Tab to switch fields, Enter to sign in, Ctrl+C to quit"))
	return b.String()
}
