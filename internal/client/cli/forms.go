package cli

import (
	"errors"
	"fmt"

	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/client/services"
	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/client/ui"
	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/client/validation"
)

// cancelWord abandons a form at any prompt.
const cancelWord = ":q"

var errFormCanceled = errors.New("form canceled")

type fieldKind int

const (
	textField fieldKind = iota
	passwordField
	multilineField
)

type formField struct {
	Name  string
	Label string
	Kind  fieldKind
	// Strength shows the password meter after a password is entered.
	Strength bool
}

// fill prompts for each field in turn and re-asks until the answer passes
// the field's rules. An empty answer keeps the value from initial, which is
// how edit forms leave a field unchanged. The form checks on change, so a
// confirmation field is re-checked when the field it must match changes.
func (a *App) fill(title string, schema validation.Schema, fields []formField, initial validation.Values) (validation.Values, error) {
	form := validation.NewForm(schema, validation.ModeOnChange)
	for k, v := range initial {
		form.Set(k, v)
	}

	a.println(a.st.Title.Render(title))
	a.println(a.st.Muted.Render("(enter " + cancelWord + " to cancel)"))

	for _, f := range fields {
		for {
			answer, err := a.ask(f, form.Value(f.Name))
			if err != nil {
				return nil, err
			}
			if answer == cancelWord {
				a.println(a.st.Muted.Render("Canceled."))
				return nil, errFormCanceled
			}
			if answer == "" {
				answer = form.Value(f.Name)
			}
			form.Set(f.Name, answer)
			if msg, bad := form.Errors()[f.Name]; bad {
				a.println(a.st.Error.Render("  " + msg))
				continue
			}
			if f.Strength {
				a.println("  " + ui.StrengthBar(a.st, validation.PasswordStrength(answer)))
			}
			break
		}
	}

	values, ok := form.Submit()
	if !ok {
		return nil, &services.ValidationError{Fields: form.Errors()}
	}
	return values, nil
}

func (a *App) ask(f formField, current string) (string, error) {
	label := f.Label
	switch f.Kind {
	case passwordField:
		return getPassword(a.reader, label, a.out)
	case multilineField:
		if current != "" {
			label += " (empty keeps the current text)"
		}
		return getMultiline(a.reader, label, a.out)
	default:
		if current != "" {
			label = fmt.Sprintf("%s [%s]", label, current)
		}
		return getSimpleText(a.reader, label, a.out)
	}
}

// confirm shows a destructive-action modal. Only an explicit yes accepts.
func (a *App) confirm(title, text string) (bool, error) {
	a.println(ui.Confirm(a.st, title, text))
	answer, err := getSimpleText(a.reader, "Confirm", a.out)
	if err != nil {
		return false, err
	}
	return ui.ConfirmAnswer(answer), nil
}
