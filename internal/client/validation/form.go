package validation

type Mode int

const (
	// ModeOnChange re-checks a field every time it is set.
	ModeOnChange Mode = iota
	// ModeOnSubmit only checks on Submit.
	ModeOnSubmit
)

// Form holds the input and current errors of one form instance.
type Form struct {
	schema    Schema
	mode      Mode
	values    Values
	errs      Errors
	submitted bool
}

func NewForm(schema Schema, mode Mode) *Form {
	return &Form{schema: schema, mode: mode, values: Values{}, errs: Errors{}}
}

// Set records a value. In on-change mode the field is re-validated, along
// with any already-checked field that must match it.
func (f *Form) Set(name, value string) {
	f.values[name] = value
	if f.mode != ModeOnChange && !f.submitted {
		return
	}
	f.revalidate(name)
	for _, other := range f.schema.Fields {
		if other.Name == name {
			continue
		}
		if _, shown := f.errs[other.Name]; !shown && f.values[other.Name] == "" {
			continue
		}
		for _, r := range other.Rules {
			if r.dependsOn == name {
				f.revalidate(other.Name)
				break
			}
		}
	}
}

func (f *Form) revalidate(name string) {
	if msg, ok := f.schema.ValidateField(name, f.values); !ok {
		f.errs[name] = msg
	} else {
		delete(f.errs, name)
	}
}

func (f *Form) Value(name string) string { return f.values[name] }

// Errors returns a copy of the current field errors.
func (f *Form) Errors() Errors {
	out := make(Errors, len(f.errs))
	for k, v := range f.errs {
		out[k] = v
	}
	return out
}

// Submit validates everything. On success it returns the cleaned values.
func (f *Form) Submit() (Values, bool) {
	f.submitted = true
	f.errs = f.schema.Validate(f.values)
	if !f.errs.Empty() {
		return nil, false
	}
	return f.schema.Clean(f.values), true
}
