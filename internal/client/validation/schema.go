// Package validation checks form input against declarative field schemas
// and reports the first failing rule per field.
package validation

// Values is raw form input keyed by field name.
type Values map[string]string

// Errors maps a field name to the message of its first failing rule. Valid
// fields have no entry.
type Errors map[string]string

func (e Errors) Empty() bool { return len(e) == 0 }

type Field struct {
	Name  string
	Trim  bool
	Rules []Rule
}

// Schema is an ordered list of fields.
type Schema struct {
	Fields []Field
}

func (s Schema) field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Clean returns a copy of in with trimming applied to Trim fields.
func (s Schema) Clean(in Values) Values {
	out := make(Values, len(in))
	for k, v := range in {
		out[k] = v
	}
	for _, f := range s.Fields {
		if f.Trim {
			out[f.Name] = trimmed(out[f.Name])
		}
	}
	return out
}

// ValidateField reports the first failing rule's message for one field.
func (s Schema) ValidateField(name string, in Values) (string, bool) {
	f, ok := s.field(name)
	if !ok {
		return "", true
	}
	clean := s.Clean(in)
	return f.check(clean)
}

func (f Field) check(clean Values) (string, bool) {
	v := clean[f.Name]
	for _, r := range f.Rules {
		if !r.ok(v, clean) {
			return r.Message, false
		}
	}
	return "", true
}

// Validate checks every field and returns the failures.
func (s Schema) Validate(in Values) Errors {
	clean := s.Clean(in)
	errs := Errors{}
	for _, f := range s.Fields {
		if msg, ok := f.check(clean); !ok {
			errs[f.Name] = msg
		}
	}
	return errs
}
