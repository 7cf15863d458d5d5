package types

import "net/url"

// FormField is one named value captured from a form.
type FormField struct {
	Name  string
	Value string
}

// FormSubmission is the field state of a form at submit time, in document
// order.
type FormSubmission struct {
	Fields []FormField
}

// Get returns the first value recorded for name.
func (s FormSubmission) Get(name string) (string, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// Values converts the submission into url.Values.
func (s FormSubmission) Values() url.Values {
	out := make(url.Values, len(s.Fields))
	for _, f := range s.Fields {
		out.Add(f.Name, f.Value)
	}
	return out
}
