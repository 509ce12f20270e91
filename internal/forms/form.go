package forms

import (
	"fmt"
	"net/url"
	"strings"
)

// Invite is one surviving row of the signup invites collection.
type Invite struct {
	Email     string
	IsManager bool
}

// Form binds one submission to a schema. Raw values are fixed at
// construction and the error map is computed once, so a Form is safe to
// read from anywhere after New returns.
type Form struct {
	kind    Kind
	values  map[string]string
	invites []Invite
	errors  map[string][]string
}

// New binds raw submitted values to the schema of the given kind and
// validates them. Only declared fields are retained: routing metadata
// such as the wizard step marker never reaches the instance or the
// ticket body. Validation is total — every field is checked so the
// error map reports all problems at once.
func New(kind Kind, raw url.Values) *Form {
	schema := kind.Schema()
	f := &Form{
		kind:   kind,
		values: make(map[string]string, len(schema.Fields)),
		errors: make(map[string][]string),
	}

	for _, field := range schema.Fields {
		f.values[field.Name] = raw.Get(field.Name)
	}

	if schema.Invites != nil {
		rows := dropBlank(parseInvites(raw))
		f.invites = make([]Invite, 0, len(rows))
		for i, row := range rows {
			for _, field := range schema.Invites.Fields {
				if errs := field.Validate(row.fields[field.Name]); len(errs) > 0 {
					key := fmt.Sprintf("invites[%d].%s", i, field.Name)
					f.errors[key] = errs
				}
			}
			f.invites = append(f.invites, Invite{
				Email:     strings.TrimSpace(row.fields["person_email"]),
				IsManager: truthy(row.fields["person_is_manager"]),
			})
		}
	}

	for _, field := range schema.Fields {
		if errs := field.Validate(f.values[field.Name]); len(errs) > 0 {
			f.errors[field.Name] = errs
		}
	}

	return f
}

// Kind returns the form variant the submission was bound to.
func (f *Form) Kind() Kind { return f.kind }

// Valid reports whether the submission passed validation. Derived from
// the error map computed at construction; never recomputed.
func (f *Form) Valid() bool { return len(f.errors) == 0 }

// Errors returns the field-keyed error map. Invite element errors are
// keyed invites[<index>].<field>. Callers must not mutate the result.
func (f *Form) Errors() map[string][]string { return f.errors }

// Value returns the raw value bound to a declared field, trimmed.
// Undeclared names return "".
func (f *Form) Value(name string) string {
	return strings.TrimSpace(f.values[name])
}

// Values returns the bound raw values for re-rendering a rejected form.
func (f *Form) Values() map[string]string { return f.values }

// Invites returns the surviving invite rows in submission order.
func (f *Form) Invites() []Invite { return f.invites }
