package forms

// Schema declares the fields of one form kind. Field names are unique
// within a schema by construction (the tables below are closed; nothing
// is ever appended at runtime).
type Schema struct {
	Fields []Field

	// Invites is the element schema of the nested invites collection,
	// or nil for forms without one.
	Invites *Schema
}

// Field looks up a declared field by name.
func (s *Schema) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// SeverityChoices enumerates the accepted values of the severity field
// on the something-wrong-with-service form.
var SeverityChoices = []string{
	"service_down",
	"service_degraded",
	"cannot_operate_live",
	"cannot_operate_dev",
	"other",
}

var inviteSchema = &Schema{
	Fields: []Field{
		// Not required: a blank invite row is dropped before validation,
		// so the email rule only ever sees rows the user started filling.
		{Name: "person_email", Label: "Email address", Type: Email},
		{Name: "person_is_manager", Label: "Org manager", Type: Flag},
	},
}

var contactSchema = &Schema{
	Fields: []Field{
		{Name: "name", Label: "Name", Required: true},
		{Name: "email", Label: "Email address", Required: true, Type: Email},
		{Name: "message", Label: "Message", Required: true},
	},
}

var signupSchema = &Schema{
	Fields: []Field{
		{Name: "person_name", Label: "Name", Required: true},
		{Name: "person_email", Label: "Email address", Required: true, Type: Email},
		{Name: "organization_name", Label: "Organisation name", Required: true},
		{Name: "person_is_manager", Label: "Org manager", Type: Flag},
	},
	Invites: inviteSchema,
}

func supportSchema(orgRequired, withSeverity bool) *Schema {
	fields := []Field{
		{Name: "person_name", Label: "Name", Required: true},
		{Name: "person_email", Label: "Email address", Required: true, Type: Email},
		{Name: "organization_name", Label: "Organisation name", Required: orgRequired},
	}
	if withSeverity {
		fields = append(fields, Field{
			Name:     "severity",
			Label:    "Severity",
			Required: true,
			Type:     Choice,
			Choices:  SeverityChoices,
		})
	}
	fields = append(fields, Field{Name: "message", Label: "Message", Required: true})
	return &Schema{Fields: fields}
}

var (
	somethingWrongSchema = supportSchema(true, true)
	helpUsingSchema      = supportSchema(false, false)
	findOutMoreSchema    = supportSchema(false, false)
)
