// Package ticket turns a valid form submission into the exact payload
// shape the helpdesk API expects. Building a payload is a pure
// transform: all failure belongs upstream (validation) or downstream
// (transport).
package ticket

import (
	"fmt"
	"strings"

	"github.com/jonathanglassman/paas-product-page/internal/forms"
)

// Requester identifies the person the helpdesk should reply to.
type Requester struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Comment carries the assembled ticket body.
type Comment struct {
	Body string `json:"body"`
}

// Ticket is the helpdesk ticket record.
type Ticket struct {
	Subject   string    `json:"subject"`
	Requester Requester `json:"requester"`
	GroupID   int       `json:"group_id"`
	Tags      []string  `json:"tags"`
	Comment   Comment   `json:"comment"`
}

// Payload is the wire envelope posted to the helpdesk.
type Payload struct {
	Ticket Ticket `json:"ticket"`
}

const subjectPrefix = "[PaaS Support] "

// Base tags carried on every ticket; each kind adds exactly one more.
var baseTags = []string{"govuk_paas_product_page", "govuk_paas_support"}

// New builds the payload for a valid form of the given kind. The result
// is deterministic: the same form and group id always produce the same
// bytes once marshalled.
func New(f *forms.Form, groupID int) Payload {
	return Payload{Ticket: Ticket{
		Subject:   subject(f),
		Requester: requester(f),
		GroupID:   groupID,
		Tags:      tags(f.Kind()),
		Comment:   Comment{Body: body(f)},
	}}
}

func requester(f *forms.Form) Requester {
	// The contact form names its fields name/email; every other form
	// uses the person_ prefix.
	if f.Kind() == forms.Contact {
		return Requester{Email: f.Value("email"), Name: f.Value("name")}
	}
	return Requester{Email: f.Value("person_email"), Name: f.Value("person_name")}
}

func subject(f *forms.Form) string {
	switch f.Kind() {
	case forms.Contact:
		return subjectPrefix + "New contact form message"
	case forms.Signup:
		return subjectPrefix + "New organisation signup request"
	case forms.SomethingWrongWithService:
		return fmt.Sprintf("%sReported something wrong in %s live service",
			subjectPrefix, f.Value("organization_name"))
	case forms.HelpUsingPaas:
		return subjectPrefix + "Received a request for help"
	case forms.FindOutMore:
		return subjectPrefix + "Received a request for information"
	}
	return subjectPrefix + "New message"
}

func tags(kind forms.Kind) []string {
	tag := "govuk_paas_contact_us"
	switch kind {
	case forms.Signup:
		tag = "govuk_paas_signup"
	case forms.SomethingWrongWithService:
		tag = "govuk_paas_live_service"
	case forms.HelpUsingPaas:
		tag = "govuk_paas_help_using"
	case forms.FindOutMore:
		tag = "govuk_paas_find_out_more"
	}
	out := make([]string, 0, len(baseTags)+1)
	out = append(out, baseTags...)
	return append(out, tag)
}

// body assembles the labelled lines of the comment in a fixed order.
// Empty optional fields are omitted entirely rather than rendered as
// blank lines; the free-text message is appended verbatim.
func body(f *forms.Form) string {
	req := requester(f)
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\n", req.Name)
	fmt.Fprintf(&b, "Email: %s\n", req.Email)
	if org := f.Value("organization_name"); org != "" {
		fmt.Fprintf(&b, "Organisation name: %s\n", org)
	}
	if f.Kind() == forms.SomethingWrongWithService {
		fmt.Fprintf(&b, "Severity: %s\n", f.Value("severity"))
	}
	if f.Kind() == forms.Signup {
		for i, inv := range f.Invites() {
			fmt.Fprintf(&b, "Invite %d: %s (org manager: %t)\n", i+1, inv.Email, inv.IsManager)
		}
		return b.String()
	}
	b.WriteString("\n")
	b.WriteString(f.Value("message"))
	return b.String()
}
