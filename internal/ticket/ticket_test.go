package ticket

import (
	"encoding/json"
	"net/url"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathanglassman/paas-product-page/internal/forms"
)

func mustValid(t *testing.T, kind forms.Kind, values url.Values) *forms.Form {
	t.Helper()
	f := forms.New(kind, values)
	require.True(t, f.Valid(), "form must be valid: %v", f.Errors())
	return f
}

func TestContactTicket(t *testing.T) {
	f := mustValid(t, forms.Contact, url.Values{
		"name":    {"Jeff Jefferson"},
		"email":   {"jeff@test.gov.uk"},
		"message": {"Hello There"},
	})
	p := New(f, 42)

	assert.Contains(t, p.Ticket.Subject, "contact")
	assert.True(t, strings.HasPrefix(p.Ticket.Subject, "[PaaS Support] "))
	assert.Equal(t, Requester{Email: "jeff@test.gov.uk", Name: "Jeff Jefferson"}, p.Ticket.Requester)
	assert.Equal(t, 42, p.Ticket.GroupID)
	assert.Contains(t, p.Ticket.Comment.Body, "From: Jeff Jefferson")
	assert.Contains(t, p.Ticket.Comment.Body, "Email: jeff@test.gov.uk")
	assert.Contains(t, p.Ticket.Comment.Body, "Hello There")
	assert.NotContains(t, p.Ticket.Comment.Body, "Organisation name:")
}

func TestSomethingWrongTicket(t *testing.T) {
	f := mustValid(t, forms.SomethingWrongWithService, url.Values{
		"person_name":       {"Jeff Jefferson"},
		"person_email":      {"jeff@test.gov.uk"},
		"organization_name": {"TestDept"},
		"severity":          {"service_down"},
		"message":           {"Hello There"},
	})
	p := New(f, 7)

	assert.Regexp(t, regexp.MustCompile(`\[PaaS Support\] .*something wrong in TestDept live service`), p.Ticket.Subject)
	assert.Contains(t, p.Ticket.Tags, "govuk_paas_support")
	assert.Contains(t, p.Ticket.Tags, "govuk_paas_product_page")
	assert.Contains(t, p.Ticket.Tags, "govuk_paas_live_service")
	assert.Contains(t, p.Ticket.Comment.Body, "Organisation name: TestDept")
	assert.Contains(t, p.Ticket.Comment.Body, "Severity: service_down")
	assert.Contains(t, p.Ticket.Comment.Body, "Hello There")
}

func TestHelpTicketOmitsEmptyOrganisation(t *testing.T) {
	f := mustValid(t, forms.HelpUsingPaas, url.Values{
		"person_name":  {"Jeff Jefferson"},
		"person_email": {"jeff@test.gov.uk"},
		"message":      {"Hello There"},
	})
	p := New(f, 7)

	assert.Contains(t, p.Ticket.Subject, "request for help")
	assert.NotContains(t, p.Ticket.Comment.Body, "Organisation name:")
	assert.NotContains(t, p.Ticket.Comment.Body, "Severity:")
}

func TestFindOutMoreTicketSubject(t *testing.T) {
	f := mustValid(t, forms.FindOutMore, url.Values{
		"person_name":  {"Jeff Jefferson"},
		"person_email": {"jeff@test.gov.uk"},
		"message":      {"Hello There"},
	})
	p := New(f, 7)

	assert.Contains(t, p.Ticket.Subject, "request for information")
	assert.Contains(t, p.Ticket.Tags, "govuk_paas_find_out_more")
}

func TestSignupTicketEnumeratesSurvivingInvites(t *testing.T) {
	values := url.Values{
		"person_name":                   {"Jeff Jefferson"},
		"person_email":                  {"jeff@test.gov.uk"},
		"organization_name":             {"TestDept"},
		"invites[0][person_email]":      {""},
		"invites[1][person_email]":      {"bob@example.gov.uk"},
		"invites[1][person_is_manager]": {"true"},
		"invites[2][person_email]":      {""},
	}
	f := mustValid(t, forms.Signup, values)
	p := New(f, 7)

	assert.Contains(t, p.Ticket.Subject, "signup")
	assert.Contains(t, p.Ticket.Comment.Body, "Invite 1: bob@example.gov.uk (org manager: true)")
	assert.NotContains(t, p.Ticket.Comment.Body, "Invite 2:")
}

func TestEveryKindCarriesBaseTagsAndOneKindTag(t *testing.T) {
	f := mustValid(t, forms.Contact, url.Values{
		"name":    {"Jeff"},
		"email":   {"jeff@test.gov.uk"},
		"message": {"hi"},
	})
	p := New(f, 7)
	require.Len(t, p.Ticket.Tags, 3)
	assert.Equal(t, "govuk_paas_product_page", p.Ticket.Tags[0])
	assert.Equal(t, "govuk_paas_support", p.Ticket.Tags[1])
}

func TestBuilderIsDeterministic(t *testing.T) {
	values := url.Values{
		"person_name":       {"Jeff Jefferson"},
		"person_email":      {"jeff@test.gov.uk"},
		"organization_name": {"TestDept"},
		"severity":          {"service_down"},
		"message":           {"Hello There"},
	}
	f := mustValid(t, forms.SomethingWrongWithService, values)

	first, err := json.Marshal(New(f, 7))
	require.NoError(t, err)
	second, err := json.Marshal(New(f, 7))
	require.NoError(t, err)
	assert.Equal(t, first, second, "same form and config must give byte-identical payloads")
}

func TestWireShape(t *testing.T) {
	f := mustValid(t, forms.Contact, url.Values{
		"name":    {"Jeff"},
		"email":   {"jeff@test.gov.uk"},
		"message": {"hi"},
	})
	raw, err := json.Marshal(New(f, 42))
	require.NoError(t, err)

	var decoded map[string]map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	tk, ok := decoded["ticket"]
	require.True(t, ok, "payload must be wrapped in a ticket key")
	assert.Contains(t, tk, "subject")
	assert.Contains(t, tk, "requester")
	assert.Contains(t, tk, "group_id")
	assert.Contains(t, tk, "tags")
	assert.Contains(t, tk, "comment")
}
