package forms

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validContactValues() url.Values {
	return url.Values{
		"name":    {"Jeff Jefferson"},
		"email":   {"jeff@test.gov.uk"},
		"message": {"Hello There"},
	}
}

func TestContactValid(t *testing.T) {
	f := New(Contact, validContactValues())
	require.True(t, f.Valid())
	require.Empty(t, f.Errors())
	assert.Equal(t, "Jeff Jefferson", f.Value("name"))
}

func TestContactRequiredFields(t *testing.T) {
	for _, field := range []string{"name", "email", "message"} {
		t.Run(field, func(t *testing.T) {
			values := validContactValues()
			values.Set(field, "   ")
			f := New(Contact, values)
			require.False(t, f.Valid())
			require.Contains(t, f.Errors(), field)
			assert.Equal(t, []string{MsgRequired}, f.Errors()[field])

			// Only the blanked field is reported.
			assert.Len(t, f.Errors(), 1)
		})
	}
}

func TestValidationIsTotal(t *testing.T) {
	f := New(Contact, url.Values{})
	require.False(t, f.Valid())
	assert.Len(t, f.Errors(), 3, "all failing fields reported at once")
}

func TestSupplyingFieldRemovesOnlyItsError(t *testing.T) {
	f := New(Contact, url.Values{"name": {"Jeff"}})
	require.False(t, f.Valid())
	assert.NotContains(t, f.Errors(), "name")
	assert.Contains(t, f.Errors(), "email")
	assert.Contains(t, f.Errors(), "message")
}

func TestEmailShape(t *testing.T) {
	tests := []struct {
		email string
		ok    bool
	}{
		{"jeff@test.gov.uk", true},
		{"a@b.co", true},
		{"first.last@sub.domain.example", true},
		{"not-an-email", false},
		{"missing@dot", false},
		{"two@@signs.example", false},
		{"spaces in@local.example", false},
		{"@no-local.example", false},
	}
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			values := validContactValues()
			values.Set("email", tt.email)
			f := New(Contact, values)
			if tt.ok {
				assert.True(t, f.Valid(), "expected %q to be accepted", tt.email)
			} else {
				require.Contains(t, f.Errors(), "email")
				assert.Equal(t, []string{MsgInvalidEmail}, f.Errors()["email"])
			}
		})
	}
}

func validSupportValues() url.Values {
	return url.Values{
		"person_name":       {"Jeff Jefferson"},
		"person_email":      {"jeff@test.gov.uk"},
		"organization_name": {"TestDept"},
		"severity":          {"service_down"},
		"message":           {"Hello There"},
	}
}

func TestSomethingWrongRequiresSeverity(t *testing.T) {
	values := validSupportValues()
	values.Del("severity")
	f := New(SomethingWrongWithService, values)
	require.False(t, f.Valid())
	assert.Equal(t, []string{MsgRequired}, f.Errors()["severity"])
}

func TestSeverityMustBeAListedChoice(t *testing.T) {
	values := validSupportValues()
	values.Set("severity", "pretty_bad")
	f := New(SomethingWrongWithService, values)
	require.False(t, f.Valid())
	assert.Equal(t, []string{MsgInvalidChoice}, f.Errors()["severity"])
}

func TestSomethingWrongRequiresOrganisation(t *testing.T) {
	values := validSupportValues()
	values.Del("organization_name")
	f := New(SomethingWrongWithService, values)
	require.False(t, f.Valid())
	assert.Contains(t, f.Errors(), "organization_name")
}

func TestOrganisationOptionalForOtherSupportForms(t *testing.T) {
	for _, kind := range []Kind{HelpUsingPaas, FindOutMore} {
		t.Run(kind.String(), func(t *testing.T) {
			values := validSupportValues()
			values.Del("organization_name")
			values.Del("severity")
			f := New(kind, values)
			assert.True(t, f.Valid(), "errors: %v", f.Errors())
		})
	}
}

func TestUndeclaredKeysAreDropped(t *testing.T) {
	values := validSupportValues()
	values.Set("step", "2")
	f := New(SomethingWrongWithService, values)
	require.True(t, f.Valid())
	assert.Equal(t, "", f.Value("step"))
	assert.NotContains(t, f.Values(), "step")
}

func TestSignupValid(t *testing.T) {
	f := New(Signup, url.Values{
		"person_name":       {"Jeff Jefferson"},
		"person_email":      {"jeff@test.gov.uk"},
		"organization_name": {"TestDept"},
		"person_is_manager": {"true"},
	})
	require.True(t, f.Valid(), "errors: %v", f.Errors())
	assert.Empty(t, f.Invites())
}
