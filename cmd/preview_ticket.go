package cmd

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathanglassman/paas-product-page/internal/config"
	"github.com/jonathanglassman/paas-product-page/internal/forms"
	"github.com/jonathanglassman/paas-product-page/internal/ticket"
)

// preview-ticket builds a ticket payload from flag-supplied values and
// prints the exact wire JSON, without sending anything. Useful for
// checking subjects, tags and body assembly against the helpdesk.
var previewTicketCmd = &cobra.Command{
	Use:   "preview-ticket",
	Short: "Validate flag-supplied form values and print the resulting ticket JSON",
	RunE:  runPreviewTicket,
}

var previewFlags struct {
	form         string
	name         string
	email        string
	organisation string
	severity     string
	message      string
	invites      []string
}

func init() {
	f := previewTicketCmd.Flags()
	f.StringVar(&previewFlags.form, "form", "contact", "form kind: contact, signup, or a support segment")
	f.StringVar(&previewFlags.name, "name", "", "requester name")
	f.StringVar(&previewFlags.email, "email", "", "requester email")
	f.StringVar(&previewFlags.organisation, "organisation", "", "organisation name")
	f.StringVar(&previewFlags.severity, "severity", "", "severity (something-wrong-with-service only)")
	f.StringVar(&previewFlags.message, "message", "", "message text")
	f.StringSliceVar(&previewFlags.invites, "invite", nil, "invite email (signup only, repeatable)")
	rootCmd.AddCommand(previewTicketCmd)
}

func previewKind(name string) (forms.Kind, bool) {
	switch name {
	case "contact":
		return forms.Contact, true
	case "signup":
		return forms.Signup, true
	}
	return forms.ResolveSupportVariant(name)
}

func runPreviewTicket(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	kind, ok := previewKind(previewFlags.form)
	if !ok {
		return fmt.Errorf("unknown form kind %q", previewFlags.form)
	}

	values := url.Values{}
	switch kind {
	case forms.Contact:
		values.Set("name", previewFlags.name)
		values.Set("email", previewFlags.email)
	default:
		values.Set("person_name", previewFlags.name)
		values.Set("person_email", previewFlags.email)
	}
	values.Set("organization_name", previewFlags.organisation)
	values.Set("severity", previewFlags.severity)
	values.Set("message", previewFlags.message)
	for i, email := range previewFlags.invites {
		values.Set(fmt.Sprintf("invites[%d][person_email]", i), email)
	}

	form := forms.New(kind, values)
	if !form.Valid() {
		fmt.Fprintln(os.Stderr, "form is not valid:")
		for field, msgs := range form.Errors() {
			for _, msg := range msgs {
				fmt.Fprintf(os.Stderr, "  %s: %s\n", field, msg)
			}
		}
		return fmt.Errorf("%d field(s) failed validation", len(form.Errors()))
	}

	payload := ticket.New(form, cfg.Zendesk.GroupID)
	out, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal ticket: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
