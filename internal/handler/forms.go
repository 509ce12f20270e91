package handler

import (
	"log"
	"net/http"

	"github.com/flosch/pongo2/v6"
	"github.com/gin-gonic/gin"

	"github.com/jonathanglassman/paas-product-page/internal/forms"
	"github.com/jonathanglassman/paas-product-page/internal/metrics"
	"github.com/jonathanglassman/paas-product-page/internal/render"
	"github.com/jonathanglassman/paas-product-page/internal/ticket"
	"github.com/jonathanglassman/paas-product-page/internal/zendesk"
)

// Fatal message shown when the helpdesk transport fails. The form is
// re-rendered with the submitted values so nothing is lost.
const fatalMessage = "We could not send your message. Please try again."

const (
	contactThanks = "We’ll contact you in the next working day"
	signupThanks  = "We’ll email you with your organisation account details in the next working day."
	supportThanks = "We try to reply to all queries by the end of the next working day."
)

type FormHandler struct {
	render  *render.Renderer
	tickets zendesk.TicketSender
	groupID int
}

func NewFormHandler(r *render.Renderer, tickets zendesk.TicketSender, groupID int) *FormHandler {
	return &FormHandler{render: r, tickets: tickets, groupID: groupID}
}

func (h *FormHandler) ContactShow(c *gin.Context) {
	h.render.HTML(c, http.StatusOK, "contact-us.html", pongo2.Context{
		"errors": map[string][]string{},
		"values": map[string]string{},
	})
}

func (h *FormHandler) ContactSubmit(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		c.String(http.StatusBadRequest, "bad request")
		return
	}
	form := forms.New(forms.Contact, c.Request.PostForm)
	h.submit(c, form, "contact-us.html", contactThanks, "")
}

func (h *FormHandler) SignupShow(c *gin.Context) {
	// Three blank invite rows; the submitter manages the org by default.
	h.render.HTML(c, http.StatusOK, "signup.html", pongo2.Context{
		"errors":      map[string][]string{},
		"values":      map[string]string{"person_is_manager": "true"},
		"invite_rows": 3,
	})
}

func (h *FormHandler) SignupSubmit(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		c.String(http.StatusBadRequest, "bad request")
		return
	}
	form := forms.New(forms.Signup, c.Request.PostForm)
	h.submit(c, form, "signup.html", signupThanks, "")
}

func (h *FormHandler) SupportShow(c *gin.Context) {
	h.render.HTML(c, http.StatusOK, "support.html", pongo2.Context{
		"errors":  map[string][]string{},
		"options": forms.SupportSegments(),
	})
}

// SupportChoose handles the /support selector: empty or unknown choices
// are rejected, known ones redirect to the variant form.
func (h *FormHandler) SupportChoose(c *gin.Context) {
	choice := c.PostForm("support_form")
	if choice == "" {
		h.render.HTML(c, http.StatusBadRequest, "support.html", pongo2.Context{
			"errors":  map[string][]string{"support_form": {"Please select an option"}},
			"options": forms.SupportSegments(),
		})
		return
	}
	if _, ok := forms.ResolveSupportVariant(choice); !ok {
		h.render.HTML(c, http.StatusBadRequest, "support.html", pongo2.Context{
			"errors":  map[string][]string{"support_form": {forms.MsgInvalidChoice}},
			"options": forms.SupportSegments(),
		})
		return
	}
	c.Redirect(http.StatusFound, "/support/"+choice)
}

func (h *FormHandler) SupportFormShow(c *gin.Context) {
	_, kind, tpl, ok := h.resolveSupport(c)
	if !ok {
		NotFound(h.render)(c)
		return
	}
	h.render.HTML(c, http.StatusOK, tpl, pongo2.Context{
		"errors":     map[string][]string{},
		"values":     map[string]string{},
		"severities": forms.SeverityChoices,
		"kind":       kind.String(),
	})
}

func (h *FormHandler) SupportFormSubmit(c *gin.Context) {
	segment, kind, tpl, ok := h.resolveSupport(c)
	if !ok {
		NotFound(h.render)(c)
		return
	}
	if err := c.Request.ParseForm(); err != nil {
		c.String(http.StatusBadRequest, "bad request")
		return
	}
	form := forms.New(kind, c.Request.PostForm)
	h.submit(c, form, tpl, supportThanks, "forms/"+segment+"_submitted.html")
}

// resolveSupport maps the wildcard path segment to a variant and its
// template. The segment character check runs inside the resolver,
// before any lookup; a known variant without a template is not-found
// as well.
func (h *FormHandler) resolveSupport(c *gin.Context) (segment string, kind forms.Kind, tpl string, ok bool) {
	segment = c.Param("name")
	if len(segment) > 0 && segment[0] == '/' {
		segment = segment[1:]
	}
	kind, ok = forms.ResolveSupportVariant(segment)
	if !ok {
		return segment, 0, "", false
	}
	tpl = "forms/" + segment + ".html"
	if !h.render.Exists(tpl) {
		return segment, 0, "", false
	}
	return segment, kind, tpl, true
}

// submit runs the shared tail of every POST flow: re-render with the
// error map on validation failure, build and send the ticket otherwise.
// submittedTpl, when present on disk, replaces the generic thanks page.
func (h *FormHandler) submit(c *gin.Context, form *forms.Form, formTpl, thanks, submittedTpl string) {
	kind := form.Kind().String()
	if !form.Valid() {
		metrics.FormRejections.WithLabelValues(kind).Inc()
		h.render.HTML(c, http.StatusBadRequest, formTpl, pongo2.Context{
			"errors":      form.Errors(),
			"values":      form.Values(),
			"invites":     form.Invites(),
			"severities":  forms.SeverityChoices,
			"invite_rows": 3,
		})
		return
	}

	payload := ticket.New(form, h.groupID)
	if err := h.tickets.CreateTicket(c.Request.Context(), payload); err != nil {
		log.Printf("handler: submit %s ticket (request %s): %v", kind, c.GetString("request_id"), err)
		metrics.SubmissionFailures.WithLabelValues(kind).Inc()
		h.render.HTML(c, http.StatusInternalServerError, formTpl, pongo2.Context{
			"errors":      map[string][]string{"fatal": {fatalMessage}},
			"values":      form.Values(),
			"invites":     form.Invites(),
			"severities":  forms.SeverityChoices,
			"invite_rows": 3,
		})
		return
	}

	metrics.TicketsSubmitted.WithLabelValues(kind).Inc()
	if submittedTpl != "" && h.render.Exists(submittedTpl) {
		h.render.HTML(c, http.StatusOK, submittedTpl, pongo2.Context{})
		return
	}
	h.render.HTML(c, http.StatusOK, "thanks.html", pongo2.Context{"msg": thanks})
}
