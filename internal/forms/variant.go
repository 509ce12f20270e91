package forms

import "regexp"

// Kind identifies one of the fixed form variants. The set is closed:
// adding a variant means adding a constant and its table rows here.
type Kind int

const (
	Contact Kind = iota
	Signup
	SomethingWrongWithService
	HelpUsingPaas
	FindOutMore
)

func (k Kind) String() string {
	switch k {
	case Contact:
		return "contact"
	case Signup:
		return "signup"
	case SomethingWrongWithService:
		return "something-wrong-with-service"
	case HelpUsingPaas:
		return "help-using-paas"
	case FindOutMore:
		return "find-out-more"
	}
	return "unknown"
}

// Schema returns the field declarations for the kind.
func (k Kind) Schema() *Schema {
	switch k {
	case Contact:
		return contactSchema
	case Signup:
		return signupSchema
	case SomethingWrongWithService:
		return somethingWrongSchema
	case HelpUsingPaas:
		return helpUsingSchema
	case FindOutMore:
		return findOutMoreSchema
	}
	return &Schema{}
}

// segmentPattern is the allow-list for /support/* path segments. It must
// pass before any table or template lookup derived from the segment.
var segmentPattern = regexp.MustCompile(`^[a-zA-Z0-9_/-]+$`)

var supportVariants = map[string]Kind{
	"something-wrong-with-service": SomethingWrongWithService,
	"help-using-paas":              HelpUsingPaas,
	"find-out-more":                FindOutMore,
}

// ResolveSupportVariant maps a raw path segment to a support variant.
// Segments with characters outside the allow-list are rejected before
// the table lookup; character-safe segments outside the table are
// rejected too.
func ResolveSupportVariant(segment string) (Kind, bool) {
	if !segmentPattern.MatchString(segment) {
		return 0, false
	}
	k, ok := supportVariants[segment]
	return k, ok
}

// SupportSegments lists the selector choices offered on /support, in
// display order.
func SupportSegments() []string {
	return []string{
		"something-wrong-with-service",
		"help-using-paas",
		"find-out-more",
	}
}
