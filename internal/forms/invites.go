package forms

import (
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Raw invite rows arrive as invites[<token>][<field>] keys, where the
// token is whatever index the browser submitted.
var inviteKeyPattern = regexp.MustCompile(`^invites\[([^\]]*)\]\[([a-zA-Z_]+)\]$`)

type inviteInput struct {
	token  string
	fields map[string]string
}

// parseInvites groups the invites[...] keys of a submission into ordered
// rows. Numeric tokens sort numerically, anything else lexicographically
// after them, so browser submission order is preserved for the usual
// 0,1,2,… indexing.
func parseInvites(values url.Values) []inviteInput {
	byToken := make(map[string]map[string]string)
	for key, vals := range values {
		m := inviteKeyPattern.FindStringSubmatch(key)
		if m == nil || len(vals) == 0 {
			continue
		}
		token, field := m[1], m[2]
		if byToken[token] == nil {
			byToken[token] = make(map[string]string)
		}
		byToken[token][field] = vals[0]
	}

	tokens := make([]string, 0, len(byToken))
	for t := range byToken {
		tokens = append(tokens, t)
	}
	sort.Slice(tokens, func(i, j int) bool {
		a, aerr := strconv.Atoi(tokens[i])
		b, berr := strconv.Atoi(tokens[j])
		switch {
		case aerr == nil && berr == nil:
			return a < b
		case aerr == nil:
			return true
		case berr == nil:
			return false
		}
		return tokens[i] < tokens[j]
	})

	rows := make([]inviteInput, 0, len(tokens))
	for _, t := range tokens {
		rows = append(rows, inviteInput{token: t, fields: byToken[t]})
	}
	return rows
}

// dropBlank removes rows whose person_email is empty after trimming.
// A blank row is untouched scaffolding, not something to complain about.
func dropBlank(rows []inviteInput) []inviteInput {
	kept := rows[:0:0]
	for _, r := range rows {
		if strings.TrimSpace(r.fields["person_email"]) != "" {
			kept = append(kept, r)
		}
	}
	return kept
}

func truthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "1", "on", "yes":
		return true
	}
	return false
}
