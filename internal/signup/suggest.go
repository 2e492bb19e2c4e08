package signup

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// DefaultKnownDomains are the mail providers offered as suggestions.
var DefaultKnownDomains = []string{
	"gmail.com",
	"yahoo.com",
	"outlook.com",
	"hotmail.com",
	"icloud.com",
	"proton.me",
}

// SuggestEmailDomain returns a known domain the email's domain looks like a
// misspelling of, or "" when there is nothing to suggest. It is a hint only
// and never affects validation.
func SuggestEmailDomain(email string, known []string) string {
	at := strings.LastIndexByte(email, '@')
	if at < 0 || at == len(email)-1 {
		return ""
	}
	domain := strings.ToLower(email[at+1:])
	// Wait until the user has typed something that looks like a full domain.
	if !strings.Contains(domain, ".") || strings.HasSuffix(domain, ".") {
		return ""
	}

	for _, k := range known {
		if strings.EqualFold(k, domain) {
			return ""
		}
	}

	matches := fuzzy.Find(domain, known)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Str
}
