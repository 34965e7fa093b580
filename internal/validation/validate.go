package validation

import (
	"html"
	"regexp"
	"strings"
	"unicode"

	"github.com/ruangpeduli/donation-backend/internal/domain"
)

const (
	// Amounts are in rupiah. The gateway rejects sub-Rp10.000 charges
	// and anything above Rp1.000.000.000 is assumed to be a typo.
	MinDonationAmount = 10_000
	MaxDonationAmount = 1_000_000_000

	maxEmailLen   = 254
	maxShortText  = 255
	maxMessageLen = 5000
)

var (
	emailRe = regexp.MustCompile(`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)+$`)

	// Indonesian mobile numbers: national form 08xx... or country-code
	// form (+)628xx..., the digit after the 08/628 prefix is never 0.
	phoneNationalRe = regexp.MustCompile(`^08[1-9][0-9]{7,10}$`)
	phoneIntlRe     = regexp.MustCompile(`^\+?628[1-9][0-9]{7,10}$`)

	htmlTagRe = regexp.MustCompile(`<[^>]*>`)
)

// ValidateEmail checks address grammar and the RFC length cap.
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return domain.ValidationError{Field: "email", Msg: "email is required"}
	}
	if len(email) > maxEmailLen {
		return domain.ValidationError{Field: "email", Msg: "email is too long"}
	}
	if !emailRe.MatchString(email) {
		return domain.ValidationError{Field: "email", Msg: "invalid email address"}
	}
	return nil
}

// ValidatePhone accepts Indonesian mobile numbers in national or
// country-code form. Empty input is allowed; phone is optional.
func ValidatePhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil
	}
	if phoneNationalRe.MatchString(phone) || phoneIntlRe.MatchString(phone) {
		return nil
	}
	return domain.ValidationError{Field: "phone", Msg: "invalid phone number"}
}

// ValidateAmount enforces the inclusive donation range in rupiah.
func ValidateAmount(amount int64) error {
	if amount < MinDonationAmount || amount > MaxDonationAmount {
		return domain.ValidationError{Field: "amount", Msg: "amount must be between 10000 and 1000000000"}
	}
	return nil
}

// ValidateName requires a non-empty name after trimming.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return domain.ValidationError{Field: "name", Msg: "name is required"}
	}
	return nil
}

// SanitizeText strips control characters, caps the input at 255
// characters and then escapes HTML. The cap runs before escaping so a
// trailing entity is never cut in half. Used for names and other short
// fields.
func SanitizeText(s string) string {
	s = stripControl(s)
	s = truncate(strings.TrimSpace(s), maxShortText)
	return html.EscapeString(s)
}

// SanitizeMessage removes tags and allows the longer free-text cap,
// again applied before escaping.
func SanitizeMessage(s string) string {
	s = stripControl(s)
	s = htmlTagRe.ReplaceAllString(s, "")
	s = truncate(strings.TrimSpace(s), maxMessageLen)
	return html.EscapeString(s)
}

func stripControl(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\t' {
			return -1
		}
		return r
	}, s)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	// cut on a rune boundary
	runes := []rune(s)
	if len(runes) > max {
		runes = runes[:max]
	}
	out := string(runes)
	for len(out) > max {
		runes = runes[:len(runes)-1]
		out = string(runes)
	}
	return out
}
