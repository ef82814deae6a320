// Package contact normalizes free-form phone numbers and builds WhatsApp
// deep links with a templated, percent-encoded message.
package contact

import (
	"net/url"
	"regexp"
	"strings"
)

// DefaultCountryCode is the Saudi calling code used when a number arrives
// without one.
const DefaultCountryCode = "966"

// DefaultTemplate is the message used when the caller supplies none.
// Available placeholders: {title}, {district}, {price}, {period}, {url}.
const DefaultTemplate = "Hello, I'm interested in this apartment: {title} in {district}. " +
	"Price: {price} {period}. Link: {url}"

var nonDigits = regexp.MustCompile(`\D+`)

// NormalizePhone reduces a free-form phone string to a canonical digit
// string with the country calling code prefixed. Returns false when the
// input yields no digits; callers must then suppress the contact action.
func NormalizePhone(raw, countryCode string) (string, bool) {
	digits := nonDigits.ReplaceAllString(raw, "")
	if digits == "" {
		return "", false
	}

	// Local format, e.g. 05xxxxxxxx: swap the leading zero(s) for the
	// country code.
	if strings.HasPrefix(digits, "0") && len(digits) >= 9 {
		digits = countryCode + strings.TrimLeft(digits, "0")
	}

	// Bare subscriber number (9 digits, or 10 with a stray leading digit):
	// prepend the country code, keeping the last 9 digits.
	if (len(digits) == 9 || len(digits) == 10) && !strings.HasPrefix(digits, countryCode) {
		digits = countryCode + digits[len(digits)-9:]
	}

	return digits, true
}

// Message holds the placeholder values substituted into the template.
type Message struct {
	Title    string
	District string
	Price    string
	Period   string
	URL      string
}

// Render substitutes the named placeholders into the template.
func (m Message) Render(template string) string {
	if template == "" {
		template = DefaultTemplate
	}
	return strings.NewReplacer(
		"{title}", m.Title,
		"{district}", m.District,
		"{price}", m.Price,
		"{period}", m.Period,
		"{url}", m.URL,
	).Replace(template)
}

// Link composes the wa.me deep link for a normalized phone and a rendered
// message. The message is percent-encoded with spaces as '+'.
func Link(phone, message string) string {
	return "https://wa.me/" + phone + "?text=" + url.QueryEscape(message)
}

// Builder bundles the contact defaults so callers only pass per-listing data.
type Builder struct {
	CountryCode string
	Template    string
}

// BuildLink normalizes the phone and renders the deep link in one step.
// Returns false when the phone cannot be normalized.
func (b Builder) BuildLink(rawPhone string, m Message) (string, bool) {
	cc := b.CountryCode
	if cc == "" {
		cc = DefaultCountryCode
	}
	phone, ok := NormalizePhone(rawPhone, cc)
	if !ok {
		return "", false
	}
	return Link(phone, m.Render(b.Template)), true
}
