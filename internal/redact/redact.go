// Package redact removes sensitive information from strings before they are
// logged or returned in error responses. Besides credentials, connection
// strings, and file paths it masks the customer data the services handle:
// email addresses, mobile numbers, and account or card numbers.
package redact

import (
	"regexp"
	"strings"
)

// Placeholders substituted for redacted fragments.
const (
	RedactionPlaceholder          = "[REDACTED]"
	RedactedPathPlaceholder       = "[REDACTED_PATH]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
	RedactedEmailPlaceholder      = "[REDACTED_EMAIL]"
)

// rule replaces every match of pattern, either with a fixed placeholder or
// with the result of mask.
type rule struct {
	pattern     *regexp.Regexp
	placeholder string
	mask        func(string) string
}

// Rules run in order; earlier rules see the raw input.
var rules = []rule{
	{
		pattern:     regexp.MustCompile(`(?i)(postgres|postgresql|mysql|db|database|connection)://[^@\s]+@`),
		placeholder: RedactedCredentialPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`(?i)(password|passwd|pwd)([=:\s]?['"]?)[^'"&\s]{3,}`),
		placeholder: RedactedCredentialPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`),
		placeholder: "[REDACTED_JWT]",
	},
	{
		pattern:     regexp.MustCompile(`(?i)(api[_-]?key|token|secret|bearer)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`),
		placeholder: RedactedKeyPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`(?:goroutine \d+|panic:)[\s\S]*?(\n\t.*)+`),
		placeholder: "[STACK_TRACE_REDACTED]",
	},
	{
		pattern:     regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
		placeholder: RedactedEmailPlaceholder,
	},
	{
		pattern: regexp.MustCompile(
			`(?i)\b(SELECT|INSERT|UPDATE|DELETE)\b[\s\w,*()$.]+\b(FROM|INTO|SET)\b[^;]*`,
		),
		placeholder: "[REDACTED_SQL]",
	},
	{
		pattern:     regexp.MustCompile(`(/[\w.-]+){2,}`),
		placeholder: RedactedPathPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`[A-Za-z]:\\[^\\\s]+(\\[^\\\s]+)+`),
		placeholder: RedactedPathPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`\b(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}:\d{1,5}\b`),
		placeholder: "[REDACTED_HOST]",
	},
	{
		// Mobile, account, and card numbers.
		pattern: regexp.MustCompile(`\b\d{10,19}\b`),
		mask:    Digits,
	},
}

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		if r.mask != nil {
			result = r.pattern.ReplaceAllStringFunc(result, r.mask)
			continue
		}
		result = r.pattern.ReplaceAllString(result, r.placeholder)
	}

	return result
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}

// Digits masks all but the last four characters of a numeric identifier,
// e.g. "1112223333" becomes "******3333". Inputs of four characters or
// fewer are fully masked.
func Digits(s string) string {
	if len(s) <= 4 {
		return strings.Repeat("*", len(s))
	}
	return strings.Repeat("*", len(s)-4) + s[len(s)-4:]
}

// Mobile masks a mobile number for logging.
func Mobile(mobileNumber string) string {
	return Digits(mobileNumber)
}

// Email keeps the first character of the local part and the domain,
// e.g. "jane@x.io" becomes "j***@x.io".
func Email(email string) string {
	at := strings.LastIndex(email, "@")
	if at <= 0 {
		return RedactedEmailPlaceholder
	}
	return email[:1] + "***" + email[at:]
}
