package validator

import (
	"fmt"
	"net/mail"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/ferdian3456/postapi/internal/util"
)

type ruleKind int

const (
	ruleCheck ruleKind = iota
	ruleRequired
	ruleNullable
)

// Rule is a single constraint. A check returns the failure message, or ""
// when the value passes.
type Rule struct {
	kind  ruleKind
	check func(field string, v value) string
}

func hasRule(rules []Rule, kind ruleKind) bool {
	for _, rule := range rules {
		if rule.kind == kind {
			return true
		}
	}

	return false
}

var (
	// Required rejects absent, null and empty values.
	Required = Rule{kind: ruleRequired}

	// Nullable lets a present but empty value through without running the other rules.
	Nullable = Rule{kind: ruleNullable}

	String = Rule{check: func(field string, v value) string {
		if _, ok := v.raw.(string); !ok || v.file != nil {
			return fmt.Sprintf("The %s field must be a string.", field)
		}
		return ""
	}}

	Email = Rule{check: func(field string, v value) string {
		text, _ := v.raw.(string)
		address, err := mail.ParseAddress(text)
		if err != nil || address.Address != text || !strings.Contains(text, "@") {
			return fmt.Sprintf("The %s field must be a valid email address.", field)
		}
		return ""
	}}

	Image = Rule{check: func(field string, v value) string {
		_, err := v.detectImage()
		if err != nil {
			return fmt.Sprintf("The %s field must be an image.", field)
		}
		return ""
	}}
)

// Max bounds strings by rune count and files by size in kilobytes.
func Max(limit int) Rule {
	return Rule{check: func(field string, v value) string {
		if v.file != nil {
			if v.file.Size > int64(limit)*1024 {
				return fmt.Sprintf("The %s field must not be greater than %d kilobytes.", field, limit)
			}
			return ""
		}

		if text, ok := v.raw.(string); ok && utf8.RuneCountInString(text) > limit {
			return fmt.Sprintf("The %s field must not be greater than %d characters.", field, limit)
		}
		return ""
	}}
}

func Min(limit int) Rule {
	return Rule{check: func(field string, v value) string {
		if text, ok := v.raw.(string); ok && utf8.RuneCountInString(text) < limit {
			return fmt.Sprintf("The %s field must be at least %d characters.", field, limit)
		}
		return ""
	}}
}

// Mimes matches the extension implied by the detected content type.
func Mimes(extensions ...string) Rule {
	return Rule{check: func(field string, v value) string {
		message := fmt.Sprintf("The %s field must be a file of type: %s.", field, strings.Join(extensions, ", "))

		info, err := v.detectImage()
		if err != nil {
			return message
		}

		for _, extension := range util.ImageExtensions[info.ContentType] {
			if slices.Contains(extensions, extension) {
				return ""
			}
		}
		return message
	}}
}
