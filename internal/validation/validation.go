// Package validation holds the pure guard predicates shared by the author
// and blog handlers, and registers them as validator struct tags.
package validation

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/oklog/ulid/v2"
	"golang.org/x/text/unicode/norm"
)

var (
	emailPattern = regexp.MustCompile(`^\w+([\.-]?\w+)*@\w+([\.-]?\w+)*(\.\w{2,3})+$`)

	titles = []string{"Mr", "Mrs", "Miss"}
)

// Titles returns the accepted honorifics.
func Titles() []string {
	out := make([]string, len(titles))
	copy(out, titles)
	return out
}

// IsNonEmptyString reports whether v is a string with content after trimming.
func IsNonEmptyString(v interface{}) bool {
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s) != ""
	case *string:
		return s != nil && strings.TrimSpace(*s) != ""
	default:
		return false
	}
}

func IsValidTitle(t string) bool {
	for _, title := range titles {
		if t == title {
			return true
		}
	}
	return false
}

func IsValidEmail(e string) bool {
	return emailPattern.MatchString(e)
}

// IsValidIdentifier reports whether id is a canonical ULID.
func IsValidIdentifier(id string) bool {
	_, err := ulid.ParseStrict(id)
	return err == nil
}

// HasAnyField reports whether body is a JSON object with at least one key.
func HasAnyField(body []byte) bool {
	if len(body) == 0 {
		return false
	}
	var fields map[string]jsoniter.RawMessage
	if err := jsoniter.Unmarshal(body, &fields); err != nil {
		return false
	}
	return len(fields) > 0
}

// IsJSONObject reports whether body decodes as a JSON object, empty or not.
func IsJSONObject(body []byte) bool {
	var fields map[string]jsoniter.RawMessage
	return jsoniter.Unmarshal(body, &fields) == nil && fields != nil
}

// NormalizeStringSet trims values to NFC, drops blanks and duplicates, and
// keeps first-seen order.
func NormalizeStringSet(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = norm.NFC.String(strings.TrimSpace(v))
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// SplitList turns "a, b,,a" into [a b].
func SplitList(raw string) []string {
	return NormalizeStringSet(strings.Split(raw, ","))
}

// RegisterTags exposes the predicates as struct tags: nonempty, honorific,
// blogemail and identifier.
func RegisterTags(v *validator.Validate) error {
	tags := map[string]validator.Func{
		"nonempty": func(fl validator.FieldLevel) bool {
			return IsNonEmptyString(fl.Field().String())
		},
		"honorific": func(fl validator.FieldLevel) bool {
			return IsValidTitle(fl.Field().String())
		},
		"blogemail": func(fl validator.FieldLevel) bool {
			return IsValidEmail(fl.Field().String())
		},
		"identifier": func(fl validator.FieldLevel) bool {
			return IsValidIdentifier(fl.Field().String())
		},
	}

	for tag, fn := range tags {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}
