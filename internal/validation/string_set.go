package validation

import (
	"errors"

	jsoniter "github.com/json-iterator/go"
)

var ErrInvalidStringSet = errors.New("expected a string or an array of strings")

// StringSet decodes either "a" or ["a", "b"] into a normalized ordered set.
// A nil StringSet means the field was absent from the payload.
type StringSet []string

func (s *StringSet) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = nil
		return nil
	}

	var single string
	if err := jsoniter.Unmarshal(data, &single); err == nil {
		*s = StringSet(NormalizeStringSet([]string{single}))
		return nil
	}

	var many []string
	if err := jsoniter.Unmarshal(data, &many); err != nil {
		return ErrInvalidStringSet
	}
	set := NormalizeStringSet(many)
	*s = StringSet(set)
	return nil
}

func (s StringSet) Slice() []string {
	if s == nil {
		return nil
	}
	return []string(s)
}
