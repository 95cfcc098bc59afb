package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Messages maps "<json field>.<tag>" to the client-facing text for that
// violation.
type Messages map[string]string

// FirstMessage returns the text for the first violation in err. Fields are
// checked in declaration order and each field stops at its first failing
// tag, so this is the fail-fast result.
func FirstMessage(err error, messages Messages) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}

	first := verrs[0]
	if msg, ok := messages[first.Field()+"."+first.Tag()]; ok {
		return msg
	}
	return fmt.Sprintf("%s is invalid", first.Field())
}

// JSONFieldName reports struct fields by their json name.
func JSONFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}
