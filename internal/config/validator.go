package config

import (
	"BlogPlatform/internal/validation"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

func NewValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(validation.JSONFieldName)

	if err := validation.RegisterTags(validate); err != nil {
		logrus.Fatalf("failed to register validation tags: %v", err)
	}

	return validate
}
