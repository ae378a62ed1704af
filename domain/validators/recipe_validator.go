// Package validators checks recipe payloads before they are sent to the
// backend, so a form submission fails fast on obviously broken input.
package validators

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"recipeclient/domain"
	domainconfig "recipeclient/domain/config"
	pkgerrors "recipeclient/pkg/errors"
)

// RecipeValidator validates recipe payloads using struct tags plus the
// content limits the tags cannot express.
type RecipeValidator struct {
	validate *validator.Validate
	limits   domainconfig.Limits
}

// NewRecipeValidator creates a validator with the default content limits.
func NewRecipeValidator() *RecipeValidator {
	return &RecipeValidator{
		validate: validator.New(),
		limits:   domainconfig.DefaultLimits(),
	}
}

// ValidatePayload checks a create/update payload. The returned error is a
// validation ClientError whose message lists every failed field.
func (v *RecipeValidator) ValidatePayload(r domain.RecipeRecord) error {
	if err := v.validate.Struct(r); err != nil {
		return pkgerrors.NewValidationError(formatValidationError(err))
	}
	if msgs := v.checkLimits(r); len(msgs) > 0 {
		return pkgerrors.NewValidationError(strings.Join(msgs, "; "))
	}
	return nil
}

func (v *RecipeValidator) checkLimits(r domain.RecipeRecord) []string {
	var msgs []string
	if len(r.Title) > v.limits.MaxTitleLength {
		msgs = append(msgs, fmt.Sprintf("title must be at most %d characters", v.limits.MaxTitleLength))
	}
	if len(r.Description) > v.limits.MaxDescriptionLength {
		msgs = append(msgs, fmt.Sprintf("description must be at most %d characters", v.limits.MaxDescriptionLength))
	}
	if len(r.Ingredients) > v.limits.MaxIngredients {
		msgs = append(msgs, fmt.Sprintf("at most %d ingredients are allowed", v.limits.MaxIngredients))
	}
	if r.Servings > v.limits.MaxServings {
		msgs = append(msgs, fmt.Sprintf("servings must be at most %d", v.limits.MaxServings))
	}
	if r.PrepMinutes > v.limits.MaxPrepMinutes {
		msgs = append(msgs, fmt.Sprintf("prep time must be at most %d minutes", v.limits.MaxPrepMinutes))
	}
	return msgs
}

func formatValidationError(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	msgs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		msgs = append(msgs, formatFieldError(e))
	}
	return strings.Join(msgs, "; ")
}

func formatFieldError(e validator.FieldError) string {
	field := strings.ToLower(e.Field())
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, e.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
