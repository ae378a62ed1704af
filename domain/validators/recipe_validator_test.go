package validators

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipeclient/domain"
	pkgerrors "recipeclient/pkg/errors"
)

func validPayload() domain.RecipeRecord {
	return domain.RecipeRecord{
		Title:       "Minestrone",
		Description: "Hearty vegetable soup",
		Category:    "Soup",
		Servings:    4,
		Ingredients: []domain.Ingredient{{Name: "Carrot", Amount: "2"}},
	}
}

func TestValidPayloadPasses(t *testing.T) {
	v := NewRecipeValidator()
	assert.NoError(t, v.ValidatePayload(validPayload()))
}

func TestMissingRequiredFieldsAreListed(t *testing.T) {
	v := NewRecipeValidator()
	err := v.ValidatePayload(domain.RecipeRecord{})
	require.Error(t, err)

	var clientErr *pkgerrors.ClientError
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, pkgerrors.ErrorTypeValidation, clientErr.Type)
	assert.Contains(t, clientErr.Message, "title is required")
	assert.Contains(t, clientErr.Message, "description is required")
}

func TestOverlongTitleRejected(t *testing.T) {
	v := NewRecipeValidator()
	payload := validPayload()
	payload.Title = strings.Repeat("x", 201)

	err := v.ValidatePayload(payload)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title must be at most 200 characters")
}

func TestExcessiveServingsRejected(t *testing.T) {
	v := NewRecipeValidator()
	payload := validPayload()
	payload.Servings = 500

	err := v.ValidatePayload(payload)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "servings must be at most 100")
}

func TestUnnamedIngredientRejected(t *testing.T) {
	v := NewRecipeValidator()
	payload := validPayload()
	payload.Ingredients = append(payload.Ingredients, domain.Ingredient{Amount: "1"})

	err := v.ValidatePayload(payload)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")
}
