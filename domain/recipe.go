// Package domain holds the data model shared by the stores and the
// backend endpoint bindings.
package domain

// Nutrition carries the optional macro breakdown of a recipe. All fields
// are pointers: the backend distinguishes "not provided" from zero.
type Nutrition struct {
	CaloriesKcal *float64 `json:"caloriesKcal,omitempty"`
	ProteinG     *float64 `json:"proteinG,omitempty"`
	FatG         *float64 `json:"fatG,omitempty"`
	CarbsG       *float64 `json:"carbsG,omitempty"`
}

// Ingredient is one entry of a recipe's ordered ingredient list.
type Ingredient struct {
	ID     int64  `json:"id,omitempty"`
	Name   string `json:"name" validate:"required"`
	Amount string `json:"amount,omitempty"`
	Unit   string `json:"unit,omitempty"`
}

// RecipeRecord mirrors the backend's recipe resource. ID is assigned by
// the server and is zero on an unsaved record.
type RecipeRecord struct {
	ID           int64        `json:"id,omitempty"`
	Title        string       `json:"title" validate:"required"`
	Description  string       `json:"description" validate:"required"`
	Instructions string       `json:"instructions,omitempty"`
	Category     string       `json:"category,omitempty"`
	ImageURL     string       `json:"imageUrl,omitempty"`
	ImageBase64  string       `json:"imageBase64,omitempty"`
	PrepMinutes  int          `json:"prepMinutes,omitempty" validate:"gte=0"`
	Servings     int          `json:"servings,omitempty" validate:"gte=0"`
	Nutrition    *Nutrition   `json:"nutrition,omitempty"`
	Ingredients  []Ingredient `json:"ingredients,omitempty" validate:"dive"`
	CreatedAt    string       `json:"createdAt,omitempty"`
	UpdatedAt    string       `json:"updatedAt,omitempty"`
}

// Saved reports whether the record has a server-assigned identity.
func (r RecipeRecord) Saved() bool {
	return r.ID != 0
}

// RecipeQuery is the filter applied to a recipe listing.
type RecipeQuery struct {
	Search   string
	Category string
}

// IsZero reports whether the query carries no filter at all.
func (q RecipeQuery) IsZero() bool {
	return q.Search == "" && q.Category == ""
}
