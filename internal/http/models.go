package http

import (
	"time"

	"github.com/Flarenzy/coffee-shop-api/internal/auth"
	"github.com/Flarenzy/coffee-shop-api/internal/domain"
)

// IngredientShort is the public view of an ingredient: no names.
type IngredientShort struct {
	Color string `json:"color" example:"brown"`
	Parts int    `json:"parts" example:"1"`
}

// IngredientLong exposes every ingredient field.
type IngredientLong struct {
	Name  string `json:"name" example:"espresso"`
	Color string `json:"color" example:"brown"`
	Parts int    `json:"parts" example:"1"`
}

type DrinkShort struct {
	ID     int64             `json:"id" example:"1"`
	Title  string            `json:"title" example:"Latte"`
	Recipe []IngredientShort `json:"recipe"`
}

type DrinkLong struct {
	ID        int64            `json:"id" example:"1"`
	Title     string           `json:"title" example:"Latte"`
	Recipe    []IngredientLong `json:"recipe"`
	CreatedAt time.Time        `json:"created_at" example:"2024-05-10T15:04:05Z"`
	UpdatedAt time.Time        `json:"updated_at" example:"2024-05-10T15:04:05Z"`
}

type ShortDrinksResponse struct {
	Success bool         `json:"success" example:"true"`
	Drinks  []DrinkShort `json:"drinks"`
}

type LongDrinksResponse struct {
	Success bool        `json:"success" example:"true"`
	Drinks  []DrinkLong `json:"drinks"`
}

type DeleteDrinkResponse struct {
	Success bool  `json:"success" example:"true"`
	Delete  int64 `json:"delete" example:"1"`
}

// MeResponse describes the authenticated caller.
type MeResponse struct {
	Success     bool     `json:"success" example:"true"`
	Subject     string   `json:"subject" example:"auth0|5f7c8ec7c33c6c004bbafe82"`
	Permissions []string `json:"permissions"`
	Scope       string   `json:"scope,omitempty" example:"openid profile"`
}

// IngredientRequest is one recipe line in a create or update payload.
type IngredientRequest struct {
	Name  string `json:"name" example:"espresso"`
	Color string `json:"color" example:"brown"`
	Parts int    `json:"parts" example:"1"`
}

// CreateDrinkRequest is the payload accepted when creating a drink.
type CreateDrinkRequest struct {
	Title  string              `json:"title" example:"Latte"`
	Recipe []IngredientRequest `json:"recipe"`
}

// UpdateDrinkRequest changes only the fields that are present.
type UpdateDrinkRequest struct {
	Title  *string             `json:"title,omitempty" example:"Flat white"`
	Recipe []IngredientRequest `json:"recipe,omitempty"`
}

// ErrorResponse is the envelope for every failed request.
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   int    `json:"error" example:"401"`
	Code    string `json:"code,omitempty" example:"TOKEN_EXPIRED"`
	Message string `json:"message" example:"Token expired."`
}

func drinkToShort(d domain.Drink) DrinkShort {
	recipe := make([]IngredientShort, 0, len(d.Recipe))
	for _, i := range d.Recipe {
		recipe = append(recipe, IngredientShort{Color: i.Color, Parts: i.Parts})
	}
	return DrinkShort{
		ID:     d.ID,
		Title:  d.Title,
		Recipe: recipe,
	}
}

func drinkToLong(d domain.Drink) DrinkLong {
	recipe := make([]IngredientLong, 0, len(d.Recipe))
	for _, i := range d.Recipe {
		recipe = append(recipe, IngredientLong{Name: i.Name, Color: i.Color, Parts: i.Parts})
	}
	return DrinkLong{
		ID:        d.ID,
		Title:     d.Title,
		Recipe:    recipe,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func drinksToShort(drinks []domain.Drink) []DrinkShort {
	out := make([]DrinkShort, 0, len(drinks))
	for _, d := range drinks {
		out = append(out, drinkToShort(d))
	}
	return out
}

func drinksToLong(drinks []domain.Drink) []DrinkLong {
	out := make([]DrinkLong, 0, len(drinks))
	for _, d := range drinks {
		out = append(out, drinkToLong(d))
	}
	return out
}

func toIngredients(in []IngredientRequest) []domain.Ingredient {
	if in == nil {
		return nil
	}
	out := make([]domain.Ingredient, 0, len(in))
	for _, i := range in {
		out = append(out, domain.Ingredient{Name: i.Name, Color: i.Color, Parts: i.Parts})
	}
	return out
}

func (r CreateDrinkRequest) toInput() domain.CreateDrinkInput {
	return domain.CreateDrinkInput{
		Title:  r.Title,
		Recipe: toIngredients(r.Recipe),
	}
}

func (r UpdateDrinkRequest) toInput() domain.UpdateDrinkInput {
	return domain.UpdateDrinkInput{
		Title:  r.Title,
		Recipe: toIngredients(r.Recipe),
	}
}

func claimsToMe(claims auth.ClaimSet) MeResponse {
	permissions := claims.Permissions
	if permissions == nil {
		permissions = []string{}
	}
	return MeResponse{
		Success:     true,
		Subject:     claims.Subject,
		Permissions: permissions,
		Scope:       claims.Scope,
	}
}
