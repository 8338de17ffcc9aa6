package domain

type CreateDrinkInput struct {
	Title  string
	Recipe []Ingredient
}

// UpdateDrinkInput leaves a field unchanged when it is nil.
type UpdateDrinkInput struct {
	Title  *string
	Recipe []Ingredient
}
