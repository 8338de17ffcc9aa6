package domain

import "time"

type Ingredient struct {
	Name  string
	Color string
	Parts int
}

type Drink struct {
	ID        int64
	Title     string
	Recipe    []Ingredient
	CreatedAt time.Time
	UpdatedAt time.Time
}
