package domain

import "context"

type DrinkRepository interface {
	List(ctx context.Context) ([]Drink, error)
	FindByID(ctx context.Context, id int64) (Drink, error)
	Create(ctx context.Context, input CreateDrinkInput) (Drink, error)
	Update(ctx context.Context, drink Drink) (Drink, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
