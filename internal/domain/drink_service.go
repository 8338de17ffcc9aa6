package domain

import (
	"context"
	"fmt"
	"strings"
)

type drinkService struct {
	drinks DrinkRepository
}

func NewDrinkService(drinks DrinkRepository) DrinkService {
	return &drinkService{
		drinks: drinks,
	}
}

func (s *drinkService) ListDrinks(ctx context.Context) ([]Drink, error) {
	return s.drinks.List(ctx)
}

func (s *drinkService) GetDrink(ctx context.Context, id int64) (Drink, error) {
	return s.drinks.FindByID(ctx, id)
}

func (s *drinkService) CreateDrink(ctx context.Context, input CreateDrinkInput) (Drink, error) {
	title, err := validateTitle(input.Title)
	if err != nil {
		return Drink{}, err
	}
	if err := validateRecipe(input.Recipe); err != nil {
		return Drink{}, err
	}

	input.Title = title
	return s.drinks.Create(ctx, input)
}

func (s *drinkService) UpdateDrink(ctx context.Context, id int64, input UpdateDrinkInput) (Drink, error) {
	drink, err := s.drinks.FindByID(ctx, id)
	if err != nil {
		return Drink{}, err
	}

	if input.Title != nil {
		title, err := validateTitle(*input.Title)
		if err != nil {
			return Drink{}, err
		}
		drink.Title = title
	}
	if input.Recipe != nil {
		if err := validateRecipe(input.Recipe); err != nil {
			return Drink{}, err
		}
		drink.Recipe = input.Recipe
	}

	return s.drinks.Update(ctx, drink)
}

func (s *drinkService) DeleteDrink(ctx context.Context, id int64) error {
	deleted, err := s.drinks.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

func validateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	return title, nil
}

func validateRecipe(recipe []Ingredient) error {
	if len(recipe) == 0 {
		return fmt.Errorf("%w: recipe needs at least one ingredient", ErrInvalidInput)
	}
	for i, ingredient := range recipe {
		switch {
		case strings.TrimSpace(ingredient.Name) == "":
			return fmt.Errorf("%w: ingredient %d has no name", ErrInvalidInput, i)
		case strings.TrimSpace(ingredient.Color) == "":
			return fmt.Errorf("%w: ingredient %d has no color", ErrInvalidInput, i)
		case ingredient.Parts <= 0:
			return fmt.Errorf("%w: ingredient %d needs a positive number of parts", ErrInvalidInput, i)
		}
	}
	return nil
}
