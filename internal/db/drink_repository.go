package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	sqlc "github.com/Flarenzy/coffee-shop-api/internal/db/sqlc"
	"github.com/Flarenzy/coffee-shop-api/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

type DrinkRepository struct {
	queries *sqlc.Queries
}

func NewDrinkRepository(queries *sqlc.Queries) *DrinkRepository {
	return &DrinkRepository{queries: queries}
}

func (r *DrinkRepository) List(ctx context.Context) ([]domain.Drink, error) {
	drinks, err := r.queries.ListDrinks(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Drink, 0, len(drinks))
	for _, drink := range drinks {
		d, err := toDomainDrink(drink)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}

	return out, nil
}

func (r *DrinkRepository) FindByID(ctx context.Context, id int64) (domain.Drink, error) {
	drink, err := r.queries.GetDrinkByID(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return domain.Drink{}, domain.ErrNotFound
		}
		return domain.Drink{}, err
	}

	return toDomainDrink(drink)
}

func (r *DrinkRepository) Create(ctx context.Context, input domain.CreateDrinkInput) (domain.Drink, error) {
	recipe, err := encodeRecipe(input.Recipe)
	if err != nil {
		return domain.Drink{}, err
	}

	drink, err := r.queries.CreateDrink(ctx, sqlc.CreateDrinkParams{
		Title:  input.Title,
		Recipe: recipe,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Drink{}, fmt.Errorf("%w: drink %q already exists", domain.ErrConflict, input.Title)
		}
		return domain.Drink{}, err
	}

	return toDomainDrink(drink)
}

func (r *DrinkRepository) Update(ctx context.Context, d domain.Drink) (domain.Drink, error) {
	recipe, err := encodeRecipe(d.Recipe)
	if err != nil {
		return domain.Drink{}, err
	}

	drink, err := r.queries.UpdateDrink(ctx, sqlc.UpdateDrinkParams{
		ID:     d.ID,
		Title:  d.Title,
		Recipe: recipe,
	})
	if err != nil {
		switch {
		case isNoRows(err):
			return domain.Drink{}, domain.ErrNotFound
		case isUniqueViolation(err):
			return domain.Drink{}, fmt.Errorf("%w: drink %q already exists", domain.ErrConflict, d.Title)
		}
		return domain.Drink{}, err
	}

	return toDomainDrink(drink)
}

func (r *DrinkRepository) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := r.queries.DeleteDrinkByID(ctx, id)
	if err != nil {
		return false, err
	}

	return deleted > 0, nil
}

type ingredientRecord struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Parts int    `json:"parts"`
}

func encodeRecipe(recipe []domain.Ingredient) ([]byte, error) {
	records := make([]ingredientRecord, 0, len(recipe))
	for _, ingredient := range recipe {
		records = append(records, ingredientRecord(ingredient))
	}
	return json.Marshal(records)
}

func decodeRecipe(raw []byte) ([]domain.Ingredient, error) {
	var records []ingredientRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decode recipe: %w", err)
	}

	recipe := make([]domain.Ingredient, 0, len(records))
	for _, record := range records {
		recipe = append(recipe, domain.Ingredient(record))
	}
	return recipe, nil
}

func toDomainDrink(drink sqlc.Drink) (domain.Drink, error) {
	recipe, err := decodeRecipe(drink.Recipe)
	if err != nil {
		return domain.Drink{}, fmt.Errorf("drink %d: %w", drink.ID, err)
	}

	return domain.Drink{
		ID:        drink.ID,
		Title:     drink.Title,
		Recipe:    recipe,
		CreatedAt: drink.CreatedAt.Time,
		UpdatedAt: drink.UpdatedAt.Time,
	}, nil
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
