package domain

import (
	"context"
	"errors"
	"log/slog"
)

type loggingDrinkService struct {
	logger *slog.Logger
	next   DrinkService
}

func NewLoggingDrinkService(logger *slog.Logger, next DrinkService) DrinkService {
	if logger == nil || next == nil {
		return next
	}

	return &loggingDrinkService{
		logger: logger,
		next:   next,
	}
}

// logFailure logs caller mistakes at info and everything else at error.
func (s *loggingDrinkService) logFailure(ctx context.Context, msg string, err error, args ...any) {
	level := slog.LevelError
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrConflict) {
		level = slog.LevelInfo
	}
	s.logger.Log(ctx, level, msg, append(args, "err", err.Error())...)
}

func (s *loggingDrinkService) ListDrinks(ctx context.Context) ([]Drink, error) {
	drinks, err := s.next.ListDrinks(ctx)
	if err != nil {
		s.logFailure(ctx, "list drinks failed", err)
	}
	return drinks, err
}

func (s *loggingDrinkService) GetDrink(ctx context.Context, id int64) (Drink, error) {
	drink, err := s.next.GetDrink(ctx, id)
	if err != nil {
		s.logFailure(ctx, "get drink failed", err, "id", id)
	}
	return drink, err
}

func (s *loggingDrinkService) CreateDrink(ctx context.Context, input CreateDrinkInput) (Drink, error) {
	drink, err := s.next.CreateDrink(ctx, input)
	if err != nil {
		s.logFailure(ctx, "create drink failed", err, "title", input.Title)
		return Drink{}, err
	}

	s.logger.InfoContext(ctx, "drink created", "id", drink.ID, "title", drink.Title)
	return drink, nil
}

func (s *loggingDrinkService) UpdateDrink(ctx context.Context, id int64, input UpdateDrinkInput) (Drink, error) {
	drink, err := s.next.UpdateDrink(ctx, id, input)
	if err != nil {
		s.logFailure(ctx, "update drink failed", err, "id", id)
		return Drink{}, err
	}

	s.logger.InfoContext(ctx, "drink updated", "id", drink.ID, "title", drink.Title)
	return drink, nil
}

func (s *loggingDrinkService) DeleteDrink(ctx context.Context, id int64) error {
	err := s.next.DeleteDrink(ctx, id)
	if err != nil {
		s.logFailure(ctx, "delete drink failed", err, "id", id)
		return err
	}

	s.logger.InfoContext(ctx, "drink deleted", "id", id)
	return nil
}
