package form

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
)

var ErrSubmitting = errors.New("submission in progress")

// Guard keeps a form from being submitted again while a submission is in
// flight.
type Guard struct {
	busy   atomic.Bool
	logger *slog.Logger
}

func NewGuard(name string, logger *slog.Logger) *Guard {
	return &Guard{
		logger: logger.With("form", name),
	}
}

func (g *Guard) Submitting() bool {
	return g.busy.Load()
}

// Submit validates data and hands it to fn. Validation failures are returned
// as Errors without calling fn. fn runs with ctx, so a caller going away
// cancels the submission.
func Submit[T any](ctx context.Context, g *Guard, data T, validate func(T) Errors, fn func(context.Context, T) error) error {
	if err := validate(data).Err(); err != nil {
		return err
	}

	if !g.busy.CompareAndSwap(false, true) {
		return ErrSubmitting
	}

	defer g.busy.Store(false)

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := fn(ctx, data); err != nil {
		g.logger.Error("form submission", "err", err)
		return err
	}

	return nil
}
