package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/pandodao/carbon-wallet/core"
)

const (
	themeDark  = "dark"
	themeLight = "light"
)

type Theme struct {
	properties core.PropertyStore
	logger     *slog.Logger

	mux    sync.Mutex
	dark   bool
	closed bool
}

// NewTheme creates the theme state with the given initial flag and persists
// it right away.
func NewTheme(ctx context.Context, properties core.PropertyStore, dark bool, logger *slog.Logger) (*Theme, error) {
	t := &Theme{
		properties: properties,
		logger:     logger.With("session", "theme"),
		dark:       dark,
	}

	if err := t.persist(ctx, dark); err != nil {
		return nil, err
	}

	return t, nil
}

// LoadTheme restores the persisted flag, using fallback when nothing valid
// was stored.
func LoadTheme(ctx context.Context, properties core.PropertyStore, fallback bool, logger *slog.Logger) (*Theme, error) {
	var stored string
	if err := properties.Get(ctx, core.ThemeKey, &stored); err != nil {
		logger.Error("properties.Get", "key", core.ThemeKey, "err", err)
		return nil, err
	}

	dark := fallback
	switch stored {
	case themeDark:
		dark = true
	case themeLight:
		dark = false
	}

	return NewTheme(ctx, properties, dark, logger)
}

func (t *Theme) IsDark() bool {
	t.mux.Lock()
	defer t.mux.Unlock()

	return t.dark
}

// Name returns "dark" or "light".
func (t *Theme) Name() string {
	return themeName(t.IsDark())
}

// Toggle flips the flag and returns the new value.
func (t *Theme) Toggle(ctx context.Context) (bool, error) {
	t.mux.Lock()
	defer t.mux.Unlock()

	if t.closed {
		return t.dark, ErrClosed
	}

	if err := t.persist(ctx, !t.dark); err != nil {
		return t.dark, err
	}

	t.dark = !t.dark
	return t.dark, nil
}

func (t *Theme) Set(ctx context.Context, dark bool) error {
	t.mux.Lock()
	defer t.mux.Unlock()

	if t.closed {
		return ErrClosed
	}

	if err := t.persist(ctx, dark); err != nil {
		return err
	}

	t.dark = dark
	return nil
}

func (t *Theme) Close() error {
	t.mux.Lock()
	t.closed = true
	t.mux.Unlock()

	return nil
}

func (t *Theme) persist(ctx context.Context, dark bool) error {
	if err := t.properties.Set(ctx, core.ThemeKey, themeName(dark)); err != nil {
		t.logger.Error("properties.Set", "key", core.ThemeKey, "err", err)
		return err
	}

	return nil
}

func themeName(dark bool) string {
	if dark {
		return themeDark
	}

	return themeLight
}
