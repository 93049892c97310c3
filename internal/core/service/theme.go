package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/niksmo/storefront/internal/core/port"
)

var ErrInvalidTheme = errors.New("invalid theme mode")

const (
	themeStateKey = "theme"

	ThemeLight = "light"
	ThemeDark  = "dark"
)

var _ port.ThemeController = (*ThemeService)(nil)

// ThemeService owns the persisted theme preference. The visual toggle
// itself is a UI concern, only the stored value lives here.
type ThemeService struct {
	store port.StateStore
}

func NewThemeService(store port.StateStore) ThemeService {
	return ThemeService{store}
}

// Theme returns the stored preference, defaulting to dark on absence,
// read failure or an unrecognized stored value.
func (s ThemeService) Theme(ctx context.Context) string {
	const op = "ThemeService.Theme"

	v, ok, err := s.store.Read(ctx, themeStateKey)
	if err != nil {
		slog.Error("failed to read theme", "op", op, "err", err)
		return ThemeDark
	}
	if !ok || (v != ThemeLight && v != ThemeDark) {
		return ThemeDark
	}
	return v
}

func (s ThemeService) SetTheme(ctx context.Context, mode string) error {
	const op = "ThemeService.SetTheme"

	if mode != ThemeLight && mode != ThemeDark {
		return fmt.Errorf("%s: %q: %w", op, mode, ErrInvalidTheme)
	}

	if err := s.store.Write(ctx, themeStateKey, mode); err != nil {
		slog.Error("failed to write theme", "op", op, "err", err)
	}
	return nil
}
