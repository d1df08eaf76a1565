// Package svcctx provides service context for dependency injection via context.
// This package is separate from server to avoid import cycles with endpoints.
package svcctx

import (
	"context"
	"log/slog"

	"github.com/Miladattar/content-craft-persian/internal/config"
	"github.com/Miladattar/content-craft-persian/internal/generate"
	"github.com/Miladattar/content-craft-persian/internal/home"
	"github.com/Miladattar/content-craft-persian/internal/pack"
	"github.com/Miladattar/content-craft-persian/internal/providers"
)

// Services holds all core services that flow through context.
// Components extract what they need via the individual extractors.
type Services struct {
	Packs     *pack.Store
	Generator *generate.Service
	Registry  *providers.Registry
	Config    *config.Manager
	Logger    *slog.Logger
	Home      *home.Dir
}

type servicesKey struct{}

// WithServices returns a new context with services attached.
func WithServices(ctx context.Context, s *Services) context.Context {
	return context.WithValue(ctx, servicesKey{}, s)
}

// ServicesFrom extracts the full Services struct from context.
// Returns nil if not present.
func ServicesFrom(ctx context.Context) *Services {
	s, _ := ctx.Value(servicesKey{}).(*Services)
	return s
}

// PacksFrom extracts the prompt-pack store from context.
func PacksFrom(ctx context.Context) *pack.Store {
	if s := ServicesFrom(ctx); s != nil {
		return s.Packs
	}
	return nil
}

// GeneratorFrom extracts the generation service from context.
func GeneratorFrom(ctx context.Context) *generate.Service {
	if s := ServicesFrom(ctx); s != nil {
		return s.Generator
	}
	return nil
}

// RegistryFrom extracts the provider registry from context.
func RegistryFrom(ctx context.Context) *providers.Registry {
	if s := ServicesFrom(ctx); s != nil {
		return s.Registry
	}
	return nil
}

// ConfigFrom extracts the config manager from context.
func ConfigFrom(ctx context.Context) *config.Manager {
	if s := ServicesFrom(ctx); s != nil {
		return s.Config
	}
	return nil
}

// LoggerFrom extracts the logger from context.
func LoggerFrom(ctx context.Context) *slog.Logger {
	if s := ServicesFrom(ctx); s != nil {
		return s.Logger
	}
	return nil
}

// HomeFrom extracts the home directory from context.
func HomeFrom(ctx context.Context) *home.Dir {
	if s := ServicesFrom(ctx); s != nil {
		return s.Home
	}
	return nil
}
