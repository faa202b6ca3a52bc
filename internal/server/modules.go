package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/madhatterpub/site/internal/module"
	"github.com/madhatterpub/site/internal/registry"
)

// InitModules registers every module, then boots each one under /<Name>.
// All Register calls finish before the first Boot, so a module may rely on
// services published by any other.
func (s *Server) InitModules(ctx context.Context, modules []module.Module, reg *registry.Registry) error {
	for _, m := range modules {
		if err := m.Register(reg); err != nil {
			return fmt.Errorf("failed to register module %s: %w", m.Name(), err)
		}
	}

	for _, m := range modules {
		group := s.E.Group("/" + m.Name())
		if err := m.Boot(ctx, group, reg); err != nil {
			return fmt.Errorf("failed to boot module %s: %w", m.Name(), err)
		}
		s.mu.Lock()
		s.modules = append(s.modules, m)
		s.mu.Unlock()
		slog.Debug("Module booted", "module", m.Name())
	}
	return nil
}

// shutdownModules stops modules in reverse boot order. Every module gets the
// chance to stop; the errors are joined.
func (s *Server) shutdownModules(ctx context.Context) error {
	s.mu.Lock()
	modules := append([]module.Module(nil), s.modules...)
	s.modules = nil
	s.mu.Unlock()

	var errs []error
	for i := len(modules) - 1; i >= 0; i-- {
		if err := modules[i].Shutdown(ctx); err != nil {
			slog.Error("Module shutdown failed", "module", modules[i].Name(), "error", err)
			errs = append(errs, fmt.Errorf("module %s: %w", modules[i].Name(), err))
		}
	}
	return errors.Join(errs...)
}
