// Package app wires the SDL window, the OpenGL backend and the engine together.
package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/argand/internal/config"
	"github.com/Faultbox/argand/internal/engine"
	"github.com/Faultbox/argand/internal/engine/glgpu"
	"github.com/Faultbox/argand/internal/engine/input"
	"github.com/Faultbox/argand/internal/engine/window"
	"github.com/Faultbox/argand/internal/logger"
)

// App is the running application instance.
type App struct {
	config *config.Config
	window *window.Window
	engine *engine.Engine
	input  *input.Input
}

// New opens the window and initializes the engine on it.
func New(cfg *config.Config) (*App, error) {
	logger.Info("initializing application",
		zap.String("title", cfg.Graphics.Title),
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Uint32("msaa", cfg.Graphics.MSAA),
	)

	a := &App{config: cfg}

	// Create window (this also creates OpenGL context)
	var err error
	a.window, err = window.New(window.Config{
		Title:      cfg.Graphics.Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Backend must come AFTER window, since OpenGL context must exist
	device, queue, surface, err := glgpu.New(a.window, cfg.Graphics.VSync)
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to initialize graphics backend: %w", err)
	}

	width, height := a.window.DrawableSize()
	a.engine, err = engine.New(engine.Config{MSAA: cfg.Graphics.MSAA}, engine.Backend{
		Device:  device,
		Queue:   queue,
		Surface: surface,
		Width:   uint32(width),
		Height:  uint32(height),
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}

	a.input = input.New(a.window)

	logger.Info("application initialized successfully")
	return a, nil
}

// Engine returns the engine objects are registered with.
func (a *App) Engine() *engine.Engine {
	return a.engine
}

// Events returns the window's event source.
func (a *App) Events() engine.EventSource {
	return a.input
}

// AddObjects registers objs in order and stops at the first failure.
func (a *App) AddObjects(objs ...engine.Object) error {
	for _, obj := range objs {
		if _, err := a.engine.AddObject(obj); err != nil {
			return err
		}
	}
	return nil
}

// Run blocks in the frame loop until the window closes or a fatal error occurs.
func (a *App) Run() error {
	return a.engine.Run(a.Events())
}

// Close releases GPU resources, then the window and its context.
func (a *App) Close() {
	logger.Info("closing application")

	if a.engine != nil {
		a.engine.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
