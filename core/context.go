// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

// Context owns the library, window and renderer for the
// lifetime of the application and runs the main loop.
// It must be used from the thread it was created on.
type Context struct {
	cfg Configuration
	log logrus.FieldLogger

	lib      Library
	window   Window
	renderer Renderer

	quit bool
}

// NewContext initialises lib, opens a window and creates a renderer
// for it. On failure whatever was already acquired is released.
func NewContext(cfg Configuration, lib Library, log logrus.FieldLogger) (*Context, error) {
	ctx := &Context{
		cfg: cfg,
		log: log,
		lib: lib,
	}

	if err := lib.Init(sdl.INIT_EVERYTHING); err != nil {
		return nil, ctx.fail(fmt.Errorf("%w: %v", ErrSubsystemInit, err))
	}
	log.Debug("sdl initialised")

	if err := lib.InitImage(img.INIT_PNG); err != nil {
		return nil, ctx.fail(fmt.Errorf("%w: %v", ErrImageInit, err))
	}
	log.Debug("png support initialised")

	window, err := lib.CreateWindow(cfg.Window)
	if err != nil {
		return nil, ctx.fail(fmt.Errorf("%w: %v", ErrWindowCreate, err))
	}
	ctx.window = window
	log.WithFields(logrus.Fields{
		"title":  cfg.Window.Title,
		"width":  cfg.Window.Width,
		"height": cfg.Window.Height,
	}).Debug("window created")

	renderer, err := lib.CreateRenderer(window, cfg.Renderer)
	if err != nil {
		return nil, ctx.fail(fmt.Errorf("%w: %v", ErrRendererCreate, err))
	}
	ctx.renderer = renderer
	log.WithField("flags", cfg.Renderer.Flags()).Debug("renderer created")

	if cfg.Window.Icon != "" {
		ctx.setIcon(cfg.Window.Icon)
	}

	return ctx, nil
}

// fail logs err, releases what was acquired so far and returns err
func (c *Context) fail(err error) error {
	c.log.Error(err)
	c.Destroy()
	return err
}

// setIcon is best effort, a window without an icon is still usable
func (c *Context) setIcon(name string) {
	data, err := Assets.Find(name)
	if err != nil {
		c.log.WithError(err).WithField("icon", name).Warn("icon not found")
		return
	}
	if err := c.lib.SetWindowIcon(c.window, data); err != nil {
		c.log.WithError(err).WithField("icon", name).Warn("failed to set icon")
	}
}

// Window returns the window handle
func (c *Context) Window() Window {
	return c.window
}

// Renderer returns the renderer handle
func (c *Context) Renderer() Renderer {
	return c.renderer
}

// Quit reports whether a quit was requested
func (c *Context) Quit() bool {
	return c.quit
}

// RequestQuit makes the main loop exit after the current frame
func (c *Context) RequestQuit() {
	c.quit = true
}

// HandleEvents drains every pending event, setting the quit
// flag if any of them asks the application to quit.
func (c *Context) HandleEvents() {
	for ev := c.lib.PollEvent(); ev != nil; ev = c.lib.PollEvent() {
		if IsQuitEvent(ev, c.cfg.QuitKeys) {
			if !c.quit {
				c.log.Info("quit requested")
			}
			c.quit = true
		}
	}
}

// Frame clears the screen to the configured colour and presents it
func (c *Context) Frame() error {
	cc := c.cfg.Renderer.ClearColor
	if err := c.renderer.SetDrawColor(cc.R, cc.G, cc.B, cc.A); err != nil {
		return err
	}
	if err := c.renderer.Clear(); err != nil {
		return err
	}
	c.renderer.Present()
	return nil
}

// Run is the main loop. It returns once a quit is requested.
func (c *Context) Run() {
	for !c.quit {
		c.HandleEvents()
		if err := c.Frame(); err != nil {
			c.log.WithError(err).Warn("frame error")
		}
	}
	c.log.Debug("main loop exited")
}

// Destroy releases the renderer, then the window, then the library.
// Calling it again does nothing.
func (c *Context) Destroy() {
	if c.lib == nil {
		return
	}
	if c.renderer != nil {
		if err := c.renderer.Destroy(); err != nil {
			c.log.WithError(err).Error("failed to destroy renderer")
		}
		c.renderer = nil
	}
	if c.window != nil {
		if err := c.window.Destroy(); err != nil {
			c.log.WithError(err).Error("failed to destroy window")
		}
		c.window = nil
	}
	c.lib.Quit()
	c.lib = nil
}
