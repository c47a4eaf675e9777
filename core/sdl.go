// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"errors"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

var (
	errForeignWindow = errors.New("window was not created by SDL")
	errImageLoaders  = errors.New("requested image loaders did not start")
)

// NewSDL creates a Library backed by SDL2 and SDL2_image
func NewSDL() *SDL {
	return &SDL{}
}

// SDL implements Library with go-sdl2
type SDL struct {
	Library
}

// Init implements interface
func (SDL) Init(flags uint32) error {
	return sdl.Init(flags)
}

// InitImage implements interface
func (SDL) InitImage(flags int) error {
	return imageInitResult(flags, img.Init(flags))
}

// imageInitResult checks the loaders img.Init reports as started
// against the requested ones, all of them have to be up
func imageInitResult(requested, started int) error {
	if started&requested == requested {
		return nil
	}
	if err := img.GetError(); err != nil {
		return err
	}
	return errImageLoaders
}

// CreateWindow implements interface, the window is centred on screen
func (SDL) CreateWindow(cfg WindowConfiguration) (Window, error) {
	window, err := sdl.CreateWindow(cfg.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		cfg.Width,
		cfg.Height,
		cfg.Flags)
	if err != nil {
		return nil, err
	}
	return window, nil
}

// CreateRenderer implements interface
func (SDL) CreateRenderer(w Window, cfg RendererConfiguration) (Renderer, error) {
	window, ok := w.(*sdl.Window)
	if !ok {
		return nil, errForeignWindow
	}
	renderer, err := sdl.CreateRenderer(window, cfg.Index, cfg.Flags())
	if err != nil {
		return nil, err
	}
	return renderer, nil
}

// SetWindowIcon implements interface
func (SDL) SetWindowIcon(w Window, data []byte) error {
	window, ok := w.(*sdl.Window)
	if !ok {
		return errForeignWindow
	}
	rw, err := sdl.RWFromMem(data)
	if err != nil {
		return err
	}
	icon, err := img.LoadRW(rw, true)
	if err != nil {
		return err
	}
	defer icon.Free()
	window.SetIcon(icon)
	return nil
}

// PollEvent implements interface
func (SDL) PollEvent() sdl.Event {
	return sdl.PollEvent()
}

// Quit implements interface
func (SDL) Quit() {
	img.Quit()
	sdl.Quit()
}
