// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"errors"

	"github.com/veandco/go-sdl2/sdl"
)

// Initialisation errors, each is wrapped with the
// library's own message when returned from NewContext
var (
	ErrSubsystemInit  = errors.New("sdl could not initialise")
	ErrImageInit      = errors.New("failed to initialise png support")
	ErrWindowCreate   = errors.New("failed to create window")
	ErrRendererCreate = errors.New("failed to create renderer")
)

// Window describes a window handle owned by the Library.
type Window interface {
	// Destroy releases the window
	Destroy() error
}

// Renderer describes a 2D renderer attached to a Window.
// *sdl.Renderer satisfies it as is.
type Renderer interface {
	// SetDrawColor sets the colour used by Clear
	SetDrawColor(r, g, b, a uint8) error

	// Clear fills the render target with the draw colour
	Clear() error

	// Present shows the frame drawn since the last call
	Present()

	// Destroy releases the renderer
	Destroy() error
}

// Library describes the windowing library backing a Context.
// Every call is made from the thread that created the Context.
type Library interface {
	// Init initialises the library subsystems given by flags
	Init(flags uint32) error

	// InitImage initialises the image loaders given by flags
	InitImage(flags int) error

	// CreateWindow opens a window described by cfg
	CreateWindow(cfg WindowConfiguration) (Window, error)

	// CreateRenderer creates a renderer for the given window
	CreateRenderer(w Window, cfg RendererConfiguration) (Renderer, error)

	// SetWindowIcon decodes an encoded image and sets it as the window icon
	SetWindowIcon(w Window, data []byte) error

	// PollEvent returns the next pending event, or nil if there is none
	PollEvent() sdl.Event

	// Quit shuts down everything Init and InitImage started
	Quit()
}
