// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"fmt"
	"os"
	"strconv"

	"github.com/gobuffalo/envy"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"
)

// DefaultEnvFile is read when no file is named,
// it's not an error when it's missing
const DefaultEnvFile = ".env"

// Environment variables read by LoadConfiguration
const (
	EnvTitle         = "SDLWIN_TITLE"
	EnvWidth         = "SDLWIN_WIDTH"
	EnvHeight        = "SDLWIN_HEIGHT"
	EnvIcon          = "SDLWIN_ICON"
	EnvRendererIndex = "SDLWIN_RENDERER_INDEX"
	EnvAccelerated   = "SDLWIN_ACCELERATED"
	EnvVSync         = "SDLWIN_VSYNC"
	EnvClearColor    = "SDLWIN_CLEAR_COLOR"
	EnvQuitKeys      = "SDLWIN_QUIT_KEYS"
	EnvLogLevel      = "SDLWIN_LOG_LEVEL"
)

// Configuration defines the application configuration
type Configuration struct {
	Window   WindowConfiguration
	Renderer RendererConfiguration

	// QuitKeys end the main loop when pressed
	QuitKeys []sdl.Keycode

	LogLevel logrus.Level
}

// WindowConfiguration is used to configure the window
type WindowConfiguration struct {
	Title  string
	Width  int32
	Height int32
	Flags  uint32

	// Icon names a PNG in the asset box, empty for none.
	// Setting SDLWIN_ICON to an empty value disables it
	Icon string
}

// RendererConfiguration is used to configure the renderer
type RendererConfiguration struct {
	// Index of the rendering driver, -1 picks the first
	// one supporting the requested flags
	Index       int
	Accelerated bool
	VSync       bool
	ClearColor  sdl.Color
}

// Flags returns the SDL renderer flags for the configuration
func (c RendererConfiguration) Flags() uint32 {
	var flags uint32
	if c.Accelerated {
		flags |= sdl.RENDERER_ACCELERATED
	} else {
		flags |= sdl.RENDERER_SOFTWARE
	}
	if c.VSync {
		flags |= sdl.RENDERER_PRESENTVSYNC
	}
	return flags
}

// DefaultConfiguration returns the configuration used
// when nothing is overridden by the environment
func DefaultConfiguration() Configuration {
	return Configuration{
		Window: WindowConfiguration{
			Title:  "SDL Window",
			Width:  900,
			Height: 800,
			Flags:  sdl.WINDOW_SHOWN,
			Icon:   "icon.png",
		},
		Renderer: RendererConfiguration{
			Index:       -1,
			Accelerated: true,
			VSync:       true,
			ClearColor:  sdl.Color{R: 0, G: 0, B: 255, A: 255},
		},
		QuitKeys: []sdl.Keycode{sdl.K_ESCAPE, sdl.K_e},
		LogLevel: logrus.InfoLevel,
	}
}

// LoadConfiguration loads envFile into the environment and builds a
// Configuration from the defaults overridden by the environment.
// An empty envFile reads DefaultEnvFile if it exists. Values in the
// file override variables already set in the process environment,
// the same way envy treats DefaultEnvFile when it's imported.
func LoadConfiguration(envFile string) (Configuration, error) {
	file, optional := envFile, false
	if file == "" {
		file, optional = DefaultEnvFile, true
	}
	if err := godotenv.Overload(file); err != nil {
		if !(optional && os.IsNotExist(err)) {
			return Configuration{}, fmt.Errorf("loading %s: %w", file, err)
		}
	}
	envy.Reload()

	cfg := DefaultConfiguration()
	cfg.Window.Title = envy.Get(EnvTitle, cfg.Window.Title)
	cfg.Window.Icon = envy.Get(EnvIcon, cfg.Window.Icon)

	var err error
	if cfg.Window.Width, err = envDimension(EnvWidth, cfg.Window.Width); err != nil {
		return Configuration{}, err
	}
	if cfg.Window.Height, err = envDimension(EnvHeight, cfg.Window.Height); err != nil {
		return Configuration{}, err
	}

	if v, ok := lookup(EnvRendererIndex); ok {
		idx, err := strconv.Atoi(v)
		if err != nil {
			return Configuration{}, invalid(EnvRendererIndex, v, err)
		}
		cfg.Renderer.Index = idx
	}
	if cfg.Renderer.Accelerated, err = envBool(EnvAccelerated, cfg.Renderer.Accelerated); err != nil {
		return Configuration{}, err
	}
	if cfg.Renderer.VSync, err = envBool(EnvVSync, cfg.Renderer.VSync); err != nil {
		return Configuration{}, err
	}

	if v, ok := lookup(EnvClearColor); ok {
		c, err := ParseColor(v)
		if err != nil {
			return Configuration{}, invalid(EnvClearColor, v, err)
		}
		cfg.Renderer.ClearColor = c
	}

	if v, ok := lookup(EnvQuitKeys); ok {
		keys, err := ParseKeys(v)
		if err != nil {
			return Configuration{}, invalid(EnvQuitKeys, v, err)
		}
		cfg.QuitKeys = keys
	}

	if v, ok := lookup(EnvLogLevel); ok {
		lvl, err := logrus.ParseLevel(v)
		if err != nil {
			return Configuration{}, invalid(EnvLogLevel, v, err)
		}
		cfg.LogLevel = lvl
	}

	return cfg, nil
}

// lookup treats an empty variable the same as an unset one
func lookup(key string) (string, bool) {
	v := envy.Get(key, "")
	return v, v != ""
}

func envDimension(key string, def int32) (int32, error) {
	v, ok := lookup(key)
	if !ok {
		return def, nil
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		return 0, invalid(key, v, err)
	}
	if n <= 0 {
		return 0, invalid(key, v, fmt.Errorf("must be positive"))
	}
	return int32(n), nil
}

func envBool(key string, def bool) (bool, error) {
	v, ok := lookup(key)
	if !ok {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, invalid(key, v, err)
	}
	return b, nil
}

func invalid(key, value string, err error) error {
	return fmt.Errorf("invalid %s=%q: %v", key, value, err)
}
