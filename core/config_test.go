// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/gobuffalo/envy"
	"github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/devblok/sdlwin/core"
)

func TestDefaultConfiguration(t *testing.T) {
	c := qt.New(t)
	cfg := core.DefaultConfiguration()

	c.Assert(cfg.Window.Title, qt.Equals, "SDL Window")
	c.Assert(cfg.Window.Width, qt.Equals, int32(900))
	c.Assert(cfg.Window.Height, qt.Equals, int32(800))
	c.Assert(cfg.Window.Flags, qt.Equals, uint32(sdl.WINDOW_SHOWN))
	c.Assert(cfg.Renderer.ClearColor, qt.Equals, sdl.Color{R: 0, G: 0, B: 255, A: 255})
	c.Assert(cfg.Renderer.Flags(), qt.Equals, uint32(sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC))
	c.Assert(cfg.QuitKeys, qt.DeepEquals, []sdl.Keycode{sdl.K_ESCAPE, sdl.K_e})
}

func TestRendererFlags(t *testing.T) {
	c := qt.New(t)
	cfg := core.RendererConfiguration{}
	c.Assert(cfg.Flags(), qt.Equals, uint32(sdl.RENDERER_SOFTWARE))
	cfg.VSync = true
	c.Assert(cfg.Flags(), qt.Equals, uint32(sdl.RENDERER_SOFTWARE|sdl.RENDERER_PRESENTVSYNC))
}

// withEnv sets vars in the process environment for the duration of f
func withEnv(vars map[string]string, f func()) {
	for k, v := range vars {
		os.Setenv(k, v)
	}
	defer func() {
		for k := range vars {
			os.Unsetenv(k)
		}
		envy.Reload()
	}()
	f()
}

// inDir runs f with dir as the working directory
func inDir(c *qt.C, dir string, f func()) {
	wd, err := os.Getwd()
	c.Assert(err, qt.IsNil)
	c.Assert(os.Chdir(dir), qt.IsNil)
	defer os.Chdir(wd)
	f()
}

func tempDir(c *qt.C) (string, func()) {
	dir, err := ioutil.TempDir("", "sdlwin")
	c.Assert(err, qt.IsNil)
	return dir, func() { os.RemoveAll(dir) }
}

func TestLoadConfigurationDefaults(t *testing.T) {
	c := qt.New(t)
	cfg, err := core.LoadConfiguration("")
	c.Assert(err, qt.IsNil)
	c.Assert(cfg, qt.DeepEquals, core.DefaultConfiguration())
}

func TestLoadConfigurationOverrides(t *testing.T) {
	c := qt.New(t)
	withEnv(map[string]string{
		core.EnvTitle:         "Skeleton",
		core.EnvWidth:         "640",
		core.EnvHeight:        "480",
		core.EnvIcon:          "",
		core.EnvRendererIndex: "1",
		core.EnvAccelerated:   "false",
		core.EnvVSync:         "0",
		core.EnvClearColor:    "#102030",
		core.EnvQuitKeys:      "Q",
		core.EnvLogLevel:      "debug",
	}, func() {
		cfg, err := core.LoadConfiguration("")
		c.Assert(err, qt.IsNil)
		c.Assert(cfg.Window.Title, qt.Equals, "Skeleton")
		c.Assert(cfg.Window.Width, qt.Equals, int32(640))
		c.Assert(cfg.Window.Height, qt.Equals, int32(480))
		c.Assert(cfg.Window.Icon, qt.Equals, "")
		c.Assert(cfg.Renderer.Index, qt.Equals, 1)
		c.Assert(cfg.Renderer.Flags(), qt.Equals, uint32(sdl.RENDERER_SOFTWARE))
		c.Assert(cfg.Renderer.ClearColor, qt.Equals, sdl.Color{R: 0x10, G: 0x20, B: 0x30, A: 255})
		c.Assert(cfg.QuitKeys, qt.DeepEquals, []sdl.Keycode{sdl.K_q})
		c.Assert(cfg.LogLevel, qt.Equals, logrus.DebugLevel)
	})
}

func TestLoadConfigurationInvalid(t *testing.T) {
	tests := []struct {
		key, value, err string
	}{
		{core.EnvWidth, "wide", `invalid SDLWIN_WIDTH="wide": .*`},
		{core.EnvHeight, "-5", `invalid SDLWIN_HEIGHT="-5": must be positive`},
		{core.EnvRendererIndex, "first", `invalid SDLWIN_RENDERER_INDEX="first": .*`},
		{core.EnvVSync, "maybe", `invalid SDLWIN_VSYNC="maybe": .*`},
		{core.EnvClearColor, "#12", `invalid SDLWIN_CLEAR_COLOR="#12": unrecognised colour`},
		{core.EnvQuitKeys, "Escape,Nope", `invalid SDLWIN_QUIT_KEYS="Escape,Nope": unknown key "Nope"`},
		{core.EnvLogLevel, "loud", `invalid SDLWIN_LOG_LEVEL="loud": .*`},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			c := qt.New(t)
			withEnv(map[string]string{tt.key: tt.value}, func() {
				_, err := core.LoadConfiguration("")
				c.Assert(err, qt.ErrorMatches, tt.err)
			})
		})
	}
}

func TestLoadConfigurationEnvFileOverridesEnvironment(t *testing.T) {
	c := qt.New(t)
	dir, cleanup := tempDir(c)
	defer cleanup()

	file := filepath.Join(dir, "test.env")
	c.Assert(ioutil.WriteFile(file, []byte("SDLWIN_TITLE=from file\nSDLWIN_WIDTH=320\n"), 0644), qt.IsNil)

	withEnv(map[string]string{core.EnvTitle: "", core.EnvWidth: "1024", core.EnvHeight: "600"}, func() {
		cfg, err := core.LoadConfiguration(file)
		c.Assert(err, qt.IsNil)
		c.Assert(cfg.Window.Title, qt.Equals, "from file")
		c.Assert(cfg.Window.Width, qt.Equals, int32(320))
		c.Assert(cfg.Window.Height, qt.Equals, int32(600))
	})
}

func TestLoadConfigurationDefaultEnvFile(t *testing.T) {
	c := qt.New(t)
	dir, cleanup := tempDir(c)
	defer cleanup()

	c.Assert(ioutil.WriteFile(filepath.Join(dir, core.DefaultEnvFile), []byte("SDLWIN_WIDTH=320\n"), 0644), qt.IsNil)

	withEnv(map[string]string{core.EnvWidth: "1024"}, func() {
		inDir(c, dir, func() {
			cfg, err := core.LoadConfiguration("")
			c.Assert(err, qt.IsNil)
			c.Assert(cfg.Window.Width, qt.Equals, int32(320))
			c.Assert(os.Getenv(core.EnvWidth), qt.Equals, "320")
		})
	})
}

func TestLoadConfigurationMissingEnvFile(t *testing.T) {
	c := qt.New(t)
	dir, cleanup := tempDir(c)
	defer cleanup()

	inDir(c, dir, func() {
		_, err := core.LoadConfiguration("")
		c.Assert(err, qt.IsNil)

		_, err = core.LoadConfiguration(core.DefaultEnvFile)
		c.Assert(err, qt.ErrorMatches, "loading \\.env: .*")

		_, err = core.LoadConfiguration("missing.env")
		c.Assert(err, qt.ErrorMatches, "loading missing.env: .*")
	})
}
