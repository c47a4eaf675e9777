// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"errors"
	"fmt"
	"strings"

	"github.com/veandco/go-sdl2/sdl"
)

// ParseKeys resolves a comma separated list of SDL key names,
// such as "Escape,E", into key codes.
func ParseKeys(s string) ([]sdl.Keycode, error) {
	var keys []sdl.Keycode
	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		key := sdl.GetKeyFromName(name)
		if key == sdl.K_UNKNOWN {
			return nil, fmt.Errorf("unknown key %q", name)
		}
		keys = append(keys, key)
	}
	if len(keys) == 0 {
		return nil, errors.New("no keys given")
	}
	return keys, nil
}

// IsQuitEvent reports whether ev asks the application to quit:
// a quit event, or one of keys being pressed down.
func IsQuitEvent(ev sdl.Event, keys []sdl.Keycode) bool {
	switch et := ev.(type) {
	case *sdl.QuitEvent:
		return true
	case *sdl.KeyboardEvent:
		if et.Type != sdl.KEYDOWN {
			return false
		}
		for _, k := range keys {
			if et.Keysym.Sym == k {
				return true
			}
		}
	}
	return false
}
