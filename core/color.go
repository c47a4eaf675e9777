// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"encoding/hex"
	"errors"
	"strconv"
	"strings"

	"github.com/veandco/go-sdl2/sdl"
	"golang.org/x/image/colornames"
)

// ErrColorFormat is returned for a colour that can't be parsed
var ErrColorFormat = errors.New("unrecognised colour")

// ParseColor parses a colour given as an SVG colour name ("blue"),
// as hex ("#0000ff" or "#0000ffff") or as decimal components
// ("0,0,255" or "0,0,255,255"). Alpha defaults to opaque.
func ParseColor(s string) (sdl.Color, error) {
	s = strings.TrimSpace(s)

	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return sdl.Color{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}

	if strings.HasPrefix(s, "#") {
		raw, err := hex.DecodeString(s[1:])
		if err != nil || (len(raw) != 3 && len(raw) != 4) {
			return sdl.Color{}, ErrColorFormat
		}
		if len(raw) == 3 {
			raw = append(raw, 255)
		}
		return sdl.Color{R: raw[0], G: raw[1], B: raw[2], A: raw[3]}, nil
	}

	parts := strings.Split(s, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return sdl.Color{}, ErrColorFormat
	}
	comps := [4]uint8{0, 0, 0, 255}
	for i, p := range parts {
		n, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return sdl.Color{}, ErrColorFormat
		}
		comps[i] = uint8(n)
	}
	return sdl.Color{R: comps[0], G: comps[1], B: comps[2], A: comps[3]}, nil
}
