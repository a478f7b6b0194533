// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package flowchart

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"
)

// ErrUnknownColor is returned by ParseColor for strings it cannot parse.
var ErrUnknownColor = errors.New("flowchart: unknown color")

// ParseColor parses a CSS style color: a hex form ("#000", "#1e90ff",
// "#1e90ff80"), "rgb(r, g, b)", "rgba(r, g, b, a)", "transparent" or an
// SVG/CSS color name such as "gray" or "lightsteelblue". Parsing is case
// insensitive.
func ParseColor(s string) (color.Color, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch {
	case v == "":
		return nil, fmt.Errorf("%w: empty string", ErrUnknownColor)
	case v == "transparent":
		return color.Transparent, nil
	case strings.HasPrefix(v, "#"):
		if !isHex(v[1:]) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownColor, s)
		}
		return nrgba(gg.Hex(v)), nil
	case strings.HasPrefix(v, "rgb"):
		c, err := parseFunctional(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrUnknownColor, s, err)
		}
		return c, nil
	}

	if c, ok := colornames.Map[v]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownColor, s)
}

// resolveColor parses s and falls back to black, the default paint of a
// fresh drawing state.
func resolveColor(s string) color.Color {
	c, err := ParseColor(s)
	if err != nil {
		Logger().Debug("using black for unparsable color", "color", s, "err", err)
		return color.Black
	}
	return c
}

// nrgba converts a gg color with rounding; gg's own Color truncates.
func nrgba(c gg.RGBA) color.NRGBA {
	return color.NRGBA{
		R: uint8(c.R*255 + 0.5),
		G: uint8(c.G*255 + 0.5),
		B: uint8(c.B*255 + 0.5),
		A: uint8(c.A*255 + 0.5),
	}
}

func isHex(s string) bool {
	switch len(s) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for _, r := range s {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return false
		}
	}
	return true
}

// parseFunctional parses "rgb(...)" and "rgba(...)" with comma separated
// channels. Channels are 0-255 or percentages, alpha is 0-1 or a percentage.
func parseFunctional(v string) (color.Color, error) {
	open := strings.IndexByte(v, '(')
	if open < 0 || !strings.HasSuffix(v, ")") {
		return nil, errors.New("missing parentheses")
	}
	name := strings.TrimSpace(v[:open])
	if name != "rgb" && name != "rgba" {
		return nil, fmt.Errorf("unknown function %q", name)
	}

	parts := strings.Split(v[open+1:len(v)-1], ",")
	if len(parts) != 3 && len(parts) != 4 {
		return nil, fmt.Errorf("want 3 or 4 components, got %d", len(parts))
	}

	var ch [3]uint8
	for i := range ch {
		f, err := component(parts[i], 255)
		if err != nil {
			return nil, err
		}
		ch[i] = uint8(f + 0.5)
	}
	alpha := uint8(255)
	if len(parts) == 4 {
		f, err := component(parts[3], 1)
		if err != nil {
			return nil, err
		}
		alpha = uint8(f*255 + 0.5)
	}
	return color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: alpha}, nil
}

// component parses a number or percentage and clamps it to [0, scale].
func component(s string, scale float64) (float64, error) {
	s = strings.TrimSpace(s)
	pct := strings.HasSuffix(s, "%")
	s = strings.TrimSuffix(s, "%")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if pct {
		f = f / 100 * scale
	}
	if f < 0 || math.IsNaN(f) {
		return 0, nil
	}
	if f > scale {
		return scale, nil
	}
	return f, nil
}
