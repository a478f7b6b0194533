// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package fonts resolves font family names to gg font faces.
//
// A Resolver always has a built-in fallback face (Go Regular). When system
// fonts are enabled it also asks go-text's fontscan for an installed font of
// the requested family, so "Arial" renders with Arial where it exists.
//
//	r, _ := fonts.NewResolver(fonts.WithSystemFonts(""))
//	face := r.Face("Arial", 24)
//	w := r.Measure("Start", "Arial", 24)
package fonts

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/go-text/typesetting/fontscan"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/flowchart/internal/cache"
)

// ErrNoFallback is returned when the built-in fallback font cannot be parsed.
var ErrNoFallback = errors.New("fonts: fallback font unavailable")

// Option configures a Resolver.
type Option func(*resolverOptions)

type resolverOptions struct {
	system     bool
	cacheDir   string
	cacheLimit int
}

// WithSystemFonts enables lookup of installed fonts through fontscan.
// cacheDir is where the font index is cached; "" uses the user cache dir.
// The first lookup scans the system and may take a while.
func WithSystemFonts(cacheDir string) Option {
	return func(o *resolverOptions) {
		o.system = true
		o.cacheDir = cacheDir
	}
}

// WithMeasureCache sets how many measured strings are remembered. The
// default is cache.DefaultLimit.
func WithMeasureCache(limit int) Option {
	return func(o *resolverOptions) {
		o.cacheLimit = limit
	}
}

type faceKey struct {
	family string
	size   float64
}

type widthKey struct {
	faceKey
	s string
}

// Resolver maps family names to font sources and caches the result.
// Resolver is safe for concurrent use.
type Resolver struct {
	opts     resolverOptions
	fallback *text.FontSource

	faces  *cache.LRU[faceKey, text.Face]
	widths *cache.LRU[widthKey, float64]

	mu      sync.Mutex
	sources map[string]*text.FontSource // nil value caches a miss
	fontMap *fontscan.FontMap
	scanErr error
}

// NewResolver creates a resolver with the built-in fallback face.
func NewResolver(opts ...Option) (*Resolver, error) {
	var o resolverOptions
	for _, opt := range opts {
		opt(&o)
	}

	fallback, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoFallback, err)
	}

	return &Resolver{
		opts:     o,
		fallback: fallback,
		faces:    cache.New[faceKey, text.Face](64),
		widths:   cache.New[widthKey, float64](o.cacheLimit),
		sources:  make(map[string]*text.FontSource),
	}, nil
}

// Fallback returns the built-in font source.
func (r *Resolver) Fallback() *text.FontSource {
	return r.fallback
}

// Source returns the font source for family, or the fallback source when
// the family is empty, unknown, or system fonts are disabled.
func (r *Resolver) Source(family string) *text.FontSource {
	key := strings.ToLower(strings.TrimSpace(family))
	if key == "" || !r.opts.system {
		return r.fallback
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if src, ok := r.sources[key]; ok {
		if src == nil {
			return r.fallback
		}
		return src
	}

	src := r.lookup(family)
	r.sources[key] = src
	if src == nil {
		return r.fallback
	}
	return src
}

// lookup finds and parses an installed font. Must be called with mu held.
func (r *Resolver) lookup(family string) *text.FontSource {
	if r.fontMap == nil && r.scanErr == nil {
		fm := fontscan.NewFontMap(scanLogger{})
		if err := fm.UseSystemFonts(r.opts.cacheDir); err != nil {
			r.scanErr = err
			Logger().Warn("system font scan failed", "err", err)
		} else {
			r.fontMap = fm
		}
	}
	if r.fontMap == nil {
		return nil
	}

	loc, ok := r.fontMap.FindSystemFont(family)
	if !ok {
		Logger().Debug("font family not installed", "family", family)
		return nil
	}
	if loc.Index != 0 {
		// Faces inside collections other than the first are not supported.
		Logger().Debug("font is not the first face of its collection", "family", family, "file", loc.File)
		return nil
	}

	data, err := os.ReadFile(loc.File)
	if err != nil {
		Logger().Debug("font file unreadable", "file", loc.File, "err", err)
		return nil
	}
	src, err := text.NewFontSource(data)
	if err != nil {
		Logger().Debug("font file unparsable", "file", loc.File, "err", err)
		return nil
	}
	Logger().Debug("font resolved", "family", family, "file", loc.File)
	return src
}

// Face returns a face of the given family at size pixels.
func (r *Resolver) Face(family string, size float64) text.Face {
	if !(size > 0) {
		return r.Source(family).Face(size)
	}
	key := faceKey{family: strings.ToLower(strings.TrimSpace(family)), size: size}
	return r.faces.GetOrCreate(key, func() text.Face {
		return r.Source(family).Face(size)
	})
}

// Measure returns the advance width of s in pixels.
func (r *Resolver) Measure(s, family string, size float64) float64 {
	if s == "" || !(size > 0) {
		return 0
	}
	key := widthKey{faceKey{strings.ToLower(strings.TrimSpace(family)), size}, s}
	return r.widths.GetOrCreate(key, func() float64 {
		w, _ := text.Measure(s, r.Face(family, size))
		return w
	})
}

// CacheStats reports usage of the measurement cache.
func (r *Resolver) CacheStats() cache.Stats {
	return r.widths.Stats()
}

// Metrics returns the vertical metrics of the face.
func (r *Resolver) Metrics(family string, size float64) text.Metrics {
	if !(size > 0) {
		return text.Metrics{}
	}
	return r.Face(family, size).Metrics()
}

// scanLogger forwards fontscan diagnostics to the package logger.
type scanLogger struct{}

func (scanLogger) Printf(format string, args ...interface{}) {
	Logger().Debug(fmt.Sprintf(format, args...))
}

var (
	defaultMu       sync.Mutex
	defaultResolver *Resolver
)

// Default returns the shared resolver used by surfaces that were not given
// one explicitly. It has system fonts disabled unless SetDefault replaced it.
func Default() *Resolver {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultResolver == nil {
		r, err := NewResolver()
		if err != nil {
			// goregular is compiled in; failing to parse it is a build defect.
			panic(err)
		}
		defaultResolver = r
	}
	return defaultResolver
}

// SetDefault replaces the shared resolver. Passing nil resets it.
func SetDefault(r *Resolver) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultResolver = r
}
