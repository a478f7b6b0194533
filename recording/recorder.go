// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package recording

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/gogpu/flowchart/fonts"
	"github.com/gogpu/flowchart/surface"
)

var (
	// ErrNilSurface is returned by Playback when the target is nil.
	ErrNilSurface = errors.New("recording: nil surface")

	// ErrInvalidRef is returned by Playback when a command points at a path
	// that is not in the resource pool.
	ErrInvalidRef = errors.New("recording: invalid path reference")
)

// Measurer measures the advance width of a text run.
type Measurer func(s string, font surface.Font) float64

// Option configures a Recorder.
type Option func(*Recorder)

// WithMeasurer sets the function used to answer MeasureText.
func WithMeasurer(m Measurer) Option {
	return func(r *Recorder) {
		if m != nil {
			r.measure = m
		}
	}
}

// Recorder is a surface.Surface that records every call as a Command.
//
// Restore without a matching Save is dropped, so recordings are always
// balanced. Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command
	resources     *ResourcePool
	measure       Measurer
	depth         int
	closed        bool
}

var _ surface.Surface = (*Recorder)(nil)

// NewRecorder creates a Recorder for a surface of the given size.
func NewRecorder(width, height int, opts ...Option) *Recorder {
	r := &Recorder{
		width:     width,
		height:    height,
		commands:  make([]Command, 0, 64),
		resources: NewResourcePool(),
		measure: func(s string, font surface.Font) float64 {
			return fonts.Default().Measure(s, font.Family, font.Size)
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Width returns the recording width.
func (r *Recorder) Width() int { return r.width }

// Height returns the recording height.
func (r *Recorder) Height() int { return r.height }

// Commands returns a copy of the commands recorded so far.
func (r *Recorder) Commands() []Command {
	out := make([]Command, len(r.commands))
	copy(out, r.commands)
	return out
}

// Len returns the number of recorded commands.
func (r *Recorder) Len() int { return len(r.commands) }

// Path returns the pooled path for ref.
func (r *Recorder) Path(ref PathRef) *surface.Path {
	return r.resources.GetPath(ref)
}

// Reset discards all recorded commands and resources.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
	r.resources.Clear()
	r.depth = 0
	r.closed = false
}

// Finish returns an immutable Recording of everything recorded so far.
// Saves still open are closed with matching Restore commands. The Recorder
// should not be used after Finish.
func (r *Recorder) Finish() *Recording {
	for ; r.depth > 0; r.depth-- {
		r.commands = append(r.commands, RestoreCommand{})
	}
	return &Recording{
		width:     r.width,
		height:    r.height,
		commands:  r.commands,
		resources: r.resources,
	}
}

func (r *Recorder) add(cmd Command) {
	if r.closed {
		return
	}
	r.commands = append(r.commands, cmd)
}

// Clear records a ClearCommand.
func (r *Recorder) Clear(x, y, w, h float64) {
	r.add(ClearCommand{Rect: Rect{X: x, Y: y, W: w, H: h}})
}

// FillRect records a FillRectCommand.
func (r *Recorder) FillRect(x, y, w, h float64, c color.Color) {
	r.add(FillRectCommand{Rect: Rect{X: x, Y: y, W: w, H: h}, Color: c})
}

// Stroke records a StrokePathCommand. Empty paths are not recorded.
func (r *Recorder) Stroke(path *surface.Path, style surface.StrokeStyle) {
	if r.closed || path.IsEmpty() {
		return
	}
	r.add(StrokePathCommand{Path: r.resources.AddPath(path), Style: style})
}

// Fill records a FillPathCommand. Empty paths are not recorded.
func (r *Recorder) Fill(path *surface.Path, style surface.FillStyle) {
	if r.closed || path.IsEmpty() {
		return
	}
	r.add(FillPathCommand{Path: r.resources.AddPath(path), Style: style})
}

// MeasureText measures str with the recorder's Measurer.
func (r *Recorder) MeasureText(str string, font surface.Font) float64 {
	return r.measure(str, font)
}

// DrawText records a DrawTextCommand.
func (r *Recorder) DrawText(str string, x, y float64, style surface.TextStyle) {
	r.add(DrawTextCommand{Text: str, X: x, Y: y, Style: style})
}

// Save records a SaveCommand.
func (r *Recorder) Save() {
	if r.closed {
		return
	}
	r.depth++
	r.add(SaveCommand{})
}

// Restore records a RestoreCommand if a Save is open.
func (r *Recorder) Restore() {
	if r.closed || r.depth == 0 {
		return
	}
	r.depth--
	r.add(RestoreCommand{})
}

// Close stops recording. Commands recorded so far are kept.
func (r *Recorder) Close() error {
	r.closed = true
	return nil
}

// Recording is an immutable list of recorded commands.
type Recording struct {
	width, height int
	commands      []Command
	resources     *ResourcePool
}

// Width returns the width of the recorded surface.
func (r *Recording) Width() int { return r.width }

// Height returns the height of the recorded surface.
func (r *Recording) Height() int { return r.height }

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command { return r.commands }

// Resources returns the resource pool.
func (r *Recording) Resources() *ResourcePool { return r.resources }

// Count returns how many commands of type t were recorded.
func (r *Recording) Count(t CommandType) int {
	n := 0
	for _, cmd := range r.commands {
		if cmd.Type() == t {
			n++
		}
	}
	return n
}

// Playback replays the recording onto s.
func (r *Recording) Playback(s surface.Surface) error {
	if s == nil {
		return ErrNilSurface
	}

	for i, cmd := range r.commands {
		switch c := cmd.(type) {
		case SaveCommand:
			s.Save()
		case RestoreCommand:
			s.Restore()
		case ClearCommand:
			s.Clear(c.Rect.X, c.Rect.Y, c.Rect.W, c.Rect.H)
		case FillRectCommand:
			s.FillRect(c.Rect.X, c.Rect.Y, c.Rect.W, c.Rect.H, c.Color)
		case StrokePathCommand:
			path := r.resources.GetPath(c.Path)
			if path == nil {
				return fmt.Errorf("%w: command %d (%v) path #%d", ErrInvalidRef, i, c.Type(), c.Path)
			}
			s.Stroke(path, c.Style)
		case FillPathCommand:
			path := r.resources.GetPath(c.Path)
			if path == nil {
				return fmt.Errorf("%w: command %d (%v) path #%d", ErrInvalidRef, i, c.Type(), c.Path)
			}
			s.Fill(path, c.Style)
		case DrawTextCommand:
			s.DrawText(c.Text, c.X, c.Y, c.Style)
		default:
			return fmt.Errorf("recording: unknown command %v at %d", cmd.Type(), i)
		}
	}

	surface.Logger().Debug("recording played back", "commands", len(r.commands))
	return nil
}

// WriteTo writes one line per command in a human readable form.
func (r *Recording) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for i, cmd := range r.commands {
		n, err := fmt.Fprintf(w, "%4d  %v\n", i, cmd)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
