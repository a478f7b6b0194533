// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package recording

import (
	"fmt"
	"image/color"

	"github.com/gogpu/flowchart/surface"
)

// CommandType identifies the type of a command.
type CommandType uint8

const (
	// State commands
	CmdSave    CommandType = iota // Save current state
	CmdRestore                    // Restore previous state

	// Drawing commands
	CmdClear      // Clear a rectangle to transparent
	CmdFillRect   // Fill an axis aligned rectangle
	CmdStrokePath // Stroke a path
	CmdFillPath   // Fill a path
	CmdDrawText   // Draw a text run
)

var commandTypeNames = [...]string{
	CmdSave:       "Save",
	CmdRestore:    "Restore",
	CmdClear:      "Clear",
	CmdFillRect:   "FillRect",
	CmdStrokePath: "StrokePath",
	CmdFillPath:   "FillPath",
	CmdDrawText:   "DrawText",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types. String
// gives the one-line form written by Recording.WriteTo.
type Command interface {
	fmt.Stringer

	// Type returns the CommandType for this command.
	Type() CommandType
}

// PathRef is a reference to a path in the resource pool.
type PathRef uint32

// InvalidRef is the sentinel value for an invalid reference.
const InvalidRef = ^uint32(0)

// IsValid returns true if the reference is not InvalidRef.
func (r PathRef) IsValid() bool {
	return uint32(r) != InvalidRef
}

// Rect is an axis aligned rectangle.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g %gx%g)", r.X, r.Y, r.W, r.H)
}

// SaveCommand saves the drawing state.
type SaveCommand struct{}

// Type implements Command.
func (SaveCommand) Type() CommandType { return CmdSave }

func (SaveCommand) String() string { return "Save" }

// RestoreCommand restores the last saved drawing state.
type RestoreCommand struct{}

// Type implements Command.
func (RestoreCommand) Type() CommandType { return CmdRestore }

func (RestoreCommand) String() string { return "Restore" }

// ClearCommand clears a rectangle to transparent.
type ClearCommand struct {
	Rect Rect
}

// Type implements Command.
func (ClearCommand) Type() CommandType { return CmdClear }

func (c ClearCommand) String() string { return "Clear " + c.Rect.String() }

// FillRectCommand fills a rectangle with a solid color.
type FillRectCommand struct {
	Rect  Rect
	Color color.Color
}

// Type implements Command.
func (FillRectCommand) Type() CommandType { return CmdFillRect }

func (c FillRectCommand) String() string {
	return fmt.Sprintf("FillRect %v %s", c.Rect, colorString(c.Color))
}

// StrokePathCommand strokes a pooled path.
type StrokePathCommand struct {
	Path  PathRef
	Style surface.StrokeStyle
}

// Type implements Command.
func (StrokePathCommand) Type() CommandType { return CmdStrokePath }

func (c StrokePathCommand) String() string {
	return fmt.Sprintf("StrokePath #%d width=%g %s", c.Path, c.Style.Width, colorString(c.Style.Color))
}

// FillPathCommand fills a pooled path.
type FillPathCommand struct {
	Path  PathRef
	Style surface.FillStyle
}

// Type implements Command.
func (FillPathCommand) Type() CommandType { return CmdFillPath }

func (c FillPathCommand) String() string {
	return fmt.Sprintf("FillPath #%d %s", c.Path, colorString(c.Style.Color))
}

// DrawTextCommand draws a text run anchored at (X, Y).
type DrawTextCommand struct {
	Text  string
	X, Y  float64
	Style surface.TextStyle
}

// Type implements Command.
func (DrawTextCommand) Type() CommandType { return CmdDrawText }

func (c DrawTextCommand) String() string {
	s := fmt.Sprintf("DrawText %q at (%g,%g) %v %s/%s %s",
		c.Text, c.X, c.Y, c.Style.Font, c.Style.AlignX, c.Style.AlignY, colorString(c.Style.Color))
	if c.Style.Constrained() {
		s += fmt.Sprintf(" max=%g", c.Style.MaxWidth)
	}
	return s
}

func colorString(c color.Color) string {
	if c == nil {
		return "<nil>"
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}
