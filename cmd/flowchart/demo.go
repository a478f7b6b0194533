// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import fc "github.com/gogpu/flowchart"

// demoScene is a small "load and render" flow that uses every shape
// variant. It fits the default 800x600 chart at the default gap.
func demoScene() []fc.Shape {
	label := func(x, y float64, s string, extra ...fc.Attr) *fc.Text {
		attrs := append([]fc.Attr{
			fc.At(x, y),
			fc.Content(s),
			fc.Font(0.4, ""),
			fc.Align(fc.AlignCenter, fc.AlignMiddle),
		}, extra...)
		return fc.NewText(attrs...)
	}

	return []fc.Shape{
		fc.NewRect(fc.At(6, 0.5), fc.Size(4, 1), fc.Radius(0.5),
			fc.Filled(true), fc.FillColor("#c8e6c9")),
		label(8, 1, "Start"),
		fc.NewArrow(fc.Points(fc.Pt(8, 1.5), fc.Pt(8, 2.5))),

		fc.NewRect(fc.At(6, 2.5), fc.Size(4, 1.2),
			fc.Filled(true), fc.FillColor("lightblue")),
		label(8, 3.1, "Load configuration file", fc.MaxWidth(3.6)),
		fc.NewArrow(fc.Points(fc.Pt(8, 3.7), fc.Pt(8, 4.8))),

		fc.NewRhombus(fc.At(6, 4.8), fc.Size(4, 2),
			fc.Filled(true), fc.FillColor("lightyellow")),
		label(8, 5.8, "Valid?"),

		fc.NewArrow(fc.Points(fc.Pt(8, 6.8), fc.Pt(8, 8))),
		label(8.2, 7.3, "yes", fc.Font(0.3, ""), fc.Align(fc.AlignLeft, fc.AlignMiddle)),

		fc.NewArrow(
			fc.Points(fc.Pt(10, 5.8), fc.Pt(12.5, 5.8), fc.Pt(12.5, 3.1), fc.Pt(10, 3.1)),
			fc.Color("firebrick"),
			fc.Head(fc.HeadColor("firebrick"), fc.HeadLength(0.3)),
		),
		label(10.3, 5.7, "no", fc.Font(0.3, ""), fc.Align(fc.AlignLeft, fc.AlignBottom), fc.Color("firebrick")),

		fc.NewRect(fc.At(6, 8), fc.Size(4, 1.2),
			fc.CornerRadii(fc.Corners{TopLeft: 0.4, BottomRight: 0.4}),
			fc.Filled(true), fc.FillColor("lavender"), fc.LineWidth(0.08)),
		label(8, 8.6, "Render"),
		fc.NewArrow(fc.Points(fc.Pt(8, 9.2), fc.Pt(8, 10.2))),

		fc.NewCircle(fc.At(8, 10.7), fc.Radius(0.5),
			fc.Filled(true), fc.FillColor("salmon")),
		label(8, 10.7, "End", fc.Font(0.3, "")),

		fc.NewArrow(fc.Points(fc.Pt(1, 3), fc.Pt(4, 3)), fc.TwoHead(true),
			fc.Head(fc.HeadTheta(20))),
		label(2.5, 3.4, "two heads", fc.Font(0.3, "")),
		fc.NewArrow(fc.Points(fc.Pt(1, 5), fc.Pt(4, 5)), fc.Arrowhead(false),
			fc.LineWidth(0.03), fc.Color("dimgray")),
		label(2.5, 5.4, "plain line", fc.Font(0.3, "")),
	}
}
