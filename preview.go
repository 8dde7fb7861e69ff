package tint

import (
	"image"

	"github.com/fogleman/gg"

	"github.com/voidshard/tint/poisson"
)

// RenderSwatches draws swatches as a grid of filled squares, perRow
// per row, each `cell` pixels on a side. Use with SortByHue /
// SortByLightness for sheets that read sensibly.
func RenderSwatches(in []*Swatch, perRow, cell int) image.Image {
	if perRow < 1 {
		perRow = 16
	}
	if cell < 1 {
		cell = 24
	}
	rows := (len(in) + perRow - 1) / perRow
	if rows < 1 {
		rows = 1
	}

	ctx := gg.NewContext(perRow*cell, rows*cell)
	ctx.SetRGB(1, 1, 1)
	ctx.Clear()

	for i, sw := range in {
		x := float64((i % perRow) * cell)
		y := float64((i / perRow) * cell)
		ctx.SetColor(sw.Lab.Color())
		ctx.DrawRectangle(x, y, float64(cell), float64(cell))
		ctx.Fill()
	}

	return ctx.Image()
}

// SaveSwatches renders a swatch sheet & writes it to disk as PNG
func SaveSwatches(fpath string, in []*Swatch, perRow, cell int) error {
	return savePNG(fpath, RenderSwatches(in, perRow, cell))
}

// RenderStamp plots sampler output; a dot per accepted point (colored
// by acceptance order around the hue circle) with the separation
// radius ringed in light grey, all scaled up by `scale` pixels per
// stamp cell.
func RenderStamp(stamp [][]int, scale int, minimumDistance float64) image.Image {
	if scale < 1 {
		scale = 1
	}
	w := len(stamp) * scale
	h := scale
	if len(stamp) > 0 {
		h = len(stamp[0]) * scale
	}

	ctx := gg.NewContext(w, h)
	ctx.SetRGB(1, 1, 1)
	ctx.Clear()

	points := poisson.Points(stamp)

	// rings first so dots draw over them
	ctx.SetRGBA(0, 0, 0, 0.15)
	ctx.SetLineWidth(1)
	for _, p := range points {
		ctx.DrawCircle((p.X+0.5)*float64(scale), (p.Y+0.5)*float64(scale), minimumDistance*float64(scale)/2)
		ctx.Stroke()
	}

	for i, p := range points {
		hue := float64(i*47%360) // big-ish prime step keeps neighbours distinct
		ctx.SetColor(FromLCh(0.55, 0.12, hue, 1).ClampChroma().Color())
		ctx.DrawCircle((p.X+0.5)*float64(scale), (p.Y+0.5)*float64(scale), float64(scale)/3+1)
		ctx.Fill()
	}

	return ctx.Image()
}

// SaveStamp renders sampler output & writes it to disk as PNG
func SaveStamp(fpath string, stamp [][]int, scale int, minimumDistance float64) error {
	return savePNG(fpath, RenderStamp(stamp, scale, minimumDistance))
}
