package tint

import (
	"fmt"
	"html/template"
	"os"

	"github.com/pkg/errors"
)

// paletteTemplate is deliberately plain; the output is a reference
// sheet, not a web page
const paletteTemplate = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>{{.Title}}</title>
<style>
body { font-family: monospace; background: #fff; color: #222; }
table { border-collapse: collapse; }
td, th { padding: 4px 10px; text-align: left; }
td.sample { width: 80px; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<table>
<tr><th></th><th>name</th><th>hex</th><th>L</th><th>A</th><th>B</th><th>hue</th><th>chroma</th><th>sat</th></tr>
{{range .Rows}}<tr>
<td class="sample" style="background:{{.Hex}}"></td>
<td>{{.Name}}</td><td>{{.Hex}}</td>
<td>{{.L}}</td><td>{{.A}}</td><td>{{.B}}</td>
<td>{{.Hue}}</td><td>{{.Chroma}}</td><td>{{.Saturation}}</td>
</tr>
{{end}}</table>
</body>
</html>
`

// paletteRow is one swatch formatted for the template
type paletteRow struct {
	Name       string
	Hex        string
	L, A, B    string
	Hue        string
	Chroma     string
	Saturation string
}

// WritePaletteHTML writes an HTML preview sheet of the given swatches.
// The order given is the order rendered (sort first if you care).
func WritePaletteHTML(fpath, title string, in []*Swatch) error {
	tmpl, err := template.New("palette").Parse(paletteTemplate)
	if err != nil {
		return errors.Wrap(err, "failed to parse palette template")
	}

	rows := make([]paletteRow, len(in))
	for i, sw := range in {
		c := sw.Lab.Color()
		rows[i] = paletteRow{
			Name:       sw.Name,
			Hex:        fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B),
			L:          fmt.Sprintf("%.4f", sw.Lab.L),
			A:          fmt.Sprintf("%+.4f", sw.Lab.A),
			B:          fmt.Sprintf("%+.4f", sw.Lab.B),
			Hue:        fmt.Sprintf("%.1f", sw.Hue),
			Chroma:     fmt.Sprintf("%.4f", sw.Chroma),
			Saturation: fmt.Sprintf("%.3f", sw.Saturation),
		}
	}

	f, err := os.Create(fpath)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", fpath)
	}
	defer f.Close()

	data := struct {
		Title string
		Rows  []paletteRow
	}{Title: title, Rows: rows}

	return errors.Wrapf(tmpl.Execute(f, data), "failed to write %s", fpath)
}
