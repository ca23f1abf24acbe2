// Package report renders a static HTML summary of one run: the final
// score, then the before and after wall grids one below the other. It is the
// non-goal-trimmed descendant of the teacher's live dashboard — spec.md
// §1 excludes online/reactive behavior, so there is no websocket, no
// channel fan-in, and no per-frame update; Convert/WriteReport run once,
// after the core has already finished.
//
// Grounded on tabular/server/cell_views (the Cell view-model and its
// Convert function) and tabular/server/root_view.go (the inline
// html/template string, its func-map, and the row/column nested-loop
// layout), stripped of fastview.ViewComponent and its update channel.
package report

import (
	"fmt"
	"html/template"
	"io"

	"github.com/niceyeti/groupmove/grid"
	"github.com/niceyeti/groupmove/model"
)

// CellViewModel is one rendered grid cell: its coordinates, which of its
// four edges are walled, and whether that wall was present in the
// original input (rendered with a different fill so a reader can tell
// the optimizer's additions from the given layout).
type CellViewModel struct {
	X, Y                                   int
	WallUp, WallDown, WallLeft, WallRight  bool
	OrigUp, OrigDown, OrigLeft, OrigRight  bool
}

// Convert builds the view-model grid for one wall Store.
func Convert(s *grid.Store) [][]CellViewModel {
	n := model.N
	cells := make([][]CellViewModel, n)
	for y := 0; y < n; y++ {
		cells[y] = make([]CellViewModel, n)
		for x := 0; x < n; x++ {
			cells[y][x] = CellViewModel{
				X:         x,
				Y:         y,
				WallUp:    s.WallH[y][x],
				WallDown:  s.WallH[y+1][x],
				WallLeft:  s.WallV[y][x],
				WallRight: s.WallV[y][x+1],
				OrigUp:    s.OWallH[y][x],
				OrigDown:  s.OWallH[y+1][x],
				OrigLeft:  s.OWallV[y][x],
				OrigRight: s.OWallV[y][x+1],
			}
		}
	}
	return cells
}

// reportData is the top-level template parameter.
type reportData struct {
	Before [][]CellViewModel
	After  [][]CellViewModel
	Score  int
}

const reportTemplate = `
{{ define "report" }}
<!DOCTYPE html>
<html>
<head><title>groupmove run report</title>
<style>
  table.grid { border-collapse: collapse; }
  table.grid td { width: 10px; height: 10px; padding: 0; }
  .wall-orig { background: #333; }
  .wall-added { background: #c33; }
</style>
</head>
<body>
<h1>score: {{ .Score }}</h1>
<h2>before</h2>
{{ template "wallgrid" .Before }}
<h2>after</h2>
{{ template "wallgrid" .After }}
</body>
</html>
{{ end }}

{{ define "wallgrid" }}
<table class="grid">
{{ range $row := . }}
  <tr>
  {{ range $cell := $row }}
    <td class="{{ if $cell.WallRight }}{{ if $cell.OrigRight }}wall-orig{{ else }}wall-added{{ end }}{{ end }}"></td>
  {{ end }}
  </tr>
{{ end }}
</table>
{{ end }}
`

// WriteReport renders before, after, and score as a single static HTML
// page to w.
func WriteReport(w io.Writer, before, after *grid.Store, score int) error {
	tmpl, err := template.New("report").Funcs(template.FuncMap{
		"add": func(i, j int) int { return i + j },
	}).Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("report: parsing template: %w", err)
	}

	data := reportData{
		Before: Convert(before),
		After:  Convert(after),
		Score:  score,
	}
	if err := tmpl.ExecuteTemplate(w, "report", data); err != nil {
		return fmt.Errorf("report: rendering: %w", err)
	}
	return nil
}
