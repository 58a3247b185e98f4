package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/paulmach/orb/geojson"
	"github.com/tdewolff/argp"
	"github.com/tdewolff/canvas"
	"github.com/tdewolff/minify/v2"
	minjson "github.com/tdewolff/minify/v2/json"
	"github.com/tdewolff/weave"
)

type Triangular struct {
	Width   float64 `short:"w" default:"1.0" desc:"Ribbon width"`
	Spacing float64 `short:"s" default:"2.0" desc:"Spacing between parallel ribbons"`
	Margin  float64 `short:"m" default:"0.0" desc:"Inward ribbon margin"`
	Labels  string  `short:"l" default:"a,b,c" desc:"Three comma-separated ribbon labels"`
	Tile    string  `short:"t" default:"" desc:"Tessellate over rectangle minx,miny,maxx,maxy"`
	Compact bool    `short:"c" desc:"Minify the GeoJSON output"`
	Output  string  `short:"o" default:"" desc:"Output file (default stdout)"`
}

type Orthogonal struct {
	HWidth   float64 `default:"1.0" desc:"Horizontal ribbon width"`
	HSpacing float64 `default:"1.5" desc:"Horizontal ribbon spacing"`
	VWidth   float64 `default:"1.0" desc:"Vertical ribbon width"`
	VSpacing float64 `default:"1.5" desc:"Vertical ribbon spacing"`
	Margin   float64 `short:"m" default:"0.0" desc:"Inward ribbon margin"`
	HLabels  string  `default:"h" desc:"Comma-separated horizontal row labels"`
	VLabels  string  `default:"v" desc:"Comma-separated vertical column labels"`
	Tile     string  `short:"t" default:"" desc:"Tessellate over rectangle minx,miny,maxx,maxy"`
	Compact  bool    `short:"c" desc:"Minify the GeoJSON output"`
	Output   string  `short:"o" default:"" desc:"Output file (default stdout)"`
}

func main() {
	root := argp.New("weave pattern generator by Taco de Wolff")
	root.AddCmd(&Triangular{}, "tri", "Generate a triangular diamond weave")
	root.AddCmd(&Orthogonal{}, "ortho", "Generate an orthogonal weave")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Triangular) Run() error {
	labels := strings.Split(cmd.Labels, ",")
	if len(labels) != 3 {
		return fmt.Errorf("expected three ribbon labels: %v", cmd.Labels)
	}

	w, err := weave.NewTriangularWeave(cmd.Width, cmd.Spacing, cmd.Margin, [3]string{labels[0], labels[1], labels[2]})
	if err != nil {
		return err
	}
	return output(w.Cell(), cmd.Tile, cmd.Output, cmd.Compact)
}

func (cmd *Orthogonal) Run() error {
	w, err := weave.NewOrthogonalWeave(cmd.HWidth, cmd.HSpacing, cmd.VWidth, cmd.VSpacing, cmd.Margin,
		strings.Split(cmd.HLabels, ","), strings.Split(cmd.VLabels, ","))
	if err != nil {
		return err
	}
	return output(w.Cell(), cmd.Tile, cmd.Output, cmd.Compact)
}

// output writes the cell as GeoJSON, tessellated over the tile rectangle when
// one is given.
func output(cell weave.PrimitiveCell, tile, file string, compact bool) error {
	var collection *geojson.FeatureCollection
	if tile != "" {
		rect, err := parseRect(tile)
		if err != nil {
			return err
		}
		tessellation, err := weave.Tessellate(cell, rect)
		if err != nil {
			return err
		}
		collection = tessellation.GeoJSON()
	} else {
		collection = cell.GeoJSON()
	}

	data, err := json.MarshalIndent(collection, "", "  ")
	if err != nil {
		return err
	}
	if compact {
		m := minify.New()
		m.AddFunc("application/json", minjson.Minify)
		if data, err = m.Bytes("application/json", data); err != nil {
			return err
		}
	}
	data = append(data, '\n')

	if file == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(file, data, 0644)
}

func parseRect(s string) (canvas.Rect, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return canvas.Rect{}, fmt.Errorf("expected rectangle as minx,miny,maxx,maxy: %v", s)
	}
	vals := [4]float64{}
	for i, part := range parts {
		val, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return canvas.Rect{}, fmt.Errorf("invalid rectangle coordinate: %v", part)
		}
		vals[i] = val
	}
	return canvas.Rect{X0: vals[0], Y0: vals[1], X1: vals[2], Y1: vals[3]}, nil
}
