package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/strucware/strut/internal/model"
)

// Plane selects the projection plane for a frame diagram.
type Plane int

const (
	PlaneXY Plane = iota // elevation view
	PlaneXZ              // plan view
)

func (p Plane) String() string {
	switch p {
	case PlaneXY:
		return "elevation (X-Y)"
	case PlaneXZ:
		return "plan (X-Z)"
	default:
		return "unknown"
	}
}

func project(n model.Node, plane Plane) plotter.XY {
	if plane == PlaneXZ {
		return plotter.XY{X: n.X, Y: n.Z}
	}
	return plotter.XY{X: n.X, Y: n.Y}
}

// ExportFrameDiagram draws the structure projected onto the given plane:
// members as lines, nodes as dots, supports as triangles. The output format
// follows the file extension; unknown extensions fall back to PNG.
func ExportFrameDiagram(st *model.Structure, plane Plane, filename string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Frame geometry, %s", plane)
	p.X.Label.Text = "X"
	if plane == PlaneXZ {
		p.Y.Label.Text = "Z"
	} else {
		p.Y.Label.Text = "Y"
	}

	for _, m := range st.Members {
		start, ok := st.NodeByID(m.StartNode)
		if !ok {
			continue
		}
		end, ok := st.NodeByID(m.EndNode)
		if !ok {
			continue
		}

		line, err := plotter.NewLine(plotter.XYs{project(start, plane), project(end, plane)})
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Color = color.Black
		p.Add(line)
	}

	if len(st.Nodes) > 0 {
		pts := make(plotter.XYs, 0, len(st.Nodes))
		for _, n := range st.Nodes {
			pts = append(pts, project(n, plane))
		}
		nodes, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		nodes.GlyphStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
		nodes.GlyphStyle.Radius = vg.Points(2.5)
		nodes.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(nodes)
	}

	if len(st.Supports) > 0 {
		pts := make(plotter.XYs, 0, len(st.Supports))
		for _, sp := range st.Supports {
			if n, ok := st.NodeByID(sp.NodeID); ok {
				pts = append(pts, project(n, plane))
			}
		}
		if len(pts) > 0 {
			supports, err := plotter.NewScatter(pts)
			if err != nil {
				return err
			}
			supports.GlyphStyle.Color = color.RGBA{R: 178, G: 34, B: 34, A: 255}
			supports.GlyphStyle.Radius = vg.Points(5)
			supports.GlyphStyle.Shape = draw.TriangleGlyph{}
			p.Add(supports)
		}
	}

	width := 8 * vg.Inch
	height := 6 * vg.Inch

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
