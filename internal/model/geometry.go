package model

import (
	"math"
	"sort"
)

// FloorTolerance groups node elevations into one floor level when they are
// within this distance of an existing level. Renderers matching nodes back
// to levels must use the same window.
const FloorTolerance = 0.5

// horizontalSlope is the |dY|/length ratio below which a member counts as
// horizontal for span analysis.
const horizontalSlope = 0.1

// BoundingBox is the axis-aligned extent of a structure.
type BoundingBox struct {
	MinX, MaxX float64
	MinY, MaxY float64
	MinZ, MaxZ float64
}

// Width, Height and Depth are the box extents along X, Y and Z.
func (b BoundingBox) Width() float64  { return b.MaxX - b.MinX }
func (b BoundingBox) Height() float64 { return b.MaxY - b.MinY }
func (b BoundingBox) Depth() float64  { return b.MaxZ - b.MinZ }

// GeometrySummary aggregates the geometric measures downstream classifiers
// consume: overall extents, floor levels, span statistics and connectivity.
type GeometrySummary struct {
	Bounds      BoundingBox
	FloorLevels []float64 // distinct elevations, ascending
	FloorCount  int
	MaxSpan     float64
	TypicalSpan float64 // median horizontal member length
}

// Bounds computes the bounding box over all nodes. The zero box is returned
// for an empty structure.
func (s *Structure) Bounds() BoundingBox {
	if len(s.Nodes) == 0 {
		return BoundingBox{}
	}
	first := s.Nodes[0]
	b := BoundingBox{
		MinX: first.X, MaxX: first.X,
		MinY: first.Y, MaxY: first.Y,
		MinZ: first.Z, MaxZ: first.Z,
	}
	for _, n := range s.Nodes[1:] {
		b.MinX = math.Min(b.MinX, n.X)
		b.MaxX = math.Max(b.MaxX, n.X)
		b.MinY = math.Min(b.MinY, n.Y)
		b.MaxY = math.Max(b.MaxY, n.Y)
		b.MinZ = math.Min(b.MinZ, n.Z)
		b.MaxZ = math.Max(b.MaxZ, n.Z)
	}
	return b
}

// FloorLevels clusters node elevations into distinct levels using a fixed
// tolerance and returns them in ascending order.
func (s *Structure) FloorLevels() []float64 {
	elevations := make([]float64, 0, len(s.Nodes))
	for _, n := range s.Nodes {
		elevations = append(elevations, n.Y)
	}
	sort.Float64s(elevations)

	var levels []float64
	for _, y := range elevations {
		if len(levels) == 0 || y-levels[len(levels)-1] > FloorTolerance {
			levels = append(levels, y)
		}
	}
	return levels
}

// MemberLength returns the length of a member, or 0 when either endpoint is
// missing from the node collection.
func (s *Structure) MemberLength(m Member) float64 {
	start, ok := s.NodeByID(m.StartNode)
	if !ok {
		return 0
	}
	end, ok := s.NodeByID(m.EndNode)
	if !ok {
		return 0
	}
	dx := end.X - start.X
	dy := end.Y - start.Y
	dz := end.Z - start.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// ConnectedMembers counts members incident to the given node.
func (s *Structure) ConnectedMembers(nodeID int) int {
	count := 0
	for _, m := range s.Members {
		if m.StartNode == nodeID || m.EndNode == nodeID {
			count++
		}
	}
	return count
}

// horizontalSpans collects the lengths of members that are close to
// horizontal, the ones relevant for span statistics.
func (s *Structure) horizontalSpans() []float64 {
	var spans []float64
	for _, m := range s.Members {
		length := s.MemberLength(m)
		if length == 0 {
			continue
		}
		start, _ := s.NodeByID(m.StartNode)
		end, _ := s.NodeByID(m.EndNode)
		if math.Abs(end.Y-start.Y)/length <= horizontalSlope {
			spans = append(spans, length)
		}
	}
	return spans
}

// Summarize computes the full geometry summary in one pass over the model.
func (s *Structure) Summarize() GeometrySummary {
	levels := s.FloorLevels()
	spans := s.horizontalSpans()

	var maxSpan, typical float64
	if len(spans) > 0 {
		sort.Float64s(spans)
		maxSpan = spans[len(spans)-1]
		typical = spans[len(spans)/2]
	}

	return GeometrySummary{
		Bounds:      s.Bounds(),
		FloorLevels: levels,
		FloorCount:  len(levels),
		MaxSpan:     maxSpan,
		TypicalSpan: typical,
	}
}
