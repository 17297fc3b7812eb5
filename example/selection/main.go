package main

import (
	"fmt"
	"os"
	"slices"

	"deedles.dev/xiter"
	"github.com/akmonengine/chisel"
	"github.com/akmonengine/chisel/block"
	"github.com/akmonengine/chisel/deform"
	"github.com/akmonengine/chisel/region"
	"github.com/akmonengine/chisel/solid"
)

func main() {
	session := chisel.NewSession()
	session.Workers = 4

	session.Events.Subscribe(chisel.EVENT_VERTEX_ADDED, func(event chisel.Event) {
		fmt.Printf("  + vertex %v\n", event.(chisel.VertexAddedEvent).Vertex)
	})
	session.Events.Subscribe(chisel.EVENT_VERTEX_DEFERRED, func(event chisel.Event) {
		fmt.Printf("  ~ deferred %v (coplanar for now)\n", event.(chisel.VertexDeferredEvent).Vertex)
	})

	fmt.Println("Growing a convex selection:")
	for _, v := range []block.Vector3{
		{X: 0, Y: 0, Z: 0},
		{X: 8, Y: 0, Z: 0},
		{X: 8, Y: 0, Z: 8},
		{X: 0, Y: 0, Z: 8}, // coplanar with the first three, deferred
		{X: 4, Y: 10, Z: 4},
	} {
		session.SelectVertex(v)
	}
	session.Events.Flush()

	selection, err := session.Selection()
	if err != nil {
		fail(err)
	}

	hull := selection.(*region.ConvexRegion)
	fmt.Printf("\nHull: %d vertices, %d faces, volume %.1f, surface %.1f\n",
		len(hull.Vertices()), len(hull.Triangles()), hull.HullVolume(), hull.HullSurfaceArea())

	fmt.Println("\nContainment:")
	for _, p := range []block.Vector3{{X: 4, Y: 2, Z: 4}, {X: 0, Y: 9, Z: 0}} {
		fmt.Printf("  contains %v: %v\n", p, selection.Contains(p))
	}

	fmt.Println("\nShifting by (16, 0, 0):")
	if err := session.ShiftSelection(block.At(16, 0, 0)); err != nil {
		fail(err)
	}
	fmt.Printf("  new bounding box: %v .. %v\n", selection.MinimumPoint(), selection.MaximumPoint())

	fmt.Println("\nChunk columns under the selection:")
	index, err := session.IndexSelection()
	if err != nil {
		fail(err)
	}
	index.ForEachChunk(func(chunk block.Vector2, points []block.Vector3) {
		fmt.Printf("  chunk %v: %d blocks\n", chunk, len(points))
	})

	fmt.Println("\nDeforming (mirror about the box center):")
	d := deform.Deform{Expr: "(vec3 (- 0.0 x) y z)", Mode: deform.ModeUnitCube, Workers: 4}
	mappings, err := d.Apply(selection)
	if err != nil {
		fail(err)
	}
	for i, m := range xiter.Enumerate(slices.Values(mappings[:min(3, len(mappings))])) {
		fmt.Printf("  mapping %d: %v <- %v\n", i, m.To, m.From)
	}
	fmt.Printf("  (%d mappings total)\n", len(mappings))

	fmt.Println("\nWriting hull.stl:")
	m, err := solid.MeshOf(selection, 0)
	if err != nil {
		fail(err)
	}
	f, err := os.Create("hull.stl")
	if err != nil {
		fail(err)
	}
	defer f.Close()
	if err := m.WriteSTL(f); err != nil {
		fail(err)
	}
	fmt.Printf("  %d triangles written\n", m.TriangleCount())
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
