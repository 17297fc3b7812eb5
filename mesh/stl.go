package mesh

import (
	"encoding/binary"
	"fmt"
	"io"
)

// stlRecord is one 50-byte triangle record of a binary STL file.
type stlRecord struct {
	Normal [3]float32
	Verts  [3][3]float32
	Attr   uint16
}

// WriteSTL writes the mesh as binary STL: an 80-byte header, a uint32
// triangle count and one 50-byte record per triangle, all little-endian.
func (m *Mesh) WriteSTL(w io.Writer) error {
	var header [80]byte
	copy(header[:], m.Name)
	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("stl header: %w", err)
	}

	count := uint32(m.TriangleCount())
	if err := binary.Write(w, binary.LittleEndian, count); err != nil {
		return fmt.Errorf("stl triangle count: %w", err)
	}

	for i := 0; i < m.TriangleCount(); i++ {
		record := stlRecord{Normal: m.normal(i)}
		for j := 0; j < 3; j++ {
			idx := m.Indices[i*3+j]
			record.Verts[j] = [3]float32{
				m.Vertices[idx*3],
				m.Vertices[idx*3+1],
				m.Vertices[idx*3+2],
			}
		}
		if err := binary.Write(w, binary.LittleEndian, record); err != nil {
			return fmt.Errorf("stl triangle %d: %w", i, err)
		}
	}
	return nil
}

// WriteSTLASCII writes the mesh in the text STL dialect. Binary is what
// tools want; the text form exists for eyeballing small meshes.
func (m *Mesh) WriteSTLASCII(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "solid %s\n", m.Name); err != nil {
		return err
	}

	for i := 0; i < m.TriangleCount(); i++ {
		n := m.normal(i)
		if _, err := fmt.Fprintf(w, "facet normal %g %g %g\n  outer loop\n", n[0], n[1], n[2]); err != nil {
			return err
		}
		for j := 0; j < 3; j++ {
			idx := m.Indices[i*3+j]
			_, err := fmt.Fprintf(w, "    vertex %g %g %g\n",
				m.Vertices[idx*3], m.Vertices[idx*3+1], m.Vertices[idx*3+2])
			if err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(w, "  endloop\nendfacet\n"); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "endsolid %s\n", m.Name)
	return err
}
