package stl

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/philipparndt/goprint/pkg/geometry"
)

// stlHeader defines the binary STL file header.
type stlHeader struct {
	Header [80]uint8
	Count  uint32
}

// stlTriangle is one binary STL record.
type stlTriangle struct {
	Normal    [3]float32
	Vertex1   [3]float32
	Vertex2   [3]float32
	Vertex3   [3]float32
	Attribute uint16
}

// Write encodes the model as binary STL.
func Write(w io.Writer, model *Model) error {
	bw := bufio.NewWriter(w)

	var header stlHeader
	copy(header.Header[:], model.Name)
	header.Count = uint32(len(model.Triangles))
	if err := binary.Write(bw, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, tri := range model.Triangles {
		n := tri.Normal
		if n.Length() == 0 {
			n = tri.CalculateNormal()
		}
		rec := stlTriangle{
			Normal:  narrow(n),
			Vertex1: narrow(tri.V1),
			Vertex2: narrow(tri.V2),
			Vertex3: narrow(tri.V3),
		}
		if err := binary.Write(bw, binary.LittleEndian, &rec); err != nil {
			return fmt.Errorf("failed to write triangle %d: %w", i, err)
		}
	}

	return bw.Flush()
}

// WriteFile writes the model to path as binary STL.
func WriteFile(path string, model *Model) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := Write(file, model); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func narrow(v geometry.Vector3) [3]float32 {
	return [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
}
