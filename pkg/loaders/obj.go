package loaders

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

// OBJData contains the geometry read from a line-oriented vertex/face source
type OBJData struct {
	Positions []core.Vec3 // One entry per "v" line
	Indices   []int       // Zero-based, three per "f" line
	Normals   []core.Vec3 // Flat normal per triangle
}

// TriangleCount returns the number of faces read
func (d *OBJData) TriangleCount() int {
	return len(d.Indices) / 3
}

// Mesh builds a triangle mesh from the loaded data
func (d *OBJData) Mesh(cullMode geometry.CullMode, materialIndex int) (*geometry.TriangleMesh, error) {
	return geometry.NewTriangleMesh(d.Positions, d.Indices, d.Normals, cullMode, materialIndex)
}

// LoadOBJ opens and parses a mesh file
func LoadOBJ(filename string) (*OBJData, error) {
	startTime := time.Now()

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open OBJ file: %w", err)
	}
	defer file.Close()

	data, err := ParseOBJ(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	core.Logger().Debug("loaded OBJ mesh",
		slog.String("file", filename),
		slog.Int("vertices", len(data.Positions)),
		slog.Int("triangles", data.TriangleCount()),
		slog.Duration("elapsed", time.Since(startTime)))

	return data, nil
}

// ParseOBJ reads "v x y z" positions and "f a b c" one-based triangle indices.
// Every other line, including comments, normals and texture coordinates, is
// skipped. Indices are not range-checked.
func ParseOBJ(r io.Reader) (*OBJData, error) {
	data := &OBJData{}

	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			position, err := parseVertex(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNumber, err)
			}
			data.Positions = append(data.Positions, position)
		case "f":
			indices, err := parseFace(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNumber, err)
			}
			data.Indices = append(data.Indices, indices[:]...)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read OBJ data: %w", err)
	}

	data.Normals = make([]core.Vec3, 0, data.TriangleCount())
	degenerate := 0
	for i := 0; i+2 < len(data.Indices); i += 3 {
		normal := geometry.FlatNormal(
			data.Positions[data.Indices[i]],
			data.Positions[data.Indices[i+1]],
			data.Positions[data.Indices[i+2]])
		if !normal.IsFinite() {
			degenerate++
		}
		data.Normals = append(data.Normals, normal)
	}

	if degenerate > 0 {
		core.Logger().Warn("mesh has zero-area triangles with non-finite normals",
			slog.Int("count", degenerate))
	}

	return data, nil
}

func parseVertex(fields []string) (core.Vec3, error) {
	if len(fields) < 3 {
		return core.Vec3{}, fmt.Errorf("vertex needs 3 coordinates, got %d", len(fields))
	}

	var xyz [3]float64
	for i := range xyz {
		value, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return core.Vec3{}, fmt.Errorf("invalid vertex coordinate %q: %w", fields[i], err)
		}
		xyz[i] = value
	}
	return core.NewVec3(xyz[0], xyz[1], xyz[2]), nil
}

// parseFace converts the first three one-based indices to zero-based ones.
// For "a/b/c" tokens only the position index before the first slash is used.
func parseFace(fields []string) ([3]int, error) {
	var indices [3]int
	if len(fields) < 3 {
		return indices, fmt.Errorf("face needs 3 indices, got %d", len(fields))
	}

	for i := range indices {
		token, _, _ := strings.Cut(fields[i], "/")
		value, err := strconv.Atoi(token)
		if err != nil {
			return indices, fmt.Errorf("invalid face index %q: %w", fields[i], err)
		}
		indices[i] = value - 1
	}
	return indices, nil
}
