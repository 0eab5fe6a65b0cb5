// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package obj imports Wavefront OBJ meshes into the wire3d primitive
// encoding.
//
// The importer is the validation boundary of the pipeline: it guarantees
// that every face header in the produced index buffer is accurate and
// every position and normal index is in range, because the rasterizer
// itself performs no bounds checking. Malformed records fail with a parse
// error naming the offending line.
//
// Supported statements: v, vn, and f with the "i", "i/t", "i//n", and
// "i/t/n" reference forms, including negative (relative) indices. Texture
// coordinates and all other statements are ignored.
package obj

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/wire3d"
	"github.com/gogpu/wire3d/math3d"
)

// Load parses an OBJ mesh from r. The returned primitive has the reserved
// fallback values in slot 0 of both lists (the origin point and the up
// normal), so 1-based OBJ indices map directly onto the buffers. One
// normal is derived per face: the stated normal of the face's first
// vertex when present, otherwise a normal computed from the face winding;
// faces too degenerate to compute one reference the fallback. Color is
// left zero for the caller to fill in.
func Load(r io.Reader) (*wire3d.Primitive, error) {
	p := &parser{
		prim: &wire3d.Primitive{
			Positions: []math3d.Vec3{{}},
			Normals:   []math3d.Vec3{math3d.Up()},
		},
		vertexNormals: []math3d.Vec3{math3d.Up()},
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		p.line++
		if err := p.statement(scanner.Text()); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("obj: read failed: %w", err)
	}

	wire3d.Logger().Info("obj: mesh loaded",
		"positions", len(p.prim.Positions)-1,
		"faces", p.faces)
	return p.prim, nil
}

// LoadFile parses an OBJ mesh from a file.
func LoadFile(path string) (*wire3d.Primitive, error) {
	f, err := os.Open(path) //nolint:gosec // path is caller-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("obj: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	return Load(f)
}

type parser struct {
	prim          *wire3d.Primitive
	vertexNormals []math3d.Vec3
	line          int
	faces         int
}

func (p *parser) statement(raw string) error {
	fields := strings.Fields(raw)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}
	switch fields[0] {
	case "v":
		v, err := p.parseVec3(fields[1:])
		if err != nil {
			return err
		}
		p.prim.Positions = append(p.prim.Positions, v)
	case "vn":
		v, err := p.parseVec3(fields[1:])
		if err != nil {
			return err
		}
		p.vertexNormals = append(p.vertexNormals, v)
	case "f":
		return p.parseFace(fields[1:])
	}
	// vt, g, o, s, usemtl, mtllib and friends carry nothing the wireframe
	// pipeline consumes.
	return nil
}

func (p *parser) parseVec3(fields []string) (math3d.Vec3, error) {
	if len(fields) != 3 {
		return math3d.Vec3{}, fmt.Errorf("obj: line %d: expected 3 coordinates, got %d", p.line, len(fields))
	}
	var out [3]float32
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return math3d.Vec3{}, fmt.Errorf("obj: line %d: invalid coordinate %q: %w", p.line, f, err)
		}
		out[i] = float32(v)
	}
	return math3d.V3(out[0], out[1], out[2]), nil
}

func (p *parser) parseFace(fields []string) error {
	if len(fields) < 3 {
		return fmt.Errorf("obj: line %d: face has %d vertices, need at least 3", p.line, len(fields))
	}

	positions := make([]uint32, 0, len(fields))
	normalIndex := 0
	for i, token := range fields {
		pos, norm, err := p.parseFaceVertex(token)
		if err != nil {
			return err
		}
		positions = append(positions, pos)
		if i == 0 && norm != 0 {
			normalIndex = p.appendFaceNormal(p.vertexNormals[norm])
		}
	}
	if normalIndex == 0 {
		normalIndex = p.appendFaceNormal(p.windingNormal(positions))
	}

	p.prim.Indices = wire3d.EncodeFace(p.prim.Indices, uint32(normalIndex), positions...)
	p.faces++
	return nil
}

// parseFaceVertex resolves one "i", "i/t", "i//n", or "i/t/n" reference
// into validated position and normal indices. A zero normal index means
// the vertex stated none.
func (p *parser) parseFaceVertex(token string) (pos uint32, norm int, err error) {
	parts := strings.Split(token, "/")
	if len(parts) > 3 {
		return 0, 0, fmt.Errorf("obj: line %d: malformed face vertex %q", p.line, token)
	}

	posIdx, err := p.resolveIndex(parts[0], len(p.prim.Positions))
	if err != nil {
		return 0, 0, fmt.Errorf("obj: line %d: face vertex %q: %w", p.line, token, err)
	}

	if len(parts) == 3 && parts[2] != "" {
		norm, err = p.resolveIndex(parts[2], len(p.vertexNormals))
		if err != nil {
			return 0, 0, fmt.Errorf("obj: line %d: face normal %q: %w", p.line, token, err)
		}
	}
	return uint32(posIdx), norm, nil
}

// resolveIndex converts a 1-based or negative (relative) OBJ index into
// an index into a buffer whose slot 0 is the reserved fallback.
func (p *parser) resolveIndex(field string, bufLen int) (int, error) {
	idx, err := strconv.Atoi(field)
	if err != nil {
		return 0, fmt.Errorf("invalid index %q: %w", field, err)
	}
	if idx < 0 {
		idx += bufLen
	}
	if idx < 1 || idx >= bufLen {
		return 0, fmt.Errorf("index %s out of range (have %d)", field, bufLen-1)
	}
	return idx, nil
}

// appendFaceNormal adds a normal to the per-face normal list and returns
// its index. Degenerate normals collapse onto the fallback slot.
func (p *parser) appendFaceNormal(n math3d.Vec3) int {
	if n.Length() == 0 {
		return 0
	}
	p.prim.Normals = append(p.prim.Normals, n)
	return len(p.prim.Normals) - 1
}

// windingNormal derives a face normal from the first three vertices of a
// face that stated no vn references.
func (p *parser) windingNormal(positions []uint32) math3d.Vec3 {
	a := p.prim.Positions[positions[0]]
	b := p.prim.Positions[positions[1]]
	c := p.prim.Positions[positions[2]]
	return b.Sub(a).Cross(c.Sub(a)).Normalize()
}
