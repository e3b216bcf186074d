package urdf

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"go.uber.org/zap"

	"github.com/Faultbox/urdfkit/pkg/math"
	"github.com/Faultbox/urdfkit/pkg/xmldoc"
)

// Geometry decoding errors.
var (
	ErrNoGeometry       = errors.New("visual/collision requires a geometry element")
	ErrNoShape          = errors.New("geometry element contains no shape child")
	ErrUnknownShape     = errors.New("unknown geometry shape type")
	ErrMissingDimension = errors.New("shape is missing a required dimension attribute")
	ErrEmptyMeshFile    = errors.New("mesh filename is empty")
	ErrMeshNotFound     = errors.New("mesh file does not exist")
)

// GeometryType enumerates the supported shape variants.
type GeometryType int

const (
	GeomSphere GeometryType = iota
	GeomBox
	GeomCylinder
	GeomCapsule
	GeomMesh
	GeomPlane
)

// String returns the schema tag of the geometry type.
func (t GeometryType) String() string {
	switch t {
	case GeomSphere:
		return "sphere"
	case GeomBox:
		return "box"
	case GeomCylinder:
		return "cylinder"
	case GeomCapsule:
		return "capsule"
	case GeomMesh:
		return "mesh"
	case GeomPlane:
		return "plane"
	default:
		return fmt.Sprintf("Unknown(%d)", int(t))
	}
}

// Geometry is a tagged shape variant. Only the fields for the active
// Type are meaningful. All linear dimensions are pre-multiplied by the
// model scale factor.
type Geometry struct {
	Type GeometryType

	SphereRadius float64

	BoxSize math.Vec3

	// Shared by cylinder and capsule
	CapsuleRadius float64
	CapsuleHeight float64

	// Capsule endpoint shorthand: a single "fromto" attribute carrying
	// both endpoints as six tokens.
	HasFromTo   bool
	CapsuleFrom math.Vec3
	CapsuleTo   math.Vec3

	MeshFile  string    // Resolved absolute path
	MeshScale math.Vec3 // Per-axis scale, globally scaled

	PlaneNormal math.Vec3

	// Inline material attached directly to a visual's geometry,
	// overriding the named registry lookup.
	HasLocalMaterial bool
	LocalMaterial    *Material
}

// AssetResolver checks mesh asset existence for a candidate filename
// relative to a base directory, returning the resolved path. The parser
// never reads asset contents.
type AssetResolver interface {
	Resolve(baseDir, filename string) (string, bool)
}

// DirResolver resolves assets directly against the filesystem relative
// to the document's directory. It is the default resolver.
type DirResolver struct{}

// Resolve joins filename onto baseDir and checks existence.
func (DirResolver) Resolve(baseDir, filename string) (string, bool) {
	path := filepath.Join(baseDir, filename)
	if _, err := os.Stat(path); err != nil {
		return "", false
	}
	return path, true
}

// parseGeometry decodes the shape child of a geometry element into one
// of the six shape variants.
func (p *Parser) parseGeometry(g xmldoc.Element) (Geometry, error) {
	var geom Geometry
	if g == nil {
		return geom, ErrNoGeometry
	}

	shape := g.FirstChild()
	if shape == nil {
		return geom, ErrNoShape
	}

	switch shape.Tag() {
	case "sphere":
		geom.Type = GeomSphere
		radius, ok := shape.Attr("radius")
		if !ok {
			return geom, fmt.Errorf("%w: sphere radius", ErrMissingDimension)
		}
		r, err := strconv.ParseFloat(radius, 64)
		if err != nil {
			return geom, fmt.Errorf("sphere radius: %w", err)
		}
		geom.SphereRadius = p.Scale * r

	case "box":
		geom.Type = GeomBox
		size, ok := shape.Attr("size")
		if !ok {
			return geom, fmt.Errorf("%w: box size", ErrMissingDimension)
		}
		// Malformed size leaves the zero vector, as with origin strings.
		v, _ := parseVector3(size, false)
		geom.BoxSize = v.Scale(p.Scale)

	case "cylinder", "capsule":
		if shape.Tag() == "cylinder" {
			geom.Type = GeomCylinder
		} else {
			geom.Type = GeomCapsule
		}
		if fromto, ok := shape.Attr("fromto"); ok && geom.Type == GeomCapsule {
			// Endpoint shorthand: "x1 y1 z1 x2 y2 z2". The endpoints are
			// the first and last three tokens.
			from, err := parseVector3(fromto, false)
			if err != nil {
				return geom, fmt.Errorf("capsule fromto: %w", err)
			}
			to, err := parseVector3(fromto, true)
			if err != nil {
				return geom, fmt.Errorf("capsule fromto: %w", err)
			}
			radius, ok := shape.Attr("radius")
			if !ok {
				return geom, fmt.Errorf("%w: capsule radius", ErrMissingDimension)
			}
			r, err := strconv.ParseFloat(radius, 64)
			if err != nil {
				return geom, fmt.Errorf("capsule radius: %w", err)
			}
			geom.HasFromTo = true
			geom.CapsuleFrom = from.Scale(p.Scale)
			geom.CapsuleTo = to.Scale(p.Scale)
			geom.CapsuleRadius = p.Scale * r
			geom.CapsuleHeight = geom.CapsuleTo.Sub(geom.CapsuleFrom).Length()
			return geom, nil
		}
		length, okL := shape.Attr("length")
		radius, okR := shape.Attr("radius")
		if !okL || !okR {
			return geom, fmt.Errorf("%w: %s requires length and radius", ErrMissingDimension, shape.Tag())
		}
		r, err := strconv.ParseFloat(radius, 64)
		if err != nil {
			return geom, fmt.Errorf("%s radius: %w", shape.Tag(), err)
		}
		h, err := strconv.ParseFloat(length, 64)
		if err != nil {
			return geom, fmt.Errorf("%s length: %w", shape.Tag(), err)
		}
		geom.CapsuleRadius = p.Scale * r
		geom.CapsuleHeight = p.Scale * h

	case "mesh":
		geom.Type = GeomMesh
		geom.MeshScale = math.Vec3{X: 1, Y: 1, Z: 1}

		fn, _ := shape.Attr("filename")

		if scale, ok := shape.Attr("scale"); ok {
			if v, err := parseVector3(scale, false); err == nil {
				geom.MeshScale = v
			} else if s, serr := strconv.ParseFloat(scale, 64); serr == nil && s != 0 {
				// Single-scalar scale is accepted and expanded uniformly.
				p.warn("mesh scale should be a 3-vector, expanding scalar",
					zap.String("scale", scale))
				geom.MeshScale = math.Vec3{X: s, Y: s, Z: s}
			}
		}
		geom.MeshScale = geom.MeshScale.Scale(p.Scale)

		if fn == "" {
			return geom, ErrEmptyMeshFile
		}

		resolved, ok := p.Assets.Resolve(p.sourceDir, fn)
		if !ok {
			return geom, fmt.Errorf("%w: %s (relative to %s)", ErrMeshNotFound, fn, p.sourceDir)
		}
		geom.MeshFile = resolved

	case "plane":
		geom.Type = GeomPlane
		normal, ok := shape.Attr("normal")
		if !ok {
			return geom, fmt.Errorf("%w: plane normal", ErrMissingDimension)
		}
		geom.PlaneNormal, _ = parseVector3(normal, false)

	default:
		return geom, fmt.Errorf("%w: %s", ErrUnknownShape, shape.Tag())
	}

	return geom, nil
}
