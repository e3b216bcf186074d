package urdf

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/urdfkit/pkg/math"
)

func TestParseGeometry_Sphere(t *testing.T) {
	p := NewParser()
	p.Scale = 2.0

	geom, err := p.parseGeometry(parseDoc(t, `<geometry><sphere radius="0.25"/></geometry>`))
	if err != nil {
		t.Fatalf("parseGeometry failed: %v", err)
	}
	if geom.Type != GeomSphere {
		t.Errorf("expected sphere, got %v", geom.Type)
	}
	if geom.SphereRadius != 0.5 {
		t.Errorf("expected scaled radius 0.5, got %v", geom.SphereRadius)
	}

	_, err = p.parseGeometry(parseDoc(t, `<geometry><sphere/></geometry>`))
	if !errors.Is(err, ErrMissingDimension) {
		t.Errorf("expected ErrMissingDimension, got %v", err)
	}
}

func TestParseGeometry_BoxScaled(t *testing.T) {
	p := NewParser()
	p.Scale = 0.5

	geom, err := p.parseGeometry(parseDoc(t, `<geometry><box size="2 4 6"/></geometry>`))
	if err != nil {
		t.Fatalf("parseGeometry failed: %v", err)
	}
	if geom.BoxSize != (math.Vec3{X: 1, Y: 2, Z: 3}) {
		t.Errorf("expected (1,2,3), got %+v", geom.BoxSize)
	}

	_, err = p.parseGeometry(parseDoc(t, `<geometry><box/></geometry>`))
	if !errors.Is(err, ErrMissingDimension) {
		t.Errorf("expected ErrMissingDimension, got %v", err)
	}
}

func TestParseGeometry_Cylinder(t *testing.T) {
	p := NewParser()

	geom, err := p.parseGeometry(parseDoc(t, `<geometry><cylinder length="2" radius="0.1"/></geometry>`))
	if err != nil {
		t.Fatalf("parseGeometry failed: %v", err)
	}
	if geom.Type != GeomCylinder || geom.CapsuleHeight != 2 || geom.CapsuleRadius != 0.1 {
		t.Errorf("unexpected cylinder: %+v", geom)
	}

	// Either missing attribute fails
	for _, src := range []string{
		`<geometry><cylinder radius="0.1"/></geometry>`,
		`<geometry><cylinder length="2"/></geometry>`,
	} {
		if _, err := p.parseGeometry(parseDoc(t, src)); !errors.Is(err, ErrMissingDimension) {
			t.Errorf("expected ErrMissingDimension for %s, got %v", src, err)
		}
	}
}

func TestParseGeometry_CapsuleFromTo(t *testing.T) {
	p := NewParser()
	p.Scale = 2.0

	geom, err := p.parseGeometry(parseDoc(t,
		`<geometry><capsule fromto="0 0 0 0 0 1" radius="0.1"/></geometry>`))
	if err != nil {
		t.Fatalf("parseGeometry failed: %v", err)
	}
	if !geom.HasFromTo {
		t.Fatal("expected HasFromTo")
	}
	if geom.CapsuleTo != (math.Vec3{Z: 2}) {
		t.Errorf("expected scaled endpoint (0,0,2), got %+v", geom.CapsuleTo)
	}
	if geom.CapsuleHeight != 2 {
		t.Errorf("expected height 2, got %v", geom.CapsuleHeight)
	}
}

func TestParseGeometry_Plane(t *testing.T) {
	p := NewParser()

	geom, err := p.parseGeometry(parseDoc(t, `<geometry><plane normal="0 0 1"/></geometry>`))
	if err != nil {
		t.Fatalf("parseGeometry failed: %v", err)
	}
	if geom.PlaneNormal != (math.Vec3{Z: 1}) {
		t.Errorf("expected normal (0,0,1), got %+v", geom.PlaneNormal)
	}

	// Plane normal is not scaled
	p.Scale = 10
	geom, err = p.parseGeometry(parseDoc(t, `<geometry><plane normal="0 0 1"/></geometry>`))
	if err != nil {
		t.Fatalf("parseGeometry failed: %v", err)
	}
	if geom.PlaneNormal != (math.Vec3{Z: 1}) {
		t.Errorf("expected unscaled normal, got %+v", geom.PlaneNormal)
	}

	if _, err := p.parseGeometry(parseDoc(t, `<geometry><plane/></geometry>`)); !errors.Is(err, ErrMissingDimension) {
		t.Errorf("expected ErrMissingDimension, got %v", err)
	}
}

func TestParseGeometry_UnknownShape(t *testing.T) {
	p := NewParser()
	_, err := p.parseGeometry(parseDoc(t, `<geometry><torus radius="1"/></geometry>`))
	if !errors.Is(err, ErrUnknownShape) {
		t.Errorf("expected ErrUnknownShape, got %v", err)
	}
}

func TestParseGeometry_NoShape(t *testing.T) {
	p := NewParser()
	if _, err := p.parseGeometry(parseDoc(t, `<geometry/>`)); !errors.Is(err, ErrNoShape) {
		t.Errorf("expected ErrNoShape, got %v", err)
	}
	if _, err := p.parseGeometry(nil); !errors.Is(err, ErrNoGeometry) {
		t.Errorf("expected ErrNoGeometry, got %v", err)
	}
}

func TestParseGeometry_Mesh(t *testing.T) {
	dir := t.TempDir()
	meshPath := filepath.Join(dir, "arm.obj")
	if err := os.WriteFile(meshPath, []byte("o arm\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	p := NewParser()
	p.sourceDir = dir

	geom, err := p.parseGeometry(parseDoc(t, `<geometry><mesh filename="arm.obj" scale="1 2 3"/></geometry>`))
	if err != nil {
		t.Fatalf("parseGeometry failed: %v", err)
	}
	if geom.MeshFile != meshPath {
		t.Errorf("expected resolved path %s, got %s", meshPath, geom.MeshFile)
	}
	if geom.MeshScale != (math.Vec3{X: 1, Y: 2, Z: 3}) {
		t.Errorf("expected scale (1,2,3), got %+v", geom.MeshScale)
	}
}

func TestParseGeometry_MeshScalarScale(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "arm.obj"), []byte("o\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	p := NewParser()
	p.sourceDir = dir

	geom, err := p.parseGeometry(parseDoc(t, `<geometry><mesh filename="arm.obj" scale="2"/></geometry>`))
	if err != nil {
		t.Fatalf("parseGeometry failed: %v", err)
	}
	if geom.MeshScale != (math.Vec3{X: 2, Y: 2, Z: 2}) {
		t.Errorf("expected uniform scale (2,2,2), got %+v", geom.MeshScale)
	}
	if p.Warnings() == 0 {
		t.Error("expected a warning for scalar mesh scale")
	}
}

func TestParseGeometry_MeshMissingFile(t *testing.T) {
	p := NewParser()
	p.sourceDir = t.TempDir()

	_, err := p.parseGeometry(parseDoc(t, `<geometry><mesh filename="missing.obj"/></geometry>`))
	if !errors.Is(err, ErrMeshNotFound) {
		t.Errorf("expected ErrMeshNotFound, got %v", err)
	}
}

func TestParseGeometry_MeshEmptyFilename(t *testing.T) {
	p := NewParser()
	_, err := p.parseGeometry(parseDoc(t, `<geometry><mesh/></geometry>`))
	if !errors.Is(err, ErrEmptyMeshFile) {
		t.Errorf("expected ErrEmptyMeshFile, got %v", err)
	}
}
