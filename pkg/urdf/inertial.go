package urdf

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/Faultbox/urdfkit/pkg/math"
	"github.com/Faultbox/urdfkit/pkg/xmldoc"
)

// Inertial decoding errors.
var (
	ErrNoMass         = errors.New("inertial element must have a mass element with a value attribute")
	ErrNoInertia      = errors.New("inertial element must have an inertia element")
	ErrBadInertia     = errors.New("inertia element must have ixx,ixy,ixz,iyy,iyz,izz or diagonal ixx,iyy,izz attributes")
	errBadInertiaAttr = errors.New("malformed inertia attribute")
)

// inertiaAttr parses a required numeric attribute of the inertia element.
func inertiaAttr(e xmldoc.Element, name string) (float64, error) {
	s, ok := e.Attr(name)
	if !ok {
		return 0, fmt.Errorf("%w: %s", errBadInertiaAttr, name)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", errBadInertiaAttr, name, s)
	}
	return v, nil
}

// parseInertia decodes an inertial element: optional origin frame, a
// required mass, and an inertia tensor in either full six-component form
// or diagonal-only shorthand.
func (p *Parser) parseInertia(in *Inertial, e xmldoc.Element) error {
	in.Origin = math.Identity()
	in.Mass = 0

	if o := e.Child("origin"); o != nil {
		in.Origin = p.parseTransform(o)
	}

	mass := e.Child("mass")
	if mass == nil {
		return ErrNoMass
	}
	value, ok := mass.Attr("value")
	if !ok {
		return ErrNoMass
	}
	m, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("mass value %q: %w", value, err)
	}
	in.Mass = m

	inertia := e.Child("inertia")
	if inertia == nil {
		return ErrNoInertia
	}

	has := func(name string) bool {
		_, ok := inertia.Attr(name)
		return ok
	}

	full := has("ixx") && has("ixy") && has("ixz") && has("iyy") && has("iyz") && has("izz")
	diagonal := has("ixx") && has("iyy") && has("izz")

	switch {
	case full:
		for _, c := range []struct {
			name string
			dst  *float64
		}{
			{"ixx", &in.Ixx}, {"ixy", &in.Ixy}, {"ixz", &in.Ixz},
			{"iyy", &in.Iyy}, {"iyz", &in.Iyz}, {"izz", &in.Izz},
		} {
			v, err := inertiaAttr(inertia, c.name)
			if err != nil {
				return err
			}
			*c.dst = v
		}
	case diagonal:
		for _, c := range []struct {
			name string
			dst  *float64
		}{
			{"ixx", &in.Ixx}, {"iyy", &in.Iyy}, {"izz", &in.Izz},
		} {
			v, err := inertiaAttr(inertia, c.name)
			if err != nil {
				return err
			}
			*c.dst = v
		}
		in.Ixy, in.Ixz, in.Iyz = 0, 0, 0
	default:
		return ErrBadInertia
	}

	return nil
}
