package urdf

import (
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/Faultbox/urdfkit/pkg/math"
	"github.com/Faultbox/urdfkit/pkg/xmldoc"
)

// Link decoding errors.
var (
	ErrNoLinkName       = errors.New("link must have a name attribute")
	ErrContactValue     = errors.New("contact parameter element must have a value attribute")
	ErrNoVisualMatName  = errors.New("visual material must have a name attribute")
	errBadCollisionAttr = errors.New("malformed collision attribute")
)

// contactParam reads the required value attribute of a contact parameter
// element as a float.
func contactParam(e xmldoc.Element, tag string) (float64, error) {
	value, ok := e.Attr("value")
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrContactValue, tag)
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("contact %s value %q: %w", tag, value, err)
	}
	return v, nil
}

// parseContact decodes the optional contact parameter block, setting
// presence flags for fields that downstream consumers must distinguish
// from defaults.
func parseContact(info *ContactInfo, ci xmldoc.Element) error {
	if e := ci.Child("inertia_scaling"); e != nil {
		v, err := contactParam(e, "inertia_scaling")
		if err != nil {
			return err
		}
		info.InertiaScaling = v
		info.Flags |= ContactHasInertiaScaling
	}
	if e := ci.Child("lateral_friction"); e != nil {
		v, err := contactParam(e, "lateral_friction")
		if err != nil {
			return err
		}
		info.LateralFriction = v
	}
	if e := ci.Child("rolling_friction"); e != nil {
		v, err := contactParam(e, "rolling_friction")
		if err != nil {
			return err
		}
		info.RollingFriction = v
		info.Flags |= ContactHasRollingFriction
	}
	if e := ci.Child("spinning_friction"); e != nil {
		v, err := contactParam(e, "spinning_friction")
		if err != nil {
			return err
		}
		info.SpinningFriction = v
		info.Flags |= ContactHasSpinningFriction
	}
	if e := ci.Child("restitution"); e != nil {
		v, err := contactParam(e, "restitution")
		if err != nil {
			return err
		}
		info.Restitution = v
		info.Flags |= ContactHasRestitution
	}
	if e := ci.Child("stiffness"); e != nil {
		v, err := contactParam(e, "stiffness")
		if err != nil {
			return err
		}
		info.Stiffness = v
		info.Flags |= ContactHasStiffnessDamping
	}
	if e := ci.Child("damping"); e != nil {
		v, err := contactParam(e, "damping")
		if err != nil {
			return err
		}
		info.Damping = v
		info.Flags |= ContactHasStiffnessDamping
	}
	if ci.Child("friction_anchor") != nil {
		info.Flags |= ContactHasFrictionAnchor
	}
	return nil
}

// parseLink decodes a single link element: contact parameters, inertial
// data, and ordered visual and collision entries.
func (p *Parser) parseLink(model *Model, link *Link, e xmldoc.Element) error {
	name, ok := e.Attr("name")
	if !ok {
		return ErrNoLinkName
	}
	link.Name = name
	link.Contact = defaultContactInfo()

	if ci := e.Child("contact"); ci != nil {
		if err := parseContact(&link.Contact, ci); err != nil {
			return fmt.Errorf("link %s: %w", link.Name, err)
		}
	}

	if inertial := e.Child("inertial"); inertial != nil {
		if err := p.parseInertia(&link.Inertial, inertial); err != nil {
			return fmt.Errorf("link %s inertial: %w", link.Name, err)
		}
	} else if link.Name == "world" {
		// A "world" link acts as a fixed, massless anchor.
		link.Inertial = Inertial{Origin: math.Identity()}
	} else {
		p.warn("no inertial data for link, using mass=1 and unit diagonal inertia",
			zap.String("link", link.Name))
		link.Inertial = Inertial{
			Origin: math.Identity(),
			Mass:   1,
			Ixx:    1, Iyy: 1, Izz: 1,
		}
	}

	for _, vis := range e.Children("visual") {
		visual, err := p.parseVisual(model, vis)
		if err != nil {
			return fmt.Errorf("link %s visual: %w", link.Name, err)
		}
		link.Visuals = append(link.Visuals, visual)
	}

	for _, col := range e.Children("collision") {
		collision, err := p.parseCollision(col)
		if err != nil {
			return fmt.Errorf("link %s collision: %w", link.Name, err)
		}
		link.Collisions = append(link.Collisions, collision)
	}

	return nil
}

// parseVisual decodes a visual element. An inline material definition
// overrides any registry entry under the same name.
func (p *Parser) parseVisual(model *Model, e xmldoc.Element) (Visual, error) {
	vis := Visual{Origin: math.Identity()}

	if o := e.Child("origin"); o != nil {
		vis.Origin = p.parseTransform(o)
	}

	geom, err := p.parseGeometry(e.Child("geometry"))
	if err != nil {
		return vis, err
	}
	vis.Geometry = geom

	if name, ok := e.Attr("name"); ok {
		vis.Name = name
	}

	if mat := e.Child("material"); mat != nil {
		name, ok := mat.Attr("name")
		if !ok {
			return vis, ErrNoVisualMatName
		}
		vis.MaterialName = name

		// An inline definition carrying any material content becomes a
		// local material and overrides the registry entry.
		if mat.Child("texture") != nil || mat.Child("color") != nil || mat.Child("specular") != nil {
			local := &Material{}
			if err := p.parseMaterial(local, mat); err == nil {
				model.Materials[vis.MaterialName] = local
				vis.Geometry.LocalMaterial = local
				vis.Geometry.HasLocalMaterial = true
			}
		}
	}

	return vis, nil
}

// parseCollision decodes a collision element with optional group/mask
// bitmask attributes.
func (p *Parser) parseCollision(e xmldoc.Element) (Collision, error) {
	col := Collision{Origin: math.Identity()}

	if o := e.Child("origin"); o != nil {
		col.Origin = p.parseTransform(o)
	}

	geom, err := p.parseGeometry(e.Child("geometry"))
	if err != nil {
		return col, err
	}
	col.Geometry = geom

	if group, ok := e.Attr("group"); ok {
		v, err := strconv.Atoi(group)
		if err != nil {
			return col, fmt.Errorf("%w: group=%q", errBadCollisionAttr, group)
		}
		col.Group = v
		col.Flags |= CollisionHasGroup
	}

	if mask, ok := e.Attr("mask"); ok {
		v, err := strconv.Atoi(mask)
		if err != nil {
			return col, fmt.Errorf("%w: mask=%q", errBadCollisionAttr, mask)
		}
		col.Mask = v
		col.Flags |= CollisionHasMask
	}

	if name, ok := e.Attr("name"); ok {
		col.Name = name
	}

	if _, ok := e.Attr("concave"); ok {
		col.Flags |= CollisionForceConcave
	}

	return col, nil
}
