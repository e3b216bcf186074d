package urdf

import (
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/Faultbox/urdfkit/pkg/math"
	"github.com/Faultbox/urdfkit/pkg/xmldoc"
)

// Joint decoding errors.
var (
	ErrNoJointName      = errors.New("joint must have a name attribute")
	ErrNoJointType      = errors.New("joint must have a type attribute")
	ErrUnknownJointType = errors.New("unknown joint type")
	ErrNoParentLinkName = errors.New("parent element has no link attribute (is this joint the root?)")
	ErrNoChildLinkName  = errors.New("child element has no link attribute")
	ErrBadJointAxis     = errors.New("malformed joint axis")
	ErrNoJointLimit     = errors.New("revolute and prismatic joints require a limit element")
	ErrEmptyDynamics    = errors.New("dynamics element specifies neither damping nor friction")
)

// limitAttr reads an optional numeric limit attribute, keeping def when
// the attribute is absent.
func limitAttr(e xmldoc.Element, name string, def float64) (float64, error) {
	s, ok := e.Attr(name)
	if !ok {
		return def, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def, fmt.Errorf("limit %s=%q: %w", name, s, err)
	}
	return v, nil
}

// parseJointLimits decodes a limit element. The schema default of
// lower=0, upper=-1 is the "no limit" sentinel. Prismatic bounds are
// linear quantities and get the global scale applied.
func (p *Parser) parseJointLimits(joint *Joint, e xmldoc.Element) error {
	joint.Limits = Limits{Lower: 0, Upper: -1}

	var err error
	if joint.Limits.Lower, err = limitAttr(e, "lower", 0); err != nil {
		return err
	}
	if joint.Limits.Upper, err = limitAttr(e, "upper", -1); err != nil {
		return err
	}

	if joint.Type == JointPrismatic {
		joint.Limits.Lower *= p.Scale
		joint.Limits.Upper *= p.Scale
	}

	if joint.Limits.Effort, err = limitAttr(e, "effort", 0); err != nil {
		return err
	}
	if joint.Limits.Velocity, err = limitAttr(e, "velocity", 0); err != nil {
		return err
	}
	return nil
}

// parseJoint decodes a joint element: type, parent/child link names,
// mounting transform, axis, limits, and dynamics, with type-dependent
// required-field rules.
func (p *Parser) parseJoint(joint *Joint, e xmldoc.Element) error {
	name, ok := e.Attr("name")
	if !ok {
		return ErrNoJointName
	}
	joint.Name = name
	joint.ParentToJoint = math.Identity()
	joint.Limits = Limits{Lower: 0, Upper: -1}

	if origin := e.Child("origin"); origin != nil {
		joint.ParentToJoint = p.parseTransform(origin)
	}

	if parent := e.Child("parent"); parent != nil {
		pname, ok := parent.Attr("link")
		if !ok {
			return fmt.Errorf("joint %s: %w", joint.Name, ErrNoParentLinkName)
		}
		joint.ParentName = pname
	}

	if child := e.Child("child"); child != nil {
		cname, ok := child.Attr("link")
		if !ok {
			return fmt.Errorf("joint %s: %w", joint.Name, ErrNoChildLinkName)
		}
		joint.ChildName = cname
	}

	typeStr, ok := e.Attr("type")
	if !ok {
		return fmt.Errorf("joint %s: %w", joint.Name, ErrNoJointType)
	}
	jt, ok := jointTypeNames[typeStr]
	if !ok {
		return fmt.Errorf("joint %s: %w: %s", joint.Name, ErrUnknownJointType, typeStr)
	}
	joint.Type = jt

	// Axis is only meaningful for single-DOF joint types.
	if joint.Type.SingleDOF() {
		axis := e.Child("axis")
		if axis == nil {
			p.warn("no axis element for joint, defaulting to (1,0,0)",
				zap.String("joint", joint.Name))
			joint.Axis = math.Vec3{X: 1}
		} else if xyz, ok := axis.Attr("xyz"); ok {
			v, err := parseVector3(xyz, false)
			if err != nil {
				return fmt.Errorf("joint %s: %w: %q", joint.Name, ErrBadJointAxis, xyz)
			}
			joint.Axis = v
		}
	}

	if limit := e.Child("limit"); limit != nil {
		if err := p.parseJointLimits(joint, limit); err != nil {
			return fmt.Errorf("joint %s: %w", joint.Name, err)
		}
	} else if joint.Type == JointRevolute || joint.Type == JointPrismatic {
		return fmt.Errorf("joint %s (%s): %w", joint.Name, joint.Type, ErrNoJointLimit)
	}

	joint.Damping = 0
	joint.Friction = 0

	if dyn := e.Child("dynamics"); dyn != nil {
		damping, hasDamping := dyn.Attr("damping")
		friction, hasFriction := dyn.Attr("friction")

		if hasDamping {
			v, err := strconv.ParseFloat(damping, 64)
			if err != nil {
				return fmt.Errorf("joint %s damping %q: %w", joint.Name, damping, err)
			}
			joint.Damping = v
		}
		if hasFriction {
			v, err := strconv.ParseFloat(friction, 64)
			if err != nil {
				return fmt.Errorf("joint %s friction %q: %w", joint.Name, friction, err)
			}
			joint.Friction = v
		}
		if !hasDamping && !hasFriction {
			return fmt.Errorf("joint %s: %w", joint.Name, ErrEmptyDynamics)
		}
	}

	return nil
}
