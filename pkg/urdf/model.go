// Package urdf decodes robot description (URDF) documents into validated
// in-memory kinematic tree models.
package urdf

import (
	"fmt"
	"strings"

	"github.com/Faultbox/urdfkit/pkg/math"
)

// JointType enumerates the supported joint motion constraints.
type JointType int

const (
	JointRevolute JointType = iota
	JointContinuous
	JointPrismatic
	JointFixed
	JointFloating
	JointPlanar
	JointSpherical
)

// jointTypeNames maps schema type strings to JointType values.
var jointTypeNames = map[string]JointType{
	"revolute":   JointRevolute,
	"continuous": JointContinuous,
	"prismatic":  JointPrismatic,
	"fixed":      JointFixed,
	"floating":   JointFloating,
	"planar":     JointPlanar,
	"spherical":  JointSpherical,
}

// String returns the schema name of the joint type.
func (t JointType) String() string {
	for name, jt := range jointTypeNames {
		if jt == t {
			return name
		}
	}
	return fmt.Sprintf("Unknown(%d)", int(t))
}

// SingleDOF reports whether the joint type has a meaningful motion axis.
func (t JointType) SingleDOF() bool {
	return t != JointFixed && t != JointFloating
}

// Material is a named render material referenced by visual entries.
type Material struct {
	Name     string      // Registry key
	Texture  string      // Optional texture file reference
	Color    math.Color4 // Diffuse RGBA, zero when unspecified
	Specular math.Vec3   // Optional specular RGB (non-standard extension)
}

// Inertial carries the mass and rotational inertia of a link.
type Inertial struct {
	Origin math.Mat4 // Inertial frame relative to the link frame
	Mass   float64

	// Symmetric inertia tensor components
	Ixx, Ixy, Ixz float64
	Iyy, Iyz, Izz float64
}

// ContactFlags records which optional contact parameters were explicitly
// set in the document. Consumers use these to distinguish "explicitly
// zero" from "unset".
type ContactFlags uint16

const (
	ContactHasInertiaScaling ContactFlags = 1 << iota
	ContactHasRollingFriction
	ContactHasSpinningFriction
	ContactHasRestitution
	ContactHasStiffnessDamping
	ContactHasFrictionAnchor
)

// Has reports whether the given flag is set.
func (f ContactFlags) Has(flag ContactFlags) bool {
	return f&flag != 0
}

// ContactInfo holds per-link contact simulation parameters.
type ContactInfo struct {
	InertiaScaling   float64
	LateralFriction  float64
	RollingFriction  float64
	SpinningFriction float64
	Restitution      float64
	Stiffness        float64
	Damping          float64
	Flags            ContactFlags
}

// defaultContactInfo returns contact parameters with schema defaults.
func defaultContactInfo() ContactInfo {
	return ContactInfo{
		InertiaScaling:  1.0,
		LateralFriction: 0.5,
	}
}

// Visual is a per-link render geometry entry.
type Visual struct {
	Name         string
	Origin       math.Mat4 // Frame relative to the owning link
	Geometry     Geometry
	MaterialName string // Registry reference, late-bound after link decode
}

// CollisionFlags records optional collision attributes that were present.
type CollisionFlags uint8

const (
	CollisionHasGroup CollisionFlags = 1 << iota
	CollisionHasMask
	CollisionForceConcave
)

// Has reports whether the given flag is set.
func (f CollisionFlags) Has(flag CollisionFlags) bool {
	return f&flag != 0
}

// Collision is a per-link contact geometry entry.
type Collision struct {
	Name     string
	Origin   math.Mat4 // Frame relative to the owning link
	Geometry Geometry
	Group    int
	Mask     int
	Flags    CollisionFlags
}

// Limits bounds a joint's motion. An upper limit below the lower limit
// means "unbounded"; the unspecified default is lower=0, upper=-1.
type Limits struct {
	Lower    float64
	Upper    float64
	Effort   float64
	Velocity float64
}

// Joint is a directed edge connecting a parent link to a child link.
type Joint struct {
	Name       string
	Type       JointType
	ParentName string // Resolved against Model.Links during assembly
	ChildName  string

	// Transform from the parent link frame to the joint frame
	ParentToJoint math.Mat4

	Axis     math.Vec3 // Meaningful only for single-DOF types
	Limits   Limits
	Damping  float64
	Friction float64
}

// Link is a rigid body node in the kinematic tree.
type Link struct {
	Name       string
	Inertial   Inertial
	Visuals    []Visual
	Collisions []Collision
	Contact    ContactInfo

	// Tree wiring, filled during assembly. The model owns all links and
	// joints; these pointers are relational only.
	ParentLink  *Link
	ParentJoint *Joint
	ChildLinks  []*Link
	ChildJoints []*Joint

	// Dense session-stable index assigned during assembly.
	Index int
}

// Model is a fully decoded and assembled robot description.
type Model struct {
	Name       string
	SourceFile string
	Scale      float64

	Materials map[string]*Material
	Links     map[string]*Link
	Joints    map[string]*Joint

	RootLinks       []*Link
	LinkNameByIndex map[int]string
}

// newModel returns an empty model with initialized collections.
func newModel(name, sourceFile string, scale float64) *Model {
	return &Model{
		Name:            name,
		SourceFile:      sourceFile,
		Scale:           scale,
		Materials:       make(map[string]*Material),
		Links:           make(map[string]*Link),
		Joints:          make(map[string]*Joint),
		LinkNameByIndex: make(map[int]string),
	}
}

// KinematicChain returns a human-readable rendering of the assembled
// tree, one root per block.
func (m *Model) KinematicChain() string {
	var b strings.Builder
	fmt.Fprintf(&b, "model %s\n", m.Name)
	for i, root := range m.RootLinks {
		fmt.Fprintf(&b, "root L(%d): %s\n", i, root.Name)
		writeLinkChildren(&b, root, "  ")
	}
	return b.String()
}

// writeLinkChildren renders a link's child joints and links recursively.
func writeLinkChildren(b *strings.Builder, link *Link, prefix string) {
	for i, j := range link.ChildJoints {
		fmt.Fprintf(b, "%schild J(%d): %s ->(%s)\n", prefix, i, j.Name, j.ChildName)
	}
	for i, c := range link.ChildLinks {
		fmt.Fprintf(b, "%schild L(%d): %s\n", prefix, i, c.Name)
		writeLinkChildren(b, c, prefix+"  ")
	}
}
