package urdf

import (
	"errors"
	"testing"

	"github.com/Faultbox/urdfkit/pkg/math"
)

func TestParse_ContactParameters(t *testing.T) {
	p := NewParser()
	model, err := parseRobot(t, p, `
		<link name="base">
			<contact>
				<lateral_friction value="0.8"/>
				<rolling_friction value="0.01"/>
				<restitution value="0.4"/>
				<stiffness value="30000"/>
				<friction_anchor/>
			</contact>
		</link>`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	c := model.Links["base"].Contact
	if c.LateralFriction != 0.8 || c.RollingFriction != 0.01 || c.Restitution != 0.4 {
		t.Errorf("unexpected contact values: %+v", c)
	}
	for _, flag := range []ContactFlags{
		ContactHasRollingFriction,
		ContactHasRestitution,
		ContactHasStiffnessDamping,
		ContactHasFrictionAnchor,
	} {
		if !c.Flags.Has(flag) {
			t.Errorf("expected flag %b to be set", flag)
		}
	}
	// Not specified, so not flagged
	if c.Flags.Has(ContactHasSpinningFriction) || c.Flags.Has(ContactHasInertiaScaling) {
		t.Errorf("unexpected flags set: %b", c.Flags)
	}
}

func TestParse_ContactDefaults(t *testing.T) {
	p := NewParser()
	model, err := parseRobot(t, p, `<link name="base"/>`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	c := model.Links["base"].Contact
	if c.LateralFriction != 0.5 || c.InertiaScaling != 1 {
		t.Errorf("unexpected contact defaults: %+v", c)
	}
	if c.Flags != 0 {
		t.Errorf("expected no flags, got %b", c.Flags)
	}
}

func TestParse_ContactMissingValue(t *testing.T) {
	p := NewParser()
	_, err := parseRobot(t, p, `
		<link name="base">
			<contact><restitution/></contact>
		</link>`)
	if !errors.Is(err, ErrContactValue) {
		t.Errorf("expected ErrContactValue, got %v", err)
	}
}

func TestParse_LinkWithoutName(t *testing.T) {
	p := NewParser()
	_, err := parseRobot(t, p, `<link/>`)
	if !errors.Is(err, ErrNoLinkName) {
		t.Errorf("expected ErrNoLinkName, got %v", err)
	}
}

func TestParse_VisualsAndCollisionsInOrder(t *testing.T) {
	p := NewParser()
	model, err := parseRobot(t, p, `
		<link name="base">
			<visual name="first"><geometry><sphere radius="1"/></geometry></visual>
			<visual name="second"><geometry><box size="1 1 1"/></geometry></visual>
			<collision name="only">
				<origin xyz="0 0 1"/>
				<geometry><sphere radius="0.5"/></geometry>
			</collision>
		</link>`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	link := model.Links["base"]
	if len(link.Visuals) != 2 || len(link.Collisions) != 1 {
		t.Fatalf("expected 2 visuals / 1 collision, got %d / %d",
			len(link.Visuals), len(link.Collisions))
	}
	if link.Visuals[0].Name != "first" || link.Visuals[1].Name != "second" {
		t.Error("visuals not in document order")
	}
	if link.Collisions[0].Origin.Translation() != (math.Vec3{Z: 1}) {
		t.Errorf("unexpected collision origin: %+v", link.Collisions[0].Origin.Translation())
	}
}

func TestParse_BrokenVisualFailsLink(t *testing.T) {
	p := NewParser()
	_, err := parseRobot(t, p, `
		<link name="base">
			<visual><geometry><sphere/></geometry></visual>
		</link>`)
	if !errors.Is(err, ErrMissingDimension) {
		t.Errorf("expected geometry failure to fail the parse, got %v", err)
	}
}

func TestParse_CollisionGroupMask(t *testing.T) {
	p := NewParser()
	model, err := parseRobot(t, p, `
		<link name="base">
			<collision group="2" mask="5" concave="true">
				<geometry><box size="1 1 1"/></geometry>
			</collision>
		</link>`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	col := model.Links["base"].Collisions[0]
	if col.Group != 2 || col.Mask != 5 {
		t.Errorf("unexpected group/mask: %+v", col)
	}
	for _, flag := range []CollisionFlags{CollisionHasGroup, CollisionHasMask, CollisionForceConcave} {
		if !col.Flags.Has(flag) {
			t.Errorf("expected flag %b", flag)
		}
	}
}

func TestParse_CollisionWithoutGeometry(t *testing.T) {
	p := NewParser()
	_, err := parseRobot(t, p, `
		<link name="base"><collision/></link>`)
	if !errors.Is(err, ErrNoGeometry) {
		t.Errorf("expected ErrNoGeometry, got %v", err)
	}
}
