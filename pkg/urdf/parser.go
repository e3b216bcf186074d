package urdf

import (
	"errors"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Faultbox/urdfkit/pkg/xmldoc"
)

// Top-level parse errors.
var (
	ErrNoRobotElement = errors.New("expected a robot root element")
	ErrNoRobotName    = errors.New("robot element must have a name attribute")
	ErrDuplicateLink  = errors.New("link name is not unique within the model")
	ErrDuplicateJoint = errors.New("joint name is not unique within the model")
	ErrNoLinks        = errors.New("no links found in robot description")
)

// Parser decodes robot description documents into kinematic tree models.
// Fields may be set before the first Parse call; zero values fall back
// to a scale of 1, a no-op logger, and direct filesystem resolution.
type Parser struct {
	Scale  float64       // Global multiplier for all linear quantities
	Log    *zap.Logger   // Structured diagnostics sink
	Assets AssetResolver // Mesh asset existence checks

	sourceDir string
	warnings  int
}

// NewParser returns a parser with default settings.
func NewParser() *Parser {
	return &Parser{
		Scale:  1.0,
		Log:    zap.NewNop(),
		Assets: DirResolver{},
	}
}

// Warnings returns the number of non-fatal conditions recorded during
// the most recent Parse call.
func (p *Parser) Warnings() int {
	return p.warnings
}

// warn records a non-fatal condition and forwards it to the sink.
func (p *Parser) warn(msg string, fields ...zap.Field) {
	p.warnings++
	p.Log.Warn(msg, fields...)
}

// ParseFile reads, tokenizes, and decodes a robot description file.
func (p *Parser) ParseFile(path string) (*Model, error) {
	root, err := xmldoc.ParseFile(path)
	if err != nil {
		return nil, err
	}
	return p.Parse(root, path)
}

// Parse decodes an already-parsed document tree into an assembled model.
// sourceFile is the document's origin path, used to resolve mesh
// references relative to its directory. On any fatal condition the
// in-progress model is discarded and only the error is returned.
func (p *Parser) Parse(root xmldoc.Element, sourceFile string) (*Model, error) {
	p.warnings = 0
	p.sourceDir = filepath.Dir(sourceFile)
	if p.Scale == 0 {
		p.Scale = 1.0
	}
	if p.Log == nil {
		p.Log = zap.NewNop()
	}
	if p.Assets == nil {
		p.Assets = DirResolver{}
	}

	if root == nil || root.Tag() != "robot" {
		return nil, ErrNoRobotElement
	}
	name, ok := root.Attr("name")
	if !ok {
		return nil, ErrNoRobotName
	}

	model := newModel(name, sourceFile, p.Scale)
	p.Log.Debug("parsing robot description",
		zap.String("robot", name),
		zap.String("source", sourceFile),
		zap.Float64("scale", p.Scale))

	// Materials first: link decoding resolves material references
	// against this registry.
	for _, matEl := range root.Children("material") {
		mat := &Material{}
		if err := p.parseMaterial(mat, matEl); err != nil {
			return nil, fmt.Errorf("material: %w", err)
		}
		if _, exists := model.Materials[mat.Name]; exists {
			p.warn("duplicate material, keeping first registration",
				zap.String("material", mat.Name))
			continue
		}
		model.Materials[mat.Name] = mat
	}

	for _, linkEl := range root.Children("link") {
		link := &Link{}
		if err := p.parseLink(model, link, linkEl); err != nil {
			return nil, fmt.Errorf("parsing link: %w", err)
		}
		if _, exists := model.Links[link.Name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateLink, link.Name)
		}
		model.Links[link.Name] = link
	}
	if len(model.Links) == 0 {
		return nil, ErrNoLinks
	}

	// Late-bind visual material references now that every model-scope
	// and inline material is registered. An unresolved name is not
	// fatal; the visual proceeds without a resolved material.
	for _, link := range model.Links {
		for i := range link.Visuals {
			vis := &link.Visuals[i]
			if vis.Geometry.HasLocalMaterial || vis.MaterialName == "" {
				continue
			}
			if mat, ok := model.Materials[vis.MaterialName]; ok {
				vis.Geometry.LocalMaterial = mat
			} else {
				p.warn("cannot resolve visual material reference",
					zap.String("link", link.Name),
					zap.String("material", vis.MaterialName))
			}
		}
	}

	for _, jointEl := range root.Children("joint") {
		joint := &Joint{}
		if err := p.parseJoint(joint, jointEl); err != nil {
			return nil, fmt.Errorf("parsing joint: %w", err)
		}
		if _, exists := model.Joints[joint.Name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateJoint, joint.Name)
		}
		model.Joints[joint.Name] = joint
	}

	// Sensor elements are valid in the schema but not decoded.

	if err := p.assemble(model); err != nil {
		return nil, err
	}

	p.Log.Info("parsed robot description",
		zap.String("robot", model.Name),
		zap.Int("links", len(model.Links)),
		zap.Int("joints", len(model.Joints)),
		zap.Int("roots", len(model.RootLinks)),
		zap.Int("warnings", p.warnings))

	return model, nil
}
