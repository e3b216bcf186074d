package urdf

import (
	"errors"

	"go.uber.org/zap"

	"github.com/Faultbox/urdfkit/pkg/xmldoc"
)

// ErrNoMaterialName is returned for a material without a name attribute.
var ErrNoMaterialName = errors.New("material must have a name attribute")

// parseMaterial decodes a material element. Texture and specular are
// optional; a malformed color is a warning and leaves the zero color.
func (p *Parser) parseMaterial(mat *Material, e xmldoc.Element) error {
	name, ok := e.Attr("name")
	if !ok {
		return ErrNoMaterialName
	}
	mat.Name = name

	if t := e.Child("texture"); t != nil {
		if fn, ok := t.Attr("filename"); ok {
			mat.Texture = fn
		}
	}

	if c := e.Child("color"); c != nil {
		if rgba, ok := c.Attr("rgba"); ok {
			color, err := parseColor4(rgba)
			if err != nil {
				p.warn("material has no valid rgba color",
					zap.String("material", mat.Name),
					zap.String("rgba", rgba))
			}
			mat.Color = color
		}
	}

	if s := e.Child("specular"); s != nil {
		if rgb, ok := s.Attr("rgb"); ok {
			// Malformed specular silently keeps the zero vector.
			mat.Specular, _ = parseVector3(rgb, false)
		}
	}

	return nil
}
