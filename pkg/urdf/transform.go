package urdf

import (
	"github.com/Faultbox/urdfkit/pkg/math"
	"github.com/Faultbox/urdfkit/pkg/xmldoc"
)

// parseTransform decodes an origin-style element carrying optional "xyz"
// and "rpy" attributes into a rigid transform. Translation is scaled by
// the model scale factor. Malformed xyz or rpy strings are tolerated and
// leave the corresponding component at its default (zero translation,
// identity rotation), matching long-standing loader behavior.
func (p *Parser) parseTransform(e xmldoc.Element) math.Mat4 {
	tr := math.Identity()

	var vec math.Vec3
	if xyz, ok := e.Attr("xyz"); ok {
		if v, err := parseVector3(xyz, false); err == nil {
			vec = v
		}
	}
	tr.SetTranslation(vec.Scale(p.Scale))

	if rpy, ok := e.Attr("rpy"); ok {
		if v, err := parseVector3(rpy, false); err == nil {
			orn := math.QuatFromRPY(v.X, v.Y, v.Z).Normalize()
			t := tr.Translation()
			tr = orn.ToMat4()
			tr.SetTranslation(t)
		}
	}

	return tr
}
