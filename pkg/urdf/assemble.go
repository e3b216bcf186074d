package urdf

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Assembly errors.
var (
	ErrEmptyLinkRef     = errors.New("joint parent or child link name is empty")
	ErrUnresolvedParent = errors.New("cannot find parent link for joint")
	ErrUnresolvedChild  = errors.New("cannot find child link for joint")
	ErrNoRootLink       = errors.New("robot description has no root link")
)

// assemble resolves joint link references, wires the tree adjacency,
// assigns dense link indices, and determines the root set. A joint
// referencing a missing link is a fatal input error. A joint cycle in
// the input is not detected here; the resulting adjacency is cyclic.
func (p *Parser) assemble(model *Model) error {
	for _, joint := range model.Joints {
		if joint.ParentName == "" || joint.ChildName == "" {
			return fmt.Errorf("%w: joint %s", ErrEmptyLinkRef, joint.Name)
		}

		childLink, ok := model.Links[joint.ChildName]
		if !ok {
			return fmt.Errorf("%w: joint %s, child %s", ErrUnresolvedChild, joint.Name, joint.ChildName)
		}
		parentLink, ok := model.Links[joint.ParentName]
		if !ok {
			return fmt.Errorf("%w: joint %s, parent %s", ErrUnresolvedParent, joint.Name, joint.ParentName)
		}

		childLink.ParentLink = parentLink
		childLink.ParentJoint = joint
		parentLink.ChildJoints = append(parentLink.ChildJoints, joint)
		parentLink.ChildLinks = append(parentLink.ChildLinks, childLink)
	}

	// Index assignment follows the link collection's iteration order,
	// not document order. Indices are dense and session-stable.
	index := 0
	for name, link := range model.Links {
		link.Index = index
		model.LinkNameByIndex[index] = name
		if link.ParentLink == nil {
			model.RootLinks = append(model.RootLinks, link)
		}
		index++
	}

	if len(model.RootLinks) > 1 {
		names := make([]string, len(model.RootLinks))
		for i, root := range model.RootLinks {
			names[i] = root.Name
		}
		p.warn("robot description has multiple root links",
			zap.Strings("roots", names))
	}

	if len(model.RootLinks) == 0 {
		return ErrNoRootLink
	}
	return nil
}
