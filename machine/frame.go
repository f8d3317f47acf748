// This file is part of ipp-proj.

package machine

// slot is a variable storage cell: nil means declared-but-uninitialised,
// non-nil holds the last stored tagged value.
type slot struct {
	v *Value
}

// Frame is an unordered mapping from variable name to slot.
type Frame map[string]*slot

func newFrame() Frame { return make(Frame) }

// FrameName identifies one of the three frame roles by the prefix used in
// variable references (e.g. "GF@x").
type FrameName string

const (
	FrameGlobal    FrameName = "GF"
	FrameLocal     FrameName = "LF"
	FrameTemporary FrameName = "TF"
)

// frameFor returns the Frame backing the given role, or nil if that frame is
// currently absent (LF/TF only; GF always exists).
func (m *Instance) frameFor(name FrameName) Frame {
	switch name {
	case FrameGlobal:
		return m.gf
	case FrameLocal:
		return m.lf
	case FrameTemporary:
		return m.tf
	default:
		return nil
	}
}
