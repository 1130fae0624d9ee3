package track

// State is the interaction state of a track.
type State int

const (
	// Idle accepts gestures, external transforms and resizes.
	Idle State = iota
	// Gesturing runs an originated gesture up to and including its emit.
	// External transforms arriving now are echoes of this gesture and
	// are dropped.
	Gesturing
	// ApplyingExternal redraws from a relayed transform. Emits are
	// suppressed.
	ApplyingExternal
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Gesturing:
		return "gesturing"
	case ApplyingExternal:
		return "applying-external"
	}
	return "unknown"
}

// SuppressesEmit reports whether an emit must be swallowed in state s.
func (s State) SuppressesEmit() bool { return s == ApplyingExternal }

// AcceptsExternal reports whether a relayed transform may be applied.
func (s State) AcceptsExternal() bool { return s == Idle }

// AcceptsResize reports whether a resize may run now. Resizes arriving in
// any other state are coalesced by the host.
func (s State) AcceptsResize() bool { return s == Idle }
