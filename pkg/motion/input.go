package motion

// Action is a logical input the character responds to
type Action uint8

const (
	Forward Action = iota
	Right
	Back
	Left
	Jump
)

// Input is a per-frame view of the player's controls.
// Down reports a held action, Pressed reports an action that went down since the last frame.
type Input interface {
	Down(a Action) bool
	Pressed(a Action) bool
}

// ActionSet is a bitmask of actions
type ActionSet uint8

// NewActionSet returns a set containing the given actions
func NewActionSet(actions ...Action) ActionSet {
	var s ActionSet
	for _, a := range actions {
		s = s.With(a)
	}
	return s
}

// With returns the set with a added
func (s ActionSet) With(a Action) ActionSet {
	return s | 1<<a
}

// Has reports whether a is in the set
func (s ActionSet) Has(a Action) bool {
	return s&(1<<a) != 0
}

// Snapshot is a captured Input for a single frame
type Snapshot struct {
	Held  ActionSet
	Edges ActionSet
}

// Down implements Input
func (s Snapshot) Down(a Action) bool {
	return s.Held.Has(a)
}

// Pressed implements Input
func (s Snapshot) Pressed(a Action) bool {
	return s.Edges.Has(a)
}
