package quest

import "github.com/nathoo/adventurers/types"

// Tracker owns the root of the active quest tree and reports the moment
// it becomes complete.
type Tracker struct {
	key      string
	root     Quest
	complete bool
}

// NewTracker wraps an already-built tree under the given key.
func NewTracker(key string, root Quest) *Tracker {
	return &Tracker{key: key, root: root, complete: root.Status() == Complete}
}

// RegisterEvent forwards ev to the root. It returns true only on the event
// that moves the tree from InProgress to Complete.
func (t *Tracker) RegisterEvent(ev types.QuestEvent) bool {
	st := t.root.RegisterEvent(ev)
	if st == Complete && !t.complete {
		t.complete = true
		return true
	}
	return false
}

// Status reports the root status.
func (t *Tracker) Status() Status {
	return t.root.Status()
}

// Reset restores the whole tree. A later completion fires again.
func (t *Tracker) Reset() {
	t.root.Reset()
	t.complete = t.root.Status() == Complete
}

// Display delegates to the root.
func (t *Tracker) Display() string {
	return t.root.Display()
}

// Key returns the key the tree was selected by.
func (t *Tracker) Key() string {
	return t.key
}
