// Package quest implements composable quest progress trackers. A quest tree
// is built from Atomic leaves, InOrder sequences and Choice (k-of-n) groups,
// and is driven one QuestEvent at a time.
package quest

import (
	"fmt"
	"strings"

	"github.com/nathoo/adventurers/types"
)

// Status is the completion state of a quest node.
type Status int

const (
	InProgress Status = iota
	Complete
)

func (s Status) String() string {
	if s == Complete {
		return "Complete"
	}
	return "InProgress"
}

// Quest is a node in a quest tree. Nodes own their progress, and composite
// nodes own their children exclusively.
type Quest interface {
	// RegisterEvent applies ev and returns the status afterwards.
	RegisterEvent(ev types.QuestEvent) Status
	// Status reports the current status without changing anything.
	Status() Status
	// Reset restores the node and all its descendants to their initial state.
	Reset()
	// Display describes the node's progress for the player.
	Display() string
}

// Atomic counts events matching a block and event type. Every threshold
// matches completes one cycle, and the quest is complete after cycles
// cycles. Matches need not be consecutive.
type Atomic struct {
	block     types.Block
	eventType types.EventType
	threshold int
	cycles    int

	count     int // matches in the current cycle
	completed int // finished cycles
}

// NewAtomic returns an Atomic quest. threshold and cycles below 1 are
// treated as 1.
func NewAtomic(block types.Block, eventType types.EventType, threshold, cycles int) *Atomic {
	return &Atomic{
		block:     block,
		eventType: eventType,
		threshold: max(threshold, 1),
		cycles:    max(cycles, 1),
	}
}

func (a *Atomic) RegisterEvent(ev types.QuestEvent) Status {
	if a.Status() == Complete {
		return Complete
	}
	if ev.Block != a.block || ev.Type != a.eventType {
		return InProgress
	}
	a.count++
	if a.count >= a.threshold {
		a.completed++
		a.count = 0
	}
	return a.Status()
}

func (a *Atomic) Status() Status {
	if a.completed >= a.cycles {
		return Complete
	}
	return InProgress
}

func (a *Atomic) Reset() {
	a.count = 0
	a.completed = 0
}

func (a *Atomic) Display() string {
	var b strings.Builder
	b.WriteString(checkbox(a.Status()))
	b.WriteString(describeTarget(a.block, a.eventType))
	if a.threshold > 1 {
		fmt.Fprintf(&b, " %d times", a.threshold)
	}
	if a.cycles > 1 {
		fmt.Fprintf(&b, ", %d times over", a.cycles)
	}
	if a.Status() == Complete {
		return b.String()
	}
	switch {
	case a.cycles > 1:
		fmt.Fprintf(&b, " (cycle %d/%d: %d/%d)", a.completed+1, a.cycles, a.count, a.threshold)
	case a.threshold > 1:
		fmt.Fprintf(&b, " (%d/%d)", a.count, a.threshold)
	}
	return b.String()
}

// InOrder requires its children to complete one after another. Only the
// active child sees events.
type InOrder struct {
	children []Quest
	index    int
}

// NewInOrder returns a sequence over children. An empty sequence is
// complete immediately.
func NewInOrder(children ...Quest) *InOrder {
	return &InOrder{children: children}
}

func (q *InOrder) RegisterEvent(ev types.QuestEvent) Status {
	if q.index >= len(q.children) {
		return Complete
	}
	if q.children[q.index].RegisterEvent(ev) == Complete {
		q.index++
	}
	return q.Status()
}

func (q *InOrder) Status() Status {
	if q.index >= len(q.children) {
		return Complete
	}
	return InProgress
}

func (q *InOrder) Reset() {
	for _, c := range q.children {
		c.Reset()
	}
	q.index = 0
}

func (q *InOrder) Display() string {
	header := checkbox(q.Status()) + "You must, in order, complete each of these quests:"
	return header + "\n" + displayChildren(q.children)
}

// Choice is complete once at least k of its children are. Every event is
// offered to every child, so one branch never blocks another.
type Choice struct {
	children []Quest
	k        int
}

// NewChoice returns a k-of-n group. k is clamped to [0, len(children)].
func NewChoice(k int, children ...Quest) *Choice {
	return &Choice{children: children, k: min(max(k, 0), len(children))}
}

func (q *Choice) RegisterEvent(ev types.QuestEvent) Status {
	for _, c := range q.children {
		c.RegisterEvent(ev)
	}
	return q.Status()
}

func (q *Choice) Status() Status {
	if q.completeCount() >= q.k {
		return Complete
	}
	return InProgress
}

func (q *Choice) completeCount() int {
	n := 0
	for _, c := range q.children {
		if c.Status() == Complete {
			n++
		}
	}
	return n
}

func (q *Choice) Reset() {
	for _, c := range q.children {
		c.Reset()
	}
}

func (q *Choice) Display() string {
	header := fmt.Sprintf("%sYou must complete at least %d of these quests:", checkbox(q.Status()), q.k)
	return header + "\n" + displayChildren(q.children)
}

func checkbox(s Status) string {
	if s == Complete {
		return "[✓] "
	}
	return "[ ] "
}

func describeTarget(b types.Block, et types.EventType) string {
	if et == types.Collect {
		if b.Kind == types.Object {
			return fmt.Sprintf("Collect '%c'", b.Char)
		}
		return "Collect " + b.String()
	}
	switch b.Kind {
	case types.Object:
		return fmt.Sprintf("Walk over '%c'", b.Char)
	case types.Sign:
		return "Walk past a sign"
	case types.Empty:
		return "Walk on open ground"
	}
	return "Walk on " + b.Kind.String()
}

// displayChildren renders each child's display indented under its parent.
func displayChildren(children []Quest) string {
	var lines []string
	for _, c := range children {
		for _, line := range strings.Split(c.Display(), "\n") {
			lines = append(lines, "  "+line)
		}
	}
	return strings.Join(lines, "\n")
}
