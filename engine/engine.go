// Package engine provides the Step() orchestrator that wires movement,
// hazard tracking and quest progress together into a single turn.
package engine

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/nathoo/adventurers/engine/board"
	"github.com/nathoo/adventurers/engine/movement"
	"github.com/nathoo/adventurers/engine/parser"
	"github.com/nathoo/adventurers/engine/quest"
	"github.com/nathoo/adventurers/types"
)

// Engine holds the board and all mutable session state. It is not safe for
// concurrent use.
type Engine struct {
	Board    *board.Board
	Movement *movement.Machine
	Quest    *quest.Tracker

	// CommandLog holds every state-changing command in canonical form, so a
	// session can be rebuilt by replaying it.
	CommandLog []string

	log  logrus.FieldLogger
	over bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. By default nothing is logged.
func WithLogger(l logrus.FieldLogger) Option {
	return func(e *Engine) { e.log = l }
}

// New creates a session on b with the quest tree selected by questKey.
func New(b *board.Board, questKey string, opts ...Option) *Engine {
	silent := logrus.New()
	silent.SetOutput(io.Discard)

	e := &Engine{
		Board:      b,
		Movement:   movement.New(),
		Quest:      quest.Select(questKey),
		CommandLog: []string{},
		log:        silent,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.log.WithFields(logrus.Fields{
		"quest": e.Quest.Key(),
		"cells": b.Len(),
	}).Info("session started")
	return e
}

// Over reports whether the session has ended by drowning or winning.
func (e *Engine) Over() bool {
	return e.over
}

// Step processes one player command and returns the result.
func (e *Engine) Step(cmd types.Command) types.Result {
	// Game over: refuse everything until a load.
	if e.over {
		r := e.snapshot()
		r.Over = true
		r.Output = []string{"Game over. Use /load to restore a save or /quit to exit."}
		return r
	}

	switch cmd.Kind {
	case types.CmdMove:
		return e.move(cmd)

	case types.CmdStatus:
		r := e.snapshot()
		r.Note = &types.Notification{Kind: types.NoteQuest, Title: "Quest", Text: e.Quest.Display()}
		r.Output = strings.Split(r.Note.Text, "\n")
		return r

	case types.CmdReset:
		e.record(cmd)
		e.Quest.Reset()
		e.log.WithField("quest", e.Quest.Key()).Info("quest reset")
		r := e.snapshot()
		r.Output = []string{"Quest progress reset."}
		return r
	}

	// Unmapped input is a deliberate no-op.
	return e.snapshot()
}

func (e *Engine) move(cmd types.Command) types.Result {
	e.record(cmd)

	out, ok := e.Movement.Move(e.Board, cmd.Dir)
	if !ok {
		e.log.WithFields(e.fields()).WithField("dir", cmd.Dir).Debug("blocked by barrier")
		return e.snapshot()
	}

	r := e.snapshot()
	r.Moved = true
	ev := out.Event
	r.Event = &ev
	r.Note = out.Note
	e.log.WithFields(e.fields()).WithFields(logrus.Fields{
		"block": out.Block,
		"event": ev.Type,
	}).Debug("moved")

	if out.Note != nil && out.Note.Kind == types.NoteDrowned {
		e.log.WithFields(e.fields()).Info("player drowned")
		r.Over = true
	}

	// Win replaces any movement message from the same step.
	if e.Quest.RegisterEvent(ev) {
		e.log.WithField("quest", e.Quest.Key()).Info("quest complete")
		r.Note = &types.Notification{Kind: types.NoteWin, Title: "Quest", Text: "YOU WIN!"}
		r.Over = true
	}

	if r.Note != nil {
		r.Output = []string{r.Note.Text}
	}
	e.over = r.Over
	return r
}

func (e *Engine) record(cmd types.Command) {
	e.CommandLog = append(e.CommandLog, parser.Format(cmd))
}

func (e *Engine) snapshot() types.Result {
	return types.Result{
		Position: e.Movement.Player.Position,
		Viewport: e.Movement.Viewport,
	}
}

func (e *Engine) fields() logrus.Fields {
	p := e.Movement.Player
	return logrus.Fields{
		"x":      p.Position.X,
		"y":      p.Position.Y,
		"streak": p.Streak,
	}
}

// Replay feeds previously logged commands through Step. It stops early if
// the session ends.
func (e *Engine) Replay(commands []string) {
	for _, line := range commands {
		if e.over {
			return
		}
		e.Step(parser.Parse(line))
	}
}
