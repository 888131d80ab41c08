package main

import (
	"math/rand/v2"

	"github.com/plus3/pong/engine"
	"github.com/plus3/pong/pong"
)

// Script is a pong.Keyboard that holds a random combination of keys and picks a new
// combination every hold frames.
type Script struct {
	rng   *rand.Rand
	hold  int
	frame int
	keys  *pong.KeySet
}

// NewScript creates a script seeded independently of the match.
func NewScript(seed uint64, hold int) *Script {
	if hold < 1 {
		hold = 1
	}
	return &Script{
		rng:  rand.New(rand.NewPCG(seed, ^seed)),
		hold: hold,
		keys: pong.NewKeySet(),
	}
}

// Advance moves the script forward one frame. Call it before the frame's systems run.
func (s *Script) Advance() {
	if s.frame%s.hold == 0 {
		s.keys.Reset()
		for _, k := range pong.Keys {
			if s.rng.IntN(2) == 0 {
				s.keys.Press(k)
			}
		}
	}
	s.frame++
}

// Pressed implements pong.Keyboard.
func (s *Script) Pressed(key pong.Key) bool {
	return s.keys.Pressed(key)
}

// ScriptSystem advances the script at the start of every frame.
type ScriptSystem struct {
	Script *Script
}

func (s *ScriptSystem) Execute(frame *engine.UpdateFrame[*pong.World]) {
	s.Script.Advance()
}
