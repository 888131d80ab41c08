package pong

import "github.com/kamstrup/intmap"

//go:generate go tool stringer -type=Key -trimprefix=Key

// Key is a logical game key, independent of the windowing library.
type Key int

const (
	KeyW Key = iota
	KeyS
	KeyArrowUp
	KeyArrowDown
)

// Keys lists every key the game reads.
var Keys = [...]Key{KeyW, KeyS, KeyArrowUp, KeyArrowDown}

// Keyboard reports whether a key is currently held.
type Keyboard interface {
	Pressed(key Key) bool
}

// KeySet is a snapshot of held keys.
type KeySet struct {
	held *intmap.Map[Key, struct{}]
}

// NewKeySet returns a snapshot with the given keys held.
func NewKeySet(keys ...Key) *KeySet {
	k := &KeySet{held: intmap.New[Key, struct{}](len(Keys))}
	for _, key := range keys {
		k.Press(key)
	}
	return k
}

// Press marks key as held.
func (k *KeySet) Press(key Key) {
	k.held.Put(key, struct{}{})
}

// Release marks key as no longer held.
func (k *KeySet) Release(key Key) {
	k.held.Del(key)
}

// Pressed implements Keyboard.
func (k *KeySet) Pressed(key Key) bool {
	_, ok := k.held.Get(key)
	return ok
}

// Reset releases every key.
func (k *KeySet) Reset() {
	k.held.Clear()
}

// Len returns the number of held keys.
func (k *KeySet) Len() int {
	return k.held.Len()
}

// Direction resolves the vertical movement requested for a side: -1 for up, +1 for
// down, 0 when neither or both of its keys are held.
func Direction(keys Keyboard, side Side) float32 {
	if keys == nil {
		return 0
	}
	up, down := side.Bindings()
	switch u, d := keys.Pressed(up), keys.Pressed(down); {
	case u && !d:
		return -1
	case d && !u:
		return 1
	default:
		return 0
	}
}
