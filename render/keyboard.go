package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/pong/pong"
)

var keymap = map[pong.Key]ebiten.Key{
	pong.KeyW:         ebiten.KeyW,
	pong.KeyS:         ebiten.KeyS,
	pong.KeyArrowUp:   ebiten.KeyArrowUp,
	pong.KeyArrowDown: ebiten.KeyArrowDown,
}

// SampleKeys overwrites keys with the keys ebiten currently reports as held.
func SampleKeys(keys *pong.KeySet) {
	keys.Reset()
	for _, k := range pong.Keys {
		if ebiten.IsKeyPressed(keymap[k]) {
			keys.Press(k)
		}
	}
}
