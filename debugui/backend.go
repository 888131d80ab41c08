// Package debugui draws an optional Dear ImGui overlay over the game with frame
// timing, per-system scheduler statistics and the live state of the match.
package debugui

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
)

// Backend wraps the Ebiten-specific Dear ImGui backend implementation.
type Backend struct {
	*ebitenbackend.EbitenBackend
}

// NewBackend creates the ImGui context and the Ebiten window it renders into.
func NewBackend(title string, width, height int) *Backend {
	b := ebitenbackend.NewEbitenBackend()
	b.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("") // Disable imgui.ini
	return &Backend{EbitenBackend: b}
}
