//go:build !ebiten

package ui

import "flash-ca/internal/core"

// HUD is a placeholder used when the GUI build tag is absent.
type HUD struct{}

// NewHUD returns a placeholder HUD in headless builds.
func NewHUD(core.Sim, int) *HUD { return &HUD{} }

// Width reports zero in headless builds.
func (h *HUD) Width() int { return 0 }

// Update is a no-op placeholder.
func (h *HUD) Update() {}

// Draw is a no-op placeholder to satisfy the interface shape.
func (h *HUD) Draw(any, int) {}
