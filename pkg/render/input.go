package render

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/leterax/capsule3d/internal/openglhelper"
	"github.com/leterax/capsule3d/pkg/motion"
)

// KeyboardInput captures the bound keys once per frame
type KeyboardInput struct {
	window  *openglhelper.Window
	pressed motion.ActionSet // press edges since the last Snapshot
}

// NewKeyboardInput reads keys from window
func NewKeyboardInput(window *openglhelper.Window) *KeyboardInput {
	return &KeyboardInput{window: window}
}

// OnKey records press edges. It is fed from the GLFW key callback.
func (k *KeyboardInput) OnKey(key glfw.Key, action glfw.Action) {
	if action != glfw.Press {
		return
	}
	for a, bound := range keyBindings {
		if key == bound {
			k.pressed = k.pressed.With(a)
		}
	}
}

// Snapshot returns the held keys and the presses seen since the previous call
func (k *KeyboardInput) Snapshot() motion.Snapshot {
	var held motion.ActionSet
	for a, key := range keyBindings {
		if k.window.KeyDown(key) {
			held = held.With(a)
		}
	}

	s := motion.Snapshot{Held: held, Edges: k.pressed}
	k.pressed = 0
	return s
}
