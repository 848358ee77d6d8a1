package render

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/capsule3d/pkg/motion"
)

// Key bindings for the character. The scheme is fixed.
var keyBindings = map[motion.Action]glfw.Key{
	motion.Forward: glfw.KeyW,
	motion.Right:   glfw.KeyD,
	motion.Back:    glfw.KeyS,
	motion.Left:    glfw.KeyA,
	motion.Jump:    glfw.KeySpace,
}

// KeyClose ends the frame loop, like the window's close button
const KeyClose = glfw.KeyEscape

// Lighting
var (
	lightOffset = mgl32.Vec3{30, 40, 30} // relative to the character
	lightColor  = mgl32.Vec3{1, 1, 1}
)
