// Package render draws the scene with OpenGL and drives the frame loop.
package render

import (
	_ "embed"
	"fmt"
	"log"
	"time"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/capsule3d/internal/openglhelper"
	"github.com/leterax/capsule3d/pkg/clock"
	"github.com/leterax/capsule3d/pkg/config"
	"github.com/leterax/capsule3d/pkg/game"
	"github.com/leterax/capsule3d/pkg/geometry"
)

var (
	//go:embed shaders/scene.vert
	vertexShaderSource string
	//go:embed shaders/scene.frag
	fragmentShaderSource string
)

// Renderer handles rendering logic and game loop
type Renderer struct {
	cfg    *config.Config
	window *openglhelper.Window
	input  *KeyboardInput
	world  *game.World

	shader  *openglhelper.Shader
	capsule *openglhelper.Mesh
	marker  *openglhelper.Mesh
	grid    *openglhelper.Mesh

	// Timing
	timer   *clock.FrameTimer
	limiter *clock.Limiter
	fps     *clock.FPSCounter

	closed bool
}

// NewRenderer opens the window and uploads the scene described by cfg
func NewRenderer(cfg *config.Config) (*Renderer, error) {
	window, err := openglhelper.NewWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, cfg.Window.VSync)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	shader, err := openglhelper.NewShader(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		window.Close()
		return nil, fmt.Errorf("failed to load shader: %w", err)
	}

	c := cfg.Capsule
	steady := clock.Monotonic{}
	r := &Renderer{
		cfg:    cfg,
		window: window,
		input:  NewKeyboardInput(window),
		world:  game.NewWorld(cfg.Tuning(), cfg.NewCamera(), c.Height, c.Radius+c.MarkerRadius),
		shader: shader,

		capsule: openglhelper.NewMesh(geometry.Capsule(c.Radius, c.Height, c.Slices, c.Rings, c.Color.Vec3)),
		marker:  openglhelper.NewMesh(geometry.Capsule(c.MarkerRadius, 0, c.Slices, c.Rings, c.MarkerColor.Vec3)),
		grid:    openglhelper.NewMesh(geometry.Grid(cfg.Grid.Slices, cfg.Grid.Spacing, cfg.Grid.Color.Vec3, cfg.Grid.AxisColor.Vec3)),

		timer:   clock.NewFrameTimer(steady),
		limiter: clock.NewLimiter(steady, cfg.Window.TargetFPS),
		fps:     clock.NewFPSCounter(time.Second),
	}

	// Set up callbacks
	window.GLFWWindow().SetKeyCallback(r.keyCallback)
	window.GLFWWindow().SetFramebufferSizeCallback(r.framebufferSizeCallback)

	r.window.SetTitle(r.title())
	return r, nil
}

// Run starts the main frame loop. It returns once the window was asked to close
// and the frame in flight has been presented.
func (r *Renderer) Run() {
	defer r.Cleanup()

	for !r.window.ShouldClose() {
		dt := r.timer.Tick()

		r.world.Step(r.input.Snapshot(), dt)

		if r.fps.Frame(dt) {
			r.window.SetTitle(r.title())
		}

		r.render()
		checkGLError()

		// Swap buffers and poll events
		r.window.SwapBuffers()
		r.window.PollEvents()
		r.limiter.Wait()
	}
}

// render draws one frame from the world's current state
func (r *Renderer) render() {
	r.window.Clear(r.cfg.Window.Background.Vec3)

	cam := r.world.Camera
	r.shader.Use()
	r.shader.SetMat4("view", cam.ViewMatrix())
	r.shader.SetMat4("projection", cam.ProjectionMatrix(r.window.Aspect()))
	r.shader.SetVec3("lightPos", r.world.State.Position.Add(lightOffset))
	r.shader.SetVec3("lightColor", lightColor)

	// Character
	r.shader.SetBool("lit", true)
	r.drawAt(r.capsule, r.world.CapsuleBase())
	r.drawAt(r.marker, r.world.FacingMarker())

	// Ground
	r.shader.SetBool("lit", false)
	r.drawAt(r.grid, mgl32.Vec3{})
}

func (r *Renderer) drawAt(mesh *openglhelper.Mesh, pos mgl32.Vec3) {
	r.shader.SetMat4("model", mgl32.Translate3D(pos.X(), pos.Y(), pos.Z()))
	mesh.Draw()
}

// title is the text overlay: the welcome line and the frame rate
func (r *Renderer) title() string {
	return fmt.Sprintf("%s | %s | %d FPS", r.cfg.Window.Title, r.cfg.HUD.Welcome, r.fps.FPS())
}

// Cleanup frees all resources
func (r *Renderer) Cleanup() {
	if r.closed {
		return
	}
	r.closed = true

	r.capsule.Delete()
	r.marker.Delete()
	r.grid.Delete()
	r.shader.Delete()

	// Close window
	r.window.Close()
}

func checkGLError() {
	if code := gl.GetError(); code != gl.NO_ERROR {
		log.Printf("OpenGL error 0x%04X", code)
	}
}

// Callback functions
func (r *Renderer) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if key == KeyClose && action == glfw.Press {
		r.window.RequestClose()
		return
	}
	r.input.OnKey(key, action)
}

func (r *Renderer) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	r.window.OnResize(width, height)
}
