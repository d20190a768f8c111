package viewer

import (
	"fmt"
	"time"

	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"github.com/Faultbox/meshview/internal/config"
	"github.com/Faultbox/meshview/internal/engine/input"
	"github.com/Faultbox/meshview/internal/engine/projection"
	"github.com/Faultbox/meshview/internal/engine/render"
	"github.com/Faultbox/meshview/internal/engine/window"
	"github.com/Faultbox/meshview/internal/logger"
	"github.com/Faultbox/meshview/pkg/mesh"
)

const appTitle = "meshview"

// Viewer owns the window, the view state and the frame loop.
type Viewer struct {
	cfg        *config.Config
	state      *State
	controller *Controller
	win        *window.Window
	surface    render.Surface
	input      *input.Input
	viewport   projection.Viewport

	// modelCh carries paths chosen in the file dialog goroutine back to
	// the frame loop's thread, where the load and mesh swap happen.
	modelCh chan string

	frameInterval time.Duration
}

// New creates the viewer window and state. When modelPath is non-empty the
// model is loaded at startup; a failed load logs the error and keeps the
// built-in cube, so the viewer always starts renderable.
func New(cfg *config.Config, modelPath string) (*Viewer, error) {
	win, err := window.New(window.Config{
		Title:  appTitle,
		Width:  cfg.Graphics.Width,
		Height: cfg.Graphics.Height,
		VSync:  cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	fps := cfg.Graphics.FPSLimit
	if fps <= 0 {
		fps = 60
	}

	v := &Viewer{
		cfg:           cfg,
		state:         NewState(cfg.View, mesh.Cube()),
		controller:    NewController(cfg.View),
		win:           win,
		surface:       render.NewSDLSurface(win.Renderer()),
		input:         input.New(),
		viewport:      projection.Viewport{Width: cfg.Graphics.Width, Height: cfg.Graphics.Height},
		modelCh:       make(chan string, 1),
		frameInterval: time.Second / time.Duration(fps),
	}

	if modelPath != "" {
		v.loadModel(modelPath)
	}
	return v, nil
}

// Run drives the frame loop: drain input, apply it to the state, advance
// auto-rotation, project, render, present, then wait out the frame budget.
// It returns nil on a normal exit and an error when the display surface is
// lost.
func (v *Viewer) Run() error {
	logger.Info("starting frame loop")

	frameCount := 0
	fpsTimer := time.Now()
	running := true

	for running {
		frameStart := time.Now()

		v.input.Update()
		v.controller.BeginFrame()
		for _, ev := range v.input.Events() {
			switch v.controller.Apply(v.state, ev) {
			case CommandExit:
				running = false
			case CommandLoadModel:
				v.openModelDialog()
			}
			if ev.Type == input.EventWindowResize {
				v.viewport = projection.Viewport{Width: ev.Width, Height: ev.Height}
			}
		}
		if !running {
			break
		}

		// Pick up a path chosen in the dialog goroutine, if any. The load
		// and swap run here, on the loop's thread; the old mesh stays
		// visible until the new one is fully validated.
		select {
		case path := <-v.modelCh:
			v.loadModel(path)
		default:
		}

		if v.state.AutoRotate && !v.controller.DraggedThisFrame() {
			v.state.AutoRotateStep(v.cfg.View.AutoRotateSpeed)
		}

		points := projection.Project(v.state.Mesh, v.view(), v.viewport)
		err := render.DrawWireframe(v.surface, points, v.state.Mesh.Edges,
			v.state.BackgroundColor(), v.state.ObjectColor())
		if err != nil {
			return fmt.Errorf("display surface lost: %w", err)
		}
		v.surface.Present()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Sugar.Debugw("fps", "frames", frameCount)
			frameCount = 0
			fpsTimer = time.Now()
		}

		if wait := v.frameInterval - time.Since(frameStart); wait > 0 {
			time.Sleep(wait)
		}
	}

	logger.Info("frame loop stopped")
	return nil
}

// Close releases the window and SDL.
func (v *Viewer) Close() {
	v.win.Close()
}

func (v *Viewer) view() projection.View {
	return projection.View{
		RotationX: v.state.RotationX,
		RotationY: v.state.RotationY,
		Zoom:      v.state.Zoom,
		Distance:  v.cfg.View.CameraDistance,
		Scale:     v.cfg.View.Scale,
	}
}

// loadModel loads a model file and swaps it in. On failure the current mesh
// is left untouched and the error is surfaced in the log and window title.
func (v *Viewer) loadModel(path string) {
	m, err := mesh.Load(path)
	if err != nil {
		logger.Error("model load failed", zap.String("path", path), zap.Error(err))
		v.win.SetTitle(fmt.Sprintf("%s — load failed: %v", appTitle, err))
		return
	}

	v.state.SetMesh(m)
	v.win.SetTitle(fmt.Sprintf("%s — %s (%d vertices, %d edges)",
		appTitle, m.Name, len(m.Vertices), len(m.Edges)))
	logger.Sugar.Infow("model loaded",
		"name", m.Name,
		"vertices", len(m.Vertices),
		"faces", len(m.Faces),
		"edges", len(m.Edges),
	)
}

// openModelDialog shows the native open-file dialog without blocking the
// frame loop. The chosen path is queued for the loop's thread; if a previous
// choice is still pending the new one is dropped.
func (v *Viewer) openModelDialog() {
	go func() {
		path, err := dialog.File().
			Filter("Wavefront OBJ", "obj").
			Filter("glTF", "glb", "gltf").
			Filter("All Files", "*").
			Title("Open Model").
			Load()
		if err != nil {
			if err != dialog.ErrCancelled {
				logger.Error("file dialog failed", zap.Error(err))
			}
			return
		}

		select {
		case v.modelCh <- path:
		default:
		}
	}()
}
