package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/hubastard/grovegui/engine/assets"
	"github.com/hubastard/grovegui/engine/config"
	"github.com/hubastard/grovegui/engine/core"
	glbackend "github.com/hubastard/grovegui/engine/gfx/gl"
	"github.com/hubastard/grovegui/engine/gui"
	"github.com/hubastard/grovegui/engine/gui/imguictx"
	"github.com/hubastard/grovegui/engine/guibridge"
	"github.com/hubastard/grovegui/engine/platform"
	"github.com/hubastard/grovegui/engine/profiler"
	"github.com/hubastard/grovegui/engine/scratch"
)

type App struct {
	cfg config.Config

	ctx      *imguictx.Context
	bridge   *guibridge.Bridge
	registry *guibridge.TextureRegistry
	scene    *sceneLayer

	image    core.Texture
	imageID  gui.TextureID
	hasImage bool

	lastFrame time.Time
	frameMS   float32
	tick      int
	demo      demoState
	text      *scratch.Buffer
}

func (a *App) OnStart(e *core.Engine) {
	profiler.Init(1 << 10) // ~1K scope samples

	a.ctx = imguictx.New()
	a.registry = guibridge.NewTextureRegistry()
	painter, err := guibridge.NewPainter(e.Renderer, guibridge.PainterOptions{
		Resolver: a.registry,
		Scissor:  a.cfg.ScissorEnabled(),
	})
	if err != nil {
		panic(err)
	}
	a.bridge = guibridge.New(a.ctx, painter)

	if path := a.cfg.GUI.Image; path != "" {
		if err := a.loadImage(e.Renderer, path); err != nil {
			slog.Warn("gui image not loaded", "path", path, "error", err)
		}
	}

	a.demo = newDemoState()
	a.text = scratch.New(4096) // 4 KB of per-frame label text

	// Bottom-up: the scene renders first and the GUI sees events first.
	a.scene = newSceneLayer(a.bridge, a.image)
	e.PushLayer(a.scene)
	e.PushLayer(guibridge.NewLayer(a.bridge, a.build))
}

func (a *App) loadImage(r core.Renderer, path string) error {
	img, err := assets.LoadImage(path)
	if err != nil {
		return err
	}
	tex, err := r.CreateTexture(core.TextureDesc{
		Width:     img.Width,
		Height:    img.Height,
		Format:    core.TextureRGBA8,
		Pixels:    img.Pixels,
		MinFilter: "linear",
		MagFilter: "linear",
		WrapU:     "clamp",
		WrapV:     "clamp",
	})
	if err != nil {
		return err
	}
	a.image = tex
	a.imageID = a.registry.Register(tex)
	a.hasImage = true
	slog.Info("gui image registered", "path", path, "id", a.imageID, "w", img.Width, "h", img.Height)
	return nil
}

func (a *App) build(e *core.Engine) {
	defer profiler.Start("sandbox.build")()
	a.statsWindow(e)
	a.demoWindow(e)
}

func (a *App) OnUpdate(e *core.Engine, dt float64) {
	a.tick++

	now := time.Now()
	if !a.lastFrame.IsZero() {
		a.frameMS = float32(now.Sub(a.lastFrame).Seconds() * 1000.0)
	}
	a.lastFrame = now
}

func (a *App) OnRender(e *core.Engine, alpha float64) {}

// OnEvent sees only what the GUI did not capture.
func (a *App) OnEvent(e *core.Engine, ev core.Event) {
	switch v := ev.(type) {
	case core.EventKey:
		if !v.Down {
			return
		}
		switch {
		case v.Key == core.KeyP && v.Mods&core.ModCtrl != 0:
			if path, err := profiler.Dump(); err != nil {
				slog.Error("profiler dump", "error", err)
			} else if path != "" {
				slog.Info("speedscope dump", "path", path)
			}
		case v.Key == core.KeyEscape:
			e.Window.RequestClose()
		}
	case core.EventCloseRequested:
		e.Window.RequestClose()
	}
}

func (a *App) OnShutdown(e *core.Engine) {
	if a.hasImage {
		a.registry.Unregister(a.imageID)
		e.Renderer.DestroyTexture(a.image)
	}
	a.ctx.Destroy()
}

func main() {
	cfgPath := flag.String("config", config.DefaultFilename, "path to the sandbox config file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		slog.Error("config", "error", err)
		os.Exit(1)
	}
	app := &App{cfg: cfg}

	newRenderer := func(win core.Window, cfg core.Config) (core.Renderer, error) {
		return glbackend.NewRendererGL(win, cfg)
	}

	if err := core.Run(app, cfg.Engine(), platform.NewWindow, newRenderer); err != nil {
		slog.Error("run", "error", err)
		os.Exit(1)
	}
}
