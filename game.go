package main

import (
	"context"
	"errors"
	"image/color"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/platformer/ecs/render"
	"github.com/milk9111/platformer/prefabs"
	"github.com/milk9111/platformer/sim"
	"github.com/milk9111/platformer/storage"
)

type screenState uint8

const (
	stateMenu screenState = iota
	statePlaying
	stateDead
	stateComplete
)

var (
	fadeColor  = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	deathColor = color.RGBA{R: 235, G: 65, B: 54, A: 255}
)

type Game struct {
	rt       *runtime
	log      *log.Logger
	cues     sim.CuePlayer
	renderer *render.Renderer
	runs     *storage.Store
	watcher  *prefabs.Watcher

	state  screenState
	width  int
	height int
	// fade counts up to the screen size while a transition is drawn.
	fade      int
	fadeSpeed int
	fading    bool
	quit      bool

	menuUI     *ebitenui.UI
	deadUI     *ebitenui.UI
	completeUI *ebitenui.UI
}

func runPlay(opts options, logger *log.Logger) error {
	cues, err := newAudioCues(logger)
	if err != nil {
		return err
	}
	defer cues.close()
	if err := cues.loopMusic(assetsFS(opts)); err != nil {
		logger.Warn("music disabled", "err", err)
	}
	rt, err := newRuntime(opts, logger, cues)
	if err != nil {
		return err
	}
	g := newGame(rt, cues)
	defer g.close()

	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle("Shooter")
	ebiten.SetTPS(max(rt.specs.Game.FPS, 1))
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func newGame(rt *runtime, cues sim.CuePlayer) *Game {
	spec := rt.specs.Game
	g := &Game{
		rt:        rt,
		log:       rt.log.WithPrefix("game"),
		cues:      cues,
		width:     int(spec.Screen.Width),
		height:    int(spec.Screen.Height),
		fadeSpeed: max(spec.FadeSpeed, 1),
		runs:      openRuns(rt.opts, rt.log),
	}

	g.renderer = render.NewRenderer(spec.Screen.Width, spec.Screen.Height, assetsFS(rt.opts), rt.assets)
	g.renderer.Debug = rt.opts.debug
	g.renderer.PlayerType = rt.specs.Player.Type

	g.menuUI = newMenuUI("Shooter", g.width, g.height,
		menuButton{label: "Start", onClick: g.start},
		menuButton{label: "Exit", onClick: func() { g.quit = true }},
	)
	g.deadUI = newMenuUI("You died", g.width, g.height,
		menuButton{label: "Restart", onClick: g.restart},
		menuButton{label: "Exit", onClick: func() { g.quit = true }},
	)
	g.completeUI = newMenuUI("Game complete", g.width, g.height,
		menuButton{label: "Exit", onClick: func() { g.quit = true }},
	)

	if rt.opts.watch {
		w, err := prefabs.NewWatcher(prefabs.DiskDir)
		if err != nil {
			g.log.Warn("prefab watch disabled", "dir", prefabs.DiskDir, "err", err)
		} else {
			g.watcher = w
		}
	}
	return g
}

func (g *Game) close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
	if g.runs != nil {
		_ = g.runs.Close()
	}
}

func (g *Game) start() {
	g.state = statePlaying
	g.beginFade()
}

func (g *Game) restart() {
	if err := g.rt.sim.Restart(); err != nil {
		g.log.Error("restart", "err", err)
		return
	}
	g.state = statePlaying
	g.beginFade()
}

func (g *Game) beginFade() {
	g.fade = 0
	g.fading = true
}

func (g *Game) Update() error {
	if g.quit || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if g.state == statePlaying {
			g.record(storage.OutcomeQuit)
		}
		return ebiten.Termination
	}
	g.reloadSpecs()

	switch g.state {
	case stateMenu:
		g.menuUI.Update()
	case stateDead:
		g.fade = min(g.fade+g.fadeSpeed, g.height/2)
		g.deadUI.Update()
	case stateComplete:
		g.completeUI.Update()
	case statePlaying:
		if g.fading {
			g.fade += g.fadeSpeed
			if g.fade >= g.width {
				g.fading = false
			}
		}
		g.step()
	}
	return nil
}

func (g *Game) step() {
	s := g.rt.sim
	res := s.Step(readInput())
	switch {
	case res.PlayerDied:
		g.record(storage.OutcomeDied)
		g.state = stateDead
		g.fade = 0
	case res.LevelComplete:
		g.record(storage.OutcomeComplete)
		if err := s.Advance(); err != nil {
			if !errors.Is(err, sim.ErrGameComplete) {
				g.log.Error("advance", "err", err)
			}
			g.state = stateComplete
			return
		}
		g.beginFade()
	}
}

func (g *Game) record(outcome storage.Outcome) {
	record(context.Background(), g.runs, g.log, runRecord(g.rt.sim, outcome))
}

// reloadSpecs rebuilds the simulation when prefab files change on disk.
func (g *Game) reloadSpecs() {
	if g.watcher == nil {
		return
	}
	names := g.watcher.Pending()
	if len(names) == 0 {
		return
	}
	specs, err := loadSpecs(g.rt.opts)
	if err != nil {
		g.log.Warn("prefab reload failed", "files", names, "err", err)
		return
	}
	level := g.rt.sim.Level()
	g.rt.specs = specs
	g.rt.opts.level = level
	if err := g.rt.rebuild(g.cues); err != nil {
		g.log.Warn("prefab reload failed", "files", names, "err", err)
		return
	}
	g.renderer.Flush()
	g.log.Info("prefabs reloaded", "files", names, "level", level)
}

func (g *Game) Draw(screen *ebiten.Image) {
	switch g.state {
	case stateMenu:
		screen.Fill(color.RGBA{R: 40, G: 40, B: 60, A: 255})
		g.menuUI.Draw(screen)
		return
	case stateComplete:
		g.renderer.Draw(screen, g.rt.sim.Snapshot())
		g.completeUI.Draw(screen)
		return
	}

	g.renderer.Draw(screen, g.rt.sim.Snapshot())
	w, h := float32(g.width), float32(g.height)
	f := float32(g.fade)
	switch {
	case g.state == stateDead:
		// closes in from top and bottom
		vector.FillRect(screen, 0, 0, w, f, deathColor, false)
		vector.FillRect(screen, 0, h-f, w, f, deathColor, false)
		g.deadUI.Draw(screen)
	case g.fading:
		// panels opening outward from the middle
		vector.FillRect(screen, -f, 0, w/2, h, fadeColor, false)
		vector.FillRect(screen, w/2+f, 0, w, h, fadeColor, false)
		vector.FillRect(screen, 0, -f, w, h/2, fadeColor, false)
		vector.FillRect(screen, 0, h/2+f, w, h, fadeColor, false)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func assetsFS(opts options) fs.FS {
	if opts.assetsDir == "" {
		return nil
	}
	return os.DirFS(opts.assetsDir)
}
