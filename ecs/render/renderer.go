package render

import (
	"fmt"
	"image/color"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/platformer/assets"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/sim"
)

var (
	skyColor       = color.RGBA{R: 144, G: 201, B: 120, A: 255}
	tileColor      = color.RGBA{R: 92, G: 64, B: 51, A: 255}
	playerColor    = color.RGBA{R: 66, G: 135, B: 245, A: 255}
	hostileColor   = color.RGBA{R: 200, G: 50, B: 50, A: 255}
	deadColor      = color.RGBA{R: 90, G: 90, B: 90, A: 255}
	projectileClr  = color.RGBA{R: 255, G: 230, B: 0, A: 255}
	explosiveColor = color.RGBA{R: 30, G: 30, B: 30, A: 255}
	blastColor     = color.RGBA{R: 255, G: 140, B: 0, A: 200}
	exitColor      = color.RGBA{R: 240, G: 240, B: 240, A: 255}
	decoColor      = color.RGBA{R: 60, G: 140, B: 60, A: 255}
	debugColor     = color.RGBA{R: 255, G: 0, B: 255, A: 200}
	healthRed      = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	healthGreen    = color.RGBA{R: 0, G: 255, B: 0, A: 255}
)

var pickupColors = map[int]color.RGBA{
	23: {R: 200, G: 170, B: 40, A: 255},
	24: {R: 160, G: 60, B: 20, A: 255},
	25: {R: 220, G: 40, B: 140, A: 255},
}

// Renderer draws simulation snapshots. Images are looked up by path in the
// asset filesystem (Background/, Tile/, icons/, explosion/ and the unit
// frame folders); anything missing is drawn as a flat rectangle.
type Renderer struct {
	Width  float64
	Height float64
	Debug  bool
	// PlayerType is the unit type drawn in the player colour when it has no
	// frames.
	PlayerType string

	loader *ImageLoader
	anims  *AnimationLibrary
}

func NewRenderer(width, height float64, fsys fs.FS, provider assets.Provider) *Renderer {
	loader := NewImageLoader(fsys)
	return &Renderer{
		Width:  width,
		Height: height,
		loader: loader,
		anims:  NewAnimationLibrary(provider, loader),
	}
}

func (r *Renderer) Draw(screen *ebiten.Image, snap sim.Snapshot) {
	r.drawBackground(screen, snap)
	r.drawTiles(screen, snap)
	for _, d := range snap.Drawables {
		r.drawEntity(screen, d)
	}
	r.drawHUD(screen, snap.HUD)
	if r.Debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("level %d  frame %d  camera %.0f  FPS %.1f", snap.Level, snap.Frame, snap.CameraX, ebiten.ActualFPS()), 10, int(r.Height)-20)
	}
}

func (r *Renderer) drawBackground(screen *ebiten.Image, snap sim.Snapshot) {
	screen.Fill(skyColor)
	for i, layer := range snap.Parallax {
		img := r.loader.Lookup("Background/" + layer.Name + ".png")
		if img == nil {
			band := r.Height / 4
			y := float64(i+1) * band
			shade := uint8(max(200-40*i, 40))
			vector.FillRect(screen, 0, float32(y), float32(r.Width), float32(band), color.RGBA{R: shade / 2, G: shade, B: shade / 2, A: 90}, false)
			continue
		}
		w := float64(img.Bounds().Dx())
		h := float64(img.Bounds().Dy())
		for x := layer.Offset; x < r.Width; x += w {
			if x+w < 0 {
				continue
			}
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(x, r.Height-h-float64(len(snap.Parallax)-1-i)*h/4)
			screen.DrawImage(img, op)
		}
	}
}

func (r *Renderer) drawTiles(screen *ebiten.Image, snap sim.Snapshot) {
	for _, o := range snap.Obstacles {
		x := o.Rect.X - snap.CameraX
		if x+o.Rect.W < 0 || x > r.Width {
			continue
		}
		if img := r.loader.Lookup(fmt.Sprintf("Tile/%d.png", o.Code)); img != nil {
			drawScaled(screen, img, x, o.Rect.Y, o.Rect.W, o.Rect.H, false)
			continue
		}
		vector.FillRect(screen, float32(x), float32(o.Rect.Y), float32(o.Rect.W), float32(o.Rect.H), tileColor, false)
		vector.StrokeRect(screen, float32(x), float32(o.Rect.Y), float32(o.Rect.W), float32(o.Rect.H), 1, color.Black, false)
	}
}

func (r *Renderer) drawEntity(screen *ebiten.Image, d sim.Drawable) {
	if d.ScreenX+d.W < 0 || d.ScreenX > r.Width {
		return
	}
	img, clr := r.look(d)
	if img != nil {
		drawScaled(screen, img, d.ScreenX, d.Y, d.W, d.H, d.Facing < 0)
	} else {
		vector.FillRect(screen, float32(d.ScreenX), float32(d.Y), float32(d.W), float32(d.H), clr, false)
	}
	if r.Debug {
		vector.StrokeRect(screen, float32(d.ScreenX), float32(d.Y), float32(d.W), float32(d.H), 1, debugColor, false)
	}
}

func (r *Renderer) look(d sim.Drawable) (*ebiten.Image, color.Color) {
	switch d.Kind {
	case component.KindUnit:
		clr := hostileColor
		if d.UnitType != "" && d.UnitType == r.PlayerType {
			clr = playerColor
		}
		if !d.Alive {
			clr = deadColor
		}
		return r.anims.Frame(d.UnitType, d.Anim, d.Frame), clr
	case component.KindProjectile:
		return r.loader.Lookup("icons/bullet.png"), projectileClr
	case component.KindExplosive:
		return r.loader.Lookup("icons/grenade.png"), explosiveColor
	case component.KindExplosion:
		return r.loader.Lookup(fmt.Sprintf("explosion/exp%d.png", d.Frame+1)), blastColor
	case component.KindPickup:
		return r.loader.Lookup(fmt.Sprintf("Tile/%d.png", d.Code)), pickupColors[d.Code]
	case component.KindExit:
		return r.loader.Lookup(fmt.Sprintf("Tile/%d.png", d.Code)), exitColor
	case component.KindDecoration:
		return r.loader.Lookup(fmt.Sprintf("Tile/%d.png", d.Code)), decoColor
	}
	return nil, debugColor
}

func (r *Renderer) drawHUD(screen *ebiten.Image, hud sim.HUD) {
	const x, y, w, h = 10, 10, 150, 20
	ratio := 0.0
	if hud.MaxHealth > 0 {
		ratio = float64(hud.Health) / float64(hud.MaxHealth)
	}
	vector.FillRect(screen, x-2, y-2, w+4, h+4, color.Black, false)
	vector.FillRect(screen, x, y, w, h, healthRed, false)
	vector.FillRect(screen, x, y, float32(w*ratio), h, healthGreen, false)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("AMMO: %d", hud.Ammo), x, y+h+10)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("GRENADES: %d", hud.Explosives), x, y+h+30)
}

// Flush drops cached images so edited files are picked up.
func (r *Renderer) Flush() {
	r.loader.Flush()
	r.anims.clips = make(map[string][]assets.Frame)
}

func drawScaled(screen, img *ebiten.Image, x, y, w, h float64, flip bool) {
	iw, ih := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())
	if iw == 0 || ih == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterNearest
	sx, sy := w/iw, h/ih
	if flip {
		op.GeoM.Scale(-sx, sy)
		op.GeoM.Translate(x+w, y)
	} else {
		op.GeoM.Scale(sx, sy)
		op.GeoM.Translate(x, y)
	}
	screen.DrawImage(img, op)
}
