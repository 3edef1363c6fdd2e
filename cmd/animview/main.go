// Command animview previews unit animations from an assets directory.
package main

import (
	"fmt"
	"image/color"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/spf13/cobra"

	"github.com/milk9111/platformer/assets"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/ecs/render"
)

const viewSize = 512

type viewer struct {
	provider assets.Provider
	loader   *render.ImageLoader
	unitType string
	scale    float64

	state      int
	frames     []assets.Frame
	current    int
	tick       int
	frameTicks int
	err        error
}

func (v *viewer) load() {
	states := component.AnimStates()
	name := states[v.state].String()
	anim, err := v.provider.Animation(v.unitType, name)
	v.frames, v.err = anim.Frames, err
	v.current, v.tick = 0, 0
}

func (v *viewer) Update() error {
	states := component.AnimStates()
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyRight):
		v.state = (v.state + 1) % len(states)
		v.load()
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		v.state = (v.state + len(states) - 1) % len(states)
		v.load()
	}
	if len(v.frames) <= 1 {
		return nil
	}
	v.tick++
	if v.tick >= v.frameTicks {
		v.tick = 0
		v.current = (v.current + 1) % len(v.frames)
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x00, 0x00, 0x00, 0xff})
	name := component.AnimStates()[v.state]
	if v.err != nil {
		ebitenutil.DebugPrintAt(screen, v.err.Error(), 10, 10)
		return
	}
	if len(v.frames) > 0 {
		frame := v.frames[v.current]
		if img := v.loader.Lookup(frame.Path); img != nil {
			w := float64(frame.Width) * v.scale
			h := float64(frame.Height) * v.scale
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(v.scale, v.scale)
			op.GeoM.Translate((viewSize-w)/2, (viewSize-h)/2)
			op.Filter = ebiten.FilterNearest
			screen.DrawImage(img, op)
		}
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s %s  frame %d/%d  (left/right to switch)", v.unitType, name, v.current+1, len(v.frames)), 10, 10)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return viewSize, viewSize
}

func main() {
	var dir string
	var scale float64
	var ticks int
	logger := log.New(os.Stderr)

	cmd := &cobra.Command{
		Use:   "animview <unit-type>",
		Short: "Preview unit animations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fsys := os.DirFS(dir)
			v := &viewer{
				provider:   assets.NewFSProvider(fsys, "."),
				loader:     render.NewImageLoader(fsys),
				unitType:   args[0],
				scale:      scale,
				frameTicks: max(ticks, 1),
			}
			v.load()
			ebiten.SetWindowSize(viewSize, viewSize)
			ebiten.SetWindowTitle("animview " + args[0])
			if err := ebiten.RunGame(v); err != nil && err != ebiten.Termination {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "assets", "assets", "assets directory")
	cmd.Flags().Float64Var(&scale, "scale", 3, "draw scale")
	cmd.Flags().IntVar(&ticks, "ticks", 6, "frames each image is held")

	if err := cmd.Execute(); err != nil {
		logger.Error("animview", "err", err)
		os.Exit(1)
	}
}
