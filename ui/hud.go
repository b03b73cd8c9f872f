package ui

import (
	"fmt"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

// HUD is the scoreboard plus a one-line hint and the winner banner.
type HUD struct {
	ui     *ebitenui.UI
	score  *widget.Text
	hint   *widget.Text
	banner *widget.Container
	winner *widget.Text
}

func NewHUD() *HUD {
	face := Face()
	h := &HUD{}

	h.score = newText("0   0", face, white)
	h.hint = newText("", face, dim)
	top := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 16}),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionCenter,
			VerticalPosition:   widget.AnchorLayoutPositionStart,
		})),
	)
	top.AddChild(h.score)
	top.AddChild(h.hint)

	h.winner = newText("", face, white)
	h.banner = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(solid(panelFill)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 24, Bottom: 24, Left: 48, Right: 48}),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionCenter,
			VerticalPosition:   widget.AnchorLayoutPositionCenter,
		})),
	)
	h.banner.AddChild(h.winner)
	h.banner.AddChild(newText("Press R to play again", face, dim))
	setVisible(h.banner, false)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(top)
	root.AddChild(h.banner)
	h.ui = &ebitenui.UI{Container: root}
	return h
}

// Set updates the score line, the hint and the banner. An empty winner hides
// the banner.
func (h *HUD) Set(left, right int, hint, winner string) {
	h.score.Label = fmt.Sprintf("%d   %d", left, right)
	h.hint.Label = hint
	h.winner.Label = winner
	setVisible(h.banner, winner != "")
}

func (h *HUD) Update() {
	h.ui.Update()
}

func (h *HUD) Draw(screen *ebiten.Image) {
	h.ui.Draw(screen)
}
