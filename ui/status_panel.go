package ui

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/pongchaos/powerup"
)

const (
	barWidth  = 220
	barHeight = 8
)

// StatusPanel shows the active power-up: its name in its glow colour, the
// time left and a bar that drains with it. It only reads the controller.
type StatusPanel struct {
	source powerup.StatusSource
	ui     *ebitenui.UI
	panel  *widget.Container
	name   *widget.Text
	timer  *widget.Text

	view StatusView
	now  float64
}

func NewStatusPanel(source powerup.StatusSource) *StatusPanel {
	face := Face()
	p := &StatusPanel{source: source}

	p.name = newText("", face, white)
	p.timer = newText("", face, dim)

	p.panel = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(solid(panelFill)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(4),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 8, Bottom: 8 + barHeight*2, Left: 16, Right: 16}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(barWidth+32, 0),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)
	p.panel.AddChild(p.name)
	p.panel.AddChild(p.timer)
	setVisible(p.panel, false)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(p.panel)
	p.ui = &ebitenui.UI{Container: root}
	return p
}

// Update refreshes the panel from the controller; dt is unscaled seconds.
func (p *StatusPanel) Update(dt float64) {
	if p == nil || p.source == nil {
		return
	}
	p.now += dt
	p.show(ViewOf(p.source.Status(), p.now))
	p.ui.Update()
}

func (p *StatusPanel) show(view StatusView) {
	if view.Visible != p.view.Visible {
		setVisible(p.panel, view.Visible)
	}
	p.view = view
	if view.Visible {
		p.name.Label = view.Name
		p.name.SetColor(view.Tint)
		p.timer.Label = view.Timer
	}
}

func (p *StatusPanel) Draw(screen *ebiten.Image) {
	if p == nil || !p.view.Visible {
		return
	}
	p.ui.Draw(screen)

	rect := p.panel.GetWidget().Rect
	h := barHeight * p.view.Pulse
	x := float32(rect.Min.X + (rect.Dx()-barWidth)/2)
	y := float32(float64(rect.Max.Y) - barHeight*1.5 - (h-barHeight)/2)
	vector.DrawFilledRect(screen, x, y, barWidth, float32(h), color.NRGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xff}, false)
	vector.DrawFilledRect(screen, x, y, float32(barWidth*p.view.Fill), float32(h), p.view.Tint, false)
}
