package ui

import (
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"golang.org/x/image/colornames"
)

// NewStartUI builds the title screen. onStart runs when the Start button is
// clicked; onQuit may be nil.
func NewStartUI(onStart, onQuit func()) *ebitenui.UI {
	face := Face()

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(solid(panelFill)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(12),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 30, Bottom: 30, Left: 60, Right: 60}),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionCenter,
			VerticalPosition:   widget.AnchorLayoutPositionCenter,
		})),
	)
	panel.AddChild(newText("PONG CHAOS", face, colornames.Gold))
	panel.AddChild(newText("W/S or arrows to move, grab orbs for power-ups", face, dim))
	panel.AddChild(newButton("Start", face, onStart))
	if onQuit != nil {
		panel.AddChild(newButton("Quit", face, onQuit))
	}

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	return &ebitenui.UI{Container: root}
}
