package ui

import (
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/milk9111/pongchaos/common"
)

// NewPauseUI builds the Esc menu. Power-up timers are frozen while it is up.
func NewPauseUI(onResume, onQuit func()) *ebitenui.UI {
	face := Face()

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(solid(panelFill)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/4, common.BaseHeight/4),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	panel.AddChild(newText("Paused", face, white))
	panel.AddChild(newText("Esc to resume, R restarts after a match", face, dim))
	panel.AddChild(newButton("Resume", face, onResume))
	panel.AddChild(newButton("Quit", face, onQuit))

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	return &ebitenui.UI{Container: root}
}
