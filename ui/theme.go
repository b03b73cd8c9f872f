package ui

import (
	"image/color"

	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

var (
	white     = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	dim       = color.NRGBA{R: 0xb0, G: 0xbe, B: 0xc5, A: 0xff}
	panelFill = color.NRGBA{A: 200}
	buttonBg  = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	buttonHot = color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff}
)

// Face is the shared UI font.
func Face() *ebtext.Face {
	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	return &face
}

func solid(c color.Color) *imageui.NineSlice {
	return imageui.NewNineSliceColor(c)
}

func centered() widget.RowLayoutData {
	return widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}
}

func newButton(label string, face *ebtext.Face, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: solid(buttonBg), Hover: solid(buttonHot), Pressed: solid(buttonHot)}),
		widget.ButtonOpts.Text(label, face, &widget.ButtonTextColor{Idle: white}),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(centered())),
		widget.ButtonOpts.ClickedHandler(func(*widget.ButtonClickedEventArgs) {
			if onClick != nil {
				onClick()
			}
		}),
	)
}

func newText(label string, face *ebtext.Face, c color.Color) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(label, face, c),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(centered())),
	)
}

func setVisible(c *widget.Container, visible bool) {
	if visible {
		c.GetWidget().Visibility = widget.Visibility_Show
	} else {
		c.GetWidget().Visibility = widget.Visibility_Hide
	}
}
