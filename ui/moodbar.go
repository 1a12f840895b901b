package ui

import (
	"image"
	"image/color"

	cfg "github.com/automoto/wishcake/config"
	"github.com/automoto/wishcake/theme"
	"github.com/ebitenui/ebitenui"
	eimage "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// activeMarker prefixes the label of the selected mood
const activeMarker = "• "

// MoodBar holds the ebitenui row of mood buttons
type MoodBar struct {
	UI *ebitenui.UI

	// OnSelect is called with the theme identifier of a clicked button
	OnSelect func(name string)

	switcher *theme.Switcher
	row      *widget.Container
	buttons  []*widget.Button
	face     text.Face
}

// NewMoodBar creates one button per switcher button, anchored top-right
func NewMoodBar(switcher *theme.Switcher, face text.Face, onSelect func(name string)) *MoodBar {
	mb := &MoodBar{
		OnSelect: onSelect,
		switcher: switcher,
		face:     face,
	}
	mb.buildUI()
	return mb
}

func (mb *MoodBar) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	row := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(eimage.NewNineSliceColor(color.RGBA{0, 0, 0, 90})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(cfg.MoodBar.Padding)),
			widget.RowLayoutOpts.Spacing(cfg.MoodBar.Spacing),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	for _, b := range mb.switcher.Buttons() {
		id := b.Theme // Capture for closure
		button := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(cfg.MoodBar.ButtonWidth, cfg.MoodBar.ButtonHeight),
			),
			widget.ButtonOpts.Image(buttonImage()),
			widget.ButtonOpts.Text(ButtonLabel(id, b.Active), &mb.face, &widget.ButtonTextColor{
				Idle:    color.RGBA{255, 255, 255, 255},
				Hover:   color.RGBA{255, 255, 200, 255},
				Pressed: color.RGBA{200, 200, 200, 255},
			}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if mb.OnSelect != nil {
					mb.OnSelect(id)
				}
				mb.Refresh()
			}),
		)
		mb.buttons = append(mb.buttons, button)
		row.AddChild(button)
	}

	rootContainer.AddChild(row)
	mb.row = row

	mb.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// Refresh relabels the buttons from the switcher's active flags
func (mb *MoodBar) Refresh() {
	for i, b := range mb.switcher.Buttons() {
		if i >= len(mb.buttons) || mb.buttons[i] == nil {
			continue
		}
		if textWidget := mb.buttons[i].Text(); textWidget != nil {
			textWidget.Label = ButtonLabel(b.Theme, b.Active)
		}
	}
}

func (mb *MoodBar) Update() {
	mb.Refresh()
	mb.UI.Update()
}

// Bounds is the screen area of the button row as of the last Update
func (mb *MoodBar) Bounds() image.Rectangle {
	return mb.row.GetWidget().Rect
}

func (mb *MoodBar) Draw(screen *ebiten.Image) {
	mb.UI.Draw(screen)
}

// ButtonLabel is the caption of a mood button
func ButtonLabel(id string, active bool) string {
	label, ok := cfg.MoodBar.Labels[id]
	if !ok {
		label = id
	}
	if active {
		return activeMarker + label
	}
	return label
}

func buttonImage() *widget.ButtonImage {
	idle := eimage.NewNineSliceColor(color.RGBA{60, 60, 80, 200})
	hover := eimage.NewNineSliceColor(color.RGBA{80, 80, 100, 220})
	pressed := eimage.NewNineSliceColor(color.RGBA{40, 40, 60, 220})
	disabled := eimage.NewNineSliceColor(color.RGBA{40, 40, 40, 200})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}
