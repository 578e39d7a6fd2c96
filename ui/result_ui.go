package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"log"

	"github.com/automoto/survivor/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// ResultSummary is what the result panel shows about a finished run.
type ResultSummary struct {
	Won      bool
	Survived int
	Kills    int
	Picked   int
}

// Lines returns the panel's body text, one stat per line.
func (s ResultSummary) Lines() []string {
	return []string{
		fmt.Sprintf("Survived: %ds", s.Survived),
		fmt.Sprintf("Enemies defeated: %d", s.Kills),
		fmt.Sprintf("Items collected: %d", s.Picked),
	}
}

// Title is the panel heading for the outcome.
func (s ResultSummary) Title() (string, color.RGBA) {
	if s.Won {
		return config.Result.WinTitle, config.Result.WinColor
	}
	return config.Result.LoseTitle, config.Result.LoseColor
}

type ResultUI struct {
	UI *ebitenui.UI

	OnRetry func()
	OnMenu  func()

	summary   ResultSummary
	titleFace text.Face
	bodyFace  text.Face
}

func NewResultUI(summary ResultSummary, onRetry, onMenu func()) *ResultUI {
	ui := &ResultUI{
		OnRetry: onRetry,
		OnMenu:  onMenu,
		summary: summary,
	}
	ui.loadFonts()
	ui.buildUI()
	return ui
}

func (ui *ResultUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: config.Result.TitleFontSize}
	ui.bodyFace = &text.GoTextFace{Source: fontSource, Size: config.Result.BodyFontSize}
}

func (ui *ResultUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(config.Result.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(config.Result.PanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(24)),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	title, titleColor := ui.summary.Title()
	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(title, &ui.titleFace, &widget.LabelColor{Idle: titleColor}),
	))

	for _, line := range ui.summary.Lines() {
		panel.AddChild(widget.NewLabel(
			widget.LabelOpts.Text(line, &ui.bodyFace, &widget.LabelColor{Idle: config.Result.TextColor}),
		))
	}

	panel.AddChild(ui.buildButtons())
	rootContainer.AddChild(panel)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *ResultUI) buildButtons() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	container.AddChild(ui.button("Retry", func() {
		if ui.OnRetry != nil {
			ui.OnRetry()
		}
	}))
	container.AddChild(ui.button("Main Menu", func() {
		if ui.OnMenu != nil {
			ui.OnMenu()
		}
	}))
	return container
}

func (ui *ResultUI) button(label string, onClick func()) *widget.Button {
	cfg := config.Result
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(cfg.ButtonWidth, cfg.ButtonHeight)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(cfg.ButtonIdle),
			Hover:   image.NewNineSliceColor(cfg.ButtonHover),
			Pressed: image.NewNineSliceColor(cfg.ButtonPressed),
		}),
		widget.ButtonOpts.Text(label, &ui.bodyFace, &widget.ButtonTextColor{
			Idle:    cfg.TextColor,
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 160, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (ui *ResultUI) Update() {
	ui.UI.Update()
}
