package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/morleydemo/morley/pkg/analysis"
	"github.com/morleydemo/morley/pkg/export"
	"github.com/morleydemo/morley/pkg/scene"
)

type App struct {
	window          fyne.Window
	scene           *scene.Scene
	canvas          *constructionWidget
	measurementInfo *MeasurementInfo
}

type MeasurementInfo struct {
	angleALabel     *widget.Label
	angleBLabel     *widget.Label
	angleCLabel     *widget.Label
	morleySideLabel *widget.Label
	deviationLabel  *widget.Label
}

func main() {
	a := fyneapp.New()
	w := a.NewWindow("Morley's Trisector Theorem")

	appInstance := &App{
		window: w,
		scene:  scene.New(),
	}
	appInstance.setupMainUI()

	w.Resize(fyne.NewSize(1100, 650))
	w.ShowAndRun()
}

func (a *App) setupMainUI() {
	a.measurementInfo = &MeasurementInfo{
		angleALabel:     widget.NewLabel("Angle A: -"),
		angleBLabel:     widget.NewLabel("Angle B: -"),
		angleCLabel:     widget.NewLabel("Angle C: -"),
		morleySideLabel: widget.NewLabel("Morley side: -"),
		deviationLabel:  widget.NewLabel("Side deviation: -"),
	}
	a.measurementInfo.morleySideLabel.TextStyle = fyne.TextStyle{Bold: true}

	a.canvas = newConstructionWidget(a.scene, func() {
		a.updateMeasurements()
	})

	resetButton := widget.NewButton("Reset Triangle", func() {
		a.scene.Reset()
		a.canvas.Refresh()
		a.updateMeasurements()
	})

	exportButton := widget.NewButton("Export SVG", func() {
		a.showExportDialog()
	})

	instructions := widget.NewLabel(
		"Instructions:\n" +
			"• Drag a corner to reshape the triangle\n" +
			"• The yellow inner triangle stays equilateral\n" +
			"• Collinear corners hide the construction",
	)
	instructions.Wrapping = fyne.TextWrapWord

	infoPanel := container.NewVBox(
		widget.NewLabel("Measurements:"),
		widget.NewSeparator(),
		a.measurementInfo.angleALabel,
		a.measurementInfo.angleBLabel,
		a.measurementInfo.angleCLabel,
		widget.NewSeparator(),
		a.measurementInfo.morleySideLabel,
		a.measurementInfo.deviationLabel,
		widget.NewSeparator(),
		instructions,
		widget.NewSeparator(),
		resetButton,
		exportButton,
	)

	infoScroll := container.NewVScroll(infoPanel)
	infoScroll.SetMinSize(fyne.NewSize(280, 0))

	content := container.NewBorder(
		nil,        // top
		nil,        // bottom
		nil,        // left
		infoScroll, // right
		a.canvas,   // center
	)

	a.window.SetContent(content)
	a.updateMeasurements()
}

func (a *App) showExportDialog() {
	dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if writer == nil {
			return
		}
		defer writer.Close()

		if err := export.WriteSVG(writer, a.scene.Snapshot()); err != nil {
			dialog.ShowError(fmt.Errorf("failed to export SVG: %w", err), a.window)
		}
	}, a.window)
}

func (a *App) updateMeasurements() {
	result := analysis.AnalyzeTriangle(a.scene.Snapshot().Main)

	if result.Degenerate {
		a.measurementInfo.angleALabel.SetText("Angle A: undefined")
		a.measurementInfo.angleBLabel.SetText("Angle B: undefined")
		a.measurementInfo.angleCLabel.SetText("Angle C: undefined")
		a.measurementInfo.morleySideLabel.SetText("Morley side: degenerate")
		a.measurementInfo.deviationLabel.SetText("Side deviation: -")
		return
	}

	a.measurementInfo.angleALabel.SetText(fmt.Sprintf("Angle A: %s", analysis.FormatAngle(result.Angles[0])))
	a.measurementInfo.angleBLabel.SetText(fmt.Sprintf("Angle B: %s", analysis.FormatAngle(result.Angles[1])))
	a.measurementInfo.angleCLabel.SetText(fmt.Sprintf("Angle C: %s", analysis.FormatAngle(result.Angles[2])))

	if result.HasMorley {
		a.measurementInfo.morleySideLabel.SetText(fmt.Sprintf("Morley side: %.3f", result.MorleySide))
		a.measurementInfo.deviationLabel.SetText(fmt.Sprintf("Side deviation: %.2e", result.MaxDeviation))
	} else {
		a.measurementInfo.morleySideLabel.SetText("Morley side: -")
		a.measurementInfo.deviationLabel.SetText("Side deviation: -")
	}
}
