package main

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/morleydemo/morley/pkg/export"
	"github.com/morleydemo/morley/pkg/geometry"
	"github.com/morleydemo/morley/pkg/scene"
)

// constructionWidget renders the trisector construction through the shared
// raster exporter and maps fyne mouse events onto the scene controller.
type constructionWidget struct {
	widget.BaseWidget
	scene      *scene.Scene
	controller *scene.Controller
	raster     *canvas.Raster
	onChange   func()
}

func newConstructionWidget(s *scene.Scene, onChange func()) *constructionWidget {
	w := &constructionWidget{
		scene:      s,
		controller: scene.NewController(s),
		onChange:   onChange,
	}
	w.raster = canvas.NewRaster(w.draw)
	w.raster.SetMinSize(fyne.NewSize(800, 600))
	w.ExtendBaseWidget(w)
	return w
}

// draw rasterizes the current snapshot. The raster generator is handed pixel
// dimensions, which on high-DPI displays differ from the widget coordinates
// the scene lives in, so the vertices are scaled for rendering.
func (w *constructionWidget) draw(width, height int) image.Image {
	scale := 1.0
	if size := w.Size(); size.Width > 0 {
		scale = float64(width) / float64(size.Width)
	}

	scaled := scene.New()
	for i, vertex := range w.scene.Vertices() {
		scaled.SetVertex(i, vertex.Mul(scale))
	}
	return export.RenderImage(scaled.Snapshot(), width, height)
}

func (w *constructionWidget) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(w.raster)
}

func (w *constructionWidget) MouseDown(ev *desktop.MouseEvent) {
	w.controller.PointerDown(position(ev.Position))
}

func (w *constructionWidget) MouseUp(ev *desktop.MouseEvent) {
	w.controller.PointerUp()
	w.notify()
}

func (w *constructionWidget) Dragged(ev *fyne.DragEvent) {
	w.controller.PointerMove(position(ev.Position))
	w.raster.Refresh()
	w.notify()
}

func (w *constructionWidget) DragEnd() {
	w.controller.PointerUp()
}

func (w *constructionWidget) notify() {
	if w.onChange != nil {
		w.onChange()
	}
}

func position(p fyne.Position) geometry.Vector2 {
	return geometry.NewVector2(float64(p.X), float64(p.Y))
}
