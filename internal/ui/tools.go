package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"LocalSketch/internal/export"
	"LocalSketch/internal/logging"
	"LocalSketch/internal/sketch"
)

// run dispatches cmd and reports the outcome in the status bar.
func (s *Session) run(cmd sketch.Command) {
	if err := s.Ctrl.Dispatch(cmd, false); err != nil {
		logging.Logger().Warn("[UI] command failed", "cmd", cmd.String(), "err", err)
		s.SetStatus(fmt.Sprintf("%s failed: %v", cmd, err))
		return
	}
	h := s.Ctrl.History()
	s.SetStatus(fmt.Sprintf("%s: %d strokes, %d to redo", cmd, h.Len(), h.RedoLen()))
}

// NewToolbar builds the control surface for a session.
func NewToolbar(s *Session, win fyne.Window) fyne.CanvasObject {
	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.ContentUndoIcon(), func() { s.run(sketch.CmdUndo) }),
		widget.NewToolbarAction(theme.ContentRedoIcon(), func() { s.run(sketch.CmdRedo) }),
		widget.NewToolbarAction(theme.DeleteIcon(), func() { s.run(sketch.CmdClear) }),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), func() { s.run(sketch.CmdSave) }),
		widget.NewToolbarAction(theme.FolderOpenIcon(), func() { s.openDrawing(win) }),
		widget.NewToolbarAction(theme.DownloadIcon(), func() { s.exportDrawing(win) }),
	)

	smooth := widget.NewCheck("Smoothing", func(on bool) {
		if err := s.Ctrl.Dispatch(sketch.CmdToggleSmoothing, on); err == nil {
			s.SetStatus(fmt.Sprintf("smoothing %v (%s)", on, s.Ctrl.Options().Smoothing))
		}
	})
	smooth.SetChecked(s.Ctrl.SmoothingEnabled())

	return container.NewHBox(
		tb,
		widget.NewSeparator(),
		smooth,
		layout.NewSpacer(),
		s.Previews[1].Image,
	)
}

// openDrawing loads a JSON drawing chosen by the user.
func (s *Session) openDrawing(win fyne.Window) {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		strokes, err := export.ReadJSON(reader)
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		s.Ctrl.Restore(strokes)
		s.SetStatus(fmt.Sprintf("Loaded %d strokes", s.Ctrl.History().Len()))
	}, win)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".json"}))
	d.Show()
}

// exportDrawing writes the drawing as JSON or PDF depending on the chosen
// file name.
func (s *Session) exportDrawing(win fyne.Window) {
	dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		if writer == nil {
			return
		}
		defer writer.Close()

		strokes := s.Ctrl.History().Strokes()
		switch writer.URI().Extension() {
		case ".pdf":
			err = export.WritePDF(writer, strokes, export.PDFOptions{})
		default:
			err = export.WriteJSON(writer, strokes)
		}
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		s.SetStatus(fmt.Sprintf("Exported %d strokes to %s", len(strokes), writer.URI().Name()))
	}, win)
}
