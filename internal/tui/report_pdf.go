package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"
)

// GeneratePDFReport writes every stored note, oldest first, to path and
// returns the number of notes written.
func GeneratePDFReport(ctx context.Context, db NoteLister, path string) (int, error) {
	notes, err := db.ListNotes(ctx, 0)
	if err != nil {
		return 0, fmt.Errorf("load notes: %w", err)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("Notes Report: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	if len(notes) == 0 {
		pdf.Cell(0, 8, "  - No notes saved.")
		pdf.Ln(8)
	}
	for i := len(notes) - 1; i >= 0; i-- {
		n := notes[i]
		header := fmt.Sprintf("[%s] %d/%d %s", n.CreatedAt.Format("2006-01-02 15:04"), n.Count, n.Max, n.Unit)
		pdf.SetFont("Arial", "B", 10)
		pdf.Cell(0, 6, header)
		pdf.Ln(6)
		pdf.SetFont("Arial", "", 12)
		pdf.MultiCell(0, 8, tr(n.Content), "", "", false)
		pdf.Ln(2)
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Total Notes: %d", len(notes)))

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, fmt.Errorf("create report dir: %w", err)
		}
	}
	if err := pdf.OutputFileAndClose(path); err != nil {
		return 0, fmt.Errorf("write report: %w", err)
	}
	return len(notes), nil
}
