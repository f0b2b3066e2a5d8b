package qr

import (
	"context"
	"fmt"
	"io"

	"github.com/louisbranch/tableside/internal/services/admin/apiclient"
)

const (
	// PerPage is the number of QR codes on one A4 sheet.
	PerPage = 9
	// Columns is the grid width of a printed page.
	Columns = 3

	// Brand is printed under every table number.
	Brand = "Progressive Bar"
	// Caption tells guests what to do with the code.
	Caption = "Scan to order"
)

// PrintPage is one A4 sheet of up to PerPage artifacts.
type PrintPage struct {
	Items []apiclient.QRArtifact
}

// Rows splits the page into rows of Columns items.
func (p PrintPage) Rows() [][]apiclient.QRArtifact {
	rows := make([][]apiclient.QRArtifact, 0, Columns)
	for start := 0; start < len(p.Items); start += Columns {
		end := min(start+Columns, len(p.Items))
		rows = append(rows, p.Items[start:end])
	}
	return rows
}

// PrintDocument is a paginated set of QR codes ready for printing.
type PrintDocument struct {
	Pages []PrintPage
}

// Count returns the number of artifacts across all pages.
func (d PrintDocument) Count() int {
	n := 0
	for _, page := range d.Pages {
		n += len(page.Items)
	}
	return n
}

// ComposePrintDocument paginates artifacts in input order: item i lands on
// page i/PerPage at slot i%PerPage.
func ComposePrintDocument(artifacts []apiclient.QRArtifact) PrintDocument {
	doc := PrintDocument{}
	for start := 0; start < len(artifacts); start += PerPage {
		end := min(start+PerPage, len(artifacts))
		items := make([]apiclient.QRArtifact, end-start)
		copy(items, artifacts[start:end])
		doc.Pages = append(doc.Pages, PrintPage{Items: items})
	}
	return doc
}

// RenderPrintHTML writes the printable document for doc to w.
func RenderPrintHTML(w io.Writer, doc PrintDocument) error {
	if err := PrintView(doc).Render(context.Background(), w); err != nil {
		return fmt.Errorf("render print document: %w", err)
	}
	return nil
}
