package templates

import "github.com/a-h/templ"

// QRCard is one generated code.
type QRCard struct {
	Table       string
	ImageURL    string
	OrderingURL string
	DownloadURL string
	Alt         string
}

// QRView is the QR page state.
type QRView struct {
	Table   string
	From    int
	To      int
	Single  *QRCard
	Batch   []QRCard
	Pages   int
	Message string
	// MessageKind is "error" or "success".
	MessageKind string
}

// QRFullPage renders the QR generator page.
func QRFullPage(view QRView, page PageContext) templ.Component {
	return Layout(page, T(page.Loc, "qr.title"), qrPage(view, page.Loc))
}
