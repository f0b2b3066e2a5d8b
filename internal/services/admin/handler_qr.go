package admin

import (
	"bytes"
	"context"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	apperrors "github.com/louisbranch/tableside/internal/platform/errors"
	"github.com/louisbranch/tableside/internal/platform/timeouts"
	"github.com/louisbranch/tableside/internal/services/admin/apiclient"
	"github.com/louisbranch/tableside/internal/services/admin/qr"
	routepath "github.com/louisbranch/tableside/internal/services/admin/routepath"
	"github.com/louisbranch/tableside/internal/services/admin/templates"
	"github.com/louisbranch/tableside/internal/services/shared/htmx"
	"golang.org/x/text/message"
)

// handleQR renders the generator page with whatever this session produced.
func (h *Handler) handleQR(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	h.views.DeactivateAll()
	templ.Handler(templates.QRFullPage(h.qrView(loc), h.pageContext(lang, loc, r))).ServeHTTP(w, r)
}

// handleQRSingle generates the code for one table.
func (h *Handler) handleQRSingle(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.localizer(w, r)
	if !requireSameOrigin(w, r, loc) {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, loc.Sprintf("error.validation"), http.StatusBadRequest)
		return
	}
	table := strings.TrimSpace(r.FormValue("table"))

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.PageRequest)
	_, err := h.qr.GenerateSingle(ctx, table)
	cancel()
	h.renderQRResult(w, r, loc, table, err)
}

// handleQRBatch generates codes for a clamped table range.
func (h *Handler) handleQRBatch(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.localizer(w, r)
	if !requireSameOrigin(w, r, loc) {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, loc.Sprintf("error.validation"), http.StatusBadRequest)
		return
	}

	from, fromErr := strconv.Atoi(strings.TrimSpace(r.FormValue("from")))
	to, toErr := strconv.Atoi(strings.TrimSpace(r.FormValue("to")))
	if fromErr != nil || toErr != nil {
		h.renderQRResult(w, r, loc, "", apperrors.New(apperrors.CodeValidation, "table range must be numeric"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.PageRequest)
	_, err := h.qr.GenerateBatch(ctx, from, to)
	cancel()
	h.renderQRResult(w, r, loc, "", err)
}

func (h *Handler) renderQRResult(w http.ResponseWriter, r *http.Request, loc *message.Printer, table string, err error) {
	view := h.qrView(loc)
	if err != nil {
		if h.sessionLost(w, r, err) {
			return
		}
		log.Printf("admin qr generate: %v", err)
		view.Message = errorMessage(loc, err)
		view.MessageKind = "error"
		if table != "" {
			view.Table = table
		}
	}
	if !htmx.IsHTMXRequest(r) {
		http.Redirect(w, r, routepath.QR, http.StatusSeeOther)
		return
	}
	templ.Handler(templates.QRContent(view, loc)).ServeHTTP(w, r)
}

// handleQRPrint renders the current batch as an A4 print document.
func (h *Handler) handleQRPrint(w http.ResponseWriter, r *http.Request) {
	doc := h.qr.PrintDocument()
	if doc.Count() == 0 {
		http.Redirect(w, r, routepath.QR, http.StatusFound)
		return
	}
	var buf bytes.Buffer
	if err := qr.RenderPrintHTML(&buf, doc); err != nil {
		log.Printf("admin qr print: %v", err)
		loc, _ := h.localizer(w, r)
		http.Error(w, loc.Sprintf("error.unknown"), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

// handleQRDownload streams a generated image as an attachment.
func (h *Handler) handleQRDownload(w http.ResponseWriter, r *http.Request, table string) {
	loc, _ := h.localizer(w, r)
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.PageRequest)
	image, err := h.qr.Download(ctx, table)
	cancel()
	if err != nil {
		if h.sessionLost(w, r, err) {
			return
		}
		log.Printf("admin qr download %s: %v", table, err)
		status := apperrors.CodeOf(err).HTTPStatus()
		if apperrors.CodeOf(err) == apperrors.CodeValidation {
			status = http.StatusNotFound
		}
		http.Error(w, errorMessage(loc, err), status)
		return
	}

	w.Header().Set("Content-Type", image.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+image.Name+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(image.Body)))
	_, _ = w.Write(image.Body)
}

func (h *Handler) qrView(loc *message.Printer) templates.QRView {
	from, to := h.qr.Range()
	batch := h.qr.Batch()
	view := templates.QRView{
		From:  from,
		To:    to,
		Batch: make([]templates.QRCard, 0, len(batch)),
		Pages: len(qr.ComposePrintDocument(batch).Pages),
	}
	if single, ok := h.qr.Single(); ok {
		card := buildQRCard(single, loc)
		view.Single = &card
		view.Table = single.TableNumber
	}
	for _, artifact := range batch {
		view.Batch = append(view.Batch, buildQRCard(artifact, loc))
	}
	return view
}

func buildQRCard(artifact apiclient.QRArtifact, loc *message.Printer) templates.QRCard {
	return templates.QRCard{
		Table:       artifact.TableNumber,
		ImageURL:    artifact.QRCodeURL,
		OrderingURL: artifact.URL,
		DownloadURL: routepath.QRDownload(artifact.TableNumber),
		Alt:         loc.Sprintf("qr.alt", artifact.TableNumber),
	}
}
