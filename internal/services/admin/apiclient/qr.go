package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	apperrors "github.com/louisbranch/tableside/internal/platform/errors"
)

type qrBatch struct {
	QRCodes []QRArtifact `json:"qrCodes"`
}

type qrGenerateRequest struct {
	TableNumber string `json:"tableNumber"`
}

// QRBatch requests QR artifacts for tables start..end inclusive.
func (c *Client) QRBatch(ctx context.Context, start, end int) ([]QRArtifact, error) {
	var batch qrBatch
	err := c.call(ctx, opQRBatch, c.credential(), http.MethodGet, "/admin/qr/batch", func(req *resty.Request) {
		req.SetQueryParam("start", strconv.Itoa(start))
		req.SetQueryParam("end", strconv.Itoa(end))
	}, &batch)
	if err != nil {
		return nil, err
	}
	if batch.QRCodes == nil {
		batch.QRCodes = []QRArtifact{}
	}
	return batch.QRCodes, nil
}

// GenerateQR requests a single QR artifact for an already-normalized table.
func (c *Client) GenerateQR(ctx context.Context, tableNumber string) (QRArtifact, error) {
	var artifact QRArtifact
	err := c.call(ctx, opQRGenerate, c.credential(), http.MethodPost, "/admin/qr/generate", func(req *resty.Request) {
		req.SetBody(qrGenerateRequest{TableNumber: tableNumber})
	}, &artifact)
	if err != nil {
		return QRArtifact{}, err
	}
	return artifact, nil
}

// FetchImage downloads a QR image. imageURL may be absolute or relative to the
// API base URL. The response is raw bytes, not an envelope.
func (c *Client) FetchImage(ctx context.Context, imageURL string) (body []byte, contentType string, err error) {
	imageURL = strings.TrimSpace(imageURL)
	if imageURL == "" {
		return nil, "", apperrors.New(apperrors.CodeValidation, "image url is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	started := time.Now()
	ctx, span := c.tracer.Start(ctx, "api "+opFetchQRImage.name)
	defer func() {
		c.finish(span, opFetchQRImage, started, err)
	}()

	resp, err := c.newRequest(ctx, c.credential()).
		SetHeader("Accept", "image/*").
		Get(imageURL)
	if err != nil {
		return nil, "", apperrors.Wrap(apperrors.CodeNetwork, "fetch qr image", err)
	}
	if isAuthStatus(resp.StatusCode()) {
		return nil, "", rejection(opFetchQRImage, resp.StatusCode(), "")
	}
	if resp.IsError() {
		return nil, "", apperrors.New(apperrors.CodeRejected, fmt.Sprintf("fetch qr image: %s", resp.Status()))
	}
	contentType = resp.Header().Get("Content-Type")
	if contentType == "" {
		contentType = "image/png"
	}
	return resp.Body(), contentType, nil
}
