package qr

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	apperrors "github.com/louisbranch/tableside/internal/platform/errors"
	"github.com/louisbranch/tableside/internal/services/admin/apiclient"
)

// API is the remote QR surface.
type API interface {
	GenerateQR(ctx context.Context, tableNumber string) (apiclient.QRArtifact, error)
	QRBatch(ctx context.Context, start, end int) ([]apiclient.QRArtifact, error)
	FetchImage(ctx context.Context, imageURL string) ([]byte, string, error)
	BaseURL() string
}

// Image is a downloadable QR image.
type Image struct {
	Name        string
	ContentType string
	Body        []byte
}

// Generator holds the most recent single and batch QR artifacts.
type Generator struct {
	api API

	mu     sync.RWMutex
	single *apiclient.QRArtifact
	batch  []apiclient.QRArtifact
	from   int
	to     int
}

// NewGenerator builds a generator with the default 1..9 batch range.
func NewGenerator(api API) (*Generator, error) {
	if api == nil {
		return nil, errors.New("qr api is required")
	}
	return &Generator{api: api, from: MinTable, to: PerPage}, nil
}

// GenerateSingle normalizes raw and requests one QR artifact.
func (g *Generator) GenerateSingle(ctx context.Context, raw string) (apiclient.QRArtifact, error) {
	table, err := NormalizeTable(raw)
	if err != nil {
		return apiclient.QRArtifact{}, err
	}
	artifact, err := g.api.GenerateQR(ctx, table)
	if err != nil {
		return apiclient.QRArtifact{}, fmt.Errorf("generate qr %s: %w", table, err)
	}
	artifact = g.resolve(artifact)

	g.mu.Lock()
	g.single = &artifact
	g.mu.Unlock()
	return artifact, nil
}

// GenerateBatch clamps the range and replaces the current batch.
func (g *Generator) GenerateBatch(ctx context.Context, from, to int) ([]apiclient.QRArtifact, error) {
	from, to = ClampRange(from, to)
	artifacts, err := g.api.QRBatch(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("generate qr batch %d-%d: %w", from, to, err)
	}
	if limit := to - from + 1; len(artifacts) > limit {
		artifacts = artifacts[:limit]
	}
	resolved := make([]apiclient.QRArtifact, 0, len(artifacts))
	for _, artifact := range artifacts {
		resolved = append(resolved, g.resolve(artifact))
	}

	g.mu.Lock()
	g.batch = resolved
	g.from, g.to = from, to
	g.mu.Unlock()
	return append([]apiclient.QRArtifact(nil), resolved...), nil
}

// Single returns the last generated single artifact, if any.
func (g *Generator) Single() (apiclient.QRArtifact, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.single == nil {
		return apiclient.QRArtifact{}, false
	}
	return *g.single, true
}

// Batch returns a copy of the current batch.
func (g *Generator) Batch() []apiclient.QRArtifact {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return append([]apiclient.QRArtifact(nil), g.batch...)
}

// Range returns the last requested batch range.
func (g *Generator) Range() (int, int) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.from, g.to
}

// PrintDocument paginates the current batch.
func (g *Generator) PrintDocument() PrintDocument {
	return ComposePrintDocument(g.Batch())
}

// Reset drops every held artifact, used on logout.
func (g *Generator) Reset() {
	g.mu.Lock()
	g.single = nil
	g.batch = nil
	g.from, g.to = MinTable, PerPage
	g.mu.Unlock()
}

// Download returns the image for a table generated in this session.
func (g *Generator) Download(ctx context.Context, raw string) (Image, error) {
	table, err := NormalizeTable(raw)
	if err != nil {
		return Image{}, err
	}
	artifact, ok := g.find(table)
	if !ok {
		return Image{}, apperrors.New(apperrors.CodeValidation, fmt.Sprintf("no qr code generated for %s", table))
	}

	image := Image{Name: DownloadName(table)}
	if strings.HasPrefix(artifact.QRCodeURL, "data:") {
		image.ContentType, image.Body, err = decodeDataURL(artifact.QRCodeURL)
		if err != nil {
			return Image{}, apperrors.Wrap(apperrors.CodeRejected, "decode qr image", err)
		}
		return image, nil
	}
	image.Body, image.ContentType, err = g.api.FetchImage(ctx, artifact.QRCodeURL)
	if err != nil {
		return Image{}, fmt.Errorf("download qr %s: %w", table, err)
	}
	return image, nil
}

func (g *Generator) find(table string) (apiclient.QRArtifact, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.single != nil && strings.EqualFold(g.single.TableNumber, table) {
		return *g.single, true
	}
	for _, artifact := range g.batch {
		if strings.EqualFold(artifact.TableNumber, table) {
			return artifact, true
		}
	}
	return apiclient.QRArtifact{}, false
}

// resolve makes a relative image URL absolute against the API base.
func (g *Generator) resolve(artifact apiclient.QRArtifact) apiclient.QRArtifact {
	imageURL := strings.TrimSpace(artifact.QRCodeURL)
	if imageURL == "" || strings.HasPrefix(imageURL, "data:") {
		return artifact
	}
	ref, err := url.Parse(imageURL)
	if err != nil || ref.IsAbs() {
		return artifact
	}
	base, err := url.Parse(g.api.BaseURL())
	if err != nil {
		return artifact
	}
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}
	artifact.QRCodeURL = base.ResolveReference(&url.URL{Path: strings.TrimPrefix(ref.Path, "/"), RawQuery: ref.RawQuery}).String()
	return artifact
}

// decodeDataURL decodes a base64 "data:<type>;base64,<payload>" URL.
func decodeDataURL(raw string) (string, []byte, error) {
	header, payload, ok := strings.Cut(strings.TrimPrefix(raw, "data:"), ",")
	if !ok {
		return "", nil, errors.New("malformed data url")
	}
	contentType, encoding, _ := strings.Cut(header, ";")
	if encoding != "base64" {
		return "", nil, fmt.Errorf("unsupported data url encoding %q", encoding)
	}
	body, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("decode data url: %w", err)
	}
	if contentType == "" {
		contentType = "image/png"
	}
	return contentType, body, nil
}
