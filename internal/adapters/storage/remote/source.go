package remote

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"health-companion/internal/domain/catalog"
	"health-companion/internal/platform/httpclient"
)

var ErrEmptyDocument = errors.New("remote: empty catalog document")

// Source descarga el documento de catálogo (JSON) desde CATALOG_URL.
type Source struct {
	client *httpclient.Client
	url    string
}

func NewSource(client *httpclient.Client, url string) *Source {
	return &Source{client: client, url: strings.TrimSpace(url)}
}

func (s *Source) Load(ctx context.Context) (catalog.Document, error) {
	var doc catalog.Document
	if err := s.client.GetJSON(ctx, s.url, &doc); err != nil {
		return catalog.Document{}, fmt.Errorf("remote: fetch catalog: %w", err)
	}
	if len(doc.Medicines) == 0 && len(doc.SymptomMappings) == 0 && len(doc.SymptomDetails) == 0 {
		return catalog.Document{}, ErrEmptyDocument
	}
	return doc, nil
}
