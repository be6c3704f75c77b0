package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"health-companion/internal/domain/catalog"
)

// CatalogSource lee la versión más reciente del documento de catálogo:
//
//	CREATE TABLE catalog_documents (
//		id         TEXT PRIMARY KEY,
//		payload    JSONB NOT NULL,
//		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
//	);
type CatalogSource struct {
	db *sql.DB
}

func NewCatalogSource(db *sql.DB) *CatalogSource {
	return &CatalogSource{db: db}
}

const latestCatalogQuery = `
	SELECT id, payload
	FROM catalog_documents
	ORDER BY created_at DESC
	LIMIT 1
`

func (s *CatalogSource) Load(ctx context.Context) (catalog.Document, error) {
	var (
		id      string
		payload []byte
	)
	err := s.db.QueryRowContext(ctx, latestCatalogQuery).Scan(&id, &payload)
	if errors.Is(err, sql.ErrNoRows) {
		return catalog.Document{}, ErrNotFound
	}
	if err != nil {
		return catalog.Document{}, fmt.Errorf("postgres: load catalog: %w", err)
	}

	var doc catalog.Document
	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return catalog.Document{}, fmt.Errorf("postgres: decode catalog %s: %w", id, err)
	}
	return doc, nil
}
