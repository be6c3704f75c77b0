package catalog

import "context"

// Source carga el documento completo de la base de conocimiento.
// Implementaciones: embebido/archivo (static), HTTP (remote), Postgres.
type Source interface {
	Load(ctx context.Context) (Document, error)
}
