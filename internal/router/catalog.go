package router

import (
	"context"
	"fmt"
	"strings"
	"time"

	pg "health-companion/internal/adapters/storage/postgres"
	"health-companion/internal/adapters/storage/remote"
	"health-companion/internal/adapters/storage/static"
	"health-companion/internal/domain/catalog"
	"health-companion/internal/platform/httpclient"
	"health-companion/internal/platform/logger"
)

// CatalogOptions elige de dónde sale la base de conocimiento.
// Prioridad: DSN, URL, Path; sin ninguno se usa la embebida.
type CatalogOptions struct {
	DSN     string
	URL     string
	Path    string
	Timeout time.Duration

	// Strict: issues de validación => error en vez de warning.
	Strict bool
}

// LoadCatalog carga, indexa y valida el catálogo una sola vez.
// Si la fuente configurada falla se cae a la embebida con un warning.
func LoadCatalog(ctx context.Context, opts CatalogOptions, log logger.Logger) (*catalog.Catalog, error) {
	if log == nil {
		log = logger.Nop()
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = httpclient.DefaultTimeout
	}

	loadCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	name := "embedded"
	doc, err := loadConfigured(loadCtx, opts, &name)
	if err != nil {
		log.Warn("catalog source failed, using embedded", map[string]any{
			"source": name,
			"err":    err.Error(),
		})
		name = "embedded"
		doc, err = static.Embedded().Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("load embedded catalog: %w", err)
		}
	}

	cat := catalog.New(doc)

	issues := catalog.Validate(cat)
	for _, is := range issues {
		log.Warn("catalog issue", map[string]any{
			"kind":    string(is.Kind),
			"subject": is.Subject,
			"detail":  is.Detail,
		})
	}
	if opts.Strict && len(issues) > 0 {
		return nil, fmt.Errorf("%w: %d issues (source=%s)", catalog.ErrInvalidCatalog, len(issues), name)
	}

	log.Info("catalog loaded", map[string]any{
		"source":    name,
		"medicines": len(cat.Medicines()),
		"symptoms":  len(cat.SymptomLabels()),
		"details":   len(cat.SymptomDetails()),
		"issues":    len(issues),
	})
	return cat, nil
}

func loadConfigured(ctx context.Context, opts CatalogOptions, name *string) (catalog.Document, error) {
	switch {
	case strings.TrimSpace(opts.DSN) != "":
		*name = "postgres"
		db, err := pg.Open(ctx, opts.DSN)
		if err != nil {
			return catalog.Document{}, err
		}
		defer db.Close()
		return pg.NewCatalogSource(db).Load(ctx)

	case strings.TrimSpace(opts.URL) != "":
		*name = "remote"
		client, err := httpclient.New(httpclient.Options{Timeout: opts.Timeout})
		if err != nil {
			return catalog.Document{}, err
		}
		return remote.NewSource(client, opts.URL).Load(ctx)

	case strings.TrimSpace(opts.Path) != "":
		*name = "file"
		return static.NewFileSource(opts.Path).Load(ctx)

	default:
		return static.Embedded().Load(ctx)
	}
}
