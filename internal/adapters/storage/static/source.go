package static

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"health-companion/internal/domain/catalog"

	"gopkg.in/yaml.v3"
)

//go:embed data/knowledge.yaml
var embeddedKnowledge []byte

// Decode interpreta el documento como YAML o JSON según format ("yaml", "yml", "json").
// Campos desconocidos son error en ambos formatos.
func Decode(data []byte, format string) (catalog.Document, error) {
	var doc catalog.Document

	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return catalog.Document{}, fmt.Errorf("static: decode json: %w", err)
		}
	case "yaml", "yml", "":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return catalog.Document{}, fmt.Errorf("static: decode yaml: %w", err)
		}
	default:
		return catalog.Document{}, fmt.Errorf("static: unsupported format %q", format)
	}

	return doc, nil
}

type embeddedSource struct{}

// Embedded devuelve la base de conocimiento que viaja dentro del binario.
func Embedded() catalog.Source {
	return embeddedSource{}
}

func (embeddedSource) Load(ctx context.Context) (catalog.Document, error) {
	return Decode(embeddedKnowledge, "yaml")
}

// FileSource lee el documento desde disco (CATALOG_PATH). Formato por extensión.
type FileSource struct {
	Path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{Path: strings.TrimSpace(path)}
}

func (s *FileSource) Load(ctx context.Context) (catalog.Document, error) {
	if s == nil || s.Path == "" {
		return catalog.Document{}, fmt.Errorf("static: empty path")
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return catalog.Document{}, fmt.Errorf("static: read %s: %w", s.Path, err)
	}
	return Decode(data, filepath.Ext(s.Path))
}
