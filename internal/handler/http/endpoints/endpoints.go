// Package endpoints serves the API's self-describing endpoint catalogue.
package endpoints

import (
	_ "embed"
	"fmt"
	"net/http"

	"gopkg.in/yaml.v3"

	"nc-news/internal/handler/http/respond"
)

//go:embed endpoints.yaml
var catalogueYAML []byte

// Endpoint describes one route in the catalogue.
type Endpoint struct {
	Description     string         `yaml:"description" json:"description"`
	Queries         []string       `yaml:"queries,omitempty" json:"queries,omitempty"`
	ExampleBody     map[string]any `yaml:"example_body,omitempty" json:"example_body,omitempty"`
	ExampleResponse map[string]any `yaml:"example_response,omitempty" json:"example_response,omitempty"`
}

// Load decodes the embedded catalogue, keyed by "METHOD /path".
func Load() (map[string]Endpoint, error) {
	var catalogue map[string]Endpoint
	if err := yaml.Unmarshal(catalogueYAML, &catalogue); err != nil {
		return nil, fmt.Errorf("decode endpoint catalogue: %w", err)
	}
	return catalogue, nil
}

// Handler serves GET /api.
type Handler struct {
	Catalogue map[string]Endpoint
}

func (h Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]any{"endpoints": h.Catalogue})
}

// Register loads the catalogue and mounts it at GET /api.
func Register(mux *http.ServeMux) error {
	catalogue, err := Load()
	if err != nil {
		return err
	}
	mux.Handle("GET /api", Handler{Catalogue: catalogue})
	return nil
}
