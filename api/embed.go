// Package api holds the OpenAPI document of the HTTP interface.
package api

//go:generate oapi-codegen -config oapi-codegen.yaml openapi.yaml

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var spec []byte

// Load parses and validates the embedded document.
func Load() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(spec)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err = doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}
	return doc, nil
}

type swaggerDoc string

func (d swaggerDoc) ReadDoc() string { return string(d) }

var registerOnce sync.Once

// Register publishes doc as the default swag document read by the swagger
// UI. Only the first call has an effect.
func Register(doc *openapi3.T) error {
	b, err := doc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("marshal openapi document: %w", err)
	}
	registerOnce.Do(func() {
		swag.Register(swag.Name, swaggerDoc(b))
	})
	return nil
}
