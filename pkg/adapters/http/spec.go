package http

import (
	"context"
	_ "embed"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var rawSpec []byte

var loadSwagger = sync.OnceValues(func() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(rawSpec)
	if err != nil {
		return nil, fmt.Errorf("error loading OpenAPI spec: %w", err)
	}
	if err := doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("invalid OpenAPI spec: %w", err)
	}
	return doc, nil
})

// GetSwagger returns the parsed OpenAPI document served at /openapi.yaml.
func GetSwagger() (*openapi3.T, error) {
	return loadSwagger()
}

// validateBody checks a decoded JSON document against a component schema.
func validateBody(schemaName string, body any) error {
	doc, err := GetSwagger()
	if err != nil {
		return err
	}
	ref, ok := doc.Components.Schemas[schemaName]
	if !ok || ref.Value == nil {
		return fmt.Errorf("schema %q not found", schemaName)
	}
	return ref.Value.VisitJSON(body, openapi3.MultiErrors())
}
