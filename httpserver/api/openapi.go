package api

import (
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/n0rdy/mockdata/logger"
)

// LoadOpenApiDoc parses and validates the OpenAPI document describing the API.
func LoadOpenApiDoc(content []byte) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(content)
	if err != nil {
		logger.Error("failed to parse OpenAPI document", err)
		return nil, err
	}

	err = doc.Validate(loader.Context)
	if err != nil {
		logger.Error("OpenAPI document is invalid", err)
		return nil, err
	}
	return doc, nil
}
