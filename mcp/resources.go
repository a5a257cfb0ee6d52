package mcp

import (
	"encoding/json"
	"fmt"
)

// RegisterInvoiceResources registers read-only views of the session's
// invoice as MCP resources.
func RegisterInvoiceResources(s *Server, sess *Session) {
	s.AddResource(Resource{
		URI:         "invoice://data",
		Name:        "Invoice data",
		Description: "Current invoice state including header, billed-to details and line items",
		MIMEType:    "application/json",
		Handler: func(uri string) ([]ResourceContent, error) {
			return jsonContent(uri, sess.Store().Data())
		},
	})

	s.AddResource(Resource{
		URI:         "invoice://totals",
		Name:        "Invoice totals",
		Description: "Computed totals for the current invoice",
		MIMEType:    "application/json",
		Handler: func(uri string) ([]ResourceContent, error) {
			return jsonContent(uri, sess.Store().Totals())
		},
	})
}

func jsonContent(uri string, v interface{}) ([]ResourceContent, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("mcp: encode resource: %w", err)
	}
	return []ResourceContent{{
		URI:      uri,
		MIMEType: "application/json",
		Text:     string(data),
	}}, nil
}
