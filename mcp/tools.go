package mcp

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/lvillar/invoicekit/export"
)

// RegisterInvoiceTools registers all invoice editing and export tools on the
// server, bound to the given session.
func RegisterInvoiceTools(s *Server, sess *Session) {
	s.AddTool(Tool{
		Name:        "invoice_set_field",
		Description: "Set a single invoice field by path, e.g. invoiceNo, billedTo.name, items[0].price, discountPercent. Values are raw strings; numeric fields tolerate in-progress input like '' or '-'.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"field": map[string]interface{}{
					"type":        "string",
					"description": "Field path to set",
				},
				"value": map[string]interface{}{
					"type":        "string",
					"description": "Raw value to assign",
				},
			},
			"required": []string{"field", "value"},
		},
		Handler: func(args map[string]interface{}) (ToolResult, error) {
			field, _ := args["field"].(string)
			value, _ := args["value"].(string)
			if field == "" {
				return ToolResult{}, fmt.Errorf("field is required")
			}
			sess.Draft().Set(field, value)
			return textResult(fmt.Sprintf("Set %s", field)), nil
		},
	})

	s.AddTool(Tool{
		Name:        "invoice_add_item",
		Description: "Append a blank line item to the invoice. No-op once the item cap is reached.",
		InputSchema: map[string]interface{}{
			"type":       "object",
			"properties": map[string]interface{}{},
		},
		Handler: func(args map[string]interface{}) (ToolResult, error) {
			sess.Draft().AddItem()
			return textResult(fmt.Sprintf("Invoice now has %d item(s)", len(sess.Store().Data().Items))), nil
		},
	})

	s.AddTool(Tool{
		Name:        "invoice_remove_item",
		Description: "Remove the line item at the given zero-based index. No-op when only one item remains or the index is out of range.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"index": map[string]interface{}{
					"type":        "integer",
					"description": "Zero-based item index",
				},
			},
			"required": []string{"index"},
		},
		Handler: func(args map[string]interface{}) (ToolResult, error) {
			idx, ok := args["index"].(float64)
			if !ok {
				return ToolResult{}, fmt.Errorf("index is required")
			}
			sess.Draft().RemoveItem(int(idx))
			return textResult(fmt.Sprintf("Invoice now has %d item(s)", len(sess.Store().Data().Items))), nil
		},
	})

	s.AddTool(Tool{
		Name:        "invoice_reset",
		Description: "Reset the invoice to a blank state with a single empty item and default percentages.",
		InputSchema: map[string]interface{}{
			"type":       "object",
			"properties": map[string]interface{}{},
		},
		Handler: func(args map[string]interface{}) (ToolResult, error) {
			sess.Draft().Reset()
			return textResult("Invoice reset"), nil
		},
	})

	s.AddTool(Tool{
		Name:        "invoice_totals",
		Description: "Compute the invoice totals: subtotal, discount, GST, adjustment and grand total.",
		InputSchema: map[string]interface{}{
			"type":       "object",
			"properties": map[string]interface{}{},
		},
		Handler: func(args map[string]interface{}) (ToolResult, error) {
			return jsonResult(sess.Store().Totals())
		},
	})

	s.AddTool(Tool{
		Name:        "invoice_show",
		Description: "Return the full invoice state as JSON.",
		InputSchema: map[string]interface{}{
			"type":       "object",
			"properties": map[string]interface{}{},
		},
		Handler: func(args map[string]interface{}) (ToolResult, error) {
			return jsonResult(sess.Store().Data())
		},
	})

	s.AddTool(Tool{
		Name:        "invoice_export",
		Description: "Render the invoice preview and export it as a paginated A4 PDF. Writes to outputPath when given, otherwise returns the PDF as base64.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"outputPath": map[string]interface{}{
					"type":        "string",
					"description": "File path to write the PDF to. Omit to receive base64 data.",
				},
			},
		},
		Handler: func(args map[string]interface{}) (ToolResult, error) {
			if outputPath, _ := args["outputPath"].(string); outputPath != "" {
				if err := sess.Exporter().ExportFile(PreviewHandle, outputPath); err != nil {
					return ToolResult{}, err
				}
				return textResult(fmt.Sprintf("PDF written to %s", outputPath)), nil
			}

			var buf bytes.Buffer
			if err := sess.Exporter().Export(PreviewHandle, &buf); err != nil {
				return ToolResult{}, err
			}
			name := export.DefaultFileName(sess.Store().Data().InvoiceNo)
			return ToolResult{
				Content: []ContentBlock{
					{Type: "text", Text: fmt.Sprintf("PDF generated (%d bytes, suggested name %s)", buf.Len(), name)},
					{Type: "resource", MIMEType: "application/pdf", Data: base64.StdEncoding.EncodeToString(buf.Bytes())},
				},
			}, nil
		},
	})
}

func textResult(text string) ToolResult {
	return ToolResult{Content: []ContentBlock{{Type: "text", Text: text}}}
}

func jsonResult(v interface{}) (ToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return ToolResult{}, fmt.Errorf("mcp: encode result: %w", err)
	}
	return textResult(string(data)), nil
}
