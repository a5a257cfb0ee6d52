// Command invoicekit builds invoices and exports them as paginated A4 PDFs.
//
// # Usage
//
//	invoicekit export invoice.json --out Invoice_INV-1.pdf
//	invoicekit totals invoice.json
//	invoicekit combine merged.pdf a.pdf b.pdf
//	invoicekit serve
//
// The serve subcommand starts an MCP (Model Context Protocol) server over
// stdio so AI assistants can edit and export an invoice interactively.
//
// # Configuration for Claude Desktop
//
// Add to ~/.config/claude/claude_desktop_config.json:
//
//	{
//	  "mcpServers": {
//	    "invoicekit": {
//	      "command": "invoicekit",
//	      "args": ["serve"]
//	    }
//	  }
//	}
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lvillar/invoicekit/export"
	"github.com/lvillar/invoicekit/invoice"
	"github.com/lvillar/invoicekit/mcp"
	"github.com/lvillar/invoicekit/preview"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var verbose bool

func main() {
	root := &cobra.Command{
		Use:           "invoicekit",
		Short:         "Build invoices and export them as paginated A4 PDFs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newExportCmd(), newTotalsCmd(), newCombineCmd(), newServeCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "invoicekit: %v\n", err)
		os.Exit(1)
	}
}

func newLogger() *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	cfg := zap.NewDevelopmentConfig()
	log, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

func loadInvoice(path string) (*invoice.Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read invoice: %w", err)
	}
	var data invoice.Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse invoice %s: %w", path, err)
	}
	return invoice.Load(data), nil
}

func newExportCmd() *cobra.Command {
	var (
		out        string
		scale      float64
		pageWidth  float64
		pageHeight float64
	)

	cmd := &cobra.Command{
		Use:   "export <invoice.json>",
		Short: "Render an invoice and export it as a paginated PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()
			defer log.Sync()

			store, err := loadInvoice(args[0])
			if err != nil {
				return err
			}

			exporter := export.New(
				export.WithScale(scale),
				export.WithPageSize(pageWidth, pageHeight),
				export.WithLogger(log),
			)
			exporter.Register("invoice", preview.NewRegion(store, preview.NewRenderer()))

			if out == "" {
				out = export.DefaultFileName(store.Data().InvoiceNo)
			}
			if err := exporter.ExportFile("invoice", out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output PDF path (default Invoice_<invoiceNo>.pdf)")
	cmd.Flags().Float64Var(&scale, "scale", export.DefaultScale, "rasterization scale factor")
	cmd.Flags().Float64Var(&pageWidth, "page-width", export.A4WidthMM, "page width in mm")
	cmd.Flags().Float64Var(&pageHeight, "page-height", export.A4HeightMM, "page height in mm")
	return cmd
}

func newTotalsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "totals <invoice.json>",
		Short: "Compute and print invoice totals as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := loadInvoice(args[0])
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(store.Totals())
		},
	}
}

func newCombineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "combine <output.pdf> <input.pdf>...",
		Short: "Combine multiple PDFs into one document",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := export.CombineFiles(args[0], args[1:]...); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
			return nil
		},
	}
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve invoice tools over MCP on stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()
			defer log.Sync()

			server := mcp.NewServer(mcp.WithLogger(log))
			session := mcp.NewSession(mcp.WithSessionLogger(log))
			mcp.RegisterInvoiceTools(server, session)
			mcp.RegisterInvoiceResources(server, session)
			return server.Run()
		},
	}
}
