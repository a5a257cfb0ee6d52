package mcp

import (
	"github.com/lvillar/invoicekit/export"
	"github.com/lvillar/invoicekit/invoice"
	"github.com/lvillar/invoicekit/preview"
	"go.uber.org/zap"
)

// PreviewHandle is the export registry handle the session's invoice preview
// is registered under.
const PreviewHandle = "invoicePreview"

// Session owns one editable invoice and the machinery to export it. It is
// what a connected MCP client manipulates: every tool call operates on the
// same store, draft and exporter.
type Session struct {
	store    *invoice.Store
	draft    *invoice.Draft
	exporter *export.Exporter
}

// SessionOption configures a Session.
type SessionOption func(*sessionConfig)

type sessionConfig struct {
	storeOpts []invoice.Option
	scale     float64
	log       *zap.Logger
}

// WithStoreOptions forwards options to the underlying invoice store.
func WithStoreOptions(opts ...invoice.Option) SessionOption {
	return func(c *sessionConfig) { c.storeOpts = append(c.storeOpts, opts...) }
}

// WithExportScale sets the rasterization scale used for PDF export.
func WithExportScale(scale float64) SessionOption {
	return func(c *sessionConfig) { c.scale = scale }
}

// WithSessionLogger sets the logger used by the session's exporter.
func WithSessionLogger(log *zap.Logger) SessionOption {
	return func(c *sessionConfig) {
		if log != nil {
			c.log = log
		}
	}
}

// NewSession creates a session with a fresh invoice and registers its
// preview under PreviewHandle.
func NewSession(opts ...SessionOption) *Session {
	cfg := sessionConfig{
		scale: export.DefaultScale,
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	store := invoice.New(cfg.storeOpts...)
	sess := &Session{
		store: store,
		draft: invoice.NewDraft(store),
		exporter: export.New(
			export.WithScale(cfg.scale),
			export.WithLogger(cfg.log),
		),
	}
	sess.exporter.Register(PreviewHandle, preview.NewRegion(store, preview.NewRenderer()))
	return sess
}

// Store returns the session's invoice store.
func (s *Session) Store() *invoice.Store { return s.store }

// Draft returns the session's editing draft.
func (s *Session) Draft() *invoice.Draft { return s.draft }

// Exporter returns the session's PDF exporter.
func (s *Session) Exporter() *export.Exporter { return s.exporter }
