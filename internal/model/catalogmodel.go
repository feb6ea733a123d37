// Package model provides database access for the template catalog.
package model

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/zeromicro/go-zero/core/stores/sqlx"

	"github.com/mailgallery/mailgallery/internal/gallery"
)

//go:embed seed.json
var seedJSON []byte

// CatalogModel reads and seeds the ordered source dataset.
type CatalogModel interface {
	All(ctx context.Context) ([]gallery.Template, error)
	Count(ctx context.Context) (int64, error)
	// SeedIfEmpty loads the embedded starter dataset into an empty catalog
	// so a fresh install has something to show.
	SeedIfEmpty(ctx context.Context) error
}

type defaultCatalogModel struct {
	conn sqlx.SqlConn
}

// NewCatalogModel returns a model for the catalog table.
func NewCatalogModel(conn sqlx.SqlConn) CatalogModel {
	return &defaultCatalogModel{conn: conn}
}

type catalogRow struct {
	Position int64  `db:"position"`
	Subject  string `db:"subject"`
	Body     string `db:"body"`
	Category string `db:"category"`
}

func (m *defaultCatalogModel) All(ctx context.Context) ([]gallery.Template, error) {
	var rows []catalogRow
	err := m.conn.QueryRowsCtx(ctx, &rows,
		"SELECT position, subject, body, category FROM catalog ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	templates := make([]gallery.Template, 0, len(rows))
	for _, r := range rows {
		templates = append(templates, gallery.Template{
			Subject:  r.Subject,
			Body:     r.Body,
			Category: r.Category,
		})
	}
	return templates, nil
}

func (m *defaultCatalogModel) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := m.conn.QueryRowCtx(ctx, &n, "SELECT COUNT(*) FROM catalog"); err != nil {
		return 0, err
	}
	return n, nil
}

func (m *defaultCatalogModel) SeedIfEmpty(ctx context.Context) error {
	n, err := m.Count(ctx)
	if err != nil {
		return fmt.Errorf("count catalog: %w", err)
	}
	if n > 0 {
		return nil
	}

	var templates []gallery.Template
	if err := json.Unmarshal(seedJSON, &templates); err != nil {
		return fmt.Errorf("decode seed dataset: %w", err)
	}

	for i, t := range templates {
		_, err := m.conn.ExecCtx(ctx,
			"INSERT INTO catalog (position, subject, body, category) VALUES (?, ?, ?, ?)",
			i, t.Subject, t.Body, t.Category)
		if err != nil {
			return fmt.Errorf("seed catalog entry %d: %w", i, err)
		}
	}
	return nil
}
