package content

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/sayhighz/nexark-platform/model"
)

type SQL struct {
	conn *sqlx.DB
}

type ContentRepository interface {
	GetBySlug(ctx context.Context, slug string) (*model.ContentEntity, error)
}

func NewContentRepository(conn *sqlx.DB) ContentRepository {
	return &SQL{conn: conn}
}

const getContentQuery = `SELECT id, slug, title_en, title_th, body_en, body_th, published, created_at, updated_at FROM content WHERE slug = ? AND published = true`

func (s *SQL) GetBySlug(ctx context.Context, slug string) (*model.ContentEntity, error) {
	var entity model.ContentEntity
	if err := s.conn.QueryRowxContext(ctx, getContentQuery, slug).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}
