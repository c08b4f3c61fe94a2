package item

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/sayhighz/nexark-platform/model"
)

type SQL struct {
	conn *sqlx.DB
}

type ItemRepository interface {
	List(ctx context.Context, filter *model.ItemFilter, page, perPage int) ([]model.ItemEntity, int64, error)
	GetByID(ctx context.Context, id uint64) (*model.ItemEntity, error)
	GetByIDTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.ItemEntity, error)
	DecrementStockTx(ctx context.Context, tx *sqlx.Tx, id uint64) (bool, error)
	ListCategories(ctx context.Context) ([]model.CategoryEntity, error)
}

func NewItemRepository(conn *sqlx.DB) ItemRepository {
	return &SQL{conn: conn}
}

const (
	itemColumns = `id, category_id, name_en, name_th, description_en, description_th, price, stock, rarity, featured, image_url, delivery_cmd, created_at, updated_at`

	listItemsBase   = `SELECT ` + itemColumns + ` FROM item WHERE true`
	countItemsBase  = `SELECT COUNT(*) FROM item WHERE true`
	getItemQuery    = `SELECT ` + itemColumns + ` FROM item WHERE id = ?`
	getItemTxQuery  = `SELECT ` + itemColumns + ` FROM item WHERE id = ? FOR UPDATE`
	decrementQuery  = `UPDATE item SET stock = stock - 1 WHERE id = ? AND stock > 0`
	categoriesQuery = `SELECT id, slug, name_en, name_th FROM category ORDER BY id`
)

func (s *SQL) List(ctx context.Context, filter *model.ItemFilter, page, perPage int) ([]model.ItemEntity, int64, error) {
	where := ""
	args := make([]any, 0, 4)

	if filter != nil {
		if filter.CategoryID != 0 {
			where += " AND category_id = ?"
			args = append(args, filter.CategoryID)
		}
		if filter.Featured != nil {
			where += " AND featured = ?"
			args = append(args, *filter.Featured)
		}
	}

	offset := (page - 1) * perPage
	query := listItemsBase + where + " ORDER BY featured DESC, id LIMIT ? OFFSET ?"
	rows, err := s.conn.QueryxContext(ctx, query, append(args, perPage, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]model.ItemEntity, 0)
	for rows.Next() {
		var it model.ItemEntity
		if err := rows.StructScan(&it); err != nil {
			return nil, 0, err
		}
		items = append(items, it)
	}

	var total int64
	if err := s.conn.GetContext(ctx, &total, countItemsBase+where, args...); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.ItemEntity, error) {
	var entity model.ItemEntity
	if err := s.conn.QueryRowxContext(ctx, getItemQuery, id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// GetByIDTx locks the item row for the duration of the purchase transaction.
func (s *SQL) GetByIDTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.ItemEntity, error) {
	var entity model.ItemEntity
	if err := tx.QueryRowxContext(ctx, getItemTxQuery, id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// DecrementStockTx decrements stock by one and reports whether a unit was
// actually taken. Items with the unlimited sentinel must not be passed here.
func (s *SQL) DecrementStockTx(ctx context.Context, tx *sqlx.Tx, id uint64) (bool, error) {
	result, err := tx.ExecContext(ctx, decrementQuery, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (s *SQL) ListCategories(ctx context.Context) ([]model.CategoryEntity, error) {
	rows, err := s.conn.QueryxContext(ctx, categoriesQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]model.CategoryEntity, 0)
	for rows.Next() {
		var c model.CategoryEntity
		if err := rows.StructScan(&c); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, nil
}
