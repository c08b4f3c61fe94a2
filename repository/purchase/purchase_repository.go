package purchase

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/sayhighz/nexark-platform/constant"
	"github.com/sayhighz/nexark-platform/model"
)

type SQL struct {
	conn *sqlx.DB
}

type PurchaseRepository interface {
	InsertPurchaseTx(ctx context.Context, tx *sqlx.Tx, data *model.PurchaseEntity) (uint64, error)
	GetByID(ctx context.Context, id uint64) (*model.PurchaseEntity, error)
	UpdateDeliveryStatus(ctx context.Context, id uint64, status constant.DeliveryStatus) error
}

func NewPurchaseRepository(conn *sqlx.DB) PurchaseRepository {
	return &SQL{conn: conn}
}

const (
	insertPurchaseQuery = `INSERT INTO purchase (user_id, item_id, type, recipient_steam_id, server_id, price_paid, delivery_status, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, NOW())`
	getPurchaseQuery = `SELECT id, user_id, item_id, type, recipient_steam_id, server_id, price_paid, delivery_status, created_at FROM purchase WHERE id = ?`
	updateStatusQuery = `UPDATE purchase SET delivery_status = ? WHERE id = ?`
)

func (s *SQL) InsertPurchaseTx(ctx context.Context, tx *sqlx.Tx, data *model.PurchaseEntity) (uint64, error) {
	result, err := tx.ExecContext(ctx, insertPurchaseQuery,
		data.UserID, data.ItemID, data.Type, data.RecipientSteamID, data.ServerID, data.PricePaid, data.DeliveryStatus)
	if err != nil {
		return 0, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(lastID), nil
}

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.PurchaseEntity, error) {
	var entity model.PurchaseEntity
	if err := s.conn.QueryRowxContext(ctx, getPurchaseQuery, id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) UpdateDeliveryStatus(ctx context.Context, id uint64, status constant.DeliveryStatus) error {
	_, err := s.conn.ExecContext(ctx, updateStatusQuery, status, id)
	return err
}
