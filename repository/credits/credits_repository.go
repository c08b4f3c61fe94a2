package credits

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

type CreditsRepository interface {
	GetBalance(ctx context.Context, userID uint64) (float64, error)
	// DebitTx atomically takes amount from the user's balance; it reports
	// false when the balance is insufficient.
	DebitTx(ctx context.Context, tx *sqlx.Tx, userID uint64, amount float64) (bool, error)
	CreditTx(ctx context.Context, tx *sqlx.Tx, userID uint64, amount float64) error
	GetBalanceTx(ctx context.Context, tx *sqlx.Tx, userID uint64) (float64, error)
	InsertTransactionTx(ctx context.Context, tx *sqlx.Tx, data *model.CreditTransaction) error
	ListTransactions(ctx context.Context, userID uint64, page, perPage int) ([]model.CreditTransaction, int64, error)
	InsertTopup(ctx context.Context, data *model.TopupEntity) (uint64, error)
	GetTopupByReference(ctx context.Context, reference string) (*model.TopupEntity, error)
	UpdateTopupStatus(ctx context.Context, id uint64, status constant.TopupStatus) error
}

func NewCreditsRepository(conn *sqlx.DB) CreditsRepository {
	return &SQL{conn: conn}
}

const (
	getBalanceQuery = `SELECT credits FROM user WHERE id = ?`
	debitQuery      = `UPDATE user SET credits = credits - ? WHERE id = ? AND credits >= ?`
	creditQuery     = `UPDATE user SET credits = credits + ? WHERE id = ?`

	insertTransactionQuery = `INSERT INTO credit_transaction (user_id, amount, balance_after, ref_type, ref_id, created_at)
VALUES (?, ?, ?, ?, ?, NOW())`
	listTransactionsQuery  = `SELECT id, user_id, amount, balance_after, ref_type, ref_id, created_at FROM credit_transaction WHERE user_id = ? ORDER BY id DESC LIMIT ? OFFSET ?`
	countTransactionsQuery = `SELECT COUNT(*) FROM credit_transaction WHERE user_id = ?`

	insertTopupQuery       = `INSERT INTO topup (user_id, amount, currency, payment_method, reference, status, created_at) VALUES (?, ?, ?, ?, ?, ?, NOW())`
	getTopupByRefQuery     = `SELECT id, user_id, amount, currency, payment_method, reference, status, created_at FROM topup WHERE reference = ?`
	updateTopupStatusQuery = `UPDATE topup SET status = ? WHERE id = ?`
)

func (s *SQL) GetBalance(ctx context.Context, userID uint64) (float64, error) {
	var balance float64
	if err := s.conn.GetContext(ctx, &balance, getBalanceQuery, userID); err != nil {
		return 0, err
	}
	return balance, nil
}

func (s *SQL) DebitTx(ctx context.Context, tx *sqlx.Tx, userID uint64, amount float64) (bool, error) {
	result, err := tx.ExecContext(ctx, debitQuery, amount, userID, amount)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (s *SQL) CreditTx(ctx context.Context, tx *sqlx.Tx, userID uint64, amount float64) error {
	_, err := tx.ExecContext(ctx, creditQuery, amount, userID)
	return err
}

func (s *SQL) GetBalanceTx(ctx context.Context, tx *sqlx.Tx, userID uint64) (float64, error) {
	var balance float64
	if err := tx.GetContext(ctx, &balance, getBalanceQuery, userID); err != nil {
		return 0, err
	}
	return balance, nil
}

func (s *SQL) InsertTransactionTx(ctx context.Context, tx *sqlx.Tx, data *model.CreditTransaction) error {
	_, err := tx.ExecContext(ctx, insertTransactionQuery,
		data.UserID, data.Amount, data.BalanceAfter, data.RefType, data.RefID)
	return err
}

func (s *SQL) ListTransactions(ctx context.Context, userID uint64, page, perPage int) ([]model.CreditTransaction, int64, error) {
	offset := (page - 1) * perPage

	rows, err := s.conn.QueryxContext(ctx, listTransactionsQuery, userID, perPage, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	transactions := make([]model.CreditTransaction, 0)
	for rows.Next() {
		var t model.CreditTransaction
		if err := rows.StructScan(&t); err != nil {
			return nil, 0, err
		}
		transactions = append(transactions, t)
	}

	var total int64
	if err := s.conn.GetContext(ctx, &total, countTransactionsQuery, userID); err != nil {
		return nil, 0, err
	}

	return transactions, total, nil
}

func (s *SQL) InsertTopup(ctx context.Context, data *model.TopupEntity) (uint64, error) {
	result, err := s.conn.ExecContext(ctx, insertTopupQuery,
		data.UserID, data.Amount, data.Currency, data.PaymentMethod, data.Reference, data.Status)
	if err != nil {
		return 0, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(lastID), nil
}

func (s *SQL) GetTopupByReference(ctx context.Context, reference string) (*model.TopupEntity, error) {
	var entity model.TopupEntity
	if err := s.conn.QueryRowxContext(ctx, getTopupByRefQuery, reference).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) UpdateTopupStatus(ctx context.Context, id uint64, status constant.TopupStatus) error {
	_, err := s.conn.ExecContext(ctx, updateTopupStatusQuery, status, id)
	return err
}
