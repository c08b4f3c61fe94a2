package user

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/sayhighz/nexark-platform/model"
)

type SQL struct {
	conn *sqlx.DB
}

type UserRepository interface {
	Create(ctx context.Context, req *model.UserEntity) (*model.UserEntity, error)
	Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error)
	UpdatePersona(ctx context.Context, id uint64, personaName, avatarURL string) error
	TouchLogin(ctx context.Context, id uint64) error
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

const (
	insertUserQuery    = `INSERT INTO user (steam_id, persona_name, avatar_url, credits, created_at) VALUES (?, ?, ?, 0, NOW())`
	getUserBase        = `SELECT id, steam_id, persona_name, avatar_url, credits, created_at, last_login_at FROM user WHERE true`
	updatePersonaQuery = `UPDATE user SET persona_name = ?, avatar_url = ? WHERE id = ?`
	touchLoginQuery    = `UPDATE user SET last_login_at = NOW() WHERE id = ?`
)

func (s *SQL) Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertUserQuery, data.SteamID, data.PersonaName, data.AvatarURL)
	if err != nil {
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	data.ID = uint64(lastID)
	return data, nil
}

func (s *SQL) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	query := getUserBase
	args := make([]any, 0, 2)

	if filter.ID != 0 {
		query += " AND id = ?"
		args = append(args, filter.ID)
	}
	if filter.SteamID != "" {
		query += " AND steam_id = ?"
		args = append(args, filter.SteamID)
	}

	var entity model.UserEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) UpdatePersona(ctx context.Context, id uint64, personaName, avatarURL string) error {
	_, err := s.conn.ExecContext(ctx, updatePersonaQuery, personaName, avatarURL, id)
	return err
}

func (s *SQL) TouchLogin(ctx context.Context, id uint64) error {
	_, err := s.conn.ExecContext(ctx, touchLoginQuery, id)
	return err
}
