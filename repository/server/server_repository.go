package server

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/sayhighz/nexark-platform/model"
)

type SQL struct {
	conn *sqlx.DB
}

type ServerRepository interface {
	List(ctx context.Context) ([]model.ServerEntity, error)
	GetByID(ctx context.Context, id uint64) (*model.ServerEntity, error)
}

func NewServerRepository(conn *sqlx.DB) ServerRepository {
	return &SQL{conn: conn}
}

const (
	listServersQuery = `SELECT id, name, map_name, address, query_port, rcon_port, max_players, created_at FROM game_server ORDER BY id`
	getServerQuery   = `SELECT id, name, map_name, address, query_port, rcon_port, max_players, created_at FROM game_server WHERE id = ?`
)

func (s *SQL) List(ctx context.Context) ([]model.ServerEntity, error) {
	rows, err := s.conn.QueryxContext(ctx, listServersQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	servers := make([]model.ServerEntity, 0)
	for rows.Next() {
		var sv model.ServerEntity
		if err := rows.StructScan(&sv); err != nil {
			return nil, err
		}
		servers = append(servers, sv)
	}
	return servers, nil
}

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.ServerEntity, error) {
	var entity model.ServerEntity
	if err := s.conn.QueryRowxContext(ctx, getServerQuery, id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}
