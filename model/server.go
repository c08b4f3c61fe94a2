package model

import "time"

// ServerEntity represents a game server row.
type ServerEntity struct {
	ID         uint64    `db:"id" json:"id"`
	Name       string    `db:"name" json:"name"`
	MapName    string    `db:"map_name" json:"map_name"`
	Address    string    `db:"address" json:"address"`
	QueryPort  int       `db:"query_port" json:"query_port"`
	RconPort   int       `db:"rcon_port" json:"-"`
	MaxPlayers int       `db:"max_players" json:"max_players"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// ServerStatus is the cached live status of a game server.
type ServerStatus struct {
	Online        bool      `json:"online"`
	PlayersOnline int       `json:"players_online"`
	CheckedAt     time.Time `json:"checked_at"`
}

// GameServer is a server row merged with its cached status.
type GameServer struct {
	ServerEntity
	Status *ServerStatus `json:"status,omitempty"`
}

// ServerListResponse is the GET /servers payload.
type ServerListResponse struct {
	Servers []GameServer `json:"servers"`
}

// ServerResponse wraps a single server.
type ServerResponse struct {
	Server *GameServer `json:"server"`
}
