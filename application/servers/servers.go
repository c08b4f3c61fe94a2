package servers

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/sayhighz/nexark-platform/constant"
	"github.com/sayhighz/nexark-platform/model"
	redisrepo "github.com/sayhighz/nexark-platform/repository/redis"
	serverrepo "github.com/sayhighz/nexark-platform/repository/server"
	"github.com/sayhighz/nexark-platform/utils/errors"
	"github.com/sayhighz/nexark-platform/utils/logger"
	"go.uber.org/zap"
)

const statusCacheTTL = 30 * time.Second

type ServersApp interface {
	List(ctx context.Context) (*model.ServerListResponse, error)
	Get(ctx context.Context, id uint64) (*model.ServerResponse, error)
	// SetStatus stores a freshly probed server status in the cache. The
	// probing itself runs next to the game servers, not in this process.
	SetStatus(ctx context.Context, id uint64, status *model.ServerStatus) error
}

type serversAppImpl struct {
	serverRepo serverrepo.ServerRepository
	redisRepo  redisrepo.Repository
}

func NewServersApp(serverRepo serverrepo.ServerRepository, redisRepo redisrepo.Repository) ServersApp {
	return &serversAppImpl{serverRepo: serverRepo, redisRepo: redisRepo}
}

func (s *serversAppImpl) List(ctx context.Context) (*model.ServerListResponse, error) {
	entities, err := s.serverRepo.List(ctx)
	if err != nil {
		logger.Error("[List] err serverRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	servers := make([]model.GameServer, 0, len(entities))
	for i := range entities {
		servers = append(servers, model.GameServer{
			ServerEntity: entities[i],
			Status:       s.cachedStatus(ctx, entities[i].ID),
		})
	}

	return &model.ServerListResponse{Servers: servers}, nil
}

func (s *serversAppImpl) Get(ctx context.Context, id uint64) (*model.ServerResponse, error) {
	entity, err := s.serverRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[Get] err serverRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	return &model.ServerResponse{
		Server: &model.GameServer{
			ServerEntity: *entity,
			Status:       s.cachedStatus(ctx, entity.ID),
		},
	}, nil
}

func (s *serversAppImpl) SetStatus(ctx context.Context, id uint64, status *model.ServerStatus) error {
	raw, err := json.Marshal(status)
	if err != nil {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if err := s.redisRepo.SetWithTTL(ctx, statusCacheKey(id), string(raw), statusCacheTTL); err != nil {
		logger.Error("[SetStatus] err redisRepo.SetWithTTL", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

// cachedStatus returns nil when no fresh probe is cached; the API exposes
// that as an unknown status rather than guessing.
func (s *serversAppImpl) cachedStatus(ctx context.Context, id uint64) *model.ServerStatus {
	raw, err := s.redisRepo.Get(ctx, statusCacheKey(id))
	if err != nil || raw == "" {
		return nil
	}

	var status model.ServerStatus
	if err := json.Unmarshal([]byte(raw), &status); err != nil {
		return nil
	}
	return &status
}

func statusCacheKey(id uint64) string {
	return "server:status:" + strconv.FormatUint(id, 10)
}
