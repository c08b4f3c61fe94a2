package content

import (
	"context"

	"github.com/sayhighz/nexark-platform/constant"
	"github.com/sayhighz/nexark-platform/model"
	contentrepo "github.com/sayhighz/nexark-platform/repository/content"
	"github.com/sayhighz/nexark-platform/utils/errors"
	"github.com/sayhighz/nexark-platform/utils/logger"
	"go.uber.org/zap"
)

type ContentApp interface {
	GetPage(ctx context.Context, lang, slug string) (*model.ContentResponse, error)
}

type contentAppImpl struct {
	contentRepo contentrepo.ContentRepository
}

func NewContentApp(contentRepo contentrepo.ContentRepository) ContentApp {
	return &contentAppImpl{contentRepo: contentRepo}
}

func (s *contentAppImpl) GetPage(ctx context.Context, lang, slug string) (*model.ContentResponse, error) {
	entity, err := s.contentRepo.GetBySlug(ctx, slug)
	if err != nil {
		logger.Error("[GetPage] err contentRepo.GetBySlug", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	return &model.ContentResponse{Page: entity.Localize(lang)}, nil
}
