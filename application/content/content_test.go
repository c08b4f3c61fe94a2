package content_test

import (
	"context"
	"errors"
	"testing"

	appcontent "github.com/sayhighz/nexark-platform/application/content"
	"github.com/sayhighz/nexark-platform/constant"
	contentmocks "github.com/sayhighz/nexark-platform/mocks/repository/content"
	"github.com/sayhighz/nexark-platform/model"
	cerr "github.com/sayhighz/nexark-platform/utils/errors"
	"github.com/stretchr/testify/mock"
)

func TestContentApp_GetPage(t *testing.T) {
	entity := &model.ContentEntity{
		Slug:    "rules",
		TitleEN: "Server Rules",
		TitleTH: "กฎของเซิร์ฟเวอร์",
		BodyEN:  "No griefing.",
		BodyTH:  "ห้ามก่อกวนผู้เล่นอื่น",
	}

	tests := []struct {
		name      string
		lang      string
		slug      string
		mockCall  func(contentRepo *contentmocks.ContentRepository)
		wantTitle string
		wantErr   bool
		errCode   constant.ErrorType
	}{
		{
			name: "english page",
			lang: "en",
			slug: "rules",
			mockCall: func(contentRepo *contentmocks.ContentRepository) {
				contentRepo.On("GetBySlug", mock.Anything, "rules").Return(entity, nil).Once()
			},
			wantTitle: "Server Rules",
		},
		{
			name: "thai page",
			lang: "th",
			slug: "rules",
			mockCall: func(contentRepo *contentmocks.ContentRepository) {
				contentRepo.On("GetBySlug", mock.Anything, "rules").Return(entity, nil).Once()
			},
			wantTitle: "กฎของเซิร์ฟเวอร์",
		},
		{
			name: "error: unknown slug",
			lang: "en",
			slug: "missing",
			mockCall: func(contentRepo *contentmocks.ContentRepository) {
				contentRepo.On("GetBySlug", mock.Anything, "missing").Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			contentRepo := contentmocks.NewContentRepository(t)
			if tt.mockCall != nil {
				tt.mockCall(contentRepo)
			}
			app := appcontent.NewContentApp(contentRepo)

			got, err := app.GetPage(context.Background(), tt.lang, tt.slug)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetPage() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if got.Page.Title != tt.wantTitle {
				t.Fatalf("title = %q, want %q", got.Page.Title, tt.wantTitle)
			}
		})
	}
}
