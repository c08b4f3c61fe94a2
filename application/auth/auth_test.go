package auth_test

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	appauth "github.com/sayhighz/nexark-platform/application/auth"
	"github.com/sayhighz/nexark-platform/cmd/config"
	"github.com/sayhighz/nexark-platform/constant"
	redismocks "github.com/sayhighz/nexark-platform/mocks/repository/redis"
	usermocks "github.com/sayhighz/nexark-platform/mocks/repository/user"
	"github.com/sayhighz/nexark-platform/model"
	"github.com/sayhighz/nexark-platform/thirdparty/steam"
	cerr "github.com/sayhighz/nexark-platform/utils/errors"
	"github.com/stretchr/testify/mock"
)

// fakeSteam satisfies appauth.SteamClient without hitting steamcommunity.com.
type fakeSteam struct {
	loginURL  string
	steamID   string
	verifyErr error
	summary   *steam.PlayerSummary
}

func (f *fakeSteam) BuildLoginURL() string { return f.loginURL }

func (f *fakeSteam) VerifyCallback(ctx context.Context, query url.Values) (string, error) {
	if f.verifyErr != nil {
		return "", f.verifyErr
	}
	return f.steamID, nil
}

func (f *fakeSteam) GetPlayerSummary(ctx context.Context, steamID string) (*steam.PlayerSummary, error) {
	if f.summary == nil {
		return nil, errors.New("no web api key")
	}
	return f.summary, nil
}

func authConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:      "test-secret",
			JWTExpiration:  time.Hour,
			SessionExpTime: time.Hour,
		},
	}
}

func TestAuthApp_HandleCallback(t *testing.T) {
	steamID := "76561198000000001"

	tests := []struct {
		name     string
		steam    *fakeSteam
		mockCall func(userRepo *usermocks.UserRepository, redisRepo *redismocks.Repository)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:  "success: existing user logs in",
			steam: &fakeSteam{steamID: steamID},
			mockCall: func(userRepo *usermocks.UserRepository, redisRepo *redismocks.Repository) {
				userRepo.On("Get", mock.Anything, &model.UserFilter{SteamID: steamID}).Return(&model.UserEntity{
					ID:      1,
					SteamID: steamID,
				}, nil).Once()
				userRepo.On("TouchLogin", mock.Anything, uint64(1)).Return(nil).Once()
				redisRepo.On("SetSession", mock.Anything, mock.Anything, uint64(1), time.Hour).Return(nil).Once()
			},
		},
		{
			name:  "success: first login creates the user",
			steam: &fakeSteam{steamID: steamID},
			mockCall: func(userRepo *usermocks.UserRepository, redisRepo *redismocks.Repository) {
				userRepo.On("Get", mock.Anything, &model.UserFilter{SteamID: steamID}).Return(nil, nil).Once()
				userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *model.UserEntity) bool {
					return u.SteamID == steamID
				})).Return(&model.UserEntity{ID: 2, SteamID: steamID}, nil).Once()
				userRepo.On("TouchLogin", mock.Anything, uint64(2)).Return(nil).Once()
				redisRepo.On("SetSession", mock.Anything, mock.Anything, uint64(2), time.Hour).Return(nil).Once()
			},
		},
		{
			name:  "success: persona refresh updates the user",
			steam: &fakeSteam{steamID: steamID, summary: &steam.PlayerSummary{PersonaName: "Survivor", AvatarFull: "https://avatars.example/full.jpg"}},
			mockCall: func(userRepo *usermocks.UserRepository, redisRepo *redismocks.Repository) {
				userRepo.On("Get", mock.Anything, &model.UserFilter{SteamID: steamID}).Return(&model.UserEntity{
					ID:      1,
					SteamID: steamID,
				}, nil).Once()
				userRepo.On("UpdatePersona", mock.Anything, uint64(1), "Survivor", "https://avatars.example/full.jpg").Return(nil).Once()
				userRepo.On("TouchLogin", mock.Anything, uint64(1)).Return(nil).Once()
				redisRepo.On("SetSession", mock.Anything, mock.Anything, uint64(1), time.Hour).Return(nil).Once()
			},
		},
		{
			name:     "error: openid verification fails",
			steam:    &fakeSteam{verifyErr: errors.New("is_valid:false")},
			mockCall: nil,
			wantErr:  true,
			errCode:  constant.ErrUnauthorize,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			userRepo := usermocks.NewUserRepository(t)
			redisRepo := redismocks.NewRepository(t)
			if tt.mockCall != nil {
				tt.mockCall(userRepo, redisRepo)
			}
			app := appauth.NewAuthApp(authConfig(), userRepo, redisRepo, tt.steam)

			got, err := app.HandleCallback(context.Background(), url.Values{})
			if (err != nil) != tt.wantErr {
				t.Fatalf("HandleCallback() error = %v, wantErr %v", err, tt.wantErr)
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

			if got.Token == "" {
				t.Fatal("HandleCallback() token should not be empty")
			}
			if got.User == nil || got.User.SteamID != steamID {
				t.Fatalf("HandleCallback() user = %+v", got.User)
			}
		})
	}
}

func TestAuthApp_ValidateToken(t *testing.T) {
	cfg := authConfig()
	steamID := "76561198000000001"

	// Issue a real token through HandleCallback and capture the session jti
	// the app stores; ValidateToken must accept exactly that pairing.
	userRepo := usermocks.NewUserRepository(t)
	redisRepo := redismocks.NewRepository(t)
	userRepo.On("Get", mock.Anything, &model.UserFilter{SteamID: steamID}).Return(&model.UserEntity{ID: 7, SteamID: steamID}, nil).Once()
	userRepo.On("TouchLogin", mock.Anything, uint64(7)).Return(nil).Once()

	var storedJTI string
	redisRepo.On("SetSession", mock.Anything, mock.Anything, uint64(7), time.Hour).Run(func(args mock.Arguments) {
		storedJTI = args.String(1)
	}).Return(nil).Once()

	app := appauth.NewAuthApp(cfg, userRepo, redisRepo, &fakeSteam{steamID: steamID})
	res, err := app.HandleCallback(context.Background(), url.Values{})
	if err != nil {
		t.Fatalf("HandleCallback() error = %v", err)
	}

	t.Run("valid token with live session", func(t *testing.T) {
		redisRepo.On("GetSession", mock.Anything, storedJTI).Return(uint64(7), nil).Once()

		userID, err := app.ValidateToken(context.Background(), res.Token)
		if err != nil {
			t.Fatalf("ValidateToken() error = %v", err)
		}
		if userID != 7 {
			t.Fatalf("userID = %d, want 7", userID)
		}
	})

	t.Run("expired session rejects the token", func(t *testing.T) {
		redisRepo.On("GetSession", mock.Anything, storedJTI).Return(uint64(0), errors.New("redis: nil")).Once()

		if _, err := app.ValidateToken(context.Background(), res.Token); err == nil {
			t.Fatal("ValidateToken() expected error for expired session")
		}
	})

	t.Run("session user mismatch rejects the token", func(t *testing.T) {
		redisRepo.On("GetSession", mock.Anything, storedJTI).Return(uint64(99), nil).Once()

		if _, err := app.ValidateToken(context.Background(), res.Token); err == nil {
			t.Fatal("ValidateToken() expected error for user mismatch")
		}
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		if _, err := app.ValidateToken(context.Background(), "not-a-jwt"); err == nil {
			t.Fatal("ValidateToken() expected error for malformed token")
		}
	})
}
