package auth

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sayhighz/nexark-platform/cmd/config"
	"github.com/sayhighz/nexark-platform/constant"
	"github.com/sayhighz/nexark-platform/model"
	redisrepo "github.com/sayhighz/nexark-platform/repository/redis"
	userrepo "github.com/sayhighz/nexark-platform/repository/user"
	"github.com/sayhighz/nexark-platform/thirdparty/steam"
	"github.com/sayhighz/nexark-platform/utils/errors"
	"github.com/sayhighz/nexark-platform/utils/logger"
	"go.uber.org/zap"
)

// SteamClient is the slice of thirdparty/steam the auth layer needs.
type SteamClient interface {
	BuildLoginURL() string
	VerifyCallback(ctx context.Context, query url.Values) (string, error)
	GetPlayerSummary(ctx context.Context, steamID string) (*steam.PlayerSummary, error)
}

type AuthApp interface {
	LoginURL(ctx context.Context) *model.LoginURLResponse
	HandleCallback(ctx context.Context, query url.Values) (*model.CallbackResponse, error)
	Profile(ctx context.Context, userID uint64) (*model.ProfileResponse, error)
	Logout(ctx context.Context, tokenString string)
	ValidateToken(ctx context.Context, tokenString string) (uint64, error)
}

type authAppImpl struct {
	config    *config.Config
	userRepo  userrepo.UserRepository
	redisRepo redisrepo.Repository
	steam     SteamClient
}

func NewAuthApp(config *config.Config, userRepo userrepo.UserRepository, redisRepo redisrepo.Repository, steamClient SteamClient) AuthApp {
	return &authAppImpl{
		config:    config,
		userRepo:  userRepo,
		redisRepo: redisRepo,
		steam:     steamClient,
	}
}

func (s *authAppImpl) LoginURL(ctx context.Context) *model.LoginURLResponse {
	return &model.LoginURLResponse{LoginURL: s.steam.BuildLoginURL()}
}

func (s *authAppImpl) HandleCallback(ctx context.Context, query url.Values) (*model.CallbackResponse, error) {
	steamID, err := s.steam.VerifyCallback(ctx, query)
	if err != nil {
		logger.Info("[HandleCallback] openid verification failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	user, err := s.userRepo.Get(ctx, &model.UserFilter{SteamID: steamID})
	if err != nil {
		logger.Error("[HandleCallback] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if user == nil {
		user, err = s.userRepo.Create(ctx, &model.UserEntity{SteamID: steamID})
		if err != nil {
			logger.Error("[HandleCallback] err userRepo.Create", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}

	// Persona refresh is best-effort; login works without a Web API key.
	if summary, err := s.steam.GetPlayerSummary(ctx, steamID); err == nil && summary != nil {
		user.PersonaName = summary.PersonaName
		user.AvatarURL = summary.AvatarFull
		if err := s.userRepo.UpdatePersona(ctx, user.ID, summary.PersonaName, summary.AvatarFull); err != nil {
			logger.Warn("[HandleCallback] err UpdatePersona", zap.String("error", err.Error()))
		}
	}

	if err := s.userRepo.TouchLogin(ctx, user.ID); err != nil {
		logger.Warn("[HandleCallback] err TouchLogin", zap.String("error", err.Error()))
	}

	token, jti, err := s.generateJWT(user.ID)
	if err != nil {
		logger.Error("[HandleCallback] err generateJWT", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.redisRepo.SetSession(ctx, jti, user.ID, s.config.Auth.SessionExpTime); err != nil {
		logger.Error("[HandleCallback] err SetSession", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.CallbackResponse{
		Token: token,
		User:  user,
	}, nil
}

func (s *authAppImpl) Profile(ctx context.Context, userID uint64) (*model.ProfileResponse, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID})
	if err != nil {
		logger.Error("[Profile] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	return &model.ProfileResponse{User: user}, nil
}

// Logout drops the redis session for the token's jti. Best-effort: an
// invalid or already-expired token is not an error worth surfacing.
func (s *authAppImpl) Logout(ctx context.Context, tokenString string) {
	claims, err := s.parseClaims(tokenString)
	if err != nil {
		return
	}
	if err := s.redisRepo.DeleteSession(ctx, claims.ID); err != nil {
		logger.Warn("[Logout] err DeleteSession", zap.String("error", err.Error()))
	}
}

func (s *authAppImpl) ValidateToken(ctx context.Context, tokenString string) (uint64, error) {
	claims, err := s.parseClaims(tokenString)
	if err != nil {
		return 0, err
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid user id in token")
	}

	jti := claims.ID
	if jti == "" {
		return 0, fmt.Errorf("token missing jti")
	}

	// Check Redis session key
	redisUserID, err := s.redisRepo.GetSession(ctx, jti)
	if err != nil {
		return 0, fmt.Errorf("invalid or expired session")
	}

	// Compare Redis userID with claims.Subject
	if redisUserID != userID {
		return 0, fmt.Errorf("token does not match user session")
	}

	return userID, nil
}

func (s *authAppImpl) parseClaims(tokenString string) (*jwt.RegisteredClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid claims")
	}
	return claims, nil
}

// generateJWT creates a JWT token for the user
func (s *authAppImpl) generateJWT(userID uint64) (string, string, error) {
	newUUID, _ := uuid.NewRandom()
	claims := jwt.RegisteredClaims{
		Subject:   fmt.Sprintf("%d", userID),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.config.Auth.JWTExpiration)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ID:        newUUID.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, claims.ID, nil
}
