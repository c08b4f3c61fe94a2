package credits

import (
	"context"
	"fmt"
	"net/url"

	"github.com/google/uuid"
	"github.com/sayhighz/nexark-platform/cmd/config"
	"github.com/sayhighz/nexark-platform/constant"
	"github.com/sayhighz/nexark-platform/model"
	creditsrepo "github.com/sayhighz/nexark-platform/repository/credits"
	"github.com/sayhighz/nexark-platform/utils/errors"
	"github.com/sayhighz/nexark-platform/utils/logger"
	"go.uber.org/zap"
)

type CreditsApp interface {
	Balance(ctx context.Context, userID uint64) (*model.BalanceResponse, error)
	Topup(ctx context.Context, userID uint64, req *model.TopupRequest) (*model.TopupResponse, error)
	History(ctx context.Context, userID uint64, page, perPage int) (*model.CreditHistoryResponse, error)
}

type creditsAppImpl struct {
	config      *config.Config
	creditsRepo creditsrepo.CreditsRepository
}

func NewCreditsApp(config *config.Config, creditsRepo creditsrepo.CreditsRepository) CreditsApp {
	return &creditsAppImpl{config: config, creditsRepo: creditsRepo}
}

func (s *creditsAppImpl) Balance(ctx context.Context, userID uint64) (*model.BalanceResponse, error) {
	balance, err := s.creditsRepo.GetBalance(ctx, userID)
	if err != nil {
		logger.Error("[Balance] err creditsRepo.GetBalance", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.BalanceResponse{Credits: balance}, nil
}

func (s *creditsAppImpl) Topup(ctx context.Context, userID uint64, req *model.TopupRequest) (*model.TopupResponse, error) {
	if req.Amount <= 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidAmount)
	}

	reference := uuid.NewString()
	topupID, err := s.creditsRepo.InsertTopup(ctx, &model.TopupEntity{
		UserID:        userID,
		Amount:        req.Amount,
		Currency:      req.Currency,
		PaymentMethod: req.PaymentMethod,
		Reference:     reference,
		Status:        constant.TopupStatusPending,
	})
	if err != nil {
		logger.Error("[Topup] err creditsRepo.InsertTopup", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.TopupResponse{
		TopupID:     topupID,
		CheckoutURL: s.buildCheckoutURL(reference, req),
	}, nil
}

func (s *creditsAppImpl) History(ctx context.Context, userID uint64, page, perPage int) (*model.CreditHistoryResponse, error) {
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = 20
	}

	transactions, total, err := s.creditsRepo.ListTransactions(ctx, userID, page, perPage)
	if err != nil {
		logger.Error("[History] err creditsRepo.ListTransactions", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.CreditHistoryResponse{
		Transactions: transactions,
		TotalCount:   total,
		Page:         page,
		PerPage:      perPage,
	}, nil
}

// buildCheckoutURL points the browser at the payment provider's hosted page.
// The provider confirms completed payments out of band.
func (s *creditsAppImpl) buildCheckoutURL(reference string, req *model.TopupRequest) string {
	params := url.Values{
		"ref":      {reference},
		"amount":   {fmt.Sprintf("%.2f", req.Amount)},
		"currency": {req.Currency},
		"method":   {req.PaymentMethod},
	}
	return s.config.Payment.CheckoutBaseURL + "?" + params.Encode()
}
