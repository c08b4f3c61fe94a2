package shop

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/sayhighz/nexark-platform/cmd/config"
	"github.com/sayhighz/nexark-platform/constant"
	"github.com/sayhighz/nexark-platform/model"
	creditsrepo "github.com/sayhighz/nexark-platform/repository/credits"
	itemrepo "github.com/sayhighz/nexark-platform/repository/item"
	purchaserepo "github.com/sayhighz/nexark-platform/repository/purchase"
	redisrepo "github.com/sayhighz/nexark-platform/repository/redis"
	txrepo "github.com/sayhighz/nexark-platform/repository/tx"
	userrepo "github.com/sayhighz/nexark-platform/repository/user"
	"github.com/sayhighz/nexark-platform/thirdparty/rabbitmq"
	"github.com/sayhighz/nexark-platform/utils/errors"
	"github.com/sayhighz/nexark-platform/utils/logger"
	validatorx "github.com/sayhighz/nexark-platform/utils/validator"
	"go.uber.org/zap"
)

const itemCacheTTL = 5 * time.Minute

type ShopApp interface {
	ListItems(ctx context.Context, lang string, filter *model.ItemFilter, page, perPage int) (*model.ItemListResponse, error)
	GetItem(ctx context.Context, lang string, id uint64) (*model.ItemResponse, error)
	ListCategories(ctx context.Context, lang string) ([]model.Category, error)
	Buy(ctx context.Context, userID uint64, req *model.BuyRequest) (*model.PurchaseResponse, error)
	Gift(ctx context.Context, userID uint64, req *model.GiftRequest) (*model.PurchaseResponse, error)
	CompleteDelivery(ctx context.Context, purchaseID uint64) error
}

type shopAppImpl struct {
	config       *config.Config
	txRepo       txrepo.TxRepository
	itemRepo     itemrepo.ItemRepository
	purchaseRepo purchaserepo.PurchaseRepository
	creditsRepo  creditsrepo.CreditsRepository
	userRepo     userrepo.UserRepository
	redisRepo    redisrepo.Repository
	publisher    *rabbitmq.Publisher
}

func NewShopApp(config *config.Config, txRepo txrepo.TxRepository, itemRepo itemrepo.ItemRepository, purchaseRepo purchaserepo.PurchaseRepository, creditsRepo creditsrepo.CreditsRepository, userRepo userrepo.UserRepository, redisRepo redisrepo.Repository, publisher *rabbitmq.Publisher) ShopApp {
	return &shopAppImpl{
		config:       config,
		txRepo:       txRepo,
		itemRepo:     itemRepo,
		purchaseRepo: purchaseRepo,
		creditsRepo:  creditsRepo,
		userRepo:     userRepo,
		redisRepo:    redisRepo,
		publisher:    publisher,
	}
}

func (s *shopAppImpl) ListItems(ctx context.Context, lang string, filter *model.ItemFilter, page, perPage int) (*model.ItemListResponse, error) {
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = 20
	}

	entities, total, err := s.itemRepo.List(ctx, filter, page, perPage)
	if err != nil {
		logger.Error("[ListItems] err itemRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	items := make([]model.ShopItem, 0, len(entities))
	for i := range entities {
		items = append(items, *entities[i].Localize(lang))
	}

	return &model.ItemListResponse{
		Items:      items,
		TotalCount: total,
		Page:       page,
		PerPage:    perPage,
	}, nil
}

func (s *shopAppImpl) GetItem(ctx context.Context, lang string, id uint64) (*model.ItemResponse, error) {
	entity, err := s.getItemCached(ctx, id)
	if err != nil {
		logger.Error("[GetItem] err getItemCached", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrItemNotFound)
	}

	return &model.ItemResponse{Item: entity.Localize(lang)}, nil
}

func (s *shopAppImpl) ListCategories(ctx context.Context, lang string) ([]model.Category, error) {
	entities, err := s.itemRepo.ListCategories(ctx)
	if err != nil {
		logger.Error("[ListCategories] err itemRepo.ListCategories", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	categories := make([]model.Category, 0, len(entities))
	for i := range entities {
		categories = append(categories, entities[i].Localize(lang))
	}
	return categories, nil
}

func (s *shopAppImpl) Buy(ctx context.Context, userID uint64, req *model.BuyRequest) (*model.PurchaseResponse, error) {
	buyer, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID})
	if err != nil {
		logger.Error("[Buy] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if buyer == nil {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	return s.purchase(ctx, buyer, req.ItemID, buyer.SteamID, req.ServerID, constant.PurchaseTypeBuy)
}

func (s *shopAppImpl) Gift(ctx context.Context, userID uint64, req *model.GiftRequest) (*model.PurchaseResponse, error) {
	if err := validatorx.ValidateVar(req.RecipientSteamID, "required,len=17,number"); err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidSteamID)
	}

	buyer, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID})
	if err != nil {
		logger.Error("[Gift] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if buyer == nil {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	return s.purchase(ctx, buyer, req.ItemID, req.RecipientSteamID, req.ServerID, constant.PurchaseTypeGift)
}

// purchase runs the shared buy/gift transaction: lock the item, take a stock
// unit unless unlimited, debit the buyer, record the purchase and ledger row,
// then queue delivery.
func (s *shopAppImpl) purchase(ctx context.Context, buyer *model.UserEntity, itemID uint64, recipientSteamID string, serverID *uint64, purchaseType constant.PurchaseType) (*model.PurchaseResponse, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[purchase] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	item, err := s.itemRepo.GetByIDTx(ctx, tx, itemID)
	if err != nil {
		logger.Error("[purchase] get item", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if item == nil {
		return nil, errors.SetCustomError(constant.ErrItemNotFound)
	}

	if item.Stock != constant.UnlimitedStock {
		taken, err := s.itemRepo.DecrementStockTx(ctx, tx, item.ID)
		if err != nil {
			logger.Error("[purchase] decrement stock", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if !taken {
			logger.Info("[purchase] out of stock", zap.Uint64("item_id", item.ID))
			return nil, errors.SetCustomError(constant.ErrOutOfStock)
		}
	}

	debited, err := s.creditsRepo.DebitTx(ctx, tx, buyer.ID, item.Price)
	if err != nil {
		logger.Error("[purchase] debit credits", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !debited {
		logger.Info("[purchase] insufficient credits", zap.Uint64("user_id", buyer.ID), zap.Float64("price", item.Price))
		return nil, errors.SetCustomError(constant.ErrInsufficientCredits)
	}

	balanceAfter, err := s.creditsRepo.GetBalanceTx(ctx, tx, buyer.ID)
	if err != nil {
		logger.Error("[purchase] get balance", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	purchaseID, err := s.purchaseRepo.InsertPurchaseTx(ctx, tx, &model.PurchaseEntity{
		UserID:           buyer.ID,
		ItemID:           item.ID,
		Type:             purchaseType,
		RecipientSteamID: recipientSteamID,
		ServerID:         serverID,
		PricePaid:        item.Price,
		DeliveryStatus:   constant.DeliveryStatusPending,
	})
	if err != nil {
		logger.Error("[purchase] insert purchase", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.creditsRepo.InsertTransactionTx(ctx, tx, &model.CreditTransaction{
		UserID:       buyer.ID,
		Amount:       -item.Price,
		BalanceAfter: balanceAfter,
		RefType:      "purchase",
		RefID:        purchaseID,
	}); err != nil {
		logger.Error("[purchase] insert transaction", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[purchase] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	// Queue RCON delivery for the recipient
	if s.publisher != nil {
		msg := rabbitmq.DeliveryMessage{
			PurchaseID:       purchaseID,
			ItemID:           item.ID,
			RecipientSteamID: recipientSteamID,
			ServerID:         serverID,
			Command:          buildDeliveryCommand(item.DeliveryCmd, recipientSteamID),
		}
		if err := s.publisher.PublishDelivery(msg); err != nil {
			logger.Error("[purchase] publish delivery", zap.String("error", err.Error()))
		}
	}

	return &model.PurchaseResponse{
		PurchaseID:       purchaseID,
		ItemID:           item.ID,
		ItemName:         item.NameEN,
		PricePaid:        item.Price,
		CreditsRemaining: balanceAfter,
		RecipientSteamID: recipientSteamID,
	}, nil
}

func (s *shopAppImpl) CompleteDelivery(ctx context.Context, purchaseID uint64) error {
	entity, err := s.purchaseRepo.GetByID(ctx, purchaseID)
	if err != nil {
		logger.Error("[CompleteDelivery] get purchase", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	if err := s.purchaseRepo.UpdateDeliveryStatus(ctx, purchaseID, constant.DeliveryStatusCompleted); err != nil {
		logger.Error("[CompleteDelivery] update status", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

// getItemCached reads through the redis item cache. Cache failures fall back
// to the database.
func (s *shopAppImpl) getItemCached(ctx context.Context, id uint64) (*model.ItemEntity, error) {
	key := itemCacheKey(id)

	if cached, err := s.redisRepo.Get(ctx, key); err == nil && cached != "" {
		var entity model.ItemEntity
		if err := json.Unmarshal([]byte(cached), &entity); err == nil {
			return &entity, nil
		}
	}

	entity, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, nil
	}

	if raw, err := json.Marshal(entity); err == nil {
		if err := s.redisRepo.SetWithTTL(ctx, key, string(raw), itemCacheTTL); err != nil {
			logger.Warn("[getItemCached] cache write failed", zap.String("error", err.Error()))
		}
	}
	return entity, nil
}

func itemCacheKey(id uint64) string {
	return "shop:item:" + strconv.FormatUint(id, 10)
}

func buildDeliveryCommand(template, steamID string) string {
	if template == "" {
		return ""
	}
	return strings.ReplaceAll(template, "{steamid}", steamID)
}
