package shop_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	appshop "github.com/sayhighz/nexark-platform/application/shop"
	"github.com/sayhighz/nexark-platform/cmd/config"
	"github.com/sayhighz/nexark-platform/constant"
	creditsmocks "github.com/sayhighz/nexark-platform/mocks/repository/credits"
	itemmocks "github.com/sayhighz/nexark-platform/mocks/repository/item"
	purchasemocks "github.com/sayhighz/nexark-platform/mocks/repository/purchase"
	redismocks "github.com/sayhighz/nexark-platform/mocks/repository/redis"
	txmocks "github.com/sayhighz/nexark-platform/mocks/repository/tx"
	usermocks "github.com/sayhighz/nexark-platform/mocks/repository/user"
	"github.com/sayhighz/nexark-platform/model"
	cerr "github.com/sayhighz/nexark-platform/utils/errors"
	"github.com/stretchr/testify/mock"
)

// Note: shop.go checks if publisher is nil before queueing delivery, so tests
// use a nil publisher without panicking.

func TestShopApp_Buy(t *testing.T) {
	type fields struct {
		config       *config.Config
		txRepo       *txmocks.TxRepository
		itemRepo     *itemmocks.ItemRepository
		purchaseRepo *purchasemocks.PurchaseRepository
		creditsRepo  *creditsmocks.CreditsRepository
		userRepo     *usermocks.UserRepository
		redisRepo    *redismocks.Repository
	}
	type args struct {
		ctx    context.Context
		userID uint64
		req    *model.BuyRequest
	}

	buyer := &model.UserEntity{ID: 1, SteamID: "76561198000000001", Credits: 1000}

	newFields := func(t *testing.T) fields {
		return fields{
			config:       &config.Config{},
			txRepo:       txmocks.NewTxRepository(t),
			itemRepo:     itemmocks.NewItemRepository(t),
			purchaseRepo: purchasemocks.NewPurchaseRepository(t),
			creditsRepo:  creditsmocks.NewCreditsRepository(t),
			userRepo:     usermocks.NewUserRepository(t),
			redisRepo:    redismocks.NewRepository(t),
		}
	}

	tests := []struct {
		name     string
		args     args
		mockCall func(f fields)
		want     *model.PurchaseResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: buy limited-stock item",
			args: args{
				ctx:    context.Background(),
				userID: 1,
				req:    &model.BuyRequest{ItemID: 10},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 1}).Return(buyer, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.itemRepo.On("GetByIDTx", mock.Anything, tx, uint64(10)).Return(&model.ItemEntity{
					ID:          10,
					NameEN:      "Tek Rifle",
					Price:       250,
					Stock:       5,
					DeliveryCmd: "giveitem {steamid} tek_rifle",
				}, nil).Once()
				f.itemRepo.On("DecrementStockTx", mock.Anything, tx, uint64(10)).Return(true, nil).Once()

				f.creditsRepo.On("DebitTx", mock.Anything, tx, uint64(1), float64(250)).Return(true, nil).Once()
				f.creditsRepo.On("GetBalanceTx", mock.Anything, tx, uint64(1)).Return(float64(750), nil).Once()

				f.purchaseRepo.On("InsertPurchaseTx", mock.Anything, tx, mock.MatchedBy(func(p *model.PurchaseEntity) bool {
					return p.UserID == 1 && p.ItemID == 10 &&
						p.Type == constant.PurchaseTypeBuy &&
						p.RecipientSteamID == buyer.SteamID &&
						p.DeliveryStatus == constant.DeliveryStatusPending
				})).Return(uint64(42), nil).Once()

				f.creditsRepo.On("InsertTransactionTx", mock.Anything, tx, mock.MatchedBy(func(tr *model.CreditTransaction) bool {
					return tr.UserID == 1 && tr.Amount == -250 && tr.BalanceAfter == 750 &&
						tr.RefType == "purchase" && tr.RefID == 42
				})).Return(nil).Once()
			},
			want: &model.PurchaseResponse{
				PurchaseID:       42,
				ItemID:           10,
				ItemName:         "Tek Rifle",
				PricePaid:        250,
				CreditsRemaining: 750,
				RecipientSteamID: "76561198000000001",
			},
		},
		{
			name: "success: unlimited stock skips decrement",
			args: args{
				ctx:    context.Background(),
				userID: 1,
				req:    &model.BuyRequest{ItemID: 11},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 1}).Return(buyer, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.itemRepo.On("GetByIDTx", mock.Anything, tx, uint64(11)).Return(&model.ItemEntity{
					ID:     11,
					NameEN: "Stimberry",
					Price:  10,
					Stock:  constant.UnlimitedStock,
				}, nil).Once()

				f.creditsRepo.On("DebitTx", mock.Anything, tx, uint64(1), float64(10)).Return(true, nil).Once()
				f.creditsRepo.On("GetBalanceTx", mock.Anything, tx, uint64(1)).Return(float64(990), nil).Once()
				f.purchaseRepo.On("InsertPurchaseTx", mock.Anything, tx, mock.Anything).Return(uint64(43), nil).Once()
				f.creditsRepo.On("InsertTransactionTx", mock.Anything, tx, mock.Anything).Return(nil).Once()
			},
			want: &model.PurchaseResponse{
				PurchaseID:       43,
				ItemID:           11,
				ItemName:         "Stimberry",
				PricePaid:        10,
				CreditsRemaining: 990,
				RecipientSteamID: "76561198000000001",
			},
		},
		{
			name: "error: item not found",
			args: args{
				ctx:    context.Background(),
				userID: 1,
				req:    &model.BuyRequest{ItemID: 999},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 1}).Return(buyer, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.itemRepo.On("GetByIDTx", mock.Anything, tx, uint64(999)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrItemNotFound,
		},
		{
			name: "error: out of stock",
			args: args{
				ctx:    context.Background(),
				userID: 1,
				req:    &model.BuyRequest{ItemID: 10},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 1}).Return(buyer, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.itemRepo.On("GetByIDTx", mock.Anything, tx, uint64(10)).Return(&model.ItemEntity{
					ID:    10,
					Price: 250,
					Stock: 1,
				}, nil).Once()
				f.itemRepo.On("DecrementStockTx", mock.Anything, tx, uint64(10)).Return(false, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrOutOfStock,
		},
		{
			name: "error: insufficient credits",
			args: args{
				ctx:    context.Background(),
				userID: 1,
				req:    &model.BuyRequest{ItemID: 12},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 1}).Return(buyer, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.itemRepo.On("GetByIDTx", mock.Anything, tx, uint64(12)).Return(&model.ItemEntity{
					ID:    12,
					Price: 5000,
					Stock: constant.UnlimitedStock,
				}, nil).Once()
				f.creditsRepo.On("DebitTx", mock.Anything, tx, uint64(1), float64(5000)).Return(false, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInsufficientCredits,
		},
		{
			name: "error: unknown user",
			args: args{
				ctx:    context.Background(),
				userID: 77,
				req:    &model.BuyRequest{ItemID: 10},
			},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 77}).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrUnauthorize,
		},
		{
			name: "error: BeginTx returns error",
			args: args{
				ctx:    context.Background(),
				userID: 1,
				req:    &model.BuyRequest{ItemID: 10},
			},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 1}).Return(buyer, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(nil, errors.New("tx error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := appshop.NewShopApp(f.config, f.txRepo, f.itemRepo, f.purchaseRepo, f.creditsRepo, f.userRepo, f.redisRepo, nil)

			got, err := app.Buy(tt.args.ctx, tt.args.userID, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Buy() error = %v, wantErr %v", err, tt.wantErr)
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

			if *got != *tt.want {
				t.Fatalf("Buy() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestShopApp_Gift(t *testing.T) {
	type fields struct {
		config       *config.Config
		txRepo       *txmocks.TxRepository
		itemRepo     *itemmocks.ItemRepository
		purchaseRepo *purchasemocks.PurchaseRepository
		creditsRepo  *creditsmocks.CreditsRepository
		userRepo     *usermocks.UserRepository
		redisRepo    *redismocks.Repository
	}

	buyer := &model.UserEntity{ID: 1, SteamID: "76561198000000001", Credits: 1000}
	recipient := "76561198000000002"

	newFields := func(t *testing.T) fields {
		return fields{
			config:       &config.Config{},
			txRepo:       txmocks.NewTxRepository(t),
			itemRepo:     itemmocks.NewItemRepository(t),
			purchaseRepo: purchasemocks.NewPurchaseRepository(t),
			creditsRepo:  creditsmocks.NewCreditsRepository(t),
			userRepo:     usermocks.NewUserRepository(t),
			redisRepo:    redismocks.NewRepository(t),
		}
	}

	tests := []struct {
		name     string
		req      *model.GiftRequest
		mockCall func(f fields)
		want     *model.PurchaseResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: gift records recipient steam id",
			req:  &model.GiftRequest{ItemID: 10, RecipientSteamID: recipient},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 1}).Return(buyer, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.itemRepo.On("GetByIDTx", mock.Anything, tx, uint64(10)).Return(&model.ItemEntity{
					ID:     10,
					NameEN: "Tek Rifle",
					Price:  250,
					Stock:  constant.UnlimitedStock,
				}, nil).Once()

				f.creditsRepo.On("DebitTx", mock.Anything, tx, uint64(1), float64(250)).Return(true, nil).Once()
				f.creditsRepo.On("GetBalanceTx", mock.Anything, tx, uint64(1)).Return(float64(750), nil).Once()

				f.purchaseRepo.On("InsertPurchaseTx", mock.Anything, tx, mock.MatchedBy(func(p *model.PurchaseEntity) bool {
					return p.Type == constant.PurchaseTypeGift && p.RecipientSteamID == recipient
				})).Return(uint64(50), nil).Once()

				f.creditsRepo.On("InsertTransactionTx", mock.Anything, tx, mock.Anything).Return(nil).Once()
			},
			want: &model.PurchaseResponse{
				PurchaseID:       50,
				ItemID:           10,
				ItemName:         "Tek Rifle",
				PricePaid:        250,
				CreditsRemaining: 750,
				RecipientSteamID: recipient,
			},
		},
		{
			name:     "error: steam id too short",
			req:      &model.GiftRequest{ItemID: 10, RecipientSteamID: "7656119800000000"},
			mockCall: nil,
			wantErr:  true,
			errCode:  constant.ErrInvalidSteamID,
		},
		{
			name:     "error: steam id not numeric",
			req:      &model.GiftRequest{ItemID: 10, RecipientSteamID: "7656119800000000x"},
			mockCall: nil,
			wantErr:  true,
			errCode:  constant.ErrInvalidSteamID,
		},
		{
			name:     "error: empty steam id",
			req:      &model.GiftRequest{ItemID: 10, RecipientSteamID: ""},
			mockCall: nil,
			wantErr:  true,
			errCode:  constant.ErrInvalidSteamID,
		},
		{
			name:     "error: steam id with leading sign",
			req:      &model.GiftRequest{ItemID: 10, RecipientSteamID: "+9876543210123456"},
			mockCall: nil,
			wantErr:  true,
			errCode:  constant.ErrInvalidSteamID,
		},
		{
			name:     "error: steam id with decimal point",
			req:      &model.GiftRequest{ItemID: 10, RecipientSteamID: "1234567.123456789"},
			mockCall: nil,
			wantErr:  true,
			errCode:  constant.ErrInvalidSteamID,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := appshop.NewShopApp(f.config, f.txRepo, f.itemRepo, f.purchaseRepo, f.creditsRepo, f.userRepo, f.redisRepo, nil)

			got, err := app.Gift(context.Background(), 1, tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Gift() error = %v, wantErr %v", err, tt.wantErr)
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

			if *got != *tt.want {
				t.Fatalf("Gift() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestShopApp_GetItem(t *testing.T) {
	cachedEntity := &model.ItemEntity{ID: 10, NameEN: "Tek Rifle", NameTH: "ปืนเทค", Price: 250, Stock: 5}
	cachedJSON, _ := json.Marshal(cachedEntity)

	tests := []struct {
		name     string
		lang     string
		id       uint64
		mockCall func(itemRepo *itemmocks.ItemRepository, redisRepo *redismocks.Repository)
		wantName string
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "cache hit skips the database",
			lang: "en",
			id:   10,
			mockCall: func(itemRepo *itemmocks.ItemRepository, redisRepo *redismocks.Repository) {
				redisRepo.On("Get", mock.Anything, "shop:item:10").Return(string(cachedJSON), nil).Once()
			},
			wantName: "Tek Rifle",
		},
		{
			name: "cache miss reads the database and caches",
			lang: "th",
			id:   10,
			mockCall: func(itemRepo *itemmocks.ItemRepository, redisRepo *redismocks.Repository) {
				redisRepo.On("Get", mock.Anything, "shop:item:10").Return("", nil).Once()
				itemRepo.On("GetByID", mock.Anything, uint64(10)).Return(cachedEntity, nil).Once()
				redisRepo.On("SetWithTTL", mock.Anything, "shop:item:10", mock.Anything, mock.Anything).Return(nil).Once()
			},
			wantName: "ปืนเทค",
		},
		{
			name: "error: item not found",
			lang: "en",
			id:   999,
			mockCall: func(itemRepo *itemmocks.ItemRepository, redisRepo *redismocks.Repository) {
				redisRepo.On("Get", mock.Anything, "shop:item:999").Return("", nil).Once()
				itemRepo.On("GetByID", mock.Anything, uint64(999)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrItemNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			itemRepo := itemmocks.NewItemRepository(t)
			redisRepo := redismocks.NewRepository(t)
			if tt.mockCall != nil {
				tt.mockCall(itemRepo, redisRepo)
			}
			app := appshop.NewShopApp(&config.Config{}, nil, itemRepo, nil, nil, nil, redisRepo, nil)

			got, err := app.GetItem(context.Background(), tt.lang, tt.id)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetItem() error = %v, wantErr %v", err, tt.wantErr)
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

			if got.Item.Name != tt.wantName {
				t.Fatalf("GetItem() name = %s, want %s", got.Item.Name, tt.wantName)
			}
		})
	}
}

func TestShopApp_CompleteDelivery(t *testing.T) {
	tests := []struct {
		name     string
		id       uint64
		mockCall func(purchaseRepo *purchasemocks.PurchaseRepository)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: marks delivery completed",
			id:   42,
			mockCall: func(purchaseRepo *purchasemocks.PurchaseRepository) {
				purchaseRepo.On("GetByID", mock.Anything, uint64(42)).Return(&model.PurchaseEntity{
					ID:             42,
					DeliveryStatus: constant.DeliveryStatusPending,
				}, nil).Once()
				purchaseRepo.On("UpdateDeliveryStatus", mock.Anything, uint64(42), constant.DeliveryStatusCompleted).Return(nil).Once()
			},
		},
		{
			name: "error: unknown purchase",
			id:   999,
			mockCall: func(purchaseRepo *purchasemocks.PurchaseRepository) {
				purchaseRepo.On("GetByID", mock.Anything, uint64(999)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			purchaseRepo := purchasemocks.NewPurchaseRepository(t)
			if tt.mockCall != nil {
				tt.mockCall(purchaseRepo)
			}
			app := appshop.NewShopApp(&config.Config{}, nil, nil, purchaseRepo, nil, nil, nil, nil)

			err := app.CompleteDelivery(context.Background(), tt.id)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CompleteDelivery() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
			}
		})
	}
}
