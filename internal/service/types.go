package service

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/holiman/uint256"

	"github.com/goodnatureofminers/kingofthehill-client/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Gateway interface {
		Leader(ctx context.Context) (common.Address, error)
		CurrentPrize(ctx context.Context) (*uint256.Int, error)
		TotalClaims(ctx context.Context) (*uint256.Int, error)
		FeeRate(ctx context.Context) (uint64, error)
		ClaimCount(ctx context.Context, account common.Address) (*uint256.Int, error)
		PendingWithdrawal(ctx context.Context, account common.Address) (*uint256.Int, error)
		Rebind(signer *bind.TransactOpts)
		SubmitBid(ctx context.Context, amount *uint256.Int) (*types.Transaction, error)
		SubmitWithdraw(ctx context.Context) (*types.Transaction, error)
		WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error)
	}
	GameStoreMetrics interface {
		ObserveRefresh(err error, started time.Time)
		ObserveRetry(attempt int)
		ObserveSubmission(kind model.OperationKind, err error, started time.Time)
	}
	Pacer interface {
		Wait(ctx context.Context) error
	}
	Classifier interface {
		Classify(err error) model.ErrorState
	}
)
