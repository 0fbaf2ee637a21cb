package transport

import (
	"context"

	"github.com/holiman/uint256"

	"github.com/goodnatureofminers/kingofthehill-client/internal/contract"
	"github.com/goodnatureofminers/kingofthehill-client/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// Game is the session surface the handler drives.
type Game interface {
	Network() model.Network
	View() model.View
	Refresh(ctx context.Context) error
	Connect(ctx context.Context) error
	Disconnect(ctx context.Context) error
	SubmitBid(ctx context.Context, amount *uint256.Int) (model.OperationResult, error)
	SubmitWithdraw(ctx context.Context) (model.OperationResult, error)
	Claims(ctx context.Context, fromBlock uint64) ([]contract.ThroneClaimed, error)
}
