package contract

import (
	"context"
	"fmt"
	"math/big"
	"time"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/goodnatureofminers/kingofthehill-client/pkg/safe"
)

// ThroneClaimed is a decoded ThroneClaimed event.
type ThroneClaimed struct {
	PreviousKing common.Address
	NewKing      common.Address
	Amount       *uint256.Int
	BlockNumber  uint64
	TxHash       common.Hash
}

// ThroneClaimedSince returns the claims logged from fromBlock up to the chain head.
func (g *Gateway) ThroneClaimedSince(ctx context.Context, fromBlock uint64) (claims []ThroneClaimed, err error) {
	started := time.Now()
	defer func() {
		g.metrics.Observe("filter_throne_claimed", err, started)
	}()

	logs, err := g.conn.Backend.FilterLogs(ctx, ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(fromBlock),
		Addresses: []common.Address{g.address},
		Topics:    [][]common.Hash{{parsedABI.Events[eventThroneClaimed].ID}},
	})
	if err != nil {
		return nil, fmt.Errorf("filter %s: %w", eventThroneClaimed, err)
	}

	claims = make([]ThroneClaimed, 0, len(logs))
	for _, l := range logs {
		var ev struct {
			PreviousKing common.Address
			NewKing      common.Address
			Amount       *big.Int
		}
		if err = g.contract.UnpackLog(&ev, eventThroneClaimed, l); err != nil {
			return nil, fmt.Errorf("decode %s in %s: %w", eventThroneClaimed, l.TxHash, err)
		}
		amount, convErr := safe.Uint256(ev.Amount)
		if convErr != nil {
			err = fmt.Errorf("decode %s amount: %w", eventThroneClaimed, convErr)
			return nil, err
		}
		claims = append(claims, ThroneClaimed{
			PreviousKing: ev.PreviousKing,
			NewKing:      ev.NewKing,
			Amount:       amount,
			BlockNumber:  l.BlockNumber,
			TxHash:       l.TxHash,
		})
	}
	return claims, nil
}
