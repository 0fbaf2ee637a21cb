package model

import (
	"errors"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// BasisPointsDenominator is the fee rate denominator used by the contract.
const BasisPointsDenominator = 10_000

// ErrMinBidOverflow is returned when the minimum bid does not fit in 256 bits.
var ErrMinBidOverflow = errors.New("minimum bid overflows uint256")

// GameSnapshot is the last successfully fetched contract state. A snapshot is never
// modified after it has been published; refreshes produce a new value.
type GameSnapshot struct {
	Leader            common.Address
	Prize             *uint256.Int
	FeeRateBps        uint64
	TotalClaims       *uint256.Int
	Account           common.Address
	ClaimCount        *uint256.Int
	PendingWithdrawal *uint256.Int
	FetchedAt         time.Time
}

// MinBid returns the smallest amount the contract refuses, prize + prize*fee/10000.
// A bid must be strictly greater than this value.
func (s *GameSnapshot) MinBid() (*uint256.Int, error) {
	return MinBid(s.Prize, s.FeeRateBps)
}

// WithoutAccount returns a copy of the snapshot with the account-scoped fields reset.
func (s *GameSnapshot) WithoutAccount() *GameSnapshot {
	out := *s
	out.Account = common.Address{}
	out.ClaimCount = new(uint256.Int)
	out.PendingWithdrawal = new(uint256.Int)
	return &out
}

// MinBid mirrors the contract's checked integer arithmetic.
func MinBid(prize *uint256.Int, feeRateBps uint64) (*uint256.Int, error) {
	if prize == nil {
		prize = new(uint256.Int)
	}
	fee, overflow := new(uint256.Int).MulOverflow(prize, uint256.NewInt(feeRateBps))
	if overflow {
		return nil, ErrMinBidOverflow
	}
	fee.Div(fee, uint256.NewInt(BasisPointsDenominator))

	minBid, overflow := new(uint256.Int).AddOverflow(prize, fee)
	if overflow {
		return nil, ErrMinBidOverflow
	}
	return minBid, nil
}
