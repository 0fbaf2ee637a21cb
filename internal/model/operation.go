package model

import "github.com/ethereum/go-ethereum/common"

type (
	OperationKind   string
	OperationStatus string
)

var (
	OperationBid      OperationKind = "bid"
	OperationWithdraw OperationKind = "withdraw"
)

var (
	OperationPending   OperationStatus = "pending"
	OperationConfirmed OperationStatus = "confirmed"
	OperationFailed    OperationStatus = "failed"
)

// OperationResult tracks a submitted bid or withdrawal.
type OperationResult struct {
	Kind   OperationKind   `json:"kind"`
	Status OperationStatus `json:"status"`
	TxHash common.Hash     `json:"txHash"`
	Error  *ErrorState     `json:"error,omitempty"`
}
