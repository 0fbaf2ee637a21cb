package wallet

import (
	"errors"

	"github.com/ethereum/go-ethereum/rpc"
)

// EIP-1193 and wallet JSON-RPC error codes.
const (
	CodeRequestPending = -32002
	CodeUserRejected   = 4001
	CodeUnauthorized   = 4100
)

var (
	ErrNotInstalled   = errors.New("wallet not installed")
	ErrPromptDeclined = errors.New("prompt declined")
)

// RPCError is a coded wallet error. It satisfies rpc.Error so the failure
// classifier can match on the code.
type RPCError struct {
	Code    int
	Message string
}

var _ rpc.Error = (*RPCError)(nil)

func (e *RPCError) Error() string {
	return e.Message
}

func (e *RPCError) ErrorCode() int {
	return e.Code
}

func codeOf(err error) (int, bool) {
	var coded rpc.Error
	if errors.As(err, &coded) {
		return coded.ErrorCode(), true
	}
	return 0, false
}
