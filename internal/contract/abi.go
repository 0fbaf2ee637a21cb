package contract

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

const (
	methodKing               = "king"
	methodCurrentPrize       = "currentPrize"
	methodPendingWithdrawals = "pendingWithdrawals"
	methodClaimThrone        = "claimThrone"
	methodWithdraw           = "withdraw"
	methodTotalClaims        = "totalClaims"
	methodClaimCount         = "claimCount"
	methodFeePercentage      = "feePercentage"

	eventThroneClaimed        = "ThroneClaimed"
	eventFeePercentageUpdated = "FeePercentageUpdated"
)

// KingOfTheHillABI is the fixed interface of the deployed game contract.
const KingOfTheHillABI = `[
{"type":"function","name":"king","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"address"}]},
{"type":"function","name":"currentPrize","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
{"type":"function","name":"pendingWithdrawals","stateMutability":"view","inputs":[{"name":"","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
{"type":"function","name":"claimThrone","stateMutability":"payable","inputs":[],"outputs":[]},
{"type":"function","name":"withdraw","stateMutability":"nonpayable","inputs":[],"outputs":[]},
{"type":"function","name":"totalClaims","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
{"type":"function","name":"claimCount","stateMutability":"view","inputs":[{"name":"","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
{"type":"function","name":"feePercentage","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
{"type":"event","name":"ThroneClaimed","anonymous":false,"inputs":[{"name":"previousKing","type":"address","indexed":true},{"name":"newKing","type":"address","indexed":true},{"name":"amount","type":"uint256","indexed":false}]},
{"type":"event","name":"FeePercentageUpdated","anonymous":false,"inputs":[{"name":"oldFee","type":"uint256","indexed":false},{"name":"newFee","type":"uint256","indexed":false}]}
]`

var parsedABI = mustParseABI()

func mustParseABI() abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(KingOfTheHillABI))
	if err != nil {
		panic("parse king of the hill abi: " + err.Error())
	}
	return parsed
}

// ABI returns the parsed contract interface.
func ABI() abi.ABI {
	return parsedABI
}
