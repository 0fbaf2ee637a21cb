package wallet

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"
)

type (
	// AccountsChanged carries the full authorized account list after a change.
	AccountsChanged struct {
		Accounts []common.Address
	}

	// ChainChanged reports that the wallet now serves another chain.
	ChainChanged struct {
		ChainID *big.Int
	}

	// Provider is an account-holding wallet that can authorize the client and sign
	// transactions.
	Provider interface {
		// Accounts returns already-authorized accounts without prompting.
		Accounts(ctx context.Context) ([]common.Address, error)
		// RequestAccounts asks the user to authorize the client.
		RequestAccounts(ctx context.Context) ([]common.Address, error)
		// Disconnect revokes the authorization.
		Disconnect(ctx context.Context) error
		// Signer returns transaction options that sign as account.
		Signer(ctx context.Context, account common.Address) (*bind.TransactOpts, error)
		SubscribeAccountsChanged(ch chan<- AccountsChanged) event.Subscription
		SubscribeChainChanged(ch chan<- ChainChanged) event.Subscription
	}

	// PassphrasePrompt asks the user to unlock account. ErrPromptDeclined means the
	// user refused.
	PassphrasePrompt interface {
		Passphrase(ctx context.Context, account common.Address) (string, error)
	}

	// ConfirmPrompt asks the user to approve a transaction before it is signed.
	ConfirmPrompt interface {
		Confirm(account common.Address, tx *types.Transaction) (bool, error)
	}

	// ChainIDReader reports the chain served by the wallet's node.
	ChainIDReader interface {
		ChainID(ctx context.Context) (*big.Int, error)
	}
)
