package model

import (
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

// Identity is the active wallet account and the signer bound to it.
// The zero value means no account is connected.
type Identity struct {
	Account common.Address
	Signer  *bind.TransactOpts
}

// Connected reports whether an account is present.
func (i Identity) Connected() bool {
	return i.Account != (common.Address{})
}

// CanSign reports whether transactions can be signed for the account.
func (i Identity) CanSign() bool {
	return i.Connected() && i.Signer != nil
}

// WalletStatus is the connector's view of the wallet.
type WalletStatus struct {
	Installed  bool
	Connecting bool
	Identity   Identity
	Error      *ErrorState
}
