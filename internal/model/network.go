package model

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// Network describes the chain and contract the client talks to.
type Network struct {
	Name            string
	ChainID         uint64
	RPCURL          string
	ContractAddress common.Address
}

var (
	ErrMissingRPCURL          = errors.New("rpc url is required")
	ErrMissingNetworkName     = errors.New("network name is required")
	ErrMissingChainID         = errors.New("chain id is required")
	ErrMissingContractAddress = errors.New("contract address is required")
)

// Validate checks that every field needed for the fallback connection is set.
func (n Network) Validate() error {
	var errs []error
	if n.Name == "" {
		errs = append(errs, ErrMissingNetworkName)
	}
	if n.ChainID == 0 {
		errs = append(errs, ErrMissingChainID)
	}
	if n.RPCURL == "" {
		errs = append(errs, ErrMissingRPCURL)
	}
	if n.ContractAddress == (common.Address{}) {
		errs = append(errs, ErrMissingContractAddress)
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid network configuration: %w", err)
	}
	return nil
}
