package wallet

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

var (
	errNoChainID     = errors.New("no chain id for transactor")
	errNotAuthorized = errors.New("not authorized to sign for account")
)

// Signer signs EVM transactions with a single account key.
type Signer struct {
	key     *ecdsa.PrivateKey
	address common.Address
}

// NewSigner wraps an account key.
func NewSigner(key *ecdsa.PrivateKey) *Signer {
	return &Signer{key: key, address: crypto.PubkeyToAddress(key.PublicKey)}
}

// Address returns the signing account.
func (s *Signer) Address() common.Address {
	return s.address
}

// SignTx signs tx for chainID using the latest signer rules for that chain.
func (s *Signer) SignTx(tx *types.Transaction, chainID *big.Int) (*types.Transaction, error) {
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(chainID), s.key)
	if err != nil {
		return nil, fmt.Errorf("signing transaction: %w", err)
	}
	return signed, nil
}

// TransactOpts returns transaction options for contract bindings that sign
// with this account on chainID.
func (s *Signer) TransactOpts(chainID *big.Int) (*bind.TransactOpts, error) {
	if chainID == nil {
		return nil, errNoChainID
	}
	return &bind.TransactOpts{
		From: s.address,
		Signer: func(from common.Address, tx *types.Transaction) (*types.Transaction, error) {
			if from != s.address {
				return nil, fmt.Errorf("%w: %s", errNotAuthorized, from.Hex())
			}
			return s.SignTx(tx, chainID)
		},
		Context: context.Background(),
	}, nil
}
