package common

import (
	"crypto/ecdsa"
	"fmt"

	"github.com/cosmos/go-bip39"
	"github.com/ethereum/go-ethereum/accounts"
	hdwallet "github.com/miguelmota/go-ethereum-hdwallet"
)

// DerivationBasePath is the BIP-44 prefix for derived user wallets; the coin
// type matches the Base chain id.
const DerivationBasePath = "m/44'/8453'/0'/0"

// NewMnemonic generates a fresh 24-word partner seed phrase.
func NewMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(256)
	if err != nil {
		return "", err
	}
	return bip39.NewMnemonic(entropy)
}

func derivationPath(index int64) accounts.DerivationPath {
	return hdwallet.MustParseDerivationPath(fmt.Sprintf("%s/%d", DerivationBasePath, index))
}

// EthereumAddressFromMnemonic derives the wallet address at the given index.
func EthereumAddressFromMnemonic(mnemonic string, index int64) (string, error) {
	wallet, err := hdwallet.NewFromMnemonic(mnemonic)
	if err != nil {
		return "", fmt.Errorf("failed to create hd wallet: %w", err)
	}

	account, err := wallet.Derive(derivationPath(index), false)
	if err != nil {
		return "", fmt.Errorf("failed to derive account at index %d: %w", index, err)
	}

	return account.Address.Hex(), nil
}

// EthereumPrivateKeyFromMnemonic derives the signing key at the given index.
func EthereumPrivateKeyFromMnemonic(mnemonic string, index int64) (*ecdsa.PrivateKey, error) {
	wallet, err := hdwallet.NewFromMnemonic(mnemonic)
	if err != nil {
		return nil, fmt.Errorf("failed to create hd wallet: %w", err)
	}

	account, err := wallet.Derive(derivationPath(index), false)
	if err != nil {
		return nil, fmt.Errorf("failed to derive account at index %d: %w", index, err)
	}

	return wallet.PrivateKey(account)
}
