package common

import "math/big"

// tokens are 18-decimal; fiat amounts are whole TZS
var tokenScale = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

// AmountToWei scales a TZS amount to on-chain token units.
func AmountToWei(amount int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(amount), tokenScale)
}

// WeiToAmount scales on-chain token units back to whole TZS, truncating any
// sub-unit dust.
func WeiToAmount(wei *big.Int) int64 {
	if wei == nil {
		return 0
	}
	return new(big.Int).Div(wei, tokenScale).Int64()
}
