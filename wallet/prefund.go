package wallet

import (
	"math/big"

	ethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	ethCrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/ntzs-io/ntzs-settlement/app"
	"github.com/ntzs-io/ntzs-settlement/ethereum"

	log "github.com/sirupsen/logrus"
)

const transferGasLimit = 21000

// PrefundGas sends a small native-gas transfer from the relayer to a freshly
// provisioned wallet so it can pay for its own transfers. Skips silently when
// no relayer key or prefund amount is configured; an underfunded relayer logs
// and skips so provisioning never blocks on gas.
func PrefundGas(client ethereum.EthereumClient, address string) string {
	relayerKey := app.Config.Ethereum.RelayerPrivateKey
	amount, ok := new(big.Int).SetString(app.Config.Ethereum.GasPrefundWei, 10)
	if relayerKey == "" || !ok || amount.Sign() <= 0 {
		log.Debug("[WALLET] Gas prefund not configured, skipping")
		return ""
	}

	privateKey, err := ethCrypto.HexToECDSA(relayerKey)
	if err != nil {
		log.Error("[WALLET] Invalid relayer key: ", err)
		return ""
	}
	relayerAddress := ethCrypto.PubkeyToAddress(privateKey.PublicKey)

	balance, err := client.GetBalance(relayerAddress.Hex())
	if err != nil {
		log.Error("[WALLET] Error fetching relayer balance: ", err)
		return ""
	}
	if balance.Cmp(amount) < 0 {
		log.Error("[WALLET] Relayer ", relayerAddress.Hex(), " has insufficient gas balance: ", balance)
		return ""
	}

	nonce, err := client.GetNonce(relayerAddress.Hex())
	if err != nil {
		log.Error("[WALLET] Error fetching relayer nonce: ", err)
		return ""
	}

	gasPrice, err := client.GetGasPrice()
	if err != nil {
		log.Error("[WALLET] Error fetching gas price: ", err)
		return ""
	}

	chainID, ok := new(big.Int).SetString(app.Config.Ethereum.ChainID, 10)
	if !ok {
		log.Error("[WALLET] Invalid chain id: ", app.Config.Ethereum.ChainID)
		return ""
	}

	to := ethCommon.HexToAddress(address)
	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		GasPrice: gasPrice,
		Gas:      transferGasLimit,
		To:       &to,
		Value:    amount,
	})

	signed, err := types.SignTx(tx, types.LatestSignerForChainID(chainID), privateKey)
	if err != nil {
		log.Error("[WALLET] Error signing prefund tx: ", err)
		return ""
	}

	if err := client.SendTransaction(signed); err != nil {
		log.Error("[WALLET] Error sending prefund tx: ", err)
		return ""
	}

	log.Info("[WALLET] Prefunded ", address, " with ", amount.String(), " wei, tx: ", signed.Hash().Hex())
	return signed.Hash().Hex()
}
