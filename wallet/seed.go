package wallet

import (
	"crypto/ecdsa"
	"time"

	"github.com/ntzs-io/ntzs-settlement/app"
	"github.com/ntzs-io/ntzs-settlement/common"
	"github.com/ntzs-io/ntzs-settlement/models"
	"go.mongodb.org/mongo-driver/bson"

	log "github.com/sirupsen/logrus"
)

func seedKey() ([]byte, error) {
	return common.SeedEncryptionKeyFromHex(app.Config.Settlement.SeedEncryptionKey)
}

// EnsureSeed returns the partner's HD mnemonic, generating and persisting an
// encrypted seed the first time a wallet is provisioned for the partner.
// Generation is guarded by a compare-and-swap on the empty seed field so two
// replicas can never assign different seeds.
func EnsureSeed(partner *models.Partner) (string, error) {
	key, err := seedKey()
	if err != nil {
		return "", err
	}

	if partner.EncryptedSeed != "" {
		return common.DecryptSeed(partner.EncryptedSeed, key)
	}

	mnemonic, err := common.NewMnemonic()
	if err != nil {
		return "", err
	}

	encrypted, err := common.EncryptSeed(mnemonic, key)
	if err != nil {
		return "", err
	}

	var updated models.Partner
	err = app.DB.FindOneAndUpdate(models.CollectionPartners,
		bson.M{"_id": partner.Id, "encrypted_seed": ""},
		bson.M{"$set": bson.M{"encrypted_seed": encrypted, "updated_at": time.Now()}},
		nil,
		&updated,
	)
	if err == nil {
		log.Info("[WALLET] Generated HD seed for partner: ", partner.Id.Hex())
		partner.EncryptedSeed = updated.EncryptedSeed
		return mnemonic, nil
	}

	// another replica generated the seed first, use theirs
	var current models.Partner
	if err := app.DB.FindOne(models.CollectionPartners, bson.M{"_id": partner.Id}, &current); err != nil {
		return "", err
	}
	if current.EncryptedSeed == "" {
		return "", common.NewTransientError("partner seed not assigned", nil)
	}
	partner.EncryptedSeed = current.EncryptedSeed
	return common.DecryptSeed(current.EncryptedSeed, key)
}

// DeriveAddress derives the deterministic wallet address for a partner user at
// the given index. Never exposes the private key.
func DeriveAddress(partner *models.Partner, index int64) (string, error) {
	mnemonic, err := EnsureSeed(partner)
	if err != nil {
		return "", err
	}
	return common.EthereumAddressFromMnemonic(mnemonic, index)
}

// DerivePrivateKey derives the signing key for a partner user at the given
// index. Callers must discard the key after signing; it is never persisted.
func DerivePrivateKey(partner *models.Partner, index int64) (*ecdsa.PrivateKey, error) {
	key, err := seedKey()
	if err != nil {
		return nil, err
	}
	if partner.EncryptedSeed == "" {
		return nil, common.NewValidationError("partner has no seed")
	}
	mnemonic, err := common.DecryptSeed(partner.EncryptedSeed, key)
	if err != nil {
		return nil, err
	}
	return common.EthereumPrivateKeyFromMnemonic(mnemonic, index)
}
