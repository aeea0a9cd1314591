package main

import (
	"flag"
	"fmt"

	"github.com/ntzs-io/ntzs-settlement/common"
)

func main() {
	var keyHex string
	flag.StringVar(&keyHex, "key", "", "hex encoded seed encryption key")
	flag.Parse()

	if keyHex == "" {
		fmt.Printf("key is required\n")
		return
	}

	key, err := common.SeedEncryptionKeyFromHex(keyHex)
	if err != nil {
		fmt.Printf("invalid key: %s\n", err.Error())
		return
	}

	mnemonic, err := common.NewMnemonic()
	if err != nil {
		fmt.Printf("error generating mnemonic: %s\n", err.Error())
		return
	}

	encrypted, err := common.EncryptSeed(mnemonic, key)
	if err != nil {
		fmt.Printf("error encrypting seed: %s\n", err.Error())
		return
	}

	address, err := common.EthereumAddressFromMnemonic(mnemonic, 0)
	if err != nil {
		fmt.Printf("error deriving address: %s\n", err.Error())
		return
	}

	fmt.Println("Mnemonic: ", mnemonic)
	fmt.Println("Encrypted Seed: ", encrypted)
	fmt.Println("First Address: ", address)
}
