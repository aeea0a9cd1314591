package main

import (
	"flag"
	"fmt"

	"github.com/ntzs-io/ntzs-settlement/common"
)

func main() {
	var mnemonic string
	var encrypted string
	var keyHex string
	var index int64
	flag.StringVar(&mnemonic, "mnemonic", "", "seed mnemonic")
	flag.StringVar(&encrypted, "encrypted", "", "encrypted seed, requires -key")
	flag.StringVar(&keyHex, "key", "", "hex encoded seed encryption key")
	flag.Int64Var(&index, "index", 0, "derivation index")
	flag.Parse()

	if mnemonic == "" && encrypted == "" {
		fmt.Printf("mnemonic or encrypted is required\n")
		return
	}

	if mnemonic == "" {
		key, err := common.SeedEncryptionKeyFromHex(keyHex)
		if err != nil {
			fmt.Printf("invalid key: %s\n", err.Error())
			return
		}
		mnemonic, err = common.DecryptSeed(encrypted, key)
		if err != nil {
			fmt.Printf("error decrypting seed: %s\n", err.Error())
			return
		}
	}

	address, err := common.EthereumAddressFromMnemonic(mnemonic, index)
	if err != nil {
		fmt.Printf("error deriving address: %s\n", err.Error())
		return
	}

	fmt.Println("Index: ", index)
	fmt.Println("Address: ", address)
}
