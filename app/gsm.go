package app

import (
	"context"
	"fmt"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	log "github.com/sirupsen/logrus"
)

func accessSecretVersion(client *secretmanager.Client, name string) (string, error) {
	req := &secretmanagerpb.AccessSecretVersionRequest{
		Name: fmt.Sprintf("projects/%s/secrets/%s/versions/latest", Config.GoogleSecretManager.ProjectID, name),
	}

	result, err := client.AccessSecretVersion(context.Background(), req)
	if err != nil {
		return "", err
	}

	return string(result.Payload.Data), nil
}

func readSecretsFromGSM() {
	if !Config.GoogleSecretManager.Enabled {
		log.Debug("[GSM] Google Secret Manager is disabled")
		return
	}

	if Config.GoogleSecretManager.ProjectID == "" {
		log.Fatalf("[GSM] ProjectID is empty")
	}

	ctx := context.Background()
	client, err := secretmanager.NewClient(ctx)
	if err != nil {
		log.Fatalf("[GSM] Failed to create secretmanager client: %v", err)
	}
	defer client.Close()

	if Config.MongoDB.URI == "" && Config.GoogleSecretManager.MongoSecretName != "" {
		log.Debug("[GSM] Reading mongo uri")
		Config.MongoDB.URI, err = accessSecretVersion(client, Config.GoogleSecretManager.MongoSecretName)
		if err != nil {
			log.Fatalf("[GSM] Failed to access mongo uri: %v", err)
		}
		log.Info("[GSM] Successfully read mongo uri")
	}

	if Config.Ethereum.MinterPrivateKey == "" {
		if Config.GoogleSecretManager.MinterKeySecretName == "" {
			log.Fatalf("[GSM] Minter key secret name is empty")
		}

		log.Debug("[GSM] Reading minter private key")
		Config.Ethereum.MinterPrivateKey, err = accessSecretVersion(client, Config.GoogleSecretManager.MinterKeySecretName)
		if err != nil {
			log.Fatalf("[GSM] Failed to access minter private key: %v", err)
		}
		log.Info("[GSM] Successfully read minter private key")
	}

	if Config.Ethereum.RelayerPrivateKey == "" && Config.GoogleSecretManager.RelayerKeySecretName != "" {
		log.Debug("[GSM] Reading relayer private key")
		Config.Ethereum.RelayerPrivateKey, err = accessSecretVersion(client, Config.GoogleSecretManager.RelayerKeySecretName)
		if err != nil {
			log.Fatalf("[GSM] Failed to access relayer private key: %v", err)
		}
		log.Info("[GSM] Successfully read relayer private key")
	}

	if Config.Settlement.SeedEncryptionKey == "" {
		if Config.GoogleSecretManager.SeedKeySecretName == "" {
			log.Fatalf("[GSM] Seed key secret name is empty")
		}

		log.Debug("[GSM] Reading seed encryption key")
		Config.Settlement.SeedEncryptionKey, err = accessSecretVersion(client, Config.GoogleSecretManager.SeedKeySecretName)
		if err != nil {
			log.Fatalf("[GSM] Failed to access seed encryption key: %v", err)
		}
		log.Info("[GSM] Successfully read seed encryption key")
	}

	if Config.Snippe.APIKey == "" && Config.GoogleSecretManager.SnippeKeySecretName != "" {
		log.Debug("[GSM] Reading snippe api key")
		Config.Snippe.APIKey, err = accessSecretVersion(client, Config.GoogleSecretManager.SnippeKeySecretName)
		if err != nil {
			log.Fatalf("[GSM] Failed to access snippe api key: %v", err)
		}
		log.Info("[GSM] Successfully read snippe api key")
	}
}
