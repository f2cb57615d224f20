package vault

import (
	"fmt"

	"github.com/hashicorp/vault/api"
)

// SecretManager reads application secrets from HashiCorp Vault. Used in
// production to source the JWT secret and SMTP credentials instead of the
// config file.
type SecretManager struct {
	client *api.Client
	path   string
}

func NewSecretManager(address, token, path string) (*SecretManager, error) {
	config := api.DefaultConfig()
	config.Address = address

	client, err := api.NewClient(config)
	if err != nil {
		return nil, err
	}
	client.SetToken(token)

	return &SecretManager{client: client, path: path}, nil
}

func (sm *SecretManager) get(key string) (string, error) {
	secret, err := sm.client.Logical().Read(sm.path)
	if err != nil {
		return "", err
	}
	if secret == nil || secret.Data == nil {
		return "", fmt.Errorf("vault: no secret at %s", sm.path)
	}

	data, ok := secret.Data["data"].(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("vault: unexpected secret format at %s", sm.path)
	}
	value, ok := data[key].(string)
	if !ok {
		return "", fmt.Errorf("vault: key %s not found", key)
	}
	return value, nil
}

func (sm *SecretManager) GetJWTSecret() (string, error) {
	return sm.get("jwt_secret")
}

func (sm *SecretManager) GetStorageSigningKey() (string, error) {
	return sm.get("storage_signing_key")
}

func (sm *SecretManager) GetSMTPPassword() (string, error) {
	return sm.get("smtp_password")
}
