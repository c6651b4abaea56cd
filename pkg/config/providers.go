package config

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// ProvidersConfig holds credentials per AI provider name (openai, anthropic,
// google, azure, bedrock).
type ProvidersConfig map[string]map[string]interface{}

type ProviderCredentials struct {
	ApiKey       string `mapstructure:"api_key"`
	Endpoint     string `mapstructure:"endpoint"`
	ApiVersion   string `mapstructure:"api_version"`
	UseManagedID bool   `mapstructure:"use_managed_identity"`
	AwsAccessKey string `mapstructure:"aws_access_key"`
	AwsSecretKey string `mapstructure:"aws_secret_key"`
	AwsRegion    string `mapstructure:"aws_region"`
	AwsRoleARN   string `mapstructure:"aws_role_arn"`
}

func (p ProvidersConfig) Credentials(provider string) (ProviderCredentials, error) {
	var creds ProviderCredentials
	raw, ok := p[provider]
	if !ok {
		return creds, nil
	}
	if err := mapstructure.Decode(raw, &creds); err != nil {
		return creds, fmt.Errorf("invalid credentials for provider %s: %w", provider, err)
	}
	return creds, nil
}
