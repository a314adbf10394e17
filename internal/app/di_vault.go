package app

import (
	"fmt"
	"strings"

	vaultDomain "github.com/allisson/fieldvault/internal/vault/domain"
	vaultService "github.com/allisson/fieldvault/internal/vault/service"
)

// MasterKey returns the validated master key loaded from the configured
// environment variable. The raw value never travels through the config struct.
func (c *Container) MasterKey() (*vaultDomain.MasterKey, error) {
	c.masterKeyInit.Do(func() {
		masterKey, err := vaultDomain.LoadMasterKeyFromEnv(c.config.VaultKeyEnvName)
		if err != nil {
			c.initErrors["masterKey"] = fmt.Errorf("failed to load master key from %s: %w", c.config.VaultKeyEnvName, err)
			return
		}
		c.masterKey = masterKey
	})
	if storedErr, exists := c.initErrors["masterKey"]; exists {
		return nil, storedErr
	}
	return c.masterKey, nil
}

// FieldProtector returns the field protector built from the master key, the
// configured algorithm, and the protected-field allow-list.
func (c *Container) FieldProtector() (vaultService.Protector, error) {
	c.protectorInit.Do(func() {
		protector, err := c.initFieldProtector()
		if err != nil {
			c.initErrors["protector"] = err
			return
		}
		c.protector = protector
	})
	if storedErr, exists := c.initErrors["protector"]; exists {
		return nil, storedErr
	}
	return c.protector, nil
}

// initFieldProtector creates the field protector with all its dependencies.
func (c *Container) initFieldProtector() (vaultService.Protector, error) {
	masterKey, err := c.MasterKey()
	if err != nil {
		return nil, err
	}

	alg, err := vaultDomain.ParseAlgorithm(c.config.VaultAlgorithm)
	if err != nil {
		return nil, fmt.Errorf("failed to parse vault algorithm %q: %w", c.config.VaultAlgorithm, err)
	}

	protector, err := vaultService.NewFieldProtector(
		masterKey,
		alg,
		parseProtectedFields(c.config.VaultProtectedFields),
		vaultService.NewAEADManager(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create field protector: %w", err)
	}
	return protector, nil
}

// parseProtectedFields splits the comma-separated allow-list, trimming
// whitespace and dropping empty entries.
func parseProtectedFields(raw string) []string {
	parts := strings.Split(raw, ",")
	fields := make([]string, 0, len(parts))
	for _, part := range parts {
		if field := strings.TrimSpace(part); field != "" {
			fields = append(fields, field)
		}
	}
	return fields
}
