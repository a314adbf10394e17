package commands

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	vaultDomain "github.com/allisson/fieldvault/internal/vault/domain"
)

// RunKeygen generates a cryptographically secure 32-byte master key and
// prints it in the format expected by the key environment variable:
//
//	VAULT_ENCRYPTION_KEY="<base64>"
//
// Key material is zeroed from memory after encoding. The envName parameter
// controls the variable name in the output so it matches a non-default
// VAULT_KEY_ENV_NAME configuration.
func RunKeygen(w io.Writer, envName string) error {
	key := make([]byte, vaultDomain.KeySize)
	if _, err := rand.Read(key); err != nil {
		return fmt.Errorf("failed to generate key: %w", err)
	}

	encoded := base64.StdEncoding.EncodeToString(key)
	vaultDomain.Zero(key)

	fmt.Fprintln(w, "# Master key configuration")
	fmt.Fprintln(w, "# Copy this environment variable to your .env file or secrets manager")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s=\"%s\"\n", envName, encoded)

	return nil
}
