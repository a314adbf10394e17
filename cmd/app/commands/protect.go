package commands

import (
	"fmt"

	vaultService "github.com/allisson/fieldvault/internal/vault/service"
)

// RunProtect reads a JSON record from inputPath (or stdin when inputPath is
// "-" or empty), encrypts its protected fields, and writes the resulting
// record as JSON. The input record is left untouched; only the output carries
// envelopes.
func RunProtect(protector vaultService.Protector, ioTuple IOTuple, inputPath string) error {
	record, err := readRecord(ioTuple, inputPath)
	if err != nil {
		return err
	}

	protected, err := protector.Protect(record)
	if err != nil {
		return fmt.Errorf("failed to protect record: %w", err)
	}

	return writeRecord(ioTuple.Writer, protected)
}
