package commands

import (
	"fmt"

	vaultService "github.com/allisson/fieldvault/internal/vault/service"
)

// RunReveal reads a JSON record from inputPath (or stdin when inputPath is
// "-" or empty), decrypts its protected fields, and writes the resulting
// record as JSON. Fails without output if any protected field is malformed
// or fails integrity verification.
func RunReveal(protector vaultService.Protector, ioTuple IOTuple, inputPath string) error {
	record, err := readRecord(ioTuple, inputPath)
	if err != nil {
		return err
	}

	revealed, err := protector.Reveal(record)
	if err != nil {
		return fmt.Errorf("failed to reveal record: %w", err)
	}

	return writeRecord(ioTuple.Writer, revealed)
}
