package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Algorithm
		wantErr error
	}{
		{name: "aes-gcm", input: "aes-gcm", want: AESGCM},
		{name: "chacha20-poly1305", input: "chacha20-poly1305", want: ChaCha20},
		{name: "unknown algorithm", input: "des-cbc", wantErr: ErrUnsupportedAlgorithm},
		{name: "empty string", input: "", wantErr: ErrUnsupportedAlgorithm},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alg, err := ParseAlgorithm(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, alg)
		})
	}
}
