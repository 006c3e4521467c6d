package runner

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestVerifyDetachedSignatureKeyringErrors(t *testing.T) {
	payload := []byte("payload")
	sig := []byte("not a signature")

	tests := []struct {
		name    string
		keyring func(t *testing.T) string
	}{
		{
			name: "missing_keyring",
			keyring: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "absent.gpg")
			},
		},
		{
			name: "empty_keyring",
			keyring: func(t *testing.T) string {
				path := filepath.Join(t.TempDir(), "empty.gpg")
				if err := os.WriteFile(path, nil, 0o644); err != nil {
					t.Fatalf("write keyring: %v", err)
				}
				return path
			},
		},
		{
			name: "garbage_keyring",
			keyring: func(t *testing.T) string {
				path := filepath.Join(t.TempDir(), "garbage.gpg")
				if err := os.WriteFile(path, []byte("definitely not pgp data"), 0o644); err != nil {
					t.Fatalf("write keyring: %v", err)
				}
				return path
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := VerifyDetachedSignature(payload, sig, tt.keyring(t))
			if err == nil {
				t.Fatal("expected verification to fail")
			}
			if !strings.Contains(err.Error(), "load keyring") {
				t.Errorf("error should identify the keyring problem, got: %v", err)
			}
		})
	}
}
