package gitsync

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/ProtonMail/go-crypto/openpgp"
	"github.com/go-git/go-git/v5"
	"golang.org/x/term"
)

// agentSigner signs through the gpg binary so a running gpg-agent supplies
// the credentials.
type agentSigner struct {
	program string
	keyID   string
}

func (s *agentSigner) Sign(message io.Reader) ([]byte, error) {
	payload, err := io.ReadAll(message)
	if err != nil {
		return nil, fmt.Errorf("failed to read payload: %w", err)
	}

	cmd := exec.Command(s.program, "--detach-sign", "--armor", "--local-user", s.keyID)
	cmd.Stdin = strings.NewReader(string(payload))

	signature, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("gpg signing failed: %w", err)
	}
	return signature, nil
}

// attachSigner wires commit signing into the options. A reachable gpg-agent
// is preferred, direct keyring access with a passphrase prompt is the
// fallback.
func (r *repository) attachSigner(options *git.CommitOptions, identity *gitIdentity) error {
	if identity.SigningKey == "" {
		return fmt.Errorf("commit.gpgsign is true but user.signingkey is not configured")
	}

	if gpgAgentReachable(identity.GPGProgram, identity.SigningKey) {
		options.Signer = &agentSigner{
			program: identity.GPGProgram,
			keyID:   identity.SigningKey,
		}
		return nil
	}

	entity, err := loadSigningKey(identity.GPGProgram, identity.SigningKey)
	if err != nil {
		return fmt.Errorf("failed to load signing key %s: %w", identity.SigningKey, err)
	}
	options.SignKey = entity
	return nil
}

// gpgAgentReachable reports whether the gpg binary can already serve the
// key without this process handling the passphrase.
func gpgAgentReachable(program, keyID string) bool {
	if os.Getenv("GPG_AGENT_INFO") != "" {
		return true
	}
	return exec.Command(program, "--batch", "--list-secret-keys", keyID).Run() == nil
}

// loadSigningKey reads the keyring directly and decrypts the matching key.
func loadSigningKey(program, keyID string) (*openpgp.Entity, error) {
	keyring, err := readKeyring(program)
	if err != nil {
		return nil, err
	}
	for _, entity := range keyring {
		if !entityMatchesKey(entity, keyID) {
			continue
		}
		if entity.PrivateKey != nil && entity.PrivateKey.Encrypted {
			if err := decryptEntity(entity, keyID); err != nil {
				return nil, err
			}
		}
		return entity, nil
	}
	return nil, fmt.Errorf("signing key %s not found in keyring", keyID)
}

func readKeyring(program string) (openpgp.EntityList, error) {
	gpgHome := os.Getenv("GNUPGHOME")
	if gpgHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve home directory: %w", err)
		}
		gpgHome = filepath.Join(home, ".gnupg")
	}

	// gpg 1.x kept an armored keyring on disk
	legacyPath := filepath.Join(gpgHome, "secring.gpg")
	if file, err := os.Open(legacyPath); err == nil {
		defer file.Close()
		return openpgp.ReadArmoredKeyRing(file)
	}

	// gpg 2.x stores keys in a private format, export them instead
	exported, err := exec.Command(program, "--export-secret-keys", "--armor").Output()
	if err != nil {
		return nil, fmt.Errorf("failed to export secret keys: %w", err)
	}
	return openpgp.ReadArmoredKeyRing(strings.NewReader(string(exported)))
}

// entityMatchesKey accepts key ID suffixes of any length as well as a match
// against an identity email.
func entityMatchesKey(entity *openpgp.Entity, keyID string) bool {
	upper := strings.ToUpper(keyID)
	if strings.HasSuffix(fmt.Sprintf("%016X", entity.PrimaryKey.KeyId), upper) {
		return true
	}
	for _, subkey := range entity.Subkeys {
		if strings.HasSuffix(fmt.Sprintf("%016X", subkey.PublicKey.KeyId), upper) {
			return true
		}
	}
	for _, ident := range entity.Identities {
		if strings.Contains(ident.UserId.Email, keyID) {
			return true
		}
	}
	return false
}

func decryptEntity(entity *openpgp.Entity, keyID string) error {
	fmt.Printf("Enter passphrase for GPG key %s: ", keyID)
	passphrase, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("failed to read passphrase: %w", err)
	}

	if err := entity.PrivateKey.Decrypt(passphrase); err != nil {
		return fmt.Errorf("incorrect passphrase: %w", err)
	}
	for _, subkey := range entity.Subkeys {
		if subkey.PrivateKey != nil && subkey.PrivateKey.Encrypted {
			if err := subkey.PrivateKey.Decrypt(passphrase); err != nil {
				return fmt.Errorf("failed to decrypt subkey: %w", err)
			}
		}
	}
	return nil
}
