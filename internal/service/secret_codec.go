package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"guild-wager-platform/config"
	"guild-wager-platform/internal/core/domain"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/argon2"
)

const (
	gcmNonceSize = 12
	gcmTagSize   = 16
)

// ErrUnwrapDepthExceeded is returned by UnwrapAll when a value is nested
// deeper than the configured bound. The bound is a safety ceiling for
// historically multi-wrapped data, not a derived invariant.
var ErrUnwrapDepthExceeded = errors.New("secret wrapped deeper than unwrap bound")

// ErrKeyNotConfigured is returned when a tagged value cannot be decrypted
// because the matching key material is absent.
var ErrKeyNotConfigured = errors.New("encryption key not configured")

// SecretCodec implements ports.SecretCipher with AES-256-GCM and two
// independent key slots: at-rest (database) and transit (internal HTTP
// channel). Either key may be absent; the codec then degrades explicitly,
// logged once at construction.
type SecretCodec struct {
	atRest    cipher.AEAD // nil = degraded pass-through mode
	transit   cipher.AEAD // nil only when at-rest is also nil
	maxUnwrap int
	log       zerolog.Logger
}

// NewSecretCodec builds a codec from configured key material. Keys may be
// 64-char hex or a passphrase stretched with argon2id over cfg.KDFSalt.
func NewSecretCodec(cfg config.SecretsConfig, log zerolog.Logger) (*SecretCodec, error) {
	maxUnwrap := cfg.MaxUnwrapDepth
	if maxUnwrap <= 0 {
		maxUnwrap = 5
	}

	atRestKey, err := resolveKey(cfg.AtRestKey, cfg.KDFSalt)
	if err != nil {
		return nil, fmt.Errorf("resolving at-rest key: %w", err)
	}
	transitKey, err := resolveKey(cfg.TransitKey, cfg.KDFSalt)
	if err != nil {
		return nil, fmt.Errorf("resolving transit key: %w", err)
	}

	c := &SecretCodec{maxUnwrap: maxUnwrap, log: log}

	if atRestKey == nil {
		log.Warn().Msg("no at-rest encryption key configured, wallet secrets will be stored in plaintext")
	} else {
		if c.atRest, err = newGCM(atRestKey); err != nil {
			return nil, fmt.Errorf("at-rest cipher: %w", err)
		}
	}

	switch {
	case transitKey != nil:
		if c.transit, err = newGCM(transitKey); err != nil {
			return nil, fmt.Errorf("transit cipher: %w", err)
		}
	case c.atRest != nil:
		log.Warn().Msg("no transit encryption key configured, falling back to the at-rest key for the wire layer")
		c.transit = c.atRest
	default:
		log.Warn().Msg("no transit encryption key configured and no at-rest fallback, secrets cross the internal channel in plaintext")
	}

	return c, nil
}

// resolveKey turns configured key material into a 32-byte AES key.
// Empty material yields a nil key (degraded mode).
func resolveKey(material, salt string) ([]byte, error) {
	if material == "" {
		return nil, nil
	}
	if len(material) == 64 {
		if key, err := hex.DecodeString(material); err == nil {
			return key, nil
		}
	}
	// Passphrase: stretch with argon2id.
	if salt == "" {
		return nil, fmt.Errorf("passphrase key material requires secrets.kdf_salt")
	}
	return argon2.IDKey([]byte(material), []byte(salt), 3, 64*1024, 4, 32), nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != 32 {
		return nil, fmt.Errorf("AES key must be 32 bytes, got %d", len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}
	return cipher.NewGCMWithNonceSize(block, gcmNonceSize)
}

// EncryptAtRest wraps a value in the at-rest layer. Already at-rest-tagged
// input is returned unchanged (idempotent). Without a key the value passes
// through unchanged.
func (c *SecretCodec) EncryptAtRest(v domain.SecretValue) (domain.SecretValue, error) {
	if v.Kind == domain.SecretKindAtRest {
		return v, nil
	}
	if c.atRest == nil {
		return v, nil
	}
	payload, err := seal(c.atRest, v.Wire())
	if err != nil {
		return domain.SecretValue{}, fmt.Errorf("at-rest encrypt: %w", err)
	}
	return domain.SecretValue{Kind: domain.SecretKindAtRest, Payload: payload}, nil
}

// DecryptAtRest peels one at-rest layer. Untagged input is returned unchanged
// (legacy plaintext). Authentication failure or a missing key is an error —
// callers must treat it as "cannot recover secret", never as "empty secret".
func (c *SecretCodec) DecryptAtRest(v domain.SecretValue) (domain.SecretValue, error) {
	if v.Kind != domain.SecretKindAtRest {
		return v, nil
	}
	if c.atRest == nil {
		return domain.SecretValue{}, fmt.Errorf("at-rest decrypt: %w", ErrKeyNotConfigured)
	}
	plain, err := open(c.atRest, v.Payload)
	if err != nil {
		return domain.SecretValue{}, fmt.Errorf("at-rest decrypt: %w", err)
	}
	return domain.ParseSecretValue(plain), nil
}

// EncryptTransit wraps a value in the wire layer applied when a secret
// crosses the internal HTTP boundary. Already transit-tagged input is
// returned unchanged.
func (c *SecretCodec) EncryptTransit(v domain.SecretValue) (domain.SecretValue, error) {
	if v.Kind == domain.SecretKindTransit {
		return v, nil
	}
	if c.transit == nil {
		return v, nil
	}
	payload, err := seal(c.transit, v.Wire())
	if err != nil {
		return domain.SecretValue{}, fmt.Errorf("transit encrypt: %w", err)
	}
	return domain.SecretValue{Kind: domain.SecretKindTransit, Payload: payload}, nil
}

// DecryptTransit peels one transit layer. Untagged input passes through.
func (c *SecretCodec) DecryptTransit(v domain.SecretValue) (domain.SecretValue, error) {
	if v.Kind != domain.SecretKindTransit {
		return v, nil
	}
	if c.transit == nil {
		return domain.SecretValue{}, fmt.Errorf("transit decrypt: %w", ErrKeyNotConfigured)
	}
	plain, err := open(c.transit, v.Payload)
	if err != nil {
		return domain.SecretValue{}, fmt.Errorf("transit decrypt: %w", err)
	}
	return domain.ParseSecretValue(plain), nil
}

// UnwrapAll repeatedly peels transit and at-rest layers until plaintext is
// reached, bounded by the configured depth. Failures carry the layer index
// for diagnostics.
func (c *SecretCodec) UnwrapAll(v domain.SecretValue) (string, error) {
	cur := v
	for layer := 0; ; layer++ {
		if cur.Kind == domain.SecretKindPlain {
			return cur.Payload, nil
		}
		if layer >= c.maxUnwrap {
			return "", fmt.Errorf("unwrap layer %d: %w", layer, ErrUnwrapDepthExceeded)
		}

		var err error
		switch cur.Kind {
		case domain.SecretKindTransit:
			cur, err = c.DecryptTransit(cur)
		case domain.SecretKindAtRest:
			cur, err = c.DecryptAtRest(cur)
		}
		if err != nil {
			return "", fmt.Errorf("unwrap layer %d: %w", layer, err)
		}
	}
}

// seal encrypts plaintext and renders the "iv:authTag:ciphertext" base64
// triple used by the historical wire format.
func seal(aead cipher.AEAD, plaintext string) (string, error) {
	nonce := make([]byte, gcmNonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generating nonce: %w", err)
	}

	sealed := aead.Seal(nil, nonce, []byte(plaintext), nil)
	body, tag := sealed[:len(sealed)-gcmTagSize], sealed[len(sealed)-gcmTagSize:]

	b64 := base64.StdEncoding
	return b64.EncodeToString(nonce) + ":" + b64.EncodeToString(tag) + ":" + b64.EncodeToString(body), nil
}

// open decrypts an "iv:authTag:ciphertext" base64 triple.
func open(aead cipher.AEAD, payload string) (string, error) {
	parts := strings.Split(payload, ":")
	if len(parts) != 3 {
		return "", fmt.Errorf("malformed ciphertext: expected 3 components, got %d", len(parts))
	}

	b64 := base64.StdEncoding
	nonce, err := b64.DecodeString(parts[0])
	if err != nil {
		return "", fmt.Errorf("decoding nonce: %w", err)
	}
	tag, err := b64.DecodeString(parts[1])
	if err != nil {
		return "", fmt.Errorf("decoding auth tag: %w", err)
	}
	body, err := b64.DecodeString(parts[2])
	if err != nil {
		return "", fmt.Errorf("decoding ciphertext: %w", err)
	}
	if len(nonce) != gcmNonceSize {
		return "", fmt.Errorf("bad nonce length %d", len(nonce))
	}

	plain, err := aead.Open(nil, nonce, append(body, tag...), nil)
	if err != nil {
		return "", fmt.Errorf("decrypting: %w", err)
	}
	return string(plain), nil
}
