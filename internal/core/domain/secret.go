package domain

import "strings"

// SecretKind identifies the encryption layer a wallet secret value carries.
type SecretKind string

const (
	SecretKindPlain   SecretKind = "plain"
	SecretKindAtRest  SecretKind = "at_rest"
	SecretKindTransit SecretKind = "transit"
)

// Wire prefixes. Historical data uses these exact tags, so they must not change.
const (
	atRestPrefix  = "enc:"
	transitPrefix = "e2e:"
)

// SecretValue is a tagged wallet secret. Payload holds the plaintext for
// SecretKindPlain, or the "iv:authTag:ciphertext" base64 triple for the
// encrypted kinds. Values may be nested: a transit layer always wraps either
// an at-rest layer or a plaintext.
type SecretValue struct {
	Kind    SecretKind
	Payload string
}

// NewPlainSecret wraps a plaintext secret.
func NewPlainSecret(s string) SecretValue {
	return SecretValue{Kind: SecretKindPlain, Payload: s}
}

// ParseSecretValue classifies a wire-format secret string. Untagged strings
// are legacy plaintext.
func ParseSecretValue(wire string) SecretValue {
	switch {
	case strings.HasPrefix(wire, transitPrefix):
		return SecretValue{Kind: SecretKindTransit, Payload: strings.TrimPrefix(wire, transitPrefix)}
	case strings.HasPrefix(wire, atRestPrefix):
		return SecretValue{Kind: SecretKindAtRest, Payload: strings.TrimPrefix(wire, atRestPrefix)}
	default:
		return SecretValue{Kind: SecretKindPlain, Payload: wire}
	}
}

// Wire renders the value in its storage/transmission format.
func (v SecretValue) Wire() string {
	switch v.Kind {
	case SecretKindTransit:
		return transitPrefix + v.Payload
	case SecretKindAtRest:
		return atRestPrefix + v.Payload
	default:
		return v.Payload
	}
}

// IsPlain reports whether the value carries no encryption layer.
func (v SecretValue) IsPlain() bool {
	return v.Kind == SecretKindPlain
}

// IsZero reports whether the value is empty (no secret at all).
func (v SecretValue) IsZero() bool {
	return v.Payload == ""
}
