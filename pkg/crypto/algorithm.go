package crypto

import "github.com/apsislabs/iron-vault/internal/constants"

// Algorithm describes the fixed sizes of the AEAD cipher the vault uses.
// IronVault supports exactly one algorithm, CHACHA20-POLY1305 (RFC 8439);
// the descriptor exists so pkg/keyops and pkg/blob size buffers from one
// place instead of hardcoding 32/12/16 inline.
type Algorithm struct {
	Name      string
	KeySize   int
	NonceSize int
	TagSize   int
}

// ChaCha20Poly1305 is the only Algorithm IronVault uses.
var ChaCha20Poly1305 = Algorithm{
	Name:      "chacha20poly1305",
	KeySize:   constants.AEADKeySize,
	NonceSize: constants.AEADNonceSize,
	TagSize:   constants.AEADTagSize,
}

// Overhead returns the envelope overhead (nonce prefix plus trailing tag)
// an EncryptedBlob adds around a plaintext payload.
func (a Algorithm) Overhead() int {
	return a.NonceSize + a.TagSize
}
