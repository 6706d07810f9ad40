package vault

import "encoding/json"

// Configuration is the vault's plaintext, create-once metadata: the salt
// fed into PBKDF2 alongside the passphrase. Persisted as JSON in the
// config file and never modified after vault creation.
type Configuration struct {
	Salt []byte
}

// configurationWire is the on-disk shape: salt as a JSON array of byte
// values ({"salt":[1,2,3,...]}), not Go's default base64-string encoding of
// []byte. This matches the literal array form any other implementation
// reading this config file (e.g. a default serde_json encoding of a
// Vec<u8>) will produce.
type configurationWire struct {
	Salt []int `json:"salt"`
}

// MarshalJSON encodes Salt as a JSON array of integers.
func (c Configuration) MarshalJSON() ([]byte, error) {
	salt := make([]int, len(c.Salt))
	for i, b := range c.Salt {
		salt[i] = int(b)
	}
	return json.Marshal(configurationWire{Salt: salt})
}

// UnmarshalJSON decodes a JSON array of integers into Salt.
func (c *Configuration) UnmarshalJSON(data []byte) error {
	var wire configurationWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	salt := make([]byte, len(wire.Salt))
	for i, v := range wire.Salt {
		salt[i] = byte(v)
	}
	c.Salt = salt
	return nil
}
