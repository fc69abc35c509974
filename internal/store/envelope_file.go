package store

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// envelopeVersion is the only on-disk envelope file version pm currently
// writes or accepts.
const envelopeVersion = 1

// envelopeFile is the JSON wire format of one .enc file: version plus the
// base64 nonce and ciphertext produced by internal/crypto.Seal.
type envelopeFile struct {
	Version    int    `json:"version"`
	Nonce      string `json:"nonce"`
	Ciphertext string `json:"ciphertext"`
}

func encodeEnvelope(nonce, ciphertext []byte) ([]byte, error) {
	ef := envelopeFile{
		Version:    envelopeVersion,
		Nonce:      base64.StdEncoding.EncodeToString(nonce),
		Ciphertext: base64.StdEncoding.EncodeToString(ciphertext),
	}
	return json.MarshalIndent(ef, "", "  ")
}

func decodeEnvelope(data []byte) (nonce, ciphertext []byte, err error) {
	var ef envelopeFile
	if err := json.Unmarshal(data, &ef); err != nil {
		return nil, nil, fmt.Errorf("decode envelope: %w", err)
	}
	if ef.Version != envelopeVersion {
		return nil, nil, fmt.Errorf("decode envelope: unsupported version %d", ef.Version)
	}
	nonce, err = base64.StdEncoding.DecodeString(ef.Nonce)
	if err != nil {
		return nil, nil, fmt.Errorf("decode envelope: malformed nonce: %w", err)
	}
	ciphertext, err = base64.StdEncoding.DecodeString(ef.Ciphertext)
	if err != nil {
		return nil, nil, fmt.Errorf("decode envelope: malformed ciphertext: %w", err)
	}
	return nonce, ciphertext, nil
}
