// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// ErrEmptyPairingSecret is returned when keys are derived from an empty
// pairing secret.
var ErrEmptyPairingSecret = errors.New("empty pairing secret")

const pairingKeySize = 32

// PairingKeys are the symmetric keys shared by a paired phone and wearable.
type PairingKeys struct {
	// HMACKey signs message bodies (HashSHA256 header).
	HMACKey []byte

	// TokenKey signs node JWTs presented to the companion.
	TokenKey []byte
}

// DerivePairingKeys expands the pairing secret with HKDF-SHA256 into two
// independent keys, one per purpose.
func DerivePairingKeys(secret string) (PairingKeys, error) {
	if secret == "" {
		return PairingKeys{}, ErrEmptyPairingSecret
	}

	hmacKey, err := expand(secret, "watchface-sync hmac")
	if err != nil {
		return PairingKeys{}, err
	}
	tokenKey, err := expand(secret, "watchface-sync token")
	if err != nil {
		return PairingKeys{}, err
	}

	return PairingKeys{HMACKey: hmacKey, TokenKey: tokenKey}, nil
}

func expand(secret, info string) ([]byte, error) {
	key := make([]byte, pairingKeySize)
	r := hkdf.New(sha256.New, []byte(secret), nil, []byte(info))
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, fmt.Errorf("derive %q key: %w", info, err)
	}
	return key, nil
}
