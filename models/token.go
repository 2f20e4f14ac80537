// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// NodeToken wraps the JWT a node presents to the companion transport.
//
// The "sub" claim carries the node ID and the "name" claim its display name.
// Both sides of a pairing derive the signing key from the same pairing secret,
// so a wearable mints its own token and the phone only verifies it.
type NodeToken struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides the standard claim set (sub, exp, iat, iss).
	jwt.RegisteredClaims

	// Name is the display name of the node that minted the token.
	Name string `json:"name,omitempty"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`
}

// NodeID returns the node identifier stored in the "sub" claim.
func (t *NodeToken) NodeID() (string, error) {
	sub, err := t.GetSubject()
	if err != nil {
		return "", err
	}
	if sub == "" {
		return "", errors.New("empty subject in node token")
	}
	return sub, nil
}

// String returns the compact JWS serialization of the token.
func (t *NodeToken) String() string {
	return t.SignedString
}
