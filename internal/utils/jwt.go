// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/watchface-sync/models"
	"github.com/golang-jwt/jwt/v5"
)

// TokenIssuer is the "iss" claim of every node token.
const TokenIssuer = "watchface-sync"

// GenerateNodeToken creates a signed HMAC-SHA256 JWT identifying node.
//
// The token includes the following claims:
//   - Issuer    (iss): [TokenIssuer]
//   - Subject   (sub): the node ID
//   - name           : the node display name
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// Returns an error if the node ID, duration or key is empty.
func GenerateNodeToken(node models.Node, tokenDuration time.Duration, signKey []byte) (models.NodeToken, error) {
	if node.ID == "" || tokenDuration <= 0 || len(signKey) == 0 {
		return models.NodeToken{}, errors.New("invalid params for generating node token")
	}

	now := time.Now()
	claims := &models.NodeToken{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    TokenIssuer,
			Subject:   node.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Name: node.DisplayName,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(signKey)
	if err != nil {
		return models.NodeToken{}, fmt.Errorf("error occurred during signing node token: %w", err)
	}

	claims.Token = token
	claims.SignedString = signed
	return *claims, nil
}

// ValidateNodeToken verifies the signature, issuer and expiry of tokenString
// and returns the parsed claims.
func ValidateNodeToken(tokenString string, signKey []byte) (models.NodeToken, error) {
	claims := &models.NodeToken{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return signKey, nil
	}, jwt.WithIssuer(TokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.NodeToken{}, fmt.Errorf("error occurred validating and parsing node token: %w", err)
	}

	if _, err = claims.NodeID(); err != nil {
		return models.NodeToken{}, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}

	claims.Token = token
	claims.SignedString = tokenString
	return *claims, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <t>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
