// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/watchface-sync/models"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestNodeCtxKey(t *testing.T) {
	if NodeCtxKey.String() != "node" {
		t.Errorf("expected 'node', got '%s'", NodeCtxKey.String())
	}
}

func TestGetNodeFromContext_Success(t *testing.T) {
	node := models.Node{ID: "watch-1", DisplayName: "Watch"}
	ctx := WithNode(context.Background(), node)

	got, ok := GetNodeFromContext(ctx)
	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if got != node {
		t.Errorf("expected %+v, got %+v", node, got)
	}
}

func TestGetNodeFromContext_Missing(t *testing.T) {
	got, ok := GetNodeFromContext(context.Background())
	if ok {
		t.Fatal("expected ok=false for empty context")
	}
	if got != (models.Node{}) {
		t.Errorf("expected zero node, got %+v", got)
	}
}

func TestGetNodeFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), NodeCtxKey, "watch-1")

	if _, ok := GetNodeFromContext(ctx); ok {
		t.Fatal("expected ok=false for wrong value type")
	}
}
