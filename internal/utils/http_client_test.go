package utils

import (
	"testing"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient()
	if client == nil || client.Client == nil {
		t.Fatal("expected non-nil HTTPClient with embedded resty client")
	}
}

func TestNewHTTPClient_IndependentInstances(t *testing.T) {
	a := NewHTTPClient()
	b := NewHTTPClient()
	if a.Client == b.Client {
		t.Fatal("expected independent resty clients")
	}
}

func TestUUIDGenerator_Generate(t *testing.T) {
	gen := NewUUIDGenerator()
	first := gen.Generate()
	second := gen.Generate()

	if first == "" || second == "" {
		t.Fatal("expected non-empty identifiers")
	}
	if first == second {
		t.Fatal("expected unique identifiers")
	}
}
