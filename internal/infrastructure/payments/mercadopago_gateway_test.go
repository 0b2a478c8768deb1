package payments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestNewMercadoPagoGateway_RequiresToken(t *testing.T) {
	_, err := NewMercadoPagoGateway("   ")
	if !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
		t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
	}
}

func TestCreatePayment_NotConfigured(t *testing.T) {
	var g *MercadoPagoGateway
	_, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{}`))
	if !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
		t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
	}
}

func TestCreatePayment_RejectsUndecodablePayload(t *testing.T) {
	g, err := NewMercadoPagoGateway("TEST-0000000000000000-000000-00000000000000000000000000000000-000000000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, _, _, err = g.CreatePayment(context.Background(), json.RawMessage(`{"transaction_amount":"not a number"}`))
	if err == nil {
		t.Fatalf("expected decode error")
	}
}
