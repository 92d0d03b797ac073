package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestTransaction_Disputed(t *testing.T) {
	tests := []struct {
		name      string
		state     TxState
		expectErr error
	}{
		{"from committed", StateCommitted, nil},
		{"from disputed", StateDisputed, ErrCannotBeDisputed},
		{"from resolved", StateResolved, ErrCannotBeDisputed},
		{"from charged back", StateChargedBack, ErrCannotBeDisputed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := NewTransaction(1, decimal.NewFromInt(100), 1)
			tx.State = tt.state

			next, err := tx.Disputed()

			if !errors.Is(err, tt.expectErr) {
				t.Fatalf("expected error %v, got %v", tt.expectErr, err)
			}
			if tt.expectErr == nil && next.State != StateDisputed {
				t.Errorf("expected state disputed, got %s", next.State)
			}
			if tx.State != tt.state {
				t.Errorf("original transaction mutated: got state %s", tx.State)
			}
		})
	}
}

func TestTransaction_Resolved(t *testing.T) {
	tests := []struct {
		name      string
		state     TxState
		expectErr error
	}{
		{"from disputed", StateDisputed, nil},
		{"from committed", StateCommitted, ErrNotUnderDispute},
		{"from resolved", StateResolved, ErrNotUnderDispute},
		{"from charged back", StateChargedBack, ErrNotUnderDispute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := NewTransaction(1, decimal.NewFromInt(100), 1)
			tx.State = tt.state

			next, err := tx.Resolved()

			if !errors.Is(err, tt.expectErr) {
				t.Fatalf("expected error %v, got %v", tt.expectErr, err)
			}
			if tt.expectErr == nil && next.State != StateResolved {
				t.Errorf("expected state resolved, got %s", next.State)
			}
		})
	}
}

func TestTransaction_ChargedBack(t *testing.T) {
	tests := []struct {
		name      string
		state     TxState
		expectErr error
	}{
		{"from disputed", StateDisputed, nil},
		{"from committed", StateCommitted, ErrNotUnderDispute},
		{"from resolved", StateResolved, ErrNotUnderDispute},
		{"from charged back", StateChargedBack, ErrNotUnderDispute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := NewTransaction(1, decimal.NewFromInt(100), 1)
			tx.State = tt.state

			next, err := tx.ChargedBack()

			if !errors.Is(err, tt.expectErr) {
				t.Fatalf("expected error %v, got %v", tt.expectErr, err)
			}
			if tt.expectErr == nil && next.State != StateChargedBack {
				t.Errorf("expected state charged_back, got %s", next.State)
			}
		})
	}
}

func TestTransaction_TransitionPreservesAmountAndClient(t *testing.T) {
	tx := NewTransaction(7, decimal.NewFromFloat(12.34), 3)

	disputed, err := tx.Disputed()
	if err != nil {
		t.Fatalf("dispute failed: %v", err)
	}

	if disputed.ID != tx.ID || disputed.Client != tx.Client || !disputed.Amount.Equal(tx.Amount) {
		t.Errorf("transition changed identity: before=%+v after=%+v", tx, disputed)
	}
}
