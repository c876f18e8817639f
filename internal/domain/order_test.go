package domain

import "testing"

func TestCanTransitionForwardPath(t *testing.T) {
	path := []OrderStatus{
		StatusPendente, StatusAceito, StatusPreparando,
		StatusPronto, StatusEmEntrega, StatusEntregue,
	}
	for i := 0; i < len(path)-1; i++ {
		if !CanTransition(path[i], path[i+1]) {
			t.Errorf("%s -> %s should be allowed", path[i], path[i+1])
		}
	}
	// Every non-terminal status may be cancelled.
	for _, s := range path[:len(path)-1] {
		if !CanTransition(s, StatusCancelado) {
			t.Errorf("%s -> cancelado should be allowed", s)
		}
	}
}

func TestCanTransitionRejectsSkipsAndBackwardMoves(t *testing.T) {
	tests := []struct{ from, to OrderStatus }{
		{StatusPendente, StatusPreparando}, // skip
		{StatusPendente, StatusEntregue},   // skip to terminal
		{StatusAceito, StatusPendente},     // backward
		{StatusEntregue, StatusCancelado},  // out of terminal
		{StatusCancelado, StatusPendente},  // out of terminal
		{StatusEntregue, StatusEntregue},   // self-loop
		{StatusPendente, "invalid"},        // unknown target
		{"invalid", StatusAceito},          // unknown source
	}
	for _, tt := range tests {
		if CanTransition(tt.from, tt.to) {
			t.Errorf("%s -> %s should be rejected", tt.from, tt.to)
		}
	}
}

func TestIsTerminalStatus(t *testing.T) {
	for _, s := range []OrderStatus{StatusEntregue, StatusCancelado} {
		if !IsTerminalStatus(s) {
			t.Errorf("%s should be terminal", s)
		}
	}
	for _, s := range []OrderStatus{StatusPendente, StatusAceito, StatusPreparando, StatusPronto, StatusEmEntrega} {
		if IsTerminalStatus(s) {
			t.Errorf("%s should not be terminal", s)
		}
	}
	if IsTerminalStatus("invalid") {
		t.Error("unknown status is not terminal")
	}
}

func TestAuthorizeStatusWrite(t *testing.T) {
	order := &Order{ID: "o1", StoreID: "store-a"}

	tests := []struct {
		name    string
		actor   Actor
		wantErr error
	}{
		{"owning store", Actor{ID: "u1", Role: RoleLoja, StoreID: "store-a"}, nil},
		{"other store", Actor{ID: "u2", Role: RoleLoja, StoreID: "store-b"}, ErrForbidden},
		{"admin", Actor{ID: "u3", Role: RoleAdmin}, nil},
		{"customer", Actor{ID: "u4", Role: RoleCliente}, ErrForbidden},
		{"unknown role", Actor{ID: "u5", Role: "courier"}, ErrForbidden},
	}
	for _, tt := range tests {
		if err := AuthorizeStatusWrite(tt.actor, order); err != tt.wantErr {
			t.Errorf("%s: got %v, want %v", tt.name, err, tt.wantErr)
		}
	}
}
