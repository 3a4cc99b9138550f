package entities

import "testing"

func TestOrderStatusCanTransitionTo(t *testing.T) {
	cases := []struct {
		name    string
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{"pending to in_progress", OrderStatusPending, OrderStatusInProgress, true},
		{"pending to completed", OrderStatusPending, OrderStatusCompleted, true},
		{"pending to canceled", OrderStatusPending, OrderStatusCanceled, true},
		{"in_progress back to pending", OrderStatusInProgress, OrderStatusPending, true},
		{"in_progress to completed", OrderStatusInProgress, OrderStatusCompleted, true},
		{"completed is terminal", OrderStatusCompleted, OrderStatusPending, false},
		{"completed to canceled blocked", OrderStatusCompleted, OrderStatusCanceled, false},
		{"canceled is terminal", OrderStatusCanceled, OrderStatusInProgress, false},
		{"same status is a no-op", OrderStatusCompleted, OrderStatusCompleted, true},
		{"unknown target", OrderStatusPending, OrderStatus("shipped"), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.from.CanTransitionTo(tc.to); got != tc.allowed {
				t.Fatalf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.allowed, got)
			}
		})
	}
}

func TestOrderStatusValid(t *testing.T) {
	for _, s := range []OrderStatus{OrderStatusPending, OrderStatusInProgress, OrderStatusCompleted, OrderStatusCanceled} {
		if !s.Valid() {
			t.Fatalf("expected %s to be valid", s)
		}
	}
	if OrderStatus("PENDING").Valid() {
		t.Fatalf("status values are lowercase")
	}
}

func TestLinesTotal(t *testing.T) {
	lines := []OrderLine{
		{Price: 150.00, Quantity: 1},
		{Price: 250.00, Quantity: 2},
		{Price: 9.99, Quantity: 3},
	}
	want := 150.00*1 + 250.00*2 + 9.99*3
	if got := LinesTotal(lines); got != want {
		t.Fatalf("expected total %v, got %v", want, got)
	}

	if got := LinesTotal(nil); got != 0 {
		t.Fatalf("expected zero total for no lines, got %v", got)
	}
}
