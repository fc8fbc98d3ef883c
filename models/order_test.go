package models

import "testing"

func TestOrderStatusTransitions(t *testing.T) {
	allowed := []struct {
		from, to OrderStatus
	}{
		{OrderStatusProcessing, OrderStatusShipped},
		{OrderStatusProcessing, OrderStatusCancelled},
		{OrderStatusShipped, OrderStatusDelivered},
		{OrderStatusShipped, OrderStatusCancelled},
	}
	for _, tc := range allowed {
		if !tc.from.CanTransition(tc.to) {
			t.Errorf("expected %s -> %s to be allowed", tc.from, tc.to)
		}
	}

	forbidden := []struct {
		from, to OrderStatus
	}{
		{OrderStatusProcessing, OrderStatusDelivered},
		{OrderStatusShipped, OrderStatusProcessing},
		{OrderStatusDelivered, OrderStatusShipped},
		{OrderStatusDelivered, OrderStatusCancelled},
		{OrderStatusCancelled, OrderStatusProcessing},
		{OrderStatusCancelled, OrderStatusShipped},
		{OrderStatusProcessing, OrderStatusProcessing},
	}
	for _, tc := range forbidden {
		if tc.from.CanTransition(tc.to) {
			t.Errorf("expected %s -> %s to be rejected", tc.from, tc.to)
		}
	}
}

func TestTerminalStatesHaveNoExits(t *testing.T) {
	all := []OrderStatus{OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled}
	for _, terminal := range []OrderStatus{OrderStatusDelivered, OrderStatusCancelled} {
		for _, to := range all {
			if terminal.CanTransition(to) {
				t.Errorf("terminal state %s must not transition to %s", terminal, to)
			}
		}
	}
}
