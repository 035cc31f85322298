package statemachine

import (
	"testing"

	"vehicle-rental-api/models"
)

func TestCanTransitionAllowed(t *testing.T) {
	cases := []struct {
		from, to models.BookingStatus
		actor    Actor
	}{
		{models.BookingActive, models.BookingCancelled, ActorCustomer},
		{models.BookingActive, models.BookingReturned, ActorAdmin},
		{models.BookingActive, models.BookingReturned, ActorSystem},
	}
	for _, c := range cases {
		if err := CanTransition(c.from, c.to, c.actor); err != nil {
			t.Fatalf("expected %s -> %s by %s to be allowed: %v", c.from, c.to, c.actor, err)
		}
	}
}

func TestCanTransitionRejected(t *testing.T) {
	cases := []struct {
		from, to models.BookingStatus
		actor    Actor
	}{
		{models.BookingActive, models.BookingReturned, ActorCustomer},
		{models.BookingActive, models.BookingCancelled, ActorAdmin},
		{models.BookingCancelled, models.BookingActive, ActorAdmin},
		{models.BookingReturned, models.BookingCancelled, ActorCustomer},
		{models.BookingCancelled, models.BookingReturned, ActorSystem},
	}
	for _, c := range cases {
		if err := CanTransition(c.from, c.to, c.actor); err == nil {
			t.Fatalf("expected %s -> %s by %s to be rejected", c.from, c.to, c.actor)
		}
	}
}

func TestTerminalStatesHaveNoExits(t *testing.T) {
	if nexts := ValidTransitionsFrom(models.BookingCancelled); len(nexts) != 0 {
		t.Fatalf("expected cancelled to be terminal, got %v", nexts)
	}
	if nexts := ValidTransitionsFrom(models.BookingReturned); len(nexts) != 0 {
		t.Fatalf("expected returned to be terminal, got %v", nexts)
	}
	if nexts := ValidTransitionsFrom(models.BookingActive); len(nexts) != 2 {
		t.Fatalf("expected two exits from active, got %v", nexts)
	}
}
