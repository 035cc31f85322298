package statemachine

import (
	"errors"

	"vehicle-rental-api/models"
)

// Actor identifies who is attempting a booking status change
type Actor string

const (
	ActorCustomer Actor = "customer"
	ActorAdmin    Actor = "admin"
	ActorSystem   Actor = "system"
)

// Transition defines a valid state change and who can perform it
type Transition struct {
	From  models.BookingStatus
	To    models.BookingStatus
	Actor Actor
}

// validTransitions is the authoritative lifecycle definition. Customers may
// cancel an active booking, admins mark it returned, and the expiry sweep
// returns it automatically. Cancelled and returned are terminal.
var validTransitions = []Transition{
	{From: models.BookingActive, To: models.BookingCancelled, Actor: ActorCustomer},
	{From: models.BookingActive, To: models.BookingReturned, Actor: ActorAdmin},
	{From: models.BookingActive, To: models.BookingReturned, Actor: ActorSystem},
}

type transitionKey struct {
	From  models.BookingStatus
	To    models.BookingStatus
	Actor Actor
}

var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To, t.Actor}] = true
	}
	return m
}()

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.BookingStatus) []models.BookingStatus {
	var nexts []models.BookingStatus
	seen := map[models.BookingStatus]bool{}
	for _, t := range validTransitions {
		if t.From == status && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

// CanTransition checks if a given actor can move from one state to another
func CanTransition(from, to models.BookingStatus, actor Actor) error {
	if transitionMap[transitionKey{From: from, To: to, Actor: actor}] {
		return nil
	}
	return errors.New(
		"invalid transition: " + string(from) + " to " + string(to) +
			" is not allowed for actor '" + string(actor) + "'. " +
			"Valid transitions from " + string(from) + " are: " + describeValidFrom(from),
	)
}

func describeValidFrom(status models.BookingStatus) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}

// GetAllTransitions returns the full state machine for documentation
func GetAllTransitions() []Transition {
	return validTransitions
}
