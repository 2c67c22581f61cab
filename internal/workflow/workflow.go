// Package workflow owns the order and print status machines and the
// progress figures derived from them. Statuses move strictly forward,
// queued -> in_progress -> completed; completed is terminal. Order status is
// stored independently of print statuses, so both the validated transitions
// and the strict derivation from prints are provided.
package workflow

import (
	"math"

	"printshop/internal/model"
)

// AllowedNextOrder returns the order statuses reachable from current.
func AllowedNextOrder(current model.OrderStatus) []model.OrderStatus {
	switch current {
	case model.OrderQueued:
		return []model.OrderStatus{model.OrderInProgress}
	case model.OrderInProgress:
		return []model.OrderStatus{model.OrderCompleted}
	default:
		return nil
	}
}

// AllowedNextPrint returns the print statuses reachable from current.
func AllowedNextPrint(current model.PrintStatus) []model.PrintStatus {
	switch current {
	case model.PrintQueued:
		return []model.PrintStatus{model.PrintInProgress}
	case model.PrintInProgress:
		return []model.PrintStatus{model.PrintCompleted}
	default:
		return nil
	}
}

// CanTransitionOrder reports whether current -> next is a legal order
// transition.
func CanTransitionOrder(current, next model.OrderStatus) bool {
	for _, s := range AllowedNextOrder(current) {
		if s == next {
			return true
		}
	}
	return false
}

// CanTransitionPrint reports whether current -> next is a legal print
// transition.
func CanTransitionPrint(current, next model.PrintStatus) bool {
	for _, s := range AllowedNextPrint(current) {
		if s == next {
			return true
		}
	}
	return false
}

// NextOrderStatus returns the status the manual advance action moves to.
// ok is false at completed; the caller triggers the notification flow
// instead of a further transition.
func NextOrderStatus(current model.OrderStatus) (model.OrderStatus, bool) {
	switch current {
	case model.OrderQueued:
		return model.OrderInProgress, true
	case model.OrderInProgress:
		return model.OrderCompleted, true
	default:
		return current, false
	}
}

// ProgressPercent returns the rounded percentage of completed prints. An
// order with no prints reports zero.
func ProgressPercent(prints []model.Print) int {
	if len(prints) == 0 {
		return 0
	}

	completed := 0
	for _, p := range prints {
		if p.Status == model.PrintCompleted {
			completed++
		}
	}

	return int(math.Round(float64(completed) / float64(len(prints)) * 100))
}

// CompletedCount returns how many prints are completed.
func CompletedCount(prints []model.Print) int {
	n := 0
	for _, p := range prints {
		if p.Status == model.PrintCompleted {
			n++
		}
	}
	return n
}

// RemainingHours sums the estimated hours of prints that are not yet
// completed.
func RemainingHours(prints []model.Print) float64 {
	var hours float64
	for _, p := range prints {
		if p.Status != model.PrintCompleted {
			hours += p.EstimatedHours
		}
	}
	return hours
}

// TotalHours sums the estimated hours of all prints; used to refresh the
// order's cached total whenever print composition changes.
func TotalHours(prints []model.Print) float64 {
	var hours float64
	for _, p := range prints {
		hours += p.EstimatedHours
	}
	return hours
}

// DeriveOrderStatus computes the order status that strictly follows from
// the prints: completed when all prints are done, queued when none have
// started, in_progress otherwise. Offered for callers that want the derived
// view; the stored order status remains independently settable.
func DeriveOrderStatus(prints []model.Print) model.OrderStatus {
	if len(prints) == 0 {
		return model.OrderQueued
	}

	completed, queued := 0, 0
	for _, p := range prints {
		switch p.Status {
		case model.PrintCompleted:
			completed++
		case model.PrintQueued:
			queued++
		}
	}

	switch {
	case completed == len(prints):
		return model.OrderCompleted
	case queued == len(prints):
		return model.OrderQueued
	default:
		return model.OrderInProgress
	}
}
