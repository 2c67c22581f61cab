package model

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderQueued     OrderStatus = "queued"
	OrderInProgress OrderStatus = "in_progress"
	OrderCompleted  OrderStatus = "completed"
)

// PrintStatus is the lifecycle state of a single print job. Some upstream
// data sources spell the middle state "printing"; ParsePrintStatus maps it
// to the canonical "in_progress".
type PrintStatus string

const (
	PrintQueued     PrintStatus = "queued"
	PrintInProgress PrintStatus = "in_progress"
	PrintCompleted  PrintStatus = "completed"
)

// Valid reports whether s is a known order status.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderQueued, OrderInProgress, OrderCompleted:
		return true
	}
	return false
}

// Valid reports whether s is a known print status.
func (s PrintStatus) Valid() bool {
	switch s {
	case PrintQueued, PrintInProgress, PrintCompleted:
		return true
	}
	return false
}

// ParsePrintStatus normalises a raw status string, accepting the legacy
// "printing" spelling for the in-progress state.
func ParsePrintStatus(raw string) (PrintStatus, bool) {
	if raw == "printing" {
		return PrintInProgress, true
	}
	s := PrintStatus(raw)
	if s.Valid() {
		return s, true
	}
	return "", false
}
