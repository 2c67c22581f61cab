// Package whatsapp composes order status notifications and the wa.me deep
// links used to share them. Composition only; nothing here talks to the
// WhatsApp network.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"printshop/internal/model"
	"printshop/internal/workflow"
)

const shareBaseURL = "https://wa.me/"

// StatusLabel renders a status tag for display: underscores become spaces
// and words are capitalized, so "in_progress" reads "In Progress".
func StatusLabel(status string) string {
	words := strings.Split(strings.ReplaceAll(status, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// ComposeStatusMessage builds the outbound status-update text for an order:
// greeting, order number, current status, progress counts, one line per
// print, and a closing remark keyed by the order status.
func ComposeStatusMessage(order model.Order, customer model.Customer, prints []model.Print) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Hi %s!\n\n", customer.Name)
	fmt.Fprintf(&b, "Update on your order %s:\n", order.Number)
	fmt.Fprintf(&b, "Status: %s\n", StatusLabel(string(order.Status)))
	fmt.Fprintf(&b, "Progress: %d/%d prints completed\n",
		workflow.CompletedCount(prints), len(prints))

	if len(prints) > 0 {
		b.WriteString("\n")
		for _, p := range prints {
			fmt.Fprintf(&b, "- %s: %s\n", p.Name, StatusLabel(string(p.Status)))
		}
	}

	b.WriteString("\n")
	b.WriteString(closingRemark(order.Status))

	return b.String()
}

func closingRemark(status model.OrderStatus) string {
	switch status {
	case model.OrderCompleted:
		return "Your order is complete and ready for pickup. Thank you!"
	case model.OrderInProgress:
		return "We are printing your order right now and will keep you posted."
	default:
		return "Your order is in the queue and will start printing soon."
	}
}

// BuildShareLink produces a wa.me deep link that opens a chat with the
// customer's handle and the message pre-filled. Non-digit characters are
// stripped from the phone number; the message is URL-encoded.
func BuildShareLink(message, phone string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	return shareBaseURL + digits.String() + "?text=" + url.QueryEscape(message)
}
