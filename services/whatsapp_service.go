package services

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/Montclaire-Parfums/montclaire-storefront-backend/models"
)

// BuildOrderMessage renders the pre-filled WhatsApp text for a finalized
// order: reference, contact details, itemized lines, and the total. The maison
// confirms and arranges payment in the chat; nothing here is a payment
// integration.
func BuildOrderMessage(order models.Order) string {
	var b strings.Builder
	b.WriteString("Hello MONTCL△IRÉ, I would like to confirm my order.\n\n")
	fmt.Fprintf(&b, "Order Reference: %s\n", order.TrackingNumber)
	fmt.Fprintf(&b, "Name: %s\n", order.CustomerName)
	fmt.Fprintf(&b, "Delivery Address: %s\n\n", order.Address)
	b.WriteString("Items:\n")
	for _, item := range order.Items {
		fmt.Fprintf(&b, "- %s x%d — $%.2f\n", item.Name, item.Quantity, item.Price*float64(item.Quantity))
	}
	fmt.Fprintf(&b, "\nTotal: $%.2f", order.Total)
	return b.String()
}

// HandoffURL builds the wa.me deep link for the configured WhatsApp contact.
// The setting may be a full wa.me URL or a bare phone number; either way only
// the digits matter.
func HandoffURL(whatsappSetting, message string) string {
	number := digitsOnly(whatsappSetting)
	if number == "" {
		return ""
	}
	return "https://wa.me/" + number + "?text=" + url.QueryEscape(message)
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
