// Package whatsapp builds wa.me deep links, the storefront's actual
// order-submission channel.
package whatsapp

import (
	"fmt"
	"net/url"
)

// OrderLink returns a wa.me URL opening a chat prefilled with an order
// inquiry for the named product.
func OrderLink(number, productName string) string {
	msg := fmt.Sprintf(
		"Hi, I'd like to order the %s. Can you send me details, pricing, and delivery information for my hotel in Agra?",
		productName,
	)
	return link(number, msg)
}

// SupportLink returns a wa.me URL for a general catalog inquiry.
func SupportLink(number string) string {
	return link(number,
		"Hi, I need help with ordering authentic Agra handicrafts with hotel delivery. Can you send me your current catalog and prices?")
}

func link(number, message string) string {
	return "https://wa.me/" + number + "?text=" + url.QueryEscape(message)
}
