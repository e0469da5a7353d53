package mailer

import (
	"fmt"
	"strings"

	"github.com/meshahan/pakcuisine/internal/domain"
	"github.com/meshahan/pakcuisine/internal/interfaces"
)

// RenderOrderConfirmation builds the order confirmation email.
func RenderOrderConfirmation(order *domain.Order) interfaces.EmailMessage {
	var itemsHTML, itemsText strings.Builder
	for _, item := range order.Items {
		fmt.Fprintf(&itemsHTML, "<li>%s &times; %d &mdash; Rs. %.2f</li>", item.Name, item.Quantity, item.UnitPrice*float64(item.Quantity))
		fmt.Fprintf(&itemsText, "- %s x %d - Rs. %.2f\n", item.Name, item.Quantity, item.UnitPrice*float64(item.Quantity))
	}

	subject := fmt.Sprintf("Order %s Confirmation - Thank You for Your Order!", order.Number)

	html := fmt.Sprintf(`
        <html>
        <body>
            <p>Dear %s,</p>
            <p>Thank you for your order! Order <strong>%s</strong> has been placed.</p>
            <ul>%s</ul>
            <p><strong>Total: Rs. %.2f</strong></p>
            <p>We will notify you when your food is on its way.</p>
            <p>PakCuisine</p>
        </body>
        </html>`,
		order.CustomerName, order.Number, itemsHTML.String(), order.TotalAmount)

	text := fmt.Sprintf(
		"Dear %s,\n\nThank you for your order! Order %s has been placed.\n\n%s\nTotal: Rs. %.2f\n\nWe will notify you when your food is on its way.\n\nPakCuisine",
		order.CustomerName, order.Number, itemsText.String(), order.TotalAmount)

	return interfaces.EmailMessage{
		To:       order.Email,
		Subject:  subject,
		HTMLBody: html,
		TextBody: text,
	}
}

// RenderReservationReceived builds the reservation acknowledgement email.
func RenderReservationReceived(r *domain.Reservation) interfaces.EmailMessage {
	subject := "Reservation Request Received - PakCuisine"

	html := fmt.Sprintf(`
        <html>
        <body>
            <p>Dear %s,</p>
            <p>We received your reservation request for %d guests on %s at %s.</p>
            <p>We will confirm it shortly.</p>
            <p>PakCuisine</p>
        </body>
        </html>`,
		r.Name, r.PartySize, r.Date.Format("2 January 2006"), r.TimeSlot)

	text := fmt.Sprintf(
		"Dear %s,\n\nWe received your reservation request for %d guests on %s at %s.\nWe will confirm it shortly.\n\nPakCuisine",
		r.Name, r.PartySize, r.Date.Format("2 January 2006"), r.TimeSlot)

	return interfaces.EmailMessage{
		To:       r.Email,
		Subject:  subject,
		HTMLBody: html,
		TextBody: text,
	}
}
