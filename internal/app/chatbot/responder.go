package chatbot

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/meshahan/pakcuisine/internal/adapter/logger"
	"github.com/meshahan/pakcuisine/internal/interfaces"
)

// Keyword sets checked in fixed priority order. Food keywords cover the
// dishes the kitchen is known for even when the admin renames menu rows.
var (
	greetingWords = []string{"hello", "hi", "hey", "salam", "assalam", "good morning", "good evening"}

	foodKeywords = []string{
		"biryani", "karahi", "nihari", "tikka", "kebab", "seekh", "haleem",
		"korma", "naan", "paratha", "lassi", "chai", "deal", "discount", "offer",
	}

	defaultSuggestions = []string{"View our menu", "Today's deals", "Book a table"}
)

// Service maps a free-text message to a canned reply, enriched with live
// deals, menu and order data. No conversation state is kept between turns.
type Service struct {
	deals  interfaces.DealRepository
	menu   interfaces.MenuRepository
	orders interfaces.OrderRepository
	logger logger.Logger
}

func NewService(deals interfaces.DealRepository, menu interfaces.MenuRepository, orders interfaces.OrderRepository, logger logger.Logger) *Service {
	return &Service{deals: deals, menu: menu, orders: orders, logger: logger}
}

func (s *Service) Respond(ctx context.Context, message string) (*interfaces.ChatReply, error) {
	text := strings.ToLower(strings.TrimSpace(message))

	if containsAny(text, greetingWords) {
		return &interfaces.ChatReply{
			Text:        "Assalam-o-Alaikum! Welcome to PakCuisine. How can I help you today?",
			Suggestions: defaultSuggestions,
		}, nil
	}

	if reply, matched, err := s.foodReply(ctx, text); err != nil {
		return nil, err
	} else if matched {
		return reply, nil
	}

	switch {
	case containsAny(text, []string{"halal"}):
		return &interfaces.ChatReply{Text: "Yes! Everything we serve is 100% certified halal."}, nil

	case containsAny(text, []string{"menu", "dishes", "what do you have"}):
		return &interfaces.ChatReply{
			Text:        "You can browse our full menu on the menu page, from starters to desserts.",
			Suggestions: []string{"View our menu"},
		}, nil

	case containsAny(text, []string{"location", "address", "where are you"}):
		return &interfaces.ChatReply{Text: "You will find us in the heart of the city. Check the contact page for the map and directions."}, nil

	case containsAny(text, []string{"hours", "timing", "open", "close"}):
		return &interfaces.ChatReply{Text: "We are open Monday to Sunday, 11:00 to 23:00."}, nil

	case containsAny(text, []string{"book", "reservation", "reserve", "table"}):
		return &interfaces.ChatReply{
			Text:        "We would love to host you! You can book a table on the reservations page.",
			Suggestions: []string{"Book a table"},
		}, nil
	}

	return &interfaces.ChatReply{
		Text:        "I'm not sure I understood that, but here is what I can help with:",
		Suggestions: defaultSuggestions,
	}, nil
}

// foodReply handles the food/deal keyword branch: the message is
// cross-referenced against active deals and the menu, and the reply mentions
// the current bestseller.
func (s *Service) foodReply(ctx context.Context, text string) (*interfaces.ChatReply, bool, error) {
	deals, err := s.deals.ListActive(ctx, time.Now())
	if err != nil {
		return nil, false, fmt.Errorf("failed to fetch active deals: %w", err)
	}

	items, err := s.menu.ListItems(ctx, 0, true)
	if err != nil {
		return nil, false, fmt.Errorf("failed to fetch menu: %w", err)
	}

	var dealMatches, itemMatches []string
	for _, d := range deals {
		if mentions(text, d.Title) {
			dealMatches = append(dealMatches, fmt.Sprintf("%s (Rs. %.0f)", d.Title, d.Price))
		}
	}
	for _, m := range items {
		if mentions(text, m.Name) {
			itemMatches = append(itemMatches, fmt.Sprintf("%s (Rs. %.0f)", m.Name, m.Price))
		}
	}

	if len(dealMatches) == 0 && len(itemMatches) == 0 && !containsAny(text, foodKeywords) {
		return nil, false, nil
	}

	var b strings.Builder
	switch {
	case len(dealMatches) > 0:
		b.WriteString("Great choice! Right now we have: " + strings.Join(dealMatches, ", ") + ".")
	case len(itemMatches) > 0:
		b.WriteString("Great choice! On our menu: " + strings.Join(itemMatches, ", ") + ".")
	default:
		b.WriteString("You have good taste! Check our menu and today's deals for the full selection.")
	}

	top, err := s.orders.TopOrderedItems(ctx, 1)
	if err != nil {
		return nil, false, fmt.Errorf("failed to fetch bestsellers: %w", err)
	}
	if len(top) > 0 {
		fmt.Fprintf(&b, " Our bestseller is %s.", top[0].Name)
	}

	return &interfaces.ChatReply{
		Text:        b.String(),
		Suggestions: []string{"View our menu", "Today's deals"},
	}, true, nil
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

// mentions reports whether any word of the name appears in the message.
// Single-word checks skip short stopwords so "special deal" does not match
// every message containing "a".
func mentions(text, name string) bool {
	for _, word := range strings.Fields(strings.ToLower(name)) {
		if len(word) < 4 {
			continue
		}
		if strings.Contains(text, word) {
			return true
		}
	}
	return false
}
