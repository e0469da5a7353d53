package interfaces

import (
	"context"

	"github.com/meshahan/pakcuisine/internal/domain"
)

// Commands.

type PlaceOrderCommand struct {
	CartID        string
	CustomerName  string
	Email         string
	Phone         string
	Address       string
	City          string
	PaymentMethod string
	PaymentRef    *string
}

// Service interfaces (business logic).

type CartService interface {
	Get(ctx context.Context, cartID string) (*domain.Cart, error)
	AddItem(ctx context.Context, cartID string, line domain.CartLine) (*domain.Cart, error)
	RemoveItem(ctx context.Context, cartID string, itemID int) (*domain.Cart, error)
	UpdateQuantity(ctx context.Context, cartID string, itemID, delta int) (*domain.Cart, error)
	Clear(ctx context.Context, cartID string) error
}

type CheckoutService interface {
	PlaceOrder(ctx context.Context, cmd PlaceOrderCommand) (*domain.Order, error)
}

// ChatReply is the chatbot's canned response, optionally with suggested
// follow-up actions.
type ChatReply struct {
	Text        string   `json:"text"`
	Suggestions []string `json:"suggestions,omitempty"`
}

type ChatbotService interface {
	Respond(ctx context.Context, message string) (*ChatReply, error)
}

type PaymentProvider interface {
	// CreateIntent returns the client secret the hosted payment widget needs.
	CreateIntent(ctx context.Context, amount int64, email string) (string, error)
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (token string, user *domain.User, err error)
	VerifyToken(token string) (*Claims, error)
}

// Claims is the verified content of a session token.
type Claims struct {
	UserID string
	Email  string
	Role   domain.Role
}
