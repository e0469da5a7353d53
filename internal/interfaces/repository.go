package interfaces

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/meshahan/pakcuisine/internal/domain"
)

// Repository interfaces (adapter/postgres).

type MenuRepository interface {
	ListCategories(ctx context.Context) ([]*domain.MenuCategory, error)
	CreateCategory(ctx context.Context, c *domain.MenuCategory) error
	UpdateCategory(ctx context.Context, c *domain.MenuCategory) error
	DeleteCategory(ctx context.Context, id int) error

	ListItems(ctx context.Context, categoryID int, availableOnly bool) ([]*domain.MenuItem, error)
	FindItem(ctx context.Context, id int) (*domain.MenuItem, error)
	CreateItem(ctx context.Context, m *domain.MenuItem) error
	UpdateItem(ctx context.Context, m *domain.MenuItem) error
	DeleteItem(ctx context.Context, id int) error
}

type DealRepository interface {
	ListAll(ctx context.Context) ([]*domain.Deal, error)
	ListActive(ctx context.Context, now time.Time) ([]*domain.Deal, error)
	Create(ctx context.Context, d *domain.Deal) error
	Update(ctx context.Context, d *domain.Deal) error
	Delete(ctx context.Context, id int) error
}

// ItemCount is an order-line aggregate used for the chatbot bestseller.
type ItemCount struct {
	Name  string
	Count int
}

type OrderRepository interface {
	// Create inserts the order header, its lines and the initial status log
	// entry in one transaction.
	Create(ctx context.Context, order *domain.Order) error
	FindByNumber(ctx context.Context, number string) (*domain.Order, error)
	List(ctx context.Context, status domain.OrderStatus) ([]*domain.Order, error)
	GenerateOrderNumber(ctx context.Context) (string, error)
	UpdateStatusWithLog(ctx context.Context, order *domain.Order, changedBy string) error
	GetStatusHistory(ctx context.Context, orderID int) ([]*domain.StatusLog, error)
	// TopOrderedItems returns item names by descending order-line frequency,
	// ties broken by ascending name.
	TopOrderedItems(ctx context.Context, limit int) ([]ItemCount, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, r *domain.Reservation) error
	FindByID(ctx context.Context, id int) (*domain.Reservation, error)
	List(ctx context.Context, status domain.ReservationStatus) ([]*domain.Reservation, error)
	Update(ctx context.Context, r *domain.Reservation) error
	Delete(ctx context.Context, id int) error
}

type BlogRepository interface {
	ListPublished(ctx context.Context) ([]*domain.BlogPost, error)
	ListAll(ctx context.Context) ([]*domain.BlogPost, error)
	FindBySlug(ctx context.Context, slug string) (*domain.BlogPost, error)
	Create(ctx context.Context, p *domain.BlogPost) error
	Update(ctx context.Context, p *domain.BlogPost) error
	Delete(ctx context.Context, id int) error
}

type GalleryRepository interface {
	List(ctx context.Context) ([]*domain.GalleryImage, error)
	Create(ctx context.Context, g *domain.GalleryImage) error
	Update(ctx context.Context, g *domain.GalleryImage) error
	Delete(ctx context.Context, id int) error
}

type TestimonialRepository interface {
	ListApproved(ctx context.Context) ([]*domain.Testimonial, error)
	ListAll(ctx context.Context) ([]*domain.Testimonial, error)
	Create(ctx context.Context, t *domain.Testimonial) error
	Update(ctx context.Context, t *domain.Testimonial) error
	Delete(ctx context.Context, id int) error
}

type SubscriberRepository interface {
	Add(ctx context.Context, email string) (*domain.Subscriber, error)
	List(ctx context.Context) ([]*domain.Subscriber, error)
	Delete(ctx context.Context, id int) error
}

type ContactRepository interface {
	Add(ctx context.Context, c *domain.ContactSubmission) error
	List(ctx context.Context) ([]*domain.ContactSubmission, error)
	Delete(ctx context.Context, id int) error
}

type SettingsRepository interface {
	Get(ctx context.Context, key string) (string, bool, error)
	GetAll(ctx context.Context) ([]*domain.SiteSetting, error)
	Upsert(ctx context.Context, key, value string) error
}

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) error
	List(ctx context.Context) ([]*domain.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
