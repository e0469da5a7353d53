package content

import (
	"context"
	"fmt"

	"github.com/meshahan/pakcuisine/internal/adapter/logger"
	"github.com/meshahan/pakcuisine/internal/domain"
	"github.com/meshahan/pakcuisine/internal/interfaces"
)

// Service covers the site's editorial surfaces: blog, gallery, testimonials,
// the newsletter list and contact submissions.
type Service struct {
	blog         interfaces.BlogRepository
	gallery      interfaces.GalleryRepository
	testimonials interfaces.TestimonialRepository
	subscribers  interfaces.SubscriberRepository
	contact      interfaces.ContactRepository
	logger       logger.Logger
}

func NewService(
	blog interfaces.BlogRepository,
	gallery interfaces.GalleryRepository,
	testimonials interfaces.TestimonialRepository,
	subscribers interfaces.SubscriberRepository,
	contact interfaces.ContactRepository,
	logger logger.Logger,
) *Service {
	return &Service{
		blog:         blog,
		gallery:      gallery,
		testimonials: testimonials,
		subscribers:  subscribers,
		contact:      contact,
		logger:       logger,
	}
}

// Blog.

func (s *Service) PublishedPosts(ctx context.Context) ([]*domain.BlogPost, error) {
	return s.blog.ListPublished(ctx)
}

func (s *Service) AllPosts(ctx context.Context) ([]*domain.BlogPost, error) {
	return s.blog.ListAll(ctx)
}

func (s *Service) PostBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	return s.blog.FindBySlug(ctx, slug)
}

func (s *Service) SavePost(ctx context.Context, p *domain.BlogPost) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	if p.ID == 0 {
		return s.blog.Create(ctx, p)
	}
	return s.blog.Update(ctx, p)
}

func (s *Service) DeletePost(ctx context.Context, id int) error {
	return s.blog.Delete(ctx, id)
}

// Gallery.

func (s *Service) GalleryImages(ctx context.Context) ([]*domain.GalleryImage, error) {
	return s.gallery.List(ctx)
}

func (s *Service) SaveGalleryImage(ctx context.Context, g *domain.GalleryImage) error {
	if err := g.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	if g.ID == 0 {
		return s.gallery.Create(ctx, g)
	}
	return s.gallery.Update(ctx, g)
}

func (s *Service) DeleteGalleryImage(ctx context.Context, id int) error {
	return s.gallery.Delete(ctx, id)
}

// Testimonials. The public list only shows approved entries.

func (s *Service) ApprovedTestimonials(ctx context.Context) ([]*domain.Testimonial, error) {
	return s.testimonials.ListApproved(ctx)
}

func (s *Service) AllTestimonials(ctx context.Context) ([]*domain.Testimonial, error) {
	return s.testimonials.ListAll(ctx)
}

func (s *Service) SubmitTestimonial(ctx context.Context, t *domain.Testimonial) error {
	if err := t.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	// Customer submissions always start unapproved.
	t.Approved = false
	return s.testimonials.Create(ctx, t)
}

func (s *Service) SaveTestimonial(ctx context.Context, t *domain.Testimonial) error {
	if err := t.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	if t.ID == 0 {
		return s.testimonials.Create(ctx, t)
	}
	return s.testimonials.Update(ctx, t)
}

func (s *Service) DeleteTestimonial(ctx context.Context, id int) error {
	return s.testimonials.Delete(ctx, id)
}

// Newsletter.

func (s *Service) Subscribe(ctx context.Context, email string) (*domain.Subscriber, error) {
	if err := domain.ValidateSubscriberEmail(email); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	return s.subscribers.Add(ctx, email)
}

func (s *Service) Subscribers(ctx context.Context) ([]*domain.Subscriber, error) {
	return s.subscribers.List(ctx)
}

// Contact.

func (s *Service) SubmitContact(ctx context.Context, c *domain.ContactSubmission) error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return s.contact.Add(ctx, c)
}

func (s *Service) ContactSubmissions(ctx context.Context) ([]*domain.ContactSubmission, error) {
	return s.contact.List(ctx)
}
