package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/meshahan/pakcuisine/internal/domain"
	"github.com/meshahan/pakcuisine/internal/interfaces"
)

// Blog.

type blogRepository struct {
	db DB
}

func NewBlogRepository(db DB) interfaces.BlogRepository {
	return &blogRepository{db: db}
}

const blogColumns = `id, slug, title, excerpt, body, cover_url, published, published_at, created_at, updated_at`

func (r *blogRepository) ListPublished(ctx context.Context) ([]*domain.BlogPost, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+blogColumns+` FROM blog_posts WHERE published ORDER BY published_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()
	return scanPosts(rows)
}

func (r *blogRepository) ListAll(ctx context.Context) ([]*domain.BlogPost, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+blogColumns+` FROM blog_posts ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()
	return scanPosts(rows)
}

func scanPosts(rows Rows) ([]*domain.BlogPost, error) {
	var posts []*domain.BlogPost
	for rows.Next() {
		var p domain.BlogPost
		if err := rows.Scan(&p.ID, &p.Slug, &p.Title, &p.Excerpt, &p.Body, &p.CoverURL,
			&p.Published, &p.PublishedAt, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, &p)
	}
	return posts, nil
}

func (r *blogRepository) FindBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	var p domain.BlogPost
	err := r.db.QueryRow(ctx,
		`SELECT `+blogColumns+` FROM blog_posts WHERE slug = $1`, slug,
	).Scan(&p.ID, &p.Slug, &p.Title, &p.Excerpt, &p.Body, &p.CoverURL,
		&p.Published, &p.PublishedAt, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("post not found: %w", err)
	}
	return &p, nil
}

func (r *blogRepository) Create(ctx context.Context, p *domain.BlogPost) error {
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Published && p.PublishedAt == nil {
		p.PublishedAt = &now
	}
	err := r.db.QueryRow(ctx, `
		INSERT INTO blog_posts (slug, title, excerpt, body, cover_url, published, published_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`,
		p.Slug, p.Title, p.Excerpt, p.Body, p.CoverURL, p.Published, p.PublishedAt, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

func (r *blogRepository) Update(ctx context.Context, p *domain.BlogPost) error {
	p.UpdatedAt = time.Now()
	if p.Published && p.PublishedAt == nil {
		p.PublishedAt = &p.UpdatedAt
	}
	_, err := r.db.Exec(ctx, `
		UPDATE blog_posts
		SET slug = $1, title = $2, excerpt = $3, body = $4, cover_url = $5,
		    published = $6, published_at = $7, updated_at = $8
		WHERE id = $9`,
		p.Slug, p.Title, p.Excerpt, p.Body, p.CoverURL, p.Published, p.PublishedAt, p.UpdatedAt, p.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}
	return nil
}

func (r *blogRepository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	return nil
}

// Gallery.

type galleryRepository struct {
	db DB
}

func NewGalleryRepository(db DB) interfaces.GalleryRepository {
	return &galleryRepository{db: db}
}

func (r *galleryRepository) List(ctx context.Context) ([]*domain.GalleryImage, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, title, url, position, created_at FROM gallery_images ORDER BY position, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list gallery: %w", err)
	}
	defer rows.Close()

	var images []*domain.GalleryImage
	for rows.Next() {
		var g domain.GalleryImage
		if err := rows.Scan(&g.ID, &g.Title, &g.URL, &g.Position, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan gallery image: %w", err)
		}
		images = append(images, &g)
	}
	return images, nil
}

func (r *galleryRepository) Create(ctx context.Context, g *domain.GalleryImage) error {
	g.CreatedAt = time.Now()
	err := r.db.QueryRow(ctx,
		`INSERT INTO gallery_images (title, url, position, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		g.Title, g.URL, g.Position, g.CreatedAt,
	).Scan(&g.ID)
	if err != nil {
		return fmt.Errorf("failed to create gallery image: %w", err)
	}
	return nil
}

func (r *galleryRepository) Update(ctx context.Context, g *domain.GalleryImage) error {
	_, err := r.db.Exec(ctx,
		`UPDATE gallery_images SET title = $1, url = $2, position = $3 WHERE id = $4`,
		g.Title, g.URL, g.Position, g.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update gallery image: %w", err)
	}
	return nil
}

func (r *galleryRepository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM gallery_images WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete gallery image: %w", err)
	}
	return nil
}

// Testimonials.

type testimonialRepository struct {
	db DB
}

func NewTestimonialRepository(db DB) interfaces.TestimonialRepository {
	return &testimonialRepository{db: db}
}

func (r *testimonialRepository) ListApproved(ctx context.Context) ([]*domain.Testimonial, error) {
	return r.list(ctx, true)
}

func (r *testimonialRepository) ListAll(ctx context.Context) ([]*domain.Testimonial, error) {
	return r.list(ctx, false)
}

func (r *testimonialRepository) list(ctx context.Context, approvedOnly bool) ([]*domain.Testimonial, error) {
	query := `SELECT id, author, quote, rating, approved, created_at FROM testimonials`
	if approvedOnly {
		query += ` WHERE approved`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list testimonials: %w", err)
	}
	defer rows.Close()

	var testimonials []*domain.Testimonial
	for rows.Next() {
		var t domain.Testimonial
		if err := rows.Scan(&t.ID, &t.Author, &t.Quote, &t.Rating, &t.Approved, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan testimonial: %w", err)
		}
		testimonials = append(testimonials, &t)
	}
	return testimonials, nil
}

func (r *testimonialRepository) Create(ctx context.Context, t *domain.Testimonial) error {
	t.CreatedAt = time.Now()
	err := r.db.QueryRow(ctx,
		`INSERT INTO testimonials (author, quote, rating, approved, created_at) VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		t.Author, t.Quote, t.Rating, t.Approved, t.CreatedAt,
	).Scan(&t.ID)
	if err != nil {
		return fmt.Errorf("failed to create testimonial: %w", err)
	}
	return nil
}

func (r *testimonialRepository) Update(ctx context.Context, t *domain.Testimonial) error {
	_, err := r.db.Exec(ctx,
		`UPDATE testimonials SET author = $1, quote = $2, rating = $3, approved = $4 WHERE id = $5`,
		t.Author, t.Quote, t.Rating, t.Approved, t.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update testimonial: %w", err)
	}
	return nil
}

func (r *testimonialRepository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM testimonials WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete testimonial: %w", err)
	}
	return nil
}

// Subscribers.

type subscriberRepository struct {
	db DB
}

func NewSubscriberRepository(db DB) interfaces.SubscriberRepository {
	return &subscriberRepository{db: db}
}

func (r *subscriberRepository) Add(ctx context.Context, email string) (*domain.Subscriber, error) {
	s := &domain.Subscriber{Email: strings.ToLower(strings.TrimSpace(email)), CreatedAt: time.Now()}
	err := r.db.QueryRow(ctx, `
		INSERT INTO subscribers (email, created_at)
		VALUES ($1, $2)
		ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
		RETURNING id, created_at`,
		s.Email, s.CreatedAt,
	).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to add subscriber: %w", err)
	}
	return s, nil
}

func (r *subscriberRepository) List(ctx context.Context) ([]*domain.Subscriber, error) {
	rows, err := r.db.Query(ctx, `SELECT id, email, created_at FROM subscribers ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscribers: %w", err)
	}
	defer rows.Close()

	var subs []*domain.Subscriber
	for rows.Next() {
		var s domain.Subscriber
		if err := rows.Scan(&s.ID, &s.Email, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan subscriber: %w", err)
		}
		subs = append(subs, &s)
	}
	return subs, nil
}

func (r *subscriberRepository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM subscribers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete subscriber: %w", err)
	}
	return nil
}

// Contact submissions.

type contactRepository struct {
	db DB
}

func NewContactRepository(db DB) interfaces.ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Add(ctx context.Context, c *domain.ContactSubmission) error {
	c.CreatedAt = time.Now()
	err := r.db.QueryRow(ctx, `
		INSERT INTO contact_submissions (name, email, subject, message, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		c.Name, c.Email, c.Subject, c.Message, c.CreatedAt,
	).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("failed to add contact submission: %w", err)
	}
	return nil
}

func (r *contactRepository) List(ctx context.Context) ([]*domain.ContactSubmission, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, email, subject, message, created_at FROM contact_submissions ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact submissions: %w", err)
	}
	defer rows.Close()

	var subs []*domain.ContactSubmission
	for rows.Next() {
		var c domain.ContactSubmission
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Subject, &c.Message, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan contact submission: %w", err)
		}
		subs = append(subs, &c)
	}
	return subs, nil
}

func (r *contactRepository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM contact_submissions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete contact submission: %w", err)
	}
	return nil
}
