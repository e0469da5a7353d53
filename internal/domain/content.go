package domain

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

type BlogPost struct {
	ID          int
	Slug        string
	Title       string
	Excerpt     string
	Body        string
	CoverURL    string
	Published   bool
	PublishedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type GalleryImage struct {
	ID        int
	Title     string
	URL       string
	Position  int
	CreatedAt time.Time
}

type Testimonial struct {
	ID        int
	Author    string
	Quote     string
	Rating    int
	Approved  bool
	CreatedAt time.Time
}

type Subscriber struct {
	ID        int
	Email     string
	CreatedAt time.Time
}

type ContactSubmission struct {
	ID        int
	Name      string
	Email     string
	Subject   string
	Message   string
	CreatedAt time.Time
}

var slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

func (p *BlogPost) Validate() error {
	if len(strings.TrimSpace(p.Title)) < 1 || len(p.Title) > 200 {
		return errors.New("post title must be 1-200 characters")
	}
	if !slugRegex.MatchString(p.Slug) {
		return errors.New("post slug must be lowercase letters, digits and hyphens")
	}
	if strings.TrimSpace(p.Body) == "" {
		return errors.New("post body is required")
	}
	return nil
}

func (g *GalleryImage) Validate() error {
	if strings.TrimSpace(g.URL) == "" {
		return errors.New("image url is required")
	}
	return nil
}

func (t *Testimonial) Validate() error {
	if strings.TrimSpace(t.Author) == "" {
		return errors.New("author is required")
	}
	if strings.TrimSpace(t.Quote) == "" {
		return errors.New("quote is required")
	}
	if t.Rating < 1 || t.Rating > 5 {
		return errors.New("rating must be between 1 and 5")
	}
	return nil
}

func (c *ContactSubmission) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("name is required")
	}
	if !strings.Contains(c.Email, "@") {
		return errors.New("a valid email address is required")
	}
	if strings.TrimSpace(c.Message) == "" {
		return errors.New("message is required")
	}
	return nil
}

func ValidateSubscriberEmail(email string) error {
	email = strings.TrimSpace(email)
	if len(email) < 3 || !strings.Contains(email, "@") {
		return errors.New("a valid email address is required")
	}
	return nil
}
