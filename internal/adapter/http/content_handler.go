package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/meshahan/pakcuisine/internal/adapter/logger"
	"github.com/meshahan/pakcuisine/internal/app/content"
	"github.com/meshahan/pakcuisine/internal/app/settings"
	"github.com/meshahan/pakcuisine/internal/domain"
)

// ContentHandler serves the public editorial pages: blog, gallery,
// testimonials, newsletter signup and the contact form.
type ContentHandler struct {
	content  *content.Service
	settings *settings.Service
	logger   logger.Logger
}

func NewContentHandler(content *content.Service, settings *settings.Service, logger logger.Logger) *ContentHandler {
	return &ContentHandler{content: content, settings: settings, logger: logger}
}

func (h *ContentHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.content.PublishedPosts(r.Context())
	if err != nil {
		h.logger.Error("db_query_failed", "Failed to list blog posts", "", nil, err)
		respondError(w, "Failed to load blog", http.StatusInternalServerError, nil)
		return
	}

	resp := make([]map[string]interface{}, len(posts))
	for i, p := range posts {
		resp[i] = map[string]interface{}{
			"slug":         p.Slug,
			"title":        p.Title,
			"excerpt":      p.Excerpt,
			"cover_url":    p.CoverURL,
			"published_at": p.PublishedAt,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *ContentHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	post, err := h.content.PostBySlug(r.Context(), slug)
	if err != nil || !post.Published {
		respondError(w, "Post not found", http.StatusNotFound, nil)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"slug":         post.Slug,
		"title":        post.Title,
		"excerpt":      post.Excerpt,
		"body":         post.Body,
		"cover_url":    post.CoverURL,
		"published_at": post.PublishedAt,
	})
}

func (h *ContentHandler) ListGallery(w http.ResponseWriter, r *http.Request) {
	images, err := h.content.GalleryImages(r.Context())
	if err != nil {
		h.logger.Error("db_query_failed", "Failed to list gallery", "", nil, err)
		respondError(w, "Failed to load gallery", http.StatusInternalServerError, nil)
		return
	}

	resp := make([]map[string]interface{}, len(images))
	for i, g := range images {
		resp[i] = map[string]interface{}{
			"id":       g.ID,
			"title":    g.Title,
			"url":      g.URL,
			"position": g.Position,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *ContentHandler) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	testimonials, err := h.content.ApprovedTestimonials(r.Context())
	if err != nil {
		h.logger.Error("db_query_failed", "Failed to list testimonials", "", nil, err)
		respondError(w, "Failed to load testimonials", http.StatusInternalServerError, nil)
		return
	}
	writeJSON(w, http.StatusOK, testimonialsResponse(testimonials))
}

type testimonialRequest struct {
	Author string `json:"author"`
	Quote  string `json:"quote"`
	Rating int    `json:"rating"`
}

// SubmitTestimonial stores a customer review; it stays hidden until an admin
// approves it.
func (h *ContentHandler) SubmitTestimonial(w http.ResponseWriter, r *http.Request) {
	var req testimonialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	t := &domain.Testimonial{Author: req.Author, Quote: req.Quote, Rating: req.Rating}
	if err := h.content.SubmitTestimonial(r.Context(), t); err != nil {
		if strings.Contains(err.Error(), "validation failed") {
			respondError(w, err.Error(), http.StatusBadRequest, nil)
			return
		}
		h.logger.Error("db_insert_failed", "Failed to store testimonial", "", nil, err)
		respondError(w, "Failed to submit testimonial", http.StatusInternalServerError, nil)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"message": "Thank you! Your review is pending approval."})
}

type subscribeRequest struct {
	Email string `json:"email"`
}

func (h *ContentHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req subscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	sub, err := h.content.Subscribe(r.Context(), req.Email)
	if err != nil {
		if strings.Contains(err.Error(), "validation failed") {
			respondError(w, err.Error(), http.StatusBadRequest, nil)
			return
		}
		h.logger.Error("db_insert_failed", "Failed to add subscriber", "", nil, err)
		respondError(w, "Failed to subscribe", http.StatusInternalServerError, nil)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"email": sub.Email})
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (h *ContentHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	c := &domain.ContactSubmission{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := h.content.SubmitContact(r.Context(), c); err != nil {
		if strings.Contains(err.Error(), "validation failed") {
			respondError(w, err.Error(), http.StatusBadRequest, nil)
			return
		}
		h.logger.Error("db_insert_failed", "Failed to store contact submission", "", nil, err)
		respondError(w, "Failed to send message", http.StatusInternalServerError, nil)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"message": "Thanks for reaching out. We will get back to you soon."})
}

// SiteSettings returns the public key-value settings used by page templates.
func (h *ContentHandler) SiteSettings(w http.ResponseWriter, r *http.Request) {
	all, err := h.settings.All(r.Context())
	if err != nil {
		h.logger.Error("db_query_failed", "Failed to load site settings", "", nil, err)
		respondError(w, "Failed to load settings", http.StatusInternalServerError, nil)
		return
	}

	resp := make(map[string]string, len(all))
	for _, s := range all {
		if strings.HasPrefix(s.Key, "smtp_") {
			// Mail credentials never leave the server.
			continue
		}
		resp[s.Key] = s.Value
	}
	writeJSON(w, http.StatusOK, resp)
}

func testimonialsResponse(testimonials []*domain.Testimonial) []map[string]interface{} {
	resp := make([]map[string]interface{}, len(testimonials))
	for i, t := range testimonials {
		resp[i] = map[string]interface{}{
			"id":         t.ID,
			"author":     t.Author,
			"quote":      t.Quote,
			"rating":     t.Rating,
			"approved":   t.Approved,
			"created_at": t.CreatedAt,
		}
	}
	return resp
}
