package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/maabu025/book-hubs/internal/models"
	"github.com/maabu025/book-hubs/internal/service"
	"github.com/maabu025/book-hubs/internal/validator"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookHandler struct {
	svc *service.BookService
}

func NewBookHandler(s *service.BookService) *BookHandler { return &BookHandler{svc: s} }

// bookID parses the {id} url param. A malformed id is treated the same as
// an unknown one: not found.
func bookID(r *http.Request) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	return id, err == nil
}

// @Summary List books (filtered, sorted, paginated)
// @Tags books
// @Produce json
// @Param page query int false "page (default: 1)"
// @Param limit query int false "page size (default: 12, max: 100)"
// @Param search query string false "substring match on title/author/description"
// @Param genre query string false "exact genre"
// @Param author query string false "author substring"
// @Param minRating query number false "minimum rating"
// @Param startYear query int false "publication year from"
// @Param endYear query int false "publication year to"
// @Param sortBy query string false "sort field (default: createdAt)"
// @Param sortOrder query string false "asc|desc (default: desc)"
// @Success 200 {object} models.BookList
// @Router /books [get]
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))
	startYear, _ := strconv.Atoi(q.Get("startYear"))
	endYear, _ := strconv.Atoi(q.Get("endYear"))

	var minRating *float64
	if raw := q.Get("minRating"); raw != "" {
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			minRating = &f
		}
	}

	params := models.BookListParams{
		Page:      page,
		Limit:     limit,
		Search:    q.Get("search"),
		Genre:     q.Get("genre"),
		Author:    q.Get("author"),
		MinRating: minRating,
		StartYear: startYear,
		EndYear:   endYear,
		SortBy:    q.Get("sortBy"),
		SortOrder: q.Get("sortOrder"),
	}

	list, err := h.svc.List(r.Context(), params)
	if err != nil {
		serverError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// @Summary Distinct genres, alphabetical
// @Tags books
// @Produce json
// @Success 200 {array} string
// @Router /books/genres [get]
func (h *BookHandler) Genres(w http.ResponseWriter, r *http.Request) {
	genres, err := h.svc.Genres(r.Context())
	if err != nil {
		serverError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, genres)
}

// @Summary Distinct authors, alphabetical
// @Tags books
// @Produce json
// @Success 200 {array} string
// @Router /books/authors [get]
func (h *BookHandler) Authors(w http.ResponseWriter, r *http.Request) {
	authors, err := h.svc.Authors(r.Context())
	if err != nil {
		serverError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, authors)
}

// @Summary Get a single book
// @Tags books
// @Produce json
// @Param id path string true "book id"
// @Success 200 {object} models.Book
// @Failure 404 {object} map[string]string
// @Router /books/{id} [get]
func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := bookID(r)
	if !ok {
		errorJSON(w, http.StatusNotFound, "Book not found")
		return
	}

	b, err := h.svc.Get(r.Context(), id)
	if err != nil {
		serverError(w, err)
		return
	}
	if b == nil {
		errorJSON(w, http.StatusNotFound, "Book not found")
		return
	}
	writeJSON(w, http.StatusOK, b)
}

// @Summary Mark a book as read
// @Tags books
// @Security BearerAuth
// @Produce json
// @Param id path string true "book id"
// @Success 200 {object} map[string]int
// @Failure 404 {object} map[string]string
// @Router /books/{id}/read [post]
func (h *BookHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, ok := bookID(r)
	if !ok {
		errorJSON(w, http.StatusNotFound, "Book not found")
		return
	}

	b, err := h.svc.MarkRead(r.Context(), id)
	if err != nil {
		serverError(w, err)
		return
	}
	if b == nil {
		errorJSON(w, http.StatusNotFound, "Book not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"readCount": b.ReadCount})
}

// ====== ADMIN: create / update / delete ======

// @Summary Create a book (ADMIN)
// @Tags books
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body models.BookCreateRequest true "book data"
// @Success 201 {object} models.Book
// @Failure 400 {object} map[string]any
// @Router /books [post]
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.BookCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	v := validator.New()
	service.ValidateCreate(v, &req)
	if !v.Valid() {
		validationError(w, v.Errors)
		return
	}

	b, err := h.svc.Create(r.Context(), &req)
	if err != nil {
		serverError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, b)
}

// @Summary Update a book (ADMIN)
// @Tags books
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "book id"
// @Param body body models.BookUpdateRequest true "fields to update"
// @Success 200 {object} models.Book
// @Failure 404 {object} map[string]string
// @Router /books/{id} [put]
func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := bookID(r)
	if !ok {
		errorJSON(w, http.StatusNotFound, "Book not found")
		return
	}

	var req models.BookUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	v := validator.New()
	service.ValidateUpdate(v, &req)
	if !v.Valid() {
		validationError(w, v.Errors)
		return
	}

	b, err := h.svc.Update(r.Context(), id, &req)
	if err != nil {
		serverError(w, err)
		return
	}
	if b == nil {
		errorJSON(w, http.StatusNotFound, "Book not found")
		return
	}
	writeJSON(w, http.StatusOK, b)
}

// @Summary Delete a book (ADMIN)
// @Tags books
// @Security BearerAuth
// @Produce json
// @Param id path string true "book id"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /books/{id} [delete]
func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := bookID(r)
	if !ok {
		errorJSON(w, http.StatusNotFound, "Book not found")
		return
	}

	deleted, err := h.svc.Delete(r.Context(), id)
	if err != nil {
		serverError(w, err)
		return
	}
	if !deleted {
		errorJSON(w, http.StatusNotFound, "Book not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Book deleted"})
}
