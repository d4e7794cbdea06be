package service

import (
	"context"
	"time"

	"github.com/maabu025/book-hubs/internal/cache"
	"github.com/maabu025/book-hubs/internal/models"
	"github.com/maabu025/book-hubs/internal/validator"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	defaultPageSize = 12
	maxPageSize     = 100

	genresCacheKey  = "bookhub:genres"
	authorsCacheKey = "bookhub:authors"
	listingCacheTTL = 5 * time.Minute
)

// sortableFields is the whitelist for sortBy; anything else falls back to
// createdAt instead of being passed through to the store verbatim.
var sortableFields = []string{
	"createdAt", "updatedAt", "title", "author",
	"rating", "readCount", "publicationDate", "pages",
}

type BookService struct {
	books BookStore
}

func NewBookService(books BookStore) *BookService {
	return &BookService{books: books}
}

// normalizeListParams applies defaults, the page-size cap and the sort
// whitelist.
func normalizeListParams(p models.BookListParams) models.BookListParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = defaultPageSize
	}
	if p.Limit > maxPageSize {
		p.Limit = maxPageSize
	}
	if !validator.In(p.SortBy, sortableFields...) {
		p.SortBy = "createdAt"
	}
	if p.SortOrder != "asc" {
		p.SortOrder = "desc"
	}
	return p
}

// List returns one page of the catalog plus pagination metadata. Each call
// recomputes from scratch; there is no cursor state.
func (s *BookService) List(ctx context.Context, p models.BookListParams) (*models.BookList, error) {
	p = normalizeListParams(p)

	books, total, err := s.books.List(ctx, p)
	if err != nil {
		return nil, err
	}
	if books == nil {
		books = []models.Book{}
	}

	totalPages := int((total + int64(p.Limit) - 1) / int64(p.Limit))

	return &models.BookList{
		Books: books,
		Pagination: models.Pagination{
			CurrentPage: p.Page,
			TotalPages:  totalPages,
			TotalBooks:  total,
			Limit:       p.Limit,
		},
	}, nil
}

func (s *BookService) Get(ctx context.Context, id primitive.ObjectID) (*models.Book, error) {
	return s.books.GetByID(ctx, id)
}

// ValidateCreate checks the create payload field by field so the handler
// can report every problem at once, before any store interaction.
func ValidateCreate(v *validator.Validator, req *models.BookCreateRequest) {
	v.Check(req.Title != "", "title", "must be provided")
	v.Check(req.Author != "", "author", "must be provided")
	v.Check(req.Genre != "", "genre", "must be provided")
	v.Check(req.Description != "", "description", "must be provided")

	if req.PublicationDate == "" {
		v.AddError("publicationDate", "must be provided")
	} else if _, err := parseDate(req.PublicationDate); err != nil {
		v.AddError("publicationDate", "must be a valid date")
	}

	v.Check(req.Rating >= 0 && req.Rating <= 5, "rating", "must be between 0 and 5")
	v.Check(req.Pages >= 0, "pages", "must not be negative")
	v.Check(req.ReadCount >= 0, "readCount", "must not be negative")
}

// Create inserts a new book with defaults applied for the optional fields.
// The payload must already have passed ValidateCreate.
func (s *BookService) Create(ctx context.Context, req *models.BookCreateRequest) (*models.Book, error) {
	pubDate, err := parseDate(req.PublicationDate)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	b := &models.Book{
		Title:           req.Title,
		Author:          req.Author,
		Genre:           req.Genre,
		Description:     req.Description,
		PublicationDate: pubDate,
		CoverImage:      req.CoverImage,
		ISBN:            req.ISBN,
		Publisher:       req.Publisher,
		Pages:           req.Pages,
		Language:        req.Language,
		Rating:          req.Rating,
		TotalRatings:    req.TotalRatings,
		ReadCount:       req.ReadCount,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if b.CoverImage == "" {
		b.CoverImage = models.DefaultCoverImage
	}
	if b.Language == "" {
		b.Language = "English"
	}

	if err := s.books.Insert(ctx, b); err != nil {
		return nil, err
	}
	s.invalidateListings(ctx)
	return b, nil
}

// ValidateUpdate checks only the fields present in a partial update.
func ValidateUpdate(v *validator.Validator, req *models.BookUpdateRequest) {
	if req.Title != nil {
		v.Check(*req.Title != "", "title", "must not be empty")
	}
	if req.Author != nil {
		v.Check(*req.Author != "", "author", "must not be empty")
	}
	if req.Genre != nil {
		v.Check(*req.Genre != "", "genre", "must not be empty")
	}
	if req.Description != nil {
		v.Check(*req.Description != "", "description", "must not be empty")
	}
	if req.PublicationDate != nil {
		if _, err := parseDate(*req.PublicationDate); err != nil {
			v.AddError("publicationDate", "must be a valid date")
		}
	}
	if req.Rating != nil {
		v.Check(*req.Rating >= 0 && *req.Rating <= 5, "rating", "must be between 0 and 5")
	}
	if req.Pages != nil {
		v.Check(*req.Pages >= 0, "pages", "must not be negative")
	}
}

// Update applies the non-nil fields of req and returns the updated book,
// or nil when the id matches nothing.
func (s *BookService) Update(ctx context.Context, id primitive.ObjectID, req *models.BookUpdateRequest) (*models.Book, error) {
	update := bson.M{}

	if req.Title != nil {
		update["title"] = *req.Title
	}
	if req.Author != nil {
		update["author"] = *req.Author
	}
	if req.Genre != nil {
		update["genre"] = *req.Genre
	}
	if req.Description != nil {
		update["description"] = *req.Description
	}
	if req.PublicationDate != nil {
		pubDate, err := parseDate(*req.PublicationDate)
		if err != nil {
			return nil, err
		}
		update["publicationDate"] = pubDate
	}
	if req.CoverImage != nil {
		update["coverImage"] = *req.CoverImage
	}
	if req.ISBN != nil {
		update["isbn"] = *req.ISBN
	}
	if req.Publisher != nil {
		update["publisher"] = *req.Publisher
	}
	if req.Pages != nil {
		update["pages"] = *req.Pages
	}
	if req.Language != nil {
		update["language"] = *req.Language
	}
	if req.Rating != nil {
		update["rating"] = *req.Rating
	}
	if req.TotalRatings != nil {
		update["totalRatings"] = *req.TotalRatings
	}
	update["updatedAt"] = time.Now().UTC()

	b, err := s.books.UpdateByID(ctx, id, update)
	if err != nil {
		return nil, err
	}
	if b != nil {
		s.invalidateListings(ctx)
	}
	return b, nil
}

func (s *BookService) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	deleted, err := s.books.DeleteByID(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		s.invalidateListings(ctx)
	}
	return deleted, nil
}

// MarkRead atomically increments readCount and returns the updated book.
func (s *BookService) MarkRead(ctx context.Context, id primitive.ObjectID) (*models.Book, error) {
	return s.books.IncrementReadCount(ctx, id)
}

// Genres lists the distinct genres alphabetically, served from Redis when
// a fresh copy is cached.
func (s *BookService) Genres(ctx context.Context) ([]string, error) {
	return s.cachedDistinct(ctx, genresCacheKey, s.books.DistinctGenres)
}

// Authors lists the distinct authors alphabetically.
func (s *BookService) Authors(ctx context.Context) ([]string, error) {
	return s.cachedDistinct(ctx, authorsCacheKey, s.books.DistinctAuthors)
}

func (s *BookService) cachedDistinct(ctx context.Context, key string, fetch func(context.Context) ([]string, error)) ([]string, error) {
	var cached []string
	if ok, err := cache.GetJSON(ctx, key, &cached); err == nil && ok {
		return cached, nil
	}

	vals, err := fetch(ctx)
	if err != nil {
		return nil, err
	}
	if vals == nil {
		vals = []string{}
	}
	_ = cache.SetJSON(ctx, key, vals, listingCacheTTL)
	return vals, nil
}

// invalidateListings drops the cached distinct scans after any mutation.
// A failed invalidation only delays freshness by the TTL.
func (s *BookService) invalidateListings(ctx context.Context) {
	_ = cache.Del(ctx, genresCacheKey, authorsCacheKey)
}

// parseDate accepts full RFC 3339 timestamps or plain yyyy-mm-dd dates.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
