package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultCoverImage is used when a book is created without a cover.
const DefaultCoverImage = "https://images.unsplash.com/photo-1544716278-ca5e3f4abd8c?w=400&q=80"

type Book struct {
	ID              primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Title           string             `json:"title" bson:"title"`
	Author          string             `json:"author" bson:"author"`
	Genre           string             `json:"genre" bson:"genre"`
	Description     string             `json:"description" bson:"description"`
	CoverImage      string             `json:"coverImage" bson:"coverImage"`
	PublicationDate time.Time          `json:"publicationDate" bson:"publicationDate"`
	ISBN            string             `json:"isbn" bson:"isbn"`
	Publisher       string             `json:"publisher" bson:"publisher"`
	Pages           int                `json:"pages" bson:"pages"`
	Language        string             `json:"language" bson:"language"`
	Rating          float64            `json:"rating" bson:"rating"`
	TotalRatings    int64              `json:"totalRatings" bson:"totalRatings"`
	ReadCount       int64              `json:"readCount" bson:"readCount"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// BookCreateRequest is the admin create payload. Title, author, genre,
// description and publicationDate are required; the rest default.
type BookCreateRequest struct {
	Title           string  `json:"title"`
	Author          string  `json:"author"`
	Genre           string  `json:"genre"`
	Description     string  `json:"description"`
	PublicationDate string  `json:"publicationDate"`
	CoverImage      string  `json:"coverImage,omitempty"`
	ISBN            string  `json:"isbn,omitempty"`
	Publisher       string  `json:"publisher,omitempty"`
	Pages           int     `json:"pages,omitempty"`
	Language        string  `json:"language,omitempty"`
	Rating          float64 `json:"rating,omitempty"`
	TotalRatings    int64   `json:"totalRatings,omitempty"`
	ReadCount       int64   `json:"readCount,omitempty"`
}

// BookUpdateRequest is the admin partial-update payload. Every field is a
// pointer so "absent" and "set to zero value" stay distinguishable.
type BookUpdateRequest struct {
	Title           *string  `json:"title,omitempty"`
	Author          *string  `json:"author,omitempty"`
	Genre           *string  `json:"genre,omitempty"`
	Description     *string  `json:"description,omitempty"`
	PublicationDate *string  `json:"publicationDate,omitempty"`
	CoverImage      *string  `json:"coverImage,omitempty"`
	ISBN            *string  `json:"isbn,omitempty"`
	Publisher       *string  `json:"publisher,omitempty"`
	Pages           *int     `json:"pages,omitempty"`
	Language        *string  `json:"language,omitempty"`
	Rating          *float64 `json:"rating,omitempty"`
	TotalRatings    *int64   `json:"totalRatings,omitempty"`
}

// BookListParams carries the normalized query parameters for the list
// endpoint. Zero values mean "no constraint".
type BookListParams struct {
	Page      int
	Limit     int
	Search    string
	Genre     string
	Author    string
	MinRating *float64
	StartYear int
	EndYear   int
	SortBy    string
	SortOrder string
}

type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalBooks  int64 `json:"totalBooks"`
	Limit       int   `json:"limit"`
}

type BookList struct {
	Books      []Book     `json:"books"`
	Pagination Pagination `json:"pagination"`
}
