package service

import (
	"context"

	"github.com/maabu025/book-hubs/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BookStore is the slice of the book repository the services need. Tests
// substitute an in-memory implementation.
type BookStore interface {
	List(ctx context.Context, p models.BookListParams) ([]models.Book, int64, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Book, error)
	Insert(ctx context.Context, b *models.Book) error
	UpdateByID(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.Book, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (bool, error)
	IncrementReadCount(ctx context.Context, id primitive.ObjectID) (*models.Book, error)
	DistinctGenres(ctx context.Context) ([]string, error)
	DistinctAuthors(ctx context.Context) ([]string, error)

	Count(ctx context.Context) (int64, error)
	SumReadCounts(ctx context.Context) (int64, error)
	TopByReadCount(ctx context.Context, order int, limit int64) ([]models.BookReadStat, error)
	RecentlyAdded(ctx context.Context, limit int64) ([]models.RecentBook, error)
	AllByReadCount(ctx context.Context) ([]models.BookReadCount, error)
	GenreStats(ctx context.Context) ([]models.GenreStat, error)
}

// UserStore is the user repository surface consumed by AuthService.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	Insert(ctx context.Context, u *models.User) error
}
