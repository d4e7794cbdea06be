package service

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/maabu025/book-hubs/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeBookStore is an in-memory BookStore mirroring the store semantics the
// services rely on. When err is set every method fails with it.
type fakeBookStore struct {
	mu    sync.Mutex
	books []models.Book
	err   error
}

func (f *fakeBookStore) matches(b models.Book, p models.BookListParams) bool {
	if p.Genre != "" && b.Genre != p.Genre {
		return false
	}
	if p.Author != "" && !strings.Contains(strings.ToLower(b.Author), strings.ToLower(p.Author)) {
		return false
	}
	if p.Search != "" {
		s := strings.ToLower(p.Search)
		if !strings.Contains(strings.ToLower(b.Title), s) &&
			!strings.Contains(strings.ToLower(b.Author), s) &&
			!strings.Contains(strings.ToLower(b.Description), s) {
			return false
		}
	}
	if p.MinRating != nil && b.Rating < *p.MinRating {
		return false
	}
	if p.StartYear > 0 && b.PublicationDate.Year() < p.StartYear {
		return false
	}
	if p.EndYear > 0 && b.PublicationDate.Year() > p.EndYear {
		return false
	}
	return true
}

func (f *fakeBookStore) List(ctx context.Context, p models.BookListParams) ([]models.Book, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, 0, f.err
	}

	var matched []models.Book
	for _, b := range f.books {
		if f.matches(b, p) {
			matched = append(matched, b)
		}
	}

	desc := p.SortOrder != "asc"
	sort.SliceStable(matched, func(i, j int) bool {
		var less bool
		switch p.SortBy {
		case "readCount":
			less = matched[i].ReadCount < matched[j].ReadCount
		case "rating":
			less = matched[i].Rating < matched[j].Rating
		case "title":
			less = matched[i].Title < matched[j].Title
		default:
			less = matched[i].CreatedAt.Before(matched[j].CreatedAt)
		}
		if desc {
			return !less
		}
		return less
	})

	total := int64(len(matched))
	start := (p.Page - 1) * p.Limit
	if start > len(matched) {
		start = len(matched)
	}
	end := start + p.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (f *fakeBookStore) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Book, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.books {
		if f.books[i].ID == id {
			b := f.books[i]
			return &b, nil
		}
	}
	return nil, nil
}

func (f *fakeBookStore) Insert(ctx context.Context, b *models.Book) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}
	f.books = append(f.books, *b)
	return nil
}

func (f *fakeBookStore) UpdateByID(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.Book, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.books {
		if f.books[i].ID != id {
			continue
		}
		b := &f.books[i]
		for k, v := range update {
			switch k {
			case "title":
				b.Title = v.(string)
			case "author":
				b.Author = v.(string)
			case "genre":
				b.Genre = v.(string)
			case "description":
				b.Description = v.(string)
			case "coverImage":
				b.CoverImage = v.(string)
			case "rating":
				b.Rating = v.(float64)
			case "pages":
				b.Pages = v.(int)
			}
		}
		out := *b
		return &out, nil
	}
	return nil, nil
}

func (f *fakeBookStore) DeleteByID(ctx context.Context, id primitive.ObjectID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return false, f.err
	}
	for i := range f.books {
		if f.books[i].ID == id {
			f.books = append(f.books[:i], f.books[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBookStore) IncrementReadCount(ctx context.Context, id primitive.ObjectID) (*models.Book, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.books {
		if f.books[i].ID == id {
			f.books[i].ReadCount++
			b := f.books[i]
			return &b, nil
		}
	}
	return nil, nil
}

func (f *fakeBookStore) distinct(get func(models.Book) string) []string {
	seen := map[string]bool{}
	var out []string
	for _, b := range f.books {
		if v := get(b); !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}

func (f *fakeBookStore) DistinctGenres(ctx context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.distinct(func(b models.Book) string { return b.Genre }), nil
}

func (f *fakeBookStore) DistinctAuthors(ctx context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.distinct(func(b models.Book) string { return b.Author }), nil
}

func (f *fakeBookStore) Count(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.books)), nil
}

func (f *fakeBookStore) SumReadCounts(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	var total int64
	for _, b := range f.books {
		total += b.ReadCount
	}
	return total, nil
}

func (f *fakeBookStore) byReadCount(order int) []models.Book {
	out := make([]models.Book, len(f.books))
	copy(out, f.books)
	sort.SliceStable(out, func(i, j int) bool {
		if order < 0 {
			return out[i].ReadCount > out[j].ReadCount
		}
		return out[i].ReadCount < out[j].ReadCount
	})
	return out
}

func (f *fakeBookStore) TopByReadCount(ctx context.Context, order int, limit int64) ([]models.BookReadStat, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	sorted := f.byReadCount(order)
	if int64(len(sorted)) > limit {
		sorted = sorted[:limit]
	}
	var out []models.BookReadStat
	for _, b := range sorted {
		out = append(out, models.BookReadStat{
			Title: b.Title, Author: b.Author, ReadCount: b.ReadCount,
			CoverImage: b.CoverImage, Genre: b.Genre, Rating: b.Rating,
		})
	}
	return out, nil
}

func (f *fakeBookStore) RecentlyAdded(ctx context.Context, limit int64) ([]models.RecentBook, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	sorted := make([]models.Book, len(f.books))
	copy(sorted, f.books)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	if int64(len(sorted)) > limit {
		sorted = sorted[:limit]
	}
	var out []models.RecentBook
	for _, b := range sorted {
		out = append(out, models.RecentBook{
			Title: b.Title, Author: b.Author, CreatedAt: b.CreatedAt,
			CoverImage: b.CoverImage, Genre: b.Genre,
		})
	}
	return out, nil
}

func (f *fakeBookStore) AllByReadCount(ctx context.Context) ([]models.BookReadCount, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	var out []models.BookReadCount
	for _, b := range f.byReadCount(-1) {
		out = append(out, models.BookReadCount{Title: b.Title, Author: b.Author, ReadCount: b.ReadCount})
	}
	return out, nil
}

func (f *fakeBookStore) GenreStats(ctx context.Context) ([]models.GenreStat, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	byGenre := map[string]*models.GenreStat{}
	ratings := map[string]float64{}
	for _, b := range f.books {
		g, ok := byGenre[b.Genre]
		if !ok {
			g = &models.GenreStat{Genre: b.Genre}
			byGenre[b.Genre] = g
		}
		g.Count++
		g.TotalReads += b.ReadCount
		ratings[b.Genre] += b.Rating
	}
	var out []models.GenreStat
	for genre, g := range byGenre {
		g.AvgRating = ratings[genre] / float64(g.Count)
		out = append(out, *g)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].TotalReads > out[j].TotalReads })
	return out, nil
}

// fakeUserStore is an in-memory UserStore.
type fakeUserStore struct {
	mu    sync.Mutex
	users []models.User
	err   error
}

func (f *fakeUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.users {
		if f.users[i].Email == email {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) FindByUsernameOrEmail(ctx context.Context, username, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.users {
		if f.users[i].Username == username || f.users[i].Email == email {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.users {
		if f.users[i].ID == id {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) Insert(ctx context.Context, u *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	f.users = append(f.users, *u)
	return nil
}
