package service

import (
	"context"
	"strconv"

	"github.com/maabu025/book-hubs/internal/models"

	"golang.org/x/sync/errgroup"
)

type InsightsService struct {
	books BookStore
}

func NewInsightsService(books BookStore) *InsightsService {
	return &InsightsService{books: books}
}

// Snapshot computes the dashboard statistics as of call time. The queries
// are independent and run as one batch; any failure aborts the whole
// snapshot. The queries are not point-in-time consistent with each other,
// which is acceptable for a dashboard.
func (s *InsightsService) Snapshot(ctx context.Context) (*models.Insights, error) {
	var (
		totalBooks    int64
		totalReads    int64
		mostRead      []models.BookReadStat
		leastRead     []models.BookReadStat
		recentlyAdded []models.RecentBook
		perBook       []models.BookReadCount
		genreStats    []models.GenreStat
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		totalBooks, err = s.books.Count(ctx)
		return
	})
	g.Go(func() (err error) {
		totalReads, err = s.books.SumReadCounts(ctx)
		return
	})
	g.Go(func() (err error) {
		mostRead, err = s.books.TopByReadCount(ctx, -1, 5)
		return
	})
	g.Go(func() (err error) {
		leastRead, err = s.books.TopByReadCount(ctx, 1, 5)
		return
	})
	g.Go(func() (err error) {
		recentlyAdded, err = s.books.RecentlyAdded(ctx, 10)
		return
	})
	g.Go(func() (err error) {
		perBook, err = s.books.AllByReadCount(ctx)
		return
	})
	g.Go(func() (err error) {
		genreStats, err = s.books.GenreStats(ctx)
		return
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	avg := "0"
	if totalBooks > 0 {
		avg = strconv.FormatFloat(float64(totalReads)/float64(totalBooks), 'f', 1, 64)
	}

	if mostRead == nil {
		mostRead = []models.BookReadStat{}
	}
	if leastRead == nil {
		leastRead = []models.BookReadStat{}
	}
	if recentlyAdded == nil {
		recentlyAdded = []models.RecentBook{}
	}
	if perBook == nil {
		perBook = []models.BookReadCount{}
	}
	if genreStats == nil {
		genreStats = []models.GenreStat{}
	}

	return &models.Insights{
		Overview: models.InsightsOverview{
			TotalBooks:      totalBooks,
			TotalReads:      totalReads,
			AvgReadsPerBook: avg,
		},
		MostRead:      mostRead,
		LeastRead:     leastRead,
		RecentlyAdded: recentlyAdded,
		PerBook:       perBook,
		GenreStats:    genreStats,
	}, nil
}
