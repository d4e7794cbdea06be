package repository

import (
	"testing"
	"time"

	"github.com/maabu025/book-hubs/internal/models"

	"github.com/google/go-cmp/cmp"
	"go.mongodb.org/mongo-driver/bson"
)

func TestBuildBookFilterEmpty(t *testing.T) {
	got := buildBookFilter(models.BookListParams{})
	if diff := cmp.Diff(bson.M{}, got); diff != "" {
		t.Errorf("empty params must impose no constraint (-want +got):\n%s", diff)
	}
}

func TestBuildBookFilterGenreExactAuthorSubstring(t *testing.T) {
	got := buildBookFilter(models.BookListParams{Genre: "Fantasy", Author: "tolkien"})

	want := bson.M{
		"genre":  "Fantasy",
		"author": bson.M{"$regex": "tolkien", "$options": "i"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("filter mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildBookFilterSearchDisjunction(t *testing.T) {
	got := buildBookFilter(models.BookListParams{Search: "ring"})

	rx := bson.M{"$regex": "ring", "$options": "i"}
	want := bson.M{
		"$or": bson.A{
			bson.M{"title": rx},
			bson.M{"author": rx},
			bson.M{"description": rx},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("search filter mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildBookFilterMinRating(t *testing.T) {
	min := 4.5
	got := buildBookFilter(models.BookListParams{MinRating: &min})

	want := bson.M{"rating": bson.M{"$gte": 4.5}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("rating filter mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildBookFilterYearRange(t *testing.T) {
	tests := []struct {
		name       string
		start, end int
		want       bson.M
	}{
		{
			name:  "both bounds",
			start: 1950,
			end:   1960,
			want: bson.M{
				"$gte": time.Date(1950, 1, 1, 0, 0, 0, 0, time.UTC),
				"$lte": time.Date(1960, 12, 31, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			name:  "start only",
			start: 2000,
			want:  bson.M{"$gte": time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)},
		},
		{
			name: "end only",
			end:  1900,
			want: bson.M{"$lte": time.Date(1900, 12, 31, 0, 0, 0, 0, time.UTC)},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := buildBookFilter(models.BookListParams{StartYear: tc.start, EndYear: tc.end})
			if diff := cmp.Diff(bson.M{"publicationDate": tc.want}, got); diff != "" {
				t.Errorf("date filter mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuildBookSort(t *testing.T) {
	asc := buildBookSort(models.BookListParams{SortBy: "title", SortOrder: "asc"})
	if diff := cmp.Diff(bson.D{{Key: "title", Value: 1}}, asc); diff != "" {
		t.Errorf("asc sort mismatch (-want +got):\n%s", diff)
	}

	desc := buildBookSort(models.BookListParams{SortBy: "readCount", SortOrder: "desc"})
	if diff := cmp.Diff(bson.D{{Key: "readCount", Value: -1}}, desc); diff != "" {
		t.Errorf("desc sort mismatch (-want +got):\n%s", diff)
	}
}
