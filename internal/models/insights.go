package models

import "time"

// InsightsOverview holds the headline dashboard numbers. AvgReadsPerBook is
// pre-formatted to one decimal ("0" for an empty catalog).
type InsightsOverview struct {
	TotalBooks      int64  `json:"totalBooks"`
	TotalReads      int64  `json:"totalReads"`
	AvgReadsPerBook string `json:"avgReadsPerBook"`
}

// BookReadStat is the projection used by the most/least-read rankings.
type BookReadStat struct {
	Title      string  `json:"title" bson:"title"`
	Author     string  `json:"author" bson:"author"`
	ReadCount  int64   `json:"readCount" bson:"readCount"`
	CoverImage string  `json:"coverImage" bson:"coverImage"`
	Genre      string  `json:"genre" bson:"genre"`
	Rating     float64 `json:"rating" bson:"rating"`
}

// RecentBook is the projection used by the recently-added listing.
type RecentBook struct {
	Title      string    `json:"title" bson:"title"`
	Author     string    `json:"author" bson:"author"`
	CreatedAt  time.Time `json:"createdAt" bson:"createdAt"`
	CoverImage string    `json:"coverImage" bson:"coverImage"`
	Genre      string    `json:"genre" bson:"genre"`
}

// BookReadCount backs the per-book bar chart (sorted by readCount desc, so
// the first entry is the chart maximum).
type BookReadCount struct {
	Title     string `json:"title" bson:"title"`
	Author    string `json:"author" bson:"author"`
	ReadCount int64  `json:"readCount" bson:"readCount"`
}

// GenreStat is one aggregation row per distinct genre.
type GenreStat struct {
	Genre      string  `json:"genre" bson:"_id"`
	Count      int64   `json:"count" bson:"count"`
	TotalReads int64   `json:"totalReads" bson:"totalReads"`
	AvgRating  float64 `json:"avgRating" bson:"avgRating"`
}

// Insights is the admin dashboard snapshot, computed on demand.
type Insights struct {
	Overview      InsightsOverview `json:"overview"`
	MostRead      []BookReadStat   `json:"mostRead"`
	LeastRead     []BookReadStat   `json:"leastRead"`
	RecentlyAdded []RecentBook     `json:"recentlyAdded"`
	PerBook       []BookReadCount  `json:"perBook"`
	GenreStats    []GenreStat      `json:"genreStats"`
}
