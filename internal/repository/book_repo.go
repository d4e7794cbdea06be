package repository

import (
	"context"
	"sort"
	"time"

	"github.com/maabu025/book-hubs/internal/db"
	"github.com/maabu025/book-hubs/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BookRepository struct {
	col *mongo.Collection
}

func NewBookRepository() *BookRepository {
	return &BookRepository{col: db.DB().Collection("books")}
}

// buildBookFilter translates list params into a conjunctive Mongo predicate.
// Absent params impose no constraint. Genre is an exact match while author
// is a case-insensitive substring; that asymmetry is part of the contract.
func buildBookFilter(p models.BookListParams) bson.M {
	filter := bson.M{}

	if p.Genre != "" {
		filter["genre"] = p.Genre
	}
	if p.Author != "" {
		filter["author"] = bson.M{"$regex": p.Author, "$options": "i"}
	}
	if p.Search != "" {
		rx := bson.M{"$regex": p.Search, "$options": "i"}
		filter["$or"] = bson.A{
			bson.M{"title": rx},
			bson.M{"author": rx},
			bson.M{"description": rx},
		}
	}
	if p.MinRating != nil {
		filter["rating"] = bson.M{"$gte": *p.MinRating}
	}
	if p.StartYear > 0 || p.EndYear > 0 {
		dateCond := bson.M{}
		if p.StartYear > 0 {
			dateCond["$gte"] = time.Date(p.StartYear, 1, 1, 0, 0, 0, 0, time.UTC)
		}
		if p.EndYear > 0 {
			dateCond["$lte"] = time.Date(p.EndYear, 12, 31, 0, 0, 0, 0, time.UTC)
		}
		filter["publicationDate"] = dateCond
	}

	return filter
}

func buildBookSort(p models.BookListParams) bson.D {
	order := -1
	if p.SortOrder == "asc" {
		order = 1
	}
	return bson.D{{Key: p.SortBy, Value: order}}
}

// List returns one page of books matching the params plus the total match
// count, both computed against the same predicate.
func (r *BookRepository) List(ctx context.Context, p models.BookListParams) ([]models.Book, int64, error) {
	filter := buildBookFilter(p)

	opts := options.Find().
		SetSort(buildBookSort(p)).
		SetSkip(int64((p.Page - 1) * p.Limit)).
		SetLimit(int64(p.Limit))

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var out []models.Book
	for cur.Next(ctx) {
		var b models.Book
		if err := cur.Decode(&b); err != nil {
			return nil, 0, err
		}
		out = append(out, b)
	}
	if err := cur.Err(); err != nil {
		return nil, 0, err
	}

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *BookRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Book, error) {
	var b models.Book
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&b)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &b, err
}

func (r *BookRepository) Insert(ctx context.Context, b *models.Book) error {
	res, err := r.col.InsertOne(ctx, b)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		b.ID = oid
	}
	return nil
}

// UpdateByID applies a partial $set and returns the updated document, or
// nil when no book has that id.
func (r *BookRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.Book, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var b models.Book
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": update},
		opts,
	).Decode(&b)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &b, err
}

func (r *BookRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// IncrementReadCount bumps readCount by one in a single atomic update and
// returns the updated document. Concurrent callers never lose increments.
func (r *BookRepository) IncrementReadCount(ctx context.Context, id primitive.ObjectID) (*models.Book, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var b models.Book
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"readCount": 1}},
		opts,
	).Decode(&b)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &b, err
}

func (r *BookRepository) DistinctGenres(ctx context.Context) ([]string, error) {
	return r.distinctStrings(ctx, "genre")
}

func (r *BookRepository) DistinctAuthors(ctx context.Context) ([]string, error) {
	return r.distinctStrings(ctx, "author")
}

// distinctStrings runs a full-collection distinct and sorts the result.
// Fine at catalog scale, no pagination.
func (r *BookRepository) distinctStrings(ctx context.Context, field string) ([]string, error) {
	vals, err := r.col.Distinct(ctx, field, bson.M{})
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(vals))
	for _, v := range vals {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out, nil
}

// ---------------------- insights primitives ----------------------

func (r *BookRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

// SumReadCounts totals readCount across the whole catalog.
func (r *BookRepository) SumReadCounts(ctx context.Context) (int64, error) {
	pipeline := bson.A{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$readCount"}}},
		}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cur.Close(ctx)

	if cur.Next(ctx) {
		var doc struct {
			Total int64 `bson:"total"`
		}
		if err := cur.Decode(&doc); err != nil {
			return 0, err
		}
		return doc.Total, nil
	}
	return 0, cur.Err()
}

// TopByReadCount returns up to limit books ordered by readCount. order is
// 1 for least read first, -1 for most read first.
func (r *BookRepository) TopByReadCount(ctx context.Context, order int, limit int64) ([]models.BookReadStat, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "readCount", Value: order}}).
		SetLimit(limit).
		SetProjection(bson.M{
			"title":      1,
			"author":     1,
			"readCount":  1,
			"coverImage": 1,
			"genre":      1,
			"rating":     1,
		})

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.BookReadStat
	for cur.Next(ctx) {
		var s models.BookReadStat
		if err := cur.Decode(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, cur.Err()
}

func (r *BookRepository) RecentlyAdded(ctx context.Context, limit int64) ([]models.RecentBook, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit).
		SetProjection(bson.M{
			"title":      1,
			"author":     1,
			"createdAt":  1,
			"coverImage": 1,
			"genre":      1,
		})

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.RecentBook
	for cur.Next(ctx) {
		var b models.RecentBook
		if err := cur.Decode(&b); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, cur.Err()
}

// AllByReadCount projects every book, most read first.
func (r *BookRepository) AllByReadCount(ctx context.Context) ([]models.BookReadCount, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "readCount", Value: -1}}).
		SetProjection(bson.M{"title": 1, "author": 1, "readCount": 1})

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.BookReadCount
	for cur.Next(ctx) {
		var b models.BookReadCount
		if err := cur.Decode(&b); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, cur.Err()
}

// GenreStats groups the catalog per genre, busiest genres first.
func (r *BookRepository) GenreStats(ctx context.Context) ([]models.GenreStat, error) {
	pipeline := bson.A{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$genre"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "totalReads", Value: bson.D{{Key: "$sum", Value: "$readCount"}}},
			{Key: "avgRating", Value: bson.D{{Key: "$avg", Value: "$rating"}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "totalReads", Value: -1}}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.GenreStat
	for cur.Next(ctx) {
		var g models.GenreStat
		if err := cur.Decode(&g); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, cur.Err()
}
