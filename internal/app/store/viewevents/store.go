// internal/app/store/viewevents/store.go
package viewevents

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Event records one lesson view.
type Event struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
	Day       int                `bson:"day" json:"day"`

	// Anonymous session identity; no user accounts exist.
	VisitorID string `bson:"visitor_id,omitempty" json:"visitor_id,omitempty"`

	// Request context
	IP        string `bson:"ip" json:"ip"`
	UserAgent string `bson:"user_agent,omitempty" json:"user_agent,omitempty"`
}

// DayCount is the aggregated view count for one day.
type DayCount struct {
	Day   int   `bson:"_id" json:"day"`
	Views int64 `bson:"views" json:"views"`
}

// Store manages lesson view-event records.
type Store struct {
	c *mongo.Collection
}

// New creates a new view-event Store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("view_events")}
}

// EnsureIndexes creates necessary indexes for efficient querying.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		// Most recent events first
		{Keys: bson.D{{Key: "timestamp", Value: -1}}},
		// Per-day aggregation and filtering
		{Keys: bson.D{{Key: "day", Value: 1}, {Key: "timestamp", Value: -1}}},
	}
	if _, err := s.c.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("create view_events indexes: %w", err)
	}
	return nil
}

// Log inserts a view event. The timestamp is set here if the caller left
// it zero.
func (s *Store) Log(ctx context.Context, ev Event) error {
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now().UTC()
	}
	if _, err := s.c.InsertOne(ctx, ev); err != nil {
		return fmt.Errorf("insert view event: %w", err)
	}
	return nil
}

// CountsByDay returns total view counts grouped by day, ascending by day.
func (s *Store) CountsByDay(ctx context.Context) ([]DayCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$day"},
			{Key: "views", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}

	cur, err := s.c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate view counts: %w", err)
	}
	defer cur.Close(ctx)

	var counts []DayCount
	if err := cur.All(ctx, &counts); err != nil {
		return nil, fmt.Errorf("decode view counts: %w", err)
	}
	return counts, nil
}

// Recent returns the most recent events, newest first. It backs the
// recent-views section of the stats endpoint.
func (s *Store) Recent(ctx context.Context, limit int64) ([]Event, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)

	cur, err := s.c.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find recent view events: %w", err)
	}
	defer cur.Close(ctx)

	var events []Event
	if err := cur.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("decode view events: %w", err)
	}
	return events, nil
}
