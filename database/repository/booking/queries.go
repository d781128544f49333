package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"trailhead/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// SumOverlapping aggregates the total booked quantity for a service on a
// given date across bookings whose half-open interval overlaps [start, end).
// Touching endpoints (existing end == candidate start) do not overlap.
func (r *MongoBookingRepo) SumOverlapping(ctx context.Context, serviceID, date string, start, end int) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"service_id": serviceID,
			"date":       date,
			"status":     bson.M{"$in": models.ActiveBookingStatuses},
			"start":      bson.M{"$lt": end},
			"end":        bson.M{"$gt": start},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$quantity"},
		}}},
	}
	return r.runSum(ctx, pipeline)
}

// SumAtStart aggregates the total booked quantity for bookings with the
// exact same start minute (discrete-slot counting).
func (r *MongoBookingRepo) SumAtStart(ctx context.Context, serviceID, date string, start int) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"service_id": serviceID,
			"date":       date,
			"status":     bson.M{"$in": models.ActiveBookingStatuses},
			"start":      start,
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$quantity"},
		}}},
	}
	return r.runSum(ctx, pipeline)
}

func (r *MongoBookingRepo) runSum(ctx context.Context, pipeline mongo.Pipeline) (int, error) {
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("aggregation error: %w", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total int `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, fmt.Errorf("error decoding aggregation result: %w", err)
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}
