package bookingRepo

import (
	"context"
	"fmt"

	"trailhead/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// InsertWithCapacityCheck inserts the booking and re-sums quantity against
// committed state inside one transaction. If the sum (including the new row)
// exceeds maxCapacity the transaction aborts with ErrCapacityExceeded. This
// is the authoritative guard behind the advisory pre-check: two racing
// inserts cannot both commit past capacity.
func (r *MongoBookingRepo) InsertWithCapacityCheck(ctx context.Context, booking *models.Booking, maxCapacity int, exactStart bool) error {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		if _, err := r.coll.InsertOne(sc, booking); err != nil {
			return fmt.Errorf("insert booking failed: %w", err)
		}

		match := bson.M{
			"service_id": booking.ServiceID,
			"date":       booking.Date,
			"status":     bson.M{"$in": models.ActiveBookingStatuses},
		}
		if exactStart {
			match["start"] = booking.Start
		} else {
			match["start"] = bson.M{"$lt": booking.End}
			match["end"] = bson.M{"$gt": booking.Start}
		}

		pipeline := mongo.Pipeline{
			{{Key: "$match", Value: match}},
			{{Key: "$group", Value: bson.M{
				"_id":   nil,
				"total": bson.M{"$sum": "$quantity"},
			}}},
		}
		cursor, err := r.coll.Aggregate(sc, pipeline)
		if err != nil {
			return fmt.Errorf("capacity aggregation failed: %w", err)
		}
		defer cursor.Close(sc)

		var results []struct {
			Total int `bson:"total"`
		}
		if err := cursor.All(sc, &results); err != nil {
			return fmt.Errorf("error decoding capacity aggregation: %w", err)
		}
		total := 0
		if len(results) > 0 {
			total = results[0].Total
		}
		if total > maxCapacity {
			return ErrCapacityExceeded
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return err
	}

	return nil
}
