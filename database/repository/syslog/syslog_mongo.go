package syslogRepo

import (
	"context"
	"time"

	"trailhead/models"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/google/uuid"
)

// SystemLogRepository persists internal error records. Writes are
// best-effort: logging must never fail a request on its own.
type SystemLogRepository interface {
	Insert(ctx context.Context, entry *models.SystemLog) error
}

// MongoSystemLogRepo is the MongoDB-backed implementation.
type MongoSystemLogRepo struct {
	coll *mongo.Collection
}

func NewMongoSystemLogRepo(db *mongo.Database) *MongoSystemLogRepo {
	return &MongoSystemLogRepo{coll: db.Collection("system_logs")}
}

func (r *MongoSystemLogRepo) Insert(ctx context.Context, entry *models.SystemLog) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	_, err := r.coll.InsertOne(ctx, entry)
	return err
}
