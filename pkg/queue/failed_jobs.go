package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

// failedJobDocument is the shape persisted to the failed_jobs collection.
type failedJobDocument struct {
	JobType  string    `bson:"job_type"`
	Payload  string    `bson:"payload"`
	Error    string    `bson:"error"`
	Attempts int       `bson:"attempts"`
	FailedAt time.Time `bson:"failed_at"`
}

// failedJobCol is the optional Mongo backend for persisting failed jobs.
// Set via UseMongo(); nil means in-memory only.
var failedJobCol *mongo.Collection

// UseMongo configures the queue to persist exhausted jobs to MongoDB.
// Call once at boot, after the database connection is established:
//
//	queue.UseMongo(database.DB().Collection("failed_jobs"))
func UseMongo(col *mongo.Collection) {
	failedJobCol = col
}

// persistFailed records a job that exhausted its retries, in memory and
// (when configured) in MongoDB.
func (m *Manager) persistFailed(job Job, typeName string, lastErr error, attempts int) {
	m.mu.Lock()
	m.failed = append(m.failed, FailedJob{
		Job: job, Err: lastErr, FailedAt: time.Now(), Attempts: attempts,
	})
	m.mu.Unlock()

	if failedJobCol == nil {
		return
	}

	payload, err := json.Marshal(job)
	if err != nil {
		payload = []byte(fmt.Sprintf(`{"error": "could not marshal: %v"}`, err))
	}

	doc := failedJobDocument{
		JobType:  typeName,
		Payload:  string(payload),
		Error:    lastErr.Error(),
		Attempts: attempts,
		FailedAt: time.Now(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := failedJobCol.InsertOne(ctx, doc); err != nil {
		// Non-fatal, the in-memory slice still has it.
		fmt.Printf("queue: failed to persist failed job %s: %v\n", typeName, err)
	}
}
