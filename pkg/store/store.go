// Package store persists built topology graphs as the planning app's save
// slots.
//
// Stored graphs are immutable snapshots: a record is written once when the
// user saves a built topology and only ever read or deleted afterwards.
// Interactive editing happens downstream and is out of scope here.
//
// Two implementations exist: MemoryStore for tests and single-process
// development, and MongoStore for deployments.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/planvista/topograph/pkg/graph"
)

// ErrNotFound is returned when a requested graph record does not exist.
var ErrNotFound = errors.New("not found")

// Record is one saved topology graph.
type Record struct {
	ID         string            `json:"id" bson:"_id"`
	Name       string            `json:"name" bson:"name"`
	CreatedAt  time.Time         `json:"createdAt" bson:"created_at"`
	Graph      graph.Graph       `json:"graph" bson:"graph"`
	Collisions []graph.Collision `json:"collisions,omitempty" bson:"collisions,omitempty"`
}

// Store persists graph records.
type Store interface {
	// Save writes a new record and returns it with its generated id.
	Save(ctx context.Context, name string, g graph.Graph, collisions []graph.Collision) (Record, error)

	// Get returns the record with the given id, or ErrNotFound.
	Get(ctx context.Context, id string) (Record, error)

	// List returns all records, newest first.
	List(ctx context.Context) ([]Record, error)

	// Delete removes the record with the given id, or returns ErrNotFound.
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close(ctx context.Context) error
}
