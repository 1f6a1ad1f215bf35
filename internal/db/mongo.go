package db

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/projectpulse/project-api/config"
)

// ErrClosed is returned when the handle is used after Close.
var ErrClosed = fmt.Errorf("mongo store handle is closed")

// Mongo is the single long-lived store handle for the process. It is opened
// once at startup and passed by reference into the repository layer.
type Mongo struct {
	client   *mongo.Client
	database string

	mu     sync.RWMutex
	closed bool
}

// Open connects to MongoDB and verifies connectivity with a ping.
// Fail fast: a connect or ping error aborts startup.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*Mongo, error) {
	if cfg.URI == "" {
		return nil, fmt.Errorf("MONGO_URI is required")
	}
	if cfg.Name == "" {
		return nil, fmt.Errorf("MONGO_DB is required")
	}

	connectTO := time.Duration(cfg.ConnectTimeoutSec) * time.Second
	if connectTO <= 0 {
		connectTO = 5 * time.Second
	}
	operationTO := time.Duration(cfg.OperationTimeoutSec) * time.Second
	if operationTO <= 0 {
		operationTO = 5 * time.Second
	}

	cctx, cancel := context.WithTimeout(ctx, connectTO)
	defer cancel()

	opts := options.Client().ApplyURI(cfg.URI).SetTimeout(operationTO)
	client, err := mongo.Connect(cctx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	pctx, pcancel := context.WithTimeout(ctx, connectTO)
	defer pcancel()
	if err := client.Ping(pctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	return &Mongo{client: client, database: cfg.Name}, nil
}

// Database returns the configured database.
func (m *Mongo) Database() *mongo.Database {
	return m.client.Database(m.database)
}

// Collection returns a collection from the configured database.
func (m *Mongo) Collection(name string) *mongo.Collection {
	return m.Database().Collection(name)
}

// Ping reports store reachability, used by the health endpoint.
func (m *Mongo) Ping(ctx context.Context) error {
	m.mu.RLock()
	closed := m.closed
	m.mu.RUnlock()
	if closed {
		return ErrClosed
	}

	pctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return m.client.Ping(pctx, readpref.Primary())
}

// Close disconnects the client. Safe to call more than once.
func (m *Mongo) Close(ctx context.Context) error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil
	}
	m.closed = true
	m.mu.Unlock()

	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := m.client.Disconnect(cctx); err != nil {
		return fmt.Errorf("mongo disconnect: %w", err)
	}
	return nil
}
