package database

import (
	"context"
	"time"

	"github.com/pyoushmadan10/chatify/internal/config"
	"github.com/surrealdb/surrealdb.go"
)

// Client is a type-safe SurrealDB client for records of type T.
type Client[T any] interface {
	// Select retrieves a record by its full ID (e.g., "user:123").
	// Returns ErrNotFound if no record exists with the given ID.
	Select(ctx context.Context, id string) (*T, error)

	// Merge merges data into an existing record and returns the result.
	Merge(ctx context.Context, id string, data map[string]any) (*T, error)

	// Query executes a raw query and returns multiple results.
	Query(ctx context.Context, query string, params map[string]any) ([]T, error)

	// QueryOne executes a raw query and returns a single result.
	// Returns (nil, nil) if no results are found.
	QueryOne(ctx context.Context, query string, params map[string]any) (*T, error)
}

type client[T any] struct {
	db             *surrealdb.DB
	queryTimeout   time.Duration
	executeTimeout time.Duration
}

// NewClient creates a new type-safe database client.
func NewClient[T any](db *surrealdb.DB, cfg config.Provider) (Client[T], error) {
	if db == nil {
		return nil, NewDBError(ErrInvalidInput, "db cannot be nil")
	}
	if cfg.GetDBQueryTimeout() <= 0 {
		return nil, NewDBError(ErrInvalidInput, "DB_QUERY_TIMEOUT must be a positive duration")
	}
	if cfg.GetDBExecuteTimeout() <= 0 {
		return nil, NewDBError(ErrInvalidInput, "DB_EXECUTE_TIMEOUT must be a positive duration")
	}

	return &client[T]{
		db:             db,
		queryTimeout:   cfg.GetDBQueryTimeout(),
		executeTimeout: cfg.GetDBExecuteTimeout(),
	}, nil
}

func (c *client[T]) Query(ctx context.Context, query string, params map[string]any) ([]T, error) {
	ctx, cancel := bounded(ctx, queryTimeoutKey, c.queryTimeout)
	defer cancel()
	return Query[T](ctx, c.db, query, params)
}

func (c *client[T]) QueryOne(ctx context.Context, query string, params map[string]any) (*T, error) {
	ctx, cancel := bounded(ctx, queryTimeoutKey, c.queryTimeout)
	defer cancel()
	return QueryOne[T](ctx, c.db, query, params)
}

func (c *client[T]) Select(ctx context.Context, id string) (*T, error) {
	if id == "" {
		return nil, NewDBError(ErrInvalidInput, "id cannot be empty")
	}

	result, err := c.QueryOne(ctx, "SELECT * FROM type::thing($id)", map[string]any{"id": id})
	if err != nil {
		return nil, WrapError(err, "select operation failed")
	}
	if result == nil {
		return nil, NewDBError(ErrNotFound, "record "+id)
	}
	return result, nil
}

func (c *client[T]) Merge(ctx context.Context, id string, data map[string]any) (*T, error) {
	if id == "" {
		return nil, NewDBError(ErrInvalidInput, "id cannot be empty")
	}
	if len(data) == 0 {
		return nil, NewDBError(ErrInvalidInput, "data cannot be empty")
	}

	ctx, cancel := bounded(ctx, executeTimeoutKey, c.executeTimeout)
	defer cancel()

	result, err := QueryOne[T](ctx, c.db, "UPDATE type::thing($id) MERGE $data", map[string]any{"id": id, "data": data})
	if err != nil {
		return nil, WrapError(err, "update operation failed")
	}
	if result == nil {
		return nil, NewDBError(ErrNotFound, "record "+id)
	}
	return result, nil
}
