package testkit

import (
	"context"
	"encoding/json"
	"os"
	"sync"
	"testing"

	"team-scheduler/core/database"

	"github.com/jmoiron/sqlx"
)

// Cache is a map-backed cache.Cache that round-trips values through JSON
// like the Redis implementation.
type Cache struct {
	mu      sync.Mutex
	data    map[string][]byte
	Err     error
	Deleted []string
}

func NewCache() *Cache {
	return &Cache{data: map[string][]byte{}}
}

func (c *Cache) Get(ctx context.Context, key string, dest any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Err != nil {
		return false, c.Err
	}
	raw, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *Cache) Set(ctx context.Context, key string, value any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Err != nil {
		return c.Err
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = raw
	return nil
}

func (c *Cache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Deleted = append(c.Deleted, key)
	if c.Err != nil {
		return c.Err
	}
	delete(c.data, key)
	return nil
}

func (c *Cache) Has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.data[key]
	return ok
}

type WarmJob struct {
	MemberID int64
	Month    string
}

// Jobs records enqueued warm jobs instead of sending them.
type Jobs struct {
	mu   sync.Mutex
	Warm []WarmJob
	Err  error
}

func (j *Jobs) EnqueueWarmMonth(ctx context.Context, memberID int64, month string) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.Err != nil {
		return j.Err
	}
	j.Warm = append(j.Warm, WarmJob{MemberID: memberID, Month: month})
	return nil
}

type Object struct {
	ContentType string
	Body        []byte
}

// Uploader keeps uploaded objects in memory.
type Uploader struct {
	mu      sync.Mutex
	Objects map[string]Object
	Err     error
}

func NewUploader() *Uploader {
	return &Uploader{Objects: map[string]Object{}}
}

func (u *Uploader) Put(ctx context.Context, key, contentType string, body []byte) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.Err != nil {
		return u.Err
	}
	u.Objects[key] = Object{ContentType: contentType, Body: body}
	return nil
}

// OpenTestDB connects to TEST_DATABASE_DSN, applies the schema and empties
// the appointment and task tables. The test is skipped when no database is
// reachable.
func OpenTestDB(t *testing.T) *database.Database {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set")
	}
	conn, err := sqlx.Open("postgres", dsn)
	if err != nil {
		t.Skipf("Postgres not available: %v", err)
	}
	db := database.New(conn)
	ctx := context.Background()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		t.Skipf("Postgres not available: %v", err)
	}
	if err := database.Migrate(ctx, db); err != nil {
		_ = db.Close()
		t.Fatalf("migrate: %v", err)
	}
	if err := db.ExecContext(ctx, `TRUNCATE appointments, tasks`); err != nil {
		_ = db.Close()
		t.Fatalf("truncate: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}
