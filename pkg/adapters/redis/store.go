package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/aretw0/algotrace/pkg/domain"
)

// DefaultPrefix namespaces every key written by the store.
const DefaultPrefix = "algotrace:history:"

// Store implements ports.HistoryStore using Redis.
//
// Each record is a JSON string. Executions are indexed by a global sorted set
// and one sorted set per algorithm. Analyses and queries have one index each.
// Scores combine the timestamp in milliseconds with a write sequence, so
// records sharing a millisecond list most recently recorded first. With a TTL,
// every write prunes expired members from the indexes it touches and extends
// their expiry, so an index nobody writes to expires with its records.
type Store struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
	now    func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithTTL sets the expiration for records. Zero keeps them forever.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// WithClock overrides the clock used to prune expired index entries.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New creates a new Redis store with options.
func New(address, password string, db int, opts ...Option) *Store {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromURL creates a store from a redis:// URL.
func NewFromURL(url string, opts ...Option) (*Store, error) {
	options, err := backend.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	return NewFromClient(backend.NewClient(options), opts...), nil
}

// NewFromClient creates a new Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: DefaultPrefix,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

func (s *Store) executionKey(id string) string {
	return s.prefix + "execution:" + id
}

func (s *Store) executionIndex(id domain.AlgorithmID) string {
	if id == "" {
		return s.prefix + "executions"
	}
	return s.prefix + "executions:" + string(id)
}

// seqSpan is the number of writes per millisecond that keep their order.
const seqSpan = 1000

// score reserves the next write sequence and folds it into the timestamp.
func (s *Store) score(ctx context.Context, ts time.Time) (float64, error) {
	seq, err := s.client.Incr(ctx, s.prefix+"seq").Result()
	if err != nil {
		return 0, fmt.Errorf("failed to reserve sequence: %w", err)
	}
	return float64(ts.UnixMilli())*seqSpan + float64(seq%seqSpan), nil
}

// index adds a member to a sorted set. With a TTL it also drops members older
// than the TTL and refreshes the set's own expiry.
func (s *Store) index(ctx context.Context, pipe backend.Pipeliner, key string, z backend.Z) {
	pipe.ZAdd(ctx, key, z)
	if s.ttl <= 0 {
		return
	}
	pipe.ZRemRangeByScore(ctx, key, "-inf", s.cutoff())
	pipe.Expire(ctx, key, s.ttl)
}

// cutoff is the exclusive lower score bound of live index members.
func (s *Store) cutoff() string {
	ms := float64(s.now().Add(-s.ttl).UnixMilli()) * seqSpan
	return "(" + strconv.FormatFloat(ms, 'f', 0, 64)
}

// RecordExecution stores the record and adds it to both indexes.
func (s *Store) RecordExecution(ctx context.Context, rec domain.ExecutionRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal execution: %w", err)
	}

	sc, err := s.score(ctx, rec.Timestamp)
	if err != nil {
		return err
	}
	z := backend.Z{Score: sc, Member: rec.ID}
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, s.executionKey(rec.ID), data, s.ttl)
	s.index(ctx, pipe, s.executionIndex(""), z)
	s.index(ctx, pipe, s.executionIndex(rec.AlgorithmType), z)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save execution to redis: %w", err)
	}
	return nil
}

// RecordAnalysis stores a complexity analysis.
func (s *Store) RecordAnalysis(ctx context.Context, rec domain.ComplexityRecord) error {
	return s.record(ctx, "analysis", rec.ID, rec.Timestamp, rec)
}

// RecordQuery stores an assistant exchange.
func (s *Store) RecordQuery(ctx context.Context, rec domain.AssistantRecord) error {
	return s.record(ctx, "query", rec.ID, rec.Timestamp, rec)
}

func (s *Store) record(ctx context.Context, kind, id string, ts time.Time, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", kind, err)
	}

	sc, err := s.score(ctx, ts)
	if err != nil {
		return err
	}
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, s.prefix+kind+":"+id, data, s.ttl)
	s.index(ctx, pipe, s.prefix+kind+"-index", backend.Z{Score: sc, Member: id})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save %s to redis: %w", kind, err)
	}
	return nil
}

// ListExecutions reads the newest ids from the index and loads their records.
// Index entries whose record expired are pruned lazily.
func (s *Store) ListExecutions(ctx context.Context, filter domain.HistoryFilter) ([]domain.ExecutionRecord, int, error) {
	filter, err := filter.Normalize()
	if err != nil {
		return nil, 0, err
	}
	index := s.executionIndex(filter.AlgorithmType)

	if err := s.prune(ctx, index); err != nil {
		return nil, 0, err
	}

	total, err := s.client.ZCard(ctx, index).Result()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count executions: %w", err)
	}

	ids, err := s.client.ZRevRange(ctx, index, 0, int64(filter.Limit-1)).Result()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list executions: %w", err)
	}
	if len(ids) == 0 {
		return []domain.ExecutionRecord{}, int(total), nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = s.executionKey(id)
	}
	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load executions: %w", err)
	}

	entries := make([]domain.ExecutionRecord, 0, len(values))
	var stale []any
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			// Expired between the prune and the read.
			stale = append(stale, ids[i])
			continue
		}
		var rec domain.ExecutionRecord
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			return nil, 0, fmt.Errorf("failed to unmarshal execution %s: %w", ids[i], err)
		}
		entries = append(entries, rec)
	}

	if len(stale) > 0 {
		if err := s.client.ZRem(ctx, index, stale...).Err(); err != nil {
			return nil, 0, fmt.Errorf("failed to drop expired executions: %w", err)
		}
		total -= int64(len(stale))
	}

	return entries, int(total), nil
}

// prune drops index entries older than the TTL. Without a TTL nothing expires.
func (s *Store) prune(ctx context.Context, index string) error {
	if s.ttl <= 0 {
		return nil
	}
	if err := s.client.ZRemRangeByScore(ctx, index, "-inf", s.cutoff()).Err(); err != nil {
		return fmt.Errorf("failed to prune expired executions: %w", err)
	}
	return nil
}

// GetExecution loads a single record.
func (s *Store) GetExecution(ctx context.Context, id string) (*domain.ExecutionRecord, error) {
	val, err := s.client.Get(ctx, s.executionKey(id)).Result()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return nil, domain.ErrExecutionNotFound
		}
		return nil, fmt.Errorf("failed to get from redis: %w", err)
	}

	var rec domain.ExecutionRecord
	if err := json.Unmarshal([]byte(val), &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal execution: %w", err)
	}
	return &rec, nil
}

// Close closes the redis client.
func (s *Store) Close() error {
	return s.client.Close()
}
