package ticket

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/spec-kit/complaint-portal/pkg/util"
)

// maxSequence is the largest value representable in the 5-digit slot.
const maxSequence = 99999

// SequenceSource allocates the next sequence number for a year-month window.
type SequenceSource interface {
	Next(ctx context.Context, window string) (int64, error)
}

// Generator mints human-readable ticket identifiers of the form
// <prefix><YY><MM><NNNNN>. Identifiers are assigned exactly once at
// complaint creation and never regenerated.
type Generator struct {
	prefix string
	seq    SequenceSource
	now    func() time.Time
}

// NewGenerator constructs a generator over the given sequence source.
func NewGenerator(prefix string, seq SequenceSource) *Generator {
	if prefix == "" {
		prefix = "CMP"
	}
	return &Generator{prefix: prefix, seq: seq, now: time.Now}
}

// WithClock overrides the time source, for tests.
func (g *Generator) WithClock(now func() time.Time) *Generator {
	g.now = now
	return g
}

// Next produces the identifier for the current year-month window.
// Fails with IDENTIFIER_EXHAUSTED once the 5-digit sequence overflows,
// rather than silently producing a colliding ID.
func (g *Generator) Next(ctx context.Context) (string, error) {
	window := g.now().Format("0601")
	seq, err := g.seq.Next(ctx, window)
	if err != nil {
		return "", err
	}
	if seq > maxSequence {
		return "", apperrors.NewIdentifierExhausted(window)
	}
	return fmt.Sprintf("%s%s%05d", g.prefix, window, seq), nil
}

// redisSequence allocates sequence numbers via an atomic Redis INCR on a
// per-window key, making the read-modify-write race-free across instances.
type redisSequence struct {
	client *redis.Client
}

// NewRedisSequence returns a Redis-backed sequence source.
func NewRedisSequence(client *redis.Client) SequenceSource {
	return &redisSequence{client: client}
}

func (s *redisSequence) Next(ctx context.Context, window string) (int64, error) {
	key := "complaint:seq:" + window
	seq, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if seq == 1 {
		// keys for past windows are never read again
		_ = s.client.Expire(ctx, key, 40*24*time.Hour).Err()
	}
	return seq, nil
}

// ComplaintCounter reports the total number of existing complaints.
type ComplaintCounter interface {
	Count(ctx context.Context) (int64, error)
}

// countSequence derives the next sequence from the total complaint count.
// Two concurrent submissions can read the same count and collide; it is
// the fallback when no Redis counter is available.
type countSequence struct {
	counter ComplaintCounter
}

// NewCountSequence returns a count-query sequence source.
func NewCountSequence(counter ComplaintCounter) SequenceSource {
	return &countSequence{counter: counter}
}

func (s *countSequence) Next(ctx context.Context, _ string) (int64, error) {
	count, err := s.counter.Count(ctx)
	if err != nil {
		return 0, err
	}
	return count + 1, nil
}
