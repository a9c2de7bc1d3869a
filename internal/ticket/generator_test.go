package ticket

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/spec-kit/complaint-portal/pkg/util"
)

type stubSequence struct {
	next   int64
	window string
	err    error
}

func (s *stubSequence) Next(_ context.Context, window string) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	s.window = window
	s.next++
	return s.next, nil
}

func fixedClock(year int, month time.Month) func() time.Time {
	return func() time.Time {
		return time.Date(year, month, 15, 12, 0, 0, 0, time.UTC)
	}
}

func TestGeneratorFormat(t *testing.T) {
	seq := &stubSequence{}
	gen := NewGenerator("CMP", seq).WithClock(fixedClock(2025, time.March))

	id, err := gen.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "CMP250300001", id)
	assert.Equal(t, "2503", seq.window)
}

func TestGeneratorSequenceIsNonDecreasingWithinMonth(t *testing.T) {
	gen := NewGenerator("CMP", &stubSequence{}).WithClock(fixedClock(2025, time.July))

	seen := map[string]bool{}
	prev := ""
	for i := 0; i < 10; i++ {
		id, err := gen.Next(context.Background())
		require.NoError(t, err)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
		if prev != "" {
			assert.Greater(t, id, prev)
		}
		prev = id
	}
}

func TestGeneratorZeroPadding(t *testing.T) {
	seq := &stubSequence{next: 41}
	gen := NewGenerator("CMP", seq).WithClock(fixedClock(2026, time.January))

	id, err := gen.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "CMP260100042", id)
	assert.Regexp(t, `^CMP\d{4}\d{5}$`, id)
}

func TestGeneratorExhaustedSequence(t *testing.T) {
	seq := &stubSequence{next: maxSequence}
	gen := NewGenerator("CMP", seq).WithClock(fixedClock(2025, time.December))

	_, err := gen.Next(context.Background())
	require.Error(t, err)
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "IDENTIFIER_EXHAUSTED", domainErr.Code)
	assert.Equal(t, "2512", domainErr.Details["window"])
}

func TestGeneratorLastIDBeforeExhaustion(t *testing.T) {
	seq := &stubSequence{next: maxSequence - 1}
	gen := NewGenerator("CMP", seq).WithClock(fixedClock(2025, time.December))

	id, err := gen.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("CMP2512%05d", maxSequence), id)
}

func TestGeneratorSequenceSourceError(t *testing.T) {
	seq := &stubSequence{err: errors.New("redis down")}
	gen := NewGenerator("CMP", seq)

	_, err := gen.Next(context.Background())
	assert.Error(t, err)
}

type stubCounter struct {
	count int64
}

func (s *stubCounter) Count(context.Context) (int64, error) {
	return s.count, nil
}

func TestCountSequenceDerivesFromTotal(t *testing.T) {
	seq := NewCountSequence(&stubCounter{count: 7})
	next, err := seq.Next(context.Background(), "2503")
	require.NoError(t, err)
	assert.Equal(t, int64(8), next)
}

func TestGeneratorDefaultsPrefix(t *testing.T) {
	gen := NewGenerator("", &stubSequence{}).WithClock(fixedClock(2025, time.March))
	id, err := gen.Next(context.Background())
	require.NoError(t, err)
	assert.Regexp(t, `^CMP`, id)
}
