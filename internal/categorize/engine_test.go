package categorize

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/complaint-portal/internal/domain"
)

type stubLookup struct {
	configs map[domain.ComplaintCategory]*domain.CategoryConfig
	err     error
}

func (s *stubLookup) LookupCategory(_ context.Context, name domain.ComplaintCategory) (*domain.CategoryConfig, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.configs[name], nil
}

func roadsLookup() *stubLookup {
	return &stubLookup{configs: map[domain.ComplaintCategory]*domain.CategoryConfig{
		domain.CategoryRoads: {
			Name:              domain.CategoryRoads,
			AgencyResponsible: "Public Works Department",
			Subcategories:     []string{"pavement", "signage"},
			Active:            true,
		},
	}}
}

func newComplaint(category domain.ComplaintCategory, description string, priority domain.ComplaintPriority) *domain.Complaint {
	return &domain.Complaint{
		Category:    category,
		Description: description,
		Priority:    priority,
		Tags:        []string{string(category)},
	}
}

func TestEnrichAssignsAgencyAndTags(t *testing.T) {
	engine := NewEngine(roadsLookup(), zap.NewNop())
	complaint := newComplaint(domain.CategoryRoads, "There is a broken pothole near the school", domain.PriorityLow)

	engine.Enrich(context.Background(), complaint)

	require.NotNil(t, complaint.AssignedAgency)
	assert.Equal(t, "Public Works Department", *complaint.AssignedAgency)
	assert.Subset(t, complaint.Tags, []string{"infrastructure", "road", "damage", "roads"})
}

func TestEnrichMultipleKeywordsUnionTags(t *testing.T) {
	engine := NewEngine(roadsLookup(), zap.NewNop())
	complaint := newComplaint(domain.CategoryRoads, "pothole next to a dark streetlight on the sidewalk", domain.PriorityMedium)

	engine.Enrich(context.Background(), complaint)

	assert.Subset(t, complaint.Tags, []string{
		"infrastructure", "road", "damage",
		"electricity", "night",
		"pedestrian", "accessibility",
		"roads",
	})
}

func TestEnrichTagsAreDeduplicated(t *testing.T) {
	engine := NewEngine(roadsLookup(), zap.NewNop())
	// pothole and sidewalk both contribute "infrastructure"
	complaint := newComplaint(domain.CategoryRoads, "pothole on the sidewalk", domain.PriorityMedium)

	engine.Enrich(context.Background(), complaint)

	seen := map[string]int{}
	for _, tag := range complaint.Tags {
		seen[tag]++
	}
	for tag, count := range seen {
		assert.Equal(t, 1, count, "tag %q appears %d times", tag, count)
	}
}

func TestEnrichAddsSubcategoryTag(t *testing.T) {
	engine := NewEngine(roadsLookup(), zap.NewNop())
	complaint := newComplaint(domain.CategoryRoads, "the pavement has been crumbling for weeks", domain.PriorityMedium)

	engine.Enrich(context.Background(), complaint)

	assert.Contains(t, complaint.Tags, "pavement")
}

func TestEnrichUrgencyKeywordEscalatesToHigh(t *testing.T) {
	engine := NewEngine(roadsLookup(), zap.NewNop())
	for _, keyword := range []string{"danger", "emergency", "hazard", "urgent"} {
		complaint := newComplaint(domain.CategoryRoads, "this is an "+keyword+" situation here", domain.PriorityLow)
		engine.Enrich(context.Background(), complaint)
		assert.Equal(t, domain.PriorityHigh, complaint.Priority, "keyword %q", keyword)
	}
}

func TestEnrichDegradationKeywordUpgradesToMedium(t *testing.T) {
	engine := NewEngine(roadsLookup(), zap.NewNop())
	complaint := newComplaint(domain.CategoryRoads, "the fence is damaged along the road", domain.PriorityLow)

	engine.Enrich(context.Background(), complaint)

	assert.Equal(t, domain.PriorityMedium, complaint.Priority)
}

func TestEnrichNeverDowngradesPriority(t *testing.T) {
	engine := NewEngine(roadsLookup(), zap.NewNop())

	// degradation keyword alone must not pull Urgent down to Medium
	complaint := newComplaint(domain.CategoryRoads, "the guard rail is damaged", domain.PriorityUrgent)
	engine.Enrich(context.Background(), complaint)
	assert.Equal(t, domain.PriorityUrgent, complaint.Priority)

	// urgency keyword must not pull Urgent down to High either
	complaint = newComplaint(domain.CategoryRoads, "emergency at the crossing", domain.PriorityUrgent)
	engine.Enrich(context.Background(), complaint)
	assert.Equal(t, domain.PriorityUrgent, complaint.Priority)
}

func TestEnrichUrgencyWinsOverDegradation(t *testing.T) {
	engine := NewEngine(roadsLookup(), zap.NewNop())
	complaint := newComplaint(domain.CategoryRoads, "broken pipe is a hazard", domain.PriorityLow)

	engine.Enrich(context.Background(), complaint)

	assert.Equal(t, domain.PriorityHigh, complaint.Priority)
}

func TestEnrichUnknownCategorySkipsEnrichment(t *testing.T) {
	engine := NewEngine(&stubLookup{configs: map[domain.ComplaintCategory]*domain.CategoryConfig{}}, zap.NewNop())
	complaint := newComplaint(domain.CategoryOthers, "some urgent pothole problem", domain.PriorityLow)

	result := engine.Enrich(context.Background(), complaint)

	require.NotNil(t, result)
	assert.Nil(t, result.AssignedAgency)
	assert.Equal(t, domain.PriorityLow, result.Priority)
	assert.Equal(t, []string{"others"}, result.Tags)
}

func TestEnrichLookupErrorIsSwallowed(t *testing.T) {
	engine := NewEngine(&stubLookup{err: errors.New("db unavailable")}, zap.NewNop())
	complaint := newComplaint(domain.CategoryRoads, "broken streetlight", domain.PriorityLow)

	result := engine.Enrich(context.Background(), complaint)

	require.NotNil(t, result)
	assert.Nil(t, result.AssignedAgency)
	assert.Equal(t, domain.PriorityLow, result.Priority)
}

func TestEnrichMatchingIsCaseInsensitive(t *testing.T) {
	engine := NewEngine(roadsLookup(), zap.NewNop())
	complaint := newComplaint(domain.CategoryRoads, "HUGE POTHOLE, very DANGEROUS", domain.PriorityLow)

	engine.Enrich(context.Background(), complaint)

	assert.Contains(t, complaint.Tags, "road")
	assert.Equal(t, domain.PriorityHigh, complaint.Priority)
}

func TestEnrichKeepsCategoryTag(t *testing.T) {
	engine := NewEngine(roadsLookup(), zap.NewNop())
	complaint := newComplaint(domain.CategoryRoads, "nothing matches any keyword list here ok", domain.PriorityMedium)

	engine.Enrich(context.Background(), complaint)

	assert.Contains(t, complaint.Tags, "roads")
}
