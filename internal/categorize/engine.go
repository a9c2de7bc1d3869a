package categorize

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/complaint-portal/internal/domain"
)

// CategoryLookup resolves category configuration by name. A nil result with
// a nil error means no configuration exists for that category.
type CategoryLookup interface {
	LookupCategory(ctx context.Context, name domain.ComplaintCategory) (*domain.CategoryConfig, error)
}

// keywordTags maps description keywords to semantic tags.
var keywordTags = map[string][]string{
	"pothole":     {"infrastructure", "road", "damage"},
	"streetlight": {"infrastructure", "electricity", "night"},
	"garbage":     {"sanitation", "waste", "health"},
	"water leak":  {"utility", "water", "infrastructure"},
	"noise":       {"disturbance", "residential", "quality of life"},
	"park":        {"recreation", "public space", "maintenance"},
	"safety":      {"security", "emergency", "protection"},
	"sidewalk":    {"pedestrian", "accessibility", "infrastructure"},
}

var urgencyKeywords = []string{"danger", "emergency", "hazard", "urgent"}

var degradationKeywords = []string{"broken", "leaking", "damaged"}

// Engine enriches freshly submitted complaints with routing and signal
// metadata: responsible agency, tag set, and escalated priority.
type Engine struct {
	categories CategoryLookup
	logger     *zap.Logger
}

// NewEngine constructs the engine.
func NewEngine(categories CategoryLookup, logger *zap.Logger) *Engine {
	return &Engine{categories: categories, logger: logger}
}

// Enrich mutates the complaint in place. Enrichment is best-effort: lookup
// failures are logged and swallowed so that complaint creation never fails
// on this step. The complaint is always returned.
func (e *Engine) Enrich(ctx context.Context, complaint *domain.Complaint) *domain.Complaint {
	cfg, err := e.categories.LookupCategory(ctx, complaint.Category)
	if err != nil {
		e.logger.Error("category lookup failed; skipping enrichment",
			zap.String("category", string(complaint.Category)),
			zap.Error(err))
		return complaint
	}
	if cfg == nil {
		// unknown category is not an error; the complaint is still created
		return complaint
	}

	complaint.AssignedAgency = &cfg.AgencyResponsible

	description := strings.ToLower(complaint.Description)
	tags := make(map[string]struct{})

	// substring match on the whole description; every hit contributes
	for keyword, related := range keywordTags {
		if strings.Contains(description, keyword) {
			for _, tag := range related {
				tags[tag] = struct{}{}
			}
		}
	}

	tags[string(complaint.Category)] = struct{}{}
	if sub := matchSubcategory(description, cfg.Subcategories); sub != "" {
		tags[sub] = struct{}{}
	}

	complaint.Tags = sortedTags(tags)
	complaint.Priority = escalatePriority(description, complaint.Priority)
	return complaint
}

// matchSubcategory returns the first configured subcategory mentioned in the
// description, if any.
func matchSubcategory(description string, subcategories []string) string {
	for _, sub := range subcategories {
		if sub == "" {
			continue
		}
		if strings.Contains(description, strings.ToLower(sub)) {
			return sub
		}
	}
	return ""
}

// escalatePriority applies the keyword heuristic as an upgrade-only path:
// a caller-supplied priority higher than the keyword result is kept.
func escalatePriority(description string, current domain.ComplaintPriority) domain.ComplaintPriority {
	derived := current
	switch {
	case containsAny(description, urgencyKeywords):
		derived = domain.PriorityHigh
	case containsAny(description, degradationKeywords):
		derived = domain.PriorityMedium
	}
	if derived.Rank() > current.Rank() {
		return derived
	}
	return current
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

func sortedTags(set map[string]struct{}) []string {
	tags := make([]string, 0, len(set))
	for tag := range set {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
