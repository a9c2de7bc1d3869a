package dto

import (
	"time"

	"github.com/spec-kit/complaint-portal/internal/domain"
)

// CategoryRequest payload for create/update.
type CategoryRequest struct {
	Name            domain.ComplaintCategory `json:"name"`
	Description     *string                  `json:"description"`
	AgencyResponsible string                 `json:"agency_responsible"`
	ContactEmail    *string                  `json:"contact_email"`
	ContactPhone    *string                  `json:"contact_phone"`
	Subcategories   []string                 `json:"subcategories"`
	ResponseHours   int                      `json:"response_hours"`
	ResolutionHours int                      `json:"resolution_hours"`
	Active          *bool                    `json:"active"`
}

// CategoryResponse view.
type CategoryResponse struct {
	ID              string                   `json:"id"`
	Name            domain.ComplaintCategory `json:"name"`
	Description     *string                  `json:"description,omitempty"`
	AgencyResponsible string                 `json:"agency_responsible"`
	ContactEmail    *string                  `json:"contact_email,omitempty"`
	ContactPhone    *string                  `json:"contact_phone,omitempty"`
	Subcategories   []string                 `json:"subcategories"`
	ResponseHours   int                      `json:"response_hours"`
	ResolutionHours int                      `json:"resolution_hours"`
	Active          bool                     `json:"active"`
	CreatedAt       time.Time                `json:"created_at"`
}

// AgencyRequest payload for create/update.
type AgencyRequest struct {
	Name         string   `json:"name"`
	Categories   []string `json:"categories"`
	ContactEmail string   `json:"contact_email"`
}

// AgencyResponse view.
type AgencyResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Categories   []string  `json:"categories"`
	ContactEmail string    `json:"contact_email"`
	CreatedAt    time.Time `json:"created_at"`
}

// DashboardStatsResponse aggregates admin dashboard data.
type DashboardStatsResponse struct {
	StatusStats   map[string]int64   `json:"status_stats"`
	CategoryStats map[string]int64   `json:"category_stats"`
	PriorityStats map[string]int64   `json:"priority_stats"`
	Recent        []ComplaintSummary `json:"recent_complaints"`
	CitizenCount  int64              `json:"citizen_count"`
	DailyTrend    []DailyTrendEntry  `json:"daily_trend"`
}

// DailyTrendEntry is one day of the submission trend.
type DailyTrendEntry struct {
	Day   string `json:"day"`
	Count int64  `json:"count"`
}
