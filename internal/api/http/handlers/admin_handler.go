package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/complaint-portal/internal/api/dto"
	"github.com/spec-kit/complaint-portal/internal/domain"
	"github.com/spec-kit/complaint-portal/internal/service"
	apperrors "github.com/spec-kit/complaint-portal/pkg/util"
)

// AdminHandler manages admin-only endpoints: dashboard stats, category and
// agency administration. Route-level role guards apply.
type AdminHandler struct {
	complaints *service.ComplaintService
	categories *service.CategoryService
	agencies   *service.AgencyService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(complaints *service.ComplaintService, categories *service.CategoryService, agencies *service.AgencyService) *AdminHandler {
	return &AdminHandler{complaints: complaints, categories: categories, agencies: agencies}
}

// DashboardStats GET /admin/stats.
func (h *AdminHandler) DashboardStats(c *fiber.Ctx) error {
	stats, err := h.complaints.GetDashboardStats(c.Context())
	if err != nil {
		return err
	}
	recent := make([]dto.ComplaintSummary, 0, len(stats.Recent))
	for i := range stats.Recent {
		recent = append(recent, complaintSummary(&stats.Recent[i]))
	}
	trend := make([]dto.DailyTrendEntry, 0, len(stats.DailyTrend))
	for _, entry := range stats.DailyTrend {
		trend = append(trend, dto.DailyTrendEntry{
			Day:   entry.Day.Format("2006-01-02"),
			Count: entry.Count,
		})
	}
	return c.JSON(fiber.Map{"data": dto.DashboardStatsResponse{
		StatusStats:   stats.ByStatus,
		CategoryStats: stats.ByCategory,
		PriorityStats: stats.ByPriority,
		Recent:        recent,
		CitizenCount:  stats.Citizens,
		DailyTrend:    trend,
	}})
}

// CreateCategory POST /admin/categories.
func (h *AdminHandler) CreateCategory(c *fiber.Ctx) error {
	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	category, err := h.categories.CreateCategory(c.Context(), categoryInput(req))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": categoryResponse(category)})
}

// UpdateCategory PUT /admin/categories/:name.
func (h *AdminHandler) UpdateCategory(c *fiber.Ctx) error {
	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	name := domain.ComplaintCategory(c.Params("name"))
	category, err := h.categories.UpdateCategory(c.Context(), name, categoryInput(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": categoryResponse(category)})
}

// ListCategories GET /admin/categories.
func (h *AdminHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.categories.ListCategories(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.CategoryResponse, 0, len(categories))
	for i := range categories {
		items = append(items, categoryResponse(&categories[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// CreateAgency POST /admin/agencies.
func (h *AdminHandler) CreateAgency(c *fiber.Ctx) error {
	var req dto.AgencyRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	agency, err := h.agencies.CreateAgency(c.Context(), service.AgencyInput{
		Name:         req.Name,
		Categories:   req.Categories,
		ContactEmail: req.ContactEmail,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": agencyResponse(agency)})
}

// UpdateAgency PUT /admin/agencies/:id.
func (h *AdminHandler) UpdateAgency(c *fiber.Ctx) error {
	var req dto.AgencyRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	agency, err := h.agencies.UpdateAgency(c.Context(), c.Params("id"), service.AgencyInput{
		Name:         req.Name,
		Categories:   req.Categories,
		ContactEmail: req.ContactEmail,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": agencyResponse(agency)})
}

// DeleteAgency DELETE /admin/agencies/:id.
func (h *AdminHandler) DeleteAgency(c *fiber.Ctx) error {
	if err := h.agencies.DeleteAgency(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetAgency GET /admin/agencies/:id.
func (h *AdminHandler) GetAgency(c *fiber.Ctx) error {
	agency, err := h.agencies.GetAgency(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": agencyResponse(agency)})
}

// ListAgencies GET /admin/agencies.
func (h *AdminHandler) ListAgencies(c *fiber.Ctx) error {
	agencies, err := h.agencies.ListAgencies(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.AgencyResponse, 0, len(agencies))
	for i := range agencies {
		items = append(items, agencyResponse(&agencies[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

func categoryInput(req dto.CategoryRequest) service.CategoryInput {
	return service.CategoryInput{
		Name:              req.Name,
		Description:       req.Description,
		AgencyResponsible: req.AgencyResponsible,
		ContactEmail:      req.ContactEmail,
		ContactPhone:      req.ContactPhone,
		Subcategories:     req.Subcategories,
		ResponseHours:     req.ResponseHours,
		ResolutionHours:   req.ResolutionHours,
		Active:            req.Active,
	}
}

func categoryResponse(category *domain.CategoryConfig) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:                category.ID,
		Name:              category.Name,
		Description:       category.Description,
		AgencyResponsible: category.AgencyResponsible,
		ContactEmail:      category.ContactEmail,
		ContactPhone:      category.ContactPhone,
		Subcategories:     category.Subcategories,
		ResponseHours:     category.ServiceLevel.ResponseHours,
		ResolutionHours:   category.ServiceLevel.ResolutionHours,
		Active:            category.Active,
		CreatedAt:         category.CreatedAt,
	}
}

func agencyResponse(agency *domain.Agency) dto.AgencyResponse {
	return dto.AgencyResponse{
		ID:           agency.ID,
		Name:         agency.Name,
		Categories:   agency.Categories,
		ContactEmail: agency.ContactEmail,
		CreatedAt:    agency.CreatedAt,
	}
}
