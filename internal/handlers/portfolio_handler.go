package handlers

import (
	"errors"
	"log"
	"mime/multipart"
	"strings"

	"github.com/furuyashikiiori/portfolio-auto-generator/internal/repositories"
	"github.com/furuyashikiiori/portfolio-auto-generator/internal/services"
	"github.com/furuyashikiiori/portfolio-auto-generator/internal/templates"

	"github.com/gofiber/fiber/v2"
)

// PortfolioHandler handles HTTP requests for portfolios.
type PortfolioHandler struct {
	service *services.PortfolioService
}

// NewPortfolioHandler creates a new PortfolioHandler.
func NewPortfolioHandler(service *services.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{
		service: service,
	}
}

// RegisterRoutes registers the portfolio routes with the Fiber app.
func (h *PortfolioHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/templates", h.HandleGetTemplates)

	portfolioRoutes := router.Group("/portfolios")
	portfolioRoutes.Post("/", h.HandleGeneratePortfolio)
	portfolioRoutes.Get("/", h.HandleGetPortfolios)
	portfolioRoutes.Get("/:id", h.HandleGetPortfolioByID)
}

// HandleGeneratePortfolio accepts a multipart portfolio submission, builds
// the canonical record and returns its generated ID.
func (h *PortfolioHandler) HandleGeneratePortfolio(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		log.Printf("Error parsing multipart form: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid multipart form data",
			"error":   err.Error(),
		})
	}

	input := services.SubmissionInput{
		Name:           formValue(form, "name"),
		University:     formValue(form, "university"),
		Year:           formValue(form, "year"),
		GraduationYear: formValue(form, "graduation_year"),
		SelfIntro:      formValue(form, "self_intro"),
		Template:       formValue(form, "template"),

		SkillNames:  form.Value["skill_name"],
		SkillLevels: form.Value["skill_level"],

		ProjectTitles:       form.Value["project_title"],
		ProjectDescriptions: form.Value["project_description"],
		ProjectTechs:        form.Value["project_tech"],
		ProjectURLs:         form.Value["project_url"],

		Title:          formValue(form, "title"),
		Achievements:   formValue(form, "achievements"),
		Certifications: formValue(form, "certifications"),
		ContactEmail:   formValue(form, "contact_email"),
		ContactSNS:     formValue(form, "contact_sns"),
		ContactGithub:  formValue(form, "contact_github"),

		Icon: formFile(form, "icon_image"),
	}

	portfolio, err := h.service.SubmitPortfolio(input)
	if err != nil {
		log.Printf("Error generating portfolio: %v", err)
		if errors.Is(err, services.ErrUnsupportedImageType) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Unsupported image format",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not generate portfolio",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"id":      portfolio.ID,
		"message": "Portfolio generated successfully",
	})
}

// HandleGetPortfolioByID retrieves a single portfolio by its ID.
func (h *PortfolioHandler) HandleGetPortfolioByID(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Portfolio ID is required",
		})
	}

	portfolio, err := h.service.GetPortfolio(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Portfolio not found",
			})
		}
		log.Printf("Error getting portfolio by ID %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve portfolio",
			"error":   err.Error(),
		})
	}

	// The template identifier is only checked at render time; substitute the
	// default here so the renderer always receives a known layout.
	portfolio.Template = templates.Resolve(portfolio.Template)

	return c.JSON(portfolio)
}

// HandleGetPortfolios retrieves all portfolios.
func (h *PortfolioHandler) HandleGetPortfolios(c *fiber.Ctx) error {
	portfolios, err := h.service.ListPortfolios()
	if err != nil {
		log.Printf("Error getting all portfolios: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve portfolios",
			"error":   err.Error(),
		})
	}

	// Same render-time substitution as the by-ID endpoint, so both surfaces
	// hand the renderer a known layout.
	for i := range portfolios {
		portfolios[i].Template = templates.Resolve(portfolios[i].Template)
	}

	return c.JSON(portfolios)
}

// HandleGetTemplates returns the catalogue of selectable templates.
func (h *PortfolioHandler) HandleGetTemplates(c *fiber.Ctx) error {
	return c.JSON(templates.All())
}

// formValue returns the first value for key, or an empty string.
func formValue(form *multipart.Form, key string) string {
	if values, ok := form.Value[key]; ok && len(values) > 0 {
		return values[0]
	}
	return ""
}

// formFile returns the first uploaded file for key, or nil.
func formFile(form *multipart.Form, key string) *multipart.FileHeader {
	if files, ok := form.File[key]; ok && len(files) > 0 {
		return files[0]
	}
	return nil
}
