package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/furuyashikiiori/portfolio-auto-generator/internal/models"
	"github.com/furuyashikiiori/portfolio-auto-generator/internal/repositories"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ErrUnsupportedImageType is returned when an uploaded icon's extension is
// not in the allow-list. It is the only submission failure caused by input.
var ErrUnsupportedImageType = errors.New("unsupported image type")

// allowedIconExtensions is the closed set of accepted icon file extensions,
// compared case-insensitively.
var allowedIconExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// Capabilities toggles the optional side paths of a submission. Both are
// disabled in production deployments, leaving the record store as the only
// persistence path.
type Capabilities struct {
	IconUploads bool
	Mirror      bool
}

// EventPublisher publishes domain events. A nil publisher is valid and
// simply skips publication.
type EventPublisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

// MirrorStatus reports what happened to the best-effort mirror write for a
// submission, so the outcome is explicit rather than silently discarded.
type MirrorStatus string

const (
	MirrorWritten MirrorStatus = "written"
	MirrorSkipped MirrorStatus = "skipped"
	MirrorFailed  MirrorStatus = "failed"
)

// SubmissionInput carries the raw multipart form fields of one submission.
// Skill and project groups are parallel slices aligned by index.
type SubmissionInput struct {
	Name           string `validate:"required"`
	University     string `validate:"required"`
	Year           string `validate:"required"`
	GraduationYear string `validate:"required"`
	SelfIntro      string `validate:"required"`
	Template       string `validate:"required"`

	SkillNames  []string
	SkillLevels []string

	ProjectTitles       []string
	ProjectDescriptions []string
	ProjectTechs        []string
	ProjectURLs         []string

	Title          string
	Achievements   string
	Certifications string
	ContactEmail   string
	ContactSNS     string
	ContactGithub  string

	Icon *multipart.FileHeader
}

// PortfolioService handles the portfolio submission and retrieval lifecycle.
type PortfolioService struct {
	repo      repositories.PortfolioRepository
	mirror    *repositories.FileMirror
	iconStore repositories.IconStore
	publisher EventPublisher
	caps      Capabilities
	validate  *validator.Validate
}

// NewPortfolioService creates a new PortfolioService. mirror, iconStore and
// publisher may be nil; the corresponding side paths are then skipped.
func NewPortfolioService(
	repo repositories.PortfolioRepository,
	mirror *repositories.FileMirror,
	iconStore repositories.IconStore,
	publisher EventPublisher,
	caps Capabilities,
) *PortfolioService {
	return &PortfolioService{
		repo:      repo,
		mirror:    mirror,
		iconStore: iconStore,
		publisher: publisher,
		caps:      caps,
		validate:  validator.New(),
	}
}

// SubmitPortfolio normalizes the raw form input into a canonical record,
// stores any accepted icon, persists the record and returns it with its
// freshly assigned ID. Only an unsupported icon extension fails the request;
// icon write and mirror failures degrade to "feature absent".
func (s *PortfolioService) SubmitPortfolio(input SubmissionInput) (*models.Portfolio, error) {
	// The client form marks the scalar fields required, so server-side
	// findings are logged for operators but never reject the request.
	if err := s.validate.Struct(input); err != nil {
		log.Printf("Warning: submission missing required fields: %v", err)
	}

	iconPath, err := s.storeIcon(input.Icon)
	if err != nil {
		return nil, err
	}

	portfolio := &models.Portfolio{
		ID:             uuid.New().String(),
		Name:           strings.TrimSpace(input.Name),
		University:     strings.TrimSpace(input.University),
		Year:           strings.TrimSpace(input.Year),
		GraduationYear: strings.TrimSpace(input.GraduationYear),
		SelfIntro:      strings.TrimSpace(input.SelfIntro),
		Skills:         buildSkills(input.SkillNames, input.SkillLevels),
		Title:          strings.TrimSpace(input.Title),
		Achievements:   strings.TrimSpace(input.Achievements),
		Certifications: strings.TrimSpace(input.Certifications),
		Projects:       buildProjects(input.ProjectTitles, input.ProjectDescriptions, input.ProjectTechs, input.ProjectURLs),
		ContactEmail:   strings.TrimSpace(input.ContactEmail),
		SNSLinks:       splitList(input.ContactSNS),
		ContactGithub:  strings.TrimSpace(input.ContactGithub),
		IconPath:       iconPath,
		Template:       strings.TrimSpace(input.Template),
	}

	// The authoritative write. The ID is only handed to the caller after
	// this succeeds, so creation happens-before any retrieval of it.
	if err := s.repo.Create(portfolio); err != nil {
		return nil, fmt.Errorf("failed to store portfolio: %w", err)
	}

	if status := s.mirrorPortfolio(portfolio); status == MirrorFailed {
		log.Printf("Warning: mirror write failed for portfolio %s", portfolio.ID)
	}

	s.publishCreated(portfolio)

	return portfolio, nil
}

// GetPortfolio returns the record for id, preferring the authoritative
// store and falling back to the mirror only when that capability is on.
// Any mirror failure downgrades to not-found.
func (s *PortfolioService) GetPortfolio(id string) (*models.Portfolio, error) {
	portfolio, err := s.repo.GetByID(id)
	if err == nil {
		return portfolio, nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	if s.caps.Mirror && s.mirror != nil {
		if mirrored, mErr := s.mirror.Read(id); mErr == nil {
			return mirrored, nil
		}
	}

	return nil, err
}

// ListPortfolios returns all stored portfolios.
func (s *PortfolioService) ListPortfolios() ([]models.Portfolio, error) {
	return s.repo.GetAll()
}

// storeIcon validates and persists an uploaded icon, returning the public
// path for the record. A bad extension is a client error; every other
// failure is logged and the submission proceeds without an icon.
func (s *PortfolioService) storeIcon(icon *multipart.FileHeader) (string, error) {
	if !s.caps.IconUploads || icon == nil || icon.Filename == "" {
		return "", nil
	}

	ext := strings.ToLower(filepath.Ext(icon.Filename))
	if !allowedIconExtensions[ext] {
		return "", fmt.Errorf("icon extension %q: %w", ext, ErrUnsupportedImageType)
	}

	if s.iconStore == nil {
		return "", nil
	}

	src, err := icon.Open()
	if err != nil {
		log.Printf("Warning: could not open uploaded icon, continuing without it: %v", err)
		return "", nil
	}
	defer src.Close()

	path, err := s.iconStore.Save(uuid.New().String()+ext, src)
	if err != nil {
		log.Printf("Warning: icon upload failed, continuing without it: %v", err)
		return "", nil
	}
	return path, nil
}

// mirrorPortfolio attempts the best-effort secondary write.
func (s *PortfolioService) mirrorPortfolio(portfolio *models.Portfolio) MirrorStatus {
	if !s.caps.Mirror || s.mirror == nil {
		return MirrorSkipped
	}
	if err := s.mirror.Write(portfolio); err != nil {
		log.Printf("Warning: failed to mirror portfolio %s: %v", portfolio.ID, err)
		return MirrorFailed
	}
	return MirrorWritten
}

// publishCreated emits a portfolio.created event. Failures only log.
func (s *PortfolioService) publishCreated(portfolio *models.Portfolio) {
	if s.publisher == nil {
		return
	}

	message := map[string]interface{}{
		"portfolioID": portfolio.ID,
		"name":        portfolio.Name,
		"template":    portfolio.Template,
		"createdAt":   portfolio.CreatedAt,
	}
	body, err := json.Marshal(message)
	if err != nil {
		log.Printf("Failed to marshal portfolio event to JSON: %v", err)
		return
	}

	// Publish over the default exchange; the client routes by queue name.
	if err := s.publisher.Publish("", "portfolio.created", body); err != nil {
		log.Printf("Warning: failed to publish created event for portfolio %s: %v", portfolio.ID, err)
	}
}

// buildSkills zips the repeated skill_name and skill_level fields by
// position. Levels default to 3 when missing or unparseable; entries whose
// trimmed name is empty are dropped.
func buildSkills(names, levels []string) []models.Skill {
	skills := make([]models.Skill, 0, len(names))
	for i, name := range names {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			continue
		}

		level := 3
		if i < len(levels) {
			if parsed, err := strconv.Atoi(strings.TrimSpace(levels[i])); err == nil {
				level = parsed
			}
		}

		skills = append(skills, models.Skill{Name: trimmed, Level: level})
	}
	return skills
}

// buildProjects zips the repeated project fields by position. Tech lists are
// comma-split and trimmed, empty URLs are omitted, and entries whose trimmed
// title is empty are dropped.
func buildProjects(titles, descriptions, techs, urls []string) []models.Project {
	projects := make([]models.Project, 0, len(titles))
	for i, title := range titles {
		trimmed := strings.TrimSpace(title)
		if trimmed == "" {
			continue
		}

		project := models.Project{Title: trimmed, Tech: []string{}}
		if i < len(descriptions) {
			project.Description = strings.TrimSpace(descriptions[i])
		}
		if i < len(techs) {
			project.Tech = splitList(techs[i])
		}
		if i < len(urls) {
			project.URL = strings.TrimSpace(urls[i])
		}

		projects = append(projects, project)
	}
	return projects
}

// splitList splits a comma-delimited input into trimmed non-empty pieces.
// Absent input yields an empty, non-nil slice.
func splitList(input string) []string {
	pieces := make([]string, 0)
	for _, piece := range strings.Split(input, ",") {
		if trimmed := strings.TrimSpace(piece); trimmed != "" {
			pieces = append(pieces, trimmed)
		}
	}
	return pieces
}
