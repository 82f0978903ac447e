package services

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"portfolio-admin/app/apperr"
	"portfolio-admin/app/models"
	"portfolio-admin/app/store"
)

// ContentService manages the portfolio entities behind the back office:
// projects, clients, tasks and the public site profile.
type ContentService struct {
	store store.Store
}

func NewContentService(st store.Store) *ContentService { return &ContentService{store: st} }

func mapNotFound(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return apperr.ErrNotFound
	}
	return err
}

func (s *ContentService) ListProjects() ([]models.Project, error) { return s.store.ListProjects() }

// PublicProjects returns only projects flagged for the public site.
func (s *ContentService) PublicProjects() ([]models.Project, error) {
	all, err := s.store.ListProjects()
	if err != nil {
		return nil, err
	}
	out := make([]models.Project, 0, len(all))
	for _, p := range all {
		if p.IsPublic {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *ContentService) GetProject(id string) (*models.Project, error) {
	p, err := s.store.GetProject(id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return p, nil
}

func (s *ContentService) CreateProject(p *models.Project) error {
	p.ID = uuid.NewString()
	p.CreatedAt = time.Now()
	return s.store.CreateProject(p)
}

func (s *ContentService) UpdateProject(p *models.Project) error {
	return mapNotFound(s.store.UpdateProject(p))
}

func (s *ContentService) DeleteProject(id string) error { return s.store.DeleteProject(id) }

func (s *ContentService) ListClients() ([]models.Client, error) { return s.store.ListClients() }

func (s *ContentService) GetClient(id string) (*models.Client, error) {
	c, err := s.store.GetClient(id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return c, nil
}

func (s *ContentService) CreateClient(c *models.Client) error {
	c.ID = uuid.NewString()
	c.CreatedAt = time.Now()
	return s.store.CreateClient(c)
}

func (s *ContentService) UpdateClient(c *models.Client) error {
	return mapNotFound(s.store.UpdateClient(c))
}

func (s *ContentService) DeleteClient(id string) error { return s.store.DeleteClient(id) }

func (s *ContentService) ListTasks() ([]models.Task, error) { return s.store.ListTasks() }

func (s *ContentService) GetTask(id string) (*models.Task, error) {
	t, err := s.store.GetTask(id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return t, nil
}

func (s *ContentService) CreateTask(t *models.Task) error {
	t.ID = uuid.NewString()
	t.CreatedAt = time.Now()
	return s.store.CreateTask(t)
}

func (s *ContentService) UpdateTask(t *models.Task) error {
	return mapNotFound(s.store.UpdateTask(t))
}

func (s *ContentService) DeleteTask(id string) error { return s.store.DeleteTask(id) }

func (s *ContentService) SiteProfile() (*models.SiteProfile, error) {
	return s.store.GetSiteProfile()
}

func (s *ContentService) UpdateSiteProfile(p *models.SiteProfile) error {
	return s.store.UpdateSiteProfile(p)
}
