package store

import (
	"sync"

	"portfolio-admin/app/models"
)

// MemStore is the in-memory implementation used by tests. It holds the same
// schema as the file store without touching disk.
type MemStore struct {
	mu       sync.Mutex
	users    []models.User
	projects []models.Project
	clients  []models.Client
	tasks    []models.Task
	profile  models.SiteProfile
}

func NewMemStore() *MemStore { return &MemStore{} }

func (s *MemStore) GetUserByEmail(email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].Email == email {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemStore) GetUserByID(id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemStore) CreateUser(u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].Email == u.Email {
			return ErrDuplicateEmail
		}
	}
	s.users = append(s.users, *u)
	return nil
}

func (s *MemStore) UpdateUser(u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].Email == u.Email && s.users[i].ID != u.ID {
			return ErrDuplicateEmail
		}
	}
	for i := range s.users {
		if s.users[i].ID == u.ID {
			s.users[i] = *u
			return nil
		}
	}
	return ErrNotFound
}

// DeleteUser exists only for tests exercising stale-token behavior; the
// service layer never deletes accounts.
func (s *MemStore) DeleteUser(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.users[:0]
	for _, u := range s.users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	s.users = kept
}

func (s *MemStore) ListProjects() ([]models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Project(nil), s.projects...), nil
}

func (s *MemStore) GetProject(id string) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.projects {
		if s.projects[i].ID == id {
			p := s.projects[i]
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemStore) CreateProject(p *models.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects = append(s.projects, *p)
	return nil
}

func (s *MemStore) UpdateProject(p *models.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.projects {
		if s.projects[i].ID == p.ID {
			s.projects[i] = *p
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemStore) DeleteProject(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.projects[:0]
	for _, p := range s.projects {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.projects = kept
	return nil
}

func (s *MemStore) ListClients() ([]models.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Client(nil), s.clients...), nil
}

func (s *MemStore) GetClient(id string) (*models.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.clients {
		if s.clients[i].ID == id {
			c := s.clients[i]
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemStore) CreateClient(c *models.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients = append(s.clients, *c)
	return nil
}

func (s *MemStore) UpdateClient(c *models.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.clients {
		if s.clients[i].ID == c.ID {
			s.clients[i] = *c
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemStore) DeleteClient(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.clients[:0]
	for _, c := range s.clients {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	s.clients = kept
	return nil
}

func (s *MemStore) ListTasks() ([]models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Task(nil), s.tasks...), nil
}

func (s *MemStore) GetTask(id string) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			t := s.tasks[i]
			return &t, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemStore) CreateTask(t *models.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append(s.tasks, *t)
	return nil
}

func (s *MemStore) UpdateTask(t *models.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == t.ID {
			s.tasks[i] = *t
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemStore) DeleteTask(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.tasks = kept
	return nil
}

func (s *MemStore) GetSiteProfile() (*models.SiteProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.profile
	return &p, nil
}

func (s *MemStore) UpdateSiteProfile(p *models.SiteProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = *p
	return nil
}

func (s *MemStore) Close() error { return nil }
