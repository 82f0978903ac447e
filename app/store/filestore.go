package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"portfolio-admin/app/models"
)

// schema is the full shape of the database file. Every operation reads the
// whole file and writes the whole file back.
type schema struct {
	Projects []models.Project   `json:"projects"`
	Clients  []models.Client    `json:"clients"`
	Tasks    []models.Task      `json:"tasks"`
	Profile  models.SiteProfile `json:"profile"`
	Users    []models.User      `json:"users"`
}

func emptySchema() *schema {
	return &schema{
		Projects: []models.Project{},
		Clients:  []models.Client{},
		Tasks:    []models.Task{},
		Users:    []models.User{},
		Profile:  models.SiteProfile{Skills: []string{}},
	}
}

// FileStore keeps everything in one JSON file. A process-local mutex
// serializes read-modify-write cycles; writes go through a temp file and
// rename so a crash never leaves a half-written database.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileStore{path: path}, nil
}

func (s *FileStore) read() (*schema, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return emptySchema(), nil
		}
		return nil, fmt.Errorf("read db file: %w", err)
	}
	db := emptySchema()
	if err := json.Unmarshal(data, db); err != nil {
		return nil, fmt.Errorf("parse db file: %w", err)
	}
	return db, nil
}

func (s *FileStore) write(db *schema) error {
	data, err := json.MarshalIndent(db, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write db file: %w", err)
	}
	return os.Rename(tmp, s.path)
}

func (s *FileStore) GetUserByEmail(email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.read()
	if err != nil {
		return nil, err
	}
	for i := range db.Users {
		if db.Users[i].Email == email {
			u := db.Users[i]
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *FileStore) GetUserByID(id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.read()
	if err != nil {
		return nil, err
	}
	for i := range db.Users {
		if db.Users[i].ID == id {
			u := db.Users[i]
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *FileStore) CreateUser(u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.read()
	if err != nil {
		return err
	}
	for i := range db.Users {
		if db.Users[i].Email == u.Email {
			return ErrDuplicateEmail
		}
	}
	db.Users = append(db.Users, *u)
	return s.write(db)
}

func (s *FileStore) UpdateUser(u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.read()
	if err != nil {
		return err
	}
	for i := range db.Users {
		if db.Users[i].Email == u.Email && db.Users[i].ID != u.ID {
			return ErrDuplicateEmail
		}
	}
	for i := range db.Users {
		if db.Users[i].ID == u.ID {
			db.Users[i] = *u
			return s.write(db)
		}
	}
	return ErrNotFound
}

func (s *FileStore) ListProjects() ([]models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.read()
	if err != nil {
		return nil, err
	}
	return db.Projects, nil
}

func (s *FileStore) GetProject(id string) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.read()
	if err != nil {
		return nil, err
	}
	for i := range db.Projects {
		if db.Projects[i].ID == id {
			p := db.Projects[i]
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (s *FileStore) CreateProject(p *models.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.read()
	if err != nil {
		return err
	}
	db.Projects = append(db.Projects, *p)
	return s.write(db)
}

func (s *FileStore) UpdateProject(p *models.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.read()
	if err != nil {
		return err
	}
	for i := range db.Projects {
		if db.Projects[i].ID == p.ID {
			db.Projects[i] = *p
			return s.write(db)
		}
	}
	return ErrNotFound
}

func (s *FileStore) DeleteProject(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.read()
	if err != nil {
		return err
	}
	kept := db.Projects[:0]
	for _, p := range db.Projects {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	db.Projects = kept
	return s.write(db)
}

func (s *FileStore) ListClients() ([]models.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.read()
	if err != nil {
		return nil, err
	}
	return db.Clients, nil
}

func (s *FileStore) GetClient(id string) (*models.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.read()
	if err != nil {
		return nil, err
	}
	for i := range db.Clients {
		if db.Clients[i].ID == id {
			c := db.Clients[i]
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (s *FileStore) CreateClient(c *models.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.read()
	if err != nil {
		return err
	}
	db.Clients = append(db.Clients, *c)
	return s.write(db)
}

func (s *FileStore) UpdateClient(c *models.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.read()
	if err != nil {
		return err
	}
	for i := range db.Clients {
		if db.Clients[i].ID == c.ID {
			db.Clients[i] = *c
			return s.write(db)
		}
	}
	return ErrNotFound
}

func (s *FileStore) DeleteClient(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.read()
	if err != nil {
		return err
	}
	kept := db.Clients[:0]
	for _, c := range db.Clients {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	db.Clients = kept
	return s.write(db)
}

func (s *FileStore) ListTasks() ([]models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.read()
	if err != nil {
		return nil, err
	}
	return db.Tasks, nil
}

func (s *FileStore) GetTask(id string) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.read()
	if err != nil {
		return nil, err
	}
	for i := range db.Tasks {
		if db.Tasks[i].ID == id {
			t := db.Tasks[i]
			return &t, nil
		}
	}
	return nil, ErrNotFound
}

func (s *FileStore) CreateTask(t *models.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.read()
	if err != nil {
		return err
	}
	db.Tasks = append(db.Tasks, *t)
	return s.write(db)
}

func (s *FileStore) UpdateTask(t *models.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.read()
	if err != nil {
		return err
	}
	for i := range db.Tasks {
		if db.Tasks[i].ID == t.ID {
			db.Tasks[i] = *t
			return s.write(db)
		}
	}
	return ErrNotFound
}

func (s *FileStore) DeleteTask(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.read()
	if err != nil {
		return err
	}
	kept := db.Tasks[:0]
	for _, t := range db.Tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	db.Tasks = kept
	return s.write(db)
}

func (s *FileStore) GetSiteProfile() (*models.SiteProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.read()
	if err != nil {
		return nil, err
	}
	p := db.Profile
	return &p, nil
}

func (s *FileStore) UpdateSiteProfile(p *models.SiteProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.read()
	if err != nil {
		return err
	}
	db.Profile = *p
	return s.write(db)
}

func (s *FileStore) Close() error { return nil }
