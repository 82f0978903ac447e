// Package store is the persistence collaborator: a small CRUD surface over
// the single embedded database holding users and portfolio content. The
// canonical implementation is the whole-file JSON store; an in-memory fake
// backs tests and a sqlite backend is available behind the same interface.
package store

import (
	"errors"

	"portfolio-admin/app/models"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateEmail = errors.New("email already exists")
)

type Store interface {
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	CreateUser(u *models.User) error
	UpdateUser(u *models.User) error

	ListProjects() ([]models.Project, error)
	GetProject(id string) (*models.Project, error)
	CreateProject(p *models.Project) error
	UpdateProject(p *models.Project) error
	DeleteProject(id string) error

	ListClients() ([]models.Client, error)
	GetClient(id string) (*models.Client, error)
	CreateClient(c *models.Client) error
	UpdateClient(c *models.Client) error
	DeleteClient(id string) error

	ListTasks() ([]models.Task, error)
	GetTask(id string) (*models.Task, error)
	CreateTask(t *models.Task) error
	UpdateTask(t *models.Task) error
	DeleteTask(id string) error

	GetSiteProfile() (*models.SiteProfile, error)
	UpdateSiteProfile(p *models.SiteProfile) error

	Close() error
}
