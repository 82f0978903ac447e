// Package gormstore backs the store interface with a single-file sqlite
// database for deployments that outgrow the JSON file without leaving the
// embedded-store constraint.
package gormstore

import (
	"errors"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"portfolio-admin/app/models"
	"portfolio-admin/app/store"
)

// siteProfileRow pins the single site profile to a fixed primary key.
type siteProfileRow struct {
	ID      uint               `gorm:"primaryKey"`
	Profile models.SiteProfile `gorm:"embedded"`
}

func (siteProfileRow) TableName() string { return "site_profile" }

type Store struct {
	db *gorm.DB
}

func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&models.User{}, &models.Project{}, &models.Client{}, &models.Task{}, &siteProfileRow{}); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return store.ErrNotFound
	}
	return err
}

func (s *Store) GetUserByEmail(email string) (*models.User, error) {
	var u models.User
	if err := s.db.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (s *Store) GetUserByID(id string) (*models.User, error) {
	var u models.User
	if err := s.db.Where("id = ?", id).First(&u).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (s *Store) CreateUser(u *models.User) error {
	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", u.Email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return store.ErrDuplicateEmail
	}
	return s.db.Create(u).Error
}

func (s *Store) UpdateUser(u *models.User) error {
	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ? AND id <> ?", u.Email, u.ID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return store.ErrDuplicateEmail
	}
	res := s.db.Model(&models.User{}).Where("id = ?", u.ID).Select("*").Omit("created_at").Updates(u)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) ListProjects() ([]models.Project, error) {
	var out []models.Project
	return out, s.db.Find(&out).Error
}

func (s *Store) GetProject(id string) (*models.Project, error) {
	var p models.Project
	if err := s.db.Where("id = ?", id).First(&p).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (s *Store) CreateProject(p *models.Project) error { return s.db.Create(p).Error }

func (s *Store) UpdateProject(p *models.Project) error {
	res := s.db.Model(&models.Project{}).Where("id = ?", p.ID).Select("*").Omit("created_at").Updates(p)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteProject(id string) error {
	return s.db.Where("id = ?", id).Delete(&models.Project{}).Error
}

func (s *Store) ListClients() ([]models.Client, error) {
	var out []models.Client
	return out, s.db.Find(&out).Error
}

func (s *Store) GetClient(id string) (*models.Client, error) {
	var c models.Client
	if err := s.db.Where("id = ?", id).First(&c).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (s *Store) CreateClient(c *models.Client) error { return s.db.Create(c).Error }

func (s *Store) UpdateClient(c *models.Client) error {
	res := s.db.Model(&models.Client{}).Where("id = ?", c.ID).Select("*").Omit("created_at").Updates(c)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteClient(id string) error {
	return s.db.Where("id = ?", id).Delete(&models.Client{}).Error
}

func (s *Store) ListTasks() ([]models.Task, error) {
	var out []models.Task
	return out, s.db.Find(&out).Error
}

func (s *Store) GetTask(id string) (*models.Task, error) {
	var t models.Task
	if err := s.db.Where("id = ?", id).First(&t).Error; err != nil {
		return nil, translate(err)
	}
	return &t, nil
}

func (s *Store) CreateTask(t *models.Task) error { return s.db.Create(t).Error }

func (s *Store) UpdateTask(t *models.Task) error {
	res := s.db.Model(&models.Task{}).Where("id = ?", t.ID).Select("*").Omit("created_at").Updates(t)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteTask(id string) error {
	return s.db.Where("id = ?", id).Delete(&models.Task{}).Error
}

func (s *Store) GetSiteProfile() (*models.SiteProfile, error) {
	var row siteProfileRow
	err := s.db.First(&row, 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.SiteProfile{Skills: []string{}}, nil
	}
	if err != nil {
		return nil, err
	}
	return &row.Profile, nil
}

func (s *Store) UpdateSiteProfile(p *models.SiteProfile) error {
	row := siteProfileRow{ID: 1, Profile: *p}
	return s.db.Save(&row).Error
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
