package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"novanest_backend/internal/models"
)

var ErrStartupNotFound = errors.New("startup not found")

type StartupRepository interface {
	Create(db *gorm.DB, startup *models.Startup) error
	FindByID(db *gorm.DB, id string) (*models.Startup, error)
	FindByFounder(db *gorm.DB, founderID string) ([]models.Startup, error)
	FindLatestByFounder(db *gorm.DB, founderID string) (*models.Startup, error)
	CountByFounder(db *gorm.DB, founderID string) (int64, error)
	Update(db *gorm.DB, startup *models.Startup) error
	Delete(db *gorm.DB, id string) error
	FindWithFilter(db *gorm.DB, filter StartupFilter) ([]models.Startup, error)
}

// StartupFilter holds the optional catalog predicates. A zero field means
// the predicate is omitted entirely.
type StartupFilter struct {
	Industry       string   `form:"industry"`
	Stage          string   `form:"stage"`
	MaxFundingGoal *float64 `form:"fundingGoal"`
	Search         string   `form:"search"`
}

type StartupRepositoryImpl struct{}

func NewStartupRepository() StartupRepository {
	return &StartupRepositoryImpl{}
}

func (r *StartupRepositoryImpl) Create(db *gorm.DB, startup *models.Startup) error {
	return db.Create(startup).Error
}

func (r *StartupRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Startup, error) {
	var startup models.Startup
	err := db.First(&startup, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStartupNotFound
		}
		return nil, err
	}
	return &startup, nil
}

func (r *StartupRepositoryImpl) FindByFounder(db *gorm.DB, founderID string) ([]models.Startup, error) {
	var startups []models.Startup
	err := db.Where("founder_id = ?", founderID).
		Order("created_at DESC").
		Find(&startups).Error
	return startups, err
}

func (r *StartupRepositoryImpl) FindLatestByFounder(db *gorm.DB, founderID string) (*models.Startup, error) {
	var startup models.Startup
	err := db.Where("founder_id = ?", founderID).
		Order("created_at DESC").
		First(&startup).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStartupNotFound
		}
		return nil, err
	}
	return &startup, nil
}

func (r *StartupRepositoryImpl) CountByFounder(db *gorm.DB, founderID string) (int64, error) {
	var count int64
	err := db.Model(&models.Startup{}).Where("founder_id = ?", founderID).Count(&count).Error
	return count, err
}

func (r *StartupRepositoryImpl) Update(db *gorm.DB, startup *models.Startup) error {
	return db.Save(startup).Error
}

func (r *StartupRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Startup{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrStartupNotFound
	}
	return nil
}

// FindWithFilter combines the provided predicates with AND. Substring
// matches go through LOWER(...) LIKE so they behave the same on Postgres
// and on the sqlite test driver.
func (r *StartupRepositoryImpl) FindWithFilter(db *gorm.DB, filter StartupFilter) ([]models.Startup, error) {
	query := db.Model(&models.Startup{})

	if filter.Industry != "" {
		query = query.Where("LOWER(industry) LIKE ?", "%"+strings.ToLower(filter.Industry)+"%")
	}
	if filter.Stage != "" {
		query = query.Where("LOWER(stage) LIKE ?", "%"+strings.ToLower(filter.Stage)+"%")
	}
	if filter.MaxFundingGoal != nil {
		query = query.Where("funding_goal <= ?", *filter.MaxFundingGoal)
	}
	if filter.Search != "" {
		search := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", search, search)
	}

	var startups []models.Startup
	err := query.Order("created_at DESC").Find(&startups).Error
	return startups, err
}
