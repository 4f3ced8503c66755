package activity

import (
	"strings"

	"directory-api/src/database"
	"directory-api/src/model"

	"gorm.io/gorm"
)

type Repository interface {
	Create(activity *model.Activity) error
	GetById(id int) (*model.Activity, error)
	GetByIds(ids []int) ([]model.Activity, error)
	GetByNameLike(name string) ([]model.Activity, error)
	GetRoots() ([]model.Activity, error)
	GetAll() ([]model.Activity, error)
	Update(id int, updates map[string]interface{}) (*model.Activity, error)
	DeleteSubtree(ids []int) error
}

type gormRepository struct {
	db *gorm.DB
}

func NewRepository() Repository {
	return NewRepositoryWithDB(database.GetDatabaseConnection())
}

func NewRepositoryWithDB(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(activity *model.Activity) error {
	return r.db.Create(activity).Error
}

func (r *gormRepository) GetById(id int) (*model.Activity, error) {
	var activity model.Activity
	err := r.db.First(&activity, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

func (r *gormRepository) GetByIds(ids []int) ([]model.Activity, error) {
	var activities []model.Activity
	err := r.db.Where("id IN ?", ids).Find(&activities).Error
	return activities, err
}

// GetByNameLike matches case-insensitively in Go rather than with SQL
// LOWER(): sqlite folds ASCII only, which would miss Cyrillic names on the
// dev driver. The taxonomy is small enough to scan.
func (r *gormRepository) GetByNameLike(name string) ([]model.Activity, error) {
	var activities []model.Activity
	if err := r.db.Find(&activities).Error; err != nil {
		return nil, err
	}

	needle := strings.ToLower(name)
	matched := []model.Activity{}
	for _, a := range activities {
		if strings.Contains(strings.ToLower(a.Name), needle) {
			matched = append(matched, a)
		}
	}
	return matched, nil
}

func (r *gormRepository) GetRoots() ([]model.Activity, error) {
	var activities []model.Activity
	err := r.db.Where("parent_id IS NULL").Find(&activities).Error
	return activities, err
}

func (r *gormRepository) GetAll() ([]model.Activity, error) {
	var activities []model.Activity
	err := r.db.Find(&activities).Error
	return activities, err
}

func (r *gormRepository) Update(id int, updates map[string]interface{}) (*model.Activity, error) {
	var activity model.Activity
	if err := r.db.First(&activity, "id = ?", id).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&activity).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &activity, nil
}

// DeleteSubtree removes the given activities and their association rows in
// one transaction. Callers pass the closed subtree id set so the cascade is
// complete regardless of database-level foreign key enforcement.
func (r *gormRepository) DeleteSubtree(ids []int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM organization_activity WHERE activity_id IN ?", ids).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Activity{}, ids).Error
	})
}
