package organization

import (
	"fmt"
	"strings"

	"directory-api/src/database"
	"directory-api/src/model"

	"gorm.io/gorm"
)

type Repository interface {
	Create(name string, buildingId int, phoneNumbers []string, activityIds []int) (*model.Organization, error)
	GetById(id int) (*model.Organization, error)
	GetAll() ([]model.Organization, error)
	GetByNameLike(name string) ([]model.Organization, error)
	GetByBuilding(buildingId int) ([]model.Organization, error)
	GetByBuildingIds(buildingIds []int) ([]model.Organization, error)
	GetByActivityIds(activityIds []int) ([]model.Organization, error)
	Update(id int, updates map[string]interface{}, phoneNumbers []string, activityIds []int) (*model.Organization, error)
	Delete(id int) error
}

type gormRepository struct {
	db *gorm.DB
}

func NewRepository() Repository {
	return &gormRepository{db: database.GetDatabaseConnection()}
}

func NewRepositoryWithDB(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

// Create inserts the organization, its phones and its activity links as one
// transaction. The referenced building and activities are checked inside the
// transaction so a bad reference rolls everything back.
func (r *gormRepository) Create(name string, buildingId int, phoneNumbers []string, activityIds []int) (*model.Organization, error) {
	org := &model.Organization{Name: name, BuildingId: buildingId}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&model.Building{}, "id = ?", buildingId).Error; err != nil {
			return fmt.Errorf("building %d: %w", buildingId, err)
		}

		activities, err := activitiesByIds(tx, activityIds)
		if err != nil {
			return err
		}

		if err := tx.Create(org).Error; err != nil {
			return err
		}

		if err := createPhones(tx, org.Id, phoneNumbers); err != nil {
			return err
		}

		if len(activities) > 0 {
			if err := tx.Model(org).Association("Activities").Append(activities); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.GetById(org.Id)
}

func (r *gormRepository) GetById(id int) (*model.Organization, error) {
	var org model.Organization
	result := r.db.
		Preload("Building").
		Preload("Phones", func(db *gorm.DB) *gorm.DB { return db.Order("id asc") }).
		Preload("Activities").
		First(&org, "id = ?", id)
	return &org, result.Error
}

func (r *gormRepository) GetAll() ([]model.Organization, error) {
	var orgs []model.Organization
	result := r.db.
		Preload("Building").
		Preload("Phones", func(db *gorm.DB) *gorm.DB { return db.Order("id asc") }).
		Preload("Activities").
		Order("id asc").
		Find(&orgs)
	return orgs, result.Error
}

// GetByNameLike folds case in Go instead of SQL LOWER(), which is
// ASCII-only on sqlite and would miss Cyrillic organization names there.
func (r *gormRepository) GetByNameLike(name string) ([]model.Organization, error) {
	var orgs []model.Organization
	result := r.db.
		Preload("Building").
		Preload("Phones", func(db *gorm.DB) *gorm.DB { return db.Order("id asc") }).
		Preload("Activities").
		Order("id asc").
		Find(&orgs)
	if result.Error != nil {
		return nil, result.Error
	}

	needle := strings.ToLower(name)
	matched := []model.Organization{}
	for _, org := range orgs {
		if strings.Contains(strings.ToLower(org.Name), needle) {
			matched = append(matched, org)
		}
	}
	return matched, nil
}

func (r *gormRepository) GetByBuilding(buildingId int) ([]model.Organization, error) {
	return r.GetByBuildingIds([]int{buildingId})
}

func (r *gormRepository) GetByBuildingIds(buildingIds []int) ([]model.Organization, error) {
	if len(buildingIds) == 0 {
		return []model.Organization{}, nil
	}

	var orgs []model.Organization
	result := r.db.
		Preload("Building").
		Preload("Phones", func(db *gorm.DB) *gorm.DB { return db.Order("id asc") }).
		Preload("Activities").
		Where("building_id IN ?", buildingIds).
		Order("id asc").
		Find(&orgs)
	return orgs, result.Error
}

func (r *gormRepository) GetByActivityIds(activityIds []int) ([]model.Organization, error) {
	if len(activityIds) == 0 {
		return []model.Organization{}, nil
	}

	var orgIds []int
	err := r.db.
		Table("organization_activity").
		Distinct("organization_id").
		Where("activity_id IN ?", activityIds).
		Order("organization_id asc").
		Pluck("organization_id", &orgIds).Error
	if err != nil {
		return nil, err
	}
	if len(orgIds) == 0 {
		return []model.Organization{}, nil
	}

	var orgs []model.Organization
	result := r.db.
		Preload("Building").
		Preload("Phones", func(db *gorm.DB) *gorm.DB { return db.Order("id asc") }).
		Preload("Activities").
		Where("id IN ?", orgIds).
		Order("id asc").
		Find(&orgs)
	return orgs, result.Error
}

// Update applies field updates and, when given, replaces the phone list and
// activity links. A nil slice means keep the current value; an empty slice
// clears it.
func (r *gormRepository) Update(id int, updates map[string]interface{}, phoneNumbers []string, activityIds []int) (*model.Organization, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var org model.Organization
		if err := tx.First(&org, "id = ?", id).Error; err != nil {
			return err
		}

		if buildingId, ok := updates["building_id"]; ok {
			if err := tx.First(&model.Building{}, "id = ?", buildingId).Error; err != nil {
				return fmt.Errorf("building %v: %w", buildingId, err)
			}
		}

		if len(updates) > 0 {
			if err := tx.Model(&org).Updates(updates).Error; err != nil {
				return err
			}
		}

		if phoneNumbers != nil {
			if err := tx.Where("organization_id = ?", id).Delete(&model.OrganizationPhone{}).Error; err != nil {
				return err
			}
			if err := createPhones(tx, id, phoneNumbers); err != nil {
				return err
			}
		}

		if activityIds != nil {
			activities, err := activitiesByIds(tx, activityIds)
			if err != nil {
				return err
			}
			if err := tx.Model(&org).Association("Activities").Replace(activities); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.GetById(id)
}

func (r *gormRepository) Delete(id int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM organization_activity WHERE organization_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Where("organization_id = ?", id).Delete(&model.OrganizationPhone{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Organization{}, "id = ?", id).Error
	})
}

// createPhones stores the numbers in the order given; the first one becomes
// the primary contact.
func createPhones(tx *gorm.DB, orgId int, phoneNumbers []string) error {
	for i, number := range phoneNumbers {
		phone := model.OrganizationPhone{
			OrganizationId: orgId,
			PhoneNumber:    number,
			IsPrimary:      i == 0,
		}
		if err := tx.Create(&phone).Error; err != nil {
			return err
		}
	}
	return nil
}

func activitiesByIds(tx *gorm.DB, activityIds []int) ([]model.Activity, error) {
	if len(activityIds) == 0 {
		return nil, nil
	}

	var activities []model.Activity
	if err := tx.Where("id IN ?", activityIds).Find(&activities).Error; err != nil {
		return nil, err
	}
	if len(activities) != len(uniqueInts(activityIds)) {
		return nil, fmt.Errorf("activities %v: %w", activityIds, gorm.ErrRecordNotFound)
	}
	return activities, nil
}

func uniqueInts(ids []int) []int {
	seen := make(map[int]struct{}, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
