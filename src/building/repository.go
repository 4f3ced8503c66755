package building

import (
	"directory-api/src/database"
	"directory-api/src/geo"
	"directory-api/src/model"

	"gorm.io/gorm"
)

type Repository interface {
	Create(building *model.Building) error
	GetById(id int) (*model.Building, error)
	GetByIdWithOrganizations(id int) (*model.Building, error)
	GetAll() ([]model.Building, error)
	GetInRect(rect geo.Rect) ([]model.Building, error)
	GetInRadius(center geo.Point, radiusKm float64) ([]model.Building, error)
	Update(id int, updates map[string]interface{}) (*model.Building, error)
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

func (r *gormRepository) Create(building *model.Building) error {
	return r.db.Create(building).Error
}

func (r *gormRepository) GetById(id int) (*model.Building, error) {
	var building model.Building
	result := r.db.First(&building, "id = ?", id)
	return &building, result.Error
}

func (r *gormRepository) GetByIdWithOrganizations(id int) (*model.Building, error) {
	var building model.Building
	result := r.db.
		Preload("Organizations").
		Preload("Organizations.Phones").
		First(&building, "id = ?", id)
	return &building, result.Error
}

func (r *gormRepository) GetAll() ([]model.Building, error) {
	var buildings []model.Building
	result := r.db.Order("id asc").Find(&buildings)
	return buildings, result.Error
}

func (r *gormRepository) GetInRect(rect geo.Rect) ([]model.Building, error) {
	var buildings []model.Building
	result := r.db.
		Where("latitude BETWEEN ? AND ?", rect.MinLat, rect.MaxLat).
		Where("longitude BETWEEN ? AND ?", rect.MinLng, rect.MaxLng).
		Order("id asc").
		Find(&buildings)
	return buildings, result.Error
}

// GetInRadius narrows candidates with the bounding box in SQL, then applies
// the exact haversine check in Go. The box is a superset of the circle, so
// nothing inside the radius is ever missed.
func (r *gormRepository) GetInRadius(center geo.Point, radiusKm float64) ([]model.Building, error) {
	candidates, err := r.GetInRect(geo.BoundingBox(center, radiusKm))
	if err != nil {
		return nil, err
	}

	buildings := make([]model.Building, 0, len(candidates))
	for _, b := range candidates {
		if geo.WithinRadius(center, radiusKm, geo.Point{Latitude: b.Latitude, Longitude: b.Longitude}) {
			buildings = append(buildings, b)
		}
	}
	return buildings, nil
}

func (r *gormRepository) Update(id int, updates map[string]interface{}) (*model.Building, error) {
	building, err := r.GetById(id)
	if err != nil {
		return nil, err
	}

	if len(updates) > 0 {
		if err := r.db.Model(building).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return r.GetById(id)
}

// Delete removes the building and its organizations in one transaction.
// Cascading is done explicitly so behavior does not depend on the driver
// enforcing foreign keys.
func (r *gormRepository) Delete(id int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var orgIds []int
		if err := tx.Model(&model.Organization{}).
			Where("building_id = ?", id).
			Pluck("id", &orgIds).Error; err != nil {
			return err
		}

		if len(orgIds) > 0 {
			if err := tx.Exec("DELETE FROM organization_activity WHERE organization_id IN ?", orgIds).Error; err != nil {
				return err
			}
			if err := tx.Where("organization_id IN ?", orgIds).Delete(&model.OrganizationPhone{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", orgIds).Delete(&model.Organization{}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&model.Building{}, "id = ?", id).Error
	})
}
