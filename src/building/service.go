package building

import (
	"errors"

	"directory-api/pkg/logger"
	"directory-api/src/geo"
	"directory-api/src/model"
	"directory-api/src/outbox"

	"gorm.io/gorm"
)

type Service struct {
	Repo       Repository
	OutboxRepo outbox.OutboxRepository
}

func NewService() *Service {
	return &Service{
		Repo:       NewRepository(),
		OutboxRepo: outbox.NewRepo(),
	}
}

func NewServiceWithDB(db *gorm.DB) *Service {
	return &Service{
		Repo:       NewRepositoryWithDB(db),
		OutboxRepo: outbox.NewRepoWithDB(db),
	}
}

func (s *Service) GetBuildingById(id int) (*model.Building, error) {
	return s.Repo.GetById(id)
}

func (s *Service) GetBuildingWithOrganizations(id int) (*model.Building, error) {
	return s.Repo.GetByIdWithOrganizations(id)
}

func (s *Service) GetAllBuildings() ([]model.Building, error) {
	return s.Repo.GetAll()
}

// SearchBuildings dispatches on the request variant: exact rectangle bounds
// or bounding box plus haversine for the radius query.
func (s *Service) SearchBuildings(req geo.SearchRequest) ([]model.Building, error) {
	mode, err := req.Mode()
	if err != nil {
		return nil, err
	}

	switch mode {
	case geo.SearchByRectangle:
		return s.Repo.GetInRect(req.Rectangle())
	default:
		return s.Repo.GetInRadius(req.Center(), *req.RadiusKm)
	}
}

func (s *Service) CreateBuilding(address string, latitude, longitude float64) (*model.Building, error) {
	building := &model.Building{Address: address, Latitude: latitude, Longitude: longitude}
	if err := s.Repo.Create(building); err != nil {
		return nil, err
	}

	s.recordEvent(building.Id, model.ActionCreated, building.Address)
	return building, nil
}

func (s *Service) UpdateBuilding(id int, updates map[string]interface{}) (*model.Building, error) {
	building, err := s.Repo.Update(id, updates)
	if err != nil {
		return nil, err
	}

	s.recordEvent(building.Id, model.ActionUpdated, building.Address)
	return building, nil
}

func (s *Service) DeleteBuilding(id int) error {
	if _, err := s.Repo.GetById(id); err != nil {
		return err
	}

	if err := s.Repo.Delete(id); err != nil {
		return err
	}

	s.recordEvent(id, model.ActionDeleted, "")
	return nil
}

func (s *Service) recordEvent(buildingId int, action, payload string) {
	if _, err := s.OutboxRepo.NewEvent(model.EntityBuilding, buildingId, action, payload); err != nil {
		logger.Default().Errorf(err, "Could not record outbox event for building %d", buildingId)
	}
}

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
