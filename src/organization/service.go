package organization

import (
	"errors"

	"directory-api/pkg/logger"
	"directory-api/src/activity"
	"directory-api/src/building"
	"directory-api/src/geo"
	"directory-api/src/model"
	"directory-api/src/outbox"

	"gorm.io/gorm"
)

type Service struct {
	Repo            Repository
	ActivityService *activity.Service
	BuildingService *building.Service
	OutboxRepo      outbox.OutboxRepository
}

func NewService() *Service {
	return &Service{
		Repo:            NewRepository(),
		ActivityService: activity.NewService(),
		BuildingService: building.NewService(),
		OutboxRepo:      outbox.NewRepo(),
	}
}

func NewServiceWithDB(db *gorm.DB) *Service {
	return &Service{
		Repo:            NewRepositoryWithDB(db),
		ActivityService: activity.NewServiceWithDB(db),
		BuildingService: building.NewServiceWithDB(db),
		OutboxRepo:      outbox.NewRepoWithDB(db),
	}
}

func (s *Service) GetOrganizationById(id int) (*model.Organization, error) {
	return s.Repo.GetById(id)
}

func (s *Service) GetAllOrganizations() ([]model.Organization, error) {
	return s.Repo.GetAll()
}

func (s *Service) SearchOrganizationsByName(name string) ([]model.Organization, error) {
	return s.Repo.GetByNameLike(name)
}

func (s *Service) GetOrganizationsByBuilding(buildingId int) ([]model.Organization, error) {
	if _, err := s.BuildingService.GetBuildingById(buildingId); err != nil {
		return nil, err
	}
	return s.Repo.GetByBuilding(buildingId)
}

// GetOrganizationsByActivity returns organizations linked to the activity or
// any of its descendants, down to maxDepth levels of the tree.
func (s *Service) GetOrganizationsByActivity(activityId, maxDepth int) ([]model.Organization, error) {
	if _, err := s.ActivityService.GetActivityById(activityId); err != nil {
		return nil, err
	}

	ids, err := s.ActivityService.ResolveSubtreeIds(activityId, maxDepth)
	if err != nil {
		return nil, err
	}
	return s.Repo.GetByActivityIds(ids)
}

// GetOrganizationsByActivityTree searches activities by name and unions the
// organizations under every matching subtree, keeping first-seen order.
func (s *Service) GetOrganizationsByActivityTree(activityName string) ([]model.Organization, error) {
	matches, err := s.ActivityService.SearchActivitiesByName(activityName)
	if err != nil {
		return nil, err
	}

	seen := make(map[int]struct{})
	result := []model.Organization{}
	for _, match := range matches {
		ids, err := s.ActivityService.ResolveSubtreeIds(match.Id, activity.MaxTreeDepth)
		if err != nil {
			return nil, err
		}

		orgs, err := s.Repo.GetByActivityIds(ids)
		if err != nil {
			return nil, err
		}

		for _, org := range orgs {
			if _, ok := seen[org.Id]; ok {
				continue
			}
			seen[org.Id] = struct{}{}
			result = append(result, org)
		}
	}
	return result, nil
}

// SearchOrganizationsByGeo finds organizations housed in buildings that fall
// inside the requested area.
func (s *Service) SearchOrganizationsByGeo(req geo.SearchRequest) ([]model.Organization, error) {
	buildings, err := s.BuildingService.SearchBuildings(req)
	if err != nil {
		return nil, err
	}
	if len(buildings) == 0 {
		return []model.Organization{}, nil
	}

	buildingIds := make([]int, 0, len(buildings))
	for _, b := range buildings {
		buildingIds = append(buildingIds, b.Id)
	}
	return s.Repo.GetByBuildingIds(buildingIds)
}

func (s *Service) CreateOrganization(name string, buildingId int, phoneNumbers []string, activityIds []int) (*model.Organization, error) {
	org, err := s.Repo.Create(name, buildingId, phoneNumbers, activityIds)
	if err != nil {
		return nil, err
	}

	s.recordEvent(org.Id, model.ActionCreated, org.Name)
	return org, nil
}

func (s *Service) UpdateOrganization(id int, updates map[string]interface{}, phoneNumbers []string, activityIds []int) (*model.Organization, error) {
	org, err := s.Repo.Update(id, updates, phoneNumbers, activityIds)
	if err != nil {
		return nil, err
	}

	s.recordEvent(org.Id, model.ActionUpdated, org.Name)
	return org, nil
}

func (s *Service) DeleteOrganization(id int) error {
	if _, err := s.Repo.GetById(id); err != nil {
		return err
	}

	if err := s.Repo.Delete(id); err != nil {
		return err
	}

	s.recordEvent(id, model.ActionDeleted, "")
	return nil
}

func (s *Service) recordEvent(organizationId int, action, payload string) {
	if _, err := s.OutboxRepo.NewEvent(model.EntityOrganization, organizationId, action, payload); err != nil {
		logger.Default().Errorf(err, "Could not record outbox event for organization %d", organizationId)
	}
}

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
