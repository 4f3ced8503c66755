package activity

import (
	"errors"

	"directory-api/pkg/logger"
	"directory-api/src/model"
	"directory-api/src/outbox"

	"gorm.io/gorm"
)

const (
	// MaxTreeDepth bounds taxonomy traversal; request depths outside
	// [1, MaxTreeDepth] are rejected at the HTTP boundary.
	MaxTreeDepth = 3
)

var (
	ErrParentNotFound = errors.New("parent activity does not exist")
	ErrCyclicParent   = errors.New("parent activity lies within the activity's own subtree")
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

func (s *Service) GetActivityById(id int) (*model.Activity, error) {
	return s.Repo.GetById(id)
}

func (s *Service) GetRootActivities() ([]model.Activity, error) {
	return s.Repo.GetRoots()
}

func (s *Service) GetAllActivities() ([]model.Activity, error) {
	return s.Repo.GetAll()
}

func (s *Service) SearchActivitiesByName(name string) ([]model.Activity, error) {
	return s.Repo.GetByNameLike(name)
}

// ResolveSubtreeIds computes the id closure of an activity: the root plus
// every descendant reachable within maxDepth parent->child hops.
func (s *Service) ResolveSubtreeIds(rootId, maxDepth int) ([]int, error) {
	all, err := s.Repo.GetAll()
	if err != nil {
		return nil, err
	}
	return NewTree(all).Resolve(rootId, maxDepth), nil
}

// GetChildrenActivities returns the activities of the depth-limited closure
// of rootId, the root included.
func (s *Service) GetChildrenActivities(rootId, maxDepth int) ([]model.Activity, error) {
	ids, err := s.ResolveSubtreeIds(rootId, maxDepth)
	if err != nil {
		return nil, err
	}
	return s.Repo.GetByIds(ids)
}

func (s *Service) CreateActivity(name string, parentId *int) (*model.Activity, error) {
	if parentId != nil {
		if _, err := s.Repo.GetById(*parentId); err != nil {
			return nil, err
		}
	}

	activity := &model.Activity{Name: name, ParentId: parentId}
	if err := s.Repo.Create(activity); err != nil {
		return nil, err
	}

	s.recordEvent(activity.Id, model.ActionCreated, activity.Name)
	return activity, nil
}

// UpdateActivity applies the given column updates. A parent_id change is
// validated so the taxonomy stays an acyclic forest: the new parent must
// exist and must not be the activity itself or any of its descendants.
func (s *Service) UpdateActivity(id int, updates map[string]interface{}) (*model.Activity, error) {
	if raw, present := updates["parent_id"]; present && raw != nil {
		parentId, _ := raw.(int)
		if err := s.validateReparent(id, parentId); err != nil {
			return nil, err
		}
	}

	activity, err := s.Repo.Update(id, updates)
	if err != nil {
		return nil, err
	}

	s.recordEvent(activity.Id, model.ActionUpdated, activity.Name)
	return activity, nil
}

func (s *Service) validateReparent(id, parentId int) error {
	if _, err := s.Repo.GetById(parentId); err != nil {
		if IsNotFound(err) {
			return ErrParentNotFound
		}
		return err
	}

	subtree, err := s.ResolveSubtreeIds(id, UnboundedDepth)
	if err != nil {
		return err
	}
	for _, descendantId := range subtree {
		if descendantId == parentId {
			return ErrCyclicParent
		}
	}
	return nil
}

// DeleteActivity removes the activity and its whole descendant subtree.
// Organizations associated with any deleted activity survive; only the
// association rows go away.
func (s *Service) DeleteActivity(id int) error {
	if _, err := s.Repo.GetById(id); err != nil {
		return err
	}

	ids, err := s.ResolveSubtreeIds(id, UnboundedDepth)
	if err != nil {
		return err
	}

	if err := s.Repo.DeleteSubtree(ids); err != nil {
		return err
	}

	s.recordEvent(id, model.ActionDeleted, "")
	return nil
}

func (s *Service) recordEvent(activityId int, action, payload string) {
	if _, err := s.OutboxRepo.NewEvent(model.EntityActivity, activityId, action, payload); err != nil {
		logger.Default().Errorf(err, "Could not record outbox event for activity %d", activityId)
	}
}

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
