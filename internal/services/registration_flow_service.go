package services

import (
	"fmt"

	"framework4future/portal/internal/common"
	"framework4future/portal/internal/constants"
	"framework4future/portal/internal/models/entities"
)

// RegistrationFlowService remembers how far each member got through the
// register, payment, confirmation wizard. Progress lives in the cache for
// RegistrationFlowTTL.
type RegistrationFlowService struct {
	cache common.CacheInterface
}

func NewRegistrationFlowService(cache common.CacheInterface) *RegistrationFlowService {
	return &RegistrationFlowService{cache: cache}
}

// Record stores the member's current step.
func (s *RegistrationFlowService) Record(memberID string, step entities.RegistrationStep, completed bool) entities.RegistrationProgress {
	progress := entities.RegistrationProgress{
		MemberID:  memberID,
		Step:      step,
		Completed: completed,
		UpdatedAt: now(),
	}
	if s != nil && s.cache != nil {
		s.cache.Set(flowKey(memberID), progress, constants.RegistrationFlowTTL)
	}
	return progress
}

// Get returns the stored progress or ErrNotFound.
func (s *RegistrationFlowService) Get(memberID string) (entities.RegistrationProgress, error) {
	var progress entities.RegistrationProgress
	if s == nil || s.cache == nil {
		return progress, fmt.Errorf("registration progress for %s: %w", memberID, ErrNotFound)
	}

	val, found := s.cache.Get(flowKey(memberID))
	if !found {
		return progress, fmt.Errorf("registration progress for %s: %w", memberID, ErrNotFound)
	}
	if err := common.DecodeCached(val, &progress); err != nil {
		return progress, err
	}
	return progress, nil
}

// Clear forgets the member's progress.
func (s *RegistrationFlowService) Clear(memberID string) {
	if s != nil && s.cache != nil {
		s.cache.Delete(flowKey(memberID))
	}
}

func flowKey(memberID string) string {
	return string(constants.CachePrefixRegistration) + memberID
}
