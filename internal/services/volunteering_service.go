package services

import (
	"context"
	"errors"
	"strings"

	"framework4future/portal/internal/constants"
	"framework4future/portal/internal/db"
	"framework4future/portal/internal/db/repositories"
	"framework4future/portal/internal/fallback"
	"framework4future/portal/internal/logging"
	"framework4future/portal/internal/metrics"
	gormModels "framework4future/portal/internal/models/gorm"
)

const entityHours = "volunteering_hours"

type HoursResult struct {
	Success bool                          `json:"success"`
	Hours   *gormModels.VolunteeringHours `json:"hours,omitempty"`
	Error   string                        `json:"error,omitempty"`
}

type HoursListResult struct {
	Success bool                           `json:"success"`
	Hours   []gormModels.VolunteeringHours `json:"hours,omitempty"`
	Error   string                         `json:"error,omitempty"`
}

func hoursOK(h gormModels.VolunteeringHours) HoursResult {
	return HoursResult{Success: true, Hours: &h}
}

func hoursFailed(msg string) HoursResult {
	return HoursResult{Error: msg}
}

// HoursInput is a parsed volunteering submission.
type HoursInput struct {
	ActivityName        string
	ActivityDescription string
	HoursCompleted      float64
	ActivityDate        string
	OrganizationName    string
	SupervisorName      string
	SupervisorEmail     string
	SupervisorPhone     string
}

// VolunteeringService follows the result convention: live store errors come back
// as Success false.
type VolunteeringService struct {
	storeDeps
	repo *repositories.VolunteeringRepository
}

func NewVolunteeringService(live *db.Live, fb *fallback.Store, m *metrics.MetricsRegistry) *VolunteeringService {
	return &VolunteeringService{
		storeDeps: newStoreDeps(live, fb, m),
		repo:      repositories.NewVolunteeringRepository(live),
	}
}

// Submit records hours for memberID. New submissions are always pending.
func (s *VolunteeringService) Submit(ctx context.Context, memberID string, in HoursInput) HoursResult {
	if in.HoursCompleted <= 0 {
		return hoursFailed(constants.MsgHoursNotPositive)
	}

	hours := gormModels.VolunteeringHours{
		MemberID:            memberID,
		ActivityName:        strings.TrimSpace(in.ActivityName),
		ActivityDescription: in.ActivityDescription,
		HoursCompleted:      in.HoursCompleted,
		ActivityDate:        in.ActivityDate,
		OrganizationName:    in.OrganizationName,
		SupervisorName:      in.SupervisorName,
		SupervisorEmail:     in.SupervisorEmail,
		SupervisorPhone:     in.SupervisorPhone,
		Status:              constants.HoursPending,
	}

	if s.useLive(entityHours, "submit") {
		if err := s.repo.Create(ctx, &hours); err != nil {
			s.liveFailed(entityHours, "submit", err)
			return hoursFailed(constants.MsgDatabaseError)
		}
		s.liveOK(entityHours, "submit")
	} else {
		hours.ID = gormModels.NewID()
		hours.CreatedAt = now()
		hours.UpdatedAt = hours.CreatedAt
		s.fallback.Hours.Prepend(hours)
	}

	s.metrics.RecordSubmission()
	return hoursOK(hours)
}

func (s *VolunteeringService) ListForMember(ctx context.Context, memberID string) HoursListResult {
	if s.useLive(entityHours, "list_member") {
		hours, err := s.repo.ListForMember(ctx, memberID)
		if err != nil {
			s.liveFailed(entityHours, "list_member", err)
			return HoursListResult{Error: constants.MsgDatabaseError}
		}
		s.liveOK(entityHours, "list_member")
		return HoursListResult{Success: true, Hours: hours}
	}

	hours := s.fallback.Hours.Filter(func(h *gormModels.VolunteeringHours) bool {
		return h.MemberID == memberID
	})
	return HoursListResult{Success: true, Hours: hours}
}

// ListAll returns every submission with the submitting member attached.
func (s *VolunteeringService) ListAll(ctx context.Context) HoursListResult {
	if s.useLive(entityHours, "list_all") {
		hours, err := s.repo.ListAll(ctx)
		if err != nil {
			s.liveFailed(entityHours, "list_all", err)
			return HoursListResult{Error: constants.MsgDatabaseError}
		}
		s.liveOK(entityHours, "list_all")
		return HoursListResult{Success: true, Hours: hours}
	}

	hours := s.fallback.Hours.All()
	for i := range hours {
		if m, ok := s.fallback.Members.Get(hours[i].MemberID); ok {
			hours[i].Member = &m
		}
	}
	return HoursListResult{Success: true, Hours: hours}
}

// UpdateStatus approves or rejects a pending submission. Reviewed submissions
// are frozen.
func (s *VolunteeringService) UpdateStatus(ctx context.Context, id, status, notes, reviewerID string) HoursResult {
	hs := constants.HoursStatus(status)
	if !hs.Reviewed() {
		return hoursFailed(constants.MsgInvalidHoursStatus)
	}

	reviewedAt := now()
	reviewer := optional(reviewerID)

	if s.useLive(entityHours, "review") {
		current, err := s.repo.Get(ctx, id)
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			return hoursFailed(constants.MsgHoursNotFound)
		case err != nil:
			s.liveFailed(entityHours, "review", err)
			return hoursFailed(constants.MsgDatabaseError)
		case current.Status.Reviewed():
			return hoursFailed(constants.MsgHoursAlreadyReviewed)
		}

		updated, err := s.repo.UpdateIfPending(ctx, id, map[string]interface{}{
			"status":      hs,
			"admin_notes": notes,
			"reviewed_by": reviewer,
			"reviewed_at": reviewedAt,
		})
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			return hoursFailed(constants.MsgHoursAlreadyReviewed)
		case err != nil:
			s.liveFailed(entityHours, "review", err)
			return hoursFailed(constants.MsgDatabaseError)
		}

		s.liveOK(entityHours, "review")
		s.reviewed(updated.ID, hs, reviewerID)
		return hoursOK(*updated)
	}

	var frozen bool
	updated, ok := s.fallback.Hours.Update(id, func(h *gormModels.VolunteeringHours) {
		if h.Status.Reviewed() {
			frozen = true
			return
		}
		h.Status = hs
		h.AdminNotes = notes
		h.ReviewedBy = reviewer
		h.ReviewedAt = &reviewedAt
		h.UpdatedAt = reviewedAt
	})
	switch {
	case !ok:
		return hoursFailed(constants.MsgHoursNotFound)
	case frozen:
		return hoursFailed(constants.MsgHoursAlreadyReviewed)
	}

	s.reviewed(updated.ID, hs, reviewerID)
	return hoursOK(updated)
}

func (s *VolunteeringService) reviewed(id string, status constants.HoursStatus, reviewerID string) {
	s.metrics.RecordReview(string(status))
	logging.Info("Volunteering hours reviewed",
		"hours_id", id,
		"status", string(status),
		"reviewed_by", reviewerID,
	)
}
