// Package store owns the canonical in-memory profile document for one user
// and writes it through to the external document store after every mutation.
package store

import (
	"context"
	"errors"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/MTahaFarrukh/PortBuilder/internal/domain/portfolio"
	"github.com/MTahaFarrukh/PortBuilder/pkg/apperror"
	"github.com/MTahaFarrukh/PortBuilder/pkg/identifier"
	"github.com/MTahaFarrukh/PortBuilder/pkg/logger"
)

var tracer = otel.Tracer("profile_store")

// Publisher receives a notification after the document has been persisted.
// Publishing is best-effort; failures are logged and never surface.
type Publisher interface {
	PublishProfileSaved(ctx context.Context, userID string, profile *portfolio.UserProfile) error
}

// State carries the transient flags the UI reads alongside the document.
// Err holds the last failure message; it is cleared when an async operation
// starts and overwritten on the next failure.
type State struct {
	IsLoading bool   `json:"isLoading"`
	IsSaving  bool   `json:"isSaving"`
	Err       string `json:"error,omitempty"`
}

// ProfileStore holds one user's profile document. The document is never nil;
// a fresh store starts from the default empty profile. All operations are
// atomic under an internal mutex, and every accessor hands out deep copies.
type ProfileStore struct {
	mu      sync.Mutex
	profile *portfolio.UserProfile
	state   State

	repo   portfolio.Repository
	ids    identifier.Generator
	events Publisher
	logger logger.Logger
}

type Option func(*ProfileStore)

func WithPublisher(pub Publisher) Option {
	return func(s *ProfileStore) { s.events = pub }
}

func New(repo portfolio.Repository, ids identifier.Generator, log logger.Logger, opts ...Option) *ProfileStore {
	s := &ProfileStore{
		profile: portfolio.NewDefaultProfile(),
		repo:    repo,
		ids:     ids,
		logger:  log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Profile returns a deep copy of the current document.
func (s *ProfileStore) Profile() *portfolio.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile.Clone()
}

func (s *ProfileStore) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// mutate applies fn to the document and, when the profile is id-bearing,
// writes the whole document through to the repository. Persistence failures
// set the error state but never roll back the in-memory change.
func (s *ProfileStore) mutate(ctx context.Context, fn func(p *portfolio.UserProfile)) {
	s.mu.Lock()
	fn(s.profile)
	var snapshot *portfolio.UserProfile
	if s.profile.ID != "" {
		snapshot = s.profile.Clone()
	}
	s.mu.Unlock()

	if snapshot != nil {
		s.persist(ctx, snapshot)
	}
}

func (s *ProfileStore) persist(ctx context.Context, snapshot *portfolio.UserProfile) {
	if err := s.repo.Put(ctx, snapshot.ID, snapshot); err != nil {
		appErr := apperror.NewPersistence("write-through put failed", err)
		s.logger.Error("Failed to persist profile", appErr, zap.String("user_id", snapshot.ID))
		s.setErr(appErr.Message)
		return
	}
	s.publish(ctx, snapshot)
}

func (s *ProfileStore) publish(ctx context.Context, snapshot *portfolio.UserProfile) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishProfileSaved(ctx, snapshot.ID, snapshot); err != nil {
		s.logger.Warn("Failed to publish profile event", zap.String("user_id", snapshot.ID), zap.Error(err))
	}
}

func (s *ProfileStore) setErr(msg string) {
	s.mu.Lock()
	s.state.Err = msg
	s.mu.Unlock()
}

// UpdateProfile merges the patch into the document at the top level only. A
// socialLinks value present in the patch replaces the whole record.
func (s *ProfileStore) UpdateProfile(ctx context.Context, patch portfolio.ProfilePatch) {
	s.mutate(ctx, func(p *portfolio.UserProfile) {
		patch.Apply(p)
	})
}

// AddSkill assigns a fresh id and appends, preserving prior entries.
func (s *ProfileStore) AddSkill(ctx context.Context, in portfolio.SkillInput) string {
	id := s.ids.NewID()
	s.mutate(ctx, func(p *portfolio.UserProfile) {
		p.Skills = append(p.Skills, portfolio.Skill{ID: id, Name: in.Name, Level: in.Level})
	})
	return id
}

// UpdateSkill merges the patch into the matching entry; unmatched ids are a
// silent no-op.
func (s *ProfileStore) UpdateSkill(ctx context.Context, id string, patch portfolio.SkillPatch) {
	s.mutate(ctx, func(p *portfolio.UserProfile) {
		for i := range p.Skills {
			if p.Skills[i].ID == id {
				patch.Apply(&p.Skills[i])
				return
			}
		}
	})
}

// RemoveSkill filters the matching entry out; idempotent.
func (s *ProfileStore) RemoveSkill(ctx context.Context, id string) {
	s.mutate(ctx, func(p *portfolio.UserProfile) {
		out := p.Skills[:0]
		for _, sk := range p.Skills {
			if sk.ID != id {
				out = append(out, sk)
			}
		}
		p.Skills = out
	})
}

func (s *ProfileStore) AddProject(ctx context.Context, in portfolio.ProjectInput) string {
	id := s.ids.NewID()
	s.mutate(ctx, func(p *portfolio.UserProfile) {
		p.Projects = append(p.Projects, portfolio.Project{
			ID:           id,
			Title:        in.Title,
			Description:  in.Description,
			Image:        in.Image,
			Technologies: append([]string(nil), in.Technologies...),
			LiveURL:      in.LiveURL,
			RepoURL:      in.RepoURL,
		})
	})
	return id
}

func (s *ProfileStore) UpdateProject(ctx context.Context, id string, patch portfolio.ProjectPatch) {
	s.mutate(ctx, func(p *portfolio.UserProfile) {
		for i := range p.Projects {
			if p.Projects[i].ID == id {
				patch.Apply(&p.Projects[i])
				return
			}
		}
	})
}

func (s *ProfileStore) RemoveProject(ctx context.Context, id string) {
	s.mutate(ctx, func(p *portfolio.UserProfile) {
		out := p.Projects[:0]
		for _, pr := range p.Projects {
			if pr.ID != id {
				out = append(out, pr)
			}
		}
		p.Projects = out
	})
}

func (s *ProfileStore) AddEducation(ctx context.Context, in portfolio.EducationInput) string {
	id := s.ids.NewID()
	s.mutate(ctx, func(p *portfolio.UserProfile) {
		p.Education = append(p.Education, portfolio.Education{
			ID:           id,
			Institution:  in.Institution,
			Degree:       in.Degree,
			FieldOfStudy: in.FieldOfStudy,
			StartDate:    in.StartDate,
			EndDate:      in.EndDate,
			Description:  in.Description,
		})
	})
	return id
}

func (s *ProfileStore) UpdateEducation(ctx context.Context, id string, patch portfolio.EducationPatch) {
	s.mutate(ctx, func(p *portfolio.UserProfile) {
		for i := range p.Education {
			if p.Education[i].ID == id {
				patch.Apply(&p.Education[i])
				return
			}
		}
	})
}

func (s *ProfileStore) RemoveEducation(ctx context.Context, id string) {
	s.mutate(ctx, func(p *portfolio.UserProfile) {
		out := p.Education[:0]
		for _, ed := range p.Education {
			if ed.ID != id {
				out = append(out, ed)
			}
		}
		p.Education = out
	})
}

func (s *ProfileStore) AddExperience(ctx context.Context, in portfolio.ExperienceInput) string {
	id := s.ids.NewID()
	s.mutate(ctx, func(p *portfolio.UserProfile) {
		p.Experiences = append(p.Experiences, portfolio.Experience{
			ID:          id,
			Company:     in.Company,
			Position:    in.Position,
			Location:    in.Location,
			StartDate:   in.StartDate,
			EndDate:     in.EndDate,
			Current:     in.Current,
			Description: in.Description,
		})
	})
	return id
}

func (s *ProfileStore) UpdateExperience(ctx context.Context, id string, patch portfolio.ExperiencePatch) {
	s.mutate(ctx, func(p *portfolio.UserProfile) {
		for i := range p.Experiences {
			if p.Experiences[i].ID == id {
				patch.Apply(&p.Experiences[i])
				return
			}
		}
	})
}

func (s *ProfileStore) RemoveExperience(ctx context.Context, id string) {
	s.mutate(ctx, func(p *portfolio.UserProfile) {
		out := p.Experiences[:0]
		for _, ex := range p.Experiences {
			if ex.ID != id {
				out = append(out, ex)
			}
		}
		p.Experiences = out
	})
}

// SaveProfile persists the document as it is at call time. Failures land in
// the error state, never in a return value; the UI reads State afterwards.
// A profile that was never associated with a user id cannot be saved.
func (s *ProfileStore) SaveProfile(ctx context.Context) {
	ctx, span := tracer.Start(ctx, "SaveProfile")
	defer span.End()

	s.mu.Lock()
	s.state.IsSaving = true
	s.state.Err = ""
	snapshot := s.profile.Clone()
	s.mu.Unlock()

	if snapshot.ID == "" {
		appErr := apperror.NewMissingIdentity()
		span.RecordError(appErr)
		s.logger.Warn("Save requested for profile without user id")
		s.finishSave(appErr.Message)
		return
	}
	span.SetAttributes(attribute.String("user_id", snapshot.ID))

	if err := s.repo.Put(ctx, snapshot.ID, snapshot); err != nil {
		appErr := apperror.NewPersistence("save put failed", err)
		span.RecordError(appErr)
		s.logger.Error("Failed to save profile", appErr, zap.String("user_id", snapshot.ID))
		s.finishSave(appErr.Message)
		return
	}

	s.publish(ctx, snapshot)
	s.finishSave("")
}

func (s *ProfileStore) finishSave(errMsg string) {
	s.mu.Lock()
	s.state.IsSaving = false
	s.state.Err = errMsg
	s.mu.Unlock()
}

// LoadProfile adopts the stored document for userID, forcing its id to
// userID. A missing document is not a failure: a fresh default document is
// created, persisted immediately and adopted.
func (s *ProfileStore) LoadProfile(ctx context.Context, userID string) {
	ctx, span := tracer.Start(ctx, "LoadProfile")
	defer span.End()
	span.SetAttributes(attribute.String("user_id", userID))

	s.mu.Lock()
	s.state.IsLoading = true
	s.state.Err = ""
	s.mu.Unlock()

	stored, err := s.repo.Get(ctx, userID)
	switch {
	case err == nil:
		stored.ID = userID
		s.adopt(stored)

	case errors.Is(err, portfolio.ErrProfileNotFound):
		fresh := portfolio.NewDefaultProfile()
		fresh.ID = userID
		if putErr := s.repo.Put(ctx, userID, fresh); putErr != nil {
			s.logger.Warn("Failed to persist fresh profile", zap.String("user_id", userID), zap.Error(putErr))
		}
		s.adopt(fresh)

	default:
		appErr := apperror.NewPersistence("load get failed", err)
		span.RecordError(appErr)
		s.logger.Error("Failed to load profile", appErr, zap.String("user_id", userID))
		s.mu.Lock()
		s.state.IsLoading = false
		s.state.Err = appErr.Message
		s.mu.Unlock()
	}
}

func (s *ProfileStore) adopt(p *portfolio.UserProfile) {
	s.mu.Lock()
	s.profile = p
	s.state.IsLoading = false
	s.mu.Unlock()
}

// ResetProfile discards the current document, id included, and starts over
// from the default. Nothing is persisted.
func (s *ProfileStore) ResetProfile() {
	s.mu.Lock()
	s.profile = portfolio.NewDefaultProfile()
	s.mu.Unlock()
}
