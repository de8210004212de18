package http

import (
	"github.com/MTahaFarrukh/PortBuilder/internal/application/store"
	"github.com/MTahaFarrukh/PortBuilder/internal/domain/portfolio"
)

// Request bodies bind straight onto the domain's typed patches and inputs;
// their json tags are the wire shape. The envelopes below are what the
// editor UI reads back: the document plus the store's transient flags.

type ProfileResponse struct {
	Profile *portfolio.UserProfile `json:"profile"`
	State   store.State            `json:"state"`
}

type EntityCreatedResponse struct {
	ID      string                 `json:"id"`
	Profile *portfolio.UserProfile `json:"profile"`
	State   store.State            `json:"state"`
}

type SelectTemplateRequest struct {
	TemplateID string `json:"templateId" binding:"required"`
}

func toProfileResponse(s *store.ProfileStore) ProfileResponse {
	return ProfileResponse{Profile: s.Profile(), State: s.State()}
}

func toEntityCreatedResponse(s *store.ProfileStore, id string) EntityCreatedResponse {
	return EntityCreatedResponse{ID: id, Profile: s.Profile(), State: s.State()}
}
