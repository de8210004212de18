package portfolio

import (
	"context"
	"errors"
)

// defaultTemplateID is the layout a brand-new profile starts with. The
// renderer falls back to the catalog's first entry anyway, so a stale value
// here can never make rendering fail.
const defaultTemplateID = "template1"

// SocialLinks is a fixed record of optional profile URLs. An empty string
// means the link is not set.
type SocialLinks struct {
	GitHub   string `json:"github,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Twitter  string `json:"twitter,omitempty"`
	Website  string `json:"website,omitempty"`
}

// UserProfile is the root aggregate holding all of a user's editable
// portfolio content. It is the exact shape that crosses the storage boundary
// as JSON, keyed by user id. ID is empty for a transient profile that has not
// been associated with an authenticated user yet.
type UserProfile struct {
	ID          string       `json:"id,omitempty"`
	Name        string       `json:"name"`
	Title       string       `json:"title"`
	Email       string       `json:"email"`
	Location    string       `json:"location"`
	Bio         string       `json:"bio"`
	Avatar      string       `json:"avatar,omitempty"`
	SocialLinks SocialLinks  `json:"socialLinks"`
	Skills      []Skill      `json:"skills"`
	Projects    []Project    `json:"projects"`
	Education   []Education  `json:"education"`
	Experiences []Experience `json:"experiences"`
	TemplateID  string       `json:"templateId"`
}

// Skill level is an integer between 1 and 5; the store treats it as opaque,
// range enforcement belongs to the editing UI.
type Skill struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Level int    `json:"level"`
}

type Project struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Image        string   `json:"image,omitempty"`
	Technologies []string `json:"technologies"`
	LiveURL      string   `json:"liveUrl,omitempty"`
	RepoURL      string   `json:"repoUrl,omitempty"`
}

// Education dates are month-granularity strings ("2006-01"). An empty
// EndDate means the education is ongoing.
type Education struct {
	ID           string `json:"id"`
	Institution  string `json:"institution"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldOfStudy"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate,omitempty"`
	Description  string `json:"description,omitempty"`
}

// Experience with Current set renders "Present" as its end regardless of any
// stored EndDate.
type Experience struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	Position    string `json:"position"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate,omitempty"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

// NewDefaultProfile returns the empty document a user starts from. The root
// profile always exists; "empty" is default field values, never nil.
func NewDefaultProfile() *UserProfile {
	return &UserProfile{
		Skills:      []Skill{},
		Projects:    []Project{},
		Education:   []Education{},
		Experiences: []Experience{},
		TemplateID:  defaultTemplateID,
	}
}

// Clone returns a deep copy. Callers receive clones so nothing outside the
// store can alias its internal state.
func (p *UserProfile) Clone() *UserProfile {
	out := *p

	out.Skills = make([]Skill, len(p.Skills))
	copy(out.Skills, p.Skills)

	out.Projects = make([]Project, len(p.Projects))
	for i, pr := range p.Projects {
		pr.Technologies = append([]string(nil), pr.Technologies...)
		out.Projects[i] = pr
	}

	out.Education = make([]Education, len(p.Education))
	copy(out.Education, p.Education)

	out.Experiences = make([]Experience, len(p.Experiences))
	copy(out.Experiences, p.Experiences)

	return &out
}

var ErrProfileNotFound = errors.New("profile not found")

// Repository is the external document store collaborator, keyed by user id.
// Get returns ErrProfileNotFound (possibly wrapped) when no document exists.
type Repository interface {
	Get(ctx context.Context, userID string) (*UserProfile, error)
	Put(ctx context.Context, userID string, profile *UserProfile) error
}
