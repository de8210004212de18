// Package render projects a profile document into one of the catalog's
// layout projections. Rendering is pure: no input mutation, no side effects.
package render

// Section kinds emitted by the projections.
const (
	KindAbout      = "about"
	KindSkills     = "skills"
	KindProjects   = "projects"
	KindExperience = "experience"
	KindEducation  = "education"
	KindHistory    = "history" // experience and education grouped side by side
)

// Document is a fully composed, presentation-ready view of one profile. The
// structure is what a client renders verbatim; all conditional inclusion and
// value computation has already happened.
type Document struct {
	TemplateID string    `json:"templateId"`
	Theme      string    `json:"theme"`
	Header     Header    `json:"header"`
	Sections   []Section `json:"sections"`
	Footer     Footer    `json:"footer"`
}

// Header fields are emitted individually only when present; Social keeps the
// fixed github, linkedin, twitter, website order with empty links dropped.
type Header struct {
	Name     string       `json:"name"`
	Title    string       `json:"title"`
	Avatar   string       `json:"avatar,omitempty"`
	Location string       `json:"location,omitempty"`
	Email    string       `json:"email,omitempty"`
	Bio      string       `json:"bio,omitempty"`
	Social   []SocialLink `json:"social,omitempty"`
}

type SocialLink struct {
	Kind string `json:"kind"`
	URL  string `json:"url"`
}

// Section carries exactly one payload matching its Kind; Columns holds
// sub-sections for projections that group two kinds side by side.
type Section struct {
	Kind     string          `json:"kind"`
	Title    string          `json:"title"`
	Body     string          `json:"body,omitempty"`
	Skills   []SkillView     `json:"skills,omitempty"`
	Projects []ProjectView   `json:"projects,omitempty"`
	Timeline []TimelineEntry `json:"timeline,omitempty"`
	Columns  []Section       `json:"columns,omitempty"`
}

// SkillView keeps the raw level and one projection-specific rendering of it:
// a bar percentage, a filled-star count, or a named tier.
type SkillView struct {
	Name       string `json:"name"`
	Level      int    `json:"level"`
	BarPercent int    `json:"barPercent,omitempty"`
	Stars      int    `json:"stars,omitempty"`
	Tier       string `json:"tier,omitempty"`
}

type ProjectView struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Image        string   `json:"image,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	Links        []Link   `json:"links,omitempty"`
	Offset       bool     `json:"offset,omitempty"`
}

type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// TimelineEntry is one experience or education item with its date range
// already formatted.
type TimelineEntry struct {
	Heading     string `json:"heading"`
	Subheading  string `json:"subheading"`
	Location    string `json:"location,omitempty"`
	DateRange   string `json:"dateRange"`
	Description string `json:"description,omitempty"`
}

type Footer struct {
	Year         int    `json:"year"`
	Name         string `json:"name"`
	ContactEmail string `json:"contactEmail,omitempty"`
}
