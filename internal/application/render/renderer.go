package render

import (
	"time"

	"github.com/MTahaFarrukh/PortBuilder/internal/domain/portfolio"
	"github.com/MTahaFarrukh/PortBuilder/internal/domain/template"
)

// Projection turns a profile into one layout's view document. Implementations
// must not mutate the profile and must be deterministic for a given year.
type Projection interface {
	ID() string
	Project(p *portfolio.UserProfile, year int) Document
}

// Renderer dispatches to the projection registered for a template id,
// resolving unknown ids through the catalog's default. It never fails.
type Renderer struct {
	catalog     *template.Catalog
	projections map[string]Projection
	now         func() time.Time
}

type RendererOption func(*Renderer)

// WithClock fixes the renderer's notion of "now" (footer year), mainly for
// tests.
func WithClock(now func() time.Time) RendererOption {
	return func(r *Renderer) { r.now = now }
}

func NewRenderer(catalog *template.Catalog, opts ...RendererOption) *Renderer {
	r := &Renderer{
		catalog:     catalog,
		projections: make(map[string]Projection),
		now:         time.Now,
	}
	for _, p := range []Projection{minimalProjection{}, creativeProjection{}, developerProjection{}} {
		r.projections[p.ID()] = p
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render projects the profile with its selected template, or with overrideID
// when non-empty (live preview of a not-yet-saved selection).
func (r *Renderer) Render(p *portfolio.UserProfile, overrideID string) Document {
	id := p.TemplateID
	if overrideID != "" {
		id = overrideID
	}
	resolved := r.catalog.Resolve(id)

	proj, ok := r.projections[resolved.ID]
	if !ok {
		proj, ok = r.projections[r.catalog.Default().ID]
		if !ok {
			proj = minimalProjection{}
		}
	}

	doc := proj.Project(p, r.now().Year())
	doc.TemplateID = resolved.ID
	return doc
}

// header builds the fields every projection shares: name and title always,
// avatar, location and email only when present, social links in fixed order
// with empty ones dropped.
func header(p *portfolio.UserProfile) Header {
	return Header{
		Name:     p.Name,
		Title:    p.Title,
		Avatar:   p.Avatar,
		Location: p.Location,
		Email:    p.Email,
		Social:   socialLinks(p.SocialLinks),
	}
}

func socialLinks(s portfolio.SocialLinks) []SocialLink {
	var out []SocialLink
	for _, l := range []SocialLink{
		{Kind: "github", URL: s.GitHub},
		{Kind: "linkedin", URL: s.LinkedIn},
		{Kind: "twitter", URL: s.Twitter},
		{Kind: "website", URL: s.Website},
	} {
		if l.URL != "" {
			out = append(out, l)
		}
	}
	return out
}

func projectLinks(pr portfolio.Project, liveLabel, repoLabel string) []Link {
	var links []Link
	if pr.LiveURL != "" {
		links = append(links, Link{Label: liveLabel, URL: pr.LiveURL})
	}
	if pr.RepoURL != "" {
		links = append(links, Link{Label: repoLabel, URL: pr.RepoURL})
	}
	return links
}

func experienceTimeline(items []portfolio.Experience) []TimelineEntry {
	out := make([]TimelineEntry, len(items))
	for i, e := range items {
		out[i] = TimelineEntry{
			Heading:     e.Position,
			Subheading:  e.Company,
			Location:    e.Location,
			DateRange:   experienceRange(e),
			Description: e.Description,
		}
	}
	return out
}

func educationTimeline(items []portfolio.Education) []TimelineEntry {
	out := make([]TimelineEntry, len(items))
	for i, e := range items {
		out[i] = TimelineEntry{
			Heading:     e.Degree + " in " + e.FieldOfStudy,
			Subheading:  e.Institution,
			DateRange:   educationRange(e),
			Description: e.Description,
		}
	}
	return out
}
