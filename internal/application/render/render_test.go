package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MTahaFarrukh/PortBuilder/internal/domain/portfolio"
	"github.com/MTahaFarrukh/PortBuilder/internal/domain/template"
)

func fixedClock() time.Time {
	return time.Date(2025, time.March, 14, 10, 0, 0, 0, time.UTC)
}

func newTestRenderer() *Renderer {
	return NewRenderer(template.DefaultCatalog(), WithClock(fixedClock))
}

func sampleProfile() *portfolio.UserProfile {
	p := portfolio.NewDefaultProfile()
	p.ID = "user-1"
	p.Name = "Ada Lovelace"
	p.Title = "Software Engineer"
	p.Email = "ada@example.com"
	p.Location = "London"
	p.Bio = "I enjoy analytical engines."
	p.Avatar = "https://cdn.example.com/ada.png"
	p.SocialLinks = portfolio.SocialLinks{
		GitHub:  "https://github.com/ada",
		Website: "https://ada.dev",
	}
	p.Skills = []portfolio.Skill{
		{ID: "s1", Name: "Go", Level: 5},
		{ID: "s2", Name: "SQL", Level: 3},
		{ID: "s3", Name: "CSS", Level: 1},
	}
	p.Projects = []portfolio.Project{
		{ID: "p1", Title: "Engine", Description: "analytical engine", Technologies: []string{"brass", "steam"}, LiveURL: "https://engine.example.com", RepoURL: "https://github.com/ada/engine"},
		{ID: "p2", Title: "Notes", Description: "translation notes"},
	}
	p.Education = []portfolio.Education{
		{ID: "e1", Institution: "Home", Degree: "BSc", FieldOfStudy: "Mathematics", StartDate: "1833-06", EndDate: "1835-01", Description: "tutored"},
	}
	p.Experiences = []portfolio.Experience{
		{ID: "x1", Company: "Babbage & Co", Position: "Analyst", Location: "London", StartDate: "1837-01", Current: true, Description: "wrote the first program"},
	}
	return p
}

func findSection(doc Document, kind string) (Section, bool) {
	for _, s := range doc.Sections {
		if s.Kind == kind {
			return s, true
		}
	}
	for _, s := range doc.Sections {
		for _, col := range s.Columns {
			if col.Kind == kind {
				return col, true
			}
		}
	}
	return Section{}, false
}

func allTemplateIDs() []string {
	ids := make([]string, 0, 3)
	for _, t := range template.DefaultCatalog().Templates() {
		ids = append(ids, t.ID)
	}
	return ids
}

func TestFormatMonth(t *testing.T) {
	assert.Equal(t, "January 2020", formatMonth("2020-01"))
	assert.Equal(t, "December 1999", formatMonth("1999-12"))
	// Unparseable input passes through rather than erroring.
	assert.Equal(t, "soon", formatMonth("soon"))
	assert.Equal(t, "", formatMonth(""))
}

func TestExperienceRangeCurrentOverridesEndDate(t *testing.T) {
	e := portfolio.Experience{StartDate: "2020-01", EndDate: "2022-06", Current: true}
	assert.Equal(t, "January 2020 – Present", experienceRange(e))

	e.Current = false
	assert.Equal(t, "January 2020 – June 2022", experienceRange(e))

	e.EndDate = ""
	assert.Equal(t, "January 2020 – Present", experienceRange(e))
}

func TestEducationRangeSharesPresentFallback(t *testing.T) {
	ed := portfolio.Education{StartDate: "2020-01"}
	ex := portfolio.Experience{StartDate: "2020-01"}
	assert.Equal(t, experienceRange(ex), educationRange(ed))

	ed.EndDate = "2023-05"
	assert.Equal(t, "January 2020 – May 2023", educationRange(ed))
}

func TestUnknownTemplateFallsBackToDefault(t *testing.T) {
	r := newTestRenderer()
	p := sampleProfile()
	p.TemplateID = "nonexistent"

	var got Document
	require.NotPanics(t, func() { got = r.Render(p, "") })

	want := r.Render(p, "template1")
	assert.Equal(t, want, got)
	assert.Equal(t, "template1", got.TemplateID)
}

func TestOverrideTemplateWinsOverSelection(t *testing.T) {
	r := newTestRenderer()
	p := sampleProfile()
	p.TemplateID = "template1"

	doc := r.Render(p, "template3")
	assert.Equal(t, "template3", doc.TemplateID)
	assert.Equal(t, "developer", doc.Theme)
}

func TestEmptyCollectionsOmitSectionsInEveryProjection(t *testing.T) {
	r := newTestRenderer()
	p := portfolio.NewDefaultProfile()
	p.Name = "Ada"

	for _, id := range allTemplateIDs() {
		doc := r.Render(p, id)
		for _, kind := range []string{KindSkills, KindProjects, KindExperience, KindEducation} {
			_, found := findSection(doc, kind)
			assert.False(t, found, "template %s must omit empty %s section", id, kind)
		}
	}
}

func TestEmptySkillsOmitOnlySkillsSection(t *testing.T) {
	r := newTestRenderer()
	p := sampleProfile()
	p.Skills = []portfolio.Skill{}

	for _, id := range allTemplateIDs() {
		doc := r.Render(p, id)
		_, found := findSection(doc, KindSkills)
		assert.False(t, found, "template %s must omit the skills section", id)
		_, found = findSection(doc, KindProjects)
		assert.True(t, found, "template %s must keep the projects section", id)
	}
}

func TestCurrentExperienceShowsPresentInEveryProjection(t *testing.T) {
	r := newTestRenderer()
	p := sampleProfile()
	p.Experiences[0].Current = true
	p.Experiences[0].EndDate = "2022-06"

	for _, id := range allTemplateIDs() {
		doc := r.Render(p, id)
		sec, found := findSection(doc, KindExperience)
		require.True(t, found, "template %s", id)
		require.NotEmpty(t, sec.Timeline)
		assert.Equal(t, "January 1837 – Present", sec.Timeline[0].DateRange, "template %s", id)
	}
}

func TestRenderDoesNotMutateProfile(t *testing.T) {
	r := newTestRenderer()
	p := sampleProfile()
	snapshot := p.Clone()

	for _, id := range allTemplateIDs() {
		r.Render(p, id)
	}
	assert.Equal(t, snapshot, p)
}

func TestRenderIsDeterministic(t *testing.T) {
	r := newTestRenderer()
	p := sampleProfile()

	assert.Equal(t, r.Render(p, ""), r.Render(p, ""))
}

func TestHeaderOmitsAbsentFields(t *testing.T) {
	r := newTestRenderer()
	p := sampleProfile()
	p.Avatar = ""
	p.Location = ""
	p.Email = ""
	p.SocialLinks = portfolio.SocialLinks{}

	doc := r.Render(p, "template1")
	assert.Empty(t, doc.Header.Avatar)
	assert.Empty(t, doc.Header.Location)
	assert.Empty(t, doc.Header.Email)
	assert.Empty(t, doc.Header.Social)
}

func TestSocialLinksKeepFixedOrderAndDropEmpty(t *testing.T) {
	r := newTestRenderer()
	p := sampleProfile()
	p.SocialLinks = portfolio.SocialLinks{
		Twitter: "https://twitter.com/ada",
		GitHub:  "https://github.com/ada",
	}

	doc := r.Render(p, "template2")
	require.Len(t, doc.Header.Social, 2)
	assert.Equal(t, "github", doc.Header.Social[0].Kind)
	assert.Equal(t, "twitter", doc.Header.Social[1].Kind)
}

func TestMinimalSkillBars(t *testing.T) {
	r := newTestRenderer()
	doc := r.Render(sampleProfile(), "template1")

	sec, found := findSection(doc, KindSkills)
	require.True(t, found)
	require.Len(t, sec.Skills, 3)
	assert.Equal(t, 100, sec.Skills[0].BarPercent)
	assert.Equal(t, 60, sec.Skills[1].BarPercent)
	assert.Equal(t, 20, sec.Skills[2].BarPercent)
}

func TestCreativeSkillStarsAndProjectOffsets(t *testing.T) {
	r := newTestRenderer()
	doc := r.Render(sampleProfile(), "template2")

	sec, found := findSection(doc, KindSkills)
	require.True(t, found)
	assert.Equal(t, 5, sec.Skills[0].Stars)
	assert.Equal(t, 3, sec.Skills[1].Stars)

	projects, found := findSection(doc, KindProjects)
	require.True(t, found)
	require.Len(t, projects.Projects, 2)
	assert.True(t, projects.Projects[0].Offset)
	assert.False(t, projects.Projects[1].Offset)

	// The creative hero carries the bio and the footer a contact email.
	assert.Equal(t, "I enjoy analytical engines.", doc.Header.Bio)
	assert.Equal(t, "ada@example.com", doc.Footer.ContactEmail)
}

func TestDeveloperSkillTiers(t *testing.T) {
	r := newTestRenderer()
	doc := r.Render(sampleProfile(), "template3")

	sec, found := findSection(doc, KindSkills)
	require.True(t, found)
	assert.Equal(t, "expert", sec.Skills[0].Tier)
	assert.Equal(t, "proficient", sec.Skills[1].Tier)
	assert.Equal(t, "familiar", sec.Skills[2].Tier)

	assert.Equal(t, "advanced", skillTier(4))
}

func TestDeveloperCompanyLineFoldsLocation(t *testing.T) {
	r := newTestRenderer()
	doc := r.Render(sampleProfile(), "template3")

	sec, found := findSection(doc, KindExperience)
	require.True(t, found)
	require.NotEmpty(t, sec.Timeline)
	assert.Equal(t, "Babbage & Co // London", sec.Timeline[0].Subheading)
	assert.Empty(t, sec.Timeline[0].Location)
}

func TestProjectLinkLabelsPerProjection(t *testing.T) {
	r := newTestRenderer()
	p := sampleProfile()

	labels := func(id string) []string {
		doc := r.Render(p, id)
		sec, found := findSection(doc, KindProjects)
		require.True(t, found)
		var out []string
		for _, l := range sec.Projects[0].Links {
			out = append(out, l.Label)
		}
		return out
	}

	assert.Equal(t, []string{"Live Demo", "Source Code"}, labels("template1"))
	assert.Equal(t, []string{"View Project", "Source Code"}, labels("template2"))
	assert.Equal(t, []string{"Live Demo", "View Code"}, labels("template3"))
}

func TestProjectWithoutURLsHasNoLinks(t *testing.T) {
	r := newTestRenderer()
	doc := r.Render(sampleProfile(), "template1")

	sec, found := findSection(doc, KindProjects)
	require.True(t, found)
	assert.Empty(t, sec.Projects[1].Links)
}

func TestEducationHeadingAndRange(t *testing.T) {
	r := newTestRenderer()
	doc := r.Render(sampleProfile(), "template1")

	sec, found := findSection(doc, KindEducation)
	require.True(t, found)
	require.Len(t, sec.Timeline, 1)
	assert.Equal(t, "BSc in Mathematics", sec.Timeline[0].Heading)
	assert.Equal(t, "Home", sec.Timeline[0].Subheading)
	assert.Equal(t, "June 1833 – January 1835", sec.Timeline[0].DateRange)
}

func TestFooterYearComesFromInjectedClock(t *testing.T) {
	r := newTestRenderer()
	for _, id := range allTemplateIDs() {
		doc := r.Render(sampleProfile(), id)
		assert.Equal(t, 2025, doc.Footer.Year, "template %s", id)
		assert.Equal(t, "Ada Lovelace", doc.Footer.Name)
	}
}
