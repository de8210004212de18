package render

import "github.com/MTahaFarrukh/PortBuilder/internal/domain/portfolio"

// minimalProjection is the "Modern Minimal" layout: about first, then
// skills as level bars, experience and education as separate timelines,
// projects last.
type minimalProjection struct{}

func (minimalProjection) ID() string { return "template1" }

func (minimalProjection) Project(p *portfolio.UserProfile, year int) Document {
	doc := Document{
		Theme:  "minimal",
		Header: header(p),
		Footer: Footer{Year: year, Name: p.Name},
	}

	doc.Sections = append(doc.Sections, Section{
		Kind:  KindAbout,
		Title: "About Me",
		Body:  p.Bio,
	})

	if len(p.Skills) > 0 {
		skills := make([]SkillView, len(p.Skills))
		for i, s := range p.Skills {
			skills[i] = SkillView{
				Name:       s.Name,
				Level:      s.Level,
				BarPercent: s.Level * 100 / 5,
			}
		}
		doc.Sections = append(doc.Sections, Section{Kind: KindSkills, Title: "Skills", Skills: skills})
	}

	if len(p.Experiences) > 0 {
		doc.Sections = append(doc.Sections, Section{
			Kind:     KindExperience,
			Title:    "Experience",
			Timeline: experienceTimeline(p.Experiences),
		})
	}

	if len(p.Education) > 0 {
		doc.Sections = append(doc.Sections, Section{
			Kind:     KindEducation,
			Title:    "Education",
			Timeline: educationTimeline(p.Education),
		})
	}

	if len(p.Projects) > 0 {
		projects := make([]ProjectView, len(p.Projects))
		for i, pr := range p.Projects {
			projects[i] = ProjectView{
				Title:        pr.Title,
				Description:  pr.Description,
				Image:        pr.Image,
				Technologies: append([]string(nil), pr.Technologies...),
				Links:        projectLinks(pr, "Live Demo", "Source Code"),
			}
		}
		doc.Sections = append(doc.Sections, Section{Kind: KindProjects, Title: "Projects", Projects: projects})
	}

	return doc
}
