package render

import "github.com/MTahaFarrukh/PortBuilder/internal/domain/portfolio"

// creativeProjection is the "Creative Portfolio" layout: the bio sits in the
// hero header, skills show filled stars, projects alternate offsets, and
// experience and education share a two-column section. The footer carries a
// contact call-to-action.
type creativeProjection struct{}

func (creativeProjection) ID() string { return "template2" }

func (creativeProjection) Project(p *portfolio.UserProfile, year int) Document {
	h := header(p)
	h.Bio = p.Bio

	doc := Document{
		Theme:  "creative",
		Header: h,
		Footer: Footer{Year: year, Name: p.Name, ContactEmail: p.Email},
	}

	if len(p.Skills) > 0 {
		skills := make([]SkillView, len(p.Skills))
		for i, s := range p.Skills {
			skills[i] = SkillView{
				Name:  s.Name,
				Level: s.Level,
				Stars: s.Level,
			}
		}
		doc.Sections = append(doc.Sections, Section{Kind: KindSkills, Title: "Skills", Skills: skills})
	}

	if len(p.Projects) > 0 {
		projects := make([]ProjectView, len(p.Projects))
		for i, pr := range p.Projects {
			projects[i] = ProjectView{
				Title:        pr.Title,
				Description:  pr.Description,
				Image:        pr.Image,
				Technologies: append([]string(nil), pr.Technologies...),
				Links:        projectLinks(pr, "View Project", "Source Code"),
				Offset:       i%2 == 0,
			}
		}
		doc.Sections = append(doc.Sections, Section{Kind: KindProjects, Title: "Projects", Projects: projects})
	}

	history := Section{Kind: KindHistory, Title: "Experience & Education"}
	if len(p.Experiences) > 0 {
		history.Columns = append(history.Columns, Section{
			Kind:     KindExperience,
			Title:    "Experience",
			Timeline: experienceTimeline(p.Experiences),
		})
	}
	if len(p.Education) > 0 {
		history.Columns = append(history.Columns, Section{
			Kind:     KindEducation,
			Title:    "Education",
			Timeline: educationTimeline(p.Education),
		})
	}
	if len(history.Columns) > 0 {
		doc.Sections = append(doc.Sections, history)
	}

	return doc
}
