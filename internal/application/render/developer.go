package render

import "github.com/MTahaFarrukh/PortBuilder/internal/domain/portfolio"

// developerProjection is the "Developer Focus" layout: a monospace
// source-code framing, skills as named tiers, and the company line rendered
// as "company // location".
type developerProjection struct{}

func (developerProjection) ID() string { return "template3" }

func skillTier(level int) string {
	switch level {
	case 5:
		return "expert"
	case 4:
		return "advanced"
	case 3:
		return "proficient"
	default:
		return "familiar"
	}
}

func (developerProjection) Project(p *portfolio.UserProfile, year int) Document {
	doc := Document{
		Theme:  "developer",
		Header: header(p),
		Footer: Footer{Year: year, Name: p.Name},
	}

	doc.Sections = append(doc.Sections, Section{
		Kind:  KindAbout,
		Title: "README.md",
		Body:  p.Bio,
	})

	if len(p.Skills) > 0 {
		skills := make([]SkillView, len(p.Skills))
		for i, s := range p.Skills {
			skills[i] = SkillView{
				Name:  s.Name,
				Level: s.Level,
				Tier:  skillTier(s.Level),
			}
		}
		doc.Sections = append(doc.Sections, Section{Kind: KindSkills, Title: "skills.json", Skills: skills})
	}

	if len(p.Projects) > 0 {
		projects := make([]ProjectView, len(p.Projects))
		for i, pr := range p.Projects {
			projects[i] = ProjectView{
				Title:        pr.Title,
				Description:  pr.Description,
				Image:        pr.Image,
				Technologies: append([]string(nil), pr.Technologies...),
				Links:        projectLinks(pr, "Live Demo", "View Code"),
			}
		}
		doc.Sections = append(doc.Sections, Section{Kind: KindProjects, Title: "projects/", Projects: projects})
	}

	history := Section{Kind: KindHistory, Title: "history/"}
	if len(p.Experiences) > 0 {
		entries := experienceTimeline(p.Experiences)
		for i := range entries {
			if entries[i].Location != "" {
				entries[i].Subheading = entries[i].Subheading + " // " + entries[i].Location
				entries[i].Location = ""
			}
		}
		history.Columns = append(history.Columns, Section{
			Kind:     KindExperience,
			Title:    "experience.log",
			Timeline: entries,
		})
	}
	if len(p.Education) > 0 {
		history.Columns = append(history.Columns, Section{
			Kind:     KindEducation,
			Title:    "education.log",
			Timeline: educationTimeline(p.Education),
		})
	}
	if len(history.Columns) > 0 {
		doc.Sections = append(doc.Sections, history)
	}

	return doc
}
