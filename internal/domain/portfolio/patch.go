package portfolio

// Typed patches replace the duck-typed object spreads of a loosely typed
// store: a nil field is "leave alone", a non-nil field is "set". SocialLinks
// is replaced as a whole record when present, matching the top-level-only
// merge rule of UpdateProfile.

type ProfilePatch struct {
	Name        *string      `json:"name"`
	Title       *string      `json:"title"`
	Email       *string      `json:"email"`
	Location    *string      `json:"location"`
	Bio         *string      `json:"bio"`
	Avatar      *string      `json:"avatar"`
	SocialLinks *SocialLinks `json:"socialLinks"`
	TemplateID  *string      `json:"templateId"`
}

func (patch ProfilePatch) Apply(p *UserProfile) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Email != nil {
		p.Email = *patch.Email
	}
	if patch.Location != nil {
		p.Location = *patch.Location
	}
	if patch.Bio != nil {
		p.Bio = *patch.Bio
	}
	if patch.Avatar != nil {
		p.Avatar = *patch.Avatar
	}
	if patch.SocialLinks != nil {
		p.SocialLinks = *patch.SocialLinks
	}
	if patch.TemplateID != nil {
		p.TemplateID = *patch.TemplateID
	}
}

// SkillInput carries everything but the id, which the store assigns.
type SkillInput struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

type SkillPatch struct {
	Name  *string `json:"name"`
	Level *int    `json:"level"`
}

func (patch SkillPatch) Apply(s *Skill) {
	if patch.Name != nil {
		s.Name = *patch.Name
	}
	if patch.Level != nil {
		s.Level = *patch.Level
	}
}

type ProjectInput struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Image        string   `json:"image"`
	Technologies []string `json:"technologies"`
	LiveURL      string   `json:"liveUrl"`
	RepoURL      string   `json:"repoUrl"`
}

type ProjectPatch struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	Image        *string   `json:"image"`
	Technologies *[]string `json:"technologies"`
	LiveURL      *string   `json:"liveUrl"`
	RepoURL      *string   `json:"repoUrl"`
}

func (patch ProjectPatch) Apply(p *Project) {
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}
	if patch.Technologies != nil {
		p.Technologies = append([]string(nil), (*patch.Technologies)...)
	}
	if patch.LiveURL != nil {
		p.LiveURL = *patch.LiveURL
	}
	if patch.RepoURL != nil {
		p.RepoURL = *patch.RepoURL
	}
}

type EducationInput struct {
	Institution  string `json:"institution"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldOfStudy"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	Description  string `json:"description"`
}

type EducationPatch struct {
	Institution  *string `json:"institution"`
	Degree       *string `json:"degree"`
	FieldOfStudy *string `json:"fieldOfStudy"`
	StartDate    *string `json:"startDate"`
	EndDate      *string `json:"endDate"`
	Description  *string `json:"description"`
}

func (patch EducationPatch) Apply(e *Education) {
	if patch.Institution != nil {
		e.Institution = *patch.Institution
	}
	if patch.Degree != nil {
		e.Degree = *patch.Degree
	}
	if patch.FieldOfStudy != nil {
		e.FieldOfStudy = *patch.FieldOfStudy
	}
	if patch.StartDate != nil {
		e.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		e.EndDate = *patch.EndDate
	}
	if patch.Description != nil {
		e.Description = *patch.Description
	}
}

type ExperienceInput struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	Location    string `json:"location"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

type ExperiencePatch struct {
	Company     *string `json:"company"`
	Position    *string `json:"position"`
	Location    *string `json:"location"`
	StartDate   *string `json:"startDate"`
	EndDate     *string `json:"endDate"`
	Current     *bool   `json:"current"`
	Description *string `json:"description"`
}

func (patch ExperiencePatch) Apply(e *Experience) {
	if patch.Company != nil {
		e.Company = *patch.Company
	}
	if patch.Position != nil {
		e.Position = *patch.Position
	}
	if patch.Location != nil {
		e.Location = *patch.Location
	}
	if patch.StartDate != nil {
		e.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		e.EndDate = *patch.EndDate
	}
	if patch.Current != nil {
		e.Current = *patch.Current
	}
	if patch.Description != nil {
		e.Description = *patch.Description
	}
}
