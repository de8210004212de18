// Package template holds the fixed, ordered catalog of layout descriptors a
// profile can render with.
package template

// Template describes one selectable layout. Purely descriptive; the actual
// projection lives in the render layer, looked up by ID.
type Template struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Thumbnail   string   `json:"thumbnail"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
}

// Catalog is a read-only, ordered list of templates. The first entry is the
// default every unknown or missing template id resolves to.
type Catalog struct {
	templates []Template
	byID      map[string]int
}

// NewCatalog builds a catalog from an ordered list. It panics on an empty
// list since a catalog without a default entry cannot satisfy Resolve.
func NewCatalog(templates ...Template) *Catalog {
	if len(templates) == 0 {
		panic("template: catalog requires at least one template")
	}
	byID := make(map[string]int, len(templates))
	for i, t := range templates {
		byID[t.ID] = i
	}
	return &Catalog{templates: templates, byID: byID}
}

// Templates returns the catalog entries in display order.
func (c *Catalog) Templates() []Template {
	out := make([]Template, len(c.templates))
	copy(out, c.templates)
	return out
}

func (c *Catalog) ByID(id string) (Template, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Template{}, false
	}
	return c.templates[i], true
}

func (c *Catalog) Default() Template {
	return c.templates[0]
}

// Resolve returns the template for id, falling back to the default when id is
// empty or unknown. It never fails.
func (c *Catalog) Resolve(id string) Template {
	if t, ok := c.ByID(id); ok {
		return t
	}
	return c.Default()
}

// DefaultCatalog is the shipped three-template catalog.
func DefaultCatalog() *Catalog {
	return NewCatalog(
		Template{
			ID:          "template1",
			Name:        "Modern Minimal",
			Thumbnail:   "https://images.pexels.com/photos/196645/pexels-photo-196645.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			Description: "A clean, minimalist design with a focus on content and readability. Perfect for professionals who want to showcase their work elegantly.",
			Features:    []string{"Responsive layout", "Clean typography", "Minimalist design", "Focus on content"},
		},
		Template{
			ID:          "template2",
			Name:        "Creative Portfolio",
			Thumbnail:   "https://images.pexels.com/photos/1337247/pexels-photo-1337247.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			Description: "An artistic layout perfect for designers and creative professionals. Features dynamic animations and bold visual elements.",
			Features:    []string{"Dynamic animations", "Bold typography", "Visual focus", "Creative layout"},
		},
		Template{
			ID:          "template3",
			Name:        "Developer Focus",
			Thumbnail:   "https://images.pexels.com/photos/4974915/pexels-photo-4974915.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			Description: "Tailored for developers with code snippets and technical project showcase. Includes GitHub integration and tech stack highlights.",
			Features:    []string{"Code highlighting", "Tech stack focus", "Project showcase", "Dark mode optimized"},
		},
	)
}
