package api

import (
	"bytes"
	"encoding/json"
	"time"

	"portfolio-backend/models"
)

// External representations. Entities are never marshaled directly on routes
// where the exposed shape differs from the stored one (field selection,
// embedded relations, the denormalized category_name on skills).

type CategoryResource struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

type TagResource struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type SkillResource struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Category     uint   `json:"category"`
	CategoryName string `json:"category_name"`
	Description  string `json:"description"`
	Icon         string `json:"icon"`
}

type ProjectResource struct {
	ID           uint            `json:"id"`
	Title        string          `json:"title"`
	Slug         string          `json:"slug"`
	Description  string          `json:"description"`
	Image        string          `json:"image"`
	Technologies []SkillResource `json:"technologies"`
	DemoURL      string          `json:"demo_url"`
	GithubURL    string          `json:"github_url"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

type BlogPostResource struct {
	ID        uint          `json:"id"`
	Title     string        `json:"title"`
	Slug      string        `json:"slug"`
	Content   string        `json:"content"`
	Image     string        `json:"image"`
	Tags      []TagResource `json:"tags"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

func toCategoryResource(c *models.Category) CategoryResource {
	return CategoryResource{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
	}
}

func toTagResource(t *models.Tag) TagResource {
	return TagResource{
		ID:   t.ID,
		Name: t.Name,
		Slug: t.Slug,
	}
}

// toSkillResource expects the skill's Category to be joined; category_name is
// computed here, never stored.
func toSkillResource(s *models.Skill) SkillResource {
	return SkillResource{
		ID:           s.ID,
		Name:         s.Name,
		Category:     s.CategoryID,
		CategoryName: s.Category.Name,
		Description:  s.Description,
		Icon:         s.Icon,
	}
}

func toProjectResource(p *models.Project) ProjectResource {
	technologies := make([]SkillResource, 0, len(p.Technologies))
	for i := range p.Technologies {
		technologies = append(technologies, toSkillResource(&p.Technologies[i]))
	}

	return ProjectResource{
		ID:           p.ID,
		Title:        p.Title,
		Slug:         p.Slug,
		Description:  p.Description,
		Image:        p.Image,
		Technologies: technologies,
		DemoURL:      p.DemoURL,
		GithubURL:    p.GithubURL,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func toBlogPostResource(b *models.BlogPost) BlogPostResource {
	tags := make([]TagResource, 0, len(b.Tags))
	for i := range b.Tags {
		tags = append(tags, toTagResource(&b.Tags[i]))
	}

	return BlogPostResource{
		ID:        b.ID,
		Title:     b.Title,
		Slug:      b.Slug,
		Content:   b.Content,
		Image:     b.Image,
		Tags:      tags,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// GroupedSkills maps a category display name to the skills under it. Buckets
// are keyed by name, not category id, so two categories sharing a display
// name merge into one bucket. Key order is first-encounter order over the
// skill scan, which is why the type marshals itself: encoding/json sorts map
// keys.
type GroupedSkills struct {
	names   []string
	buckets map[string][]SkillResource
}

func groupSkillsByCategory(skills []*models.Skill) *GroupedSkills {
	g := &GroupedSkills{buckets: make(map[string][]SkillResource)}
	for _, skill := range skills {
		name := skill.Category.Name
		if _, seen := g.buckets[name]; !seen {
			g.names = append(g.names, name)
		}
		g.buckets[name] = append(g.buckets[name], toSkillResource(skill))
	}
	return g
}

func (g *GroupedSkills) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range g.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		bucket, err := json.Marshal(g.buckets[name])
		if err != nil {
			return nil, err
		}
		buf.Write(bucket)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
