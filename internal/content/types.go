package content

import (
	"html/template"
	"strings"
)

type Contact struct {
	GitHub          string `json:"github" yaml:"github" validate:"omitempty,url"`
	LinkedInProfile string `json:"linkedinProfile" yaml:"linkedinProfile"`
	Twitter         string `json:"twitter,omitempty" yaml:"twitter" validate:"omitempty,url"`
	Email           string `json:"email,omitempty" yaml:"email" validate:"omitempty,email"`
	Phone           string `json:"phone,omitempty" yaml:"phone"`
}

type Profile struct {
	Name            string  `json:"name" yaml:"name" validate:"required"`
	Title           string  `json:"title" yaml:"title" validate:"required"`
	Location        string  `json:"location" yaml:"location"`
	Headline        string  `json:"headline" yaml:"headline"`
	JobTitle        string  `json:"jobTitle,omitempty" yaml:"jobTitle"`
	Image           string  `json:"image,omitempty" yaml:"image"`
	YearsExperience string  `json:"yearsExperience,omitempty" yaml:"yearsExperience"`
	Contact         Contact `json:"contact" yaml:"contact"`
}

// SameAs lists the absolute profile URLs built from the contact handles.
func (p Profile) SameAs() []string {
	var links []string
	if p.Contact.LinkedInProfile != "" {
		links = append(links, "https://"+strings.TrimPrefix(p.Contact.LinkedInProfile, "https://"))
	}
	if p.Contact.GitHub != "" {
		links = append(links, p.Contact.GitHub)
	}
	if p.Contact.Twitter != "" {
		links = append(links, p.Contact.Twitter)
	}
	return links
}

type ExperienceEntry struct {
	Position       string `json:"position" yaml:"position" validate:"required"`
	Company        string `json:"company" yaml:"company" validate:"required"`
	Duration       string `json:"duration" yaml:"duration" validate:"required"`
	Location       string `json:"location,omitempty" yaml:"location"`
	EmploymentType string `json:"employmentType" yaml:"employmentType"`
	Description    string `json:"description" yaml:"description"`
}

type ProjectEntry struct {
	Title        string   `json:"title" yaml:"title"`
	Description  string   `json:"description" yaml:"description"`
	Technologies []string `json:"technologies,omitempty" yaml:"technologies"`
	URL          string   `json:"url,omitempty" yaml:"url"`
}

// Portfolio is the document stored in portfolio.json.
type Portfolio struct {
	Profile    Profile           `json:"profile" yaml:"profile"`
	Experience []ExperienceEntry `json:"experience" yaml:"experience" validate:"dive"`
	Projects   []ProjectEntry    `json:"projects" yaml:"projects"`
	AllSkills  []string          `json:"allSkills" yaml:"allSkills" validate:"dive,required"`
}

const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
)

type BlogPost struct {
	ID       int      `json:"id" yaml:"id" validate:"gt=0"`
	Title    string   `json:"title" yaml:"title" validate:"required"`
	Slug     string   `json:"slug" yaml:"slug" validate:"required,slug"`
	Excerpt  string   `json:"excerpt" yaml:"excerpt"`
	Summary  string   `json:"summary" yaml:"summary"`
	Content  string   `json:"content" yaml:"content"`
	Date     string   `json:"date" yaml:"date" validate:"required"`
	Author   string   `json:"author" yaml:"author"`
	Tags     []string `json:"tags" yaml:"tags"`
	ReadTime string   `json:"readTime" yaml:"readTime"`
	// Format is "text" (default) or "markdown".
	Format string `json:"format,omitempty" yaml:"format,omitempty" validate:"omitempty,oneof=text markdown"`

	// BodyHTML is Content rendered when the store is built: escaped
	// paragraphs for text, goldmark output for markdown.
	BodyHTML template.HTML `json:"-" yaml:"-"`
}

func (p BlogPost) WordCount() int {
	return len(strings.Fields(p.Content))
}
