package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"
)

var ErrNotFound = errors.New("content file not found")

const (
	PortfolioName = "portfolio"
	BlogName      = "blog"
	PostsDir      = "posts"
)

type decodeFunc func(data []byte, v any) error

// Extensions are tried in this order when looking up a content file.
var decoderOrder = []string{".json", ".yaml", ".yml"}

var decoders = map[string]decodeFunc{
	".json": json.Unmarshal,
	".yaml": yaml.Unmarshal,
	".yml":  yaml.Unmarshal,
}

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Store holds the site content. It is built once and never mutated, so it is
// safe for concurrent readers.
type Store struct {
	portfolio Portfolio
	posts     []BlogPost
}

// Load reads portfolio and blog documents from dir, appends Markdown posts
// from dir/posts, and validates the result.
func Load(dir string) (*Store, error) {
	var portfolio Portfolio
	if err := decodeNamed(dir, PortfolioName, &portfolio); err != nil {
		return nil, err
	}

	var posts []BlogPost
	if err := decodeNamed(dir, BlogName, &posts); err != nil {
		return nil, err
	}

	md := NewMarkdown()
	extra, err := loadMarkdownPosts(filepath.Join(dir, PostsDir), md)
	if err != nil {
		return nil, err
	}
	posts = append(posts, extra...)

	// Explicit ids anywhere win; Markdown posts without one are numbered
	// after the highest of them.
	id := nextID(posts)
	for i := len(posts) - len(extra); i < len(posts); i++ {
		if posts[i].ID == 0 {
			posts[i].ID = id
			id++
		}
	}

	return build(portfolio, posts, md)
}

// New builds a store from in-memory content, rendering post bodies and
// validating the same way Load does.
func New(portfolio Portfolio, posts []BlogPost) (*Store, error) {
	return build(portfolio, posts, NewMarkdown())
}

func build(portfolio Portfolio, posts []BlogPost, md *Markdown) (*Store, error) {
	if err := validate(portfolio, posts); err != nil {
		return nil, err
	}

	out := make([]BlogPost, len(posts))
	for i, p := range posts {
		if p.BodyHTML == "" && p.Content != "" {
			if p.Format == FormatMarkdown {
				body, err := md.Render(p.Content)
				if err != nil {
					return nil, fmt.Errorf("post %q: %w", p.Slug, err)
				}
				p.BodyHTML = body
			} else {
				p.BodyHTML = plainTextHTML(p.Content)
			}
		}
		out[i] = p
	}

	return &Store{portfolio: portfolio, posts: out}, nil
}

func (s *Store) Profile() Profile {
	return s.portfolio.Profile
}

func (s *Store) Experience() []ExperienceEntry {
	return s.portfolio.Experience
}

func (s *Store) Projects() []ProjectEntry {
	return s.portfolio.Projects
}

func (s *Store) Skills() []string {
	return s.portfolio.AllSkills
}

func (s *Store) Posts() []BlogPost {
	return s.posts
}

func (s *Store) Slugs() []string {
	slugs := make([]string, len(s.posts))
	for i, p := range s.posts {
		slugs[i] = p.Slug
	}
	return slugs
}

func (s *Store) PostBySlug(slug string) (BlogPost, bool) {
	for _, p := range s.posts {
		if p.Slug == slug {
			return p, true
		}
	}
	return BlogPost{}, false
}

// FindFile returns the first existing dir/name.{json,yaml,yml}.
func FindFile(dir, name string) (string, error) {
	for _, ext := range decoderOrder {
		path := filepath.Join(dir, name+ext)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: %s.{json,yaml,yml} in %s", ErrNotFound, name, dir)
}

func decodeNamed(dir, name string, v any) error {
	path, err := FindFile(dir, name)
	if err != nil {
		return err
	}
	return decodeFile(path, v)
}

func decodeFile(path string, v any) error {
	decode, ok := decoders[filepath.Ext(path)]
	if !ok {
		return fmt.Errorf("unsupported content file type: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := decode(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

func nextID(posts []BlogPost) int {
	highest := 0
	for _, p := range posts {
		if p.ID > highest {
			highest = p.ID
		}
	}
	return highest + 1
}
