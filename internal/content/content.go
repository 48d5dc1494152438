// Package content holds the portfolio data rendered by the site: profile,
// skills, the experience/education timeline and the project list.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

var (
	// ErrUnknownKind is returned for a timeline entry that is neither
	// experience nor education.
	ErrUnknownKind = errors.New("unknown timeline entry kind")
	// ErrInvalid wraps validation failures.
	ErrInvalid = errors.New("invalid content")
)

// Site is everything the portfolio page shows.
type Site struct {
	Profile  Profile     `yaml:"profile"`
	Skills   Skills      `yaml:"skills"`
	Opening  *Experience `yaml:"opening"`
	Timeline Timeline    `yaml:"timeline"`
	Projects Projects    `yaml:"projects"`
}

// Profile is the hero banner, about blurb and contact links.
type Profile struct {
	Name     string   `yaml:"name"`
	Headline string   `yaml:"headline"`
	Tagline  string   `yaml:"tagline"`
	About    string   `yaml:"about"`
	Roles    []string `yaml:"roles"`
	Email    string   `yaml:"email"`
	GitHub   string   `yaml:"github"`
	LinkedIn string   `yaml:"linkedin"`
	Resume   string   `yaml:"resume"`
}

type Skill struct {
	Name  string `yaml:"name"`
	Level int    `yaml:"level,omitempty"`
}

type Skills struct {
	Main  []Skill `yaml:"main"`
	Other []Skill `yaml:"other"`
}

// Default returns the content bundled with the binary.
func Default() (*Site, error) {
	return Parse(defaultYAML)
}

// Load reads content from path, or the bundled content when path is empty.
func Load(path string) (*Site, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file %s: %w", path, err)
	}
	site, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("content file %s: %w", path, err)
	}
	return site, nil
}

// Parse decodes and validates YAML content.
func Parse(data []byte) (*Site, error) {
	var site Site
	if err := yaml.Unmarshal(data, &site); err != nil {
		return nil, fmt.Errorf("failed to parse content YAML: %w", err)
	}
	if err := site.Validate(); err != nil {
		return nil, err
	}
	return &site, nil
}

// Validate checks the fields the page cannot do without.
func (s *Site) Validate() error {
	if s.Profile.Name == "" {
		return fmt.Errorf("%w: profile name is required", ErrInvalid)
	}
	for _, skill := range s.Skills.Main {
		if skill.Level < 0 || skill.Level > 100 {
			return fmt.Errorf("%w: skill %q level %d outside 0-100", ErrInvalid, skill.Name, skill.Level)
		}
	}
	for i, p := range s.Projects {
		if p.Title == "" {
			return fmt.Errorf("%w: project %d has no title", ErrInvalid, i)
		}
	}
	return nil
}

// FullTimeline returns the timeline with the opening teaser first, if any.
func (s *Site) FullTimeline() Timeline {
	if s.Opening == nil {
		return s.Timeline
	}
	out := make(Timeline, 0, len(s.Timeline)+1)
	out = append(out, *s.Opening)
	return append(out, s.Timeline...)
}
