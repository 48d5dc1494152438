package content

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

const (
	KindExperience = "experience"
	KindEducation  = "education"
)

// Entry is one timeline item: an Experience or an Education.
type Entry interface {
	Kind() string
}

type Experience struct {
	Period     string   `yaml:"period"`
	Role       string   `yaml:"role"`
	Company    string   `yaml:"company"`
	Location   string   `yaml:"location"`
	Summary    string   `yaml:"summary"`
	Highlights []string `yaml:"highlights"`
	Logo       string   `yaml:"logo"`
}

func (Experience) Kind() string { return KindExperience }

type Education struct {
	Period      string   `yaml:"period"`
	Degree      string   `yaml:"degree"`
	Institution string   `yaml:"institution"`
	Location    string   `yaml:"location"`
	Summary     string   `yaml:"summary"`
	Highlights  []string `yaml:"highlights"`
	Logo        string   `yaml:"logo"`
}

func (Education) Kind() string { return KindEducation }

// Timeline is decoded from a YAML sequence whose items carry a "kind" key.
type Timeline []Entry

func (t *Timeline) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode {
		return fmt.Errorf("timeline must be a list, line %d", value.Line)
	}

	out := make(Timeline, 0, len(value.Content))
	for _, node := range value.Content {
		var head struct {
			Kind string `yaml:"kind"`
		}
		if err := node.Decode(&head); err != nil {
			return err
		}

		switch head.Kind {
		case KindExperience:
			var e Experience
			if err := node.Decode(&e); err != nil {
				return err
			}
			out = append(out, e)
		case KindEducation:
			var e Education
			if err := node.Decode(&e); err != nil {
				return err
			}
			out = append(out, e)
		default:
			return fmt.Errorf("%w %q at line %d", ErrUnknownKind, head.Kind, node.Line)
		}
	}
	*t = out
	return nil
}

// Experiences returns the experience entries in order.
func (t Timeline) Experiences() []Experience {
	var out []Experience
	for _, e := range t {
		if x, ok := e.(Experience); ok {
			out = append(out, x)
		}
	}
	return out
}

// Education returns the education entries in order.
func (t Timeline) Education() []Education {
	var out []Education
	for _, e := range t {
		if x, ok := e.(Education); ok {
			out = append(out, x)
		}
	}
	return out
}
