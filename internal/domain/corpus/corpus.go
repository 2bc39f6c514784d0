package corpus

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/mathdrill/backend/internal/domain/problem"
)

var (
	ErrDuplicateKey     = errors.New("duplicate problem key")
	ErrDuplicateSection = errors.New("duplicate section id")
	ErrMissingGroupID   = errors.New("group id is required")
)

// Category says which list of a section a problem group belongs to.
type Category string

const (
	CategoryMonitoring Category = "monitoringProgress"
	CategoryEdge       Category = "edgeCases"
	CategoryCorner     Category = "cornerCases"
)

type Chapter struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type Section struct {
	ID                 string   `json:"id"`
	Title              string   `json:"title"`
	MonitoringProgress []*Group `json:"monitoringProgress"`
	EdgeCases          []*Group `json:"edgeCases,omitempty"`
	CornerCases        []*Group `json:"cornerCases,omitempty"`
}

// Groups returns the section's problem groups in display order. Monitoring
// groups are always included; edge and corner groups only when asked for.
func (s *Section) Groups(withEdge, withCorner bool) []*Group {
	groups := make([]*Group, 0, len(s.MonitoringProgress)+len(s.EdgeCases)+len(s.CornerCases))
	groups = append(groups, s.MonitoringProgress...)
	if withEdge {
		groups = append(groups, s.EdgeCases...)
	}
	if withCorner {
		groups = append(groups, s.CornerCases...)
	}
	return groups
}

// Group is a block of problems sharing one instruction.
type Group struct {
	ID          string            `json:"id"`
	Instruction string            `json:"instruction"`
	Problems    []problem.Problem `json:"problems"`
	Category    Category          `json:"-"`
}

// Keys returns the store keys of the group's problems.
func (g *Group) Keys() []string {
	keys := make([]string, len(g.Problems))
	for i := range g.Problems {
		keys[i] = g.Problems[i].Key
	}
	return keys
}

// Key builds the store key of problem num in group groupID.
func Key(groupID string, num problem.Num) string {
	return groupID + "." + string(num)
}

// Corpus is the read-only problem set. It is safe for concurrent use once
// loaded.
type Corpus struct {
	Chapter  Chapter    `json:"chapter"`
	Sections []*Section `json:"sections"`

	problems map[string]*problem.Problem
	sections map[string]*Section
}

// Load reads and indexes a corpus file.
func Load(path string) (*Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}
	return Parse(data)
}

// Parse decodes a corpus document, assigns problem keys and validates every
// problem.
func Parse(data []byte) (*Corpus, error) {
	var c Corpus
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode corpus: %w", err)
	}
	if err := c.index(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Corpus) index() error {
	c.problems = make(map[string]*problem.Problem)
	c.sections = make(map[string]*Section)

	for _, s := range c.Sections {
		if _, dup := c.sections[s.ID]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateSection, s.ID)
		}
		c.sections[s.ID] = s

		lists := []struct {
			cat    Category
			groups []*Group
		}{
			{CategoryMonitoring, s.MonitoringProgress},
			{CategoryEdge, s.EdgeCases},
			{CategoryCorner, s.CornerCases},
		}
		for _, l := range lists {
			for _, g := range l.groups {
				if g.ID == "" {
					return fmt.Errorf("section %s: %w", s.ID, ErrMissingGroupID)
				}
				g.Category = l.cat
				for i := range g.Problems {
					p := &g.Problems[i]
					if err := p.Validate(); err != nil {
						return fmt.Errorf("group %s: %w", g.ID, err)
					}
					p.Key = Key(g.ID, p.Num)
					if _, dup := c.problems[p.Key]; dup {
						return fmt.Errorf("%w: %s", ErrDuplicateKey, p.Key)
					}
					c.problems[p.Key] = p
				}
			}
		}
	}
	return nil
}

// Problem looks up a problem by key.
func (c *Corpus) Problem(key string) (*problem.Problem, bool) {
	p, ok := c.problems[key]
	return p, ok
}

// Section looks up a section by id.
func (c *Corpus) Section(id string) (*Section, bool) {
	s, ok := c.sections[id]
	return s, ok
}

// Len returns the number of problems.
func (c *Corpus) Len() int { return len(c.problems) }

// Walk calls fn for every problem in corpus order, edge and corner groups
// included.
func (c *Corpus) Walk(fn func(s *Section, g *Group, p *problem.Problem)) {
	for _, s := range c.Sections {
		for _, g := range s.Groups(true, true) {
			for i := range g.Problems {
				fn(s, g, &g.Problems[i])
			}
		}
	}
}
