package catalog

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

type ValidationType string

const (
	ValidationExact ValidationType = "exact"
	ValidationRegex ValidationType = "regex"
)

type Hint struct {
	Level int    `yaml:"-" json:"level"`
	Text  string `yaml:"text" json:"text"`
	Cost  int    `yaml:"cost" json:"cost"`
}

type Challenge struct {
	ID             string         `yaml:"id" json:"id"`
	Title          string         `yaml:"title" json:"title"`
	Description    string         `yaml:"description" json:"description"`
	Category       string         `yaml:"category" json:"category"`
	Points         int            `yaml:"points" json:"points"`
	ValidationType ValidationType `yaml:"validation_type" json:"-"`
	ExpectedAnswer string         `yaml:"expected_answer" json:"-"`
	Hints          []Hint         `yaml:"hints" json:"hints"`
}

// HintAt 按层级取提示，层级从1开始
func (c *Challenge) HintAt(level int) (*Hint, bool) {
	for i := range c.Hints {
		if c.Hints[i].Level == level {
			return &c.Hints[i], true
		}
	}
	return nil, false
}

// View 对外展示用，不含答案
type View struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Points      int    `json:"points"`
	HintCount   int    `json:"hint_count"`
}

func (c *Challenge) Public() View {
	return View{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Category:    c.Category,
		Points:      c.Points,
		HintCount:   len(c.Hints),
	}
}

// Catalog 进程级只读挑战集合，启动时加载一次，之后并发读安全
type Catalog struct {
	challenges []Challenge
	byID       map[string]*Challenge
}

type catalogFile struct {
	Challenges []Challenge `yaml:"challenges"`
}

func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	return New(file.Challenges)
}

func New(challenges []Challenge) (*Catalog, error) {
	c := &Catalog{
		challenges: challenges,
		byID:       make(map[string]*Challenge, len(challenges)),
	}

	for i := range c.challenges {
		ch := &c.challenges[i]
		if ch.ID == "" {
			return nil, fmt.Errorf("catalog entry %d has no id", i)
		}
		if _, dup := c.byID[ch.ID]; dup {
			return nil, fmt.Errorf("duplicate challenge id %q", ch.ID)
		}
		if ch.Points <= 0 {
			return nil, fmt.Errorf("challenge %q: points must be positive, got %d", ch.ID, ch.Points)
		}
		// 提示层级按顺序编号 1..N
		for j := range ch.Hints {
			ch.Hints[j].Level = j + 1
			if ch.Hints[j].Cost < 0 {
				return nil, fmt.Errorf("challenge %q: hint %d has negative cost", ch.ID, j+1)
			}
		}
		switch ch.ValidationType {
		case ValidationExact, ValidationRegex:
		default:
			// 未知类型保留但永远判错（fail closed）
			log.Printf("catalog: challenge %q has unknown validation_type %q, answers will never match", ch.ID, ch.ValidationType)
		}
		c.byID[ch.ID] = ch
	}

	return c, nil
}

func (c *Catalog) All() []Challenge {
	return c.challenges
}

func (c *Catalog) ByID(id string) (*Challenge, bool) {
	ch, ok := c.byID[id]
	return ch, ok
}

func (c *Catalog) ByCategory(category string) []Challenge {
	var out []Challenge
	for _, ch := range c.challenges {
		if ch.Category == category {
			out = append(out, ch)
		}
	}
	return out
}

func (c *Catalog) Size() int {
	return len(c.challenges)
}
