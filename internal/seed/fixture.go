package seed

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultFixture []byte

type Fixture struct {
	Roles       []RoleFixture     `yaml:"roles"`
	Users       []UserFixture     `yaml:"users"`
	RandomUsers RandomUsers       `yaml:"random_users"`
	Surveys     []string          `yaml:"surveys"`
	Contexts    []ContextFixture  `yaml:"contexts"`
	Questions   []QuestionFixture `yaml:"questions"`
	Topics      []TopicFixture    `yaml:"topics"`
}

type RoleFixture struct {
	Key  string `yaml:"key"`
	Name string `yaml:"name"`
}

type UserFixture struct {
	Key      string   `yaml:"key"`
	Username string   `yaml:"username"`
	Email    string   `yaml:"email"`
	Roles    []string `yaml:"roles"`
}

type RandomUsers struct {
	Count int      `yaml:"count"`
	Roles []string `yaml:"roles"`
}

type ContextFixture struct {
	Name   string `yaml:"name"`
	Survey string `yaml:"survey"`
}

type QuestionFixture struct {
	Body   string `yaml:"body"`
	Leader bool   `yaml:"leader"`
	Type   string `yaml:"type"`
	Survey string `yaml:"survey"`
}

type TopicFixture struct {
	Title  string `yaml:"title"`
	Owner  string `yaml:"owner"`
	Survey string `yaml:"survey"`
}

// DefaultFixture returns the embedded demo graph.
func DefaultFixture() (*Fixture, error) {
	return ParseFixture(defaultFixture)
}

// ParseFixture decodes raw YAML and checks every key reference resolves.
func ParseFixture(raw []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("decode seed fixture: %w", err)
	}
	if err := f.check(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *Fixture) check() error {
	roles := map[string]bool{}
	for _, r := range f.Roles {
		if r.Key == "" || roles[r.Key] {
			return fmt.Errorf("seed fixture: role key %q is empty or duplicated", r.Key)
		}
		roles[r.Key] = true
	}
	users := map[string]bool{}
	for _, u := range f.Users {
		if u.Key == "" || users[u.Key] {
			return fmt.Errorf("seed fixture: user key %q is empty or duplicated", u.Key)
		}
		users[u.Key] = true
		for _, rk := range u.Roles {
			if !roles[rk] {
				return fmt.Errorf("seed fixture: user %q references unknown role %q", u.Key, rk)
			}
		}
	}
	if f.RandomUsers.Count < 0 {
		return fmt.Errorf("seed fixture: random user count must not be negative")
	}
	for _, rk := range f.RandomUsers.Roles {
		if !roles[rk] {
			return fmt.Errorf("seed fixture: random users reference unknown role %q", rk)
		}
	}
	surveys := map[string]bool{}
	for _, s := range f.Surveys {
		if s == "" || surveys[s] {
			return fmt.Errorf("seed fixture: survey key %q is empty or duplicated", s)
		}
		surveys[s] = true
	}
	for _, c := range f.Contexts {
		if !surveys[c.Survey] {
			return fmt.Errorf("seed fixture: context %q references unknown survey %q", c.Name, c.Survey)
		}
	}
	for _, q := range f.Questions {
		if !surveys[q.Survey] {
			return fmt.Errorf("seed fixture: question %q references unknown survey %q", q.Body, q.Survey)
		}
	}
	for _, t := range f.Topics {
		if !users[t.Owner] {
			return fmt.Errorf("seed fixture: topic %q references unknown owner %q", t.Title, t.Owner)
		}
		if !surveys[t.Survey] {
			return fmt.Errorf("seed fixture: topic %q references unknown survey %q", t.Title, t.Survey)
		}
	}
	return nil
}
