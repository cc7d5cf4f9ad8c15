// Package seed loads the demo data set: a fixed graph of roles, users,
// surveys, contexts, questions and topics plus a batch of random users.
//
// The loader only inserts. Running it twice duplicates every row.
package seed

import (
	"context"
	"fmt"
	"strings"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/yungbote/apollo-backend/internal/data/aggregates"
	types "github.com/yungbote/apollo-backend/internal/domain"
	"github.com/yungbote/apollo-backend/internal/platform/dbctx"
	"github.com/yungbote/apollo-backend/internal/platform/logger"
	"github.com/yungbote/apollo-backend/internal/services"
)

const DefaultPassword = "password"

type Summary struct {
	Roles     int `json:"roles"`
	Users     int `json:"users"`
	Surveys   int `json:"surveys"`
	Contexts  int `json:"contexts"`
	Questions int `json:"questions"`
	Topics    int `json:"topics"`
}

type Services struct {
	Role     services.RoleService
	User     services.UserService
	Survey   services.SurveyService
	Context  services.ContextService
	Question services.QuestionService
	Topic    services.TopicService
}

type Loader struct {
	log      *logger.Logger
	tx       aggregates.TxRunner
	svc      Services
	fixture  *Fixture
	password string
	faker    *gofakeit.Faker
}

// NewLoader builds a loader over fixture. A nil fixture selects the embedded one.
func NewLoader(log *logger.Logger, tx aggregates.TxRunner, svc Services, fixture *Fixture, password string) (*Loader, error) {
	if fixture == nil {
		f, err := DefaultFixture()
		if err != nil {
			return nil, err
		}
		fixture = f
	}
	if password == "" {
		password = DefaultPassword
	}
	return &Loader{
		log:      log.With("component", "SeedLoader"),
		tx:       tx,
		svc:      svc,
		fixture:  fixture,
		password: password,
		faker:    gofakeit.New(0),
	}, nil
}

// Run inserts the whole data set in one transaction. Any failure rolls back
// everything written so far.
func (l *Loader) Run(ctx context.Context) (Summary, error) {
	var sum Summary
	l.log.Info("Seeding database...")
	err := l.tx.InTx(ctx, func(dbc dbctx.Context) error {
		s := &run{Loader: l, dbc: dbc, sum: &sum,
			roles:     map[string]*types.Role{},
			users:     map[string]*types.User{},
			surveys:   map[string]*types.Survey{},
			usernames: map[string]bool{},
		}
		steps := []struct {
			name string
			fn   func() error
		}{
			{"roles", s.seedRoles},
			{"users", s.seedUsers},
			{"random users", s.seedRandomUsers},
			{"surveys", s.seedSurveys},
			{"contexts", s.seedContexts},
			{"questions", s.seedQuestions},
			{"topics", s.seedTopics},
		}
		for _, st := range steps {
			if err := st.fn(); err != nil {
				return fmt.Errorf("seed %s: %w", st.name, err)
			}
		}
		return nil
	})
	if err != nil {
		l.log.Error("Seeding failed", "error", err)
		return Summary{}, err
	}
	l.log.Info("Seeding complete",
		"roles", sum.Roles,
		"users", sum.Users,
		"surveys", sum.Surveys,
		"contexts", sum.Contexts,
		"questions", sum.Questions,
		"topics", sum.Topics,
	)
	return sum, nil
}

// run holds the per-transaction key maps.
type run struct {
	*Loader
	dbc dbctx.Context
	sum *Summary

	roles     map[string]*types.Role
	users     map[string]*types.User
	surveys   map[string]*types.Survey
	usernames map[string]bool
}

func (s *run) seedRoles() error {
	for _, rf := range s.fixture.Roles {
		role, err := s.svc.Role.Save(s.dbc, types.NewRole(rf.Name))
		if err != nil {
			return err
		}
		s.roles[rf.Key] = role
		s.sum.Roles++
	}
	return nil
}

func (s *run) roleLinks(keys []string) []types.UserRoles {
	links := make([]types.UserRoles, 0, len(keys))
	for _, k := range keys {
		links = append(links, types.UserRoles{Role: &types.Role{ID: s.roles[k].ID}})
	}
	return links
}

func (s *run) saveUser(username, email string, roleKeys []string) (*types.User, error) {
	u := types.NewUser(username, email, s.roleLinks(roleKeys))
	u.Password = s.password
	saved, err := s.svc.User.Save(s.dbc, u)
	if err != nil {
		return nil, err
	}
	s.usernames[saved.Username] = true
	s.sum.Users++
	return saved, nil
}

func (s *run) seedUsers() error {
	for _, uf := range s.fixture.Users {
		u, err := s.saveUser(uf.Username, uf.Email, uf.Roles)
		if err != nil {
			return err
		}
		s.users[uf.Key] = u
	}
	return nil
}

func (s *run) seedRandomUsers() error {
	for i := 0; i < s.fixture.RandomUsers.Count; i++ {
		username := s.uniqueUsername(s.faker.Username())
		if _, err := s.saveUser(username, fakeEmail(s.faker.Email(), username), s.fixture.RandomUsers.Roles); err != nil {
			return err
		}
	}
	return nil
}

// fakeEmail strips characters some generated surnames carry (apostrophes,
// spaces) so the address passes validation. It falls back to username.
func fakeEmail(raw, username string) string {
	local, domain, ok := strings.Cut(strings.ToLower(raw), "@")
	local = keep(local, "._+-")
	domain = strings.Trim(keep(domain, ".-"), ".-")
	if !ok || local == "" || !strings.Contains(domain, ".") {
		return username + "@example.com"
	}
	return local + "@" + domain
}

func keep(s, extra string) string {
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || strings.ContainsRune(extra, r) {
			return r
		}
		return -1
	}, s)
}

// uniqueUsername appends a numeric suffix until the name is unused in this run.
func (s *run) uniqueUsername(base string) string {
	base = keep(strings.ToLower(base), "._-")
	if base == "" {
		base = "user"
	}
	name := base
	for n := 2; s.usernames[name]; n++ {
		name = fmt.Sprintf("%s%d", base, n)
	}
	return name
}

func (s *run) seedSurveys() error {
	for _, key := range s.fixture.Surveys {
		sv, err := s.svc.Survey.Save(s.dbc, &types.Survey{})
		if err != nil {
			return err
		}
		s.surveys[key] = sv
		s.sum.Surveys++
	}
	return nil
}

func (s *run) seedContexts() error {
	for _, cf := range s.fixture.Contexts {
		if _, err := s.svc.Context.Save(s.dbc, types.NewContext(cf.Name, s.surveys[cf.Survey])); err != nil {
			return err
		}
		s.sum.Contexts++
	}
	return nil
}

func (s *run) seedQuestions() error {
	for _, qf := range s.fixture.Questions {
		q := types.NewQuestion(qf.Body, qf.Leader, qf.Type, s.surveys[qf.Survey])
		if _, err := s.svc.Question.Save(s.dbc, q); err != nil {
			return err
		}
		s.sum.Questions++
	}
	return nil
}

func (s *run) seedTopics() error {
	for _, tf := range s.fixture.Topics {
		t := types.NewTopic(tf.Title, s.users[tf.Owner], s.surveys[tf.Survey])
		if _, err := s.svc.Topic.Save(s.dbc, t, s.users[tf.Owner]); err != nil {
			return err
		}
		s.sum.Topics++
	}
	return nil
}
