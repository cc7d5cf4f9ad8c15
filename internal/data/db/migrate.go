package db

import (
	"fmt"

	"gorm.io/gorm"

	types "github.com/yungbote/apollo-backend/internal/domain"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(types.Models()...)
}

// EnsureIndexes adds the lookup indexes gorm tags cannot express.
func EnsureIndexes(db *gorm.DB) error {
	stmts := []struct {
		name string
		sql  string
	}{
		{"idx_roles_name", `CREATE INDEX IF NOT EXISTS idx_roles_name ON roles (name);`},
		{"idx_user_roles_role", `CREATE INDEX IF NOT EXISTS idx_user_roles_role ON user_roles (role_id);`},
		{"idx_topic_users_user", `CREATE INDEX IF NOT EXISTS idx_topic_users_user ON topic_users (user_id);`},
		{"idx_topics_survey_id_id", `CREATE INDEX IF NOT EXISTS idx_topics_survey_id_id ON topics (survey_id, id);`},
	}
	for _, st := range stmts {
		if err := db.Exec(st.sql).Error; err != nil {
			return fmt.Errorf("create %s: %w", st.name, err)
		}
	}
	return nil
}

func (s *Service) AutoMigrateAll() error {
	s.log.Info("Auto migrating tables...", "driver", s.driver)
	if err := AutoMigrateAll(s.db); err != nil {
		s.log.Error("Auto migration failed", "error", err)
		return err
	}
	if err := EnsureIndexes(s.db); err != nil {
		s.log.Error("Index migration failed", "error", err)
		return err
	}
	return nil
}
