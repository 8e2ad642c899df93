package migration

import (
	"github.com/shareaichat/shareaichat-backend/internal/domain"
	"gorm.io/gorm"
)

// Run creates or updates the schema for every model the API touches.
// AutoMigrate is additive: existing tables are altered in place, nothing
// is dropped.
func Run(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.Post{},
		&domain.PostVote{},
		&domain.Comment{},
		&domain.CommentVote{},
		&domain.VoteTimestamp{},
	)
}
