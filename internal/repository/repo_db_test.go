package repository

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shareaichat/shareaichat-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// openTestDB gives each test its own in-memory database with the same
// TranslateError setting production uses, so unique-index violations surface
// as gorm.ErrDuplicatedKey here too.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.User{},
		&domain.Post{},
		&domain.PostVote{},
		&domain.Comment{},
		&domain.CommentVote{},
		&domain.VoteTimestamp{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *domain.User {
	t.Helper()
	user := &domain.User{Username: username, Password: "irrelevant"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedPost(t *testing.T, db *gorm.DB, authorID uint) *domain.Post {
	t.Helper()
	post := &domain.Post{UserID: authorID, Title: "t", Content: "c"}
	require.NoError(t, NewPostRepository(db).Create(post))
	return post
}

func seedComment(t *testing.T, db *gorm.DB, postID, authorID uint) *domain.Comment {
	t.Helper()
	comment := &domain.Comment{PostID: postID, UserID: authorID, Content: "c"}
	require.NoError(t, NewCommentRepository(db).Create(comment))
	return comment
}

// assertPostLedgerInSync checks the one property the vote tables must never
// lose: the denormalized votes counter equals the ledger row count.
func assertPostLedgerInSync(t *testing.T, db *gorm.DB, postID uint) {
	t.Helper()
	var post domain.Post
	require.NoError(t, db.First(&post, postID).Error)
	var ledger int64
	require.NoError(t, db.Model(&domain.PostVote{}).
		Where("post_id = ?", postID).Count(&ledger).Error)
	assert.EqualValues(t, ledger, post.Votes)
}

func assertCommentLedgerInSync(t *testing.T, db *gorm.DB, commentID uint) {
	t.Helper()
	var comment domain.Comment
	require.NoError(t, db.First(&comment, commentID).Error)
	var ledger int64
	require.NoError(t, db.Model(&domain.CommentVote{}).
		Where("comment_id = ?", commentID).Count(&ledger).Error)
	assert.EqualValues(t, ledger, comment.Votes)
}
