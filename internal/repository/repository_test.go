package repository

import (
	"context"
	"testing"

	"recipe-sharing-backend/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(gormmysql.New(gormmysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestUserRepository_FindUserByEmail_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepo(db)

	mock.ExpectQuery("SELECT \\* FROM `users` WHERE email = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindUserByEmail(context.Background(), "ghost@x.com")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_SetRefreshToken(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepo(db)

	mock.ExpectExec("UPDATE `users` SET `refresh_token`=\\?.* WHERE id = \\?").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SetRefreshToken(context.Background(), 5, "tok"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_ClearRefreshToken_NoMatch(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepo(db)

	mock.ExpectExec("UPDATE `users` SET `refresh_token`=.* WHERE refresh_token = \\?").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.ClearRefreshToken(context.Background(), "stale")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRatingRepository_UpsertRating(t *testing.T) {
	tests := []struct {
		name        string
		affected    int64
		wantCreated bool
	}{
		{name: "insert", affected: 1, wantCreated: true},
		{name: "update", affected: 2, wantCreated: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewRatingRepo(db)

			mock.ExpectExec("INSERT INTO `ratings` .*ON DUPLICATE KEY UPDATE").
				WillReturnResult(sqlmock.NewResult(0, tc.affected))

			created, err := repo.UpsertRating(context.Background(), &models.Rating{UserID: 1, RecipeID: 2, Value: 4})
			require.NoError(t, err)
			assert.Equal(t, tc.wantCreated, created)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRatingRepository_DeleteRating_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRatingRepo(db)

	mock.ExpectExec("DELETE FROM `ratings` WHERE user_id = \\? AND recipe_id = \\?").
		WithArgs(1, 2).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteRating(context.Background(), 1, 2)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBookmarkRepository_CreateBookmark_Duplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookmarkRepo(db)

	mock.ExpectExec("INSERT INTO `bookmarks`").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

	err := repo.CreateBookmark(context.Background(), &models.Bookmark{UserID: 1, RecipeID: 2})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestRecipeRepository_DeleteRecipe_Cascades(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecipeRepo(db)

	mock.ExpectBegin()
	for _, table := range []string{"ingredients", "instructions", "comments", "ratings", "bookmarks"} {
		mock.ExpectExec("DELETE FROM `" + table + "` WHERE recipe_id = \\?").
			WithArgs(9).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectExec("DELETE FROM `recipes` WHERE `recipes`.`id` = \\?").
		WithArgs(9).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.DeleteRecipe(context.Background(), 9))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTranslate(t *testing.T) {
	assert.ErrorIs(t, translate(gorm.ErrRecordNotFound), ErrNotFound)
	assert.ErrorIs(t, translate(gorm.ErrDuplicatedKey), ErrDuplicate)
	assert.ErrorIs(t, translate(&mysql.MySQLError{Number: 1062}), ErrDuplicate)
	assert.Nil(t, translate(nil))
}

func TestRatingRepository_GetSummary(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRatingRepo(db)

	mock.ExpectQuery("SELECT COALESCE\\(AVG\\(rating\\), 0\\) AS average, COUNT\\(rating\\) AS count FROM `ratings` WHERE recipe_id = \\?").
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"average", "count"}).AddRow(4.0, 2))

	summary, err := repo.GetSummary(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, models.RatingSummary{Average: 4, Count: 2}, summary)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRatingRepository_GetTopRated_Ordering(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRatingRepo(db)

	rows := sqlmock.NewRows([]string{"recipe_id", "average_rating", "total_votes", "r_id", "r_title", "r_image_url"}).
		AddRow(3, 4.5, 2, 3, "Soup", "http://img/3.png").
		AddRow(1, 4.0, 3, 1, "Bread", "http://img/1.png")
	mock.ExpectQuery("SELECT ratings.recipe_id, AVG\\(ratings.rating\\) AS average_rating.*FROM `ratings` JOIN recipes ON recipes.id = ratings.recipe_id.*GROUP BY ratings.recipe_id.*ORDER BY average_rating DESC, ratings.recipe_id ASC LIMIT").
		WillReturnRows(rows)

	top, err := repo.GetTopRated(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, uint(3), top[0].RecipeID)
	assert.Equal(t, 4.5, top[0].AverageRating)
	assert.Equal(t, int64(2), top[0].TotalVotes)
	assert.Equal(t, "Soup", top[0].Recipe.Title)
	assert.Equal(t, uint(1), top[1].Recipe.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentRepository_GetTopLevelPage_AttachesReplies(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCommentRepo(db)

	columns := []string{"id", "recipe_id", "user_id", "content", "parent_id", "author_name"}
	mock.ExpectQuery("FROM `comments` LEFT JOIN users ON users.id = comments.user_id WHERE comments.recipe_id = \\? AND comments.parent_id IS NULL ORDER BY comments.created_at DESC, comments.id DESC LIMIT").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(2, 9, 1, "second", nil, "Ann").
			AddRow(1, 9, 2, "first", nil, "Bob"))
	mock.ExpectQuery("FROM `comments` LEFT JOIN users ON users.id = comments.user_id WHERE comments.parent_id IN \\(\\?,\\?\\) ORDER BY comments.created_at ASC, comments.id ASC").
		WithArgs(2, 1).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(3, 9, 2, "reply to first", 1, "Bob").
			AddRow(4, 9, 1, "reply to second", 2, "Ann"))

	page, err := repo.GetTopLevelPage(context.Background(), 9, 10, 0)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, uint(2), page[0].ID)
	require.Len(t, page[0].Replies, 1)
	assert.Equal(t, uint(4), page[0].Replies[0].ID)
	assert.Equal(t, "Ann", page[0].Replies[0].AuthorName)
	require.Len(t, page[1].Replies, 1)
	assert.Equal(t, uint(3), page[1].Replies[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentRepository_GetTopLevelPage_EmptySkipsReplies(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCommentRepo(db)

	mock.ExpectQuery("comments.parent_id IS NULL").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	page, err := repo.GetTopLevelPage(context.Background(), 9, 10, 100)
	require.NoError(t, err)
	assert.Empty(t, page)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookmarkRepository_GetBookmarksByUser_AttachesChildren(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookmarkRepo(db)

	mock.ExpectQuery("SELECT bookmarks.\\*, recipes.id AS r_id.*FROM `bookmarks` JOIN recipes ON recipes.id = bookmarks.recipe_id WHERE bookmarks.user_id = \\? ORDER BY bookmarks.created_at DESC").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "recipe_id", "r_id", "r_title", "r_image_url"}).
			AddRow(1, 5, 5, "Stew", "http://img/5.png").
			AddRow(1, 6, 6, "Salad", "http://img/6.png"))
	mock.ExpectQuery("SELECT \\* FROM `ingredients` WHERE recipe_id IN \\(\\?,\\?\\) ORDER BY id ASC").
		WithArgs(5, 6).
		WillReturnRows(sqlmock.NewRows([]string{"id", "recipe_id", "name", "quantity", "unit"}).
			AddRow(1, 5, "beef", "500", "g").
			AddRow(2, 6, "lettuce", "1", "head"))
	mock.ExpectQuery("SELECT \\* FROM `instructions` WHERE recipe_id IN \\(\\?,\\?\\) ORDER BY step_order ASC, id ASC").
		WithArgs(5, 6).
		WillReturnRows(sqlmock.NewRows([]string{"id", "recipe_id", "step_order", "description"}).
			AddRow(1, 5, 1, "brown the beef").
			AddRow(2, 5, 2, "simmer"))

	bookmarks, err := repo.GetBookmarksByUser(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, bookmarks, 2)
	assert.Equal(t, "Stew", bookmarks[0].Recipe.Title)
	require.Len(t, bookmarks[0].Recipe.Ingredients, 1)
	assert.Equal(t, "beef", bookmarks[0].Recipe.Ingredients[0].Name)
	require.Len(t, bookmarks[0].Recipe.Instructions, 2)
	assert.Equal(t, 2, bookmarks[0].Recipe.Instructions[1].Step)
	assert.Equal(t, "lettuce", bookmarks[1].Recipe.Ingredients[0].Name)
	assert.Empty(t, bookmarks[1].Recipe.Instructions)
	assert.NoError(t, mock.ExpectationsWereMet())
}
