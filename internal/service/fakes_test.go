package service

import (
	"context"
	"errors"
	"sort"
	"sync"

	"recipe-sharing-backend/internal/models"
	"recipe-sharing-backend/internal/repository"
)

type fakeUserStore struct {
	mu     sync.Mutex
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[uint]*models.User{}}
}

func (f *fakeUserStore) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserStore) FindUserByID(_ context.Context, id uint) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserStore) FindUserByRefreshToken(_ context.Context, token string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.RefreshToken != nil && *u.RefreshToken == token {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserStore) CreateUser(_ context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == user.Email {
			return repository.ErrDuplicate
		}
	}
	f.nextID++
	user.ID = f.nextID
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserStore) SetRefreshToken(_ context.Context, userID uint, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[userID]
	if !ok {
		return repository.ErrNotFound
	}
	u.RefreshToken = &token
	return nil
}

func (f *fakeUserStore) ClearRefreshToken(_ context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.RefreshToken != nil && *u.RefreshToken == token {
			u.RefreshToken = nil
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeUserStore) UpdateName(_ context.Context, userID uint, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[userID]
	if !ok {
		return repository.ErrNotFound
	}
	u.Name = name
	return nil
}

type fakeAuditStore struct {
	actions []string
	err     error
}

func (f *fakeAuditStore) CreateAuditLog(_ context.Context, _ *uint, action string, _ string) error {
	f.actions = append(f.actions, action)
	return f.err
}

type fakeRecipeStore struct {
	recipes map[uint]*models.Recipe
	nextID  uint
	deleted []uint
	err     error
}

func newFakeRecipeStore(ids ...uint) *fakeRecipeStore {
	f := &fakeRecipeStore{recipes: map[uint]*models.Recipe{}}
	for _, id := range ids {
		f.recipes[id] = &models.Recipe{ID: id, Title: "Recipe", UserID: 1}
		if id > f.nextID {
			f.nextID = id
		}
	}
	return f
}

func (f *fakeRecipeStore) GetAllRecipes(_ context.Context) ([]models.Recipe, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Recipe
	for _, r := range f.recipes {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (f *fakeRecipeStore) GetRecipeByID(_ context.Context, id uint) (*models.Recipe, error) {
	if f.err != nil {
		return nil, f.err
	}
	r, ok := f.recipes[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *r
	return &copied, nil
}

func (f *fakeRecipeStore) GetRecipeWithChildren(ctx context.Context, id uint) (*models.Recipe, error) {
	return f.GetRecipeByID(ctx, id)
}

func (f *fakeRecipeStore) RecipeExists(_ context.Context, id uint) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.recipes[id]
	return ok, nil
}

func (f *fakeRecipeStore) CreateRecipe(_ context.Context, recipe *models.Recipe) error {
	if f.err != nil {
		return f.err
	}
	f.nextID++
	recipe.ID = f.nextID
	copied := *recipe
	f.recipes[recipe.ID] = &copied
	return nil
}

func (f *fakeRecipeStore) UpdateRecipe(_ context.Context, id uint, updates map[string]interface{}) error {
	r, ok := f.recipes[id]
	if !ok {
		return repository.ErrNotFound
	}
	for k, v := range updates {
		switch k {
		case "title":
			r.Title = v.(string)
		case "description":
			r.Description = v.(string)
		case "time":
			r.Time = v.(string)
		case "image_url":
			r.ImageURL = v.(string)
		}
	}
	return nil
}

func (f *fakeRecipeStore) DeleteRecipe(_ context.Context, id uint) error {
	if _, ok := f.recipes[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.recipes, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeCommentStore struct {
	comments map[uint]*models.Comment
	nextID   uint
}

func newFakeCommentStore() *fakeCommentStore {
	return &fakeCommentStore{comments: map[uint]*models.Comment{}}
}

func (f *fakeCommentStore) GetCommentByID(_ context.Context, id uint) (*models.Comment, error) {
	c, ok := f.comments[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *c
	return &copied, nil
}

func (f *fakeCommentStore) CreateComment(_ context.Context, comment *models.Comment) error {
	f.nextID++
	comment.ID = f.nextID
	copied := *comment
	f.comments[comment.ID] = &copied
	return nil
}

func (f *fakeCommentStore) DeleteComment(_ context.Context, id uint) error {
	if _, ok := f.comments[id]; !ok {
		return repository.ErrNotFound
	}
	for cid, c := range f.comments {
		if c.ParentID != nil && *c.ParentID == id {
			delete(f.comments, cid)
		}
	}
	delete(f.comments, id)
	return nil
}

func (f *fakeCommentStore) topLevel(recipeID uint) []models.Comment {
	var out []models.Comment
	for _, c := range f.comments {
		if c.RecipeID == recipeID && c.ParentID == nil {
			out = append(out, *c)
		}
	}
	// ids grow with creation time, so id order is creation order
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

func (f *fakeCommentStore) CountTopLevel(_ context.Context, recipeID uint) (int64, error) {
	return int64(len(f.topLevel(recipeID))), nil
}

func (f *fakeCommentStore) GetTopLevelPage(_ context.Context, recipeID uint, limit, offset int) ([]models.CommentWithAuthor, error) {
	top := f.topLevel(recipeID)
	if offset >= len(top) {
		return nil, nil
	}
	end := offset + limit
	if end > len(top) {
		end = len(top)
	}
	var out []models.CommentWithAuthor
	for _, c := range top[offset:end] {
		item := models.CommentWithAuthor{Comment: c}
		for _, r := range f.comments {
			if r.ParentID != nil && *r.ParentID == c.ID {
				item.Replies = append(item.Replies, models.CommentWithAuthor{Comment: *r})
			}
		}
		out = append(out, item)
	}
	return out, nil
}

type ratingKey struct{ userID, recipeID uint }

type fakeRatingStore struct {
	ratings map[ratingKey]int
}

func newFakeRatingStore() *fakeRatingStore {
	return &fakeRatingStore{ratings: map[ratingKey]int{}}
}

func (f *fakeRatingStore) UpsertRating(_ context.Context, rating *models.Rating) (bool, error) {
	key := ratingKey{rating.UserID, rating.RecipeID}
	_, existed := f.ratings[key]
	f.ratings[key] = rating.Value
	return !existed, nil
}

func (f *fakeRatingStore) GetSummary(_ context.Context, recipeID uint) (models.RatingSummary, error) {
	var sum, count int
	for k, v := range f.ratings {
		if k.recipeID == recipeID {
			sum += v
			count++
		}
	}
	if count == 0 {
		return models.RatingSummary{}, nil
	}
	return models.RatingSummary{Average: float64(sum) / float64(count), Count: int64(count)}, nil
}

func (f *fakeRatingStore) GetRatingsByUser(_ context.Context, userID uint) ([]models.UserRating, error) {
	var out []models.UserRating
	for k, v := range f.ratings {
		if k.userID == userID {
			out = append(out, models.UserRating{Rating: models.Rating{UserID: k.userID, RecipeID: k.recipeID, Value: v}})
		}
	}
	return out, nil
}

func (f *fakeRatingStore) DeleteRating(_ context.Context, userID, recipeID uint) error {
	key := ratingKey{userID, recipeID}
	if _, ok := f.ratings[key]; !ok {
		return repository.ErrNotFound
	}
	delete(f.ratings, key)
	return nil
}

func (f *fakeRatingStore) GetTopRated(_ context.Context, limit int) ([]models.TopRatedRecipe, error) {
	sums := map[uint][2]int{}
	for k, v := range f.ratings {
		s := sums[k.recipeID]
		sums[k.recipeID] = [2]int{s[0] + v, s[1] + 1}
	}
	var out []models.TopRatedRecipe
	for id, s := range sums {
		out = append(out, models.TopRatedRecipe{
			RecipeID:      id,
			AverageRating: float64(s[0]) / float64(s[1]),
			TotalVotes:    int64(s[1]),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AverageRating != out[j].AverageRating {
			return out[i].AverageRating > out[j].AverageRating
		}
		return out[i].RecipeID < out[j].RecipeID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeBookmarkStore struct {
	bookmarks map[ratingKey]bool
}

func (f *fakeBookmarkStore) CreateBookmark(_ context.Context, b *models.Bookmark) error {
	key := ratingKey{b.UserID, b.RecipeID}
	if f.bookmarks[key] {
		return repository.ErrDuplicate
	}
	f.bookmarks[key] = true
	return nil
}

func (f *fakeBookmarkStore) DeleteBookmark(_ context.Context, userID, recipeID uint) error {
	key := ratingKey{userID, recipeID}
	if !f.bookmarks[key] {
		return repository.ErrNotFound
	}
	delete(f.bookmarks, key)
	return nil
}

func (f *fakeBookmarkStore) GetBookmarksByUser(_ context.Context, userID uint) ([]models.BookmarkWithRecipe, error) {
	var out []models.BookmarkWithRecipe
	for k := range f.bookmarks {
		if k.userID == userID {
			out = append(out, models.BookmarkWithRecipe{Bookmark: models.Bookmark{UserID: k.userID, RecipeID: k.recipeID}})
		}
	}
	return out, nil
}

type fakeImageStore struct {
	calls int
	err   error
}

func (f *fakeImageStore) StoreImage(_ context.Context, data []byte, contentType string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return "https://images.example/recipe.png", nil
}

var errBoom = errors.New("boom")
