package postapp

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/anonymous231985/room-for-rent/internal/config"
	"github.com/anonymous231985/room-for-rent/internal/core/apperr"
	commentEntity "github.com/anonymous231985/room-for-rent/internal/core/comment"
	likeEntity "github.com/anonymous231985/room-for-rent/internal/core/like"
	postEntity "github.com/anonymous231985/room-for-rent/internal/core/post"
	userEntity "github.com/anonymous231985/room-for-rent/internal/core/user"
	likePort "github.com/anonymous231985/room-for-rent/internal/ports/like"
	postPort "github.com/anonymous231985/room-for-rent/internal/ports/post"
	"github.com/gofrs/uuid"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	config.Logger = zap.NewNop()
	m.Run()
}

// ---- fakes -------------------------------------------------------------

type fakeUserRepo struct {
	users []*userEntity.User
}

func (r *fakeUserRepo) Create(_ context.Context, u *userEntity.User) (*userEntity.User, error) {
	r.users = append(r.users, u)
	return u, nil
}

func (r *fakeUserRepo) Save(_ context.Context, u *userEntity.User) error { return nil }

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*userEntity.User, error) {
	for _, u := range r.users {
		if u.ID.String() == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*userEntity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmailOrPhone(_ context.Context, email, phone string) (*userEntity.User, error) {
	for _, u := range r.users {
		if u.Email == email || u.Phone == phone {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmailIn(_ context.Context, emails []string) ([]*userEntity.User, error) {
	var out []*userEntity.User
	for _, u := range r.users {
		for _, e := range emails {
			if u.Email == e {
				out = append(out, u)
			}
		}
	}
	return out, nil
}

func (r *fakeUserRepo) FindByIDIn(_ context.Context, ids []string) ([]*userEntity.User, error) {
	var out []*userEntity.User
	for _, u := range r.users {
		for _, id := range ids {
			if u.ID.String() == id {
				out = append(out, u)
			}
		}
	}
	return out, nil
}

type fakePostRepo struct {
	posts   []*postEntity.Post
	images  []*postEntity.Image
	viewErr error
}

func (r *fakePostRepo) Create(_ context.Context, p *postEntity.Post) (*postEntity.Post, error) {
	r.posts = append(r.posts, p)
	return p, nil
}

func (r *fakePostRepo) Save(_ context.Context, p *postEntity.Post) error {
	for i, existing := range r.posts {
		if existing.ID == p.ID {
			cp := *p
			r.posts[i] = &cp
		}
	}
	return nil
}

// FindByID hands out a detached copy, the way a real store materializes a
// fresh row per read; callers mutating the result never touch stored state.
func (r *fakePostRepo) FindByID(_ context.Context, id string) (*postEntity.Post, error) {
	for _, p := range r.posts {
		if p.ID.String() == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakePostRepo) FindByIDIn(_ context.Context, ids []string) ([]*postEntity.Post, error) {
	var out []*postEntity.Post
	for _, p := range r.posts {
		for _, id := range ids {
			if p.ID.String() == id {
				out = append(out, p)
			}
		}
	}
	return out, nil
}

func (r *fakePostRepo) FindPage(_ context.Context, offset, limit int) ([]*postEntity.Post, int64, error) {
	total := int64(len(r.posts))
	if offset >= len(r.posts) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(r.posts) {
		end = len(r.posts)
	}
	return r.posts[offset:end], total, nil
}

func (r *fakePostRepo) FindPageByCreator(_ context.Context, email, key string, status *postEntity.ActiveStatus, offset, limit int) ([]*postEntity.Post, int64, error) {
	var matched []*postEntity.Post
	for _, p := range r.posts {
		if p.CreatedBy != email {
			continue
		}
		if status != nil && p.Active != *status {
			continue
		}
		matched = append(matched, p)
	}
	total := int64(len(matched))
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (r *fakePostRepo) CountByCreatedBy(_ context.Context, email string) (int64, error) {
	var n int64
	for _, p := range r.posts {
		if p.CreatedBy == email {
			n++
		}
	}
	return n, nil
}

func (r *fakePostRepo) IncrementView(_ context.Context, id string) error {
	if r.viewErr != nil {
		return r.viewErr
	}
	for _, p := range r.posts {
		if p.ID.String() == id {
			p.View++
		}
	}
	return nil
}

func (r *fakePostRepo) SaveImages(_ context.Context, images []*postEntity.Image) error {
	for _, img := range images {
		found := false
		for _, p := range r.posts {
			if p.ID == img.PostID {
				found = true
			}
		}
		if !found {
			return fmt.Errorf("image references missing post %s", img.PostID)
		}
	}
	r.images = append(r.images, images...)
	return nil
}

type fakeCommentRepo struct {
	comments []*commentEntity.Comment
}

func (r *fakeCommentRepo) Create(_ context.Context, c *commentEntity.Comment) (*commentEntity.Comment, error) {
	r.comments = append(r.comments, c)
	return c, nil
}

func (r *fakeCommentRepo) FindByPost(_ context.Context, postID string, before *time.Time, limit int) ([]*commentEntity.Comment, int64, error) {
	var matched []*commentEntity.Comment
	for _, c := range r.comments {
		if c.PostID.String() != postID {
			continue
		}
		if before != nil && !c.CreatedAt.Before(*before) {
			continue
		}
		matched = append(matched, c)
	}
	// newest-first
	for i := 0; i < len(matched); i++ {
		for j := i + 1; j < len(matched); j++ {
			if matched[j].CreatedAt.After(matched[i].CreatedAt) {
				matched[i], matched[j] = matched[j], matched[i]
			}
		}
	}
	total := int64(len(matched))
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, total, nil
}

type fakeLikeRepo struct {
	likes     []*likeEntity.Like
	createErr error
}

func (r *fakeLikeRepo) Create(_ context.Context, l *likeEntity.Like) error {
	if r.createErr != nil {
		return r.createErr
	}
	for _, existing := range r.likes {
		if existing.PostID == l.PostID && existing.UserID == l.UserID {
			return likePort.ErrDuplicate
		}
	}
	r.likes = append(r.likes, l)
	return nil
}

func (r *fakeLikeRepo) Delete(_ context.Context, postID, userID string) (int64, error) {
	for i, l := range r.likes {
		if l.PostID.String() == postID && l.UserID.String() == userID {
			r.likes = append(r.likes[:i], r.likes[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (r *fakeLikeRepo) FindByUser(_ context.Context, userID string) ([]*likeEntity.Like, error) {
	var out []*likeEntity.Like
	for _, l := range r.likes {
		if l.UserID.String() == userID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *fakeLikeRepo) FindPageByUser(_ context.Context, userID string, offset, limit int) ([]*likeEntity.Like, int64, error) {
	var matched []*likeEntity.Like
	for _, l := range r.likes {
		if l.UserID.String() == userID {
			matched = append(matched, l)
		}
	}
	total := int64(len(matched))
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

type fakeBroadcast struct {
	topics []string
	err    error
}

func (b *fakeBroadcast) Publish(_ context.Context, topic string, _ any) error {
	b.topics = append(b.topics, topic)
	return b.err
}

// ---- helpers -----------------------------------------------------------

type fixture struct {
	svc       *PostService
	users     *fakeUserRepo
	posts     *fakePostRepo
	comments  *fakeCommentRepo
	likes     *fakeLikeRepo
	broadcast *fakeBroadcast
}

func newFixture() *fixture {
	f := &fixture{
		users:     &fakeUserRepo{},
		posts:     &fakePostRepo{},
		comments:  &fakeCommentRepo{},
		likes:     &fakeLikeRepo{},
		broadcast: &fakeBroadcast{},
	}
	f.svc = NewPostService(f.posts, f.users, f.comments, f.likes, f.broadcast)
	return f
}

func (f *fixture) addUser(email string, vip *time.Time) *userEntity.User {
	u := &userEntity.User{
		ID:          uuid.Must(uuid.NewV4()),
		FullName:    "User " + email,
		Email:       email,
		Phone:       email + "-phone",
		RechargeVip: vip,
		CreatedAt:   time.Now().Add(-30 * 24 * time.Hour),
		Uptime:      time.Now().Add(-time.Hour),
	}
	f.users.users = append(f.users.users, u)
	return u
}

func (f *fixture) addPost(author *userEntity.User) *postEntity.Post {
	p := &postEntity.Post{
		ID:        uuid.Must(uuid.NewV4()),
		Title:     "room",
		Content:   "a room for rent",
		Active:    postEntity.StatusActive,
		CreatedBy: author.Email,
		CreatedAt: time.Now().Add(-time.Hour),
		UpdatedAt: time.Now().Add(-time.Hour),
	}
	f.posts.posts = append(f.posts.posts, p)
	return p
}

func (f *fixture) addLike(u *userEntity.User, p *postEntity.Post) {
	f.likes.likes = append(f.likes.likes, &likeEntity.Like{
		ID:     uuid.Must(uuid.NewV4()),
		PostID: p.ID,
		UserID: u.ID,
	})
}

func futureVip(d time.Duration) *time.Time {
	t := time.Now().Add(d)
	return &t
}

// ---- feed reads --------------------------------------------------------

func TestSearchLikedFlags(t *testing.T) {
	f := newFixture()
	author := f.addUser("author@example.com", nil)
	caller := f.addUser("caller@example.com", nil)
	liked := f.addPost(author)
	other := f.addPost(author)
	f.addLike(caller, liked)

	page, err := f.svc.Search(context.Background(), caller.ID.String(), 0, 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(page.Content) != 2 {
		t.Fatalf("got %d posts, want 2", len(page.Content))
	}
	for _, res := range page.Content {
		want := res.ID == liked.ID.String()
		if res.Like != want {
			t.Errorf("post %s: like = %v, want %v", res.ID, res.Like, want)
		}
		if res.ID == other.ID.String() && res.Like {
			t.Errorf("unliked post flagged as liked")
		}
	}
}

func TestSearchAnonymousCallerLikesAllFalse(t *testing.T) {
	f := newFixture()
	author := f.addUser("author@example.com", nil)
	caller := f.addUser("caller@example.com", nil)
	p := f.addPost(author)
	f.addLike(caller, p)

	page, err := f.svc.Search(context.Background(), "", 0, 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	for _, res := range page.Content {
		if res.Like {
			t.Errorf("anonymous caller got like = true on post %s", res.ID)
		}
	}
}

func TestSearchTotalPostPerAuthor(t *testing.T) {
	f := newFixture()
	prolific := f.addUser("prolific@example.com", nil)
	single := f.addUser("single@example.com", nil)
	f.addPost(prolific)
	f.addPost(prolific)
	f.addPost(prolific)
	f.addPost(single)

	page, err := f.svc.Search(context.Background(), "", 0, 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	for _, res := range page.Content {
		want := int64(3)
		if res.CreatedBy == single.Email {
			want = 1
		}
		if res.Author == nil {
			t.Fatalf("post %s has no author block", res.ID)
		}
		if res.Author.TotalPost != want {
			t.Errorf("author %s: totalPost = %d, want %d", res.CreatedBy, res.Author.TotalPost, want)
		}
	}
}

func TestSearchFailsOnMissingAuthor(t *testing.T) {
	f := newFixture()
	author := f.addUser("author@example.com", nil)
	f.addPost(author)
	orphan := &postEntity.Post{
		ID:        uuid.Must(uuid.NewV4()),
		CreatedBy: "ghost@example.com",
	}
	f.posts.posts = append(f.posts.posts, orphan)

	_, err := f.svc.Search(context.Background(), "", 0, 10)
	if !errors.Is(err, apperr.ErrAuthorNotExist) {
		t.Fatalf("err = %v, want ErrAuthorNotExist", err)
	}
}

func TestSearchPagination(t *testing.T) {
	f := newFixture()
	author := f.addUser("author@example.com", nil)
	for i := 0; i < 5; i++ {
		f.addPost(author)
	}

	page, err := f.svc.Search(context.Background(), "", 1, 2)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(page.Content) != 2 {
		t.Errorf("got %d items, want 2", len(page.Content))
	}
	if page.TotalElements != 5 {
		t.Errorf("totalElements = %d, want 5", page.TotalElements)
	}
	if page.Page != 1 || page.Size != 2 {
		t.Errorf("page envelope = (%d,%d), want (1,2)", page.Page, page.Size)
	}
}

func TestListLiked(t *testing.T) {
	f := newFixture()
	author := f.addUser("author@example.com", nil)
	caller := f.addUser("caller@example.com", nil)
	p1 := f.addPost(author)
	f.addPost(author)
	p3 := f.addPost(author)
	f.addLike(caller, p1)
	f.addLike(caller, p3)

	page, err := f.svc.ListLiked(context.Background(), caller.ID.String(), 0, 10)
	if err != nil {
		t.Fatalf("ListLiked: %v", err)
	}
	if len(page.Content) != 2 {
		t.Fatalf("got %d posts, want 2", len(page.Content))
	}
	if page.TotalElements != 2 {
		t.Errorf("totalElements = %d, want 2", page.TotalElements)
	}
	for _, res := range page.Content {
		if !res.Like {
			t.Errorf("post %s in liked feed has like = false", res.ID)
		}
	}
}

// ---- GetByID -----------------------------------------------------------

func TestGetByIDNotFound(t *testing.T) {
	f := newFixture()
	_, err := f.svc.GetByID(context.Background(), uuid.Must(uuid.NewV4()).String())
	if !errors.Is(err, apperr.ErrPostNotExist) {
		t.Fatalf("err = %v, want ErrPostNotExist", err)
	}
}

func TestGetByIDIncrementsView(t *testing.T) {
	f := newFixture()
	author := f.addUser("author@example.com", nil)
	p := f.addPost(author)

	res, err := f.svc.GetByID(context.Background(), p.ID.String())
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if res.View != 1 {
		t.Errorf("view = %d, want 1", res.View)
	}
	stored, err := f.posts.FindByID(context.Background(), p.ID.String())
	if err != nil || stored == nil {
		t.Fatalf("refetch post: %v", err)
	}
	if stored.View != 1 {
		t.Errorf("stored view = %d, want 1", stored.View)
	}
}

func TestGetByIDViewIncrementFailureDoesNotFailRead(t *testing.T) {
	f := newFixture()
	author := f.addUser("author@example.com", nil)
	p := f.addPost(author)
	f.posts.viewErr = errors.New("store down")

	res, err := f.svc.GetByID(context.Background(), p.ID.String())
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if res.ID != p.ID.String() {
		t.Errorf("got post %s, want %s", res.ID, p.ID)
	}
	if res.View != 0 {
		t.Errorf("view = %d, want 0 after failed increment", res.View)
	}
}

// ---- create / update ---------------------------------------------------

func TestCreateRequiresVip(t *testing.T) {
	f := newFixture()
	noVip := f.addUser("novip@example.com", nil)
	expired := f.addUser("expired@example.com", futureVip(-time.Hour))

	req := &postPort.PostCreateReq{Title: "room", Content: "text"}
	if _, err := f.svc.Create(context.Background(), noVip.ID.String(), req); !errors.Is(err, apperr.ErrNotRechargeVip) {
		t.Errorf("nil vip: err = %v, want ErrNotRechargeVip", err)
	}
	if _, err := f.svc.Create(context.Background(), expired.ID.String(), req); !errors.Is(err, apperr.ErrNotRechargeVip) {
		t.Errorf("expired vip: err = %v, want ErrNotRechargeVip", err)
	}
}

func TestCreateStartsPendingWithImages(t *testing.T) {
	f := newFixture()
	vip := f.addUser("vip@example.com", futureVip(24*time.Hour))

	req := &postPort.PostCreateReq{
		Title:   "room",
		Content: "text",
		Images:  []string{"a.jpg", "b.jpg"},
	}
	res, err := f.svc.Create(context.Background(), vip.ID.String(), req)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if res.Active != postEntity.StatusPending {
		t.Errorf("active = %s, want PENDING", res.Active)
	}
	if len(f.posts.images) != 2 {
		t.Errorf("stored %d images, want 2", len(f.posts.images))
	}
	if len(res.Images) != 2 {
		t.Errorf("response carries %d images, want 2", len(res.Images))
	}
	if res.CreatedBy != vip.Email {
		t.Errorf("createdBy = %s, want %s", res.CreatedBy, vip.Email)
	}
}

func TestUpdateOnlyByAuthor(t *testing.T) {
	f := newFixture()
	author := f.addUser("author@example.com", futureVip(24*time.Hour))
	stranger := f.addUser("stranger@example.com", futureVip(24*time.Hour))
	p := f.addPost(author)

	req := &postPort.PostCreateReq{Title: "new", Content: "new text"}
	if _, err := f.svc.Update(context.Background(), stranger.ID.String(), p.ID.String(), req); !errors.Is(err, apperr.ErrNotPermissionUpdate) {
		t.Fatalf("stranger update: err = %v, want ErrNotPermissionUpdate", err)
	}

	// A non-author is rejected for ownership even without an active vip.
	lapsed := f.addUser("lapsed@example.com", nil)
	if _, err := f.svc.Update(context.Background(), lapsed.ID.String(), p.ID.String(), req); !errors.Is(err, apperr.ErrNotPermissionUpdate) {
		t.Fatalf("lapsed stranger update: err = %v, want ErrNotPermissionUpdate", err)
	}

	res, err := f.svc.Update(context.Background(), author.ID.String(), p.ID.String(), req)
	if err != nil {
		t.Fatalf("author update: %v", err)
	}
	if res.Title != "new" {
		t.Errorf("title = %q, want %q", res.Title, "new")
	}
	stored, err := f.posts.FindByID(context.Background(), p.ID.String())
	if err != nil || stored == nil {
		t.Fatalf("refetch updated post: %v", err)
	}
	if stored.UpdatedBy != author.Email {
		t.Errorf("updatedBy = %s, want %s", stored.UpdatedBy, author.Email)
	}
	if stored.Title != "new" {
		t.Errorf("stored title = %q, want %q", stored.Title, "new")
	}
}

func TestUpdateRequiresVip(t *testing.T) {
	f := newFixture()
	author := f.addUser("author@example.com", nil)
	p := f.addPost(author)

	req := &postPort.PostCreateReq{Title: "new", Content: "new text"}
	if _, err := f.svc.Update(context.Background(), author.ID.String(), p.ID.String(), req); !errors.Is(err, apperr.ErrNotRechargeVip) {
		t.Fatalf("err = %v, want ErrNotRechargeVip", err)
	}
}

// ---- likes -------------------------------------------------------------

func TestToggleLikeIsItsOwnInverse(t *testing.T) {
	f := newFixture()
	author := f.addUser("author@example.com", nil)
	caller := f.addUser("caller@example.com", nil)
	p := f.addPost(author)

	liked, err := f.svc.ToggleLike(context.Background(), caller.ID.String(), p.ID.String())
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if !liked {
		t.Fatalf("first toggle: liked = false, want true")
	}
	if len(f.likes.likes) != 1 {
		t.Fatalf("like rows = %d, want 1", len(f.likes.likes))
	}

	liked, err = f.svc.ToggleLike(context.Background(), caller.ID.String(), p.ID.String())
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if liked {
		t.Fatalf("second toggle: liked = true, want false")
	}
	if len(f.likes.likes) != 0 {
		t.Fatalf("like rows = %d, want 0 after toggling twice", len(f.likes.likes))
	}
}

func TestToggleLikeDuplicateInsertIsNoOp(t *testing.T) {
	f := newFixture()
	author := f.addUser("author@example.com", nil)
	caller := f.addUser("caller@example.com", nil)
	p := f.addPost(author)
	f.likes.createErr = likePort.ErrDuplicate

	liked, err := f.svc.ToggleLike(context.Background(), caller.ID.String(), p.ID.String())
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !liked {
		t.Errorf("liked = false, want true when a concurrent insert won")
	}
}

func TestToggleLikePostNotFound(t *testing.T) {
	f := newFixture()
	caller := f.addUser("caller@example.com", nil)
	_, err := f.svc.ToggleLike(context.Background(), caller.ID.String(), uuid.Must(uuid.NewV4()).String())
	if !errors.Is(err, apperr.ErrPostNotExist) {
		t.Fatalf("err = %v, want ErrPostNotExist", err)
	}
}

// ---- comments ----------------------------------------------------------

func TestCreateCommentPostNotFound(t *testing.T) {
	f := newFixture()
	caller := f.addUser("caller@example.com", nil)
	_, err := f.svc.CreateComment(context.Background(), caller.ID.String(), uuid.Must(uuid.NewV4()).String(), "hi")
	if !errors.Is(err, apperr.ErrPostNotExist) {
		t.Fatalf("err = %v, want ErrPostNotExist", err)
	}
}

func TestCreateCommentPublishesAndSurvivesBroadcastFailure(t *testing.T) {
	f := newFixture()
	author := f.addUser("author@example.com", nil)
	caller := f.addUser("caller@example.com", nil)
	p := f.addPost(author)
	f.broadcast.err = errors.New("redis down")

	res, err := f.svc.CreateComment(context.Background(), caller.ID.String(), p.ID.String(), "nice room")
	if err != nil {
		t.Fatalf("CreateComment: %v", err)
	}
	if res.Content != "nice room" {
		t.Errorf("content = %q, want %q", res.Content, "nice room")
	}
	if res.FullName != caller.FullName {
		t.Errorf("fullName = %q, want commenter profile", res.FullName)
	}
	if len(f.broadcast.topics) != 1 || f.broadcast.topics[0] != "comments:"+p.ID.String() {
		t.Errorf("published to %v, want [comments:%s]", f.broadcast.topics, p.ID)
	}
	if len(f.comments.comments) != 1 {
		t.Errorf("stored %d comments, want 1", len(f.comments.comments))
	}
}

func TestListCommentsCursor(t *testing.T) {
	f := newFixture()
	author := f.addUser("author@example.com", nil)
	commenter := f.addUser("commenter@example.com", nil)
	p := f.addPost(author)

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 15; i++ {
		f.comments.comments = append(f.comments.comments, &commentEntity.Comment{
			ID:        uuid.Must(uuid.NewV4()),
			PostID:    p.ID,
			UserID:    commenter.ID,
			Content:   fmt.Sprintf("comment %d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}
	cursor := base.Add(12 * time.Minute)

	page, err := f.svc.ListComments(context.Background(), p.ID.String(), &cursor)
	if err != nil {
		t.Fatalf("ListComments: %v", err)
	}
	if len(page.Content) > 10 {
		t.Fatalf("got %d comments, want at most 10", len(page.Content))
	}
	for i, c := range page.Content {
		if !c.CreatedAt.Before(cursor) {
			t.Errorf("comment %d at %v is not before cursor %v", i, c.CreatedAt, cursor)
		}
		if i > 0 && c.CreatedAt.After(page.Content[i-1].CreatedAt) {
			t.Errorf("comments not newest-first at index %d", i)
		}
		if c.FullName != commenter.FullName {
			t.Errorf("comment %d missing author enrichment", i)
		}
	}
}

func TestListCommentsWithoutCursorReturnsNewest(t *testing.T) {
	f := newFixture()
	author := f.addUser("author@example.com", nil)
	commenter := f.addUser("commenter@example.com", nil)
	p := f.addPost(author)

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 12; i++ {
		f.comments.comments = append(f.comments.comments, &commentEntity.Comment{
			ID:        uuid.Must(uuid.NewV4()),
			PostID:    p.ID,
			UserID:    commenter.ID,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}

	page, err := f.svc.ListComments(context.Background(), p.ID.String(), nil)
	if err != nil {
		t.Fatalf("ListComments: %v", err)
	}
	if len(page.Content) != 10 {
		t.Fatalf("got %d comments, want 10", len(page.Content))
	}
	newest := base.Add(11 * time.Minute)
	if !page.Content[0].CreatedAt.Equal(newest) {
		t.Errorf("first comment at %v, want newest %v", page.Content[0].CreatedAt, newest)
	}
	if page.TotalElements != 12 {
		t.Errorf("totalElements = %d, want 12", page.TotalElements)
	}
}

// ---- own posts ---------------------------------------------------------

func TestSearchMineFiltersByStatus(t *testing.T) {
	f := newFixture()
	author := f.addUser("author@example.com", nil)
	f.addPost(author)
	pending := f.addPost(author)
	pending.Active = postEntity.StatusPending

	status := postEntity.StatusPending
	page, err := f.svc.SearchMine(context.Background(), author.ID.String(), 0, 10, "", &status)
	if err != nil {
		t.Fatalf("SearchMine: %v", err)
	}
	if len(page.Content) != 1 {
		t.Fatalf("got %d posts, want 1", len(page.Content))
	}
	if page.Content[0].Active != postEntity.StatusPending {
		t.Errorf("active = %s, want PENDING", page.Content[0].Active)
	}
}
