package postapp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/anonymous231985/room-for-rent/internal/config"
	"github.com/anonymous231985/room-for-rent/internal/core/apperr"
	commentEntity "github.com/anonymous231985/room-for-rent/internal/core/comment"
	likeEntity "github.com/anonymous231985/room-for-rent/internal/core/like"
	postEntity "github.com/anonymous231985/room-for-rent/internal/core/post"
	userEntity "github.com/anonymous231985/room-for-rent/internal/core/user"
	"github.com/anonymous231985/room-for-rent/internal/ports/broadcast"
	commentPort "github.com/anonymous231985/room-for-rent/internal/ports/comment"
	likePort "github.com/anonymous231985/room-for-rent/internal/ports/like"
	"github.com/anonymous231985/room-for-rent/internal/ports/pagination"
	postPort "github.com/anonymous231985/room-for-rent/internal/ports/post"
	userPort "github.com/anonymous231985/room-for-rent/internal/ports/user"
	"github.com/anonymous231985/room-for-rent/internal/timefmt"
	"github.com/gofrs/uuid"
	"go.uber.org/zap"
)

// commentPageSize caps every comment page; the cursor is the oldest
// timestamp of the previous page.
const commentPageSize = 10

// PostService is the feed aggregation and mutation core. Reads join posts
// with author profiles, per-author post counts and the caller's like set;
// writes enforce ownership and the vip posting window.
type PostService struct {
	PostRepository    postPort.PostRepository
	UserRepository    userPort.UserRepository
	CommentRepository commentPort.CommentRepository
	LikeRepository    likePort.LikeRepository
	Broadcast         broadcast.Publisher
}

func NewPostService(
	postRepo postPort.PostRepository,
	userRepo userPort.UserRepository,
	commentRepo commentPort.CommentRepository,
	likeRepo likePort.LikeRepository,
	publisher broadcast.Publisher,
) *PostService {
	return &PostService{
		PostRepository:    postRepo,
		UserRepository:    userRepo,
		CommentRepository: commentRepo,
		LikeRepository:    likeRepo,
		Broadcast:         publisher,
	}
}

// Search returns one page of the public feed. callerID may be empty for
// anonymous callers; their like flags are all false.
func (s *PostService) Search(ctx context.Context, callerID string, page, size int) (*pagination.Page[*postPort.PostRes], error) {
	page, size = normalizePage(page, size)

	posts, total, err := s.PostRepository.FindPage(ctx, page*size, size)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch posts: %w", err)
	}

	res, err := s.enrichPosts(ctx, posts, callerID)
	if err != nil {
		return nil, err
	}
	return pagination.New(res, page, size, total), nil
}

// ListLiked is the feed seeded from the caller's like rows instead of the
// full post set.
func (s *PostService) ListLiked(ctx context.Context, callerID string, page, size int) (*pagination.Page[*postPort.PostRes], error) {
	page, size = normalizePage(page, size)

	likes, total, err := s.LikeRepository.FindPageByUser(ctx, callerID, page*size, size)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch likes: %w", err)
	}

	ids := make([]string, 0, len(likes))
	for _, l := range likes {
		ids = append(ids, l.PostID.String())
	}
	posts, err := s.PostRepository.FindByIDIn(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch liked posts: %w", err)
	}

	res, err := s.enrichPosts(ctx, posts, callerID)
	if err != nil {
		return nil, err
	}
	return pagination.New(res, page, size, total), nil
}

// GetByID fetches one post and bumps its view counter. The bump is
// best-effort: a failed increment is logged and the read still succeeds.
func (s *PostService) GetByID(ctx context.Context, id string) (*postPort.PostRes, error) {
	p, err := s.PostRepository.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch post: %w", err)
	}
	if p == nil {
		return nil, apperr.ErrPostNotExist
	}

	if err := s.PostRepository.IncrementView(ctx, id); err != nil {
		config.Logger.Warn("could not increment view counter",
			zap.String("postID", id), zap.Error(err))
	} else {
		p.View++
	}

	author, err := s.UserRepository.FindByEmail(ctx, p.CreatedBy)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch author: %w", err)
	}
	if author == nil {
		return nil, apperr.ErrAuthorNotExist
	}
	totalPost, err := s.PostRepository.CountByCreatedBy(ctx, p.CreatedBy)
	if err != nil {
		return nil, fmt.Errorf("failed to count author posts: %w", err)
	}

	now := time.Now()
	return toPostRes(p, buildAuthorRes(author, totalPost, now), false, now), nil
}

// SearchMine returns the caller's own posts filtered by a content substring
// and an optional moderation status, newest-updated first.
func (s *PostService) SearchMine(ctx context.Context, callerID string, page, size int, key string, status *postEntity.ActiveStatus) (*pagination.Page[*postPort.PostRes], error) {
	page, size = normalizePage(page, size)

	u, err := s.requireUser(ctx, callerID)
	if err != nil {
		return nil, err
	}

	posts, total, err := s.PostRepository.FindPageByCreator(ctx, u.Email, key, status, page*size, size)
	if err != nil {
		return nil, fmt.Errorf("failed to search own posts: %w", err)
	}

	now := time.Now()
	res := make([]*postPort.PostRes, 0, len(posts))
	for _, p := range posts {
		res = append(res, toPostRes(p, nil, false, now))
	}
	return pagination.New(res, page, size, total), nil
}

// Create persists a new post in PENDING status together with its images.
// The post row is written first so images never reference a missing post.
func (s *PostService) Create(ctx context.Context, authorID string, req *postPort.PostCreateReq) (*postPort.PostRes, error) {
	u, err := s.requireUser(ctx, authorID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	if !u.VipActive(now) {
		return nil, apperr.ErrNotRechargeVip
	}

	p := postFromReq(req)
	p.ID = uuid.Must(uuid.NewV4())
	p.Active = postEntity.StatusPending
	p.CreatedBy = u.Email
	p.UpdatedBy = u.Email

	created, err := s.PostRepository.Create(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	images := make([]*postEntity.Image, 0, len(req.Images))
	for _, url := range req.Images {
		images = append(images, &postEntity.Image{
			ID:     uuid.Must(uuid.NewV4()),
			PostID: created.ID,
			URL:    url,
		})
	}
	if err := s.PostRepository.SaveImages(ctx, images); err != nil {
		return nil, fmt.Errorf("failed to save post images: %w", err)
	}
	for _, img := range images {
		created.Images = append(created.Images, *img)
	}

	totalPost, err := s.PostRepository.CountByCreatedBy(ctx, u.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to count author posts: %w", err)
	}
	return toPostRes(created, buildAuthorRes(u, totalPost, now), false, now), nil
}

// Update replaces a post's fields. Only the author may update, and only
// while holding an active vip window.
func (s *PostService) Update(ctx context.Context, callerID, postID string, req *postPort.PostCreateReq) (*postPort.PostRes, error) {
	u, err := s.requireUser(ctx, callerID)
	if err != nil {
		return nil, err
	}

	p, err := s.PostRepository.FindByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch post: %w", err)
	}
	if p == nil {
		return nil, apperr.ErrPostNotExist
	}
	// Ownership is checked before the vip window: a non-author is told so
	// even when their recharge has lapsed.
	if p.CreatedBy != u.Email {
		return nil, apperr.ErrNotPermissionUpdate
	}
	now := time.Now()
	if !u.VipActive(now) {
		return nil, apperr.ErrNotRechargeVip
	}

	applyReq(p, req)
	p.UpdatedBy = u.Email
	p.UpdatedAt = now
	if err := s.PostRepository.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	totalPost, err := s.PostRepository.CountByCreatedBy(ctx, u.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to count author posts: %w", err)
	}
	return toPostRes(p, buildAuthorRes(u, totalPost, now), false, now), nil
}

// ToggleLike flips the caller's like on a post and returns the new state.
// The delete-then-insert order plus the store's unique index keep concurrent
// toggles from double-inserting: a duplicate-key rejection means another
// toggle won the race and is treated as success.
func (s *PostService) ToggleLike(ctx context.Context, callerID, postID string) (bool, error) {
	u, err := s.requireUser(ctx, callerID)
	if err != nil {
		return false, err
	}
	p, err := s.PostRepository.FindByID(ctx, postID)
	if err != nil {
		return false, fmt.Errorf("failed to fetch post: %w", err)
	}
	if p == nil {
		return false, apperr.ErrPostNotExist
	}

	deleted, err := s.LikeRepository.Delete(ctx, postID, callerID)
	if err != nil {
		return false, fmt.Errorf("failed to delete like: %w", err)
	}
	if deleted > 0 {
		return false, nil
	}

	l := &likeEntity.Like{
		ID:     uuid.Must(uuid.NewV4()),
		PostID: p.ID,
		UserID: u.ID,
	}
	if err := s.LikeRepository.Create(ctx, l); err != nil {
		if errors.Is(err, likePort.ErrDuplicate) {
			return true, nil
		}
		return false, fmt.Errorf("failed to create like: %w", err)
	}
	return true, nil
}

// CreateComment persists a comment and announces it on the post's comment
// channel. The broadcast is fire-and-forget; a publish failure never fails
// the creation.
func (s *PostService) CreateComment(ctx context.Context, callerID, postID, content string) (*commentPort.CommentRes, error) {
	u, err := s.requireUser(ctx, callerID)
	if err != nil {
		return nil, err
	}
	p, err := s.PostRepository.FindByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch post: %w", err)
	}
	if p == nil {
		return nil, apperr.ErrPostNotExist
	}

	c := &commentEntity.Comment{
		ID:        uuid.Must(uuid.NewV4()),
		PostID:    p.ID,
		UserID:    u.ID,
		Content:   content,
		CreatedAt: time.Now(),
	}
	created, err := s.CommentRepository.Create(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	res := commentRes(created, u)
	if err := s.Broadcast.Publish(ctx, broadcast.CommentTopic(postID), res); err != nil {
		config.Logger.Warn("comment broadcast failed",
			zap.String("postID", postID), zap.Error(err))
	}
	return res, nil
}

// ListComments returns the most recent comments of a post, newest-first,
// strictly before the cursor when one is given. The cursor keeps pages
// stable under concurrent inserts.
func (s *PostService) ListComments(ctx context.Context, postID string, before *time.Time) (*pagination.Page[*commentPort.CommentRes], error) {
	comments, total, err := s.CommentRepository.FindByPost(ctx, postID, before, commentPageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch comments: %w", err)
	}

	idSet := make(map[string]struct{}, len(comments))
	ids := make([]string, 0, len(comments))
	for _, c := range comments {
		id := c.UserID.String()
		if _, ok := idSet[id]; !ok {
			idSet[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	users, err := s.UserRepository.FindByIDIn(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch commenters: %w", err)
	}
	userMap := make(map[string]*userEntity.User, len(users))
	for _, u := range users {
		userMap[u.ID.String()] = u
	}

	res := make([]*commentPort.CommentRes, 0, len(comments))
	for _, c := range comments {
		u := userMap[c.UserID.String()]
		if u == nil {
			return nil, apperr.ErrAuthorNotExist
		}
		res = append(res, commentRes(c, u))
	}
	return pagination.New(res, 0, commentPageSize, total), nil
}

// enrichPosts performs the three batched joins of the feed: bulk author
// fetch by email set, one post count per distinct author, and the caller's
// full like set. A post whose author cannot be resolved fails the whole
// operation; partial feeds masking data corruption are worse than an error.
func (s *PostService) enrichPosts(ctx context.Context, posts []*postEntity.Post, callerID string) ([]*postPort.PostRes, error) {
	emailSet := make(map[string]struct{}, len(posts))
	emails := make([]string, 0, len(posts))
	for _, p := range posts {
		if _, ok := emailSet[p.CreatedBy]; !ok {
			emailSet[p.CreatedBy] = struct{}{}
			emails = append(emails, p.CreatedBy)
		}
	}

	users, err := s.UserRepository.FindByEmailIn(ctx, emails)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch authors: %w", err)
	}
	userMap := make(map[string]*userEntity.User, len(users))
	for _, u := range users {
		userMap[u.Email] = u
	}

	counts := make(map[string]int64, len(emails))
	for _, email := range emails {
		n, err := s.PostRepository.CountByCreatedBy(ctx, email)
		if err != nil {
			return nil, fmt.Errorf("failed to count author posts: %w", err)
		}
		counts[email] = n
	}

	liked := make(map[string]bool)
	if callerID != "" {
		likes, err := s.LikeRepository.FindByUser(ctx, callerID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch caller likes: %w", err)
		}
		for _, l := range likes {
			liked[l.PostID.String()] = true
		}
	}

	now := time.Now()
	res := make([]*postPort.PostRes, 0, len(posts))
	for _, p := range posts {
		author := userMap[p.CreatedBy]
		if author == nil {
			return nil, apperr.ErrAuthorNotExist
		}
		ar := buildAuthorRes(author, counts[p.CreatedBy], now)
		res = append(res, toPostRes(p, ar, liked[p.ID.String()], now))
	}
	return res, nil
}

func (s *PostService) requireUser(ctx context.Context, id string) (*userEntity.User, error) {
	u, err := s.UserRepository.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if u == nil {
		return nil, apperr.ErrUserNotExist
	}
	return u, nil
}

func normalizePage(page, size int) (int, int) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = 20
	}
	return page, size
}

func buildAuthorRes(u *userEntity.User, totalPost int64, now time.Time) *postPort.AuthorRes {
	return &postPort.AuthorRes{
		ID:         u.ID.String(),
		FullName:   u.FullName,
		Email:      u.Email,
		Phone:      u.Phone,
		Avatar:     u.Avatar,
		TotalPost:  totalPost,
		Uptime:     timefmt.Since(u.Uptime, now),
		DateOfJoin: timefmt.Since(u.CreatedAt, now),
	}
}

func toPostRes(p *postEntity.Post, author *postPort.AuthorRes, liked bool, now time.Time) *postPort.PostRes {
	images := make([]string, 0, len(p.Images))
	for _, img := range p.Images {
		images = append(images, img.URL)
	}
	return &postPort.PostRes{
		ID:         p.ID.String(),
		Title:      p.Title,
		Content:    p.Content,
		Price:      p.Price,
		Deposit:    p.Deposit,
		Address:    p.Address,
		Province:   p.Province,
		District:   p.District,
		Acreage:    p.Acreage,
		StatusRoom: p.StatusRoom,
		Contact:    p.Contact,
		Longitude:  p.Longitude,
		Latitude:   p.Latitude,
		Type:       p.Type,
		Active:     p.Active,
		View:       p.View,
		Images:     images,
		CreatedBy:  p.CreatedBy,
		Uptime:     timefmt.Since(p.UpdatedAt, now),
		DateOfJoin: timefmt.Since(p.CreatedAt, now),
		Like:       liked,
		Author:     author,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func postFromReq(req *postPort.PostCreateReq) *postEntity.Post {
	return &postEntity.Post{
		Title:      req.Title,
		Content:    req.Content,
		Price:      req.Price,
		Deposit:    req.Deposit,
		Address:    req.Address,
		Province:   req.Province,
		District:   req.District,
		Acreage:    req.Acreage,
		StatusRoom: req.StatusRoom,
		Contact:    req.Contact,
		Longitude:  req.Longitude,
		Latitude:   req.Latitude,
		Type:       req.Type,
	}
}

func applyReq(p *postEntity.Post, req *postPort.PostCreateReq) {
	p.Title = req.Title
	p.Content = req.Content
	p.Price = req.Price
	p.Deposit = req.Deposit
	p.Address = req.Address
	p.Province = req.Province
	p.District = req.District
	p.Acreage = req.Acreage
	p.StatusRoom = req.StatusRoom
	p.Contact = req.Contact
	p.Longitude = req.Longitude
	p.Latitude = req.Latitude
	p.Type = req.Type
}

func commentRes(c *commentEntity.Comment, u *userEntity.User) *commentPort.CommentRes {
	return &commentPort.CommentRes{
		ID:        c.ID.String(),
		PostID:    c.PostID.String(),
		UserID:    u.ID.String(),
		Content:   c.Content,
		FullName:  u.FullName,
		Email:     u.Email,
		Avatar:    u.Avatar,
		CreatedAt: c.CreatedAt,
	}
}
