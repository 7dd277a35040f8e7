package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/anonymous231985/room-for-rent/internal/adapters/httpapi/middleware"
	"github.com/anonymous231985/room-for-rent/internal/core/post"
	postPort "github.com/anonymous231985/room-for-rent/internal/ports/post"
	"github.com/gin-gonic/gin"
)

type PostController struct{ pc PostUseCase }

func NewPostController(pc PostUseCase) *PostController { return &PostController{pc: pc} }

func (ctl *PostController) Search(c *gin.Context) {
	page, size := pageParams(c)
	res, err := ctl.pc.Search(c.Request.Context(), middleware.CallerID(c), page, size)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *PostController) ListLiked(c *gin.Context) {
	page, size := pageParams(c)
	res, err := ctl.pc.ListLiked(c.Request.Context(), middleware.CallerID(c), page, size)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *PostController) SearchMine(c *gin.Context) {
	page, size := pageParams(c)
	key := c.Query("key")

	var status *post.ActiveStatus
	if raw := c.Query("status"); raw != "" {
		st := post.ActiveStatus(raw)
		status = &st
	}

	res, err := ctl.pc.SearchMine(c.Request.Context(), middleware.CallerID(c), page, size, key, status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *PostController) GetByID(c *gin.Context) {
	res, err := ctl.pc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *PostController) Create(c *gin.Context) {
	var req postPort.PostCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	res, err := ctl.pc.Create(c.Request.Context(), middleware.CallerID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (ctl *PostController) Update(c *gin.Context) {
	var req postPort.PostCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	res, err := ctl.pc.Update(c.Request.Context(), middleware.CallerID(c), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *PostController) ToggleLike(c *gin.Context) {
	liked, err := ctl.pc.ToggleLike(c.Request.Context(), middleware.CallerID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"liked": liked})
}

func (ctl *PostController) CreateComment(c *gin.Context) {
	var req struct {
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	res, err := ctl.pc.CreateComment(c.Request.Context(), middleware.CallerID(c), c.Param("id"), req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (ctl *PostController) ListComments(c *gin.Context) {
	var before *time.Time
	if raw := c.Query("before"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid before timestamp"})
			return
		}
		before = &t
	}

	res, err := ctl.pc.ListComments(c.Request.Context(), c.Param("id"), before)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func pageParams(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil || page < 0 {
		page = 0
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", "20"))
	if err != nil || size <= 0 {
		size = 20
	}
	return page, size
}
