// User directory HTTP handlers.
//
// This file exposes REST endpoints for the user directory that app deep
// links navigate into:
//   - POST /users        (create)
//   - GET  /users        (list, paginated)
//   - GET  /users/{id}   (fetch one; the UserDetail screen's data source)
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/khateebdev-stack/qrcode/internal/domain"
	"github.com/khateebdev-stack/qrcode/internal/services"
)

// UserService defines the directory operations consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type UserService interface {
	// Create inserts a new directory user.
	Create(ctx context.Context, name, email string) (*domain.User, error)
	// Get fetches a user by ID.
	Get(ctx context.Context, id string) (*domain.User, error)
	// ListPage returns a page of users and the total count.
	ListPage(ctx context.Context, page, pageSize int) ([]domain.User, int64, error)
}

// Handlers groups HTTP endpoints for scan dispatch and the user directory.
// It depends on abstract service interfaces to keep transport concerns
// separate from business logic.
type Handlers struct {
	scanSvc ScanService
	userSvc UserService
}

// New constructs and returns a Handlers instance bound to the given services.
func New(scanSvc ScanService, userSvc UserService) *Handlers {
	return &Handlers{scanSvc: scanSvc, userSvc: userSvc}
}

//
// DTOs
//

// CreateUserRequest is the JSON payload for creating a directory user.
type CreateUserRequest struct {
	Name  string `json:"name"  binding:"required,min=1,max=120" example:"Ada Lovelace"`
	Email string `json:"email" binding:"required"               example:"ada@example.com"`
}

// ListUsersResponse wraps a page of users and pagination information.
type ListUsersResponse struct {
	Users      []domain.User `json:"users"`
	Pagination Pagination    `json:"pagination"`
}

//
// Handlers
//

// CreateUser godoc
// @ID          createUser
// @Summary     Create a directory user
// @Description Creates a user record reachable via the Users screen and qrcodeapp://user/<id> deep links.
// @Tags        Users
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.CreateUserRequest  true  "Create user payload"
//
// @Success     201  {object}  domain.User
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     409  {object}  handlers.ErrorResponse  "Email already registered"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /users [post]
func (h *Handlers) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "name and email required")
		return
	}

	u, err := h.userSvc.Create(c.Request.Context(), strings.TrimSpace(req.Name), req.Email)
	switch {
	case errors.Is(err, services.ErrEmptyName), errors.Is(err, services.ErrInvalidEmail):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
	case errors.Is(err, services.ErrDuplicateEmail):
		fail(c, http.StatusConflict, ErrCodeConflict, err.Error())
	case err != nil:
		fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
	default:
		ok(c, http.StatusCreated, u)
	}
}

// ListUsers godoc
// @ID          listUsers
// @Summary     List directory users (paginated)
// @Description Returns a page of users, most recent first.
// @Tags        Users
// @Produce     json
//
// @Param       page       query  int  false  "Page number"    minimum(1) default(1)
// @Param       page_size  query  int  false  "Items per page" minimum(1) maximum(100) default(20)
//
// @Success     200  {object}  handlers.ListUsersResponse
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /users [get]
func (h *Handlers) ListUsers(c *gin.Context) {
	page, pageSize := clampPagination(c)

	items, total, err := h.userSvc.ListPage(c.Request.Context(), page, pageSize)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	ok(c, http.StatusOK, ListUsersResponse{
		Users: items,
		Pagination: Pagination{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
		},
	})
}

// GetUser godoc
// @ID          getUser
// @Summary     Fetch one directory user
// @Description Returns the user record a UserDetail navigation target points at.
// @Tags        Users
// @Produce     json
//
// @Param       id  path  string  true  "User ID (UUID)"  format(uuid)
//
// @Success     200  {object}  domain.User
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "User not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /users/{id} [get]
func (h *Handlers) GetUser(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "user id must be a UUID")
		return
	}

	u, err := h.userSvc.Get(c.Request.Context(), id)
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "user not found")
	case err != nil:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
	default:
		ok(c, http.StatusOK, u)
	}
}
