package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/starwars-api/backend/internal/model"
	"github.com/starwars-api/backend/internal/service"
)

type UsersHandler struct {
	svc  *service.UsersService
	auth *service.AuthService
}

func NewUsersHandler(svc *service.UsersService, auth *service.AuthService) *UsersHandler {
	return &UsersHandler{svc: svc, auth: auth}
}

// FindAll godoc
// @Summary Get all users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.UserResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 403 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /users [get]
func (h *UsersHandler) FindAll(c *gin.Context) {
	users, err := h.svc.FindAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	res := make([]model.UserResponse, 0, len(users))
	for i := range users {
		res = append(res, users[i].ToResponse())
	}
	c.JSON(http.StatusOK, res)
}

// FindOne godoc
// @Summary Get user by ID
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} model.UserResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /users/{id} [get]
func (h *UsersHandler) FindOne(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	user, err := h.svc.FindOne(c.Request.Context(), userID)
	if err != nil {
		writeUsersError(c, err)
		return
	}
	c.JSON(http.StatusOK, user.ToResponse())
}

// Create godoc
// @Summary Create a new user
// @Description Administrator-only user creation. Same payload as register.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.RegisterRequest true "Email, account and password"
// @Success 201 {object} model.UserEnvelope
// @Failure 400 {object} model.ErrorResponse
// @Failure 409 {object} model.ErrorResponse
// @Router /users [post]
func (h *UsersHandler) Create(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	// 해싱 경로를 register와 공유한다
	user, err := h.auth.Register(c.Request.Context(), req.Email, req.Account, req.Password)
	if err != nil {
		writeUsersError(c, err)
		return
	}

	c.JSON(http.StatusCreated, model.UserEnvelope{Data: user.ToResponse()})
}

// Update godoc
// @Summary Update a user
// @Description Updates email/account only.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body model.UpdateUserRequest true "Fields to update"
// @Success 200 {object} model.UserResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Failure 409 {object} model.ErrorResponse
// @Router /users/{id} [put]
func (h *UsersHandler) Update(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	var req model.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, err := h.svc.Update(c.Request.Context(), userID, req)
	if err != nil {
		writeUsersError(c, err)
		return
	}
	c.JSON(http.StatusOK, user.ToResponse())
}

func writeUsersError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "Email already in use"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
	}
}
