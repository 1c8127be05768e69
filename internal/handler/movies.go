package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/starwars-api/backend/internal/model"
	"github.com/starwars-api/backend/internal/service"
)

type MoviesHandler struct {
	svc *service.MoviesService
}

func NewMoviesHandler(svc *service.MoviesService) *MoviesHandler {
	return &MoviesHandler{svc: svc}
}

// FindAll godoc
// @Summary Get all movies
// @Description Retrieve a list of all movies (public).
// @Tags movies
// @Produce json
// @Success 200 {array} model.Movie
// @Failure 500 {object} model.ErrorResponse
// @Router /movies [get]
func (h *MoviesHandler) FindAll(c *gin.Context) {
	movies, err := h.svc.FindAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	c.JSON(http.StatusOK, movies)
}

// FindOne godoc
// @Summary Get movie by ID
// @Description Retrieve details of a specific movie (user access only).
// @Tags movies
// @Produce json
// @Security BearerAuth
// @Param id path int true "Movie ID"
// @Success 200 {object} model.Movie
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /movies/{id} [get]
func (h *MoviesHandler) FindOne(c *gin.Context) {
	movieID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid movie id"})
		return
	}

	movie, err := h.svc.FindOne(c.Request.Context(), movieID)
	if err != nil {
		writeMoviesError(c, err)
		return
	}
	c.JSON(http.StatusOK, movie)
}

// Create godoc
// @Summary Create a new movie
// @Description Only administrators can create new movies.
// @Tags movies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateMovieRequest true "Movie payload"
// @Success 201 {object} model.Movie
// @Failure 400 {object} model.ErrorResponse
// @Failure 409 {object} model.ErrorResponse
// @Router /movies [post]
func (h *MoviesHandler) Create(c *gin.Context) {
	var req model.CreateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	movie, err := h.svc.AddMovie(c.Request.Context(), req)
	if err != nil {
		writeMoviesError(c, err)
		return
	}
	c.JSON(http.StatusCreated, movie)
}

// Update godoc
// @Summary Update a movie
// @Description Only administrators can update movie information. Partial update.
// @Tags movies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Movie ID"
// @Param request body model.UpdateMovieRequest true "Fields to update (partial)"
// @Success 200 {object} model.Movie
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Failure 409 {object} model.ErrorResponse
// @Router /movies/{id} [patch]
func (h *MoviesHandler) Update(c *gin.Context) {
	movieID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid movie id"})
		return
	}

	var req model.UpdateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	movie, err := h.svc.Update(c.Request.Context(), movieID, req)
	if err != nil {
		writeMoviesError(c, err)
		return
	}
	c.JSON(http.StatusOK, movie)
}

// Remove godoc
// @Summary Delete a movie
// @Description Only administrators can delete a movie.
// @Tags movies
// @Produce json
// @Security BearerAuth
// @Param id path int true "Movie ID"
// @Success 204
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /movies/{id} [delete]
func (h *MoviesHandler) Remove(c *gin.Context) {
	movieID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid movie id"})
		return
	}

	if err := h.svc.Remove(c.Request.Context(), movieID); err != nil {
		writeMoviesError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func writeMoviesError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Movie not found"})
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "A movie with this title already exists"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
	}
}
