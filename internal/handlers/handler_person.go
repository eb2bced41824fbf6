package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/bookkeeping_core/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_core/internal/dto"
	"github.com/SscSPs/bookkeeping_core/internal/middleware"
	"github.com/gin-gonic/gin"
)

type personHandler struct {
	personService portssvc.PersonSvc
}

func registerPersonRoutes(rg *gin.RouterGroup, personService portssvc.PersonSvc) {
	h := &personHandler{personService: personService}

	persons := rg.Group("/persons")
	{
		persons.POST("", h.createPerson)
		persons.GET("", h.listPersons)
		persons.GET("/:id", h.getPerson)
	}
}

// createPerson godoc
// @Summary Register a person
// @Tags persons
// @Accept  json
// @Produce  json
// @Param   person body dto.CreatePersonRequest true "Person details"
// @Success 201 {object} dto.PersonResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Person code already taken"
// @Security BearerAuth
// @Router /persons [post]
func (h *personHandler) createPerson(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePerson", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	person, err := h.personService.CreatePerson(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err, "Failed to create person")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPersonResponse(person))
}

// listPersons godoc
// @Summary Search persons by name
// @Tags persons
// @Produce  json
// @Param   q query string false "Part of the name, case insensitive"
// @Param   limit query int false "Maximum number of persons" default(50)
// @Success 200 {array} dto.PersonResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /persons [get]
func (h *personHandler) listPersons(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListPersonsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListPersons", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	persons, err := h.personService.ListPersons(c.Request.Context(), params)
	if err != nil {
		writeServiceError(c, err, "Failed to list persons")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPersonsResponse(persons))
}

// getPerson godoc
// @Summary Get a person by ID
// @Tags persons
// @Produce  json
// @Param   id path string true "Person ID"
// @Success 200 {object} dto.PersonResponse
// @Failure 404 {object} map[string]string "Person not found"
// @Security BearerAuth
// @Router /persons/{id} [get]
func (h *personHandler) getPerson(c *gin.Context) {
	person, err := h.personService.GetPerson(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err, "Failed to retrieve person")
		return
	}
	c.JSON(http.StatusOK, dto.ToPersonResponse(person))
}
