package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skillhub-api/dto"
	"github.com/skillhub-api/services"
	"github.com/skillhub-api/utils"
)

// ParticipantController handles participant-related API endpoints
type ParticipantController struct {
	participantService *services.ParticipantService
}

// NewParticipantController creates a new participant controller
func NewParticipantController() *ParticipantController {
	return &ParticipantController{
		participantService: services.NewParticipantService(),
	}
}

// RegisterRoutes registers participant routes
func (pc *ParticipantController) RegisterRoutes(router gin.IRouter) {
	participants := router.Group("/participants")
	{
		participants.GET("", pc.ListParticipants)
		participants.POST("", pc.CreateParticipant)
		participants.GET("/:id", pc.GetParticipant)
		participants.PATCH("/:id", pc.UpdateParticipant)
		participants.DELETE("/:id", pc.DeleteParticipant)
	}
}

// ListParticipants returns every participant with its enrollments
func (pc *ParticipantController) ListParticipants(c *gin.Context) {
	participants, err := pc.participantService.ListParticipants()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   participants,
	})
}

// GetParticipant returns a participant with the classes it is enrolled in
func (pc *ParticipantController) GetParticipant(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		respondInvalidID(c, "participant ID")
		return
	}

	participant, err := pc.participantService.GetParticipant(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   participant,
	})
}

// CreateParticipant registers a participant
func (pc *ParticipantController) CreateParticipant(c *gin.Context) {
	var request dto.CreateParticipantRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		respondBindError(c, err)
		return
	}

	participant, err := pc.participantService.CreateParticipant(request)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   participant,
	})
}

// UpdateParticipant changes only the supplied fields
func (pc *ParticipantController) UpdateParticipant(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		respondInvalidID(c, "participant ID")
		return
	}

	var request dto.UpdateParticipantRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		respondBindError(c, err)
		return
	}

	participant, err := pc.participantService.UpdateParticipant(id, request)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   participant,
	})
}

// DeleteParticipant removes a participant and its enrollments
func (pc *ParticipantController) DeleteParticipant(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		respondInvalidID(c, "participant ID")
		return
	}

	participant, err := pc.participantService.DeleteParticipant(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Participant deleted successfully",
		"data":    participant,
	})
}
