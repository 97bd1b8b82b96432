package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skillhub-api/dto"
	"github.com/skillhub-api/models"
	"github.com/skillhub-api/services"
	"github.com/skillhub-api/utils"
)

// EnrollmentController handles enrollment-related API endpoints
type EnrollmentController struct {
	enrollmentService *services.EnrollmentService
}

// NewEnrollmentController creates a new enrollment controller
func NewEnrollmentController() *EnrollmentController {
	return &EnrollmentController{
		enrollmentService: services.NewEnrollmentService(),
	}
}

// RegisterRoutes registers enrollment routes
func (ec *EnrollmentController) RegisterRoutes(router gin.IRouter) {
	enrollments := router.Group("/enrollments")
	{
		enrollments.GET("", ec.ListEnrollments)
		enrollments.POST("", ec.CreateEnrollment)
		enrollments.GET("/participant/:participantId", ec.ListParticipantEnrollments)
		enrollments.GET("/class/:classId", ec.ListClassEnrollments)
		enrollments.DELETE("/:id", ec.DeleteEnrollment)
	}
}

// CreateEnrollment enrolls a participant in a class
func (ec *EnrollmentController) CreateEnrollment(c *gin.Context) {
	var request dto.CreateEnrollmentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		respondBindError(c, err)
		return
	}

	enrollment, err := ec.enrollmentService.CreateEnrollment(request)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   enrollment,
	})
}

// ListEnrollments returns every enrollment with participant and class
func (ec *EnrollmentController) ListEnrollments(c *gin.Context) {
	enrollments, err := ec.enrollmentService.ListEnrollments()
	respondEnrollments(c, enrollments, err)
}

// ListParticipantEnrollments returns the classes a participant is enrolled in
func (ec *EnrollmentController) ListParticipantEnrollments(c *gin.Context) {
	participantID, err := utils.ParseID(c.Param("participantId"))
	if err != nil {
		respondInvalidID(c, "participant ID")
		return
	}

	enrollments, err := ec.enrollmentService.ListByParticipant(participantID)
	respondEnrollments(c, enrollments, err)
}

// ListClassEnrollments returns the participants enrolled in a class
func (ec *EnrollmentController) ListClassEnrollments(c *gin.Context) {
	classID, err := utils.ParseID(c.Param("classId"))
	if err != nil {
		respondInvalidID(c, "class ID")
		return
	}

	enrollments, err := ec.enrollmentService.ListByClass(classID)
	respondEnrollments(c, enrollments, err)
}

// DeleteEnrollment removes a single enrollment
func (ec *EnrollmentController) DeleteEnrollment(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		respondInvalidID(c, "enrollment ID")
		return
	}

	enrollment, err := ec.enrollmentService.DeleteEnrollment(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Enrollment deleted successfully",
		"data":    enrollment,
	})
}

func respondEnrollments(c *gin.Context, enrollments []models.Enrollment, err error) {
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   enrollments,
	})
}
