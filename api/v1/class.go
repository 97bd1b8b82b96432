package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skillhub-api/dto"
	"github.com/skillhub-api/services"
	"github.com/skillhub-api/utils"
)

// ClassController handles class-related API endpoints
type ClassController struct {
	classService *services.ClassService
}

// NewClassController creates a new class controller
func NewClassController() *ClassController {
	return &ClassController{
		classService: services.NewClassService(),
	}
}

// RegisterRoutes registers class routes
func (cc *ClassController) RegisterRoutes(router gin.IRouter) {
	classes := router.Group("/classes")
	{
		classes.GET("", cc.ListClasses)
		classes.POST("", cc.CreateClass)
		classes.GET("/:id", cc.GetClass)
		classes.PATCH("/:id", cc.UpdateClass)
		classes.DELETE("/:id", cc.DeleteClass)
	}
}

// ListClasses returns every class
func (cc *ClassController) ListClasses(c *gin.Context) {
	classes, err := cc.classService.ListClasses()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   classes,
	})
}

// GetClass returns a single class
func (cc *ClassController) GetClass(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		respondInvalidID(c, "class ID")
		return
	}

	class, err := cc.classService.GetClass(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   class,
	})
}

// CreateClass creates a class
func (cc *ClassController) CreateClass(c *gin.Context) {
	var request dto.CreateClassRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		respondBindError(c, err)
		return
	}

	class, err := cc.classService.CreateClass(request)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   class,
	})
}

// UpdateClass changes only the supplied fields
func (cc *ClassController) UpdateClass(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		respondInvalidID(c, "class ID")
		return
	}

	var request dto.UpdateClassRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		respondBindError(c, err)
		return
	}

	class, err := cc.classService.UpdateClass(id, request)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   class,
	})
}

// DeleteClass removes a class and its enrollments
func (cc *ClassController) DeleteClass(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		respondInvalidID(c, "class ID")
		return
	}

	class, err := cc.classService.DeleteClass(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Class deleted successfully",
		"data":    class,
	})
}
