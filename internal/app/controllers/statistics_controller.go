package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/baris/acadrecords/internal/app/models/dto"
	"github.com/baris/acadrecords/internal/app/services"
	"github.com/baris/acadrecords/internal/middleware"
)

// StatisticsController handles aggregate reporting endpoints
type StatisticsController struct {
	statisticsService *services.StatisticsService
}

// NewStatisticsController creates a new StatisticsController instance
func NewStatisticsController(statisticsService *services.StatisticsService) *StatisticsController {
	return &StatisticsController{statisticsService: statisticsService}
}

// System godoc
// @Summary System statistics
// @Description Returns entity counts across the whole system
// @Tags statistics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.SystemStatistics}
// @Router /statistics/system [get]
func (ctrl *StatisticsController) System(c *gin.Context) {
	stats, err := ctrl.statisticsService.SystemStatistics(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(stats, ""))
}

// Teacher godoc
// @Summary Teacher statistics
// @Tags statistics
// @Produce json
// @Security BearerAuth
// @Param id path int true "Teacher ID"
// @Success 200 {object} dto.APIResponse{data=dto.TeacherStatistics}
// @Failure 404 {object} dto.ErrorResponse
// @Router /statistics/teachers/{id} [get]
func (ctrl *StatisticsController) Teacher(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	stats, err := ctrl.statisticsService.TeacherStatistics(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(stats, ""))
}

// Student godoc
// @Summary Student statistics
// @Tags statistics
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.StudentStatistics}
// @Failure 404 {object} dto.ErrorResponse
// @Router /statistics/students/{id} [get]
func (ctrl *StatisticsController) Student(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	stats, err := ctrl.statisticsService.StudentStatistics(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(stats, ""))
}

// Group godoc
// @Summary Study group statistics
// @Tags statistics
// @Produce json
// @Security BearerAuth
// @Param id path int true "Group ID"
// @Success 200 {object} dto.APIResponse{data=dto.GroupStatistics}
// @Failure 404 {object} dto.ErrorResponse
// @Router /statistics/groups/{id} [get]
func (ctrl *StatisticsController) Group(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	stats, err := ctrl.statisticsService.GroupStatistics(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(stats, ""))
}

// Subject godoc
// @Summary Subject statistics
// @Tags statistics
// @Produce json
// @Security BearerAuth
// @Param id path int true "Subject ID"
// @Success 200 {object} dto.APIResponse{data=dto.SubjectStatistics}
// @Failure 404 {object} dto.ErrorResponse
// @Router /statistics/subjects/{id} [get]
func (ctrl *StatisticsController) Subject(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	stats, err := ctrl.statisticsService.SubjectStatistics(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(stats, ""))
}

// Distribution godoc
// @Summary Grade distribution
// @Description Returns the number of grades in every value bin
// @Tags statistics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse
// @Router /statistics/grades/distribution [get]
func (ctrl *StatisticsController) Distribution(c *gin.Context) {
	distribution, err := ctrl.statisticsService.GradeDistribution(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(distribution, ""))
}
