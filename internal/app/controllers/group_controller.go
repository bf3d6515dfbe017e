package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/baris/acadrecords/internal/app/models/dto"
	"github.com/baris/acadrecords/internal/app/services"
	"github.com/baris/acadrecords/internal/middleware"
	"github.com/baris/acadrecords/internal/pkg/apperrors"
)

// GroupController handles study group management endpoints
type GroupController struct {
	groupService *services.GroupService
}

// NewGroupController creates a new GroupController instance
func NewGroupController(groupService *services.GroupService) *GroupController {
	return &GroupController{groupService: groupService}
}

// Create godoc
// @Summary Create a study group
// @Tags groups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateGroupRequest true "Group data"
// @Success 201 {object} dto.APIResponse{data=models.StudyGroup}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /groups [post]
func (ctrl *GroupController) Create(c *gin.Context) {
	var req dto.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError("Group name and year are required"))
		return
	}

	group, err := ctrl.groupService.Create(c.Request.Context(), req.Name, req.Year)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAPIResponse(group, "Study group created"))
}

// GetByID godoc
// @Summary Get a study group
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Param id path int true "Group ID"
// @Success 200 {object} dto.APIResponse{data=models.StudyGroup}
// @Failure 404 {object} dto.ErrorResponse
// @Router /groups/{id} [get]
func (ctrl *GroupController) GetByID(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	group, err := ctrl.groupService.GetByID(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(group, ""))
}

// GetAll godoc
// @Summary List study groups
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.StudyGroup}
// @Router /groups [get]
func (ctrl *GroupController) GetAll(c *gin.Context) {
	groups, err := ctrl.groupService.GetAll(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(groups, ""))
}

// GetMembers godoc
// @Summary List the students of a study group
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Param id path int true "Group ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.StudentResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /groups/{id}/students [get]
func (ctrl *GroupController) GetMembers(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	students, err := ctrl.groupService.GetMembers(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewStudentResponses(students), ""))
}

// Update godoc
// @Summary Update a study group
// @Tags groups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Group ID"
// @Param request body dto.UpdateGroupRequest true "Group data"
// @Success 200 {object} dto.APIResponse{data=models.StudyGroup}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /groups/{id} [put]
func (ctrl *GroupController) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError("Group name and year are required"))
		return
	}

	group, err := ctrl.groupService.Update(c.Request.Context(), id, req.Name, req.Year)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(group, "Study group updated"))
}

// Delete godoc
// @Summary Delete a study group
// @Description Removes the group; members stay enrolled without a group
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Param id path int true "Group ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /groups/{id} [delete]
func (ctrl *GroupController) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.groupService.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Study group deleted"))
}
