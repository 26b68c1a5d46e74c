package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GNaves/Tasks-API/internal/adapter/http/dto"
	"github.com/GNaves/Tasks-API/internal/adapter/http/mapper"
	"github.com/GNaves/Tasks-API/internal/adapter/http/middleware"
	"github.com/GNaves/Tasks-API/internal/adapter/http/validation"
	"github.com/GNaves/Tasks-API/internal/core/domain"
	"github.com/GNaves/Tasks-API/internal/core/ports"
	"github.com/GNaves/Tasks-API/pkg/apierrors"
)

type TeamHandler struct {
	teamService ports.TeamService
}

func NewTeamHandler(teamService ports.TeamService) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

func (h *TeamHandler) List(c *gin.Context) {
	lang := middleware.GetLang(c)

	teams, err := h.teamService.List(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to list teams", zap.Error(err))
		c.JSON(http.StatusInternalServerError, apierrors.CreateError(apierrors.MsgFailListTeams, lang))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTeamItems(teams))
}

func (h *TeamHandler) Create(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(apierrors.MsgInvalidTeamPayload, lang))
		return
	}

	input, err := validation.BuildCreateTeamInput(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(apierrors.MsgInvalidTeamPayload, lang))
		return
	}

	team, err := h.teamService.Create(c.Request.Context(), input)
	if err != nil {
		zap.L().Error("failed to create team", zap.Error(err))
		c.JSON(http.StatusInternalServerError, apierrors.CreateError(apierrors.MsgFailCreateTeam, lang))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTeamItem(team))
}

func (h *TeamHandler) Delete(c *gin.Context) {
	lang := middleware.GetLang(c)

	teamID, err := validation.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(apierrors.MsgInvalidID, lang))
		return
	}

	if err := h.teamService.Delete(c.Request.Context(), teamID); err != nil {
		switch {
		case errors.Is(err, domain.ErrTeamNotFound):
			c.JSON(http.StatusNotFound, apierrors.CreateError(apierrors.MsgTeamNotFound, lang))
		case errors.Is(err, domain.ErrTeamHasOpenTasks):
			c.JSON(http.StatusConflict, apierrors.CreateError(apierrors.MsgTeamHasOpenTasks, lang))
		default:
			zap.L().Error("failed to delete team", zap.String("team_id", teamID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, apierrors.CreateError(apierrors.MsgFailDeleteTeam, lang))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{})
}

func (h *TeamHandler) AddMember(c *gin.Context) {
	lang := middleware.GetLang(c)

	teamID, err := validation.ParseID(c.Param("teamId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(apierrors.MsgInvalidID, lang))
		return
	}

	var req dto.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(apierrors.MsgInvalidMemberPayload, lang))
		return
	}

	member, err := h.teamService.AddMember(c.Request.Context(), teamID, req.UserID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTeamNotFound):
			c.JSON(http.StatusNotFound, apierrors.CreateError(apierrors.MsgTeamNotFound, lang))
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusNotFound, apierrors.CreateError(apierrors.MsgUserNotFound, lang))
		default:
			zap.L().Error("failed to add team member", zap.String("team_id", teamID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, apierrors.CreateError(apierrors.MsgFailAddMember, lang))
		}
		return
	}

	c.JSON(http.StatusOK, mapper.ToTeamMemberItem(member))
}
