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

type SessionHandler struct {
	sessionService ports.SessionService
}

func NewSessionHandler(sessionService ports.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

func (h *SessionHandler) Create(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(apierrors.MsgInvalidUserPayload, lang))
		return
	}

	token, user, err := h.sessionService.Authenticate(c.Request.Context(), validation.BuildCredentials(req))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, apierrors.CreateError(apierrors.MsgInvalidCredentials, lang))
			return
		}

		zap.L().Error("failed to authenticate user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, apierrors.CreateError(apierrors.MsgFailCreateSession, lang))
		return
	}

	c.JSON(http.StatusOK, dto.SessionResponse{
		Token: token,
		User:  mapper.ToUserItem(user),
	})
}
