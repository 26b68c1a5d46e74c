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

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) Create(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(apierrors.MsgInvalidUserPayload, lang))
		return
	}

	input, err := validation.BuildCreateUserInput(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(apierrors.MsgInvalidUserPayload, lang))
		return
	}

	user, err := h.userService.Register(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, apierrors.CreateError(apierrors.MsgEmailTaken, lang))
			return
		}

		zap.L().Error("failed to register user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, apierrors.CreateError(apierrors.MsgFailCreateUser, lang))
		return
	}

	c.JSON(http.StatusOK, mapper.ToUserItem(user))
}
