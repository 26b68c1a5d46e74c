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

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) List(c *gin.Context) {
	lang := middleware.GetLang(c)

	tasks, err := h.taskService.List(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to list tasks", zap.Error(err))
		c.JSON(http.StatusInternalServerError, apierrors.CreateError(apierrors.MsgFailListTasks, lang))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks))
}

func (h *TaskHandler) Create(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(apierrors.MsgInvalidTaskPayload, lang))
		return
	}

	input, err := validation.BuildCreateTaskInput(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(apierrors.MsgInvalidTaskPayload, lang))
		return
	}

	task, err := h.taskService.Create(c.Request.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusNotFound, apierrors.CreateError(apierrors.MsgUserNotFound, lang))
		case errors.Is(err, domain.ErrTeamNotFound):
			c.JSON(http.StatusNotFound, apierrors.CreateError(apierrors.MsgTeamNotFound, lang))
		default:
			zap.L().Error("failed to create task", zap.Error(err))
			c.JSON(http.StatusInternalServerError, apierrors.CreateError(apierrors.MsgFailCreateTask, lang))
		}
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(task))
}

func (h *TaskHandler) UpdateStatus(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID, err := validation.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(apierrors.MsgInvalidID, lang))
		return
	}

	var req dto.UpdateTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(apierrors.MsgInvalidTaskPayload, lang))
		return
	}

	task, err := h.taskService.UpdateStatus(c.Request.Context(), taskID, middleware.CurrentUserID(c), domain.TaskStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTaskNotFound):
			c.JSON(http.StatusNotFound, apierrors.CreateError(apierrors.MsgTaskNotFound, lang))
		case errors.Is(err, domain.ErrTaskAlreadyCompleted):
			c.JSON(http.StatusBadRequest, apierrors.CreateError(apierrors.MsgTaskAlreadyCompleted, lang))
		default:
			zap.L().Error("failed to update task status", zap.String("task_id", taskID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, apierrors.CreateError(apierrors.MsgFailUpdateTask, lang))
		}
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) UpdatePriority(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID, err := validation.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(apierrors.MsgInvalidID, lang))
		return
	}

	var req dto.UpdateTaskPriorityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(apierrors.MsgInvalidTaskPayload, lang))
		return
	}

	task, err := h.taskService.UpdatePriority(c.Request.Context(), taskID, domain.TaskPriority(req.Priority))
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, apierrors.CreateError(apierrors.MsgTaskNotFound, lang))
			return
		}

		zap.L().Error("failed to update task priority", zap.String("task_id", taskID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, apierrors.CreateError(apierrors.MsgFailUpdateTask, lang))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) UpdateByUser(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID, err := validation.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(apierrors.MsgInvalidID, lang))
		return
	}

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(apierrors.MsgInvalidTaskPayload, lang))
		return
	}

	input, err := validation.BuildUpdateTaskInput(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(apierrors.MsgInvalidTaskPayload, lang))
		return
	}

	task, err := h.taskService.UpdateByUser(c.Request.Context(), taskID, middleware.CurrentUserID(c), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTaskNotFound):
			c.JSON(http.StatusNotFound, apierrors.CreateError(apierrors.MsgTaskNotFound, lang))
		case errors.Is(err, domain.ErrNotTaskOwner):
			c.JSON(http.StatusForbidden, apierrors.CreateError(apierrors.MsgNotTaskOwner, lang))
		default:
			zap.L().Error("failed to update task", zap.String("task_id", taskID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, apierrors.CreateError(apierrors.MsgFailUpdateTask, lang))
		}
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) Delete(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID, err := validation.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(apierrors.MsgInvalidID, lang))
		return
	}

	if err := h.taskService.Delete(c.Request.Context(), taskID); err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, apierrors.CreateError(apierrors.MsgTaskNotFound, lang))
			return
		}

		zap.L().Error("failed to delete task", zap.String("task_id", taskID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, apierrors.CreateError(apierrors.MsgFailDeleteTask, lang))
		return
	}

	c.JSON(http.StatusOK, gin.H{})
}
