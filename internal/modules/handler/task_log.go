package handler

import (
	"context"

	"github.com/time-tracker/api/internal/modules/model"
	"github.com/time-tracker/api/internal/modules/schema"
	"github.com/time-tracker/api/internal/modules/service"
	"github.com/time-tracker/api/internal/rpc"
)

type TaskLogHandler struct {
	svc service.TaskLogService
}

func NewTaskLogHandler(s service.TaskLogService) *TaskLogHandler {
	return &TaskLogHandler{svc: s}
}

func (h *TaskLogHandler) Register(r *rpc.Router) {
	r.Mutation("taskLog.create", rpc.Bind(h.Create))
	r.Query("taskLog.getAll", rpc.NoInput(h.GetAll))
	r.Query("taskLog.getById", rpc.Bind(h.GetByID))
	r.Query("taskLog.getByTaskId", rpc.Bind(h.GetByTaskID))
	r.Mutation("taskLog.update", rpc.Bind(h.Update))
	r.Mutation("taskLog.delete", rpc.Bind(h.Delete))
}

// Create godoc
//
//	@Summary		Create task log
//	@Description	logDate is taken from startTime when not supplied
//	@Tags			taskLog
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		schema.CreateTaskLogInput	true	"Task log"
//	@Success		200		{object}	serializer.Response{data=model.TaskLog}
//	@Router			/rpc/taskLog.create [post]
func (h *TaskLogHandler) Create(ctx context.Context, in schema.CreateTaskLogInput) (*model.TaskLog, error) {
	return h.svc.Create(ctx, in)
}

// GetAll godoc
//
//	@Summary	List task logs
//	@Tags		taskLog
//	@Produce	json
//	@Success	200	{object}	serializer.Response{data=[]model.TaskLog}
//	@Router		/rpc/taskLog.getAll [get]
func (h *TaskLogHandler) GetAll(ctx context.Context) ([]*model.TaskLog, error) {
	return h.svc.GetAll(ctx)
}

// GetByID godoc
//
//	@Summary		Get task log
//	@Description	Includes the task and every detail with its references
//	@Tags			taskLog
//	@Produce		json
//	@Param			input	query		string	true	"JSON encoded {\"id\": number}"
//	@Success		200		{object}	serializer.Response{data=model.TaskLogWithRelations}
//	@Failure		404		{object}	serializer.Response
//	@Router			/rpc/taskLog.getById [get]
func (h *TaskLogHandler) GetByID(ctx context.Context, in schema.IDInput) (*model.TaskLogWithRelations, error) {
	return h.svc.GetByID(ctx, in.ID)
}

// GetByTaskID godoc
//
//	@Summary	List logs of a task
//	@Tags		taskLog
//	@Produce	json
//	@Param		input	query		string	true	"JSON encoded {\"id\": number} of the task"
//	@Success	200		{object}	serializer.Response{data=[]model.TaskLog}
//	@Router		/rpc/taskLog.getByTaskId [get]
func (h *TaskLogHandler) GetByTaskID(ctx context.Context, in schema.IDInput) ([]*model.TaskLog, error) {
	return h.svc.GetByTaskID(ctx, in.ID)
}

// Update godoc
//
//	@Summary	Update task log
//	@Tags		taskLog
//	@Accept		json
//	@Produce	json
//	@Param		payload	body		schema.UpdateTaskLogInput	true	"Fields to change"
//	@Success	200		{object}	serializer.Response{data=model.TaskLog}
//	@Failure	404		{object}	serializer.Response
//	@Router		/rpc/taskLog.update [post]
func (h *TaskLogHandler) Update(ctx context.Context, in schema.UpdateTaskLogInput) (*model.TaskLog, error) {
	return h.svc.Update(ctx, in)
}

// Delete godoc
//
//	@Summary	Delete task log
//	@Tags		taskLog
//	@Accept		json
//	@Produce	json
//	@Param		payload	body		schema.IDInput	true	"Task log id"
//	@Success	200		{object}	serializer.Response{data=schema.DeleteOutput}
//	@Failure	404		{object}	serializer.Response
//	@Router		/rpc/taskLog.delete [post]
func (h *TaskLogHandler) Delete(ctx context.Context, in schema.IDInput) (*schema.DeleteOutput, error) {
	return h.svc.Delete(ctx, in.ID)
}
