package handler

import (
	"context"

	"github.com/time-tracker/api/internal/modules/model"
	"github.com/time-tracker/api/internal/modules/schema"
	"github.com/time-tracker/api/internal/modules/service"
	"github.com/time-tracker/api/internal/rpc"
)

type TaskHandler struct {
	svc service.TaskService
}

func NewTaskHandler(s service.TaskService) *TaskHandler {
	return &TaskHandler{svc: s}
}

func (h *TaskHandler) Register(r *rpc.Router) {
	r.Mutation("task.create", rpc.Bind(h.Create))
	r.Query("task.getAll", rpc.NoInput(h.GetAll))
	r.Query("task.getById", rpc.Bind(h.GetByID))
	r.Query("task.getByProjectId", rpc.Bind(h.GetByProjectID))
	r.Mutation("task.update", rpc.Bind(h.Update))
	r.Mutation("task.updateOrder", rpc.Bind(h.UpdateOrder))
	r.Mutation("task.delete", rpc.Bind(h.Delete))
}

// Create godoc
//
//	@Summary	Create task
//	@Tags		task
//	@Accept		json
//	@Produce	json
//	@Param		payload	body		schema.CreateTaskInput	true	"Task"
//	@Success	200		{object}	serializer.Response{data=model.Task}
//	@Router		/rpc/task.create [post]
func (h *TaskHandler) Create(ctx context.Context, in schema.CreateTaskInput) (*model.Task, error) {
	return h.svc.Create(ctx, in)
}

// GetAll godoc
//
//	@Summary	List tasks
//	@Tags		task
//	@Produce	json
//	@Success	200	{object}	serializer.Response{data=[]model.Task}
//	@Router		/rpc/task.getAll [get]
func (h *TaskHandler) GetAll(ctx context.Context) ([]*model.Task, error) {
	return h.svc.GetAll(ctx)
}

// GetByID godoc
//
//	@Summary	Get task
//	@Tags		task
//	@Produce	json
//	@Param		input	query		string	true	"JSON encoded {\"id\": number}"
//	@Success	200		{object}	serializer.Response{data=model.Task}
//	@Failure	404		{object}	serializer.Response
//	@Router		/rpc/task.getById [get]
func (h *TaskHandler) GetByID(ctx context.Context, in schema.IDInput) (*model.Task, error) {
	return h.svc.GetByID(ctx, in.ID)
}

// GetByProjectID godoc
//
//	@Summary		List tasks of a project
//	@Description	Ordered by position then id, optionally filtered by status and priority
//	@Tags			task
//	@Produce		json
//	@Param			input	query		string	true	"JSON encoded {\"projectId\": number, \"status\"?: string, \"priority\"?: string}"
//	@Success		200		{object}	serializer.Response{data=[]model.Task}
//	@Router			/rpc/task.getByProjectId [get]
func (h *TaskHandler) GetByProjectID(ctx context.Context, in schema.TasksByProjectInput) ([]*model.Task, error) {
	return h.svc.GetByProjectID(ctx, in)
}

// Update godoc
//
//	@Summary	Update task
//	@Tags		task
//	@Accept		json
//	@Produce	json
//	@Param		payload	body		schema.UpdateTaskInput	true	"Fields to change"
//	@Success	200		{object}	serializer.Response{data=model.Task}
//	@Failure	404		{object}	serializer.Response
//	@Router		/rpc/task.update [post]
func (h *TaskHandler) Update(ctx context.Context, in schema.UpdateTaskInput) (*model.Task, error) {
	return h.svc.Update(ctx, in)
}

// UpdateOrder godoc
//
//	@Summary		Reorder tasks
//	@Description	All positions are written in one transaction; an unknown id rolls every change back
//	@Tags			task
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		[]schema.TaskOrderItem	true	"New positions"
//	@Success		200		{object}	serializer.Response{data=schema.UpdateTaskOrderOutput}
//	@Failure		404		{object}	serializer.Response
//	@Router			/rpc/task.updateOrder [post]
func (h *TaskHandler) UpdateOrder(ctx context.Context, in schema.UpdateTaskOrderInput) (*schema.UpdateTaskOrderOutput, error) {
	return h.svc.UpdateOrder(ctx, in)
}

// Delete godoc
//
//	@Summary	Delete task
//	@Tags		task
//	@Accept		json
//	@Produce	json
//	@Param		payload	body		schema.IDInput	true	"Task id"
//	@Success	200		{object}	serializer.Response{data=schema.DeleteOutput}
//	@Failure	404		{object}	serializer.Response
//	@Router		/rpc/task.delete [post]
func (h *TaskHandler) Delete(ctx context.Context, in schema.IDInput) (*schema.DeleteOutput, error) {
	return h.svc.Delete(ctx, in.ID)
}
