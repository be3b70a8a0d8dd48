package handler

import (
	"context"

	"github.com/time-tracker/api/internal/modules/model"
	"github.com/time-tracker/api/internal/modules/schema"
	"github.com/time-tracker/api/internal/modules/service"
	"github.com/time-tracker/api/internal/rpc"
)

type TaskLogDetailHandler struct {
	svc service.TaskLogDetailService
}

func NewTaskLogDetailHandler(s service.TaskLogDetailService) *TaskLogDetailHandler {
	return &TaskLogDetailHandler{svc: s}
}

func (h *TaskLogDetailHandler) Register(r *rpc.Router) {
	r.Mutation("taskLogDetail.create", rpc.Bind(h.Create))
	r.Query("taskLogDetail.getAll", rpc.NoInput(h.GetAll))
	r.Query("taskLogDetail.getById", rpc.Bind(h.GetByID))
	r.Query("taskLogDetail.getByTaskLogId", rpc.Bind(h.GetByTaskLogID))
	r.Mutation("taskLogDetail.update", rpc.Bind(h.Update))
	r.Mutation("taskLogDetail.delete", rpc.Bind(h.Delete))
}

// Create godoc
//
//	@Summary	Create task log detail
//	@Tags		taskLogDetail
//	@Accept		json
//	@Produce	json
//	@Param		payload	body		schema.CreateTaskLogDetailInput	true	"Detail"
//	@Success	200		{object}	serializer.Response{data=model.TaskLogDetail}
//	@Router		/rpc/taskLogDetail.create [post]
func (h *TaskLogDetailHandler) Create(ctx context.Context, in schema.CreateTaskLogDetailInput) (*model.TaskLogDetail, error) {
	return h.svc.Create(ctx, in)
}

// GetAll godoc
//
//	@Summary	List task log details
//	@Tags		taskLogDetail
//	@Produce	json
//	@Success	200	{object}	serializer.Response{data=[]model.TaskLogDetail}
//	@Router		/rpc/taskLogDetail.getAll [get]
func (h *TaskLogDetailHandler) GetAll(ctx context.Context) ([]*model.TaskLogDetail, error) {
	return h.svc.GetAll(ctx)
}

// GetByID godoc
//
//	@Summary	Get task log detail
//	@Tags		taskLogDetail
//	@Produce	json
//	@Param		input	query		string	true	"JSON encoded {\"id\": number}"
//	@Success	200		{object}	serializer.Response{data=model.TaskLogDetail}
//	@Failure	404		{object}	serializer.Response
//	@Router		/rpc/taskLogDetail.getById [get]
func (h *TaskLogDetailHandler) GetByID(ctx context.Context, in schema.IDInput) (*model.TaskLogDetail, error) {
	return h.svc.GetByID(ctx, in.ID)
}

// GetByTaskLogID godoc
//
//	@Summary	List details of a task log
//	@Tags		taskLogDetail
//	@Produce	json
//	@Param		input	query		string	true	"JSON encoded {\"id\": number} of the task log"
//	@Success	200		{object}	serializer.Response{data=[]model.TaskLogDetail}
//	@Router		/rpc/taskLogDetail.getByTaskLogId [get]
func (h *TaskLogDetailHandler) GetByTaskLogID(ctx context.Context, in schema.IDInput) ([]*model.TaskLogDetail, error) {
	return h.svc.GetByTaskLogID(ctx, in.ID)
}

// Update godoc
//
//	@Summary	Update task log detail
//	@Tags		taskLogDetail
//	@Accept		json
//	@Produce	json
//	@Param		payload	body		schema.UpdateTaskLogDetailInput	true	"Fields to change"
//	@Success	200		{object}	serializer.Response{data=model.TaskLogDetail}
//	@Failure	404		{object}	serializer.Response
//	@Router		/rpc/taskLogDetail.update [post]
func (h *TaskLogDetailHandler) Update(ctx context.Context, in schema.UpdateTaskLogDetailInput) (*model.TaskLogDetail, error) {
	return h.svc.Update(ctx, in)
}

// Delete godoc
//
//	@Summary	Delete task log detail
//	@Tags		taskLogDetail
//	@Accept		json
//	@Produce	json
//	@Param		payload	body		schema.IDInput	true	"Detail id"
//	@Success	200		{object}	serializer.Response{data=schema.DeleteOutput}
//	@Failure	404		{object}	serializer.Response
//	@Router		/rpc/taskLogDetail.delete [post]
func (h *TaskLogDetailHandler) Delete(ctx context.Context, in schema.IDInput) (*schema.DeleteOutput, error) {
	return h.svc.Delete(ctx, in.ID)
}
