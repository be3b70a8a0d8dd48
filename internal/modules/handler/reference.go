package handler

import (
	"context"

	"github.com/time-tracker/api/internal/modules/model"
	"github.com/time-tracker/api/internal/modules/schema"
	"github.com/time-tracker/api/internal/modules/service"
	"github.com/time-tracker/api/internal/rpc"
)

type ReferenceHandler struct {
	svc service.ReferenceService
}

func NewReferenceHandler(s service.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{svc: s}
}

func (h *ReferenceHandler) Register(r *rpc.Router) {
	r.Mutation("reference.create", rpc.Bind(h.Create))
	r.Query("reference.getAll", rpc.NoInput(h.GetAll))
	r.Query("reference.getById", rpc.Bind(h.GetByID))
	r.Query("reference.getByTaskLogDetailId", rpc.Bind(h.GetByTaskLogDetailID))
	r.Mutation("reference.update", rpc.Bind(h.Update))
	r.Mutation("reference.delete", rpc.Bind(h.Delete))
}

// Create godoc
//
//	@Summary	Create reference
//	@Tags		reference
//	@Accept		json
//	@Produce	json
//	@Param		payload	body		schema.CreateReferenceInput	true	"Reference"
//	@Success	200		{object}	serializer.Response{data=model.Reference}
//	@Failure	400		{object}	serializer.Response
//	@Router		/rpc/reference.create [post]
func (h *ReferenceHandler) Create(ctx context.Context, in schema.CreateReferenceInput) (*model.Reference, error) {
	return h.svc.Create(ctx, in)
}

// GetAll godoc
//
//	@Summary	List references
//	@Tags		reference
//	@Produce	json
//	@Success	200	{object}	serializer.Response{data=[]model.Reference}
//	@Router		/rpc/reference.getAll [get]
func (h *ReferenceHandler) GetAll(ctx context.Context) ([]*model.Reference, error) {
	return h.svc.GetAll(ctx)
}

// GetByID godoc
//
//	@Summary	Get reference
//	@Tags		reference
//	@Produce	json
//	@Param		input	query		string	true	"JSON encoded {\"id\": number}"
//	@Success	200		{object}	serializer.Response{data=model.Reference}
//	@Failure	404		{object}	serializer.Response
//	@Router		/rpc/reference.getById [get]
func (h *ReferenceHandler) GetByID(ctx context.Context, in schema.IDInput) (*model.Reference, error) {
	return h.svc.GetByID(ctx, in.ID)
}

// GetByTaskLogDetailID godoc
//
//	@Summary	List references of a detail
//	@Tags		reference
//	@Produce	json
//	@Param		input	query		string	true	"JSON encoded {\"id\": number} of the detail"
//	@Success	200		{object}	serializer.Response{data=[]model.Reference}
//	@Router		/rpc/reference.getByTaskLogDetailId [get]
func (h *ReferenceHandler) GetByTaskLogDetailID(ctx context.Context, in schema.IDInput) ([]*model.Reference, error) {
	return h.svc.GetByTaskLogDetailID(ctx, in.ID)
}

// Update godoc
//
//	@Summary	Update reference
//	@Tags		reference
//	@Accept		json
//	@Produce	json
//	@Param		payload	body		schema.UpdateReferenceInput	true	"Fields to change"
//	@Success	200		{object}	serializer.Response{data=model.Reference}
//	@Failure	404		{object}	serializer.Response
//	@Router		/rpc/reference.update [post]
func (h *ReferenceHandler) Update(ctx context.Context, in schema.UpdateReferenceInput) (*model.Reference, error) {
	return h.svc.Update(ctx, in)
}

// Delete godoc
//
//	@Summary	Delete reference
//	@Tags		reference
//	@Accept		json
//	@Produce	json
//	@Param		payload	body		schema.IDInput	true	"Reference id"
//	@Success	200		{object}	serializer.Response{data=schema.DeleteOutput}
//	@Failure	404		{object}	serializer.Response
//	@Router		/rpc/reference.delete [post]
func (h *ReferenceHandler) Delete(ctx context.Context, in schema.IDInput) (*schema.DeleteOutput, error) {
	return h.svc.Delete(ctx, in.ID)
}
