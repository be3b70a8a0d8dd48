package handler

import (
	"context"

	"github.com/time-tracker/api/internal/modules/model"
	"github.com/time-tracker/api/internal/modules/schema"
	"github.com/time-tracker/api/internal/modules/service"
	"github.com/time-tracker/api/internal/rpc"
)

type ProjectHandler struct {
	svc service.ProjectService
}

func NewProjectHandler(s service.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: s}
}

func (h *ProjectHandler) Register(r *rpc.Router) {
	r.Mutation("project.create", rpc.Bind(h.Create))
	r.Query("project.getAll", rpc.NoInput(h.GetAll))
	r.Query("project.getById", rpc.Bind(h.GetByID))
	r.Query("project.getSummary", rpc.Bind(h.GetSummary))
	r.Mutation("project.update", rpc.Bind(h.Update))
	r.Mutation("project.delete", rpc.Bind(h.Delete))
}

// Create godoc
//
//	@Summary		Create project
//	@Tags			project
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		schema.CreateProjectInput	true	"Project"
//	@Success		200		{object}	serializer.Response{data=model.Project}
//	@Router			/rpc/project.create [post]
func (h *ProjectHandler) Create(ctx context.Context, in schema.CreateProjectInput) (*model.Project, error) {
	return h.svc.Create(ctx, in)
}

// GetAll godoc
//
//	@Summary	List projects
//	@Tags		project
//	@Produce	json
//	@Success	200	{object}	serializer.Response{data=[]model.Project}
//	@Router		/rpc/project.getAll [get]
func (h *ProjectHandler) GetAll(ctx context.Context) ([]*model.Project, error) {
	return h.svc.GetAll(ctx)
}

// GetByID godoc
//
//	@Summary	Get project
//	@Tags		project
//	@Produce	json
//	@Param		input	query		string	true	"JSON encoded {\"id\": number}"
//	@Success	200		{object}	serializer.Response{data=model.Project}
//	@Failure	404		{object}	serializer.Response
//	@Router		/rpc/project.getById [get]
func (h *ProjectHandler) GetByID(ctx context.Context, in schema.IDInput) (*model.Project, error) {
	return h.svc.GetByID(ctx, in.ID)
}

// GetSummary godoc
//
//	@Summary		Get project summary
//	@Description	Project with task status counts, logs of the last seven days and last activity
//	@Tags			project
//	@Produce		json
//	@Param			input	query		string	true	"JSON encoded {\"id\": number}"
//	@Success		200		{object}	serializer.Response{data=model.ProjectSummary}
//	@Failure		404		{object}	serializer.Response
//	@Router			/rpc/project.getSummary [get]
func (h *ProjectHandler) GetSummary(ctx context.Context, in schema.IDInput) (*model.ProjectSummary, error) {
	return h.svc.GetSummary(ctx, in.ID)
}

// Update godoc
//
//	@Summary	Update project
//	@Tags		project
//	@Accept		json
//	@Produce	json
//	@Param		payload	body		schema.UpdateProjectInput	true	"Fields to change"
//	@Success	200		{object}	serializer.Response{data=model.Project}
//	@Failure	404		{object}	serializer.Response
//	@Router		/rpc/project.update [post]
func (h *ProjectHandler) Update(ctx context.Context, in schema.UpdateProjectInput) (*model.Project, error) {
	return h.svc.Update(ctx, in)
}

// Delete godoc
//
//	@Summary		Delete project
//	@Description	Deletes the project with its tasks, logs, details and references
//	@Tags			project
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		schema.IDInput	true	"Project id"
//	@Success		200		{object}	serializer.Response{data=schema.DeleteOutput}
//	@Failure		404		{object}	serializer.Response
//	@Router			/rpc/project.delete [post]
func (h *ProjectHandler) Delete(ctx context.Context, in schema.IDInput) (*schema.DeleteOutput, error) {
	return h.svc.Delete(ctx, in.ID)
}
