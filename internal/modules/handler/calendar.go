package handler

import (
	"context"

	"github.com/time-tracker/api/internal/modules/model"
	"github.com/time-tracker/api/internal/modules/schema"
	"github.com/time-tracker/api/internal/modules/service"
	"github.com/time-tracker/api/internal/rpc"
)

type CalendarHandler struct {
	svc service.CalendarService
}

func NewCalendarHandler(s service.CalendarService) *CalendarHandler {
	return &CalendarHandler{svc: s}
}

func (h *CalendarHandler) Register(r *rpc.Router) {
	r.Query("calendar.getRange", rpc.Bind(h.GetRange))
	r.Query("calendar.getDay", rpc.Bind(h.GetDay))
}

// GetRange godoc
//
//	@Summary		Calendar range
//	@Description	Logs dated between from and to (inclusive) with task and project names
//	@Tags			calendar
//	@Produce		json
//	@Param			input	query		string	true	"JSON encoded {\"from\": \"YYYY-MM-DD\", \"to\": \"YYYY-MM-DD\"}"
//	@Success		200		{object}	serializer.Response{data=[]model.CalendarEntry}
//	@Router			/rpc/calendar.getRange [get]
func (h *CalendarHandler) GetRange(ctx context.Context, in schema.CalendarRangeInput) ([]model.CalendarEntry, error) {
	return h.svc.GetRange(ctx, in.From, in.To)
}

// GetDay godoc
//
//	@Summary	Calendar day
//	@Tags		calendar
//	@Produce	json
//	@Param		input	query		string	true	"JSON encoded {\"date\": \"YYYY-MM-DD\"}"
//	@Success	200		{object}	serializer.Response{data=[]model.CalendarEntry}
//	@Router		/rpc/calendar.getDay [get]
func (h *CalendarHandler) GetDay(ctx context.Context, in schema.CalendarDayInput) ([]model.CalendarEntry, error) {
	return h.svc.GetDay(ctx, in.Date)
}
