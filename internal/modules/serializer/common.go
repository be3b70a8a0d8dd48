package serializer

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response
type Response struct {
	Code  int         `json:"code"`
	Data  interface{} `json:"data,omitempty"`
	Msg   string      `json:"msg"`
	Error string      `json:"error,omitempty"`
}

// TrackedErrorResponse
type TrackedErrorResponse struct {
	Response
	TraceID string `json:"trace_id"`
}

// ProcedureErr answers a failed procedure call. Error holds the machine
// readable code such as NOT_FOUND.
func ProcedureErr(status int, code, msg string) Response {
	return Response{
		Code:  status,
		Msg:   msg,
		Error: code,
	}
}

// InternalErr hides err outside debug mode.
func InternalErr(msg string, err error) Response {
	if msg == "" {
		msg = "internal server error"
	}
	res := ProcedureErr(http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", msg)
	// development mode, show error detail
	if err != nil && gin.Mode() != gin.ReleaseMode {
		res.Msg = fmt.Sprintf("%s: %+v", msg, err)
	}
	return res
}
