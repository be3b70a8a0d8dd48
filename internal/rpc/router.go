// Package rpc dispatches named procedures over HTTP: queries are read with
// GET and ?input=<json>, mutations with POST and a JSON body.
package rpc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/time-tracker/api/internal/modules/serializer"
	"github.com/time-tracker/api/internal/pkg/apperr"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type Kind int

const (
	Query Kind = iota
	Mutation
)

func (k Kind) String() string {
	if k == Mutation {
		return "mutation"
	}
	return "query"
}

func (k Kind) method() string {
	if k == Mutation {
		return http.MethodPost
	}
	return http.MethodGet
}

// HandlerFunc runs one procedure against its raw input.
type HandlerFunc func(ctx context.Context, in RawInput) (any, error)

type Procedure struct {
	Name    string
	Kind    Kind
	Handler HandlerFunc
}

// maxBody bounds mutation payloads.
const maxBody = 1 << 20

type Router struct {
	procs map[string]Procedure
	log   *zap.Logger
}

func NewRouter(log *zap.Logger) *Router {
	return &Router{procs: map[string]Procedure{}, log: log}
}

func (r *Router) Query(name string, h HandlerFunc) {
	r.register(Procedure{Name: name, Kind: Query, Handler: h})
}

func (r *Router) Mutation(name string, h HandlerFunc) {
	r.register(Procedure{Name: name, Kind: Mutation, Handler: h})
}

func (r *Router) register(p Procedure) {
	if _, dup := r.procs[p.Name]; dup {
		panic(fmt.Sprintf("rpc: procedure %q registered twice", p.Name))
	}
	r.procs[p.Name] = p
}

// Lookup returns the procedure registered under name.
func (r *Router) Lookup(name string) (Procedure, bool) {
	p, ok := r.procs[name]
	return p, ok
}

// Names lists registered procedures in lexical order.
func (r *Router) Names() []string {
	names := make([]string, 0, len(r.procs))
	for n := range r.procs {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Handle serves /rpc/:procedure.
func (r *Router) Handle(c *gin.Context) {
	name := c.Param("procedure")
	p, ok := r.procs[name]
	if !ok {
		c.JSON(http.StatusNotFound, serializer.ProcedureErr(http.StatusNotFound, "NOT_FOUND",
			fmt.Sprintf("no procedure named %q", name)))
		return
	}
	if c.Request.Method != p.Kind.method() {
		c.JSON(http.StatusMethodNotAllowed, serializer.ProcedureErr(http.StatusMethodNotAllowed, "METHOD_NOT_SUPPORTED",
			fmt.Sprintf("%s %s must be called with %s", p.Kind, name, p.Kind.method())))
		return
	}

	var raw []byte
	if p.Kind == Query {
		raw = []byte(c.Query("input"))
	} else {
		body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBody))
		if err != nil {
			msg := "unreadable request body"
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				msg = fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit)
			}
			c.JSON(http.StatusBadRequest, serializer.ProcedureErr(http.StatusBadRequest, "BAD_REQUEST", msg))
			return
		}
		raw = body
	}

	out, err := p.Handler(c.Request.Context(), ParseRawInput(raw))
	if err != nil {
		r.fail(c, name, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: out})
}

func (r *Router) fail(c *gin.Context, name string, err error) {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		c.JSON(http.StatusBadRequest, serializer.ProcedureErr(http.StatusBadRequest, apperr.KindValidation.String(), err.Error()))
	case apperr.KindNotFound:
		c.JSON(http.StatusNotFound, serializer.ProcedureErr(http.StatusNotFound, apperr.KindNotFound.String(), err.Error()))
	default:
		r.log.Sugar().Errorw("procedure failed", "procedure", name, "err", err)
		res := serializer.InternalErr("", err)
		span := trace.SpanFromContext(c.Request.Context())
		if span.SpanContext().IsValid() {
			c.JSON(http.StatusInternalServerError, serializer.TrackedErrorResponse{
				Response: res,
				TraceID:  span.SpanContext().TraceID().String(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, res)
	}
}
