package server

import (
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/forgeci/randparam/internal/api"
	"github.com/forgeci/randparam/internal/logging"
	"github.com/forgeci/randparam/internal/paramtypes"
)

// FormServer handles the host-facing surface: descriptor metadata, help
// pages, the server-side validation callback, and value binding for build
// runs. It is unauthenticated, mirroring the host's own form callbacks.
type FormServer struct {
	Store    paramtypes.Store
	Registry *paramtypes.Registry
	Logger   *zap.Logger
}

// Handler returns the HTTP handler for the form listener.
func (s *FormServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/types", s.handleListTypes)
	mux.HandleFunc("GET /help/{type}", s.handleHelp)
	mux.HandleFunc("POST /v1/validate/{type}", s.handleValidate)
	mux.HandleFunc("POST /v1/params/{name}/value", s.handleBindValue)
	mux.HandleFunc("GET /v1/params/{name}/default", s.handleDefaultValue)

	return mux
}

func (s *FormServer) handleListTypes(w http.ResponseWriter, r *http.Request) {
	infos := s.Registry.ListTypes()

	resp := api.ListTypesResponse{
		Types: make([]api.TypeInfo, 0, len(infos)),
	}
	for _, info := range infos {
		resp.Types = append(resp.Types, api.TypeInfo{
			ID:           info.ID,
			DisplayName:  info.DisplayName,
			Capabilities: info.Capabilities,
			Config:       info.Config,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *FormServer) handleHelp(w http.ResponseWriter, r *http.Request) {
	typeID := r.PathValue("type")

	help, ok := s.Registry.Help(typeID)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no help for parameter type"})
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(help.HelpHTML())
}

func (s *FormServer) handleValidate(w http.ResponseWriter, r *http.Request) {
	typeID := r.PathValue("type")

	validator, ok := s.Registry.Validator(typeID)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown parameter type"})
		return
	}

	var req api.ValidateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := validator.ValidateValue(r.Context(), req.FailedValidationMessage, req.Value)
	if err != nil {
		// Misconfigured pattern; surface the diagnostic to the operator.
		s.Logger.Warn("validation callback failed", logging.ParamType(typeID), zap.Error(err))
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, api.ValidateResponse{OK: res.OK, Message: res.Message})
}

func (s *FormServer) handleBindValue(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	def, found, err := s.Store.ResolveDefinition(r.Context(), name)
	if err != nil {
		s.Logger.Error("resolve definition failed", logging.Param(name), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "database error"})
		return
	}
	if !found {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "parameter not found"})
		return
	}

	binder, ok := s.Registry.Binder(def.Type)
	if !ok {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "parameter type cannot bind values"})
		return
	}

	var req api.BindValueRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	runID := req.RunID
	if runID == "" {
		runID = uuid.NewString()
	}

	bindReq := paramtypes.BindRequest{RunID: runID}
	if req.Value != nil {
		bindReq.Value = *req.Value
		bindReq.HasValue = true
	}

	bound, err := binder.BindValue(r.Context(), def, bindReq)
	if err != nil {
		s.Logger.Error("bind value failed", logging.Param(name), logging.RunID(runID), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to bind value"})
		return
	}

	if _, err := s.Store.RecordValue(r.Context(), def.ID, runID, bound.Value, bound.Generated); err != nil {
		s.Logger.Error("record value failed", logging.Param(name), logging.RunID(runID), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to record value"})
		return
	}

	s.Logger.Debug("value bound",
		logging.Param(name),
		logging.RunID(runID),
		logging.Value(bound.Value),
		zap.Bool("generated", bound.Generated))

	writeJSON(w, http.StatusOK, api.BindValueResponse{
		Name:      name,
		RunID:     runID,
		Value:     bound.Value,
		Generated: bound.Generated,
	})
}

func (s *FormServer) handleDefaultValue(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	def, found, err := s.Store.ResolveDefinition(r.Context(), name)
	if err != nil {
		s.Logger.Error("resolve definition failed", logging.Param(name), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "database error"})
		return
	}
	if !found {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "parameter not found"})
		return
	}

	defaulter, ok := s.Registry.Defaulter(def.Type)
	if !ok {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "parameter type has no default value"})
		return
	}

	value, err := defaulter.DefaultValue(r.Context(), def)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to generate default value"})
		return
	}

	writeJSON(w, http.StatusOK, api.DefaultValueResponse{Name: name, Value: value})
}
