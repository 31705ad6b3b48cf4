// Package server implements the host-facing form listener and the admin API server.
package server

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/forgeci/randparam/internal/api"
	"github.com/forgeci/randparam/internal/auth"
	"github.com/forgeci/randparam/internal/db"
	"github.com/forgeci/randparam/internal/paramtypes"
)

// APIServer handles the authenticated REST API for parameter definition
// management.
type APIServer struct {
	DB       *sql.DB
	Registry *paramtypes.Registry
	Logger   *zap.Logger
}

// AuthMiddleware validates API key authentication for protected routes.
func (s *APIServer) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
			return
		}

		apiKey := strings.TrimPrefix(authHeader, "Bearer ")

		prefix, _, err := auth.ParseAPIKey(apiKey)
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
			return
		}

		storedKey, err := db.GetAPIKeyByPrefix(s.DB, prefix)
		if err != nil || storedKey == nil {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
			return
		}

		if storedKey.RevokedAt != nil {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
			return
		}

		if !auth.VerifyAPIKey(apiKey, storedKey.KeyHash) {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Handler returns the HTTP handler for the API server.
func (s *APIServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/params", s.handleCreateParam)
	mux.HandleFunc("GET /v1/params", s.handleListParams)
	mux.HandleFunc("GET /v1/params/{name}/values", s.handleListValues)
	mux.HandleFunc("DELETE /v1/params/{name}", s.handleDeleteParam)

	return s.AuthMiddleware(mux)
}

func (s *APIServer) handleCreateParam(w http.ResponseWriter, r *http.Request) {
	var req api.CreateParamRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name required"})
		return
	}
	if req.Type == "" {
		req.Type = "randomstring"
	}
	if _, ok := s.Registry.Lookup(req.Type); !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown parameter type"})
		return
	}

	existing, err := db.GetDefinitionByName(s.DB, req.Name)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "database error"})
		return
	}
	if existing != nil {
		writeJSON(w, http.StatusConflict, map[string]string{"error": "parameter already defined"})
		return
	}

	var descPtr, msgPtr *string
	if req.Description != "" {
		descPtr = &req.Description
	}
	if req.FailedValidationMessage != "" {
		msgPtr = &req.FailedValidationMessage
	}

	if _, err := db.CreateDefinition(s.DB, req.Name, req.Type, descPtr, msgPtr); err != nil {
		s.Logger.Error("create definition failed", zap.String("param", req.Name), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to create parameter"})
		return
	}

	def, err := db.GetDefinitionByName(s.DB, req.Name)
	if err != nil || def == nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "database error"})
		return
	}

	writeJSON(w, http.StatusOK, api.ParamInfo{
		Name:                    def.Name,
		Type:                    def.Type,
		Description:             def.Description,
		FailedValidationMessage: def.FailedValidationMessage,
		CreatedAt:               time.Unix(def.CreatedAt, 0).UTC().Format(time.RFC3339),
	})
}

func (s *APIServer) handleListParams(w http.ResponseWriter, r *http.Request) {
	defs, err := db.ListDefinitions(s.DB)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "database error"})
		return
	}

	resp := api.ListParamsResponse{
		Params: make([]api.ParamInfo, 0, len(defs)),
	}
	for _, d := range defs {
		resp.Params = append(resp.Params, api.ParamInfo{
			Name:                    d.Name,
			Type:                    d.Type,
			Description:             d.Description,
			FailedValidationMessage: d.FailedValidationMessage,
			CreatedAt:               time.Unix(d.CreatedAt, 0).UTC().Format(time.RFC3339),
			ValueCount:              d.ValueCount,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *APIServer) handleListValues(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "parameter name required"})
		return
	}

	def, err := db.GetDefinitionByName(s.DB, name)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "database error"})
		return
	}
	if def == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "parameter not found"})
		return
	}

	values, err := db.ListBoundValues(s.DB, def.ID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "database error"})
		return
	}

	resp := api.ListValuesResponse{
		Name:   name,
		Values: make([]api.BoundValueInfo, 0, len(values)),
	}
	for _, v := range values {
		resp.Values = append(resp.Values, api.BoundValueInfo{
			RunID:     v.RunID,
			Value:     v.Value,
			Generated: v.Generated,
			BoundAt:   time.Unix(v.BoundAt, 0).UTC().Format(time.RFC3339),
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *APIServer) handleDeleteParam(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "parameter name required"})
		return
	}

	def, err := db.GetDefinitionByName(s.DB, name)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "database error"})
		return
	}
	if def == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "parameter not found"})
		return
	}

	if err := db.DeleteDefinition(s.DB, name); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to delete parameter"})
		return
	}

	writeJSON(w, http.StatusOK, api.DeleteParamResponse{Deleted: true})
}

// decodeJSON decodes a request body into out, rejecting unknown fields,
// oversized bodies, and trailing data. It writes the error response itself
// and reports whether decoding succeeded.
func decodeJSON(w http.ResponseWriter, r *http.Request, out any) bool {
	if r.Body == nil {
		return true
	}
	r.Body = http.MaxBytesReader(w, r.Body, 1<<16) // 64KB limit
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil && err != io.EOF {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeJSON(w, http.StatusRequestEntityTooLarge, map[string]string{"error": "request body too large"})
			return false
		}
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return false
	}
	// Ensure no trailing data
	if dec.Decode(&struct{}{}) != io.EOF {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unexpected trailing data"})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(data); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}
