package http

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/complypilot/complypilot/pkg/domain/model"
	"github.com/complypilot/complypilot/pkg/domain/types"
	"github.com/complypilot/complypilot/pkg/usecase"
	"github.com/complypilot/complypilot/pkg/utils/errutil"
	"github.com/complypilot/complypilot/pkg/utils/safe"
)

// maxUploadMemory is the in-memory threshold for multipart parsing; larger
// uploads spill to temporary files.
const maxUploadMemory = 10 << 20

// documentUploadHandler accepts a multipart upload under the "file" field
func documentUploadHandler(docUC *usecase.DocumentUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := currentToken(w, r)
		if !ok {
			return
		}

		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			writeJSON(r.Context(), w, http.StatusBadRequest, errorResponse{Error: "invalid multipart form"})
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			writeJSON(r.Context(), w, http.StatusBadRequest, errorResponse{Error: "file field is required"})
			return
		}
		defer safe.Close(r.Context(), file)

		content, err := io.ReadAll(file)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to read uploaded file"), http.StatusInternalServerError)
			return
		}

		doc, err := docUC.Upload(r.Context(), token.Sub, header.Filename, header.Header.Get("Content-Type"), content)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		writeJSON(r.Context(), w, http.StatusOK, doc)
	}
}

// documentListHandler returns the user's documents, newest first
func documentListHandler(docUC *usecase.DocumentUseCase) http.HandlerFunc {
	type response struct {
		Documents []*model.Document `json:"documents"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := currentToken(w, r)
		if !ok {
			return
		}

		docs, err := docUC.List(r.Context(), token.Sub)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		writeJSON(r.Context(), w, http.StatusOK, response{Documents: docs})
	}
}

// documentGetHandler returns a single document with its analysis result
func documentGetHandler(docUC *usecase.DocumentUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := currentToken(w, r)
		if !ok {
			return
		}

		id := types.DocumentID(chi.URLParam(r, "documentID"))
		doc, err := docUC.Get(r.Context(), token.Sub, id)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		writeJSON(r.Context(), w, http.StatusOK, doc)
	}
}

// documentAnalyzeHandler runs the compliance analysis and returns the updated
// document
func documentAnalyzeHandler(docUC *usecase.DocumentUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := currentToken(w, r)
		if !ok {
			return
		}

		id := types.DocumentID(chi.URLParam(r, "documentID"))
		doc, err := docUC.Analyze(r.Context(), token.Sub, id)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		writeJSON(r.Context(), w, http.StatusOK, doc)
	}
}

// documentDeleteHandler removes a document record and its stored content
func documentDeleteHandler(docUC *usecase.DocumentUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := currentToken(w, r)
		if !ok {
			return
		}

		id := types.DocumentID(chi.URLParam(r, "documentID"))
		if err := docUC.Delete(r.Context(), token.Sub, id); err != nil {
			respondError(r.Context(), w, err)
			return
		}

		writeJSON(r.Context(), w, http.StatusOK, successResponse{Success: true})
	}
}
