package handlers

import (
	"net/http"

	"github.com/Rakhulsr/ecommerce-back-end/app/helpers"
	"github.com/Rakhulsr/ecommerce-back-end/app/repositories"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
	"go.uber.org/zap"
)

type TagHandler struct {
	responder
	repo repositories.TagRepositoryImpl
}

func NewTagHandler(repo repositories.TagRepositoryImpl, r *render.Render, log *zap.Logger) *TagHandler {
	return &TagHandler{responder: responder{render: r, log: log}, repo: repo}
}

func (h *TagHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	tags, err := h.repo.GetAll(r.Context(), repositories.WithProducts)
	if err != nil {
		h.readFailed(w, r, "TagHandler.GetAll", err)
		return
	}
	h.ok(w, tags)
}

func (h *TagHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	tag, err := h.repo.GetByID(r.Context(), mux.Vars(r)["id"], repositories.WithProducts)
	if err != nil {
		h.readFailed(w, r, "TagHandler.GetByID", err)
		return
	}
	if tag == nil {
		h.notFound(w, "No tag found with this id.")
		return
	}
	h.ok(w, tag)
}

func (h *TagHandler) Create(w http.ResponseWriter, r *http.Request) {
	var fields repositories.TagFields
	if err := helpers.DecodeJSON(r, &fields); err != nil {
		h.writeFailed(w, r, "TagHandler.Create", err)
		return
	}

	tag, err := h.repo.Create(r.Context(), fields)
	if err != nil {
		h.writeFailed(w, r, "TagHandler.Create", err)
		return
	}
	h.ok(w, tag)
}

func (h *TagHandler) Update(w http.ResponseWriter, r *http.Request) {
	var fields repositories.TagFields
	if err := helpers.DecodeJSON(r, &fields); err != nil {
		h.writeFailed(w, r, "TagHandler.Update", err)
		return
	}

	affected, err := h.repo.Update(r.Context(), mux.Vars(r)["id"], fields)
	if err != nil {
		h.writeFailed(w, r, "TagHandler.Update", err)
		return
	}
	h.ok(w, AffectedResponse{Affected: affected})
}

func (h *TagHandler) Delete(w http.ResponseWriter, r *http.Request) {
	affected, err := h.repo.Delete(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeFailed(w, r, "TagHandler.Delete", err)
		return
	}
	h.ok(w, AffectedResponse{Affected: affected})
}
