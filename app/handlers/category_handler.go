package handlers

import (
	"net/http"

	"github.com/Rakhulsr/ecommerce-back-end/app/helpers"
	"github.com/Rakhulsr/ecommerce-back-end/app/repositories"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
	"go.uber.org/zap"
)

type CategoryHandler struct {
	responder
	repo repositories.CategoryRepositoryImpl
}

func NewCategoryHandler(repo repositories.CategoryRepositoryImpl, r *render.Render, log *zap.Logger) *CategoryHandler {
	return &CategoryHandler{responder: responder{render: r, log: log}, repo: repo}
}

func (h *CategoryHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	categories, err := h.repo.GetAll(r.Context(), repositories.WithProducts)
	if err != nil {
		h.readFailed(w, r, "CategoryHandler.GetAll", err)
		return
	}
	h.ok(w, categories)
}

func (h *CategoryHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	category, err := h.repo.GetByID(r.Context(), mux.Vars(r)["id"], repositories.WithProducts)
	if err != nil {
		h.readFailed(w, r, "CategoryHandler.GetByID", err)
		return
	}
	if category == nil {
		h.notFound(w, "No category found with this id")
		return
	}
	h.ok(w, category)
}

func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var fields repositories.CategoryFields
	if err := helpers.DecodeJSON(r, &fields); err != nil {
		h.writeFailed(w, r, "CategoryHandler.Create", err)
		return
	}

	category, err := h.repo.Create(r.Context(), fields)
	if err != nil {
		h.writeFailed(w, r, "CategoryHandler.Create", err)
		return
	}
	h.ok(w, category)
}

func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	var fields repositories.CategoryFields
	if err := helpers.DecodeJSON(r, &fields); err != nil {
		h.writeFailed(w, r, "CategoryHandler.Update", err)
		return
	}

	affected, err := h.repo.Update(r.Context(), mux.Vars(r)["id"], fields)
	if err != nil {
		h.writeFailed(w, r, "CategoryHandler.Update", err)
		return
	}
	h.ok(w, AffectedResponse{Affected: affected})
}

func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	affected, err := h.repo.Delete(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeFailed(w, r, "CategoryHandler.Delete", err)
		return
	}
	h.ok(w, AffectedResponse{Affected: affected})
}
