package handlers

import (
	"net/http"

	"github.com/Rakhulsr/ecommerce-back-end/app/helpers"
	"github.com/Rakhulsr/ecommerce-back-end/app/repositories"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
	"go.uber.org/zap"
)

type ProductHandler struct {
	responder
	repo repositories.ProductRepositoryImpl
}

func NewProductHandler(repo repositories.ProductRepositoryImpl, r *render.Render, log *zap.Logger) *ProductHandler {
	return &ProductHandler{responder: responder{render: r, log: log}, repo: repo}
}

func (h *ProductHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	products, err := h.repo.GetAll(r.Context(), repositories.WithCategory, repositories.WithTags)
	if err != nil {
		h.readFailed(w, r, "ProductHandler.GetAll", err)
		return
	}
	h.ok(w, products)
}

func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	product, err := h.repo.GetByID(r.Context(), mux.Vars(r)["id"], repositories.WithCategory, repositories.WithTags)
	if err != nil {
		h.readFailed(w, r, "ProductHandler.GetByID", err)
		return
	}
	if product == nil {
		h.notFound(w, "No product found with this id.")
		return
	}
	h.ok(w, product)
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var fields repositories.ProductFields
	if err := helpers.DecodeJSON(r, &fields); err != nil {
		h.writeFailed(w, r, "ProductHandler.Create", err)
		return
	}

	product, err := h.repo.Create(r.Context(), fields)
	if err != nil {
		h.writeFailed(w, r, "ProductHandler.Create", err)
		return
	}
	h.ok(w, product)
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	var fields repositories.ProductFields
	if err := helpers.DecodeJSON(r, &fields); err != nil {
		h.writeFailed(w, r, "ProductHandler.Update", err)
		return
	}

	affected, err := h.repo.Update(r.Context(), mux.Vars(r)["id"], fields)
	if err != nil {
		h.writeFailed(w, r, "ProductHandler.Update", err)
		return
	}
	h.ok(w, AffectedResponse{Affected: affected})
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	affected, err := h.repo.Delete(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeFailed(w, r, "ProductHandler.Delete", err)
		return
	}
	h.ok(w, AffectedResponse{Affected: affected})
}
