package routes

import (
	"net/http"

	"github.com/Rakhulsr/ecommerce-back-end/app/handlers"
	"github.com/Rakhulsr/ecommerce-back-end/app/middlewares"
	"github.com/Rakhulsr/ecommerce-back-end/app/repositories"
	"github.com/Rakhulsr/ecommerce-back-end/app/utils/renderer"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// resource is the verb set every route group exposes.
type resource interface {
	GetAll(http.ResponseWriter, *http.Request)
	GetByID(http.ResponseWriter, *http.Request)
	Create(http.ResponseWriter, *http.Request)
	Update(http.ResponseWriter, *http.Request)
	Delete(http.ResponseWriter, *http.Request)
}

func NewRouter(db *gorm.DB, log *zap.Logger) *mux.Router {
	render := renderer.New()
	router := mux.NewRouter()

	router.Use(
		middlewares.RequestID(log),
		middlewares.Recovery(render, log),
		middlewares.AccessLog(log),
	)

	api := router.PathPrefix("/api").Subrouter()
	mount(api, "/categories", handlers.NewCategoryHandler(repositories.NewCategoryRepository(db), render, log))
	mount(api, "/products", handlers.NewProductHandler(repositories.NewProductRepository(db), render, log))
	mount(api, "/tags", handlers.NewTagHandler(repositories.NewTagRepository(db), render, log))

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = render.JSON(w, http.StatusNotFound, handlers.ErrorResponse{Message: "Wrong Route!"})
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = render.JSON(w, http.StatusMethodNotAllowed, handlers.ErrorResponse{Message: "Method not allowed"})
	})

	return router
}

func mount(api *mux.Router, prefix string, h resource) {
	for _, path := range []string{prefix, prefix + "/"} {
		api.HandleFunc(path, h.GetAll).Methods(http.MethodGet)
		api.HandleFunc(path, h.Create).Methods(http.MethodPost)
	}
	api.HandleFunc(prefix+"/{id}", h.GetByID).Methods(http.MethodGet)
	api.HandleFunc(prefix+"/{id}", h.Update).Methods(http.MethodPut)
	api.HandleFunc(prefix+"/{id}", h.Delete).Methods(http.MethodDelete)
}
