package web

import (
	"net/http"

	"bark-advisor/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// Handler sirve las páginas HTML: landing, dashboard (formulario) y búsqueda.
type Handler struct {
	form   *ProfileForm
	search *ProductSearch
	pages  *renderer
	log    logger.Logger
}

func NewHandler(form *ProfileForm, search *ProductSearch, log logger.Logger) (*Handler, error) {
	if log == nil {
		log = logger.Nop()
	}
	pages, err := newRenderer()
	if err != nil {
		return nil, err
	}
	return &Handler{form: form, search: search, pages: pages, log: log}, nil
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.home)
	r.Get("/dashboard", h.dashboard)
	r.Post("/dashboard", h.submitProfile)
	r.Get("/search", h.searchPage)
}

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	h.write(w, r, "home", "Home", nil)
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	h.write(w, r, "dashboard", "Dashboard", h.form.Load(r.Context()))
}

func (h *Handler) submitProfile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	h.write(w, r, "dashboard", "Dashboard", h.form.Submit(r.Context(), ParseValues(r.PostForm)))
}

func (h *Handler) searchPage(w http.ResponseWriter, r *http.Request) {
	h.write(w, r, "search", "Product Search", h.search.Search(r.Context(), r.URL.Query().Get("q")))
}

func (h *Handler) write(w http.ResponseWriter, r *http.Request, page, title string, body any) {
	if err := h.pages.render(w, r, page, title, body); err != nil {
		h.log.Error("render page", map[string]any{"err": err, "page": page})
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
