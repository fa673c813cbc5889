package http

import (
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// avatarPublicPrefix is the URL prefix uploaded avatars are served under.
const avatarPublicPrefix = "/uploads/avatars/"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(withGZip)

	// API routes without authentication
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/signin", h.signIn)
		r.Post("/api/auth/logout", h.logout)
		r.Get("/api/auth/session", h.session)
		r.Get("/api/auth/google", h.googleAuth)
		r.Get("/api/auth/callback/google", h.googleCallback)
		r.Get("/api/feedbacks", h.listFeedbacks)
		r.Get("/api/version/", h.getServerVersion)
	})

	// API routes behind the validating session middleware
	router.Group(func(r chi.Router) {
		r.Use(h.sessionAuth)

		r.Patch("/api/user/update", h.updateProfile)
		r.Post("/api/user/avatar", h.uploadAvatar)
		r.Delete("/api/user/avatar", h.removeAvatar)
		r.Delete("/api/user/delete", h.deleteAccount)

		r.Post("/api/process", h.process)
		r.Get("/api/process", h.processStatus)
		r.Get("/api/molecule/{name}", h.getMolecule)

		r.Post("/api/archive", h.saveArchive)
		r.Get("/api/archive", h.listArchives)
		r.Get("/api/archive/{id}", h.getArchive)
		r.Delete("/api/archive/{id}", h.deleteArchive)

		r.Post("/api/feedback", h.submitFeedback)
	})

	// uploaded avatar files
	avatarServer := http.StripPrefix(avatarPublicPrefix, http.FileServer(http.Dir(h.cfg.Storage.Files.AvatarDir)))
	router.Get(avatarPublicPrefix+"*", avatarServer.ServeHTTP)

	// page shell behind the presence-only route guard
	router.Group(func(r chi.Router) {
		r.Use(h.pageGuard)

		r.Get("/", h.servePage)
		r.Get("/analysis", h.servePage)
		r.Get("/analysis/*", h.servePage)
		r.Get("/archive", h.servePage)
		r.Get("/archive/*", h.servePage)
		r.Get("/about", h.servePage)
		r.Get("/about/*", h.servePage)
		r.Get("/login", h.servePage)
		r.Get("/sign-up", h.servePage)
	})

	// static assets of the built frontend shell
	router.Get("/assets/*", http.FileServer(http.Dir(h.cfg.Storage.Files.StaticDir)).ServeHTTP)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

// servePage serves the single-page shell. Every guarded page route maps onto
// the same index.html; the frontend router takes it from there.
func (h *Handler) servePage(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(h.cfg.Storage.Files.StaticDir, "index.html"))
}
