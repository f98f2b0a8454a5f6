package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

func NewHandler(
	authHandler *AuthHandler,
	pollHandler *PollHandler,
	voteHandler *VoteHandler,
	resultHandler *ResultHandler,
	authMW *AuthMiddleware,
	allowedOrigins []string,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})
	r.Use(c.Handler)

	r.Post("/register", authHandler.Register)
	r.Post("/login", authHandler.Login)

	r.Route("/polls", func(r chi.Router) {
		r.Get("/", pollHandler.ListPolls)
		r.Get("/{id}", pollHandler.GetPoll)
		r.Get("/{id}/results", resultHandler.GetResults)

		r.Group(func(r chi.Router) {
			r.Use(authMW.RequireAuth)
			r.Post("/", pollHandler.CreatePoll)
			r.Delete("/{id}", pollHandler.DeletePoll)
			r.Post("/{id}/vote", voteHandler.VoteOnPoll)
		})
	})

	return r
}
