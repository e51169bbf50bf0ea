package web

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/unrolled/render"
	"github.com/zhaodong-liu/Fantasy-Sports-League/controller"
	"github.com/zhaodong-liu/Fantasy-Sports-League/metrics"
)

func getRouter(ctrl controller.C, render *render.Render) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(10 * time.Second))

	r.Use(sessionMiddleware(ctrl))

	r.Get("/", homeHandler(ctrl, render))
	r.Get("/metrics", metrics.Handler().ServeHTTP)

	r.Get("/login", loginPageHandler(ctrl, render))
	r.Post("/login", loginHandler(ctrl, render))
	r.Get("/register", registerPageHandler(ctrl, render))
	r.Post("/register", registerHandler(ctrl, render))
	r.Get("/logout", logoutHandler(ctrl, render))

	// Public listings.
	r.Get("/leagues", leaguesHandler(ctrl, render))
	r.Get("/teams/info", teamInfoHandler(ctrl, render))
	r.Get("/matches", matchesHandler(ctrl, render))
	r.Get("/match_events/{matchID:\\d+}", matchEventsHandler(ctrl, render))
	r.Get("/players", playersHandler(ctrl, render))
	r.Get("/player/{playerID:\\d+}", playerHandler(ctrl, render))
	r.Get("/trade", tradesHandler(ctrl, render))
	r.Get("/draft", draftsHandler(ctrl, render))
	r.Get("/draft/{draftID:\\d+}", draftHandler(ctrl, render))
	r.Get("/waivers", waiversHandler(ctrl, render))
	r.Get("/waivers/{waiverID:\\d+}", waiverHandler(ctrl, render))

	// Routes that need a logged in user.
	r.Group(func(r chi.Router) {
		r.Use(requireUser)

		r.Get("/dashboard", dashboardHandler(ctrl, render))
		r.Get("/teams/user", userTeamsHandler(ctrl, render))
		r.Get("/leagues/public", userPublicLeaguesHandler(ctrl, render))
		r.Get("/leagues/private", userPrivateLeaguesHandler(ctrl, render))
		r.Get("/create_team", createTeamPageHandler(ctrl, render))
		r.Post("/create_team", createTeamHandler(ctrl, render))
		r.Get("/start_trade", startTradePageHandler(ctrl, render))
		r.Post("/start_trade", startTradeHandler(ctrl, render))
	})

	// Admin-only routes.
	r.Group(func(r chi.Router) {
		r.Use(requireAdmin(render))

		r.Get("/player/new", playerFormHandler(ctrl, render))
		r.Post("/player/new", createPlayerHandler(ctrl, render))
		r.Post("/player/{playerID:\\d+}", updatePlayerHandler(ctrl, render))
		r.Post("/player/{playerID:\\d+}/delete", deletePlayerHandler(ctrl, render))
		r.Get("/draft/new", draftFormHandler(ctrl, render))
		r.Post("/draft/new", startDraftHandler(ctrl, render))
		r.Get("/waivers/{waiverID:\\d+}/update", updateWaiverPageHandler(ctrl, render))
		r.Post("/waivers/{waiverID:\\d+}/update", updateWaiverHandler(ctrl, render))
	})

	// The original application exposed several endpoints under
	// snake_case paths. Keep them routable for old links.
	r.Group(func(r chi.Router) {
		r.Use(requireUser)

		r.Get("/get_user_teams", userTeamsHandler(ctrl, render))
		r.Get("/get_user_public_leagues", userPublicLeaguesHandler(ctrl, render))
		r.Get("/get_user_private_leagues", userPrivateLeaguesHandler(ctrl, render))
	})
	r.Get("/get_team_info_by_name", teamInfoHandler(ctrl, render))

	return r
}
