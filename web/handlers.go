package web

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/unrolled/render"
	"github.com/zhaodong-liu/Fantasy-Sports-League/controller"
	"github.com/zhaodong-liu/Fantasy-Sports-League/db"
)

// pageData is the payload every page template receives: the acting
// identity, a one-shot flash message, and the page-specific fields.
func pageData(w http.ResponseWriter, r *http.Request) map[string]any {
	return map[string]any{
		"identity": identityFrom(r),
		"flash":    popFlash(w, r),
	}
}

// renderError maps an error onto the right error page. Rejections raised
// by the stored procedures carry a user-facing message; everything else
// is classified by sentinel.
func renderError(render *render.Render, w http.ResponseWriter, err error) {
	var rej *db.RejectionError
	switch {
	case errors.As(err, &rej):
		render.HTML(w, http.StatusBadRequest, "400", rej.Message)
	case errors.Is(err, controller.ErrInvalidInput):
		render.HTML(w, http.StatusBadRequest, "400", err.Error())
	case errors.Is(err, controller.ErrNotAuthorized):
		render.HTML(w, http.StatusForbidden, "403", "you are not allowed to do that")
	case errors.Is(err, db.ErrPlayerNotFound),
		errors.Is(err, db.ErrTeamNotFound),
		errors.Is(err, db.ErrLeagueNotFound),
		errors.Is(err, db.ErrDraftNotFound),
		errors.Is(err, db.ErrWaiverNotFound),
		errors.Is(err, db.ErrUserNotFound):
		render.HTML(w, http.StatusNotFound, "404", err.Error())
	default:
		log.Printf("internal error: %v", err)
		render.HTML(w, http.StatusInternalServerError, "500", "something went wrong")
	}
}

func idParam(r *http.Request, name string) (int32, error) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil {
		return 0, err
	}
	return int32(id), nil
}

// formID reads a numeric id from an already parsed form.
func formID(r *http.Request, name string) (int32, error) {
	id, err := strconv.Atoi(r.PostForm.Get(name))
	if err != nil {
		return 0, err
	}
	return int32(id), nil
}

// pageParam reads the page query parameter. Anything unparseable is
// page 1; out of range values are clamped later by the paginator.
func pageParam(r *http.Request) int {
	p, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil {
		return 1
	}
	return p
}

func homeHandler(_ controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.HTML(w, http.StatusOK, "home", pageData(w, r))
	}
}

func dashboardHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ident := identityFrom(r)

		public, private, err := ctrl.GetUserLeagues(r.Context(), ident.UserID)
		if err != nil {
			renderError(render, w, err)
			return
		}
		teams, err := ctrl.GetUserTeams(r.Context(), ident.UserID)
		if err != nil {
			renderError(render, w, err)
			return
		}

		data := pageData(w, r)
		data["public"] = public
		data["private"] = private
		data["teams"] = teams
		render.HTML(w, http.StatusOK, "dashboard", data)
	}
}
