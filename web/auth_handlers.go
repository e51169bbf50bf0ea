package web

import (
	"errors"
	"net/http"

	"github.com/unrolled/render"
	"github.com/zhaodong-liu/Fantasy-Sports-League/controller"
	"github.com/zhaodong-liu/Fantasy-Sports-League/db"
)

func loginPageHandler(_ controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !identityFrom(r).Anonymous() {
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
			return
		}
		render.HTML(w, http.StatusOK, "login", pageData(w, r))
	}
}

func loginHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}

		login := r.PostForm.Get("login")
		password := r.PostForm.Get("password")

		s, err := ctrl.Login(r.Context(), login, password)
		if err != nil {
			if errors.Is(err, controller.ErrInvalidLogin) {
				data := pageData(w, r)
				data["error"] = err.Error()
				data["login"] = login
				render.HTML(w, http.StatusUnauthorized, "login", data)
				return
			}
			renderError(render, w, err)
			return
		}

		setSessionCookie(w, s)
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
	}
}

func registerPageHandler(_ controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.HTML(w, http.StatusOK, "register", pageData(w, r))
	}
}

func registerHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}

		_, err := ctrl.Register(r.Context(),
			r.PostForm.Get("full_name"),
			r.PostForm.Get("email"),
			r.PostForm.Get("username"),
			r.PostForm.Get("password"))
		if err != nil {
			if errors.Is(err, db.ErrUserExists) || errors.Is(err, controller.ErrInvalidInput) {
				data := pageData(w, r)
				data["error"] = err.Error()
				data["full_name"] = r.PostForm.Get("full_name")
				data["email"] = r.PostForm.Get("email")
				data["username"] = r.PostForm.Get("username")
				render.HTML(w, http.StatusBadRequest, "register", data)
				return
			}
			renderError(render, w, err)
			return
		}

		setFlash(w, "Account created, you can log in now.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	}
}

func logoutHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie(sessionCookieName); err == nil {
			if err := ctrl.Logout(r.Context(), c.Value); err != nil {
				renderError(render, w, err)
				return
			}
		}
		clearSessionCookie(w)
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}
