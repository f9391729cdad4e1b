package handler

import (
	"encoding/json"
	"net/http"
	"net/url"
)

// ThemeHandler handles the theme toggle endpoint.
type ThemeHandler struct{}

// NewThemeHandler creates a new ThemeHandler.
func NewThemeHandler() *ThemeHandler {
	return &ThemeHandler{}
}

// Toggle handles POST /theme. Sets the theme cookie and returns HX-Trigger
// for client-side swap; plain form posts are redirected back.
func (h *ThemeHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	theme := r.FormValue("theme")
	if theme != themeLight && theme != themeDark {
		http.Error(w, "invalid theme", http.StatusBadRequest)
		return
	}

	// Non-HttpOnly so the anti-flash script can read it.
	http.SetCookie(w, &http.Cookie{
		Name:     "theme",
		Value:    theme,
		Path:     "/",
		MaxAge:   365 * 24 * 60 * 60, // 1 year
		SameSite: http.SameSiteLaxMode,
		HttpOnly: false,
	})

	trigger, _ := json.Marshal(map[string]any{
		"themeChanged": map[string]string{"theme": theme},
	})
	w.Header().Set("HX-Trigger", string(trigger))

	if !isHTMX(r) && r.Header.Get("Sec-Fetch-Mode") == "navigate" {
		http.Redirect(w, r, sameHostReferer(r), http.StatusSeeOther)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// sameHostReferer returns the referring path when it is on this host, else "/".
func sameHostReferer(r *http.Request) string {
	u, err := url.Parse(r.Referer())
	if err != nil || u.Host != r.Host || u.Path == "" {
		return "/"
	}
	return u.Path
}
