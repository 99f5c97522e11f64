package web

import (
	"net/http"
	"strings"
)

// Request and response headers understood by htmx.
const (
	hxRequest     = "HX-Request"
	hxTriggerName = "HX-Trigger-Name"
	hxRedirect    = "HX-Redirect"
)

func isHTMX(r *http.Request) bool {
	return strings.EqualFold(r.Header.Get(hxRequest), "true")
}

// redirect sends the browser to target. htmx requests get an HX-Redirect
// header so the client performs a full navigation.
func redirect(w http.ResponseWriter, r *http.Request, target string) {
	if isHTMX(r) {
		w.Header().Set("Location", target)
		w.Header().Set(hxRedirect, target)
		w.WriteHeader(http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
