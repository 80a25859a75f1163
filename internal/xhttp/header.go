package xhttp

import (
	"net/http"
	"strconv"
)

const (
	XForwardedFor    = "X-Forwarded-For"
	XContentTypeOpts = "X-Content-Type-Options"
	XFrameOpts       = "X-Frame-Options"
	XXSSProtection   = "X-Xss-Protection"
	ReferrerPolicy   = "Referrer-Policy"
)

const (
	ContentType  = "Content-Type"
	CacheControl = "Cache-Control"

	AccessControlAllowOrigin  = "Access-Control-Allow-Origin"
	AccessControlAllowMethods = "Access-Control-Allow-Methods"
	AccessControlAllowHeaders = "Access-Control-Allow-Headers"
)

func SetHeaderRequestID(w http.ResponseWriter, requestID string) {
	const headerName = "X-Request-ID"
	w.Header().Set(headerName, requestID)
}

func SetHeaderContentTypeApplicationJSON(w http.ResponseWriter) {
	const applicationJSON = "application/json"
	w.Header().Set(ContentType, applicationJSON)
}

// SetHeaderCacheControl advises clients and CDNs to treat the response
// as fresh for maxAge seconds.
func SetHeaderCacheControl(w http.ResponseWriter, maxAge int) {
	w.Header().Set(CacheControl, "public, max-age="+strconv.Itoa(maxAge))
}
