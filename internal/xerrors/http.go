package xerrors

import (
	"net/http"

	"github.com/altay/inkdash/internal/xhttp"
)

// Write maps an error to an HTTP response. Status-coded errors keep their
// code and message; anything else is a bare 500.
func Write(w http.ResponseWriter, err error) {
	if e := As(err); e != nil {
		xhttp.WriteError(w, e.StatusCode, e.Message)
		return
	}
	xhttp.Error(w, http.StatusInternalServerError)
}
