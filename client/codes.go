package client

import "net/http"

const (
	methodMkcol = "MKCOL"
)

type statusSet []int

func (s statusSet) contains(code int) bool {
	for _, c := range s {
		if c == code {
			return true
		}
	}
	return false
}

// Per-operation expected status codes. Codes that usually signal redirects or
// client errors (301, 404, 405) are listed where they carry operation-specific
// meaning, e.g. 405 on MKCOL means the collection already exists.
var (
	mkdirExpectedCodes        = statusSet{http.StatusCreated, http.StatusMovedPermanently, http.StatusMethodNotAllowed}
	deleteExpectedCodes       = statusSet{http.StatusNoContent}
	uploadExpectedCodes       = statusSet{http.StatusOK, http.StatusCreated, http.StatusNoContent}
	downloadExpectedCodes     = statusSet{http.StatusOK}
	existsExpectedCodes       = statusSet{http.StatusOK, http.StatusMovedPermanently, http.StatusNotFound}
	sizeExpectedCodes         = statusSet{http.StatusOK, http.StatusMovedPermanently}
	modifiedTimeExpectedCodes = statusSet{http.StatusOK, http.StatusMovedPermanently, http.StatusNotFound}
)
