package datajud

import "errors"

var (
	// ErrNoAPIKey means DATAJUD_API_KEY is not configured. Fatal, not retryable.
	ErrNoAPIKey = errors.New("datajud api key not configured")

	// ErrAuthExchange means the token exchange was rejected or unreachable.
	ErrAuthExchange = errors.New("datajud token exchange failed")

	// ErrCaseNotFound means the search returned zero hits for the case number.
	ErrCaseNotFound = errors.New("case not found in datajud")

	// ErrUpstream wraps transport failures and non-success HTTP statuses.
	ErrUpstream = errors.New("datajud request failed")
)
