package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Service errors. ErrConnectivity means the request never reached the
	// record service; ErrService means the service answered with a failure
	// envelope or non-2xx status and its message is passed through verbatim.
	ErrConnectivity       = fmt.Errorf("could not reach the record service")
	ErrService            = fmt.Errorf("service request failed")
	ErrAlbumNotFound      = fmt.Errorf("album not found")
	ErrNoEligibleAlbums   = fmt.Errorf("no eligible albums")
	ErrNoPreviousListen   = fmt.Errorf("no previous selection")
	ErrServiceUnavailable = fmt.Errorf("service unavailable")

	// Workflow errors
	ErrNoCurrentAlbum  = fmt.Errorf("no album under review")
	ErrAlreadyResolved = fmt.Errorf("album already listened or skipped")
	ErrActionPending   = fmt.Errorf("action already in flight")
	ErrJobActive       = fmt.Errorf("a sync job is already running")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
