package mockdata

import "errors"

var (
	ErrSuggestionNotFound      = errors.New("suggestion not found")
	ErrUnknownSuggestionAction = errors.New("unknown suggestion action")

	ErrMemberNotFound   = errors.New("family member not found")
	ErrUnknownAlert     = errors.New("unknown family alert type")
	ErrInvalidEmail     = errors.New("invitation email is required")
	ErrAlreadyInvited   = errors.New("email already has a pending invitation")
	ErrFamilyCircleFull = errors.New("no family seats left")
)
