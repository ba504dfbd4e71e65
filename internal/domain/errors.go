package domain

import "errors"

var (
	ErrStoryNotFound        = errors.New("story not found")
	ErrCrisisNotFound       = errors.New("crisis not found")
	ErrLocationNotVerified  = errors.New("location not verified")
	ErrSubmissionsClosed    = errors.New("crisis is not accepting story submissions")
	ErrInvalidModeration    = errors.New("invalid moderation transition")
	ErrConversationNotFound = errors.New("conversation not found")
	ErrNotParticipant       = errors.New("user is not a participant of this conversation")
)
