package utils

import "errors"

var (
	ErrTripNotFound     = errors.New("trip not found")
	ErrExpenseNotFound  = errors.New("expense not found")
	ErrItemNotFound     = errors.New("packing item not found")
	ErrTemplateNotFound = errors.New("template not found")
	ErrLocationNotFound = errors.New("location not found")
	ErrGenerationParse  = errors.New("could not parse AI response")
	ErrInvalidInput     = errors.New("invalid input")
	ErrEmailTaken       = errors.New("email already registered")
	ErrInvalidLogin     = errors.New("invalid email or password")
	ErrNotGuest         = errors.New("identity is not a guest")
	ErrDatabaseError    = errors.New("database error")
)

// GuestIDPrefix marks locally generated identities. The prefix is the sole
// routing condition for every persistence adapter: guest ids never reach the
// cloud store.
const GuestIDPrefix = "guest_"

func IsGuestID(userID string) bool {
	return len(userID) >= len(GuestIDPrefix) && userID[:len(GuestIDPrefix)] == GuestIDPrefix
}
