package users

// User is the summary of a user as displayed next to feed entries,
// comments and notifications.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}
