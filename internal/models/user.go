package models

// User represents a signed-in dashboard user.
// #CODE_ASSUMPTION: No real authentication backend exists yet; sessions
// carry a fixed demo identity until one does.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Demo user identity issued by the session login stub.
const (
	DemoUserName  = "Demo User"
	DemoUserEmail = "demo@example.com"
)
