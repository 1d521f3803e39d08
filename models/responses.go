package models

// SignupResponse is the JSON body returned by a successful signup.
type SignupResponse struct {
	Success bool   `json:"success"`
	UserID  string `json:"userId"`
}

// ErrorResponse is the uniform JSON shape for every client-visible failure.
// Internal detail never travels in Error; handlers log it server-side and
// send a generic message instead.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse carries a human-readable confirmation, e.g. after a
// successful task deletion.
type MessageResponse struct {
	Message string `json:"message"`
}

// TaskRequest is the JSON body accepted by task create and update
// endpoints. Completed is ignored on create.
type TaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}
