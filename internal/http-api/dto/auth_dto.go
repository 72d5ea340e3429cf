package dto

// AnonymousStatusResponse reports whether the anon_id cookie was already
// present on the request or freshly issued.
type AnonymousStatusResponse struct {
	AnonID string `json:"anon_id"`
	Status string `json:"status"` // "new" or "existing"
}
