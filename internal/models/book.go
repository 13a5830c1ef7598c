package models

// SavedBook is one entry in a user's saved collection. BookID is the stable
// identifier from the external catalog; a user's collection holds at most one
// entry per BookID. Entries are immutable once saved: re-saving the same
// BookID with different fields is a no-op, not an update.
type SavedBook struct {
	BookID      string   `json:"book_id"`               // external catalog id, required
	Title       string   `json:"title"`                 // required
	Authors     []string `json:"authors"`               // ordered, possibly empty
	Description string   `json:"description,omitempty"` // optional
	Image       string   `json:"image,omitempty"`       // optional cover URL
	Link        string   `json:"link,omitempty"`        // optional catalog URL
}
