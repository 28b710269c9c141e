package domain

// UnknownRequester is the sentinel identity recorded when a request reaches
// the store without an authenticated viewer attached.
const UnknownRequester = "Unknown"

// Request is the central entity: one material request and its lifecycle status.
//
// ID is assigned by the record store on creation and never by this system.
// RequestedBy and RequestDate are write-once at creation; only Status is
// mutated afterwards.
type Request struct {
	ID          string
	PartName    string
	Size        string
	Description string
	RequestDate string // calendar date as stored ("2006-01-02"); may fall back to the store's creation timestamp
	Status      Status
	RequestedBy string
	ImageURL    string
}

// RequestFilter narrows List results. A nil Status means no filtering.
type RequestFilter struct {
	Status *Status
}
