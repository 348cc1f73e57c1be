package domain

import "time"

// RequestStatus tracks a buyer request. Fulfilled is terminal; pending and
// overdue requests are both open for fulfillment.
type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusFulfilled RequestStatus = "fulfilled"
	RequestStatusOverdue   RequestStatus = "overdue"
)

// FulfilledWithNewDocument marks a request satisfied through the create-new
// path, which records the intent without minting an Evidence record.
const FulfilledWithNewDocument = "new-doc"

// BuyerRequest is a counterparty's demand for a document of a given type.
// FulfilledWith is set exactly once, when the request transitions to fulfilled.
type BuyerRequest struct {
	ID            string        `json:"id"`
	DocType       string        `json:"docType"`
	DueDate       time.Time     `json:"dueDate"`
	Status        RequestStatus `json:"status"`
	BuyerName     string        `json:"buyerName"`
	Notes         string        `json:"notes,omitempty"`
	FulfilledWith string        `json:"fulfilledWith,omitempty"`
}

// Open reports whether the request can still be fulfilled.
func (r BuyerRequest) Open() bool {
	return r.Status != RequestStatusFulfilled
}
