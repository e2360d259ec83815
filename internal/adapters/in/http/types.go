package http

import "time"

// Error is the JSON error body returned by all endpoints.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// SubmitSellerRequestRequest is the request body for a seller application.
type SubmitSellerRequestRequest struct {
	ShopName       string `json:"shopName"`
	Phone          string `json:"phone"`
	SellingType    string `json:"sellingType"`
	PaymentMethod  string `json:"paymentMethod"`
	PaymentAccount string `json:"paymentAccount"`
}

// SubmitSellerRequestResponse returns the identifier assigned to a new
// application.
type SubmitSellerRequestResponse struct {
	ID string `json:"id"`
}

// RejectSellerRequestRequest is the request body for a rejection decision.
type RejectSellerRequestRequest struct {
	Reason string `json:"reason"`
}

// Seller is the JSON representation of a seller directory entry.
type Seller struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	ShopName     string    `json:"shopName"`
	IsVerified   bool      `json:"isVerified"`
	IsActive     bool      `json:"isActive"`
	Rating       float64   `json:"rating"`
	TotalSales   int       `json:"totalSales"`
	ResponseRate float64   `json:"responseRate"`
	CreatedAt    time.Time `json:"createdAt"`
}

// PendingSellerRequest is the JSON representation of one application in the
// admin review backlog.
type PendingSellerRequest struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	UserName      string    `json:"userName"`
	UserEmail     string    `json:"userEmail"`
	ShopName      string    `json:"shopName"`
	Phone         string    `json:"phone"`
	SellingType   string    `json:"sellingType"`
	PaymentMethod string    `json:"paymentMethod"`
	CreatedAt     time.Time `json:"createdAt"`
}
