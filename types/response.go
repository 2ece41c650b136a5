package types

// ErrorResponse is the JSON envelope every failed request is answered with.
type ErrorResponse struct {
	Type    string `json:"type" example:"VALIDATION_ERROR"`
	Message string `json:"message" example:"Invalid trip data"`
	Details string `json:"details,omitempty" example:"latitude must be a number"`
	Code    string `json:"code" example:"400"`
}

// TripListResponse wraps the trip collection.
type TripListResponse struct {
	Trips []Trip `json:"trips"`
	Total int    `json:"total"`
}
