package dto

// CreateAccountRequest carries the customer details captured at onboarding.
type CreateAccountRequest struct {
	FirstName        string `json:"firstName" binding:"required"`
	LastName         string `json:"lastName" binding:"required"`
	OtherName        string `json:"otherName"`
	Gender           string `json:"gender"`
	Address          string `json:"address"`
	StateOfOrigin    string `json:"stateOfOrigin"`
	Email            string `json:"email" binding:"required,email"`
	Password         string `json:"password" binding:"required,min=8"`
	PhoneNumber      string `json:"phoneNumber"`
	AlternativePhone string `json:"alternativePhoneNumber"`
}
