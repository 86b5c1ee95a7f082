package requests

type RegisterMemberRequest struct {
	FirstName  string `json:"firstName" validate:"required"`
	LastName   string `json:"lastName" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"required"`
	Grade      string `json:"grade" validate:"required"`
	SchoolName string `json:"schoolName" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

type PaymentRequest struct {
	MemberID      string `json:"memberId" validate:"required"`
	PaymentMethod string `json:"paymentMethod" validate:"required"`
	TransactionID string `json:"transactionId"`
}

type MemberStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
