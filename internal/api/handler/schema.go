package handler

import (
	"github.com/asadbek201001/Ilmhub-Coin-system/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type studentLoginRequest struct {
	StudentID string `json:"studentId" validate:"required,len=10,numeric"`
}

type signupRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name"     validate:"required"`
	Role     string `json:"role"     validate:"required,oneof=admin teacher student"`
}

type addStudentRequest struct {
	Name  string `json:"name"  validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

type addTeacherRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type giveCoinsRequest struct {
	StudentID string `json:"studentId" validate:"required"`
	Amount    int    `json:"amount"    validate:"required,gt=0"`
	Reason    string `json:"reason"`
}

type buyItemRequest struct {
	ItemID string `json:"itemId" validate:"required"`
}

type addItemRequest struct {
	Name        string `json:"name"  validate:"required"`
	Price       int    `json:"price" validate:"required,gt=0"`
	Description string `json:"description"`
	// Available defaults to true when the field is omitted.
	Available *bool `json:"available"`
}

type setAvailabilityRequest struct {
	Available *bool `json:"available" validate:"required"`
}

// --- Response types ---

type authResponse struct {
	Token string       `json:"token,omitempty"`
	User  *domain.User `json:"user"`
}

type userResponse struct {
	User *domain.User `json:"user"`
}

type newBalanceResponse struct {
	Success    bool `json:"success"`
	NewBalance int  `json:"newBalance"`
}

type itemResponse struct {
	Item *domain.Item `json:"item"`
}

type itemsResponse struct {
	Items []*domain.Item `json:"items"`
}

type studentResponse struct {
	Student *domain.User `json:"student"`
}

type studentsResponse struct {
	Students []*domain.User `json:"students"`
}

type teacherResponse struct {
	Teacher *domain.User `json:"teacher"`
}

type transactionsResponse struct {
	Transactions []*domain.Transaction `json:"transactions"`
}
