package models

// UserRequest - модель для аутентификации сотрудника, приходит извне
type UserRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}
