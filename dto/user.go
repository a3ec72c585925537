package dto

type CreateUserRequest struct {
	ID          *string `json:"id,omitempty"`
	Username    string  `json:"username" binding:"required"`
	DisplayName string  `json:"display_name" binding:"required"`
}

type UpdateUserRequest struct {
	DisplayName *string `json:"display_name,omitempty"`
}
