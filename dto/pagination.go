package dto

type Pagination struct {
	Offset *int `json:"offset,omitempty" form:"offset" binding:"omitempty,min=0"`
	Limit  *int `json:"limit,omitempty" form:"limit" binding:"omitempty,min=0"`
}
