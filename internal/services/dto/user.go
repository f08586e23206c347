package dto

// UpdateProfileRequest is a partial update; nil fields are left unchanged.
type UpdateProfileRequest struct {
	Name        *string   `json:"name" validate:"omitempty,max=50"`
	Phone       *string   `json:"phone"`
	Location    *string   `json:"location"`
	Bio         *string   `json:"bio" validate:"omitempty,max=500"`
	Skills      *[]string `json:"skills"`
	Experience  *string   `json:"experience" validate:"omitempty,is-experience-level"`
	Education   *string   `json:"education"`
	Website     *string   `json:"website" validate:"omitempty,url"`
	Company     *string   `json:"company"`
	CompanySize *string   `json:"companySize" validate:"omitempty,is-company-size"`
	Industry    *string   `json:"industry"`
}

type ListUsersRequest struct {
	Role     string `form:"role" validate:"omitempty,is-user-role"`
	IsActive *bool  `form:"isActive"`
	Search   string `form:"search"`
	Page     int    `form:"-"`
	PageSize int    `form:"-"`
}

type SetActiveRequest struct {
	IsActive *bool `json:"isActive" validate:"required"`
}
