package dto

import (
	"fauget/internal/domains/user/model"
	"fauget/shared"
	"fauget/shared/constant"
	gDto "fauget/shared/dto"
	gModel "fauget/shared/model"
	"fauget/shared/timezone"

	"github.com/google/uuid"
)

type CreateUserRequest struct {
	Email    string   `json:"email"    validate:"required,email"`
	Password string   `json:"password" validate:"required,min=8"`
	FullName string   `json:"fullName" validate:"required,min=2,max=100"`
	Role     string   `json:"role"     validate:"omitempty,oneof=user admin developer"`
	HeightCm *float64 `json:"heightCm,omitempty" validate:"omitempty,gte=50,lte=280"`
	WeightKg *float64 `json:"weightKg,omitempty" validate:"omitempty,gte=20,lte=400"`
	Address  *string  `json:"address,omitempty"  validate:"omitempty,max=300"`
}

func (r *CreateUserRequest) ToModel(username string, hashedPassword string) model.User {
	role := r.Role
	if role == "" {
		role = constant.RoleUser
	}

	return model.User{
		ID:       uuid.NewString(),
		Email:    r.Email,
		Password: hashedPassword,
		Role:     role,
		FullName: r.FullName,
		HeightCm: r.HeightCm,
		WeightKg: r.WeightKg,
		Address:  r.Address,
		Active:   true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  username,
			ModifiedBy: username,
		},
	}
}

type UserResponse struct {
	ID           string   `json:"id"`
	Email        string   `json:"email"`
	FullName     string   `json:"fullName"`
	Role         string   `json:"role"`
	HeightCm     *float64 `json:"heightCm,omitempty"`
	WeightKg     *float64 `json:"weightKg,omitempty"`
	Address      *string  `json:"address,omitempty"`
	ProfilePhoto *string  `json:"profilePhoto,omitempty"`
	LastLogin    *string  `json:"lastLogin,omitempty"`
	Active       bool     `json:"active"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(user model.User) {
	r.ID = user.ID
	r.Email = user.Email
	r.FullName = user.FullName
	r.Role = user.Role
	r.HeightCm = user.HeightCm
	r.WeightKg = user.WeightKg
	r.Address = user.Address
	r.ProfilePhoto = user.ProfilePhoto

	if user.LastLogin != nil {
		lastLogin := timezone.Format(*user.LastLogin, constant.DateFormat)
		r.LastLogin = &lastLogin
	}

	r.Active = user.Active
	r.Metadata.FromModel(user.Metadata)
}

// UpdateProfileRequest is the self-service profile update payload.
type UpdateProfileRequest struct {
	FullName *string  `db:"full_name" json:"fullName,omitempty" validate:"omitempty,min=2,max=100"`
	HeightCm *float64 `db:"height_cm" json:"heightCm,omitempty" validate:"omitempty,gte=50,lte=280"`
	WeightKg *float64 `db:"weight_kg" json:"weightKg,omitempty" validate:"omitempty,gte=20,lte=400"`
	Address  *string  `db:"address"   json:"address,omitempty"  validate:"omitempty,max=300"`
}

// UpdateRoleRequest is the admin payload for changing a user's role.
type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=user admin developer"`
}

// ResetPasswordRequest is the admin payload for resetting a user's password.
type ResetPasswordRequest struct {
	Password string `json:"password" validate:"required,min=8"`
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"totalPage"`
	TotalData int            `json:"totalData"`
}

func (r *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}
