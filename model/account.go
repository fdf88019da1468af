package model

import "time"

// UserAuthenticate is what the identity endpoint returns on login.
type UserAuthenticate struct {
	UserId                 int       `json:"userId"`
	AvatarUrl              string    `json:"avatarUrl"`
	Email                  string    `json:"email"`
	EmployeeNo             string    `json:"employeeNo"`
	RefreshToken           string    `json:"refreshToken"`
	RefreshTokenExpiryTime time.Time `json:"refreshTokenExpiryTime"`
	Role                   string    `json:"role"`
	Token                  string    `json:"token"`
}

type LoginInput struct {
	EmployeeNo string `json:"employeeNo" form:"employeeNo" validate:"notblank"`
	Password   string `json:"password" form:"password" validate:"notblank"`
}

type ChangePasswordInput struct {
	Password           string `json:"password" form:"password" validate:"notblank"`
	NewPassword        string `json:"newPassword" form:"newPassword" validate:"notblank"`
	ConfirmNewPassword string `json:"confirmNewPassword" form:"confirmNewPassword" validate:"notblank"`
}
