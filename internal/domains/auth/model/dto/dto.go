package dto

import (
	"frontdesk/infras/jwt"
	userModel "frontdesk/internal/domains/user/model"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required,notblank"`
	Password string `json:"password" validate:"required"`
}

type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Name     string `json:"name"`
}

func (u *UserResponse) FromModel(model userModel.User) {
	u.ID = model.ID
	u.Username = model.Username
	u.Role = model.Role
	u.Name = model.Name
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

func (l *LoginResponse) FromToken(token *jwt.Token, user userModel.User) {
	l.Token = token.AccessToken
	l.User.FromModel(user)
}
