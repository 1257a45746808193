package model

import (
	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	UserId int64 `json:"userId"`
	jwt.RegisteredClaims
}
