package domain

import "github.com/golang-jwt/jwt/v5"

// Claims identifica quem pode disparar downloads pela API
type Claims struct {
	Operator string `json:"operator"`
	jwt.RegisteredClaims
}
