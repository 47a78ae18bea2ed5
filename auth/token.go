// Package auth issues and verifies the HS256 bearer tokens the API runs on.
// A token carries exactly one role claim (adminId, facultyId or studentId);
// which one is present determines the caller's role.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"campus_backend/models"
)

// ClaimUser is the "user" object embedded in every issued token.
type ClaimUser struct {
	AdminID   string `json:"adminId,omitempty"`
	FacultyID string `json:"facultyId,omitempty"`
	StudentID string `json:"studentId,omitempty"`
	Email     string `json:"email"`
	ID        string `json:"id"`
}

// TokenClaims is the full JWT payload.
type TokenClaims struct {
	User ClaimUser `json:"user"`
	jwt.RegisteredClaims
}

// Role resolves the caller's role from whichever ID claim is set. ok is
// false when no role claim is present.
func (u ClaimUser) Role() (models.Role, bool) {
	switch {
	case u.AdminID != "":
		return models.RoleAdmin, true
	case u.FacultyID != "":
		return models.RoleFaculty, true
	case u.StudentID != "":
		return models.RoleStudent, true
	}
	return "", false
}

// IDFor returns the public ID the token carries for the given role, or ""
// when the token is for a different role.
func (u ClaimUser) IDFor(role models.Role) string {
	switch role {
	case models.RoleAdmin:
		return u.AdminID
	case models.RoleFaculty:
		return u.FacultyID
	default:
		return u.StudentID
	}
}

// NewClaimUser builds the claim object for a person of the given role.
func NewClaimUser(role models.Role, personID, email, id string) ClaimUser {
	u := ClaimUser{Email: email, ID: id}
	switch role {
	case models.RoleAdmin:
		u.AdminID = personID
	case models.RoleFaculty:
		u.FacultyID = personID
	default:
		u.StudentID = personID
	}
	return u
}

// Sign issues a token valid for ttl.
func Sign(secret []byte, user ClaimUser, ttl time.Duration) (string, error) {
	claims := TokenClaims{
		User: user,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// Parse verifies signature and expiry and returns the embedded claim user.
func Parse(secret []byte, tokenStr string) (*ClaimUser, error) {
	var claims TokenClaims
	token, err := jwt.ParseWithClaims(tokenStr, &claims,
		func(t *jwt.Token) (interface{}, error) {
			if t.Method != jwt.SigningMethodHS256 {
				return nil, errors.New("unexpected signing method")
			}
			return secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return &claims.User, nil
}
