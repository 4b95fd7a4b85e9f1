package models

import (
	"fmt"
	"time"
)

const (
	MinTargetRoles = 1
	MaxTargetRoles = 3
)

type Profile struct {
	ID             string    `bson:"_id,omitempty" json:"id"`
	UserID         string    `bson:"user_id" json:"user_id"`
	AgeBracket     string    `bson:"age_bracket" json:"age_bracket"`
	Education      string    `bson:"education" json:"education"`
	Experience     string    `bson:"experience" json:"experience"`
	Purpose        string    `bson:"purpose" json:"purpose"`
	FunctionalArea string    `bson:"functional_area" json:"functional_area"`
	CurrentRole    string    `bson:"current_role,omitempty" json:"current_role,omitempty"`
	TargetRoles    []string  `bson:"target_roles" json:"target_roles"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updated_at"`
}

func (p *Profile) Validate() error {
	if p.UserID == "" {
		return fmt.Errorf("user_id: is required")
	}
	if p.Experience == "" {
		return fmt.Errorf("experience: is required")
	}
	if p.Purpose == "" {
		return fmt.Errorf("purpose: is required")
	}
	if len(p.TargetRoles) < MinTargetRoles || len(p.TargetRoles) > MaxTargetRoles {
		return fmt.Errorf("target_roles: between %d and %d roles required, got %d", MinTargetRoles, MaxTargetRoles, len(p.TargetRoles))
	}
	return nil
}
