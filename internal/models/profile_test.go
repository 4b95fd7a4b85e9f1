package models

import (
	"strings"
	"testing"
)

func TestProfileValidate(t *testing.T) {
	valid := func() Profile {
		return Profile{
			UserID:      "user-1",
			Experience:  "1-3 years",
			Purpose:     "Career change",
			TargetRoles: []string{"Data Scientist"},
		}
	}

	p := valid()
	if err := p.Validate(); err != nil {
		t.Fatalf("valid profile rejected: %v", err)
	}

	cases := []struct {
		name    string
		mutate  func(*Profile)
		wantErr string
	}{
		{"missing user id", func(p *Profile) { p.UserID = "" }, "user_id:"},
		{"missing experience", func(p *Profile) { p.Experience = "" }, "experience:"},
		{"missing purpose", func(p *Profile) { p.Purpose = "" }, "purpose:"},
		{"no target roles", func(p *Profile) { p.TargetRoles = nil }, "target_roles:"},
		{"too many target roles", func(p *Profile) {
			p.TargetRoles = []string{"a", "b", "c", "d"}
		}, "target_roles:"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := valid()
			tc.mutate(&p)
			err := p.Validate()
			if err == nil || !strings.HasPrefix(err.Error(), tc.wantErr) {
				t.Errorf("got %v, want an error starting with %q", err, tc.wantErr)
			}
		})
	}

	t.Run("three target roles allowed", func(t *testing.T) {
		p := valid()
		p.TargetRoles = []string{"a", "b", "c"}
		if err := p.Validate(); err != nil {
			t.Errorf("three roles rejected: %v", err)
		}
	})
}
