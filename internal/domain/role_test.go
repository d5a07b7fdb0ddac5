package domain

import "testing"

func TestParseRole(t *testing.T) {
	tests := []struct {
		in      string
		want    Role
		wantErr bool
	}{
		{in: "user", want: RoleUser},
		{in: "decorator", want: RoleDecorator},
		{in: "admin", want: RoleAdmin},
		{in: "superadmin", wantErr: true},
		{in: "Admin", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseRole(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseRole(%q): expected error, got %q", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseRole(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseRole(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRoleSetSubsetOf(t *testing.T) {
	tests := []struct {
		name  string
		s     RoleSet
		other RoleSet
		want  bool
	}{
		{name: "equal sets", s: Roles(RoleAdmin), other: Roles(RoleAdmin), want: true},
		{name: "proper subset", s: Roles(RoleAdmin), other: Roles(RoleDecorator, RoleAdmin), want: true},
		{name: "disjoint", s: Roles(RoleUser), other: Roles(RoleAdmin), want: false},
		{name: "superset is not subset", s: AllRoles(), other: Roles(RoleAdmin), want: false},
		{name: "empty set is subset of anything", s: Roles(), other: Roles(RoleUser), want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.SubsetOf(tt.other); got != tt.want {
				t.Errorf("SubsetOf = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRoleSetIntersect(t *testing.T) {
	got := AllRoles().Intersect(Roles(RoleDecorator, RoleAdmin))
	if len(got) != 2 || !got.Contains(RoleDecorator) || !got.Contains(RoleAdmin) {
		t.Errorf("Intersect = %v, want decorator+admin", got)
	}
	if empty := Roles(RoleUser).Intersect(Roles(RoleAdmin)); len(empty) != 0 {
		t.Errorf("disjoint Intersect = %v, want empty", empty)
	}
}
