package auth

import (
	"encoding/base64"
	"encoding/json"
	"testing"
	"time"
)

// memStore is an in-memory credential store for tests.
type memStore struct {
	cred    *Credential
	cleared bool
}

func (m *memStore) Load() (*Credential, error) { return m.cred, nil }
func (m *memStore) Save(c *Credential) error   { m.cred = c; return nil }
func (m *memStore) Clear() error               { m.cred = nil; m.cleared = true; return nil }

// forgeToken builds an unsigned JWT with the given claims payload.
func forgeToken(t *testing.T, claims map[string]any) string {
	t.Helper()
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	payload, err := json.Marshal(claims)
	if err != nil {
		t.Fatalf("marshal claims: %v", err)
	}
	body := base64.RawURLEncoding.EncodeToString(payload)
	return header + "." + body + ".sig"
}

func TestGate_DecisionTable(t *testing.T) {
	now := time.Now()
	future := now.Add(time.Hour).Unix()

	tests := []struct {
		name     string
		cred     *Credential
		required string
		want     Outcome
		wantRole string
	}{
		{
			name:     "absent token redirects to login",
			cred:     nil,
			required: RoleStudent,
			want:     RedirectLogin,
			wantRole: RoleStudent,
		},
		{
			name:     "token without user redirects to login",
			cred:     &Credential{Token: "sometoken"},
			required: RoleTeacher,
			want:     RedirectLogin,
			wantRole: RoleTeacher,
		},
		{
			name: "role mismatch redirects to own landing view",
			cred: &Credential{
				Token: "sometoken",
				User:  &User{Role: RoleStudent},
			},
			required: RoleTeacher,
			want:     RedirectHome,
			wantRole: RoleStudent,
		},
		{
			name: "matching role with valid expiry allows",
			cred: &Credential{
				Token: "", // replaced below
				User:  &User{Role: RoleStudent},
			},
			required: RoleStudent,
			want:     Allow,
			wantRole: RoleStudent,
		},
		{
			name: "no required role allows any authenticated user",
			cred: &Credential{
				Token: "not-a-jwt",
				User:  &User{Role: RoleTeacher},
			},
			required: "",
			want:     Allow,
			wantRole: RoleTeacher,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.cred != nil && tt.cred.Token == "" {
				tt.cred.Token = forgeToken(t, map[string]any{"role": tt.cred.User.Role, "exp": future})
			}
			gate := NewGate(&memStore{cred: tt.cred})
			d := gate.Check(tt.required, now)
			if d.Outcome != tt.want {
				t.Errorf("outcome = %v, want %v", d.Outcome, tt.want)
			}
			if d.Role != tt.wantRole {
				t.Errorf("role = %q, want %q", d.Role, tt.wantRole)
			}
		})
	}
}

func TestGate_ExpiredTokenClearsAndRedirects(t *testing.T) {
	// exp=1 (epoch) is always in the past.
	token := forgeToken(t, map[string]any{"role": RoleStudent, "exp": 1})
	store := &memStore{cred: &Credential{Token: token, User: &User{Role: RoleStudent}}}
	gate := NewGate(store)

	d := gate.Check(RoleStudent, time.Now())
	if d.Outcome != RedirectLogin {
		t.Fatalf("outcome = %v, want RedirectLogin", d.Outcome)
	}
	if !store.cleared {
		t.Error("expired credential was not cleared")
	}
	if store.cred != nil {
		t.Error("credential still present after expiry")
	}
}

func TestGate_UnreadableClaimsDoNotBlock(t *testing.T) {
	// Token with a garbage payload segment decodes to empty claims:
	// no expiry means access is not blocked on that basis.
	store := &memStore{cred: &Credential{
		Token: "xx.not-base64!.yy",
		User:  &User{Role: RoleStudent},
	}}
	gate := NewGate(store)

	d := gate.Check(RoleStudent, time.Now())
	if d.Outcome != Allow {
		t.Errorf("outcome = %v, want Allow", d.Outcome)
	}
}

func TestDecodeClaims(t *testing.T) {
	token := forgeToken(t, map[string]any{"role": "teacher", "exp": 1234567890})
	c := DecodeClaims(token)
	if c.Role != "teacher" {
		t.Errorf("role = %q, want teacher", c.Role)
	}
	if c.Exp != 1234567890 {
		t.Errorf("exp = %d, want 1234567890", c.Exp)
	}

	empty := DecodeClaims("not a token")
	if empty.Role != "" || empty.Exp != 0 {
		t.Errorf("malformed token should decode to empty claims, got %+v", empty)
	}
}
