package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// NewRoleAttributes
// ─────────────────────────────────────────────

func TestNewRoleAttributes_Asha(t *testing.T) {
	raw := []byte(`{"username":"asha1","password":"p","role":"asha","name":"A","mobile":"9","ashaId":"X1","district":"D"}`)

	attrs, err := NewRoleAttributes(RoleAsha, raw)
	require.NoError(t, err)

	asha, ok := attrs.(AshaAttributes)
	require.True(t, ok)
	assert.Equal(t, "A", asha.Name)
	assert.Equal(t, "X1", asha.AshaID)
	assert.Equal(t, RoleAsha, attrs.Role())
	assert.Equal(t, map[string]string{"name": "A", "mobile": "9", "ashaId": "X1", "district": "D"}, attrs.Fields())
}

func TestNewRoleAttributes_VolunteerIgnoresForeignKeys(t *testing.T) {
	raw := []byte(`{"name":"V","skills":"first aid","hospitalName":"ignored"}`)

	attrs, err := NewRoleAttributes(RoleVolunteer, raw)
	require.NoError(t, err)

	fields := attrs.Fields()
	assert.Equal(t, "first aid", fields["skills"])
	assert.NotContains(t, fields, "hospitalName")
}

func TestNewRoleAttributes_AdminDoesNotShadowAccountRole(t *testing.T) {
	raw := []byte(`{"role":"admin","name":"Boss","department":"Health"}`)

	attrs, err := NewRoleAttributes(RoleAdmin, raw)
	require.NoError(t, err)

	assert.NotContains(t, attrs.Fields(), "role")
	assert.Equal(t, "Health", attrs.Fields()["department"])
}

func TestNewRoleAttributes_Hospital(t *testing.T) {
	raw := []byte(`{"hospitalName":"City","contactPerson":"Dr","phone":"1"}`)

	attrs, err := NewRoleAttributes(RoleHospital, raw)
	require.NoError(t, err)

	assert.Equal(t, HospitalAttributes{HospitalName: "City", ContactPerson: "Dr", Phone: "1"}, attrs)
}

func TestNewRoleAttributes_UnknownRoleHasNoAttributes(t *testing.T) {
	attrs, err := NewRoleAttributes(Role("patient"), []byte(`{"name":"ignored"}`))
	require.NoError(t, err)

	assert.Equal(t, Role("patient"), attrs.Role())
	assert.Empty(t, attrs.Fields())
}

func TestNewRoleAttributes_EmptyRaw(t *testing.T) {
	attrs, err := NewRoleAttributes(RoleAsha, nil)
	require.NoError(t, err)

	assert.Empty(t, attrs.Fields())
}

func TestNewRoleAttributes_ScalarsBecomeText(t *testing.T) {
	raw := []byte(`{"role":"volunteer","pincode":560001,"mobile":-9.5e2,"availability":true,"skills":false,"city":null}`)

	attrs, err := NewRoleAttributes(RoleVolunteer, raw)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"pincode":      "560001",
		"mobile":       "-9.5e2",
		"availability": "true",
		"skills":       "false",
	}, attrs.Fields())
}

func TestNewRoleAttributes_NestedValueRejected(t *testing.T) {
	for _, raw := range []string{`{"mobile":{"n":1}}`, `{"mobile":[1]}`, `[1]`} {
		_, err := NewRoleAttributes(RoleAsha, []byte(raw))
		require.Error(t, err, raw)
	}
}

// ─────────────────────────────────────────────
// User.Public
// ─────────────────────────────────────────────

func TestUserPublic_StripsPasswordHash(t *testing.T) {
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	user := User{
		ID:           "1",
		Username:     "asha1",
		PasswordHash: "$2b$12$secret",
		Role:         RoleAsha,
		Status:       StatusActive,
		CreatedAt:    created,
		Attributes:   AshaAttributes{Name: "A"},
	}

	view := user.Public()

	assert.Equal(t, "1", view["id"])
	assert.Equal(t, "asha1", view["username"])
	assert.Equal(t, "A", view["name"])
	assert.Equal(t, "2026-01-02T03:04:05Z", view["created_at"])
	for _, value := range view {
		assert.NotEqual(t, user.PasswordHash, value)
	}
	assert.NotContains(t, view, "password")
}

func TestUserPublic_CommonFieldsWinOverAttributes(t *testing.T) {
	user := User{ID: "7", Username: "u", Role: "x", Attributes: NoAttributes{role: "x"}}

	view := user.Public()

	assert.Equal(t, "7", view["id"])
	assert.Equal(t, Role("x"), view["role"])
}

func TestSession_Expired(t *testing.T) {
	now := time.Now()
	s := Session{ExpiresAt: now}

	assert.True(t, s.Expired(now))
	assert.False(t, s.Expired(now.Add(-time.Second)))
}
