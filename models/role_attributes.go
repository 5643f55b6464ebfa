package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// RoleAttributes is the role-specific part of an account profile. Each known
// role has its own strongly typed record; [NoAttributes] is used for roles the
// portal does not know about.
type RoleAttributes interface {
	// Role returns the role the record belongs to.
	Role() Role

	// Fields returns the non-empty attributes keyed by their document names.
	Fields() map[string]string
}

// AshaAttributes are collected for ASHA (community health) workers.
type AshaAttributes struct {
	Name        string `json:"name,omitempty"`
	Mobile      string `json:"mobile,omitempty"`
	Email       string `json:"email,omitempty"`
	AshaID      string `json:"ashaId,omitempty"`
	District    string `json:"district,omitempty"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
}

func (a AshaAttributes) Role() Role { return RoleAsha }

func (a AshaAttributes) Fields() map[string]string {
	return collectFields(map[string]string{
		"name":        a.Name,
		"mobile":      a.Mobile,
		"email":       a.Email,
		"ashaId":      a.AshaID,
		"district":    a.District,
		"dateOfBirth": a.DateOfBirth,
	})
}

// VolunteerAttributes are collected for volunteers.
type VolunteerAttributes struct {
	Name            string `json:"name,omitempty"`
	Mobile          string `json:"mobile,omitempty"`
	Email           string `json:"email,omitempty"`
	EmergencyName   string `json:"emergencyName,omitempty"`
	EmergencyNumber string `json:"emergencyNumber,omitempty"`
	Address         string `json:"address,omitempty"`
	City            string `json:"city,omitempty"`
	State           string `json:"state,omitempty"`
	Pincode         string `json:"pincode,omitempty"`
	Aadhaar         string `json:"aadhaar,omitempty"`
	Skills          string `json:"skills,omitempty"`
	Availability    string `json:"availability,omitempty"`
	DateOfBirth     string `json:"dateOfBirth,omitempty"`
}

func (v VolunteerAttributes) Role() Role { return RoleVolunteer }

func (v VolunteerAttributes) Fields() map[string]string {
	return collectFields(map[string]string{
		"name":            v.Name,
		"mobile":          v.Mobile,
		"email":           v.Email,
		"emergencyName":   v.EmergencyName,
		"emergencyNumber": v.EmergencyNumber,
		"address":         v.Address,
		"city":            v.City,
		"state":           v.State,
		"pincode":         v.Pincode,
		"aadhaar":         v.Aadhaar,
		"skills":          v.Skills,
		"availability":    v.Availability,
		"dateOfBirth":     v.DateOfBirth,
	})
}

// AdminAttributes are collected for portal administrators. The registration
// form also sends an administrative "role" title; it is not stored because it
// would shadow the account role.
type AdminAttributes struct {
	Name       string `json:"name,omitempty"`
	EmployeeID string `json:"employeeId,omitempty"`
	Department string `json:"department,omitempty"`
	WorkEmail  string `json:"workEmail,omitempty"`
	WorkPhone  string `json:"workPhone,omitempty"`
}

func (a AdminAttributes) Role() Role { return RoleAdmin }

func (a AdminAttributes) Fields() map[string]string {
	return collectFields(map[string]string{
		"name":       a.Name,
		"employeeId": a.EmployeeID,
		"department": a.Department,
		"workEmail":  a.WorkEmail,
		"workPhone":  a.WorkPhone,
	})
}

// HospitalAttributes are collected for hospital accounts.
type HospitalAttributes struct {
	HospitalName  string `json:"hospitalName,omitempty"`
	ContactPerson string `json:"contactPerson,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Email         string `json:"email,omitempty"`
	Address       string `json:"address,omitempty"`
}

func (h HospitalAttributes) Role() Role { return RoleHospital }

func (h HospitalAttributes) Fields() map[string]string {
	return collectFields(map[string]string{
		"hospitalName":  h.HospitalName,
		"contactPerson": h.ContactPerson,
		"phone":         h.Phone,
		"email":         h.Email,
		"address":       h.Address,
	})
}

// NoAttributes is the empty record used for roles without a known profile.
type NoAttributes struct {
	role Role
}

func (n NoAttributes) Role() Role { return n.role }

func (n NoAttributes) Fields() map[string]string { return map[string]string{} }

// NewRoleAttributes decodes the attribute record matching role from raw JSON.
// Unknown keys are ignored, so raw may be a whole request body or a whole
// stored document. An unknown role yields [NoAttributes] without inspecting raw.
func NewRoleAttributes(role Role, raw []byte) (RoleAttributes, error) {
	var attributes RoleAttributes
	var err error

	switch role {
	case RoleAsha:
		attributes, err = decodeAttributes[AshaAttributes](raw)
	case RoleVolunteer:
		attributes, err = decodeAttributes[VolunteerAttributes](raw)
	case RoleAdmin:
		attributes, err = decodeAttributes[AdminAttributes](raw)
	case RoleHospital:
		attributes, err = decodeAttributes[HospitalAttributes](raw)
	default:
		return NoAttributes{role: role}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("error decoding %s attributes: %w", role, err)
	}

	return attributes, nil
}

func decodeAttributes[T RoleAttributes](raw []byte) (RoleAttributes, error) {
	var attributes T
	if len(raw) == 0 {
		return attributes, nil
	}

	normalized, err := scalarsAsText(raw)
	if err != nil {
		return nil, err
	}

	if err = json.Unmarshal(normalized, &attributes); err != nil {
		return nil, err
	}

	return attributes, nil
}

// scalarsAsText rewrites number and boolean members of the JSON object raw as
// strings holding their literal text, so {"pincode":560001} decodes like
// {"pincode":"560001"}. Objects and arrays are left alone.
func scalarsAsText(raw []byte) ([]byte, error) {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(raw, &members); err != nil {
		return nil, err
	}

	for key, value := range members {
		value = bytes.TrimSpace(value)
		if len(value) == 0 {
			continue
		}
		if c := value[0]; c == '-' || (c >= '0' && c <= '9') || c == 't' || c == 'f' {
			quoted, err := json.Marshal(string(value))
			if err != nil {
				return nil, err
			}
			members[key] = quoted
		}
	}

	return json.Marshal(members)
}

func collectFields(all map[string]string) map[string]string {
	for key, value := range all {
		if value == "" {
			delete(all, key)
		}
	}

	return all
}
