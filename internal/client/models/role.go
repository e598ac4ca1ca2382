package models

import "fmt"

// Role is the closed set of account types the backend knows about.
type Role string

const (
	RoleIndividual Role = "particulier"
	RoleBusiness   Role = "entreprise"
	RoleCollector  Role = "collecteur"
	RoleRecycler   Role = "recycleur"
	RoleAdmin      Role = "admin"
)

// Roles lists every role in display order.
var Roles = []Role{RoleIndividual, RoleBusiness, RoleCollector, RoleRecycler, RoleAdmin}

// ParseRole validates s against the known role tags.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

func (r Role) Valid() bool {
	switch r {
	case RoleIndividual, RoleBusiness, RoleCollector, RoleRecycler, RoleAdmin:
		return true
	}
	return false
}

// SelfRegistrable reports whether users may pick this role at sign-up.
func (r Role) SelfRegistrable() bool {
	switch r {
	case RoleIndividual, RoleBusiness, RoleCollector, RoleRecycler:
		return true
	case RoleAdmin:
		return false
	}
	return false
}

// RequiresDocuments reports whether identity documents (CIP and proof of
// residence) are part of this role's verification.
func (r Role) RequiresDocuments() bool {
	switch r {
	case RoleIndividual:
		return true
	case RoleBusiness, RoleCollector, RoleRecycler, RoleAdmin:
		return false
	}
	return false
}

// RequiresProfessionalVerification reports whether the role must submit
// professional credentials and wait for a validated review.
func (r Role) RequiresProfessionalVerification() bool {
	switch r {
	case RoleCollector, RoleRecycler:
		return true
	case RoleIndividual, RoleBusiness, RoleAdmin:
		return false
	}
	return false
}

// Label is the human name shown in the CLI.
func (r Role) Label() string {
	switch r {
	case RoleIndividual:
		return "Particulier"
	case RoleBusiness:
		return "Entreprise"
	case RoleCollector:
		return "Collecteur"
	case RoleRecycler:
		return "Recycleur"
	case RoleAdmin:
		return "Administrateur"
	}
	return string(r)
}

// Section is a block of the home screen.
type Section string

const (
	SectionPhoneVerification        Section = "phone-verification"
	SectionDocumentVerification     Section = "document-verification"
	SectionProfessionalVerification Section = "professional-verification"
	SectionAccountStatus            Section = "account-status"
	SectionDeclareWaste             Section = "declare-waste"
	SectionMissions                 Section = "missions"
	SectionAvailableWaste           Section = "available-waste"
	SectionPoints                   Section = "points"
)

// HomeSections returns the home screen blocks for the role, in order.
func (r Role) HomeSections() []Section {
	switch r {
	case RoleIndividual:
		return []Section{SectionPhoneVerification, SectionDocumentVerification, SectionAccountStatus, SectionDeclareWaste, SectionPoints}
	case RoleBusiness:
		return []Section{SectionPhoneVerification, SectionAccountStatus, SectionDeclareWaste, SectionPoints}
	case RoleCollector:
		return []Section{SectionPhoneVerification, SectionProfessionalVerification, SectionAccountStatus, SectionMissions, SectionPoints}
	case RoleRecycler:
		return []Section{SectionPhoneVerification, SectionProfessionalVerification, SectionAccountStatus, SectionAvailableWaste, SectionPoints}
	case RoleAdmin:
		return []Section{SectionAccountStatus}
	}
	return nil
}

// Tab is an entry of the main navigation.
type Tab struct {
	Name  string
	Title string
}

// Tabs returns the navigation entries for the role. The "waste" and
// "history" tabs change meaning with the role.
func (r Role) Tabs() []Tab {
	home := Tab{Name: "home", Title: "Accueil"}
	profile := Tab{Name: "profile", Title: "Profil"}

	switch r {
	case RoleIndividual, RoleBusiness:
		return []Tab{home, {Name: "waste", Title: "Déclarer"}, {Name: "history", Title: "Historique"}, profile}
	case RoleCollector:
		return []Tab{home, {Name: "waste", Title: "Missions"}, {Name: "history", Title: "Historique"}, {Name: "schedule", Title: "Horaires"}, profile}
	case RoleRecycler:
		return []Tab{home, {Name: "waste", Title: "Déchets"}, {Name: "history", Title: "Rendez-vous"}, profile}
	case RoleAdmin:
		return []Tab{home, profile}
	}
	return []Tab{home, profile}
}

// DeclaresWaste reports whether the role declares waste for pickup.
func (r Role) DeclaresWaste() bool {
	switch r {
	case RoleIndividual, RoleBusiness:
		return true
	case RoleCollector, RoleRecycler, RoleAdmin:
		return false
	}
	return false
}

// CollectsWaste reports whether the role runs collection missions.
func (r Role) CollectsWaste() bool {
	switch r {
	case RoleCollector:
		return true
	case RoleIndividual, RoleBusiness, RoleRecycler, RoleAdmin:
		return false
	}
	return false
}

// RecyclesWaste reports whether the role browses collected waste and books
// pickups.
func (r Role) RecyclesWaste() bool {
	switch r {
	case RoleRecycler:
		return true
	case RoleIndividual, RoleBusiness, RoleCollector, RoleAdmin:
		return false
	}
	return false
}
