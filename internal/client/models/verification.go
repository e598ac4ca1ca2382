package models

// OTPRequest asks the backend to text a code to Phone.
type OTPRequest struct {
	Phone string `json:"phone"`
}

// OTPVerify submits the code received by text.
type OTPVerify struct {
	OTP string `json:"otp"`
}

// DocumentUpload holds the identity documents individuals submit.
type DocumentUpload struct {
	CIPDocument    Photo
	ResidenceProof Photo
}

// ProfessionalData is the professional verification form of collectors
// and recyclers.
type ProfessionalData struct {
	Type              Role
	Entreprise        string
	IFU               string
	RCCM              string
	EmailEntreprise   string
	AdresseEntreprise string
	TypeDechets       string
	NbreEquipe        int
	ZonesIntervention []string
	PreuveImpot       Photo
}
