package client

import (
	"context"

	"github.com/dmitrijs2005/ecocollect/internal/client/models"
)

// Client is the backend contract. Every method either returns the parsed
// response or an error; see the package documentation for error classes.
type Client interface {
	Login(ctx context.Context, creds models.Credentials) (*models.AuthTokens, error)
	Register(ctx context.Context, data models.RegisterData) error
	CurrentUser(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (*models.User, error)
	UpdateLocation(ctx context.Context, loc models.LocationUpdate) (*models.User, error)

	RequestOTP(ctx context.Context, req models.OTPRequest) error
	VerifyOTP(ctx context.Context, req models.OTPVerify) error
	UploadDocuments(ctx context.Context, docs models.DocumentUpload) error
	SubmitProfessionalVerification(ctx context.Context, data models.ProfessionalData) error

	SubmitWaste(ctx context.Context, data models.WasteData) (*models.WasteDeclaration, error)
	ListMyWaste(ctx context.Context) ([]models.WasteDeclaration, error)
	GetWaste(ctx context.Context, id int64) (*models.WasteDeclaration, error)
	ListAvailableWaste(ctx context.Context, filters models.WasteFilters) ([]models.WasteDeclaration, error)

	SetCollectorAvailability(ctx context.Context, available bool) error
	ListMissions(ctx context.Context, filters models.MissionFilters) ([]models.Mission, error)
	AcceptMission(ctx context.Context, id int64) error
	RejectMission(ctx context.Context, id int64) error
	MarkCollected(ctx context.Context, id int64) error
	MarkAllCollected(ctx context.Context) error

	ListSchedules(ctx context.Context) ([]models.Schedule, error)
	AddSchedule(ctx context.Context, s models.Schedule) (*models.Schedule, error)
	UpdateSchedule(ctx context.Context, s models.Schedule) (*models.Schedule, error)
	DeleteSchedule(ctx context.Context, id int64) error
}
