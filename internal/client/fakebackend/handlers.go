package fakebackend

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/dmitrijs2005/ecocollect/internal/client/models"
	"github.com/dmitrijs2005/ecocollect/internal/common"
)

func decode(r *http.Request, v any) bool {
	return json.NewDecoder(r.Body).Decode(v) == nil
}

func (b *Backend) login(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if !decode(r, &creds) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "malformed request"})
		return
	}
	if creds.Email == "" {
		fieldError(w, "email", "this field is required")
		return
	}
	if creds.Password == "" {
		fieldError(w, "password", "this field is required")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	a, ok := b.accounts[creds.Email]
	if !ok || a.password != creds.Password {
		fieldError(w, "non_field_errors", "Unable to log in with provided credentials.")
		return
	}

	token := b.NextToken
	b.NextToken = ""
	if token == "" {
		token, _ = common.MakeRandHexString(20)
	}
	b.tokens[token] = creds.Email
	writeJSON(w, http.StatusOK, models.AuthTokens{AuthToken: token})
}

func (b *Backend) register(w http.ResponseWriter, r *http.Request) {
	var data models.RegisterData
	if !decode(r, &data) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "malformed request"})
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.accounts[data.Email]; exists {
		fieldError(w, "email", "user with this email already exists.")
		return
	}
	u := models.User{ID: b.id(), Username: data.Username, Email: data.Email, Type: data.Type, Location: data.Location, IsActive: true}
	b.accounts[data.Email] = &account{password: data.Password, user: u}
	writeJSON(w, http.StatusCreated, u)
}

func (b *Backend) me(w http.ResponseWriter, _ *http.Request, a *account) {
	b.mu.Lock()
	u := a.user
	b.mu.Unlock()
	writeJSON(w, http.StatusOK, u)
}

func (b *Backend) patchMe(w http.ResponseWriter, r *http.Request, a *account) {
	var update models.ProfileUpdate
	if !decode(r, &update) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "malformed request"})
		return
	}

	b.mu.Lock()
	if update.Username != nil {
		a.user.Username = *update.Username
	}
	if update.Phone != nil {
		a.user.Phone = *update.Phone
	}
	if update.Location != nil {
		a.user.Location = *update.Location
	}
	u := a.user
	b.mu.Unlock()
	writeJSON(w, http.StatusOK, u)
}

func (b *Backend) updateLocation(w http.ResponseWriter, r *http.Request, a *account) {
	var body struct {
		LocationGPS string `json:"location_gps"`
	}
	if !decode(r, &body) || !strings.Contains(body.LocationGPS, ",") {
		fieldError(w, "location_gps", "invalid coordinates")
		return
	}

	b.mu.Lock()
	a.user.LocationGPS = body.LocationGPS
	u := a.user
	b.mu.Unlock()
	writeJSON(w, http.StatusOK, u)
}

func (b *Backend) requestOTP(w http.ResponseWriter, r *http.Request, a *account) {
	var req models.OTPRequest
	if !decode(r, &req) || req.Phone == "" {
		fieldError(w, "phone", "this field is required")
		return
	}

	b.mu.Lock()
	b.phones[a.user.Email] = req.Phone
	b.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]string{"detail": "OTP sent"})
}

func (b *Backend) verifyPhone(w http.ResponseWriter, r *http.Request, a *account) {
	var req models.OTPVerify
	if !decode(r, &req) {
		fieldError(w, "otp", "this field is required")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	phone, requested := b.phones[a.user.Email]
	if !requested || req.OTP != OTP {
		fieldError(w, "otp", "invalid code")
		return
	}
	a.user.Phone = phone
	a.user.PhoneVerified = true
	writeJSON(w, http.StatusOK, map[string]string{"detail": "phone verified"})
}

func (b *Backend) uploadDocuments(w http.ResponseWriter, r *http.Request, a *account) {
	if r.MultipartForm == nil || len(r.MultipartForm.File["cip_document"]) == 0 || len(r.MultipartForm.File["residence_proof"]) == 0 {
		fieldError(w, "cip_document", "both documents are required")
		return
	}

	b.mu.Lock()
	a.user.DocumentsUploaded = true
	a.user.VerificationStatus = "en attente"
	b.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]string{"detail": "documents uploaded"})
}

func (b *Backend) professional(w http.ResponseWriter, r *http.Request, a *account) {
	if r.MultipartForm == nil || r.MultipartForm.Value["ifu"] == nil {
		fieldError(w, "ifu", "this field is required")
		return
	}

	b.mu.Lock()
	a.user.ProVerificationSubmitted = true
	a.user.ProVerificationStatus = "en attente"
	a.user.VerificationStatus = "en attente"
	b.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]string{"detail": "submitted"})
}

func (b *Backend) availability(w http.ResponseWriter, r *http.Request, a *account) {
	var body models.CollectorAvailability
	if !decode(r, &body) {
		fieldError(w, "is_available", "must be a boolean")
		return
	}

	b.mu.Lock()
	if body.IsAvailable {
		a.user.Availability = models.Available
	} else {
		a.user.Availability = models.Unavailable
	}
	b.mu.Unlock()
	writeJSON(w, http.StatusOK, body)
}

func (b *Backend) listWaste(w http.ResponseWriter, _ *http.Request, a *account) {
	b.mu.Lock()
	out := []models.WasteDeclaration{}
	for _, item := range b.Waste {
		if item.User == a.user.ID {
			out = append(out, item)
		}
	}
	b.mu.Unlock()
	writeJSON(w, http.StatusOK, out)
}

func (b *Backend) createWaste(w http.ResponseWriter, r *http.Request, a *account) {
	if r.MultipartForm == nil {
		fieldError(w, "category", "this field is required")
		return
	}
	form := r.MultipartForm.Value
	first := func(k string) string {
		if v := form[k]; len(v) > 0 {
			return v[0]
		}
		return ""
	}

	weight, err := decimal.NewFromString(first("weight"))
	if err != nil {
		fieldError(w, "weight", "a valid number is required")
		return
	}

	b.mu.Lock()
	item := models.WasteDeclaration{
		ID:        b.id(),
		Category:  models.WasteCategory(first("category")),
		Weight:    weight,
		Location:  first("location"),
		Status:    models.WasteStatusPending,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
		User:      a.user.ID,
	}
	if files := r.MultipartForm.File["photo"]; len(files) > 0 {
		item.Photo = "/media/waste/" + files[0].Filename
	}
	b.Waste = append(b.Waste, item)
	b.mu.Unlock()

	writeJSON(w, http.StatusCreated, item)
}

func pathID(r *http.Request) int64 {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	return id
}

func (b *Backend) getWaste(w http.ResponseWriter, r *http.Request, _ *account) {
	id := pathID(r)

	b.mu.Lock()
	defer b.mu.Unlock()
	for _, item := range append(append([]models.WasteDeclaration(nil), b.Waste...), b.Available...) {
		if item.ID == id {
			writeJSON(w, http.StatusOK, item)
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Not found."})
}

func (b *Backend) available(w http.ResponseWriter, r *http.Request, _ *account) {
	category := r.URL.Query().Get("category")

	b.mu.Lock()
	out := []models.WasteDeclaration{}
	for _, item := range b.Available {
		if category == "" || string(item.Category) == category {
			out = append(out, item)
		}
	}
	b.mu.Unlock()
	writeJSON(w, http.StatusOK, out)
}

func (b *Backend) missions(w http.ResponseWriter, r *http.Request, _ *account) {
	status := r.URL.Query().Get("status")

	b.mu.Lock()
	out := []models.Mission{}
	for _, m := range b.Missions {
		if status == "" || m.Status == status {
			out = append(out, m)
		}
	}
	b.mu.Unlock()
	writeJSON(w, http.StatusOK, out)
}

var missionTransitions = map[string]struct{ from, to string }{
	"accept_mission": {models.MissionPending, models.MissionAccepted},
	"reject_mission": {models.MissionPending, models.MissionRejected},
	"mark_collected": {models.MissionAccepted, models.MissionCollected},
}

func (b *Backend) missionAction(w http.ResponseWriter, r *http.Request, _ *account) {
	id := pathID(r)
	t := missionTransitions[mux.Vars(r)["action"]]

	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.Missions {
		if b.Missions[i].ID != id {
			continue
		}
		if b.Missions[i].Status != t.from {
			writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "mission is " + b.Missions[i].Status})
			return
		}
		b.Missions[i].Status = t.to
		writeJSON(w, http.StatusOK, b.Missions[i])
		return
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Not found."})
}

func (b *Backend) markAllCollected(w http.ResponseWriter, _ *http.Request, _ *account) {
	b.mu.Lock()
	n := 0
	for i := range b.Missions {
		if b.Missions[i].Status == models.MissionAccepted {
			b.Missions[i].Status = models.MissionCollected
			n++
		}
	}
	b.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]int{"updated": n})
}

func (b *Backend) listSchedules(w http.ResponseWriter, _ *http.Request, _ *account) {
	b.mu.Lock()
	out := append([]models.Schedule{}, b.Schedules...)
	b.mu.Unlock()
	writeJSON(w, http.StatusOK, out)
}

func (b *Backend) addSchedule(w http.ResponseWriter, r *http.Request, _ *account) {
	var s models.Schedule
	if !decode(r, &s) || s.Zone == "" {
		fieldError(w, "zone", "this field is required")
		return
	}

	b.mu.Lock()
	s.ID = b.id()
	b.Schedules = append(b.Schedules, s)
	b.mu.Unlock()
	writeJSON(w, http.StatusCreated, s)
}

func (b *Backend) updateSchedule(w http.ResponseWriter, r *http.Request, _ *account) {
	id := pathID(r)
	var s models.Schedule
	if !decode(r, &s) {
		fieldError(w, "zone", "this field is required")
		return
	}
	s.ID = id

	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.Schedules {
		if b.Schedules[i].ID == id {
			b.Schedules[i] = s
			writeJSON(w, http.StatusOK, s)
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Not found."})
}

func (b *Backend) deleteSchedule(w http.ResponseWriter, r *http.Request, _ *account) {
	id := pathID(r)

	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.Schedules {
		if b.Schedules[i].ID == id {
			b.Schedules = append(b.Schedules[:i], b.Schedules[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Not found."})
}
