// Package fakebackend is an in-process stand-in for the ecocollect REST
// backend, used by tests that need real HTTP round trips.
package fakebackend

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"github.com/gorilla/mux"

	"github.com/dmitrijs2005/ecocollect/internal/client/models"
	"github.com/dmitrijs2005/ecocollect/internal/common"
)

// OTP is the code every phone receives.
const OTP = "123456"

// Request is what the backend saw of one call.
type Request struct {
	Method        string
	Path          string
	Query         string
	Authorization string
	RequestID     string
	ContentType   string
	Fields        map[string]string
	Files         map[string]File
}

type File struct {
	Filename    string
	ContentType string
	Data        []byte
}

type account struct {
	password string
	user     models.User
}

type failure struct {
	status int
	body   string
}

// Backend holds the fake state. Fields may be seeded directly before the
// first request.
type Backend struct {
	mu sync.Mutex

	// NextToken, when set, is returned by the next successful login.
	NextToken string

	Waste     []models.WasteDeclaration
	Available []models.WasteDeclaration
	Missions  []models.Mission
	Schedules []models.Schedule

	accounts map[string]*account
	tokens   map[string]string
	phones   map[string]string
	failures map[string]failure
	requests []Request
	nextID   int64

	server *httptest.Server
}

// New starts a backend; Close stops it.
func New() *Backend {
	b := &Backend{
		accounts: make(map[string]*account),
		tokens:   make(map[string]string),
		phones:   make(map[string]string),
		failures: make(map[string]failure),
		nextID:   100,
	}
	b.server = httptest.NewServer(b.router())
	return b
}

func (b *Backend) URL() string { return b.server.URL }

func (b *Backend) Close() { b.server.Close() }

// Client is an http.Client that trusts the server.
func (b *Backend) Client() *http.Client { return b.server.Client() }

// AddUser registers an account and returns a token already bound to it.
func (b *Backend) AddUser(password string, u models.User) string {
	b.mu.Lock()
	defer b.mu.Unlock()

	if u.ID == 0 {
		u.ID = b.id()
	}
	b.accounts[u.Email] = &account{password: password, user: u}

	token, _ := common.MakeRandHexString(20)
	b.tokens[token] = u.Email
	return token
}

// User returns the current record of the account with email.
func (b *Backend) User(email string) (models.User, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	a, ok := b.accounts[email]
	if !ok {
		return models.User{}, false
	}
	return a.user, true
}

// UpdateUser edits an account in place.
func (b *Backend) UpdateUser(email string, fn func(u *models.User)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if a, ok := b.accounts[email]; ok {
		fn(&a.user)
	}
}

// RevokeTokens invalidates every issued token.
func (b *Backend) RevokeTokens() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tokens = make(map[string]string)
}

// Fail makes every call to method+path answer with status and body until
// Recover is called. path is the literal request path.
func (b *Backend) Fail(method, path string, status int, body string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures[method+" "+path] = failure{status: status, body: body}
}

func (b *Backend) Recover(method, path string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.failures, method+" "+path)
}

// Requests returns a copy of the request log.
func (b *Backend) Requests() []Request {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Request(nil), b.requests...)
}

// Last returns the most recent request to path.
func (b *Backend) Last(method, path string) (Request, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := len(b.requests) - 1; i >= 0; i-- {
		if r := b.requests[i]; r.Method == method && r.Path == path {
			return r, true
		}
	}
	return Request{}, false
}

func (b *Backend) id() int64 {
	b.nextID++
	return b.nextID
}

func (b *Backend) router() *mux.Router {
	r := mux.NewRouter()
	r.Use(b.record)

	r.HandleFunc("/auth/token/login", b.login).Methods("POST")
	r.HandleFunc("/auth/users/", b.register).Methods("POST")
	r.HandleFunc("/auth/users/me/", b.authed(b.me)).Methods("GET")
	r.HandleFunc("/auth/users/me/", b.authed(b.patchMe)).Methods("PATCH")
	r.HandleFunc("/auth/profile/update/", b.authed(b.updateLocation)).Methods("PATCH")
	r.HandleFunc("/core/request-otp/", b.authed(b.requestOTP)).Methods("POST")
	r.HandleFunc("/core/verify-phone/", b.authed(b.verifyPhone)).Methods("POST")
	r.HandleFunc("/auth/upload-verification-documents/", b.authed(b.uploadDocuments)).Methods("POST")
	r.HandleFunc("/auth/professional-verification/", b.authed(b.professional)).Methods("POST")
	r.HandleFunc("/auth/collector/availability/", b.authed(b.availability)).Methods("POST")

	r.HandleFunc("/api/waste/", b.authed(b.listWaste)).Methods("GET")
	r.HandleFunc("/api/waste/", b.authed(b.createWaste)).Methods("POST")
	r.HandleFunc("/api/waste/available/", b.authed(b.available)).Methods("GET")
	r.HandleFunc("/api/waste/my_missions/", b.authed(b.missions)).Methods("GET")
	r.HandleFunc("/api/waste/mark_all_collected/", b.authed(b.markAllCollected)).Methods("POST")
	r.HandleFunc("/api/waste/{id:[0-9]+}/", b.authed(b.getWaste)).Methods("GET")
	r.HandleFunc("/api/waste/{id:[0-9]+}/{action:accept_mission|reject_mission|mark_collected}/", b.authed(b.missionAction)).Methods("POST")

	r.HandleFunc("/api/collector-schedules/", b.authed(b.listSchedules)).Methods("GET")
	r.HandleFunc("/api/collector-schedules/", b.authed(b.addSchedule)).Methods("POST")
	r.HandleFunc("/api/collector-schedules/{id:[0-9]+}/", b.authed(b.updateSchedule)).Methods("PUT")
	r.HandleFunc("/api/collector-schedules/{id:[0-9]+}/", b.authed(b.deleteSchedule)).Methods("DELETE")
	return r
}

func (b *Backend) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req := Request{
			Method:        r.Method,
			Path:          r.URL.Path,
			Query:         r.URL.RawQuery,
			Authorization: r.Header.Get(common.AuthorizationHeaderName),
			RequestID:     r.Header.Get(common.RequestIDHeaderName),
			ContentType:   r.Header.Get("Content-Type"),
		}
		if strings.HasPrefix(req.ContentType, "multipart/form-data") {
			req.Fields, req.Files = readMultipart(r)
		}

		b.mu.Lock()
		b.requests = append(b.requests, req)
		f, failing := b.failures[r.Method+" "+r.URL.Path]
		b.mu.Unlock()

		if failing {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(f.status)
			_, _ = w.Write([]byte(f.body))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// authed resolves the token of the request to its account.
func (b *Backend) authed(h func(w http.ResponseWriter, r *http.Request, a *account)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(common.AuthorizationHeaderName)
		token, ok := strings.CutPrefix(header, common.AuthScheme+" ")

		b.mu.Lock()
		email, known := b.tokens[token]
		a := b.accounts[email]
		b.mu.Unlock()

		if !ok || !known || a == nil {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Invalid token."})
			return
		}
		h(w, r, a)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func fieldError(w http.ResponseWriter, field, msg string) {
	writeJSON(w, http.StatusBadRequest, map[string][]string{field: {msg}})
}

func readMultipart(r *http.Request) (map[string]string, map[string]File) {
	fields := map[string]string{}
	files := map[string]File{}
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		return fields, files
	}
	for k, v := range r.MultipartForm.Value {
		if len(v) > 0 {
			fields[k] = v[0]
		}
	}
	for k, headers := range r.MultipartForm.File {
		if len(headers) == 0 {
			continue
		}
		fh := headers[0]
		f, err := fh.Open()
		if err != nil {
			continue
		}
		data, _ := io.ReadAll(f)
		_ = f.Close()
		files[k] = File{Filename: fh.Filename, ContentType: fh.Header.Get("Content-Type"), Data: data}
	}
	return fields, files
}
