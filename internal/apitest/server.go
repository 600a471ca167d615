// Package apitest runs an in-process job-board backend for tests. It stands
// in for the hosted API the client talks to in production: JWT bearer
// sessions, bcrypt-hashed accounts, and the JSON error envelope
// {"message": "..."} on every failure.
package apitest

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = time.Hour

type account struct {
	ID           int
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	Role         string
	CompanyName  string
}

type job struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Location    string `json:"location"`
	CompanyName string `json:"companyName"`
	EmployerID  int    `json:"employerId"`
	PostedAt    string `json:"postedAt"`
	Active      bool   `json:"active"`
}

type application struct {
	ID          int    `json:"id"`
	JobID       int    `json:"jobId"`
	ApplicantID int    `json:"applicantId"`
	Status      string `json:"status"`
	CoverLetter string `json:"coverLetter"`
}

// Server is the fake backend. All state is in memory and guarded by one
// mutex; good enough for test traffic.
type Server struct {
	mu       sync.Mutex
	secret   string
	accounts map[string]*account // by email
	jobs     map[int]*job
	apps     map[int]*application
	nextID   int

	httpSrv *httptest.Server
}

func New() *Server {
	s := &Server{
		secret:   "apitest-secret",
		accounts: make(map[string]*account),
		jobs:     make(map[int]*job),
		apps:     make(map[int]*application),
		nextID:   1,
	}

	e := echo.New()
	e.HideBanner = true

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.POST("/auth/register", s.register)
	e.POST("/auth/login", s.login)
	e.GET("/jobs", s.listJobs)
	e.GET("/jobs/:id", s.getJob)

	secured := e.Group("", s.requireBearer)
	secured.GET("/secure/ping", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"pong": "ok"})
	})
	secured.POST("/jobs", s.createJob)
	secured.DELETE("/jobs/:id", s.deleteJob)
	secured.POST("/applications", s.apply)
	secured.GET("/applications/mine", s.myApplications)
	secured.GET("/users/me", s.me)

	s.httpSrv = httptest.NewServer(e)
	return s
}

func (s *Server) URL() string { return s.httpSrv.URL }
func (s *Server) Close()      { s.httpSrv.Close() }

// SeedAccount registers an account directly, bypassing the HTTP surface, and
// returns its id.
func (s *Server) SeedAccount(first, last, email, password, role string) int {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.accounts[email] = &account{
		ID: id, FirstName: first, LastName: last,
		Email: email, PasswordHash: string(hash), Role: role,
	}
	return id
}

func fail(c echo.Context, status int, msg string) error {
	return c.JSON(status, map[string]string{"message": msg})
}

func (s *Server) register(c echo.Context) error {
	var req struct {
		FirstName   string `json:"firstName"`
		LastName    string `json:"lastName"`
		Email       string `json:"email"`
		Password    string `json:"password"`
		Role        string `json:"role"`
		CompanyName string `json:"companyName"`
	}
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Password == "" || req.Role == "" {
		return fail(c, http.StatusBadRequest, "missing required fields")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.accounts[req.Email]; exists {
		return fail(c, http.StatusConflict, "An account with this email already exists")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.MinCost)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "internal error")
	}
	id := s.nextID
	s.nextID++
	s.accounts[req.Email] = &account{
		ID: id, FirstName: req.FirstName, LastName: req.LastName,
		Email: req.Email, PasswordHash: string(hash),
		Role: req.Role, CompanyName: req.CompanyName,
	}
	return c.JSON(http.StatusCreated, map[string]any{"id": id})
}

func (s *Server) login(c echo.Context) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid payload")
	}

	s.mu.Lock()
	acct, ok := s.accounts[req.Email]
	s.mu.Unlock()
	if !ok || bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(req.Password)) != nil {
		return fail(c, http.StatusUnauthorized, "Invalid credentials")
	}

	claims := jwt.MapClaims{
		"sub":  strconv.Itoa(acct.ID),
		"role": acct.Role,
		"exp":  time.Now().Add(tokenTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.secret))
	if err != nil {
		return fail(c, http.StatusInternalServerError, "internal error")
	}

	// userId is deliberately a string: the hosted backend serializes numeric
	// identifiers that way and clients are expected to coerce.
	return c.JSON(http.StatusOK, map[string]any{
		"userId":    strconv.Itoa(acct.ID),
		"firstName": acct.FirstName,
		"lastName":  acct.LastName,
		"email":     acct.Email,
		"token":     token,
		"role":      acct.Role,
	})
}

// requireBearer validates the JWT and injects claims into context.
func (s *Server) requireBearer(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get("Authorization")
		if header == "" {
			return fail(c, http.StatusUnauthorized, "missing authorization header")
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return fail(c, http.StatusUnauthorized, "invalid authorization header")
		}

		claims := jwt.MapClaims{}
		tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (any, error) {
			if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
				return nil, jwt.ErrTokenSignatureInvalid
			}
			return []byte(s.secret), nil
		})
		if err != nil || !tkn.Valid {
			return fail(c, http.StatusUnauthorized, "invalid token")
		}

		sub, _ := claims["sub"].(string)
		userID, _ := strconv.Atoi(sub)
		c.Set("user_id", userID)
		c.Set("role", claims["role"])
		return next(c)
	}
}

func (s *Server) listJobs(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]*job, 0, len(s.jobs))
	for _, j := range s.jobs {
		if q := c.QueryParam("category"); q != "" && j.Category != q {
			continue
		}
		items = append(items, j)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"items": items, "total": len(items), "page": 1, "totalPages": 1,
	})
}

func (s *Server) getJob(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	s.mu.Lock()
	j, ok := s.jobs[id]
	s.mu.Unlock()
	if !ok {
		return fail(c, http.StatusNotFound, "job not found")
	}
	return c.JSON(http.StatusOK, j)
}

func (s *Server) createJob(c echo.Context) error {
	role, _ := c.Get("role").(string)
	if role != "EMPLOYER" {
		return fail(c, http.StatusForbidden, "only employers can post jobs")
	}
	var req job
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid payload")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	req.ID = s.nextID
	s.nextID++
	req.EmployerID, _ = c.Get("user_id").(int)
	req.PostedAt = time.Now().UTC().Format(time.RFC3339)
	req.Active = true
	s.jobs[req.ID] = &req
	return c.JSON(http.StatusCreated, req)
}

func (s *Server) deleteJob(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.jobs[id]; !ok {
		return fail(c, http.StatusNotFound, "job not found")
	}
	delete(s.jobs, id)
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) apply(c echo.Context) error {
	var req application
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid payload")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.jobs[req.JobID]; !ok {
		return fail(c, http.StatusNotFound, "job not found")
	}
	req.ID = s.nextID
	s.nextID++
	req.ApplicantID, _ = c.Get("user_id").(int)
	req.Status = "PENDING"
	s.apps[req.ID] = &req
	return c.JSON(http.StatusCreated, req)
}

func (s *Server) myApplications(c echo.Context) error {
	userID, _ := c.Get("user_id").(int)
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*application, 0)
	for _, a := range s.apps {
		if a.ApplicantID == userID {
			out = append(out, a)
		}
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) me(c echo.Context) error {
	userID, _ := c.Get("user_id").(int)
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, acct := range s.accounts {
		if acct.ID == userID {
			return c.JSON(http.StatusOK, map[string]any{
				"id": acct.ID, "firstName": acct.FirstName, "lastName": acct.LastName,
				"email": acct.Email, "role": acct.Role, "companyName": acct.CompanyName,
			})
		}
	}
	return fail(c, http.StatusNotFound, "user not found")
}
