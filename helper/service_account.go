package helper

import (
	"context"
	"fmt"
	"sync"
	"time"

	"cinema_console/client"
	"cinema_console/model"
)

// ServiceAccount logs in with configured credentials for background jobs
// and keeps the token until shortly before it expires.
type ServiceAccount struct {
	api        *client.Client
	employeeNo string
	password   string

	mu      sync.Mutex
	token   string
	expires time.Time
}

func NewServiceAccount(api *client.Client, employeeNo, password string) *ServiceAccount {
	return &ServiceAccount{api: api, employeeNo: employeeNo, password: password}
}

func (s *ServiceAccount) Client(ctx context.Context) (*client.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token != "" && time.Until(s.expires) > time.Minute {
		return s.api.WithToken(s.token), nil
	}
	auth, err := s.api.Login(ctx, &model.LoginInput{EmployeeNo: s.employeeNo, Password: s.password})
	if err != nil {
		return nil, fmt.Errorf("service login: %w", err)
	}
	exp, err := TokenExpiry(auth.Token)
	if err != nil {
		exp = time.Now().Add(30 * time.Minute)
	}
	s.token, s.expires = auth.Token, exp
	return s.api.WithToken(s.token), nil
}

// Invalidate drops the cached token after the API rejected it, so the next
// Client call logs in again.
func (s *ServiceAccount) Invalidate() {
	s.mu.Lock()
	s.token, s.expires = "", time.Time{}
	s.mu.Unlock()
}
