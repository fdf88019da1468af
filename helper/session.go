package helper

import (
	"errors"
	"fmt"
	"time"

	"cinema_console/model"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

const (
	SessionCookie = "console_session"
	anonymousTTL  = 15 * time.Minute

	keyUser    = "user"
	keyFlash   = "flash"
	keyOld     = "old"
	keyExpires = "expires"
)

var ErrSessionExpired = errors.New("session expired")

// Session is the request's view of the fiber session behind the cookie.
// User is nil until the operator logs in; anonymous sessions only carry
// flash toasts and rejected form values.
type Session struct {
	User      *model.UserAuthenticate `json:"user,omitempty"`
	Flash     []model.Toast           `json:"flash,omitempty"`
	Old       map[string]string       `json:"old,omitempty"`
	ExpiresAt time.Time               `json:"expiresAt"`

	sess   *session.Session
	rotate bool
}

func (s *Session) Authenticated() bool {
	return s.User != nil && s.User.Token != ""
}

func (s *Session) AddFlash(kind, message string) {
	s.Flash = append(s.Flash, model.Toast{Kind: kind, Message: message})
}

// PopFlash returns pending toasts and clears them.
func (s *Session) PopFlash() []model.Toast {
	out := s.Flash
	s.Flash = nil
	return out
}

// SetOld keeps rejected form values for the next form render.
func (s *Session) SetOld(values map[string]string) {
	s.Old = values
}

func (s *Session) PopOld() map[string]string {
	out := s.Old
	s.Old = nil
	return out
}

// Rotate gives the session a new id when it is saved. The old record is
// deleted from storage.
func (s *Session) Rotate() {
	s.rotate = true
}

// Logout forgets the user and rotates the id, keeping pending toasts.
func (s *Session) Logout() {
	s.User = nil
	s.ExpiresAt = time.Time{}
	s.Rotate()
}

// Sessions wraps the fiber session store holding console sessions.
type Sessions struct {
	store  *session.Store
	maxTTL time.Duration
}

// NewSessions stores sessions in storage, or in memory when storage is nil.
// Authenticated sessions live as long as their token, capped by maxTTL.
func NewSessions(storage fiber.Storage, maxTTL time.Duration, secure bool) *Sessions {
	store := session.New(session.Config{
		Expiration:     anonymousTTL,
		Storage:        storage,
		KeyLookup:      "cookie:" + SessionCookie,
		CookiePath:     "/",
		CookieSecure:   secure,
		CookieHTTPOnly: true,
		CookieSameSite: fiber.CookieSameSiteLaxMode,
	})
	store.RegisterType(model.UserAuthenticate{})
	store.RegisterType([]model.Toast{})
	store.RegisterType(map[string]string{})
	return &Sessions{store: store, maxTTL: maxTTL}
}

// Load reads the request's session. Unknown or missing cookies give a fresh
// one that is only stored if something is put in it.
func (m *Sessions) Load(c *fiber.Ctx) (*Session, error) {
	sess, err := m.store.Get(c)
	if err != nil {
		return &Session{}, fmt.Errorf("load session: %w", err)
	}
	s := &Session{sess: sess}
	if u, ok := sess.Get(keyUser).(model.UserAuthenticate); ok {
		s.User = &u
	}
	s.Flash, _ = sess.Get(keyFlash).([]model.Toast)
	s.Old, _ = sess.Get(keyOld).(map[string]string)
	if exp, ok := sess.Get(keyExpires).(int64); ok {
		s.ExpiresAt = time.Unix(exp, 0)
	}
	if s.Authenticated() && !s.ExpiresAt.IsZero() && !time.Now().Before(s.ExpiresAt) {
		s.User = nil
		s.ExpiresAt = time.Time{}
	}
	return s, nil
}

// Save writes s back and refreshes the cookie. s must not be saved twice.
func (m *Sessions) Save(s *Session) error {
	if s.sess == nil {
		return nil
	}
	ttl := anonymousTTL
	if s.Authenticated() {
		if s.ExpiresAt.IsZero() {
			t, err := SessionTTL(s.User.Token, m.maxTTL, time.Now())
			if err != nil {
				return err
			}
			s.ExpiresAt = time.Now().Add(t)
		}
		ttl = time.Until(s.ExpiresAt)
		if ttl < time.Second {
			_ = s.sess.Destroy()
			s.sess = nil
			return ErrSessionExpired
		}
	}
	if s.rotate {
		if err := s.sess.Regenerate(); err != nil {
			return fmt.Errorf("rotate session: %w", err)
		}
		s.rotate = false
	}

	if s.Authenticated() {
		s.sess.Set(keyUser, *s.User)
		s.sess.Set(keyExpires, s.ExpiresAt.Unix())
	} else {
		s.sess.Delete(keyUser)
		s.sess.Delete(keyExpires)
	}
	if len(s.Flash) > 0 {
		s.sess.Set(keyFlash, s.Flash)
	} else {
		s.sess.Delete(keyFlash)
	}
	if len(s.Old) > 0 {
		s.sess.Set(keyOld, s.Old)
	} else {
		s.sess.Delete(keyOld)
	}
	s.sess.SetExpiry(ttl)

	err := s.sess.Save()
	s.sess = nil
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Persist saves s when there is anything worth keeping. Anonymous
// visitors without toasts never get a session record.
func (m *Sessions) Persist(s *Session) error {
	if s.sess == nil {
		return nil
	}
	if s.sess.Fresh() && !s.rotate && !s.Authenticated() && len(s.Flash) == 0 && len(s.Old) == 0 {
		return nil
	}
	return m.Save(s)
}
