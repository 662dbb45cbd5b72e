package service

import (
	"sync"
)

// AuthService gates the admin panel. Admin access is granted per chat
// for the lifetime of the process; nothing about it is persisted.
type AuthService struct {
	adminPassword string

	mu     sync.RWMutex
	admins map[int64]bool
}

// NewAuthService creates a new auth service
func NewAuthService(adminPassword string) *AuthService {
	return &AuthService{
		adminPassword: adminPassword,
		admins:        make(map[int64]bool),
	}
}

// CheckPassword verifies if provided password matches
func (s *AuthService) CheckPassword(password string) bool {
	return password == s.adminPassword
}

// IsAdmin reports whether the chat has unlocked the admin panel.
func (s *AuthService) IsAdmin(chatID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.admins[chatID]
}

// GrantAdmin unlocks the admin panel for the chat.
func (s *AuthService) GrantAdmin(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.admins[chatID] = true
}
