// Package models, uygulamanın domain modellerini (veri yapıları) tanımlar.
//
// Model nedir?
// Veritabanındaki bir tablonun Go karşılığıdır.
// Aynı zamanda API'den gelen/giden verilerin şeklini de belirler.
//
// Go'da `json:"email"` gibi tag'ler, struct field'larının JSON'a
// nasıl serialize/deserialize edileceğini belirler.
package models

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Role, panel kullanıcısının yetki seviyesini temsil eder.
// Go'da enum yoktur — typed constant'lar kullanılır.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
)

// Valid, rolün tanınan bir değer olup olmadığını kontrol eder.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleEditor
}

// UserStatus, hesabın aktiflik durumudur. Kullanıcılar asla fiziksel
// silinmez — deaktive edilir (soft delete). Böylece activity_log'daki
// kayıtlar sahipsiz kalmaz.
type UserStatus string

const (
	UserStatusActive      UserStatus = "active"
	UserStatusDeactivated UserStatus = "deactivated"
)

// User, bir panel kullanıcısını temsil eder.
type User struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	Name         string     `json:"name"`
	PasswordHash string     `json:"-"` // json:"-" → API response'a DAHİL ETME (güvenlik!)
	Role         Role       `json:"role"`
	Status       UserStatus `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	LastLogin    *time.Time `json:"last_login"` // *time.Time = nullable — hiç giriş yapmamış olabilir
}

// IsActive, hesabın giriş yapabilir durumda olup olmadığını döner.
func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}

// LoginRequest, giriş yaparken frontend'den gelen veri.
// Remember true ise oturum uzun pencere ile açılır.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Remember bool   `json:"remember"`
}

// Validate, LoginRequest'in geçerli olup olmadığını kontrol eder.
func (r *LoginRequest) Validate() error {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	if r.Email == "" {
		return fmt.Errorf("email is required")
	}
	if r.Password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}

// CreateUserRequest, yeni kullanıcı oluştururken gelen veri.
// PasswordHash yerine Password alırız — hash'leme service katmanında yapılır.
type CreateUserRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// Validate, CreateUserRequest'in geçerli olup olmadığını kontrol eder.
func (r *CreateUserRequest) Validate() error {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	if r.Email == "" || !strings.Contains(r.Email, "@") {
		return fmt.Errorf("a valid email is required")
	}

	r.Name = strings.TrimSpace(r.Name)
	nameLen := utf8.RuneCountInString(r.Name)
	if nameLen < 2 || nameLen > 64 {
		return fmt.Errorf("name must be between 2 and 64 characters")
	}

	if utf8.RuneCountInString(r.Password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}

	if r.Role == "" {
		r.Role = RoleEditor
	}
	if !r.Role.Valid() {
		return fmt.Errorf("role must be admin or editor")
	}

	return nil
}

// UpdateUserRequest, kullanıcı güncellemesi için.
// Pointer field'lar "gönderilmedi" ile "boş gönderildi"yi ayırt eder —
// nil olan alanlara dokunulmaz.
type UpdateUserRequest struct {
	Name     *string     `json:"name"`
	Role     *Role       `json:"role"`
	Status   *UserStatus `json:"status"`
	Password *string     `json:"password"`
}

// Validate, UpdateUserRequest'in geçerli olup olmadığını kontrol eder.
func (r *UpdateUserRequest) Validate() error {
	if r.Name != nil {
		*r.Name = strings.TrimSpace(*r.Name)
		nameLen := utf8.RuneCountInString(*r.Name)
		if nameLen < 2 || nameLen > 64 {
			return fmt.Errorf("name must be between 2 and 64 characters")
		}
	}
	if r.Role != nil && !r.Role.Valid() {
		return fmt.Errorf("role must be admin or editor")
	}
	if r.Status != nil && *r.Status != UserStatusActive && *r.Status != UserStatusDeactivated {
		return fmt.Errorf("status must be active or deactivated")
	}
	if r.Password != nil && utf8.RuneCountInString(*r.Password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}
	return nil
}
