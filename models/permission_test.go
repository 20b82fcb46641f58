package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleHasPermission_Admin(t *testing.T) {
	// Admin her yetkiye sahiptir
	for _, perm := range []Permission{
		PermManageUsers, PermManageSettings, PermManageAnalytics,
		PermManageMarketing, PermManageContent, PermManageGallery,
		PermManageBlog, PermManageVideos, PermManageOffers,
		PermManagePages, PermViewActivityLog, PermDeleteAny,
	} {
		assert.True(t, RoleHasPermission(RoleAdmin, perm), "admin should have %s", perm)
	}
}

func TestRoleHasPermission_Editor(t *testing.T) {
	// Editor içerik yetkilerine sahiptir
	for _, perm := range []Permission{
		PermManageContent, PermManageGallery, PermManageBlog,
		PermManageVideos, PermManageOffers, PermManagePages,
	} {
		assert.True(t, RoleHasPermission(RoleEditor, perm), "editor should have %s", perm)
	}

	// Yönetim yetkileri editöre verilmez
	for _, perm := range []Permission{
		PermManageUsers, PermManageSettings, PermManageAnalytics,
		PermManageMarketing, PermViewActivityLog, PermDeleteAny,
	} {
		assert.False(t, RoleHasPermission(RoleEditor, perm), "editor should not have %s", perm)
	}
}

func TestRoleHasPermission_UnknownRoleFailsClosed(t *testing.T) {
	assert.False(t, RoleHasPermission(Role("superuser"), PermManageContent))
	assert.False(t, RoleHasPermission(Role(""), PermManageContent))
}

func TestPermissionsForRole_ReturnsCopy(t *testing.T) {
	perms := PermissionsForRole(RoleEditor)
	assert.NotEmpty(t, perms)

	// Dönen slice'ı değiştirmek tabloyu bozmamalı
	perms[0] = Permission("mutated")
	assert.True(t, RoleHasPermission(RoleEditor, PermManageContent))
}

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleEditor.Valid())
	assert.False(t, Role("owner").Valid())
}
