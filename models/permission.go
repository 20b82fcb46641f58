package models

// Permission, tek bir yetenek adıdır. Yetkiler kullanıcıya tek tek değil,
// role bağlı statik bir tablo üzerinden verilir — iki rol, sabit tablo.
type Permission string

const (
	PermManageUsers     Permission = "manage_users"
	PermManageSettings  Permission = "manage_settings"
	PermManageAnalytics Permission = "manage_analytics"
	PermManageMarketing Permission = "manage_marketing"
	PermManageContent   Permission = "manage_content"
	PermManageGallery   Permission = "manage_gallery"
	PermManageBlog      Permission = "manage_blog"
	PermManageVideos    Permission = "manage_videos"
	PermManageOffers    Permission = "manage_offers"
	PermManagePages     Permission = "manage_pages"
	PermViewActivityLog Permission = "view_activity_log"
	PermDeleteAny       Permission = "delete_any"
)

// rolePermissions, rol → yetki tablosu. Editor içerik yetkilerini alır;
// kullanıcı, ayar, analitik ve pazarlama yönetimi admin'e özeldir.
var rolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermManageUsers,
		PermManageSettings,
		PermManageAnalytics,
		PermManageMarketing,
		PermManageContent,
		PermManageGallery,
		PermManageBlog,
		PermManageVideos,
		PermManageOffers,
		PermManagePages,
		PermViewActivityLog,
		PermDeleteAny,
	},
	RoleEditor: {
		PermManageContent,
		PermManageGallery,
		PermManageBlog,
		PermManageVideos,
		PermManageOffers,
		PermManagePages,
	},
}

// RoleHasPermission, rolün verilen yetkiye sahip olup olmadığını döner.
// Tanınmayan rol hiçbir yetkiye sahip değildir (fail-closed).
func RoleHasPermission(role Role, perm Permission) bool {
	for _, p := range rolePermissions[role] {
		if p == perm {
			return true
		}
	}
	return false
}

// PermissionsForRole, rolün yetki listesinin kopyasını döner.
// Kopya döndürülür ki çağıran tabloyu mutate edemesin.
func PermissionsForRole(role Role) []Permission {
	perms := rolePermissions[role]
	out := make([]Permission, len(perms))
	copy(out, perms)
	return out
}
