package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/dspstudio/backend/models"
	"github.com/dspstudio/backend/pkg"
	"github.com/dspstudio/backend/pkg/preview"
	"github.com/dspstudio/backend/services"
)

// PublishingHandler, blog yazıları, serbest sayfalar ve taslak önizleme
// endpoint'leri. Public uçlar sadece yayınlanmış içeriği döner.
type PublishingHandler struct {
	publishingService services.PublishingService
}

// NewPublishingHandler, constructor.
func NewPublishingHandler(publishingService services.PublishingService) *PublishingHandler {
	return &PublishingHandler{publishingService: publishingService}
}

// ─── Blog ───

// PublicPosts godoc
// GET /api/blog
func (h *PublishingHandler) PublicPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.publishingService.PublicPosts(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, posts)
}

// PublicPostBySlug godoc
// GET /api/blog/{slug}
func (h *PublishingHandler) PublicPostBySlug(w http.ResponseWriter, r *http.Request) {
	post, err := h.publishingService.PublicPostBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, post)
}

// ListPosts godoc
// GET /api/admin/blog — taslaklar dahil.
func (h *PublishingHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.publishingService.ListPosts(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, posts)
}

// CreatePost godoc
// POST /api/admin/blog
func (h *PublishingHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	actor, ok := UserFromContext(r.Context())
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req models.CreateBlogPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	post, err := h.publishingService.CreatePost(r.Context(), actor.ID, &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusCreated, post)
}

// UpdatePost godoc
// PUT /api/admin/blog/{id}
func (h *PublishingHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	actor, ok := UserFromContext(r.Context())
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req models.UpdateBlogPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	post, err := h.publishingService.UpdatePost(r.Context(), actor.ID, r.PathValue("id"), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, post)
}

// DeletePost godoc
// DELETE /api/admin/blog/{id}
func (h *PublishingHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	actor, ok := UserFromContext(r.Context())
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	if err := h.publishingService.DeletePost(r.Context(), actor.ID, r.PathValue("id")); err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, map[string]string{"message": "post deleted"})
}

// ─── Sayfalar ───

// PublicPages godoc
// GET /api/pages
func (h *PublishingHandler) PublicPages(w http.ResponseWriter, r *http.Request) {
	pages, err := h.publishingService.PublicPages(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, pages)
}

// PublicPageBySlug godoc
// GET /api/pages/{slug}
func (h *PublishingHandler) PublicPageBySlug(w http.ResponseWriter, r *http.Request) {
	page, err := h.publishingService.PublicPageBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, page)
}

// ListPages godoc
// GET /api/admin/pages
func (h *PublishingHandler) ListPages(w http.ResponseWriter, r *http.Request) {
	pages, err := h.publishingService.ListPages(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, pages)
}

// CreatePage godoc
// POST /api/admin/pages
func (h *PublishingHandler) CreatePage(w http.ResponseWriter, r *http.Request) {
	actor, ok := UserFromContext(r.Context())
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req models.CreatePageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	page, err := h.publishingService.CreatePage(r.Context(), actor.ID, &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusCreated, page)
}

// UpdatePage godoc
// PUT /api/admin/pages/{id}
func (h *PublishingHandler) UpdatePage(w http.ResponseWriter, r *http.Request) {
	actor, ok := UserFromContext(r.Context())
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req models.UpdatePageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	page, err := h.publishingService.UpdatePage(r.Context(), actor.ID, r.PathValue("id"), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, page)
}

// DeletePage godoc
// DELETE /api/admin/pages/{id}
func (h *PublishingHandler) DeletePage(w http.ResponseWriter, r *http.Request) {
	actor, ok := UserFromContext(r.Context())
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	if err := h.publishingService.DeletePage(r.Context(), actor.ID, r.PathValue("id")); err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, map[string]string{"message": "page deleted"})
}

// ─── Taslak önizleme ───

// MintPreviewToken godoc
// POST /api/admin/preview/{kind}/{id}
// Mevcut bir taslak için imzalı, kısa ömürlü önizleme linki üretir.
//
// Yetki kaynak türüne göredir: blog taslağı manage_blog, sayfa taslağı
// manage_pages ister — bu yüzden route tek bir permission'la sarılamaz,
// kontrol burada yapılır.
func (h *PublishingHandler) MintPreviewToken(w http.ResponseWriter, r *http.Request) {
	kind := r.PathValue("kind")
	id := r.PathValue("id")

	user, ok := UserFromContext(r.Context())
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	perm := models.PermManageBlog
	if kind == preview.KindPage {
		perm = models.PermManagePages
	}
	if !models.RoleHasPermission(user.Role, perm) {
		pkg.ErrorWithMessage(w, http.StatusForbidden, "insufficient permissions")
		return
	}

	token, err := h.publishingService.MintPreviewToken(r.Context(), kind, id)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, map[string]string{
		"token": token,
		"url":   "/api/preview/" + kind + "/" + id + "?token=" + token,
	})
}

// ResolvePreview godoc
// GET /api/preview/{kind}/{id}?token=...
// Public'tir ama token'sız hiçbir şey dönmez — link kimdeyse taslağı o görür.
func (h *PublishingHandler) ResolvePreview(w http.ResponseWriter, r *http.Request) {
	kind := r.PathValue("kind")
	id := r.PathValue("id")
	token := r.URL.Query().Get("token")

	resource, err := h.publishingService.ResolvePreview(r.Context(), kind, id, token)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, resource)
}
