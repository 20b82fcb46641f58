package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dspstudio/backend/models"
	"github.com/dspstudio/backend/services"
)

// stubPublishingService, sadece MintPreviewToken'ı cevaplayan stub.
// Gömülü interface sayesinde kalan metodları taşımak gerekmez.
type stubPublishingService struct {
	services.PublishingService
	mintedKind string
}

func (s *stubPublishingService) MintPreviewToken(ctx context.Context, kind, resourceID string) (string, error) {
	s.mintedKind = kind
	return "signed-token", nil
}

func mintRequest(kind string, user *models.User) *http.Request {
	req := httptest.NewRequest("POST", "/api/admin/preview/"+kind+"/res-1", nil)
	req.SetPathValue("kind", kind)
	req.SetPathValue("id", "res-1")
	if user != nil {
		req = req.WithContext(context.WithValue(req.Context(), UserContextKey, user))
	}
	return req
}

func TestMintPreviewToken_RequiresAuth(t *testing.T) {
	h := NewPublishingHandler(&stubPublishingService{})

	rec := httptest.NewRecorder()
	h.MintPreviewToken(rec, mintRequest("blog", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// Tanınmayan rol hiçbir yetkiye sahip değildir — iki tür için de 403.
func TestMintPreviewToken_UnknownRoleDenied(t *testing.T) {
	h := NewPublishingHandler(&stubPublishingService{})
	viewer := &models.User{ID: "user-1", Role: models.Role("viewer")}

	for _, kind := range []string{"blog", "page"} {
		rec := httptest.NewRecorder()
		h.MintPreviewToken(rec, mintRequest(kind, viewer))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	}
}

// Editor hem manage_blog hem manage_pages taşır — iki tür için de üretebilir.
// Sayfa önizlemesi blog yetkisine değil sayfa yetkisine bağlanır.
func TestMintPreviewToken_KindAwarePermission(t *testing.T) {
	editor := &models.User{ID: "user-1", Role: models.RoleEditor}

	svc := &stubPublishingService{}
	h := NewPublishingHandler(svc)

	rec := httptest.NewRecorder()
	h.MintPreviewToken(rec, mintRequest("page", editor))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "page", svc.mintedKind)
	assert.Contains(t, rec.Body.String(), "signed-token")

	rec = httptest.NewRecorder()
	h.MintPreviewToken(rec, mintRequest("blog", editor))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "blog", svc.mintedKind)
}
