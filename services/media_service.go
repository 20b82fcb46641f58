package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/dspstudio/backend/models"
	"github.com/dspstudio/backend/pkg"
	"github.com/dspstudio/backend/repository"
	"github.com/dspstudio/backend/ws"
)

// MediaService, dosya yükleme ve medya kütüphanesini yönetir.
//
// Diske asla kullanıcının verdiği dosya adı yazılmaz: her dosya UUID +
// orijinal uzantı ile saklanır. Orijinal ad yalnızca metadata olarak
// DB'de tutulur. Böylece path traversal ve ad çakışması derdi baştan biter.
type MediaService interface {
	Upload(ctx context.Context, actorID, filename, contentType string, size int64, r io.Reader) (*models.Media, error)
	List(ctx context.Context) ([]*models.Media, error)
	Get(ctx context.Context, id string) (*models.Media, error)
	UpdateMeta(ctx context.Context, actorID, id string, req *models.UpdateMediaRequest) (*models.Media, error)
	Delete(ctx context.Context, actorID, id string) error
}

// mediaService, MediaService'in implementasyonu.
type mediaService struct {
	mediaRepo repository.MediaRepository
	uploadDir string
	maxSize   int64
	activity  ActivityService
	hub       ws.EventPublisher
}

// NewMediaService, constructor. Upload dizini yoksa oluşturulur.
func NewMediaService(
	mediaRepo repository.MediaRepository,
	uploadDir string,
	maxSize int64,
	activity ActivityService,
	hub ws.EventPublisher,
) (MediaService, error) {
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &mediaService{
		mediaRepo: mediaRepo,
		uploadDir: uploadDir,
		maxSize:   maxSize,
		activity:  activity,
		hub:       hub,
	}, nil
}

// mediaType, content-type'tan kaba medya kategorisi çıkarır.
func mediaType(contentType string) string {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return "image"
	case strings.HasPrefix(contentType, "video/"):
		return "video"
	default:
		return "document"
	}
}

// Upload, dosyayı diske yazar ve medya kaydını oluşturur.
// Boyut limiti aşılırsa yazılanlar silinir ve ErrBadRequest döner.
func (s *mediaService) Upload(ctx context.Context, actorID, filename, contentType string, size int64, r io.Reader) (*models.Media, error) {
	filename = filepath.Base(strings.TrimSpace(filename))
	if filename == "" || filename == "." || filename == string(filepath.Separator) {
		return nil, fmt.Errorf("%w: filename is required", pkg.ErrBadRequest)
	}
	if size > s.maxSize {
		return nil, fmt.Errorf("%w: file exceeds %d byte limit", pkg.ErrBadRequest, s.maxSize)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	storedName := uuid.NewString() + ext
	dst := filepath.Join(s.uploadDir, storedName)

	f, err := os.Create(dst)
	if err != nil {
		return nil, fmt.Errorf("failed to create upload file: %w", err)
	}

	// LimitReader'a +1: limit tam dolduysa mu yoksa aşıldı mı ayırt etmek için
	written, err := io.Copy(f, io.LimitReader(r, s.maxSize+1))
	closeErr := f.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(dst)
		return nil, fmt.Errorf("failed to write upload: %w", err)
	}
	if written > s.maxSize {
		os.Remove(dst)
		return nil, fmt.Errorf("%w: file exceeds %d byte limit", pkg.ErrBadRequest, s.maxSize)
	}

	media := &models.Media{
		Filename:   filename,
		StoredName: storedName,
		URL:        "/api/uploads/" + storedName,
		Type:       mediaType(contentType),
		Size:       written,
	}

	if err := s.mediaRepo.Create(ctx, media); err != nil {
		os.Remove(dst)
		return nil, err
	}

	s.notify(ctx, actorID, "upload", "media", media.ID)
	return media, nil
}

func (s *mediaService) List(ctx context.Context) ([]*models.Media, error) {
	return s.mediaRepo.List(ctx)
}

func (s *mediaService) Get(ctx context.Context, id string) (*models.Media, error) {
	return s.mediaRepo.GetByID(ctx, id)
}

func (s *mediaService) UpdateMeta(ctx context.Context, actorID, id string, req *models.UpdateMediaRequest) (*models.Media, error) {
	media, err := s.mediaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Alt != nil {
		media.Alt = req.Alt
	}
	if req.Caption != nil {
		media.Caption = req.Caption
	}

	if err := s.mediaRepo.Update(ctx, media); err != nil {
		return nil, err
	}

	s.notify(ctx, actorID, "update", "media", id)
	return media, nil
}

// Delete, önce DB kaydını sonra diskteki dosyayı siler. Dosya silme
// hatası kaydı geri getirmez — sadece loglanır.
func (s *mediaService) Delete(ctx context.Context, actorID, id string) error {
	media, err := s.mediaRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.mediaRepo.Delete(ctx, id); err != nil {
		return err
	}

	if err := os.Remove(filepath.Join(s.uploadDir, media.StoredName)); err != nil && !os.IsNotExist(err) {
		log.Printf("[media] failed to remove file %s: %v", media.StoredName, err)
	}

	s.notify(ctx, actorID, "delete", "media", id)
	return nil
}

func (s *mediaService) notify(ctx context.Context, actorID, action, resource, id string) {
	s.activity.Record(ctx, actorID, action, resource, &id, nil)
	if s.hub != nil {
		s.hub.BroadcastToAll(ws.Event{
			Op:   ws.OpContentUpdate,
			Data: ws.ContentUpdateData{Resource: resource, Action: action, ID: id},
		})
	}
}
