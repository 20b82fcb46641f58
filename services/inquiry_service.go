package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/dspstudio/backend/models"
	"github.com/dspstudio/backend/pkg"
	"github.com/dspstudio/backend/pkg/email"
	"github.com/dspstudio/backend/repository"
	"github.com/dspstudio/backend/ws"
)

// InquiryService, site ziyaretçilerinden gelen talepleri yönetir.
//
// Create public endpoint'ten çağrılır — oturum gerektirmez. Email
// bildirimi ve WebSocket yayını asenkrondur: ziyaretçinin isteği email
// sağlayıcısının gecikmesine takılmaz.
type InquiryService interface {
	Create(ctx context.Context, req *models.CreateInquiryRequest) (*models.Inquiry, error)
	List(ctx context.Context) ([]*models.Inquiry, error)
	Get(ctx context.Context, id string) (*models.Inquiry, error)
	UpdateStatus(ctx context.Context, actorID, id string, status models.InquiryStatus) (*models.Inquiry, error)
	Delete(ctx context.Context, actorID, id string) error
}

// inquiryService, InquiryService'in implementasyonu.
type inquiryService struct {
	inquiryRepo repository.InquiryRepository
	sender      email.EmailSender // nil olabilir — email yapılandırılmamışsa
	activity    ActivityService
	hub         ws.EventPublisher
}

// NewInquiryService, constructor.
func NewInquiryService(
	inquiryRepo repository.InquiryRepository,
	sender email.EmailSender,
	activity ActivityService,
	hub ws.EventPublisher,
) InquiryService {
	return &inquiryService{
		inquiryRepo: inquiryRepo,
		sender:      sender,
		activity:    activity,
		hub:         hub,
	}
}

// Create, yeni bir talep kaydeder. Her yeni talep "new" durumunda başlar.
func (s *inquiryService) Create(ctx context.Context, req *models.CreateInquiryRequest) (*models.Inquiry, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	inquiry := &models.Inquiry{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		EventType: req.EventType,
		EventDate: req.EventDate,
		Message:   req.Message,
		Status:    models.InquiryStatusNew,
	}

	if err := s.inquiryRepo.Create(ctx, inquiry); err != nil {
		return nil, err
	}

	// Bildirimler asenkron — ziyaretçiyi bekletme
	if s.sender != nil {
		go func(inq models.Inquiry) {
			sendCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			if err := s.sender.SendInquiryNotification(sendCtx, inq.Name, inq.Email, inq.EventType, inq.Message); err != nil {
				log.Printf("[inquiry] notification email failed: %v", err)
			}
		}(*inquiry)
	}
	if s.hub != nil {
		s.hub.BroadcastToAll(ws.Event{Op: ws.OpInquiryNew, Data: inquiry})
	}

	return inquiry, nil
}

func (s *inquiryService) List(ctx context.Context) ([]*models.Inquiry, error) {
	return s.inquiryRepo.List(ctx)
}

func (s *inquiryService) Get(ctx context.Context, id string) (*models.Inquiry, error) {
	return s.inquiryRepo.GetByID(ctx, id)
}

// UpdateStatus, talebin durumunu new → responded → booked/closed akışında
// ilerletir. Sıra zorunlu değil — admin herhangi bir duruma çekebilir.
func (s *inquiryService) UpdateStatus(ctx context.Context, actorID, id string, status models.InquiryStatus) (*models.Inquiry, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: invalid inquiry status %q", pkg.ErrBadRequest, status)
	}

	if err := s.inquiryRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	s.activity.Record(ctx, actorID, "update_status", "inquiry", &id, map[string]string{"status": string(status)})
	return s.inquiryRepo.GetByID(ctx, id)
}

func (s *inquiryService) Delete(ctx context.Context, actorID, id string) error {
	if err := s.inquiryRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.activity.Record(ctx, actorID, "delete", "inquiry", &id, nil)
	return nil
}
