package service

import (
	"context"
	"fmt"
	"strings"

	"paie-detect-be/internal/dto"
	"paie-detect-be/internal/entity"
	"paie-detect-be/internal/pkg/logger"
	"paie-detect-be/internal/pkg/mailer"
	"paie-detect-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IContactService interface {
	Submit(ctx context.Context, req *dto.ContactRequest, ip string) (*dto.ContactResponse, error)
}

type contactService struct {
	uowFactory unitofwork.RepositoryFactory
	mailer     mailer.IEmailService
	logger     logger.ILogger
}

func NewContactService(uowFactory unitofwork.RepositoryFactory, emailService mailer.IEmailService, log logger.ILogger) IContactService {
	return &contactService{
		uowFactory: uowFactory,
		mailer:     emailService,
		logger:     log,
	}
}

func (s *contactService) Submit(ctx context.Context, req *dto.ContactRequest, ip string) (*dto.ContactResponse, error) {
	if !req.Consent {
		return nil, fmt.Errorf("%w: vous devez accepter la politique de confidentialité", ErrInvalidInput)
	}
	if !emailPattern.MatchString(strings.TrimSpace(req.Email)) {
		return nil, fmt.Errorf("%w: email invalide", ErrInvalidInput)
	}

	msg := &entity.ContactMessage{
		Id:        uuid.New(),
		Name:      sanitize(req.Name, 100),
		Email:     sanitize(req.Email, 100),
		Subject:   sanitize(req.Subject, 200),
		Message:   sanitize(req.Message, 5000),
		IPAddress: ip,
	}
	if msg.Name == "" || msg.Email == "" || msg.Subject == "" || msg.Message == "" {
		return nil, fmt.Errorf("%w: tous les champs sont obligatoires", ErrInvalidInput)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ContactMessageRepository().Create(ctx, msg); err != nil {
		return nil, err
	}

	// The message is stored; a mail failure only delays the operator.
	if err := s.mailer.SendContact(mailer.ContactMail{
		Name:    msg.Name,
		Email:   msg.Email,
		Subject: msg.Subject,
		Message: msg.Message,
		IP:      ip,
	}); err != nil {
		s.logger.Error("CONTACT", "Contact message stored but not mailed", map[string]interface{}{"contact_id": msg.Id.String(), "error": err.Error()})
	}

	return &dto.ContactResponse{Id: msg.Id.String()}, nil
}

// sanitize trims, caps at max characters and strips angle brackets.
func sanitize(s string, max int) string {
	s = truncateRunes(strings.TrimSpace(s), max)
	return strings.NewReplacer("<", "", ">", "").Replace(s)
}
