package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/zeetechinnovations/pet-adoption-portal/internal/metrics"
	"github.com/zeetechinnovations/pet-adoption-portal/internal/models"
	"github.com/zeetechinnovations/pet-adoption-portal/internal/notify"
	"gorm.io/gorm"
)

type MessageService struct {
	db       *gorm.DB
	notifier notify.Notifier
}

func NewMessageService(db *gorm.DB, notifier notify.Notifier) *MessageService {
	return &MessageService{db: db, notifier: notifier}
}

// Thread is the view model for a pet conversation.
type Thread struct {
	Messages  []models.Message
	CanSend   bool
	Recipient *models.User
	HasPinned bool
}

// GetThread returns the messages visible to the viewer (sender or receiver),
// pinned first then ascending by creation time, along with the send
// permission and the resolved recipient.
func (s *MessageService) GetThread(petID, viewerID uuid.UUID) (*Thread, error) {
	pet, err := s.pet(petID)
	if err != nil {
		return nil, err
	}

	var msgs []models.Message
	if err := s.db.
		Where("pet_id = ? AND (sender_id = ? OR receiver_id = ?)", petID, viewerID, viewerID).
		Order("is_pinned DESC, created_at ASC").
		Find(&msgs).Error; err != nil {
		return nil, err
	}

	canSend, err := s.canSend(pet, viewerID)
	if err != nil {
		return nil, err
	}

	recipient, err := s.resolveRecipient(pet, viewerID)
	if err != nil {
		return nil, err
	}

	hasPinned := false
	for _, m := range msgs {
		if m.IsPinned {
			hasPinned = true
			break
		}
	}

	return &Thread{Messages: msgs, CanSend: canSend, Recipient: recipient, HasPinned: hasPinned}, nil
}

// Send persists a new message and notifies the receiver. All three guards
// must hold: non-empty content, the send predicate, and a resolvable
// recipient; otherwise nothing is written.
func (s *MessageService) Send(petID, senderID uuid.UUID, content string) (*models.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	pet, err := s.pet(petID)
	if err != nil {
		return nil, err
	}

	canSend, err := s.canSend(pet, senderID)
	if err != nil {
		return nil, err
	}
	if !canSend {
		return nil, ErrCannotSend
	}

	recipient, err := s.resolveRecipient(pet, senderID)
	if err != nil {
		return nil, err
	}
	if recipient == nil {
		return nil, ErrNoRecipient
	}

	var sender models.User
	if err := s.db.First(&sender, "id = ?", senderID).Error; err != nil {
		return nil, fmt.Errorf("sender not found: %w", err)
	}

	msg := models.Message{
		ID:         uuid.New(),
		SenderID:   senderID,
		ReceiverID: recipient.ID,
		PetID:      petID,
		Content:    content,
	}
	if err := s.db.Create(&msg).Error; err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	metrics.MessagesSent.Inc()

	subject, body := notify.MessageReceived(pet.Name, sender.Name)
	if err := s.notifier.Send(recipient.Email, subject, body); err != nil {
		reportNotifyFailure("send_message", err)
	}
	return &msg, nil
}

// SetPinned pins or unpins a message. Only the original sender may toggle;
// a wrong actor gets ErrForbidden, distinguishable from a missing message.
func (s *MessageService) SetPinned(messageID, actorID uuid.UUID, pinned bool) (*models.Message, error) {
	msg, err := s.ownMessage(messageID, actorID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(msg).Update("is_pinned", pinned).Error; err != nil {
		return nil, err
	}
	msg.IsPinned = pinned
	return msg, nil
}

// Delete permanently removes a message; sender only.
func (s *MessageService) Delete(messageID, actorID uuid.UUID) error {
	msg, err := s.ownMessage(messageID, actorID)
	if err != nil {
		return err
	}
	return s.db.Delete(msg).Error
}

// Edit replaces the content of a message; sender only, empty content leaves
// the record unchanged.
func (s *MessageService) Edit(messageID, actorID uuid.UUID, content string) (*models.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	msg, err := s.ownMessage(messageID, actorID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(msg).Update("content", content).Error; err != nil {
		return nil, err
	}
	msg.Content = content
	return msg, nil
}

func (s *MessageService) pet(petID uuid.UUID) (*models.Pet, error) {
	var pet models.Pet
	if err := s.db.Preload("Owner").First(&pet, "id = ?", petID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &pet, nil
}

func (s *MessageService) ownMessage(messageID, actorID uuid.UUID) (*models.Message, error) {
	var msg models.Message
	if err := s.db.First(&msg, "id = ?", messageID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if msg.SenderID != actorID {
		return nil, ErrForbidden
	}
	return &msg, nil
}

// canSend: the viewer is the owner, or has previously received a message in
// this thread, or holds an approved adoption request for this pet.
func (s *MessageService) canSend(pet *models.Pet, viewerID uuid.UUID) (bool, error) {
	if pet.OwnerID == viewerID {
		return true, nil
	}

	var received int64
	if err := s.db.Model(&models.Message{}).
		Where("pet_id = ? AND receiver_id = ?", pet.ID, viewerID).
		Count(&received).Error; err != nil {
		return false, err
	}
	if received > 0 {
		return true, nil
	}

	var approved int64
	if err := s.db.Model(&models.AdoptionRequest{}).
		Where("pet_id = ? AND adopter_id = ? AND status = ?", pet.ID, viewerID, models.RequestApproved).
		Count(&approved).Error; err != nil {
		return false, err
	}
	return approved > 0, nil
}

// resolveRecipient: the owner writes to the adopter of the first approved
// request (nil when none exists yet); anyone else writes to the owner. A
// soft-deleted owner is not preloaded and resolves to no recipient.
func (s *MessageService) resolveRecipient(pet *models.Pet, viewerID uuid.UUID) (*models.User, error) {
	if pet.OwnerID != viewerID {
		if pet.Owner.ID == uuid.Nil {
			return nil, nil
		}
		return &pet.Owner, nil
	}

	var approved models.AdoptionRequest
	err := s.db.Preload("Adopter").
		Where("pet_id = ? AND status = ?", pet.ID, models.RequestApproved).
		Order("created_at ASC").First(&approved).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &approved.Adopter, nil
}
