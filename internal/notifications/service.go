package notifications

import (
	"context"
	"fmt"
	"log"
	"sync"

	"wayfare/internal/shared/config"

	"github.com/google/uuid"
)

// NotificationService is the surface the booking flow talks to. Publishing is
// best effort: a Kafka outage must never fail a booking.
type NotificationService interface {
	SendBookingConfirmed(ctx context.Context, userID uuid.UUID, email, name string,
		bookingID, travelOptionID uuid.UUID, templateData map[string]interface{}) error

	SendBookingCancelled(ctx context.Context, userID uuid.UUID, email, name string,
		bookingID, travelOptionID uuid.UUID, templateData map[string]interface{}) error

	Start(ctx context.Context) error
	Stop() error
}

type kafkaNotificationService struct {
	cfg      config.KafkaConfig
	producer NotificationProducer
	consumer NotificationConsumer

	mu        sync.Mutex
	isRunning bool
}

// NewService builds the Kafka-backed notification pipeline, or a no-op
// service when Kafka is disabled in configuration.
func NewService(cfg config.KafkaConfig) (NotificationService, error) {
	if !cfg.Enabled {
		log.Printf("Notifications disabled, using no-op service")
		return &noopNotificationService{}, nil
	}

	producerConfig := DefaultKafkaProducerConfig()
	producerConfig.Brokers = cfg.Brokers
	producerConfig.NotificationTopic = cfg.NotificationTopic

	producer, err := NewKafkaNotificationProducer(producerConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create notification producer: %w", err)
	}

	var emailService EmailService
	smtpConfig := NewSMTPConfigFromEnv()
	if smtpConfig.IsConfigured() {
		emailService, err = NewSMTPEmailService(smtpConfig)
		if err != nil {
			return nil, err
		}
	} else {
		emailService = NewLogEmailService()
	}

	consumerConfig := DefaultConsumerConfig()
	consumerConfig.Brokers = cfg.Brokers
	consumerConfig.Topics = []string{cfg.NotificationTopic}
	consumerConfig.GroupID = cfg.ConsumerGroupID

	consumer, err := NewKafkaNotificationConsumer(consumerConfig, emailService)
	if err != nil {
		producer.Close()
		return nil, fmt.Errorf("failed to create notification consumer: %w", err)
	}

	return &kafkaNotificationService{
		cfg:      cfg,
		producer: producer,
		consumer: consumer,
	}, nil
}

func (s *kafkaNotificationService) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if err := s.consumer.StartConsumers(ctx, s.cfg.ConsumerWorkers); err != nil {
		return err
	}

	s.isRunning = true
	return nil
}

func (s *kafkaNotificationService) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return s.producer.Close()
	}

	if err := s.consumer.Stop(); err != nil {
		log.Printf("Error stopping notification consumer: %v", err)
	}
	s.isRunning = false
	return s.producer.Close()
}

func (s *kafkaNotificationService) SendBookingConfirmed(ctx context.Context, userID uuid.UUID, email, name string,
	bookingID, travelOptionID uuid.UUID, templateData map[string]interface{}) error {

	notification := NewNotificationBuilder().
		WithType(NotificationTypeBookingConfirmed).
		WithRecipient(userID, email, name).
		WithBookingContext(bookingID).
		WithTravelContext(travelOptionID).
		WithTemplateData(templateData).
		WithSubject(generateSubject(NotificationTypeBookingConfirmed, templateData)).
		Build()

	return s.producer.PublishNotification(ctx, notification)
}

func (s *kafkaNotificationService) SendBookingCancelled(ctx context.Context, userID uuid.UUID, email, name string,
	bookingID, travelOptionID uuid.UUID, templateData map[string]interface{}) error {

	notification := NewNotificationBuilder().
		WithType(NotificationTypeBookingCancelled).
		WithRecipient(userID, email, name).
		WithBookingContext(bookingID).
		WithTravelContext(travelOptionID).
		WithTemplateData(templateData).
		WithSubject(generateSubject(NotificationTypeBookingCancelled, templateData)).
		Build()

	return s.producer.PublishNotification(ctx, notification)
}

func generateSubject(notificationType NotificationType, data map[string]interface{}) string {
	switch notificationType {
	case NotificationTypeBookingConfirmed:
		if ref, ok := data["booking_reference"]; ok {
			return fmt.Sprintf("Booking Confirmed - %s", ref)
		}
		return "Your booking is confirmed"

	case NotificationTypeBookingCancelled:
		if ref, ok := data["booking_reference"]; ok {
			return fmt.Sprintf("Booking Cancelled - %s", ref)
		}
		return "Your booking has been cancelled"

	default:
		return "Notification from Wayfare"
	}
}

// noopNotificationService is used when Kafka is disabled.
type noopNotificationService struct{}

func (s *noopNotificationService) SendBookingConfirmed(ctx context.Context, userID uuid.UUID, email, name string,
	bookingID, travelOptionID uuid.UUID, templateData map[string]interface{}) error {
	return nil
}

func (s *noopNotificationService) SendBookingCancelled(ctx context.Context, userID uuid.UUID, email, name string,
	bookingID, travelOptionID uuid.UUID, templateData map[string]interface{}) error {
	return nil
}

func (s *noopNotificationService) Start(ctx context.Context) error { return nil }
func (s *noopNotificationService) Stop() error                     { return nil }
