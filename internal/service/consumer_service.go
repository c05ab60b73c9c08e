package service

import (
	"context"
	"encoding/json"
	"time"

	"paie-detect-be/internal/dto"
	"paie-detect-be/internal/entity"
	"paie-detect-be/internal/pkg/logger"
	"paie-detect-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	subscriber message.Subscriber
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
	retry      middleware.Retry
}

func NewConsumerService(
	subscriber message.Subscriber,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		subscriber: subscriber,
		topicName:  topicName,
		uowFactory: uowFactory,
		logger:     log,
		retry: middleware.Retry{
			MaxRetries:      5,
			InitialInterval: 500 * time.Millisecond,
			MaxInterval:     30 * time.Second,
			Multiplier:      2,
			Logger:          watermill.NopLogger{},
			OnRetryHook: func(retryNum int, delay time.Duration) {
				log.Warn("LEAD", "Retrying lead insert", map[string]interface{}{"attempt": retryNum, "delay": delay.String()})
			},
		},
	}
}

// Consume subscribes to the lead topic and records leads until ctx is done.
func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	handle := cs.retry.Middleware(cs.recordLead)
	go func() {
		for msg := range messages {
			msg.SetContext(ctx)
			if _, err := handle(msg); err != nil {
				cs.logger.Error("LEAD", "Giving up on lead", map[string]interface{}{"message_id": msg.UUID, "error": err.Error()})
			}
			// A lead that exhausted its retries is dropped, never redelivered.
			msg.Ack()
		}
	}()

	return nil
}

// recordLead returns an error only for failures worth retrying.
func (cs *consumerService) recordLead(msg *message.Message) ([]*message.Message, error) {
	ctx := msg.Context()

	var payload dto.LeadCapturedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("LEAD", "Dropping malformed lead message", map[string]interface{}{"message_id": msg.UUID, "error": err.Error()})
		return nil, nil
	}

	analysisId, err := uuid.Parse(payload.AnalysisId)
	if err != nil || payload.Email == "" {
		cs.logger.Error("LEAD", "Dropping lead without analysis or email", map[string]interface{}{"message_id": msg.UUID})
		return nil, nil
	}

	lead := &entity.Lead{
		Id:                 uuid.New(),
		FirstName:          payload.FirstName,
		Email:              payload.Email,
		AnalysisId:         analysisId,
		TotalPotentialGain: payload.TotalPotentialGain,
		ReportPrice:        payload.ReportPrice,
		Source:             payload.Source,
		CreatedAt:          payload.OccurredAt,
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	created, err := uow.LeadRepository().CreateIfAbsent(ctx, lead)
	if err != nil {
		cs.logger.Warn("LEAD", "Failed to record lead", map[string]interface{}{"analysis_id": payload.AnalysisId, "error": err.Error()})
		return nil, err
	}

	if created {
		cs.logger.Info("LEAD", "Lead recorded", map[string]interface{}{"analysis_id": payload.AnalysisId})
	} else {
		cs.logger.Debug("LEAD", "Lead already recorded", map[string]interface{}{"analysis_id": payload.AnalysisId})
	}
	return nil, nil
}
