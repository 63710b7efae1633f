package usecase

import (
	"context"
	"log"

	"shikkhabazar/internal/domain"
)

type SubscriberRepo interface {
	Create(ctx context.Context, sub *domain.Subscriber) error
	Deactivate(ctx context.Context, email string) error
	ListActive(ctx context.Context) ([]domain.Subscriber, error)
}

type CampaignSender interface {
	Send(toEmail, subject, html string) error
}

type NewsletterUseCase struct {
	subscribers SubscriberRepo
	sender      CampaignSender
}

func NewNewsletterUseCase(sr SubscriberRepo, cs CampaignSender) *NewsletterUseCase {
	return &NewsletterUseCase{subscribers: sr, sender: cs}
}

func (uc *NewsletterUseCase) Subscribe(ctx context.Context, email string) error {
	return uc.subscribers.Create(ctx, &domain.Subscriber{Email: email, IsActive: true})
}

func (uc *NewsletterUseCase) Unsubscribe(ctx context.Context, email string) error {
	return uc.subscribers.Deactivate(ctx, email)
}

// Send рассылает кампанию по активным подписчикам.
// Падение отправки одному адресату не останавливает рассылку.
func (uc *NewsletterUseCase) Send(ctx context.Context, subject, html string) (sent, failed int, err error) {
	subs, err := uc.subscribers.ListActive(ctx)
	if err != nil {
		return 0, 0, err
	}

	for _, sub := range subs {
		if err := uc.sender.Send(sub.Email, subject, html); err != nil {
			log.Printf("newsletter: send to %s: %v", sub.Email, err)
			failed++
			continue
		}
		sent++
	}
	return sent, failed, nil
}
