package telegram

import (
	"fmt"

	"car-market-backend/internal/models"
)

// Publisher posts approved listings to the public channel.
type Publisher struct {
	client *Client
	chatID int64
}

func NewPublisher(client *Client, chatID int64) *Publisher {
	return &Publisher{
		client: client,
		chatID: chatID,
	}
}

// PublishListing posts the submission's photo with a formatted caption.
// There is no idempotency key; calling twice posts twice, so the gateway
// deletes the row right after the first success.
func (p *Publisher) PublishListing(sub *models.Submission) error {
	return p.client.SendPhoto(p.chatID, sub.PhotoFileID, listingCaption(sub))
}

func listingCaption(sub *models.Submission) string {
	userName := sub.UserName.String
	if userName == "" {
		userName = fmt.Sprintf("id%d", sub.UserID)
	}
	return fmt.Sprintf("🌐 Server: %s\n🚗 Car: %s\n💰 Price: %d\n👤 Seller: %s",
		sub.Server, sub.Car, sub.Price, userName)
}
