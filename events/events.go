// Package events publishes domain events for downstream consumers such as
// mailers and CRM sync.
package events

import (
	"context"
	"time"
)

const (
	InquiryCreated       = "inquiry.created"
	InquiryReplied       = "inquiry.replied"
	InquiryStatusChanged = "inquiry.status_changed"
)

// Envelope is the JSON body of every published message.
type Envelope struct {
	ID         string      `json:"id"`
	Type       string      `json:"type"`
	OccurredAt time.Time   `json:"occurredAt"`
	Data       interface{} `json:"data"`
}

type Publisher interface {
	Publish(ctx context.Context, routingKey string, payload interface{}) error
	Close() error
}

type InquiryEvent struct {
	InquiryID  string `json:"inquiryId"`
	Email      string `json:"email"`
	Subject    string `json:"subject"`
	Type       string `json:"type"`
	Status     string `json:"status"`
	PropertyID string `json:"propertyId,omitempty"`
}

type ReplyEvent struct {
	InquiryID string `json:"inquiryId"`
	Email     string `json:"email"`
	IsAdmin   bool   `json:"isAdmin"`
	Status    string `json:"status"`
}

type StatusEvent struct {
	InquiryID string `json:"inquiryId"`
	Email     string `json:"email"`
	From      string `json:"from"`
	To        string `json:"to"`
}

// NopPublisher drops every event. Used when AMQP_URL is not configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, interface{}) error { return nil }

func (NopPublisher) Close() error { return nil }
