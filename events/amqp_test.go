package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type published struct {
	exchange, key string
	msg           amqp.Publishing
}

type fakeChannel struct {
	declared   []string
	published  []published
	publishErr error
	closed     bool
}

func (f *fakeChannel) ExchangeDeclare(name, kind string, durable, _, _, _ bool, _ amqp.Table) error {
	f.declared = append(f.declared, name+":"+kind)
	if !durable {
		return errors.New("exchange must be durable")
	}
	return nil
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.published = append(f.published, published{exchange, key, msg})
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func TestAMQPPublisherDeclaresTopicExchange(t *testing.T) {
	ch := &fakeChannel{}
	_, err := NewAMQPPublisher(ch, "egharbari.events")
	require.NoError(t, err)
	assert.Equal(t, []string{"egharbari.events:topic"}, ch.declared)
}

func TestAMQPPublisherWritesPersistentEnvelope(t *testing.T) {
	ch := &fakeChannel{}
	p, err := NewAMQPPublisher(ch, "egharbari.events")
	require.NoError(t, err)

	err = p.Publish(context.Background(), InquiryCreated, InquiryEvent{InquiryID: "abc", Email: "asha@example.com"})
	require.NoError(t, err)

	require.Len(t, ch.published, 1)
	got := ch.published[0]
	assert.Equal(t, "egharbari.events", got.exchange)
	assert.Equal(t, InquiryCreated, got.key)
	assert.Equal(t, amqp.Persistent, got.msg.DeliveryMode)
	assert.Equal(t, "application/json", got.msg.ContentType)

	var env struct {
		ID   string       `json:"id"`
		Type string       `json:"type"`
		Data InquiryEvent `json:"data"`
	}
	require.NoError(t, json.Unmarshal(got.msg.Body, &env))
	assert.Equal(t, got.msg.MessageId, env.ID)
	assert.Equal(t, "abc", env.Data.InquiryID)
}

func TestAMQPPublisherWrapsErrors(t *testing.T) {
	ch := &fakeChannel{publishErr: errors.New("channel closed")}
	p, err := NewAMQPPublisher(ch, "egharbari.events")
	require.NoError(t, err)

	err = p.Publish(context.Background(), InquiryReplied, ReplyEvent{})
	assert.ErrorContains(t, err, "channel closed")

	require.NoError(t, p.Close())
	assert.True(t, ch.closed)
}
