package firebase

import (
	"context"

	"firebase.google.com/go/v4/messaging"

	"hushhnotify/internal/domain/entity"
	"hushhnotify/internal/domain/service"
)

type messageSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type MessagingClient struct {
	client messageSender
}

func NewMessagingClient(client *messaging.Client) *MessagingClient {
	return &MessagingClient{client: client}
}

var _ service.PushService = (*MessagingClient)(nil)

func (m *MessagingClient) Send(ctx context.Context, payload *entity.PushPayload) (string, error) {
	return m.client.Send(ctx, BuildMessage(payload))
}

// BuildMessage maps a payload onto the FCM wire shape. The data map is
// repeated in the Android block and in the APNS custom payload so both
// platforms can read it without the top-level notification.
func BuildMessage(payload *entity.PushPayload) *messaging.Message {
	badge := payload.APNS.Badge

	return &messaging.Message{
		Token: payload.Token,
		Notification: &messaging.Notification{
			Title: payload.Title,
			Body:  payload.Body,
		},
		Data: payload.Data,
		Android: &messaging.AndroidConfig{
			Priority: payload.Android.Priority,
			Notification: &messaging.AndroidNotification{
				ChannelID:             payload.Android.ChannelID,
				Priority:              androidPriority(payload.Android.Priority),
				DefaultSound:          payload.Android.DefaultSound,
				DefaultVibrateTimings: payload.Android.DefaultVibrateTimings,
				Icon:                  payload.Android.Icon,
				Color:                 payload.Android.Color,
			},
			Data: copyData(payload.Data),
		},
		APNS: &messaging.APNSConfig{
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					Alert: &messaging.ApsAlert{
						Title: payload.Title,
						Body:  payload.Body,
					},
					Badge:    &badge,
					Sound:    payload.APNS.Sound,
					Category: payload.APNS.Category,
				},
				CustomData: map[string]interface{}{
					"data": copyData(payload.Data),
				},
			},
		},
	}
}

func androidPriority(p string) messaging.AndroidNotificationPriority {
	if p == entity.NotificationPriorityHigh {
		return messaging.PriorityHigh
	}
	return messaging.PriorityDefault
}

func copyData(data map[string]string) map[string]string {
	out := make(map[string]string, len(data))
	for k, v := range data {
		out[k] = v
	}
	return out
}
