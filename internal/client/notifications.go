package client

import (
	"net/http"

	"github.com/guonaihong/gout"

	"github.com/metforge/steelctl/internal/domain"
)

// UnreadNotifications lists the pending notifications for the current
// account.
func (c *Client) UnreadNotifications() ([]domain.Notification, error) {
	var notifications []domain.Notification
	err := c.get("/notifications/unread", &notifications)
	return notifications, err
}

// ReadNotification marks one notification as read.
func (c *Client) ReadNotification(id string) error {
	return c.do(http.MethodPost, "/notifications/read", gout.H{"notificationId": id}, nil, nil)
}
