package services

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/ohcard-dev/ohcard/internal/models"
	"github.com/sirupsen/logrus"
)

const writeWait = 10 * time.Second

// Subscriber receives activity entries pushed to a user. Push must set the
// write deadline and write as one step.
type Subscriber interface {
	Push(v interface{}, deadline time.Time) error
	Close() error
}

var (
	subscribers   = make(map[uint]map[Subscriber]bool)
	subscribersMu sync.RWMutex
)

// Conn is a websocket Subscriber. gorilla/websocket allows a single writer at
// a time, and activity is published from concurrent requests, so every write
// goes through mu.
type Conn struct {
	ws *websocket.Conn
	mu sync.Mutex
}

func NewConn(ws *websocket.Conn) *Conn {
	return &Conn{ws: ws}
}

func (c *Conn) Push(v interface{}, deadline time.Time) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ws.SetWriteDeadline(deadline); err != nil {
		return err
	}

	return c.ws.WriteJSON(v)
}

func (c *Conn) Close() error {
	return c.ws.Close()
}

func Subscribe(userID uint, sub Subscriber) {
	subscribersMu.Lock()
	defer subscribersMu.Unlock()

	if subscribers[userID] == nil {
		subscribers[userID] = make(map[Subscriber]bool)
	}
	subscribers[userID][sub] = true
}

func Unsubscribe(userID uint, sub Subscriber) {
	subscribersMu.Lock()
	defer subscribersMu.Unlock()

	if subs, exists := subscribers[userID]; exists {
		delete(subs, sub)
		if len(subs) == 0 {
			delete(subscribers, userID)
		}
	}
}

func SubscriberCount(userID uint) int {
	subscribersMu.RLock()
	defer subscribersMu.RUnlock()

	return len(subscribers[userID])
}

// PublishActivity pushes a new activity entry to every open feed of its user.
// Failed subscribers are dropped.
func PublishActivity(entry models.ActivityLog) {
	subscribersMu.RLock()
	subs, exists := subscribers[entry.UserID]
	if !exists || len(subs) == 0 {
		subscribersMu.RUnlock()
		return
	}

	targets := make([]Subscriber, 0, len(subs))
	for sub := range subs {
		targets = append(targets, sub)
	}
	subscribersMu.RUnlock()

	message := map[string]interface{}{
		"type":     "activity",
		"activity": entry,
	}

	for _, sub := range targets {
		err := sub.Push(message, time.Now().Add(writeWait))
		if err == nil {
			continue
		}

		logrus.WithError(err).WithField("user_id", entry.UserID).Debug("Failed to push activity")

		Unsubscribe(entry.UserID, sub)
		sub.Close()
	}
}
