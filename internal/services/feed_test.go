package services

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/ohcard-dev/ohcard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSubscriber struct {
	messages []interface{}
	failWith error
	closed   bool
}

func (f *fakeSubscriber) Push(v interface{}, _ time.Time) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.messages = append(f.messages, v)
	return nil
}

func (f *fakeSubscriber) Close() error {
	f.closed = true
	return nil
}

func TestPublishActivityReachesOnlyOwner(t *testing.T) {
	owner := &fakeSubscriber{}
	other := &fakeSubscriber{}

	Subscribe(100, owner)
	Subscribe(200, other)
	t.Cleanup(func() {
		Unsubscribe(100, owner)
		Unsubscribe(200, other)
	})

	PublishActivity(models.ActivityLog{UserID: 100, Action: "ADD_CLIENT"})

	assert.Len(t, owner.messages, 1)
	assert.Empty(t, other.messages)
}

func TestPublishActivityDropsBrokenSubscriber(t *testing.T) {
	broken := &fakeSubscriber{failWith: errors.New("connection reset")}

	Subscribe(300, broken)
	assert.Equal(t, 1, SubscriberCount(300))

	PublishActivity(models.ActivityLog{UserID: 300, Action: "SIGN_IN"})

	assert.True(t, broken.closed)
	assert.Equal(t, 0, SubscriberCount(300))
}

// dialConn returns the server side of a live websocket, wrapped as a Conn,
// and the client side used to read what it sends.
func dialConn(t *testing.T) (*Conn, *websocket.Conn) {
	t.Helper()

	serverSide := make(chan *websocket.Conn, 1)
	upgrader := websocket.Upgrader{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		serverSide <- ws
	}))
	t.Cleanup(server.Close)

	client, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(server.URL, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	select {
	case ws := <-serverSide:
		conn := NewConn(ws)
		t.Cleanup(func() { conn.Close() })
		return conn, client
	case <-time.After(5 * time.Second):
		t.Fatal("websocket upgrade timed out")
		return nil, nil
	}
}

func TestPublishActivityConcurrentWritesToOneConn(t *testing.T) {
	conn, client := dialConn(t)

	const userID, publishers = 400, 20

	Subscribe(userID, conn)
	t.Cleanup(func() { Unsubscribe(userID, conn) })

	var wg sync.WaitGroup
	for i := 0; i < publishers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			PublishActivity(models.ActivityLog{ID: uint(i + 1), UserID: userID, Action: "UPDATE_SESSION"})
		}(i)
	}

	require.NoError(t, client.SetReadDeadline(time.Now().Add(5*time.Second)))

	seen := make(map[uint]bool, publishers)
	for i := 0; i < publishers; i++ {
		var msg struct {
			Type     string             `json:"type"`
			Activity models.ActivityLog `json:"activity"`
		}
		require.NoError(t, client.ReadJSON(&msg))
		assert.Equal(t, "activity", msg.Type)
		seen[msg.Activity.ID] = true
	}

	wg.Wait()
	assert.Len(t, seen, publishers)
	assert.Equal(t, 1, SubscriberCount(userID))
}
