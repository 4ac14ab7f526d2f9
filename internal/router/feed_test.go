package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type feedMessage struct {
	Type     string `json:"type"`
	Activity struct {
		Action   string `json:"action"`
		ClientID *uint  `json:"client_id"`
	} `json:"activity"`
}

func TestActivityFeedPushesNewEntries(t *testing.T) {
	s := newTestServer(t)
	cookie := s.signUp("live@example.com")

	server := httptest.NewServer(s.router)
	t.Cleanup(server.Close)

	header := http.Header{}
	header.Set("Origin", "http://localhost:3000")
	header.Set("Cookie", cookie.String())

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/api/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, header)
	require.NoError(t, err)
	require.Equal(t, http.StatusSwitchingProtocols, resp.StatusCode)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	var hello feedMessage
	require.NoError(t, conn.ReadJSON(&hello))
	assert.Equal(t, "connected", hello.Type)

	w := s.do(http.MethodPost, "/api/clients", gin.H{
		"nickname":       "阿明",
		"contact_info":   "13800000000",
		"contact_method": "phone",
	}, cookie)
	require.Equal(t, http.StatusCreated, w.Code)

	var pushed feedMessage
	require.NoError(t, conn.ReadJSON(&pushed))
	assert.Equal(t, "activity", pushed.Type)
	assert.Equal(t, "ADD_CLIENT", pushed.Activity.Action)
	assert.NotNil(t, pushed.Activity.ClientID)
}

func TestActivityFeedRejectsUnknownOrigin(t *testing.T) {
	s := newTestServer(t)
	cookie := s.signUp("live@example.com")

	server := httptest.NewServer(s.router)
	t.Cleanup(server.Close)

	header := http.Header{}
	header.Set("Origin", "http://evil.example")
	header.Set("Cookie", cookie.String())

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/api/ws"
	_, resp, err := websocket.DefaultDialer.Dial(wsURL, header)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
