package live

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type score struct {
	Runs int `json:"runs"`
}

func newTestServer(t *testing.T, hm *HubManager) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/live/")
		if err := hm.Serve(w, r, id, score{Runs: 7}); err != nil {
			t.Logf("serve: %v", err)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func dial(t *testing.T, srv *httptest.Server, matchID string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/live/" + matchID
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) Message {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var msg Message
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func runsOf(t *testing.T, msg Message) int {
	t.Helper()
	var s score
	require.NoError(t, json.Unmarshal(msg.Snapshot, &s))
	return s.Runs
}

func TestSpectatorGetsCurrentSnapshotOnJoin(t *testing.T) {
	log, _ := test.NewNullLogger()
	hm := NewHubManager(log)
	defer hm.Shutdown()
	srv := newTestServer(t, hm)

	conn := dial(t, srv, "m1")
	msg := readMessage(t, conn)
	assert.Equal(t, MsgTypeSnapshot, msg.Type)
	assert.Equal(t, "m1", msg.MatchID)
	assert.Equal(t, 7, runsOf(t, msg))
}

func TestBroadcastReachesEverySpectator(t *testing.T) {
	log, _ := test.NewNullLogger()
	hm := NewHubManager(log)
	defer hm.Shutdown()
	srv := newTestServer(t, hm)

	a := dial(t, srv, "m1")
	b := dial(t, srv, "m1")
	other := dial(t, srv, "m2")
	readMessage(t, a)
	readMessage(t, b)
	readMessage(t, other)

	hm.Broadcast("m1", score{Runs: 11})

	assert.Equal(t, 11, runsOf(t, readMessage(t, a)))
	assert.Equal(t, 11, runsOf(t, readMessage(t, b)))

	require.NoError(t, other.SetReadDeadline(time.Now().Add(200*time.Millisecond)))
	var msg Message
	assert.Error(t, other.ReadJSON(&msg), "m2 spectators must not see m1 updates")
}

func TestBroadcastWithoutSpectatorsIsNoop(t *testing.T) {
	log, _ := test.NewNullLogger()
	hm := NewHubManager(log)
	hm.Broadcast("nobody", score{Runs: 1})
	hm.mu.Lock()
	defer hm.mu.Unlock()
	assert.Empty(t, hm.hubs)
}

func TestPingGetsPong(t *testing.T) {
	log, _ := test.NewNullLogger()
	hm := NewHubManager(log)
	defer hm.Shutdown()
	srv := newTestServer(t, hm)

	conn := dial(t, srv, "m1")
	readMessage(t, conn)
	require.NoError(t, conn.WriteJSON(Message{Type: MsgTypePing}))
	assert.Equal(t, MsgTypePong, readMessage(t, conn).Type)
}

func TestCloseDisconnectsSpectators(t *testing.T) {
	log, _ := test.NewNullLogger()
	hm := NewHubManager(log)
	srv := newTestServer(t, hm)

	conn := dial(t, srv, "m1")
	readMessage(t, conn)

	hm.Close("m1")
	assert.Equal(t, MsgTypeClosed, readMessage(t, conn).Type)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err)
}

func TestForeignOriginRejected(t *testing.T) {
	log, _ := test.NewNullLogger()
	hm := NewHubManager(log, "http://allowed.example")
	defer hm.Shutdown()
	srv := newTestServer(t, hm)
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/live/m1"

	_, resp, err := websocket.DefaultDialer.Dial(url, http.Header{"Origin": {"http://evil.example"}})
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	ok, _, err := websocket.DefaultDialer.Dial(url, http.Header{"Origin": {"http://allowed.example"}})
	require.NoError(t, err)
	ok.Close()
}
