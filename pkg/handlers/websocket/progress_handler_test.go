package websocket

import (
	"context"
	"io"
	"net"
	"testing"
	"time"

	"github.com/NeuralTrust/TrustPost/pkg/app/submission"
	"github.com/NeuralTrust/TrustPost/pkg/common"
	infraWebsocket "github.com/NeuralTrust/TrustPost/pkg/infra/websocket"
	"github.com/NeuralTrust/TrustPost/pkg/middleware"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	gorilla "github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const owner = "user-1"

func startServer(t *testing.T, hub *submission.ProgressHub, semaphore *infraWebsocket.Semaphore, userID string) string {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	handler := NewProgressHandler(logger, hub, ProgressHandlerOptions{PingInterval: time.Second, IdleTimeout: 5 * time.Second})
	app.Get("/ws/submissions/:id",
		func(c *fiber.Ctx) error {
			c.Locals(common.UserIDContextKey, userID)
			return c.Next()
		},
		middleware.NewWebsocketMiddleware(logger, semaphore).Middleware(),
		websocket.New(handler.Handle),
	)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() {
		_ = app.Listener(ln)
	}()
	t.Cleanup(func() {
		_ = app.Shutdown()
	})
	return "ws://" + ln.Addr().String()
}

func dial(t *testing.T, url string) *gorilla.Conn {
	t.Helper()
	conn, _, err := gorilla.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = conn.Close()
	})
	return conn
}

func readFrame(t *testing.T, conn *gorilla.Conn) infraWebsocket.Frame {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(3*time.Second)))
	var frame infraWebsocket.Frame
	require.NoError(t, conn.ReadJSON(&frame))
	return frame
}

func TestProgressHandler_StreamsUntilTerminal(t *testing.T) {
	hub := submission.NewProgressHub(time.Minute)
	semaphore := infraWebsocket.NewSemaphore(4)
	base := startServer(t, hub, semaphore, owner)
	id := uuid.New()

	require.NoError(t, hub.Publish(context.Background(), submission.Event{
		SubmissionID: id, UserID: owner, State: submission.StateValidatingMedia, At: time.Now(),
	}))
	conn := dial(t, base+"/ws/submissions/"+id.String())

	frame := readFrame(t, conn)
	assert.Equal(t, infraWebsocket.FrameProgress, frame.Type)
	assert.Equal(t, string(submission.StateValidatingMedia), frame.State)

	require.NoError(t, hub.Publish(context.Background(), submission.Event{
		SubmissionID: id, UserID: owner, State: submission.StateModeratingText, At: time.Now(),
	}))
	assert.Equal(t, string(submission.StateModeratingText), readFrame(t, conn).State)

	require.NoError(t, hub.Publish(context.Background(), submission.Event{
		SubmissionID: id, UserID: owner, State: submission.StateRejected,
		Reason: submission.ReasonContentRejected, At: time.Now(),
	}))
	frame = readFrame(t, conn)
	assert.True(t, frame.Terminal)
	assert.Equal(t, string(submission.ReasonContentRejected), frame.Reason)
	assert.Equal(t, infraWebsocket.FrameClosed, readFrame(t, conn).Type)

	assert.Eventually(t, func() bool { return semaphore.Current() == 0 }, 3*time.Second, 20*time.Millisecond)
}

func TestProgressHandler_RejectsNonOwner(t *testing.T) {
	hub := submission.NewProgressHub(time.Minute)
	base := startServer(t, hub, infraWebsocket.NewSemaphore(4), "someone-else")
	id := uuid.New()

	require.NoError(t, hub.Publish(context.Background(), submission.Event{
		SubmissionID: id, UserID: owner, State: submission.StatePublishing, At: time.Now(),
	}))
	conn := dial(t, base+"/ws/submissions/"+id.String())

	frame := readFrame(t, conn)
	assert.Equal(t, infraWebsocket.FrameError, frame.Type)
	assert.Equal(t, "forbidden", frame.Message)
}

func TestProgressHandler_InvalidID(t *testing.T) {
	hub := submission.NewProgressHub(time.Minute)
	base := startServer(t, hub, infraWebsocket.NewSemaphore(4), owner)

	conn := dial(t, base+"/ws/submissions/not-a-uuid")
	frame := readFrame(t, conn)
	assert.Equal(t, infraWebsocket.FrameError, frame.Type)
}

func TestProgressHandler_ConnectionLimit(t *testing.T) {
	hub := submission.NewProgressHub(time.Minute)
	base := startServer(t, hub, infraWebsocket.NewSemaphore(1), owner)

	_ = dial(t, base+"/ws/submissions/"+uuid.New().String())
	_, resp, err := gorilla.DefaultDialer.Dial(base+"/ws/submissions/"+uuid.New().String(), nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
}
