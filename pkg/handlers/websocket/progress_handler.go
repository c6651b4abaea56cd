package websocket

import (
	"time"

	"github.com/NeuralTrust/TrustPost/pkg/app/submission"
	"github.com/NeuralTrust/TrustPost/pkg/common"
	"github.com/NeuralTrust/TrustPost/pkg/infra/prometheus"
	infraWebsocket "github.com/NeuralTrust/TrustPost/pkg/infra/websocket"
	"github.com/NeuralTrust/TrustPost/pkg/middleware"
	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	defaultPingInterval = 20 * time.Second
	defaultIdleTimeout  = 10 * time.Minute
	writeTimeout        = 5 * time.Second
)

type ProgressHandlerOptions struct {
	PingInterval time.Duration
	IdleTimeout  time.Duration
}

type progressHandler struct {
	logger       *logrus.Logger
	hub          *submission.ProgressHub
	pingInterval time.Duration
	idleTimeout  time.Duration
}

// NewProgressHandler streams the state transitions of one submission to its
// author. The stream ends after a terminal state.
func NewProgressHandler(
	logger *logrus.Logger,
	hub *submission.ProgressHub,
	opts ProgressHandlerOptions,
) Handler {
	if opts.PingInterval <= 0 {
		opts.PingInterval = defaultPingInterval
	}
	if opts.IdleTimeout <= 0 {
		opts.IdleTimeout = defaultIdleTimeout
	}
	return &progressHandler{
		logger:       logger,
		hub:          hub,
		pingInterval: opts.PingInterval,
		idleTimeout:  opts.IdleTimeout,
	}
}

func (h *progressHandler) Handle(c *websocket.Conn) {
	if semaphore, ok := c.Locals(middleware.SemaphoreLocalKey).(*infraWebsocket.Semaphore); ok {
		defer func() {
			semaphore.Release()
			prometheus.WebsocketConnections.Set(float64(semaphore.Current()))
		}()
	}
	defer func() {
		_ = c.Close()
	}()

	rawID := c.Params("id")
	submissionID, err := uuid.Parse(rawID)
	if err != nil {
		h.writeFrame(c, infraWebsocket.ErrorFrame(rawID, "invalid submission id"))
		return
	}
	userID, _ := c.Locals(common.UserIDContextKey).(string)
	logger := h.logger.WithFields(logrus.Fields{
		"submission_id": submissionID.String(),
		"user_id":       userID,
	})

	events, cancel := h.hub.Subscribe(submissionID)
	defer cancel()

	// The client never sends anything useful; reading only detects close.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ping := time.NewTicker(h.pingInterval)
	defer ping.Stop()
	idle := time.NewTimer(h.idleTimeout)
	defer idle.Stop()

	logger.Debug("progress stream opened")
	for {
		select {
		case ev := <-events:
			if ev.UserID != "" && ev.UserID != userID {
				logger.Warn("progress stream requested by a non-owner")
				h.writeFrame(c, infraWebsocket.ErrorFrame(submissionID.String(), "forbidden"))
				return
			}
			if !h.writeFrame(c, progressFrame(ev)) {
				return
			}
			if ev.State.Terminal() {
				h.writeFrame(c, infraWebsocket.Frame{
					Type:         infraWebsocket.FrameClosed,
					SubmissionID: submissionID.String(),
					At:           time.Now().UTC(),
				})
				logger.Debug("progress stream finished")
				return
			}
			if !idle.Stop() {
				<-idle.C
			}
			idle.Reset(h.idleTimeout)
		case <-ping.C:
			deadline := time.Now().Add(writeTimeout)
			if err := c.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				logger.WithError(err).Debug("ping failed")
				return
			}
		case <-idle.C:
			h.writeFrame(c, infraWebsocket.ErrorFrame(submissionID.String(), "no progress received"))
			return
		case <-closed:
			logger.Debug("progress stream closed by client")
			return
		}
	}
}

func (h *progressHandler) writeFrame(c *websocket.Conn, frame infraWebsocket.Frame) bool {
	_ = c.SetWriteDeadline(time.Now().Add(writeTimeout))
	if err := c.WriteJSON(frame); err != nil {
		h.logger.WithError(err).Debug("failed to write progress frame")
		return false
	}
	return true
}

func progressFrame(ev submission.Event) infraWebsocket.Frame {
	return infraWebsocket.Frame{
		Type:         infraWebsocket.FrameProgress,
		SubmissionID: ev.SubmissionID.String(),
		State:        string(ev.State),
		Reason:       string(ev.Reason),
		Message:      ev.Message,
		Terminal:     ev.State.Terminal(),
		At:           ev.At,
	}
}
