// SPDX-License-Identifier: EPL-2.0

package httpapi

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

const (
	writeTimeout = 5 * time.Second
	readLimit    = 4 << 10
)

// scoreMessage is one inbound score update.
type scoreMessage struct {
	Score *float64 `json:"score"`
}

type errorMessage struct {
	Error string `json:"error"`
}

// scoreStream feeds cognitive load scores from a websocket client into
// the mixer and answers each one with the resulting state.
type scoreStream struct {
	ctrl     Controller
	log      *slog.Logger
	upgrader websocket.Upgrader
}

func newScoreStream(ctrl Controller, log *slog.Logger) *scoreStream {
	return &scoreStream{
		ctrl: ctrl,
		log:  log,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(_ *http.Request) bool { return true },
		},
	}
}

// Register binds the stream route on an Echo router.
func (h *scoreStream) Register(e *echo.Echo) {
	e.GET("/ws/score", h.handle)
}

func (h *scoreStream) handle(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return fmt.Errorf("upgrade websocket: %w", err)
	}
	h.serveConn(conn)
	return nil
}

func (h *scoreStream) serveConn(conn *websocket.Conn) {
	defer conn.Close()

	conn.SetReadLimit(readLimit)
	h.log.Debug("score stream connected", "remote", conn.RemoteAddr())

	for {
		var in scoreMessage
		if err := conn.ReadJSON(&in); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.log.Debug("score stream closed", "err", err)
			}
			return
		}

		var out any
		if in.Score == nil {
			out = errorMessage{Error: "score is required"}
		} else {
			h.ctrl.UpdateForScore(*in.Score)
			out = h.ctrl.Snapshot()
		}

		_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteJSON(out); err != nil {
			return
		}
	}
}
