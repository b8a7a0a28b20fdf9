// SPDX-License-Identifier: EPL-2.0

// Package httpapi exposes the ambient mixer over HTTP and a websocket score
// stream.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/K2976/Flow/clip"
	"github.com/K2976/Flow/mixer"
)

const defaultShutdownTimeout = 5 * time.Second

// Controller is the part of *mixer.Mixer the API drives.
type Controller interface {
	Start() mixer.Status
	Stop() mixer.Status
	UpdateForScore(score float64)
	SetFocusMode(enabled bool)
	PlayEventChime()
	PlayCompletionChime()
	SetMuted(muted bool)
	Snapshot() mixer.PlaybackState
	LayerStatus(l mixer.Layer) mixer.Status
	Clip(l mixer.Layer) *clip.Clip
}

// Event kinds accepted by POST /api/events.
const (
	EventAppSwitch    = "app_switch"
	EventNotification = "notification"
	EventMindWandered = "mind_wandered"
)

// Server is the Echo application.
type Server struct {
	echo            *echo.Echo
	ctrl            Controller
	log             *slog.Logger
	shutdownTimeout time.Duration
}

// Option configures a Server.
type Option func(*Server)

func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithShutdownTimeout bounds how long Run waits for in-flight requests.
func WithShutdownTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.shutdownTimeout = d
		}
	}
}

// New constructs an Echo app with REST and websocket routes bound to ctrl.
func New(ctrl Controller, opts ...Option) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())

	s := &Server{
		echo:            e,
		ctrl:            ctrl,
		log:             slog.Default(),
		shutdownTimeout: defaultShutdownTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerRoutes()
	return s
}

// Echo exposes the underlying Echo instance for tests.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

func (s *Server) registerRoutes() {
	s.echo.GET("/health", s.handleHealth)
	s.echo.GET("/api/state", s.handleState)
	s.echo.POST("/api/start", s.handleStart)
	s.echo.POST("/api/stop", s.handleStop)
	s.echo.POST("/api/score", s.handleScore)
	s.echo.POST("/api/focus", s.handleFocus)
	s.echo.POST("/api/mute", s.handleMute)
	s.echo.POST("/api/events", s.handleEvent)
	s.echo.POST("/api/completion", s.handleCompletion)
	s.echo.GET("/api/clips/:layer", s.handleClip)
	newScoreStream(s.ctrl, s.log).Register(s.echo)
}

// Run starts Echo and blocks until ctx cancellation or startup failure.
func (s *Server) Run(ctx context.Context, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		err := s.echo.Start(addr)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		_ = s.echo.Shutdown(shutCtx)
		return nil
	}
}

type healthResponse struct {
	Status string `json:"status"`
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, healthResponse{Status: "ok"})
}

type stateResponse struct {
	mixer.PlaybackState
	Layers map[string]mixer.Status `json:"layers"`
}

func (s *Server) state() stateResponse {
	layers := make(map[string]mixer.Status, len(mixer.Layers))
	for _, l := range mixer.Layers {
		layers[l.String()] = s.ctrl.LayerStatus(l)
	}
	return stateResponse{PlaybackState: s.ctrl.Snapshot(), Layers: layers}
}

func (s *Server) handleState(c echo.Context) error {
	return c.JSON(http.StatusOK, s.state())
}

type statusResponse struct {
	Status mixer.Status        `json:"status"`
	State  mixer.PlaybackState `json:"state"`
}

func (s *Server) handleStart(c echo.Context) error {
	st := s.ctrl.Start()
	if st != mixer.StatusOK {
		s.log.Warn("start degraded", "status", st)
	}
	return c.JSON(http.StatusOK, statusResponse{Status: st, State: s.ctrl.Snapshot()})
}

func (s *Server) handleStop(c echo.Context) error {
	st := s.ctrl.Stop()
	return c.JSON(http.StatusOK, statusResponse{Status: st, State: s.ctrl.Snapshot()})
}

type scoreRequest struct {
	Score *float64 `json:"score"`
}

func (s *Server) handleScore(c echo.Context) error {
	var req scoreRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid score payload")
	}
	if req.Score == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "score is required")
	}
	s.ctrl.UpdateForScore(*req.Score)
	return c.JSON(http.StatusOK, s.ctrl.Snapshot())
}

type focusRequest struct {
	Enabled bool `json:"enabled"`
}

func (s *Server) handleFocus(c echo.Context) error {
	var req focusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid focus payload")
	}
	s.ctrl.SetFocusMode(req.Enabled)
	return c.JSON(http.StatusOK, s.ctrl.Snapshot())
}

type muteRequest struct {
	Muted bool `json:"muted"`
}

func (s *Server) handleMute(c echo.Context) error {
	var req muteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid mute payload")
	}
	s.ctrl.SetMuted(req.Muted)
	return c.JSON(http.StatusOK, s.ctrl.Snapshot())
}

type eventRequest struct {
	Kind string `json:"kind"`
}

func (s *Server) handleEvent(c echo.Context) error {
	var req eventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid event payload")
	}
	switch req.Kind {
	case EventAppSwitch, EventNotification, EventMindWandered:
	default:
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("unknown event kind %q", req.Kind))
	}
	s.log.Debug("event chime", "kind", req.Kind)
	s.ctrl.PlayEventChime()
	return c.JSON(http.StatusOK, s.ctrl.Snapshot())
}

func (s *Server) handleCompletion(c echo.Context) error {
	s.ctrl.PlayCompletionChime()
	return c.JSON(http.StatusOK, s.ctrl.Snapshot())
}

func (s *Server) handleClip(c echo.Context) error {
	l, err := mixer.ParseLayer(c.Param("layer"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}

	cl := s.ctrl.Clip(l)
	if cl == nil {
		return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("no clip for %s", l))
	}

	h := c.Response().Header()
	h.Set(echo.HeaderContentType, "audio/wav")
	h.Set(echo.HeaderContentLength, strconv.Itoa(cl.Len()))
	h.Set(echo.HeaderContentDisposition, fmt.Sprintf(`inline; filename="%s.wav"`, l))
	c.Response().WriteHeader(http.StatusOK)
	_, err = cl.NewReader().WriteTo(c.Response().Writer)
	return err
}
