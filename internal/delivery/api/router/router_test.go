package router

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"nomad/config"
	apimiddleware "nomad/internal/delivery/api/middleware"
	"nomad/internal/delivery/api/router/handler"
	"nomad/internal/delivery/api/validator"
	"nomad/internal/delivery/middleware"
	workerhandler "nomad/internal/delivery/worker/handler"
	"nomad/internal/domain/constants"
	"nomad/internal/domain/entity"
	domainerrors "nomad/internal/domain/errors"
	"nomad/internal/domain/repository"
	"nomad/internal/domain/service"
	"nomad/internal/infra/auth"
	"nomad/internal/infra/presence"
	"nomad/internal/infra/transport/websocket"
	mockUsecase "nomad/internal/mocks/usecase"
	"nomad/internal/usecase"

	"github.com/google/uuid"
	gws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testAPI struct {
	echo          *echo.Echo
	tokens        service.TokenService
	registry      *presence.Registry
	messaging     *mockUsecase.MockMessagingUsecase
	matching      *mockUsecase.MockMatchingUsecase
	notifications *mockUsecase.MockNotificationUsecase
	business      *mockUsecase.MockBusinessUsecase
	devices       *mockUsecase.MockDeviceUsecase
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	cfg := &config.Config{Presence: config.DefaultPresenceConfig()}
	cfg.SecretKey.Access = "router-test-secret"
	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	a := &testAPI{
		tokens:        tokens,
		registry:      presence.NewRegistry(logger),
		messaging:     mockUsecase.NewMockMessagingUsecase(t),
		matching:      mockUsecase.NewMockMatchingUsecase(t),
		notifications: mockUsecase.NewMockNotificationUsecase(t),
		business:      mockUsecase.NewMockBusinessUsecase(t),
		devices:       mockUsecase.NewMockDeviceUsecase(t),
	}

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError
	e.Use(middleware.NewRequestIDMiddleware(logger).Process)

	NewRouter(RouterParams{
		HealthHandler: handler.NewHealthHandler(a.registry),
		MessageHandler: handler.NewMessageHandler(handler.MessageHandlerParams{
			MessagingUC: a.messaging,
			Logger:      logger,
		}),
		WebSocketHandler: handler.NewWebSocketHandler(handler.WebSocketHandlerParams{
			MessagingUC: a.messaging,
			Upgrader:    websocket.NewUpgrader(cfg, logger),
			Logger:      logger,
		}),
		BusinessHandler: handler.NewBusinessHandler(handler.BusinessHandlerParams{
			BusinessUC:     a.business,
			NotificationUC: a.notifications,
			Logger:         logger,
		}),
		DeviceHandler: handler.NewDeviceHandler(handler.DeviceHandlerParams{
			DeviceUC: a.devices,
			Logger:   logger,
		}),
		ContextHandler: handler.NewContextHandler(handler.ContextHandlerParams{
			MatchingUC: a.matching,
			Logger:     logger,
		}),
		PushHandler: workerhandler.NewPushHandler(workerhandler.PushHandlerParams{
			Config:         cfg,
			Logger:         logger,
			MatchingUC:     a.matching,
			NotificationUC: a.notifications,
		}),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(tokens),
	}).RegisterRoutes(e)

	a.echo = e

	return a
}

func (a *testAPI) token(t *testing.T, userID uuid.UUID, roles ...string) string {
	t.Helper()

	token, err := a.tokens.GenerateAccessToken(userID, "Tester", roles)
	require.NoError(t, err)

	return token
}

func (a *testAPI) do(t *testing.T, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func TestHealthCheck(t *testing.T) {
	a := newTestAPI(t)

	rec := a.do(t, http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	assert.JSONEq(t, `{"status":"ok","connections":0}`, string(env.Data))
	assert.NotEmpty(t, env.Meta.RequestID)
}

func TestAuthentication(t *testing.T) {
	a := newTestAPI(t)
	userID := uuid.New()

	tests := []struct {
		name     string
		method   string
		path     string
		token    string
		wantCode int
		wantErr  string
	}{
		{
			name:     "missing header",
			method:   http.MethodGet,
			path:     "/messages/unread",
			wantCode: http.StatusUnauthorized,
			wantErr:  "UNAUTHORIZED",
		},
		{
			name:     "garbage token",
			method:   http.MethodGet,
			path:     "/messages/unread",
			token:    "not-a-jwt",
			wantCode: http.StatusUnauthorized,
			wantErr:  "UNAUTHORIZED",
		},
		{
			name:     "query token only accepted on the websocket route",
			method:   http.MethodGet,
			path:     "/messages/unread?token=" + a.token(t, userID, constants.RoleUser),
			wantCode: http.StatusUnauthorized,
			wantErr:  "UNAUTHORIZED",
		},
		{
			name:     "business routes need the business role",
			method:   http.MethodGet,
			path:     "/business/location",
			token:    a.token(t, userID, constants.RoleUser),
			wantCode: http.StatusForbidden,
			wantErr:  "FORBIDDEN",
		},
		{
			name:     "internal routes need the service role",
			method:   http.MethodPost,
			path:     "/internal/context-changes",
			token:    a.token(t, userID, constants.RoleBusiness),
			wantCode: http.StatusForbidden,
			wantErr:  "FORBIDDEN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := a.do(t, tt.method, tt.path, tt.token, "")

			assert.Equal(t, tt.wantCode, rec.Code)
			env := decode(t, rec)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantErr, env.Error.Code)
			assert.Nil(t, env.Error.Details)
		})
	}
}

func TestSendMessage(t *testing.T) {
	a := newTestAPI(t)
	senderID, receiverID := uuid.New(), uuid.New()
	stored := entity.NewMessage(senderID, receiverID, "hello", entity.MessageKindPlain, time.Now())

	a.messaging.EXPECT().
		Send(mock.Anything, mock.MatchedBy(func(in *usecase.SendMessageInput) bool {
			return in.SenderID == senderID && in.SenderName == "Tester" &&
				in.ReceiverID == receiverID && in.Content == "hello"
		})).
		Return(stored, nil).
		Once()

	body := `{"receiver_id":"` + receiverID.String() + `","content":"hello"}`
	rec := a.do(t, http.MethodPost, "/messages", a.token(t, senderID, constants.RoleUser), body)

	assert.Equal(t, http.StatusCreated, rec.Code)
	var msg entity.Message
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &msg))
	assert.Equal(t, stored.ID, msg.ID)
	assert.False(t, msg.IsRead)
}

func TestSendMessage_Rejected(t *testing.T) {
	a := newTestAPI(t)
	token := a.token(t, uuid.New(), constants.RoleUser)

	tests := []struct {
		name string
		body string
	}{
		{name: "malformed body", body: `{"receiver_id":`},
		{name: "missing content", body: `{"receiver_id":"` + uuid.NewString() + `"}`},
		{name: "missing receiver", body: `{"content":"hi"}`},
		{name: "unknown kind", body: `{"receiver_id":"` + uuid.NewString() + `","content":"hi","kind":"shout"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := a.do(t, http.MethodPost, "/messages", token, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			env := decode(t, rec)
			require.NotNil(t, env.Error)
			assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
			assert.NotNil(t, env.Error.Details)
		})
	}
}

func TestSendMessage_StoreUnavailable(t *testing.T) {
	a := newTestAPI(t)

	a.messaging.EXPECT().
		Send(mock.Anything, mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrStoreUnavailable.WithDetails("connection refused"), "append message")).
		Once()

	body := `{"receiver_id":"` + uuid.NewString() + `","content":"hello"}`
	rec := a.do(t, http.MethodPost, "/messages", a.token(t, uuid.New(), constants.RoleUser), body)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	env := decode(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "STORE_UNAVAILABLE", env.Error.Code)
	assert.Nil(t, env.Error.Details)
}

func TestUnreadAndMarkRead(t *testing.T) {
	a := newTestAPI(t)
	userID, peerID := uuid.New(), uuid.New()
	token := a.token(t, userID, constants.RoleUser)
	now := time.Now()
	backlog := []*entity.Message{
		entity.NewMessage(peerID, userID, "hello", entity.MessageKindPlain, now),
		entity.NewMessage(peerID, userID, "are you there?", entity.MessageKindPlain, now.Add(time.Second)),
	}

	a.messaging.EXPECT().UnreadFor(mock.Anything, userID).Return(backlog, nil).Once()
	a.messaging.EXPECT().MarkRead(mock.Anything, userID).Return(int64(2), nil).Once()

	rec := a.do(t, http.MethodGet, "/messages/unread", token, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	var unread []*entity.Message
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &unread))
	require.Len(t, unread, 2)
	assert.Equal(t, "hello", unread[0].Content)
	assert.Equal(t, "are you there?", unread[1].Content)

	rec = a.do(t, http.MethodPost, "/messages/read", token, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"updated":2}`, string(decode(t, rec).Data))
}

func TestGetConversation(t *testing.T) {
	a := newTestAPI(t)
	userID, peerID := uuid.New(), uuid.New()
	token := a.token(t, userID, constants.RoleUser)

	a.messaging.EXPECT().
		Conversation(mock.Anything, userID, peerID, 20, 40).
		Return([]*entity.Message{}, nil).
		Once()

	rec := a.do(t, http.MethodGet, "/messages/conversation/"+peerID.String()+"?limit=20&offset=40", token, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"items":[],"limit":20,"offset":40}`, string(decode(t, rec).Data))

	for _, path := range []string{
		"/messages/conversation/not-a-uuid",
		"/messages/conversation/" + peerID.String() + "?limit=0",
		"/messages/conversation/" + peerID.String() + "?limit=1000",
		"/messages/conversation/" + peerID.String() + "?offset=-1",
		"/messages/conversation/" + peerID.String() + "?limit=ten",
	} {
		rec := a.do(t, http.MethodGet, path, token, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
	}
}

func TestGetPresence(t *testing.T) {
	a := newTestAPI(t)
	target := uuid.New()

	a.messaging.EXPECT().IsOnline(target).Return(true).Once()

	rec := a.do(t, http.MethodGet, "/presence/"+target.String(), a.token(t, uuid.New(), constants.RoleUser), "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"user_id":"`+target.String()+`","online":true}`, string(decode(t, rec).Data))
}

func TestBusinessLocation(t *testing.T) {
	a := newTestAPI(t)
	ownerID := uuid.New()
	token := a.token(t, ownerID, constants.RoleUser, constants.RoleBusiness)
	location := &entity.BusinessLocation{
		ID:                            uuid.New(),
		BusinessID:                    uuid.New(),
		Latitude:                      34.0195,
		Longitude:                     -118.4912,
		ProximityNotificationsEnabled: true,
	}

	a.business.EXPECT().
		UpdateLocation(mock.Anything, ownerID, &usecase.UpdateBusinessLocationInput{
			Latitude:                      34.0195,
			Longitude:                     -118.4912,
			ProximityNotificationsEnabled: true,
		}).
		Return(location, nil).
		Once()
	a.business.EXPECT().GetLocation(mock.Anything, ownerID).Return(location, nil).Once()

	body := `{"latitude":34.0195,"longitude":-118.4912,"proximity_notifications_enabled":true}`
	rec := a.do(t, http.MethodPut, "/business/location", token, body)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = a.do(t, http.MethodGet, "/business/location", token, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	var got entity.BusinessLocation
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &got))
	assert.Equal(t, location.BusinessID, got.BusinessID)

	rec = a.do(t, http.MethodPut, "/business/location", token, `{"latitude":123,"longitude":0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListNotifications(t *testing.T) {
	a := newTestAPI(t)
	ownerID := uuid.New()
	business := &entity.BusinessProfile{BusinessID: uuid.New(), OwnerUserID: ownerID}

	a.business.EXPECT().BusinessOf(mock.Anything, ownerID).Return(business, nil).Once()
	a.notifications.EXPECT().
		ListFor(mock.Anything, business.BusinessID, repository.NotificationListFilter{
			UnreadOnly: true,
			Limit:      10,
			Offset:     0,
		}).
		Return([]*entity.BusinessNotification{{ID: uuid.New(), BusinessID: business.BusinessID}}, nil).
		Once()

	token := a.token(t, ownerID, constants.RoleBusiness)
	rec := a.do(t, http.MethodGet, "/business/notifications?unread_only=true&limit=10", token, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	var page struct {
		Items []*entity.BusinessNotification `json:"items"`
		Limit int                            `json:"limit"`
	}
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &page))
	assert.Len(t, page.Items, 1)
	assert.Equal(t, 10, page.Limit)

	rec = a.do(t, http.MethodGet, "/business/notifications?unread_only=maybe", token, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNotificationTransitions(t *testing.T) {
	ownerID := uuid.New()
	business := &entity.BusinessProfile{BusinessID: uuid.New(), OwnerUserID: ownerID}
	own := &entity.BusinessNotification{ID: uuid.New(), BusinessID: business.BusinessID}
	foreign := &entity.BusinessNotification{ID: uuid.New(), BusinessID: uuid.New()}

	t.Run("mark own notification read", func(t *testing.T) {
		a := newTestAPI(t)
		a.business.EXPECT().BusinessOf(mock.Anything, ownerID).Return(business, nil).Once()
		a.notifications.EXPECT().Get(mock.Anything, own.ID).Return(own, nil).Once()
		a.notifications.EXPECT().
			MarkRead(mock.Anything, own.ID).
			Return(&entity.BusinessNotification{ID: own.ID, BusinessID: business.BusinessID, IsRead: true}, nil).
			Once()

		rec := a.do(t, http.MethodPost, "/business/notifications/"+own.ID.String()+"/read", a.token(t, ownerID, constants.RoleBusiness), "")

		assert.Equal(t, http.StatusOK, rec.Code)
		var got entity.BusinessNotification
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &got))
		assert.True(t, got.IsRead)
	})

	t.Run("another business' notification looks missing", func(t *testing.T) {
		a := newTestAPI(t)
		a.business.EXPECT().BusinessOf(mock.Anything, ownerID).Return(business, nil).Once()
		a.notifications.EXPECT().Get(mock.Anything, foreign.ID).Return(foreign, nil).Once()

		rec := a.do(t, http.MethodPost, "/business/notifications/"+foreign.ID.String()+"/process", a.token(t, ownerID, constants.RoleBusiness), "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "NOTIFICATION_NOT_FOUND", decode(t, rec).Error.Code)
	})

	t.Run("read after processed conflicts", func(t *testing.T) {
		a := newTestAPI(t)
		a.business.EXPECT().BusinessOf(mock.Anything, ownerID).Return(business, nil).Once()
		a.notifications.EXPECT().Get(mock.Anything, own.ID).Return(own, nil).Once()
		a.notifications.EXPECT().
			MarkRead(mock.Anything, own.ID).
			Return(nil, domainerrors.ErrInvalidTransition.WithDetails("notification already processed")).
			Once()

		rec := a.do(t, http.MethodPost, "/business/notifications/"+own.ID.String()+"/read", a.token(t, ownerID, constants.RoleBusiness), "")

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "INVALID_TRANSITION", decode(t, rec).Error.Code)
	})

	t.Run("process own notification", func(t *testing.T) {
		a := newTestAPI(t)
		a.business.EXPECT().BusinessOf(mock.Anything, ownerID).Return(business, nil).Once()
		a.notifications.EXPECT().Get(mock.Anything, own.ID).Return(own, nil).Once()
		a.notifications.EXPECT().
			MarkProcessed(mock.Anything, own.ID).
			Return(&entity.BusinessNotification{ID: own.ID, BusinessID: business.BusinessID, IsRead: true, IsProcessed: true}, nil).
			Once()

		rec := a.do(t, http.MethodPost, "/business/notifications/"+own.ID.String()+"/process", a.token(t, ownerID, constants.RoleBusiness), "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRegisterDevice(t *testing.T) {
	a := newTestAPI(t)
	userID := uuid.New()
	info := &usecase.DeviceInfo{FCMToken: "fcm-token", DeviceID: "pixel-8", Platform: "android"}

	a.devices.EXPECT().
		RegisterDevice(mock.Anything, userID, info).
		Return(&entity.UserDevice{ID: uuid.New(), UserID: userID, FCMToken: info.FCMToken}, nil).
		Once()

	token := a.token(t, userID, constants.RoleUser)
	rec := a.do(t, http.MethodPost, "/devices", token, `{"fcm_token":"fcm-token","device_id":"pixel-8","platform":"android"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = a.do(t, http.MethodPost, "/devices", token, `{"fcm_token":"fcm-token","device_id":"pixel-8","platform":"symbian"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReceiveContextChange(t *testing.T) {
	userID := uuid.New()
	body := `{"user_id":"` + userID.String() + `","hometown":{"city":"Santa Monica","state":"CA","country":"US"},"interests":["hiking"],"activities":[]}`
	matchesUser := mock.MatchedBy(func(c *entity.UserContext) bool {
		return c.UserID == userID && c.Hometown.City == "Santa Monica"
	})

	t.Run("evaluated inline", func(t *testing.T) {
		a := newTestAPI(t)
		a.matching.EXPECT().
			Evaluate(mock.Anything, matchesUser).
			Return([]*entity.BusinessNotification{{ID: uuid.New(), UserID: userID, MatchType: entity.MatchTypeLocalInterest}}, nil).
			Once()

		rec := a.do(t, http.MethodPost, "/internal/context-changes", a.token(t, uuid.New(), constants.RoleService), body)

		assert.Equal(t, http.StatusOK, rec.Code)
		var got struct {
			Created int `json:"created"`
		}
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &got))
		assert.Equal(t, 1, got.Created)
	})

	t.Run("queued for the worker", func(t *testing.T) {
		a := newTestAPI(t)
		a.matching.EXPECT().Enqueue(mock.Anything, matchesUser).Return(nil).Once()

		rec := a.do(t, http.MethodPost, "/internal/context-changes?async=true", a.token(t, uuid.New(), constants.RoleService), body)

		assert.Equal(t, http.StatusAccepted, rec.Code)
	})

	t.Run("missing user", func(t *testing.T) {
		a := newTestAPI(t)

		rec := a.do(t, http.MethodPost, "/internal/context-changes", a.token(t, uuid.New(), constants.RoleService), `{"hometown":{"city":"Austin"}}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed async flag", func(t *testing.T) {
		a := newTestAPI(t)

		rec := a.do(t, http.MethodPost, "/internal/context-changes?async=yes", a.token(t, uuid.New(), constants.RoleService), body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), decode(t, rec).Error.Code)
	})
}

func TestNotificationCreatedPush(t *testing.T) {
	ownerID := uuid.New()
	notificationID := uuid.New()

	data, err := json.Marshal(&service.NotificationCreatedEvent{
		NotificationID: notificationID.String(),
		BusinessID:     uuid.NewString(),
		OwnerUserID:    ownerID.String(),
		MatchType:      entity.MatchTypeTravelerInterest,
		Priority:       entity.PriorityNormal,
	})
	require.NoError(t, err)
	body, err := json.Marshal(map[string]any{
		"message": map[string]any{
			"data":       base64.StdEncoding.EncodeToString(data),
			"attributes": map[string]string{"event_type": constants.EventTypeNotificationCreated, "delivered": "false"},
			"messageId":  "m-2",
		},
		"subscription": "projects/p/subscriptions/nomad-api",
	})
	require.NoError(t, err)

	a := newTestAPI(t)
	a.notifications.EXPECT().
		Deliver(mock.Anything, mock.MatchedBy(func(e *service.NotificationCreatedEvent) bool {
			return e.NotificationID == notificationID.String() && e.OwnerUserID == ownerID.String() && !e.Delivered
		})).
		Return(nil).
		Once()

	rec := a.do(t, http.MethodPost, "/pubsub/push", "", string(body))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWebSocketSession(t *testing.T) {
	a := newTestAPI(t)
	userID, peerID := uuid.New(), uuid.New()
	backlog := entity.NewMessage(peerID, userID, "hello", entity.MessageKindPlain, time.Now())
	sent := entity.NewMessage(userID, peerID, "on my way", entity.MessageKindPlain, time.Now())
	disconnected := make(chan *entity.Connection, 1)

	var connected *entity.Connection
	a.messaging.EXPECT().
		Connect(mock.Anything, mock.AnythingOfType("*entity.Connection")).
		RunAndReturn(func(ctx context.Context, conn *entity.Connection) error {
			connected = conn

			return conn.Exclusive(func() error {
				return conn.Push(ctx, entity.NewMessagePayload(backlog, "Peer"))
			})
		}).
		Once()
	a.messaging.EXPECT().
		Send(mock.Anything, mock.MatchedBy(func(in *usecase.SendMessageInput) bool {
			return in.SenderID == userID && in.ReceiverID == peerID && in.Content == "on my way"
		})).
		Return(sent, nil).
		Once()
	a.messaging.EXPECT().
		Disconnect(mock.Anything, mock.AnythingOfType("*entity.Connection")).
		Run(func(_ context.Context, conn *entity.Connection) {
			disconnected <- conn
		}).
		Return().
		Once()

	srv := httptest.NewServer(a.echo)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?token=" + a.token(t, userID, constants.RoleUser)
	client, resp, err := gws.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	readFrame := func() map[string]any {
		t.Helper()
		require.NoError(t, client.SetReadDeadline(time.Now().Add(5*time.Second)))
		var frame map[string]any
		require.NoError(t, client.ReadJSON(&frame))

		return frame
	}

	frame := readFrame()
	assert.Equal(t, "message", frame["type"])
	assert.Equal(t, "hello", frame["data"].(map[string]any)["content"])

	require.NoError(t, client.WriteJSON(map[string]any{"type": "ping"}))
	assert.Equal(t, "pong", readFrame()["type"])

	require.NoError(t, client.WriteJSON(map[string]any{
		"type": "message",
		"data": map[string]any{"client_id": "c-1", "receiver_id": peerID, "content": "on my way"},
	}))
	frame = readFrame()
	assert.Equal(t, "ack", frame["type"])
	ack := frame["data"].(map[string]any)
	assert.Equal(t, "c-1", ack["client_id"])
	assert.Equal(t, sent.ID.String(), ack["message_id"])

	require.NoError(t, client.WriteJSON(map[string]any{"type": "shout"}))
	frame = readFrame()
	assert.Equal(t, "error", frame["type"])
	assert.Equal(t, "INVALID_MESSAGE", frame["data"].(map[string]any)["code"])

	require.NoError(t, client.WriteMessage(gws.CloseMessage, gws.FormatCloseMessage(gws.CloseNormalClosure, "bye")))
	_ = client.Close()

	select {
	case conn := <-disconnected:
		assert.Same(t, connected, conn)
		assert.Equal(t, userID, conn.UserID)
		assert.Equal(t, "Tester", conn.DisplayName)
	case <-time.After(5 * time.Second):
		t.Fatal("session was not disconnected")
	}
}

func TestWebSocketRequiresToken(t *testing.T) {
	a := newTestAPI(t)
	srv := httptest.NewServer(a.echo)
	defer srv.Close()

	_, resp, err := gws.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws", nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
