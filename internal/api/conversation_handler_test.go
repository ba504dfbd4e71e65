package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"github.com/crisisvoices/backend/internal/api"
	"github.com/crisisvoices/backend/internal/api/mocks"
	"github.com/crisisvoices/backend/internal/auth"
	"github.com/crisisvoices/backend/internal/domain"
	"github.com/crisisvoices/backend/internal/middleware"
)

type conversationFixture struct {
	svc    *mocks.MockConversationService
	router http.Handler
	token  string
	userID uuid.UUID
}

func newConversationFixture(t *testing.T) *conversationFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := mocks.NewMockConversationService(ctrl)
	h := api.NewConversationHandler(svc, newTestLogger())

	jwt := auth.NewJWTManager("secret", time.Minute, time.Hour)
	userID := uuid.New()
	token, err := jwt.GenerateAccessToken(auth.Subject{UserID: userID})
	if err != nil {
		t.Fatal(err)
	}

	r := chi.NewRouter()
	r.Use(middleware.AuthMiddleware(jwt))
	r.Post("/conversations", h.Start)
	r.Get("/conversations", h.List)
	r.Get("/conversations/{conversationId}/messages", h.GetMessages)
	r.Post("/conversations/{conversationId}/messages", h.SendMessage)

	return &conversationFixture{svc: svc, router: r, token: token, userID: userID}
}

func (f *conversationFixture) do(method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, jsonBody(body))
	req.Header.Set("Authorization", "Bearer "+f.token)
	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)
	return rr
}

func TestStartConversation(t *testing.T) {
	t.Parallel()
	f := newConversationFixture(t)

	target := uuid.New()
	f.svc.EXPECT().StartConversation(gomock.Any(), f.userID, target).Return(&domain.Conversation{
		ID:           uuid.New(),
		Participants: []uuid.UUID{f.userID, target},
	}, nil)

	rr := f.do(http.MethodPost, "/conversations", `{"targetUserId":"`+target.String()+`"}`)
	expectStatus(t, rr, http.StatusOK)

	rr = f.do(http.MethodPost, "/conversations", `{"targetUserId":"not-a-uuid"}`)
	expectStatus(t, rr, http.StatusBadRequest)
}

func TestGetMessages_PassesSinceAndLimit(t *testing.T) {
	t.Parallel()
	f := newConversationFixture(t)

	convID := uuid.New()
	since := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	f.svc.EXPECT().
		GetMessages(gomock.Any(), convID, f.userID, gomock.Any(), 20).
		DoAndReturn(func(_ context.Context, _, _ uuid.UUID, got time.Time, _ int) ([]*domain.Message, error) {
			if !got.Equal(since) {
				t.Errorf("since = %v, want %v", got, since)
			}
			return []*domain.Message{}, nil
		})

	rr := f.do(http.MethodGet, "/conversations/"+convID.String()+"/messages?since=2024-03-01T12:00:00Z&limit=20", "")
	expectStatus(t, rr, http.StatusOK)
}

func TestGetMessages_BadQuery(t *testing.T) {
	t.Parallel()
	f := newConversationFixture(t)

	convID := uuid.New().String()
	for _, q := range []string{"?since=yesterday", "?limit=ten"} {
		rr := f.do(http.MethodGet, "/conversations/"+convID+"/messages"+q, "")
		expectStatus(t, rr, http.StatusBadRequest)
	}
}

func TestSendMessage_NotParticipant(t *testing.T) {
	t.Parallel()
	f := newConversationFixture(t)

	convID := uuid.New()
	f.svc.EXPECT().SendMessage(gomock.Any(), convID, f.userID, "hello").Return(nil, domain.ErrNotParticipant)

	rr := f.do(http.MethodPost, "/conversations/"+convID.String()+"/messages", `{"content":"hello"}`)
	expectStatus(t, rr, http.StatusForbidden)
}

func TestSendMessage_Created(t *testing.T) {
	t.Parallel()
	f := newConversationFixture(t)

	convID := uuid.New()
	f.svc.EXPECT().SendMessage(gomock.Any(), convID, f.userID, "hello").Return(&domain.Message{
		ID: uuid.New(), ConversationID: convID, SenderID: f.userID, Content: "hello",
	}, nil)

	rr := f.do(http.MethodPost, "/conversations/"+convID.String()+"/messages", `{"content":"hello"}`)
	expectStatus(t, rr, http.StatusCreated)
}
