package domain_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/crisisvoices/backend/internal/domain"
	"github.com/crisisvoices/backend/internal/repository"
)

func TestConversationService(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryRepository()
	svc := domain.NewConversationService(repo, repo)

	alice, _ := repo.CreateUser(ctx, domain.CreateUserParams{Email: "alice@example.org", Name: "Alice"})
	bob, _ := repo.CreateUser(ctx, domain.CreateUserParams{Email: "bob@example.org", Name: "Bob"})
	eve, _ := repo.CreateUser(ctx, domain.CreateUserParams{Email: "eve@example.org", Name: "Eve"})

	conv, err := svc.StartConversation(ctx, alice.ID, bob.ID)
	if err != nil {
		t.Fatal(err)
	}
	same, _ := svc.StartConversation(ctx, bob.ID, alice.ID)
	if same.ID != conv.ID {
		t.Error("StartConversation is not idempotent per pair")
	}

	before := time.Now().Add(-time.Second)
	if _, err := svc.SendMessage(ctx, conv.ID, alice.ID, "  hello  "); err != nil {
		t.Fatal(err)
	}

	msgs, err := svc.GetMessages(ctx, conv.ID, bob.ID, before, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(msgs) != 1 || msgs[0].Content != "hello" || msgs[0].SenderID != alice.ID {
		t.Errorf("messages = %+v", msgs)
	}

	if _, err := svc.GetMessages(ctx, conv.ID, eve.ID, time.Time{}, 0); !errors.Is(err, domain.ErrNotParticipant) {
		t.Errorf("eve read: err = %v, want ErrNotParticipant", err)
	}
	if _, err := svc.SendMessage(ctx, conv.ID, eve.ID, "hi"); !errors.Is(err, domain.ErrNotParticipant) {
		t.Errorf("eve write: err = %v, want ErrNotParticipant", err)
	}
}

func TestConversationService_Validation(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryRepository()
	svc := domain.NewConversationService(repo, repo)
	alice, _ := repo.CreateUser(ctx, domain.CreateUserParams{Email: "alice@example.org"})

	if _, err := svc.StartConversation(ctx, alice.ID, alice.ID); err == nil {
		t.Error("conversation with self accepted")
	}
	if _, err := svc.StartConversation(ctx, alice.ID, uuid.New()); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("err = %v, want ErrUserNotFound", err)
	}

	for _, content := range []string{"", "   ", strings.Repeat("x", domain.MaxMessageLength+1)} {
		_, err := svc.SendMessage(ctx, uuid.New(), alice.ID, content)
		if _, ok := fieldsOf(t, err)["content"]; !ok {
			t.Errorf("content %d chars: err = %v", len(content), err)
		}
	}

	if _, err := svc.SendMessage(ctx, uuid.New(), alice.ID, "hi"); !errors.Is(err, domain.ErrConversationNotFound) {
		t.Errorf("err = %v, want ErrConversationNotFound", err)
	}
}
