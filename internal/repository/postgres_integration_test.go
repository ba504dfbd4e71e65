//go:build integration

package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"github.com/crisisvoices/backend/internal/domain"
)

var (
	testPool *pgxpool.Pool
	tc       testcontainers.Container
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
			"POSTGRES_DB":       "crisisvoices",
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
		).WithDeadline(90 * time.Second),
	}

	var err error
	tc, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		fmt.Println("cannot start container:", err)
		os.Exit(1)
	}

	host, _ := tc.Host(ctx)
	port, _ := tc.MappedPort(ctx, "5432/tcp")
	dsn := fmt.Sprintf("postgres://postgres:postgres@%s:%s/crisisvoices?sslmode=disable", host, port.Port())

	testPool, err = pgxpool.New(ctx, dsn)
	if err != nil {
		fmt.Println("pgxpool.New:", err)
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	if err := RunMigrations(testPool, zap.NewNop()); err != nil {
		fmt.Println("RunMigrations:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	code := m.Run()

	testPool.Close()
	_ = tc.Terminate(ctx)
	os.Exit(code)
}

func resetTables(t *testing.T) {
	t.Helper()
	_, err := testPool.Exec(context.Background(), `TRUNCATE TABLE messages, conversations, stories, users, crises`)
	if err != nil {
		t.Fatalf("truncate: %v", err)
	}
}

func seedCrisis(t *testing.T, repo *PostgresRepository, id string) {
	t.Helper()
	now := time.Now().UTC()
	_, err := repo.UpsertCrisis(context.Background(), &domain.Crisis{
		ID: id, Name: id, Location: domain.CrisisLocation{Lat: 50.4501, Lng: 30.5234},
		Severity: domain.SeverityHigh, IsActive: true, AllowStorySubmissions: true,
		CreatedAt: now, UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("UpsertCrisis: %v", err)
	}
}

func TestPostgres_StoryLifecycle(t *testing.T) {
	resetTables(t)
	ctx := context.Background()
	repo := NewPostgresRepository(testPool)
	seedCrisis(t, repo, "ukraine-conflict")

	for i := 1; i <= 3; i++ {
		if _, err := repo.CreateStory(ctx, newStory(fmt.Sprintf("s%d", i), "ukraine-conflict")); err != nil {
			t.Fatalf("CreateStory: %v", err)
		}
	}

	if _, err := repo.CreateStory(ctx, newStory("orphan", "no-such-crisis")); !errors.Is(err, domain.ErrCrisisNotFound) {
		t.Errorf("err = %v, want ErrCrisisNotFound", err)
	}

	at := time.Now().UTC().Truncate(time.Microsecond)
	for _, id := range []string{"s3", "s1"} {
		_, err := repo.ModerateStory(ctx, domain.ModerationAction{StoryID: id, Action: domain.DecisionApprove, ModeratorID: "mod"}, at)
		if err != nil {
			t.Fatalf("ModerateStory: %v", err)
		}
	}
	flagged, err := repo.ModerateStory(ctx, domain.ModerationAction{StoryID: "s2", Action: domain.DecisionFlag, Notes: "needs fact-check", ModeratorID: "mod"}, at)
	if err != nil {
		t.Fatalf("ModerateStory: %v", err)
	}
	if flagged.ModerationStatus != domain.StatusFlagged || flagged.ModerationNotes != "needs fact-check" {
		t.Errorf("flagged = %+v", flagged)
	}

	approved, err := repo.ListStories(ctx, domain.StatusApproved, "ukraine-conflict")
	if err != nil {
		t.Fatal(err)
	}
	if len(approved) != 2 || approved[0].ID != "s1" || approved[1].ID != "s3" {
		t.Errorf("approved = %v, want [s1 s3]", ids(approved))
	}

	pending, _ := repo.ListStories(ctx, domain.StatusPending, "")
	if len(pending) != 0 {
		t.Errorf("pending = %v, want none", ids(pending))
	}

	if _, err := repo.GetStoryByID(ctx, "missing"); !errors.Is(err, domain.ErrStoryNotFound) {
		t.Errorf("err = %v, want ErrStoryNotFound", err)
	}
}

func TestPostgres_ConcurrentLikes(t *testing.T) {
	resetTables(t)
	ctx := context.Background()
	repo := NewPostgresRepository(testPool)
	seedCrisis(t, repo, "c1")
	_, _ = repo.CreateStory(ctx, newStory("s1", "c1"))

	const n = 50
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			if _, err := repo.IncrementLikes(ctx, "s1"); err != nil {
				t.Errorf("IncrementLikes: %v", err)
			}
		}()
	}
	wg.Wait()

	got, _ := repo.GetStoryByID(ctx, "s1")
	if got.Likes != n {
		t.Errorf("likes = %d, want %d", got.Likes, n)
	}
}

func TestPostgres_UsersAndConversations(t *testing.T) {
	resetTables(t)
	ctx := context.Background()
	repo := NewPostgresRepository(testPool)

	alice, err := repo.CreateUser(ctx, domain.CreateUserParams{Email: "alice@example.org", Name: "Alice", GoogleID: "g-a"})
	if err != nil {
		t.Fatal(err)
	}
	bob, err := repo.CreateUser(ctx, domain.CreateUserParams{Email: "bob@example.org", Name: "Bob"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := repo.CreateUser(ctx, domain.CreateUserParams{Email: "ALICE@example.org"}); !errors.Is(err, domain.ErrUserAlreadyExists) {
		t.Errorf("err = %v, want ErrUserAlreadyExists", err)
	}

	c1, err := repo.GetOrCreateConversation(ctx, alice.ID, bob.ID)
	if err != nil {
		t.Fatal(err)
	}
	c2, err := repo.GetOrCreateConversation(ctx, bob.ID, alice.ID)
	if err != nil || c2.ID != c1.ID {
		t.Fatalf("second GetOrCreateConversation = %v, %v", c2, err)
	}

	base := time.Now().UTC().Truncate(time.Microsecond)
	for i := 0; i < 3; i++ {
		_, err := repo.CreateMessage(ctx, &domain.Message{
			ID: uuid.New(), ConversationID: c1.ID, SenderID: bob.ID,
			Content: fmt.Sprintf("m%d", i), CreatedAt: base.Add(time.Duration(i) * time.Second),
		})
		if err != nil {
			t.Fatal(err)
		}
	}

	msgs, err := repo.ListMessages(ctx, c1.ID, base, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(msgs) != 2 || msgs[0].Content != "m1" {
		t.Errorf("messages = %+v", msgs)
	}

	convs, _ := repo.ListConversations(ctx, alice.ID)
	if len(convs) != 1 || convs[0].LastMessage == nil || convs[0].LastMessage.Content != "m2" {
		t.Errorf("conversations = %+v", convs)
	}

	_, err = repo.CreateMessage(ctx, &domain.Message{ID: uuid.New(), ConversationID: uuid.New(), SenderID: bob.ID, Content: "x", CreatedAt: base})
	if !errors.Is(err, domain.ErrConversationNotFound) {
		t.Errorf("err = %v, want ErrConversationNotFound", err)
	}
}
