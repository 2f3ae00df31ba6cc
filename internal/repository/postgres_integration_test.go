//go:build integration

package repository

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"testing"
	"time"

	"scribe_tree_writer/internal/config"
	"scribe_tree_writer/internal/model"

	"github.com/google/uuid"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var pgDB *gorm.DB

// TestMain は PostgreSQL コンテナを起動し、NewDB 経由で接続します。
func TestMain(m *testing.M) {
	testLogger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("Could not construct pool: %s", err)
	}
	pool.MaxWait = 120 * time.Second

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=user",
			"POSTGRES_PASSWORD=secret",
			"POSTGRES_DB=scribe_tree",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		log.Fatalf("Could not start PostgreSQL resource: %s", err)
	}

	dbCfg := config.DatabaseConfig{
		URL:             fmt.Sprintf("postgres://user:secret@%s/scribe_tree?sslmode=disable", resource.GetHostPort("5432/tcp")),
		MaxIdleConns:    2,
		MaxOpenConns:    5,
		ConnMaxLifetime: time.Minute,
		SlowThreshold:   time.Second,
		AutoMigrate:     true,
	}
	if err := pool.Retry(func() error {
		var errRetry error
		pgDB, errRetry = NewDB(dbCfg, testLogger)
		return errRetry
	}); err != nil {
		pool.Purge(resource)
		log.Fatalf("Could not connect to PostgreSQL: %s", err)
	}

	code := m.Run()

	if err := pool.Purge(resource); err != nil {
		log.Printf("Could not purge resource: %s", err)
	}
	os.Exit(code)
}

func TestPostgres_CreateVersionConflict(t *testing.T) {
	ctx := context.Background()
	repo := NewGormDocumentRepository()
	doc := &model.Document{DocumentID: uuid.New(), UserID: uuid.New(), Title: "Essay"}
	require.NoError(t, repo.Create(ctx, pgDB, doc))

	v1 := &model.DocumentVersion{VersionID: uuid.New(), DocumentID: doc.DocumentID, VersionNumber: 1, Content: "a"}
	require.NoError(t, repo.CreateVersion(ctx, pgDB, v1))

	dup := &model.DocumentVersion{VersionID: uuid.New(), DocumentID: doc.DocumentID, VersionNumber: 1, Content: "b"}
	assert.ErrorIs(t, repo.CreateVersion(ctx, pgDB, dup), model.ErrConflict)
}

func TestPostgres_InteractionStats(t *testing.T) {
	ctx := context.Background()
	repo := NewGormInteractionRepository()
	userID := uuid.New()
	docID := uuid.New()
	for i, qt := range []model.QuestionType{model.QuestionCritical, model.QuestionCritical, model.QuestionClarifying} {
		require.NoError(t, repo.Create(ctx, pgDB, &model.Interaction{
			InteractionID:   uuid.New(),
			UserID:          userID,
			DocumentID:      docID,
			UserMessage:     fmt.Sprintf("q%d", i),
			AIResponse:      "What do you think?",
			AILevel:         model.LevelAdvanced,
			QuestionType:    qt,
			ResponseTimeMs:  100 * (i + 1),
			FollowUpPrompts: []string{"x"},
		}))
	}

	stats, err := repo.StatsByQuestionType(ctx, pgDB, userID)
	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, model.QuestionClarifying, stats[0].QuestionType)
	assert.Equal(t, int64(1), stats[0].Count)
	assert.Equal(t, model.QuestionCritical, stats[1].QuestionType)
	assert.InDelta(t, 150.0, stats[1].AvgResponseTimeMs, 1e-9)

	docs, err := repo.CountDistinctDocuments(ctx, pgDB, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), docs)
}
