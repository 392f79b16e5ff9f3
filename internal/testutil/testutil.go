package testutil

import (
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rowan/character-forge/internal/api"
	"github.com/rowan/character-forge/internal/domain"
	"github.com/rowan/character-forge/internal/generation"
	"github.com/rowan/character-forge/internal/repository/gormstore"
	"github.com/rowan/character-forge/internal/service"
)

// TestDB wraps an isolated in-memory sqlite database. The store contract is
// engine-agnostic, so tests run against sqlite while production may use
// postgres through the same repository code.
type TestDB struct {
	DB *gorm.DB
}

func NewTestDB(t *testing.T) *TestDB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	// A second connection would see a different in-memory database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&domain.StoredCharacter{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		sqlDB.Close()
	})

	return &TestDB{DB: db}
}

// TestServer is a full HTTP stack over an in-memory database and a fake
// generation client.
type TestServer struct {
	Server   *httptest.Server
	DB       *TestDB
	Client   *FakeModelClient
	Services *service.Services
}

func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	testDB := NewTestDB(t)
	repos := gormstore.NewRepositories(testDB.DB)
	client := NewFakeModelClient()
	generator := generation.NewGenerator(client, zap.NewNop())
	services := service.NewServices(repos, generator, zap.NewNop())
	router := api.NewRouter(services, zap.NewNop())

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &TestServer{
		Server:   server,
		DB:       testDB,
		Client:   client,
		Services: services,
	}
}

func (ts *TestServer) URL(path string) string {
	return ts.Server.URL + path
}
