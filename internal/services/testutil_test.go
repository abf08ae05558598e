package services_test

import (
	"bytes"
	"encoding/json"
	"image"
	"image/png"
	"mime/multipart"
	"sync"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"novanest_backend/internal/config"
	"novanest_backend/internal/email"
	"novanest_backend/internal/imageprocessor"
	"novanest_backend/internal/logger"
	"novanest_backend/internal/models"
	"novanest_backend/internal/services"
	"novanest_backend/internal/services/dto"
	"novanest_backend/internal/storage"
)

var testConfigOnce sync.Once

func initTestConfig() {
	testConfigOnce.Do(func() {
		cfg := &config.Config{}
		cfg.Server.Env = "test"
		cfg.JWT.Secret = "test-secret-key-0123456789"
		cfg.JWT.TTL = 60
		config.AppConfig = cfg
		logger.Init("test")
	})
}

// mockEmailProvider records welcome sends instead of dialing SMTP.
type mockEmailProvider struct {
	welcomes []string
}

func (m *mockEmailProvider) Send(*email.Email) error { return nil }

func (m *mockEmailProvider) SendWithTemplate(string, email.TemplateData, *email.Email) error {
	return nil
}

func (m *mockEmailProvider) SendWelcome(to, name, role string) error {
	m.welcomes = append(m.welcomes, to)
	return nil
}

type testEnv struct {
	db        *gorm.DB
	container *services.ServiceContainer
	email     *mockEmailProvider
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	initTestConfig()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Startup{},
		&models.Message{},
		&models.Notification{},
		&models.StartupAnalytics{},
		&models.AnalyticsEvent{},
	))

	store, err := storage.NewStorage(storage.Config{
		Type:     "local",
		BasePath: t.TempDir(),
		BaseURL:  "http://files.test",
	})
	require.NoError(t, err)

	emailProvider := &mockEmailProvider{}
	processor := imageprocessor.NewProcessor(85)
	container := services.NewServiceContainer(db, store, processor, emailProvider, 50*1024*1024)

	return &testEnv{db: db, container: container, email: emailProvider}
}

func (env *testEnv) signup(t *testing.T, name, emailAddr string, role models.UserRole) *dto.AuthResponse {
	t.Helper()

	resp, err := env.container.AuthService.Signup(&dto.SignupRequest{
		Name:     name,
		Email:    emailAddr,
		Password: "password123",
		Role:     role,
	})
	require.NoError(t, err)
	return resp
}

func (env *testEnv) createStartup(t *testing.T, founderID, name string) *models.Startup {
	t.Helper()

	startup := &models.Startup{
		FounderID:   founderID,
		Name:        name,
		Description: "A test venture",
		Industry:    "Fintech",
		Stage:       "seed",
		FundingGoal: 100000,
	}
	require.NoError(t, env.db.Create(startup).Error)
	return startup
}

// makeFileHeader builds a real multipart.FileHeader the way gin would
// hand it to the handler.
func makeFileHeader(t *testing.T, field, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	reader := multipart.NewReader(&buf, writer.Boundary())
	form, err := reader.ReadForm(int64(len(content)) + 1<<20)
	require.NoError(t, err)
	return form.File[field][0]
}

func makePNG(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func rawJSON(t *testing.T, v interface{}) json.RawMessage {
	t.Helper()

	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}
