package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/zeetechinnovations/pet-adoption-portal/internal/config"
	"github.com/zeetechinnovations/pet-adoption-portal/internal/middleware"
	"github.com/zeetechinnovations/pet-adoption-portal/internal/models"
	"github.com/zeetechinnovations/pet-adoption-portal/internal/services"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type noopNotifier struct{}

func (noopNotifier) Send(to, subject, body string) error { return nil }

type testEnv struct {
	app *fiber.App
	db  *gorm.DB
	cfg *config.Config
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{}, &models.Pet{}, &models.AdoptionRequest{}, &models.Message{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg := &config.Config{JWTSecret: "test-secret", JWTAccessExpiry: 15 * time.Minute}

	handler := NewMessageHandler(services.NewMessageService(db, noopNotifier{}))

	app := fiber.New()
	protected := app.Group("/api", middleware.JWTProtected(cfg))
	protected.Get("/pets/:id/messages", handler.Thread)
	protected.Post("/pets/:id/messages", handler.Command)
	protected.Put("/messages/:id", handler.Edit)

	return &testEnv{app: app, db: db, cfg: cfg}
}

func (e *testEnv) createUser(t *testing.T, email string) *models.User {
	t.Helper()
	user := &models.User{ID: uuid.New(), Email: email, Password: "x", Name: email}
	if err := e.db.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func (e *testEnv) createPet(t *testing.T, owner *models.User) *models.Pet {
	t.Helper()
	pet := &models.Pet{ID: uuid.New(), Name: "Rex", PetType: "dog", OwnerID: owner.ID, Location: "Berlin"}
	if err := e.db.Create(pet).Error; err != nil {
		t.Fatalf("create pet: %v", err)
	}
	return pet
}

func (e *testEnv) approveAdoption(t *testing.T, pet *models.Pet, adopter *models.User) {
	t.Helper()
	req := &models.AdoptionRequest{
		ID: uuid.New(), PetID: pet.ID, AdopterID: adopter.ID, Status: models.RequestApproved,
	}
	if err := e.db.Create(req).Error; err != nil {
		t.Fatalf("create request: %v", err)
	}
}

func (e *testEnv) seedMessage(t *testing.T, pet *models.Pet, sender, receiver *models.User, content string) {
	t.Helper()
	msg := &models.Message{
		ID: uuid.New(), SenderID: sender.ID, ReceiverID: receiver.ID, PetID: pet.ID, Content: content,
	}
	if err := e.db.Create(msg).Error; err != nil {
		t.Fatalf("seed message: %v", err)
	}
}

func (e *testEnv) token(t *testing.T, user *models.User) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":   user.ID.String(),
		"email": user.Email,
		"role":  user.Role,
		"exp":   time.Now().Add(e.cfg.JWTAccessExpiry).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(e.cfg.JWTSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func (e *testEnv) request(t *testing.T, method, path, token string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := e.app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}

	raw, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	var parsed map[string]any
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &parsed); err != nil {
			t.Fatalf("decode response %q: %v", raw, err)
		}
	}
	return resp, parsed
}

func TestCommandRequiresAuth(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createUser(t, "owner@example.com")
	pet := env.createPet(t, owner)

	resp, _ := env.request(t, http.MethodPost, "/api/pets/"+pet.ID.String()+"/messages", "",
		map[string]any{"action": "send", "content": "hi"})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}

func TestCommandSendPinDelete(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createUser(t, "owner@example.com")
	adopter := env.createUser(t, "adopter@example.com")
	pet := env.createPet(t, owner)
	env.approveAdoption(t, pet, adopter)
	path := "/api/pets/" + pet.ID.String() + "/messages"
	token := env.token(t, adopter)

	// Without an approved request or a received message, sending is refused.
	stranger := env.createUser(t, "stranger@example.com")
	resp, _ := env.request(t, http.MethodPost, path, env.token(t, stranger),
		map[string]any{"action": "send", "content": "hello"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("stranger send status = %d, want 400", resp.StatusCode)
	}

	resp, body := env.request(t, http.MethodPost, path, token,
		map[string]any{"action": "send", "content": "hello"})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("send status = %d, want 201, body %v", resp.StatusCode, body)
	}
	msg, ok := body["message"].(map[string]any)
	if !ok {
		t.Fatalf("no message in response: %v", body)
	}
	messageID := msg["id"].(string)

	resp, body = env.request(t, http.MethodPost, path, token,
		map[string]any{"action": "pin", "message_id": messageID})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("pin status = %d, body %v", resp.StatusCode, body)
	}
	if pinned, _ := body["is_pinned"].(bool); !pinned {
		t.Errorf("is_pinned = %v, want true", body["is_pinned"])
	}

	// Someone else cannot pin another sender's message.
	resp, _ = env.request(t, http.MethodPost, path, env.token(t, owner),
		map[string]any{"action": "unpin", "message_id": messageID})
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("foreign unpin status = %d, want 403", resp.StatusCode)
	}

	resp, _ = env.request(t, http.MethodPost, path, token,
		map[string]any{"action": "delete", "message_id": messageID})
	if resp.StatusCode != http.StatusOK {
		t.Errorf("delete status = %d, want 200", resp.StatusCode)
	}

	var count int64
	env.db.Model(&models.Message{}).Count(&count)
	if count != 0 {
		t.Errorf("message count = %d, want 0", count)
	}
}

func TestCommandUnknownAction(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createUser(t, "owner@example.com")
	pet := env.createPet(t, owner)

	resp, body := env.request(t, http.MethodPost, "/api/pets/"+pet.ID.String()+"/messages",
		env.token(t, owner), map[string]any{"action": "archive"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
	if body["message"] != "Unknown action" {
		t.Errorf("message = %v", body["message"])
	}
}

func TestThreadEndpoint(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createUser(t, "owner@example.com")
	adopter := env.createUser(t, "adopter@example.com")
	pet := env.createPet(t, owner)
	path := "/api/pets/" + pet.ID.String() + "/messages"

	// The owner opened the conversation, so the adopter may reply even
	// before any approval.
	env.seedMessage(t, pet, owner, adopter, "still interested?")

	if resp, _ := env.request(t, http.MethodPost, path, env.token(t, adopter),
		map[string]any{"action": "send", "content": "hello"}); resp.StatusCode != http.StatusCreated {
		t.Fatalf("send status = %d", resp.StatusCode)
	}

	resp, body := env.request(t, http.MethodGet, path, env.token(t, adopter), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("thread status = %d", resp.StatusCode)
	}
	msgs, ok := body["messages"].([]any)
	if !ok || len(msgs) != 2 {
		t.Errorf("messages = %v, want two entries", body["messages"])
	}
	recipient, ok := body["recipient"].(map[string]any)
	if !ok || recipient["email"] != owner.Email {
		t.Errorf("recipient = %v, want %s", body["recipient"], owner.Email)
	}

	// Before any approval the owner has nobody to reply to.
	_, body = env.request(t, http.MethodGet, path, env.token(t, owner), nil)
	if body["recipient"] != nil {
		t.Errorf("owner recipient = %v, want null", body["recipient"])
	}
}
