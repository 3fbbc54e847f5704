package e2e_tests

import (
	"bytes"
	"encoding/json"
	"hivesite/domain"
	dsn2 "hivesite/internal/service/dsn"
	"hivesite/internal/service/logger"
	"hivesite/internal/service/middleware"
	"hivesite/internal/service/router"
	userController "hivesite/internal/user/controller"
	userRepository "hivesite/internal/user/repository"
	userUsecase "hivesite/internal/user/usecase"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	dsn := dsn2.FromEnvE2E()
	if dsn == "" {
		t.Skip("DB_HOST_TEST not set")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(&domain.User{}, &domain.GameChallenge{}, &domain.Game{})
	require.NoError(t, err)

	return db
}

func cleanupTestDB(t *testing.T, db *gorm.DB) {
	err := db.Migrator().DropTable(&domain.Game{}, &domain.GameChallenge{}, &domain.User{})
	assert.NoError(t, err)
}

func setupServer(t *testing.T, db *gorm.DB) (*httptest.Server, middleware.JwtTokenService) {
	jwtToken, err := middleware.NewJwtToken("secret-key")
	require.NoError(t, err)

	err = logger.InitLoggers()
	require.NoError(t, err)

	userRepo := userRepository.NewUserRepository(db, nil)
	userUC := userUsecase.NewUserUsecase(userRepo)
	userHandler := userController.NewUserHandler(userUC)

	mainRouter := router.SetUpRoutes(userHandler, jwtToken)
	mainRouter.Use(middleware.RequestIDMiddleware)

	server := httptest.NewServer(mainRouter)
	t.Cleanup(server.Close)
	return server, jwtToken
}

func identityToken(t *testing.T, jwtToken middleware.JwtTokenService, uid string) string {
	token, err := jwtToken.Create(uid, time.Now().Add(24*time.Hour).Unix())
	require.NoError(t, err)
	return "Bearer " + token
}

func doRequest(t *testing.T, method, url, token string, body interface{}) *http.Response {
	var reader *bytes.Buffer
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(encoded)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("JWT-Token", token)
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	require.NoError(t, err)
	return resp
}

func TestUserLifecycleE2E(t *testing.T) {
	_ = godotenv.Load("../../../.env")
	db := setupTestDB(t)
	defer cleanupTestDB(t, db)

	server, jwtToken := setupServer(t, db)
	u1Token := identityToken(t, jwtToken, "identity-u1")
	u2Token := identityToken(t, jwtToken, "identity-u2")

	// U1 registers with a chosen username
	resp := doRequest(t, http.MethodPost, server.URL+"/api/user", u1Token, domain.NewUserRequest{Username: "black"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var u1 domain.User
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&u1))
	assert.Equal(t, "identity-u1", u1.Uid)
	assert.Equal(t, "black", u1.Username)
	assert.False(t, u1.IsGuest)

	// a second create for the same identity conflicts and changes nothing
	resp = doRequest(t, http.MethodPost, server.URL+"/api/user", u1Token, domain.NewUserRequest{Username: "white"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var stored domain.User
	require.NoError(t, db.First(&stored, "uid = ?", "identity-u1").Error)
	assert.Equal(t, "black", stored.Username)

	// U2 signs up as a guest
	resp = doRequest(t, http.MethodPost, server.URL+"/api/guest-user", u2Token, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var u2 domain.User
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&u2))
	assert.True(t, u2.IsGuest)
	assert.Regexp(t, regexp.MustCompile(`^guest-.+`), u2.Username)

	// U2's own challenge list is empty but accessible
	resp = doRequest(t, http.MethodGet, server.URL+"/api/user/identity-u2/challenges", u2Token, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var views []domain.GameChallengeResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&views))
	assert.Empty(t, views)

	// U2 may not read U1's challenge list
	resp = doRequest(t, http.MethodGet, server.URL+"/api/user/identity-u1/challenges", u2Token, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// no token at all is rejected before any lookup
	resp = doRequest(t, http.MethodGet, server.URL+"/api/user/identity-u1/challenges", "", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// a pending challenge shows up enriched with the challenger's username
	challenge := domain.GameChallenge{ChallengerUid: "identity-u1", GameType: "Base", ColorChoice: "random", CreatedAt: time.Now()}
	require.NoError(t, db.Create(&challenge).Error)

	resp = doRequest(t, http.MethodGet, server.URL+"/api/user/identity-u1/challenges", u1Token, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, json.NewDecoder(resp.Body).Decode(&views))
	require.Len(t, views, 1)
	assert.Equal(t, "black", views[0].ChallengerUsername)
	assert.Equal(t, "identity-u1", views[0].ChallengerUid)

	// public reads need no token
	resp = doRequest(t, http.MethodGet, server.URL+"/api/user/identity-u1", "", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doRequest(t, http.MethodGet, server.URL+"/api/user/identity-u1/games", "", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var games []domain.Game
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&games))
	assert.Empty(t, games)

	resp = doRequest(t, http.MethodGet, server.URL+"/api/user/no-such-identity", "", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
