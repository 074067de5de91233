package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pokedex/internal/http/middleware"
	"pokedex/internal/model"
	"pokedex/internal/pokedex"
	"pokedex/internal/service"
	serviceMocks "pokedex/internal/service/mocks"
	"pokedex/internal/storage"
)

type testServices struct {
	catalog  *serviceMocks.MockCatalogService
	profiles *serviceMocks.MockProfileService
	dex      *serviceMocks.MockDexService
	missions *serviceMocks.MockMissionService
	shop     *serviceMocks.MockShopService
	teams    *serviceMocks.MockTeamService
}

func newTestApp(t *testing.T) (*fiber.App, testServices) {
	t.Helper()
	m := testServices{
		catalog:  new(serviceMocks.MockCatalogService),
		profiles: new(serviceMocks.MockProfileService),
		dex:      new(serviceMocks.MockDexService),
		missions: new(serviceMocks.MockMissionService),
		shop:     new(serviceMocks.MockShopService),
		teams:    new(serviceMocks.MockTeamService),
	}
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Use(middleware.RequestID())
	RegisterRoutes(app, nil, Services{
		Catalog:  m.catalog,
		Profiles: m.profiles,
		Dex:      m.dex,
		Missions: m.missions,
		Shop:     m.shop,
		Teams:    m.teams,
	})
	return app, m
}

func do(t *testing.T, app *fiber.App, method, path, userID string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req.Header.Set(middleware.UserIDHeader, userID)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func errorCode(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body errorPayload
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body.RequestID)
	return body.Error.Code
}

func TestHealthCheck(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	app := fiber.New()
	app.Get("/health", HealthCheck(db))

	t.Run("healthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(nil)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("unhealthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(errors.New("db error"))

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "SERVICE_UNAVAILABLE", body.Error.Code)
	})
}

func TestLiveness(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", Liveness())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestListPokemon(t *testing.T) {
	app, m := newTestApp(t)
	uid := uuid.NewString()

	t.Run("parses query", func(t *testing.T) {
		owned := true
		want := pokedex.Query{Search: "saur", Type: "grass", Generation: 1, Owned: &owned, Sort: "-name", Page: 2, PageSize: 10}
		page := &pokedex.Page[pokedex.Entry]{
			Items: []pokedex.Entry{{Species: model.Species{Number: 3, Name: "Venusaur"}, Owned: true}},
			Total: 11, Page: 2, PageSize: 10, TotalPages: 2,
		}
		m.catalog.On("List", mock.Anything, uid, want).Return(page, nil).Once()

		resp := do(t, app, http.MethodGet, "/pokemon?search=saur&type=grass&generation=1&owned=true&sort=-name&page=2&page_size=10", uid, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var got pokedex.Page[pokedex.Entry]
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Equal(t, 11, got.Total)
		require.Len(t, got.Items, 1)
		assert.True(t, got.Items[0].Owned)
		m.catalog.AssertExpectations(t)
	})

	t.Run("anonymous defaults", func(t *testing.T) {
		m.catalog.On("List", mock.Anything, "", pokedex.Query{Page: 1, PageSize: pokedex.DefaultPageSize}).
			Return(&pokedex.Page[pokedex.Entry]{Items: []pokedex.Entry{}}, nil).Once()

		resp := do(t, app, http.MethodGet, "/pokemon", "", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		m.catalog.AssertExpectations(t)
	})

	t.Run("invalid generation", func(t *testing.T) {
		resp := do(t, app, http.MethodGet, "/pokemon?generation=one", "", nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_GENERATION", errorCode(t, resp))
	})

	t.Run("invalid owned", func(t *testing.T) {
		resp := do(t, app, http.MethodGet, "/pokemon?owned=maybe", "", nil)
		assert.Equal(t, "INVALID_OWNED", errorCode(t, resp))
	})

	t.Run("invalid sort", func(t *testing.T) {
		m.catalog.On("List", mock.Anything, "", mock.MatchedBy(func(q pokedex.Query) bool { return q.Sort == "weight" })).
			Return(nil, service.ErrInvalidSort).Once()

		resp := do(t, app, http.MethodGet, "/pokemon?sort=weight", "", nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_SORT", errorCode(t, resp))
	})

	t.Run("malformed user", func(t *testing.T) {
		resp := do(t, app, http.MethodGet, "/pokemon", "ash", nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_USER_ID", errorCode(t, resp))
	})
}

func TestGetPokemon(t *testing.T) {
	app, m := newTestApp(t)

	m.catalog.On("Get", mock.Anything, 25).Return(&model.Species{Number: 25, Name: "Pikachu"}, nil).Once()
	resp := do(t, app, http.MethodGet, "/pokemon/25", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var sp model.Species
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&sp))
	assert.Equal(t, "Pikachu", sp.Name)

	m.catalog.On("Get", mock.Anything, 2000).Return(nil, service.ErrSpeciesNotFound).Once()
	resp = do(t, app, http.MethodGet, "/pokemon/2000", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "SPECIES_NOT_FOUND", errorCode(t, resp))

	resp = do(t, app, http.MethodGet, "/pokemon/pikachu", "", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_NUMBER", errorCode(t, resp))
}

func TestGetEvolution(t *testing.T) {
	app, m := newTestApp(t)
	root := &pokedex.EvolutionNode{
		Species:   model.Species{Number: 172, Name: "Pichu"},
		EvolvesTo: []*pokedex.EvolutionNode{{Species: model.Species{Number: 25, Name: "Pikachu"}, EvolvesTo: []*pokedex.EvolutionNode{}}},
	}
	m.catalog.On("Evolution", mock.Anything, 25).Return(&service.EvolutionResult{Chain: root, Stages: pokedex.Flatten(root)}, nil).Once()

	resp := do(t, app, http.MethodGet, "/pokemon/25/evolution", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var got service.EvolutionResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, 172, got.Chain.Species.Number)
	require.Len(t, got.Stages, 2)
	assert.Equal(t, 1, got.Stages[1].Depth)
}

func TestProfiles(t *testing.T) {
	app, m := newTestApp(t)
	uid := uuid.NewString()

	t.Run("create", func(t *testing.T) {
		m.profiles.On("Create", mock.Anything, "ash").Return(&model.Profile{ID: uid, Username: "ash", Gold: 500, Level: 1}, nil).Once()
		resp := do(t, app, http.MethodPost, "/profiles", "", map[string]string{"username": "ash"})
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("create taken", func(t *testing.T) {
		m.profiles.On("Create", mock.Anything, "misty").Return(nil, service.ErrUsernameTaken).Once()
		resp := do(t, app, http.MethodPost, "/profiles", "", map[string]string{"username": "misty"})
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Equal(t, "USERNAME_TAKEN", errorCode(t, resp))
	})

	t.Run("create invalid body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/profiles", strings.NewReader("{"))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_BODY", errorCode(t, resp))
	})

	t.Run("get public", func(t *testing.T) {
		m.profiles.On("Get", mock.Anything, uid).Return(&model.Profile{ID: uid}, nil).Once()
		resp := do(t, app, http.MethodGet, "/profiles/"+uid, "", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("me requires user", func(t *testing.T) {
		resp := do(t, app, http.MethodGet, "/me", "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "USER_REQUIRED", errorCode(t, resp))
	})

	t.Run("me", func(t *testing.T) {
		m.profiles.On("Get", mock.Anything, uid).Return(&model.Profile{ID: uid, Username: "ash"}, nil).Once()
		resp := do(t, app, http.MethodGet, "/me", uid, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("rename", func(t *testing.T) {
		m.profiles.On("Rename", mock.Anything, uid, "red").Return(&model.Profile{ID: uid, Username: "red"}, nil).Once()
		resp := do(t, app, http.MethodPatch, "/me", uid, map[string]string{"username": "red"})
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("home unknown profile", func(t *testing.T) {
		m.profiles.On("Home", mock.Anything, uid).Return(nil, service.ErrProfileNotFound).Once()
		resp := do(t, app, http.MethodGet, "/me/home", uid, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "PROFILE_NOT_FOUND", errorCode(t, resp))
	})

	t.Run("trainer card", func(t *testing.T) {
		m.profiles.On("TrainerCard", mock.Anything, uid).Return([]byte("\x89PNG"), nil).Once()
		resp := do(t, app, http.MethodGet, "/me/trainer-card.png", uid, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	})

	t.Run("ledger", func(t *testing.T) {
		m.profiles.On("Ledger", mock.Anything, uid, 5, 10).Return(&service.LedgerPage{Items: []model.LedgerEntry{}, Limit: 5, Offset: 10}, nil).Once()
		resp := do(t, app, http.MethodGet, "/me/ledger?limit=5&offset=10", uid, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		resp = do(t, app, http.MethodGet, "/me/ledger?limit=abc", uid, nil)
		assert.Equal(t, "INVALID_LIMIT", errorCode(t, resp))
	})

	m.profiles.AssertExpectations(t)
}

func TestDex(t *testing.T) {
	app, m := newTestApp(t)
	uid := uuid.NewString()
	dex := &service.LivingDex{Numbers: []int{25}}

	m.dex.On("Owned", mock.Anything, uid).Return(dex, nil).Once()
	resp := do(t, app, http.MethodGet, "/me/dex", uid, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	m.dex.On("Mark", mock.Anything, uid, 25).Return(dex, nil).Once()
	resp = do(t, app, http.MethodPut, "/me/dex/25", uid, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	m.dex.On("Unmark", mock.Anything, uid, 1026).Return(nil, service.ErrInvalidNumber).Once()
	resp = do(t, app, http.MethodDelete, "/me/dex/1026", uid, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_NUMBER", errorCode(t, resp))

	m.dex.On("MarkBulk", mock.Anything, uid, []int{1, 4, 7}).Return(dex, nil).Once()
	resp = do(t, app, http.MethodPost, "/me/dex", uid, map[string][]int{"numbers": {1, 4, 7}})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	m.dex.AssertExpectations(t)
}

func TestMissions(t *testing.T) {
	app, m := newTestApp(t)
	uid := uuid.NewString()
	mid := uuid.NewString()

	m.missions.On("List", mock.Anything, uid).Return(nil, nil).Once()
	resp := do(t, app, http.MethodGet, "/me/missions", uid, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var list map[string][]model.UserMission
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	assert.NotNil(t, list["data"])

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not completed", service.ErrMissionNotCompleted, http.StatusConflict, "MISSION_NOT_COMPLETED"},
		{"already claimed", service.ErrMissionAlreadyClaimed, http.StatusConflict, "MISSION_ALREADY_CLAIMED"},
		{"unknown", service.ErrMissionNotFound, http.StatusNotFound, "MISSION_NOT_FOUND"},
		{"internal", errors.New("db down"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m.missions.On("Claim", mock.Anything, uid, mid).Return(nil, tt.err).Once()
			resp := do(t, app, http.MethodPost, "/me/missions/"+mid+"/claim", uid, nil)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Equal(t, tt.wantCode, errorCode(t, resp))
		})
	}

	m.missions.On("Claim", mock.Anything, uid, mid).Return(&service.ClaimResult{RewardGold: 100, LevelsGained: 1}, nil).Once()
	resp = do(t, app, http.MethodPost, "/me/missions/"+mid+"/claim", uid, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var res service.ClaimResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.Equal(t, int64(100), res.RewardGold)
}

func TestShop(t *testing.T) {
	app, m := newTestApp(t)
	uid := uuid.NewString()
	iid := uuid.NewString()

	m.shop.On("ListItems", mock.Anything, "badge").Return([]model.ShopItem{{ID: iid}}, nil).Once()
	resp := do(t, app, http.MethodGet, "/shop/items?category=badge", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	m.shop.On("ListItems", mock.Anything, "hat").Return(nil, service.ErrInvalidCategory).Once()
	resp = do(t, app, http.MethodGet, "/shop/items?category=hat", "", nil)
	assert.Equal(t, "INVALID_CATEGORY", errorCode(t, resp))

	m.shop.On("ItemImageURL", mock.Anything, iid).Return("https://minio.local/items/x.png?sig", nil).Once()
	resp = do(t, app, http.MethodGet, "/shop/items/"+iid+"/image", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var img map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&img))
	assert.Equal(t, "https://minio.local/items/x.png?sig", img["url"])

	m.shop.On("OpenItemImage", mock.Anything, iid).
		Return(io.NopCloser(strings.NewReader("png-bytes")), storage.ObjectInfo{Size: 9, ContentType: "image/png"}, nil).Once()
	resp = do(t, app, http.MethodGet, "/shop/items/"+iid+"/image?raw=true", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get(fiber.HeaderContentType))
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(raw))

	m.shop.On("OpenItemImage", mock.Anything, iid).Return(nil, storage.ObjectInfo{}, service.ErrImageUnavailable).Once()
	resp = do(t, app, http.MethodGet, "/shop/items/"+iid+"/image?raw=true", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = do(t, app, http.MethodPost, "/shop/items/"+iid+"/purchase", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	m.shop.On("Purchase", mock.Anything, uid, iid).Return(nil, service.ErrInsufficientGold).Once()
	resp = do(t, app, http.MethodPost, "/shop/items/"+iid+"/purchase", uid, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "INSUFFICIENT_GOLD", errorCode(t, resp))

	m.shop.On("Purchase", mock.Anything, uid, iid).Return(&service.PurchaseResult{Profile: model.Profile{Gold: 100}}, nil).Once()
	resp = do(t, app, http.MethodPost, "/shop/items/"+iid+"/purchase", uid, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	m.shop.On("Inventory", mock.Anything, uid).Return([]model.InventoryItem{{Item: model.ShopItem{ID: iid}, Equipped: true}}, nil).Once()
	resp = do(t, app, http.MethodGet, "/me/inventory", uid, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	m.shop.On("Equip", mock.Anything, uid, iid).Return(nil, service.ErrNotOwned).Once()
	resp = do(t, app, http.MethodPost, "/me/inventory/"+iid+"/equip", uid, nil)
	assert.Equal(t, "NOT_OWNED", errorCode(t, resp))

	m.shop.On("Unequip", mock.Anything, uid, "theme").Return(&model.Profile{ID: uid}, nil).Once()
	resp = do(t, app, http.MethodDelete, "/me/equipped/theme", uid, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	m.shop.AssertExpectations(t)
}

func TestTeams(t *testing.T) {
	app, m := newTestApp(t)
	uid := uuid.NewString()
	tid := uuid.NewString()
	in := service.TeamInput{Name: "Kanto", Members: []int{1, 4, 7}}

	m.teams.On("Create", mock.Anything, uid, in).Return(&model.Team{ID: tid, Name: "Kanto", Members: []int{1, 4, 7}}, nil).Once()
	resp := do(t, app, http.MethodPost, "/me/teams", uid, in)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	m.teams.On("Create", mock.Anything, uid, in).Return(nil, service.ErrTeamLimit).Once()
	resp = do(t, app, http.MethodPost, "/me/teams", uid, in)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "TEAM_LIMIT", errorCode(t, resp))

	m.teams.On("List", mock.Anything, uid).Return([]model.Team{{ID: tid}}, nil).Once()
	resp = do(t, app, http.MethodGet, "/me/teams", uid, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	m.teams.On("Get", mock.Anything, uid, tid).Return(nil, service.ErrTeamNotFound).Once()
	resp = do(t, app, http.MethodGet, "/me/teams/"+tid, uid, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "TEAM_NOT_FOUND", errorCode(t, resp))

	m.teams.On("Update", mock.Anything, uid, tid, service.TeamInput{Name: "", Members: []int{1}}).Return(nil, service.ErrInvalidTeamName).Once()
	resp = do(t, app, http.MethodPut, "/me/teams/"+tid, uid, service.TeamInput{Members: []int{1}})
	assert.Equal(t, "INVALID_TEAM_NAME", errorCode(t, resp))

	m.teams.On("Delete", mock.Anything, uid, tid).Return(nil).Once()
	resp = do(t, app, http.MethodDelete, "/me/teams/"+tid, uid, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	m.teams.AssertExpectations(t)
}

func TestRouting(t *testing.T) {
	app, _ := newTestApp(t)

	t.Run("not found route", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/non-existent", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "NOT_FOUND", res.Error.Code)
	})

	t.Run("method not allowed", func(t *testing.T) {
		// Health endpoint only allows GET
		req := httptest.NewRequest(http.MethodPost, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "METHOD_NOT_ALLOWED", res.Error.Code)
	})
}
