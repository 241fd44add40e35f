package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	auth "github.com/nhossain/bistro-server/internal/middleware/auth"
	"github.com/nhossain/bistro-server/internal/models"
	"github.com/nhossain/bistro-server/internal/service"
	"github.com/nhossain/bistro-server/internal/transport"
)

type fakeUserStore struct {
	byEmail     map[string]*models.User
	inserts     []bson.M
	deletes     []primitive.ObjectID
	grants      []primitive.ObjectID
	deleteCount int64
	matched     int64
	modified    int64
	err         error
}

func (f *fakeUserStore) All(ctx context.Context) ([]models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	users := make([]models.User, 0, len(f.byEmail))
	for _, u := range f.byEmail {
		users = append(users, *u)
	}
	return users, nil
}

func (f *fakeUserStore) ByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byEmail[email], nil
}

func (f *fakeUserStore) Insert(ctx context.Context, doc bson.M) (primitive.ObjectID, error) {
	if f.err != nil {
		return primitive.NilObjectID, f.err
	}
	f.inserts = append(f.inserts, doc)
	return primitive.NewObjectID(), nil
}

func (f *fakeUserStore) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.deletes = append(f.deletes, id)
	return f.deleteCount, nil
}

func (f *fakeUserStore) GrantAdmin(ctx context.Context, id primitive.ObjectID) (int64, int64, error) {
	if f.err != nil {
		return 0, 0, f.err
	}
	f.grants = append(f.grants, id)
	return f.matched, f.modified, nil
}

type fakeMenuStore struct {
	items   map[primitive.ObjectID]bson.M
	inserts []bson.M
	patches []transport.MenuItemPatch
	deletes []primitive.ObjectID
	calls   int
}

func (f *fakeMenuStore) All(ctx context.Context) ([]bson.M, error) {
	f.calls++
	items := make([]bson.M, 0, len(f.items))
	for _, it := range f.items {
		items = append(items, it)
	}
	return items, nil
}

func (f *fakeMenuStore) ByID(ctx context.Context, id primitive.ObjectID) (bson.M, error) {
	f.calls++
	return f.items[id], nil
}

func (f *fakeMenuStore) Insert(ctx context.Context, doc bson.M) (primitive.ObjectID, error) {
	f.calls++
	f.inserts = append(f.inserts, doc)
	return primitive.NewObjectID(), nil
}

func (f *fakeMenuStore) Update(ctx context.Context, id primitive.ObjectID, patch transport.MenuItemPatch) (int64, int64, error) {
	f.calls++
	f.patches = append(f.patches, patch)
	if _, ok := f.items[id]; !ok {
		return 0, 0, nil
	}
	return 1, 1, nil
}

func (f *fakeMenuStore) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	f.calls++
	f.deletes = append(f.deletes, id)
	if _, ok := f.items[id]; !ok {
		return 0, nil
	}
	delete(f.items, id)
	return 1, nil
}

type fakeCartStore struct {
	items map[primitive.ObjectID]bson.M
	err   error
}

func newFakeCartStore() *fakeCartStore {
	return &fakeCartStore{items: map[primitive.ObjectID]bson.M{}}
}

func (f *fakeCartStore) ByEmail(ctx context.Context, email string) ([]bson.M, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []bson.M
	for _, it := range f.items {
		if it["email"] == email {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeCartStore) Insert(ctx context.Context, doc bson.M) (primitive.ObjectID, error) {
	if f.err != nil {
		return primitive.NilObjectID, f.err
	}
	id := primitive.NewObjectID()
	f.items[id] = doc
	return id, nil
}

func (f *fakeCartStore) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	if _, ok := f.items[id]; !ok {
		return 0, nil
	}
	delete(f.items, id)
	return 1, nil
}

func (f *fakeCartStore) DeleteMany(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var count int64
	for _, id := range ids {
		if _, ok := f.items[id]; ok {
			delete(f.items, id)
			count++
		}
	}
	return count, nil
}

type fakePaymentStore struct {
	records []models.Payment
	inserts []bson.M
	err     error
}

func (f *fakePaymentStore) ByEmail(ctx context.Context, email string) ([]models.Payment, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Payment
	for _, p := range f.records {
		if p.Email == email {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePaymentStore) Insert(ctx context.Context, doc bson.M) (primitive.ObjectID, error) {
	if f.err != nil {
		return primitive.NilObjectID, f.err
	}
	f.inserts = append(f.inserts, doc)
	return primitive.NewObjectID(), nil
}

type fakeSearcher struct {
	queries []string
	froms   []int
	sizes   []int
	total   int64
	hits    []map[string]any
	err     error
}

func (f *fakeSearcher) Search(ctx context.Context, query string, from, size int) (int64, []map[string]any, error) {
	f.queries = append(f.queries, query)
	f.froms = append(f.froms, from)
	f.sizes = append(f.sizes, size)
	if f.err != nil {
		return 0, nil, f.err
	}
	return f.total, f.hits, nil
}

type fakeReviewStore struct {
	reviews []bson.M
}

func (f *fakeReviewStore) All(ctx context.Context) ([]bson.M, error) {
	return f.reviews, nil
}

type fakeIntentClient struct {
	amounts []int64
	secret  string
	err     error
}

func (f *fakeIntentClient) CreateIntent(ctx context.Context, amount int64) (string, error) {
	f.amounts = append(f.amounts, amount)
	if f.err != nil {
		return "", f.err
	}
	return f.secret, nil
}

type fakeStatsStore struct {
	stats transport.Stats
	err   error
}

func (f *fakeStatsStore) Snapshot(ctx context.Context) (transport.Stats, error) {
	return f.stats, f.err
}

type fakePublisher struct {
	events []map[string]any
	err    error
}

func (f *fakePublisher) PublishEvent(ctx context.Context, key string, event any) error {
	if m, ok := event.(map[string]any); ok {
		f.events = append(f.events, m)
	}
	if f.err != nil {
		return f.err
	}
	return nil
}

var errUpstream = errors.New("upstream failure")

type testEnv struct {
	e       *echo.Echo
	tokens  *service.TokenService
	users   *fakeUserStore
	menu    *fakeMenuStore
	carts   *fakeCartStore
	pays    *fakePaymentStore
	reviews *fakeReviewStore
	search  *fakeSearcher
	intents *fakeIntentClient
	stats   *fakeStatsStore
	pub     *fakePublisher
}

func newTestEnv() *testEnv {
	env := &testEnv{
		tokens:  &service.TokenService{Secret: []byte("test-secret")},
		users:   &fakeUserStore{byEmail: map[string]*models.User{}, deleteCount: 1, matched: 1, modified: 1},
		menu:    &fakeMenuStore{items: map[primitive.ObjectID]bson.M{}},
		carts:   newFakeCartStore(),
		pays:    &fakePaymentStore{},
		reviews: &fakeReviewStore{},
		search:  &fakeSearcher{},
		intents: &fakeIntentClient{secret: "pi_test_secret_abc"},
		stats:   &fakeStatsStore{},
		pub:     &fakePublisher{},
	}

	guard := &auth.Guard{Tokens: env.tokens, Users: env.users}

	env.e = echo.New()
	Register(env.e, &Deps{
		Guard:         guard,
		AuthHandler:   &AuthHTTP{Tokens: env.tokens},
		UserHandler:   &UserHTTP{Store: env.users, Events: env.pub},
		MenuHandler:   &MenuHTTP{Store: env.menu, Events: env.pub, Searcher: env.search},
		ReviewHandler: &ReviewHTTP{Store: env.reviews},
		CartHandler:   &CartHTTP{Store: env.carts},
		PaymentHandler: &PaymentHTTP{
			Store:   env.pays,
			Carts:   env.carts,
			Intents: env.intents,
			Events:  env.pub,
		},
		StatsHandler: &StatsHTTP{Store: env.stats},
	})
	return env
}

func payment(email string, price float64) models.Payment {
	return models.Payment{
		ID:    primitive.NewObjectID(),
		Email: email,
		Price: price,
	}
}

func (env *testEnv) seedUser(email, role string) {
	env.users.byEmail[email] = &models.User{
		ID:    primitive.NewObjectID(),
		Email: email,
		Role:  role,
	}
}

func (env *testEnv) token(t *testing.T, email string) string {
	t.Helper()
	tok, err := env.tokens.Issue(map[string]any{"email": email})
	require.NoError(t, err)
	return tok
}

func (env *testEnv) request(method, path string, body any, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, rec.Code, "body: %s", rec.Body.String())
}
