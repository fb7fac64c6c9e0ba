package wire

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"customer-crm/internal/data/entity"
	"customer-crm/internal/data/repository"
	mockRepo "customer-crm/internal/mocks/repository"
	"customer-crm/pkg/utils"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const cookieName = "crm_session"

type testApp struct {
	mocks  *mockRepo.Mocks
	router http.Handler
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	m := mockRepo.NewMocks(t)
	config := &utils.Config{
		Session: utils.SessionConfig{CookieName: cookieName, TTLHours: 1},
	}
	app := Wiring(m.Repo, config, zap.NewNop())
	return &testApp{mocks: m, router: app.Router}
}

// signIn registers a live session for a user in groups and returns its token.
func (a *testApp) signIn(username string, groups ...string) (string, *entity.User) {
	user := &entity.User{
		Base:     entity.Base{ID: uuid.New()},
		Username: username,
		IsActive: true,
	}
	token := uuid.New()

	a.mocks.Session.EXPECT().FindValidSession(mock.Anything, token.String()).
		Return(&entity.Session{UserID: user.ID, Token: token}, nil)
	a.mocks.User.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)
	a.mocks.Group.EXPECT().FindNamesByUserID(mock.Anything, user.ID).Return(groups, nil)

	return token.String(), user
}

func (a *testApp) do(method, target, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: cookieName, Value: token})
	}

	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

type route struct {
	method string
	path   string
}

func adminRoutes() []route {
	id := uuid.NewString()
	return []route{
		{http.MethodGet, "/"},
		{http.MethodGet, "/products"},
		{http.MethodGet, "/user"},
		{http.MethodGet, "/customer/" + id},
		{http.MethodGet, "/create_order/" + id},
		{http.MethodPost, "/create_order/" + id},
		{http.MethodGet, "/update_order/" + id},
		{http.MethodPost, "/update_order/" + id},
		{http.MethodGet, "/delete_order/" + id},
		{http.MethodPost, "/delete_order/" + id},
	}
}

func TestRouter_AnonymousIsSentToLogin(t *testing.T) {
	app := newTestApp(t)

	for _, rt := range adminRoutes() {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			rec := app.do(rt.method, rt.path, "", "")

			assert.Equal(t, http.StatusFound, rec.Code)
			assert.Equal(t, LoginURL, rec.Header().Get("Location"))
			assert.NotContains(t, rec.Body.String(), `"data"`)
		})
	}
}

func TestRouter_CustomerIsForbidden(t *testing.T) {
	app := newTestApp(t)
	token, _ := app.signIn("alice", "customer")

	for _, rt := range adminRoutes() {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			rec := app.do(rt.method, rt.path, token, "")

			assert.Equal(t, http.StatusForbidden, rec.Code)

			var body utils.Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Status)
			assert.Nil(t, body.Data)
		})
	}
}

func TestRouter_AmbiguousRoleIsForbidden(t *testing.T) {
	app := newTestApp(t)
	both, _ := app.signIn("mallory", "admin", "customer")
	none, _ := app.signIn("nobody")

	assert.Equal(t, http.StatusForbidden, app.do(http.MethodGet, "/", both, "").Code)
	assert.Equal(t, http.StatusForbidden, app.do(http.MethodGet, "/", none, "").Code)
}

func TestRouter_RegisteredCustomerCannotReachDashboard(t *testing.T) {
	app := newTestApp(t)
	m := app.mocks

	m.User.EXPECT().FindByUsername(mock.Anything, "alice").Return(nil, nil)
	m.User.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.User")).Return(nil)
	m.Group.EXPECT().AddUser(mock.Anything, mock.AnythingOfType("uuid.UUID"), "customer").Return(nil).Once()
	m.Customer.EXPECT().Create(mock.Anything, mock.MatchedBy(func(c *entity.Customer) bool {
		return c.Name == "alice"
	})).Return(nil).Once()

	rec := app.do(http.MethodPost, "/register", "",
		`{"username":"alice","email":"alice@example.com","password1":"wonderland","password2":"wonderland"}`)
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, LoginURL, rec.Header().Get("Location"))

	token, _ := app.signIn("alice", "customer")
	rec = app.do(http.MethodGet, "/", token, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "You are not authorized to view this page")
}

func TestRouter_RegisterValidationEchoesForm(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodPost, "/register", "",
		`{"username":"alice","email":"alice@example.com","password1":"wonderland","password2":"different"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Data   map[string]string `json:"data"`
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "alice", body.Data["username"])
	assert.Empty(t, body.Data["password1"])
	assert.Contains(t, body.Errors, "password2")
}

func TestRouter_RegisterRaceReportsUsernameTaken(t *testing.T) {
	app := newTestApp(t)
	m := app.mocks

	m.User.EXPECT().FindByUsername(mock.Anything, "alice").Return(nil, nil)
	m.User.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.User")).
		Return(errors.Wrap(repository.ErrDuplicateUsername, "create user alice"))

	rec := app.do(http.MethodPost, "/register", "",
		`{"username":"alice","email":"alice@example.com","password1":"wonderland","password2":"wonderland"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "A user with that username already exists", body.Errors["username"])
}

func TestRouter_OversizedBodyIsRejected(t *testing.T) {
	app := newTestApp(t)

	padding := strings.Repeat("a", 2<<20)
	rec := app.do(http.MethodPost, "/register", "",
		`{"username":"alice","email":"`+padding+`"}`)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	app.mocks.User.AssertNotCalled(t, "FindByUsername", mock.Anything, mock.Anything)
}

func TestRouter_LoginSetsSessionCookie(t *testing.T) {
	app := newTestApp(t)
	m := app.mocks

	hash, err := utils.HashPassword("supersecret")
	require.NoError(t, err)
	admin := &entity.User{Base: entity.Base{ID: uuid.New()}, Username: "root", PasswordHash: hash, IsActive: true}

	m.User.EXPECT().FindByUsername(mock.Anything, "root").Return(admin, nil)
	m.Session.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Session")).Return(nil)
	m.User.EXPECT().UpdateLastLogin(mock.Anything, admin.ID, mock.AnythingOfType("time.Time")).Return(nil)
	m.Group.EXPECT().FindNamesByUserID(mock.Anything, admin.ID).Return([]string{"admin"}, nil)

	rec := app.do(http.MethodPost, "/login", "", `{"username":"root","password":"supersecret"}`)
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, HomeURL, rec.Header().Get("Location"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, cookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	_, err = uuid.Parse(cookies[0].Value)
	assert.NoError(t, err)
}

func TestRouter_LoginRejectsBadPassword(t *testing.T) {
	app := newTestApp(t)
	app.mocks.User.EXPECT().FindByUsername(mock.Anything, "root").Return(nil, nil)

	rec := app.do(http.MethodPost, "/login", "", `{"username":"root","password":"guess"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "username or password is incorrect")
	assert.Empty(t, rec.Result().Cookies())
}

func TestRouter_SignedInUserSkipsLogin(t *testing.T) {
	app := newTestApp(t)
	token, _ := app.signIn("root", "admin")

	rec := app.do(http.MethodGet, "/login", token, "")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, HomeURL, rec.Header().Get("Location"))
}

func TestRouter_Logout(t *testing.T) {
	app := newTestApp(t)
	token, _ := app.signIn("root", "admin")
	app.mocks.Session.EXPECT().Revoke(mock.Anything, token).Return(nil).Once()

	rec := app.do(http.MethodGet, "/logout", token, "")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, LoginURL, rec.Header().Get("Location"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "", cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestRouter_DeleteWithoutConfirmationDeletesOnce(t *testing.T) {
	app := newTestApp(t)
	token, _ := app.signIn("root", "admin")
	order := &entity.Order{ID: uuid.New(), Status: entity.OrderStatusPending}

	app.mocks.Order.EXPECT().FindByID(mock.Anything, order.ID).Return(order, nil).Once()
	app.mocks.Order.EXPECT().Delete(mock.Anything, order.ID).Return(nil).Once()

	rec := app.do(http.MethodPost, "/delete_order/"+order.ID.String(), token, "")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, HomeURL, rec.Header().Get("Location"))
	app.mocks.Order.AssertNumberOfCalls(t, "Delete", 1)
}

func TestRouter_MissingOrderIsNotFound(t *testing.T) {
	app := newTestApp(t)
	token, _ := app.signIn("root", "admin")
	id := uuid.New()

	app.mocks.Order.EXPECT().FindByID(mock.Anything, id).Return(nil, nil)

	rec := app.do(http.MethodGet, "/update_order/"+id.String(), token, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_UpdateRemovedOrderIsNotFound(t *testing.T) {
	app := newTestApp(t)
	m := app.mocks
	token, _ := app.signIn("root", "admin")

	customer := &entity.Customer{BaseSimple: entity.BaseSimple{ID: uuid.New()}}
	product := &entity.Product{BaseSimple: entity.BaseSimple{ID: uuid.New()}}
	order := &entity.Order{ID: uuid.New(), CustomerID: customer.ID, ProductID: product.ID, Status: entity.OrderStatusPending}

	m.Order.EXPECT().FindByID(mock.Anything, order.ID).Return(order, nil)
	m.Customer.EXPECT().FindByID(mock.Anything, customer.ID).Return(customer, nil)
	m.Product.EXPECT().FindByID(mock.Anything, product.ID).Return(product, nil)
	m.Order.EXPECT().Update(mock.Anything, order).
		Return(errors.Wrapf(repository.ErrOrderNotFound, "update order %s", order.ID))

	body := `{"customer_id":"` + customer.ID.String() + `","product_id":"` + product.ID.String() + `","status":"Delivered"}`
	rec := app.do(http.MethodPost, "/update_order/"+order.ID.String(), token, body)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_CustomerDetailRejectsBadFilter(t *testing.T) {
	app := newTestApp(t)
	token, _ := app.signIn("root", "admin")
	customer := &entity.Customer{BaseSimple: entity.BaseSimple{ID: uuid.New()}, Name: "C1"}

	app.mocks.Customer.EXPECT().FindByID(mock.Anything, customer.ID).Return(customer, nil)

	rec := app.do(http.MethodGet, "/customer/"+customer.ID.String()+"?start_date=yesterday", token, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "start_date")
}

func TestRouter_Health(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}
