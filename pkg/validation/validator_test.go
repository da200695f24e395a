package validation

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	Init()
}

type signupPayload struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
}

func bindJSON(t *testing.T, body string) error {
	t.Helper()
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("POST", "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	var p signupPayload
	return c.ShouldBindJSON(&p)
}

func TestToDetailsUsesJSONFieldNames(t *testing.T) {
	err := bindJSON(t, `{"email":"ada@example.com","password":"secret1"}`)
	require.Error(t, err)

	details := ToDetails(err)
	require.Equal(t, "is required", details["name"])
	require.NotContains(t, details, "Name")
}

func TestToDetailsEmailAndPasswordMessages(t *testing.T) {
	err := bindJSON(t, `{"name":"Ada","email":"not-an-email","password":"short"}`)
	require.Error(t, err)

	details := ToDetails(err)
	require.Equal(t, "must be a valid email", details["email"])
	require.Equal(t, "must be at least 6 characters long", details["password"])
}

func TestToDetailsInvalidJSON(t *testing.T) {
	err := bindJSON(t, `{"name":`)
	require.Error(t, err)
	require.Equal(t, map[string]string{"payload": "invalid json"}, ToDetails(err))
}

func TestToDetailsNilError(t *testing.T) {
	require.Nil(t, ToDetails(nil))
}
