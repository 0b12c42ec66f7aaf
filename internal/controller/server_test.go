package controller

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSwagger_EmbeddedDocumentIsValid(t *testing.T) {
	swagger, err := GetSwagger()
	require.NoError(t, err)
	require.NoError(t, swagger.Validate(context.Background()))
	assert.NotNil(t, swagger.Paths.Find("/emergency/{token}"))
}

func TestRegisterHandlers_CoversEveryOperation(t *testing.T) {
	swagger, err := GetSwagger()
	require.NoError(t, err)

	e := echo.New()
	RegisterHandlers(e, &Controller{})

	registered := make(map[string]bool)
	for _, r := range e.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	for path, item := range swagger.Paths.Map() {
		echoPath := strings.NewReplacer("{", ":", "}", "").Replace(path)
		for method := range item.Operations() {
			assert.True(t, registered[method+" "+echoPath], "%s %s", method, path)
		}
	}
	assert.True(t, registered[http.MethodGet+" "+EmergencyViewPath])
}

func TestIncludeNotes(t *testing.T) {
	yes, no := true, false
	assert.False(t, includeNotes(nil))
	assert.False(t, includeNotes(&no))
	assert.True(t, includeNotes(&yes))
}
