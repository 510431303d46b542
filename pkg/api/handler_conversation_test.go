package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, method, target, body string) (*echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestConversationHandlers_RequireConversationID(t *testing.T) {
	s := &Server{}

	handlers := map[string]func(c *echo.Context) error{
		"postMessage":     s.postMessageHandler,
		"getConversation": s.getConversationHandler,
		"getMessages":     s.getMessagesHandler,
		"escalate":        s.escalateHandler,
		"getTimeline":     s.getTimelineHandler,
	}

	for name, handler := range handlers {
		t.Run(name, func(t *testing.T) {
			c, _ := newTestContext(t, http.MethodPost, "/api/v1/conversations//x",
				`{"sender_agent_id":"a1","type":"answer","content":"hi"}`)

			err := handler(c)
			require.Error(t, err)
			he, ok := err.(*echo.HTTPError)
			require.True(t, ok, "expected echo.HTTPError")
			assert.Equal(t, http.StatusBadRequest, he.Code)
			assert.Contains(t, he.Message, "conversation id")
		})
	}
}

func TestOpenConversationHandler_RequiresSquadID(t *testing.T) {
	s := &Server{}

	c, _ := newTestContext(t, http.MethodPost, "/api/v1/squads//conversations",
		`{"asker_agent_id":"a1","question_type":"default","content":"q"}`)

	err := s.openConversationHandler(c)
	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected echo.HTTPError")
	assert.Equal(t, http.StatusBadRequest, he.Code)
	assert.Contains(t, he.Message, "squad id")
}

func TestQueryInt(t *testing.T) {
	c, _ := newTestContext(t, http.MethodGet, "/?limit=30&offset=junk", "")

	assert.Equal(t, 30, queryInt(c, "limit", 20))
	assert.Equal(t, 0, queryInt(c, "offset", 0))
	assert.Equal(t, 20, queryInt(c, "missing", 20))
}

func TestMessageResponse_OmitsNilMessage(t *testing.T) {
	// Idempotent retries return the conversation without a new message.
	data, err := json.Marshal(&MessageResponse{})
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"message"`)
}
