package generator

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hearthplan/internal/domain"
	"hearthplan/internal/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func llmTestClient(t *testing.T, handler http.HandlerFunc) llm.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := llm.DefaultConfig()
	cfg.Endpoint = srv.URL
	cfg.MaxRetries = 0
	cfg.Tasks = map[llm.TaskType]llm.TaskConfig{
		llm.TaskScheduleDraft: {TimeoutMs: 2000},
	}
	return llm.NewOllamaClient(cfg, nil)
}

func sampleInput() Input {
	age := 9
	return Input{
		WeekStart:   time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC),
		Strategy:    domain.StrategyBalanced,
		Preferences: "mornings free on weekends",
		Members: []domain.FamilyMember{
			{ID: "m-alice", Name: "Alice", Role: domain.RolePrimary},
			{ID: "m-milo", Name: "Milo", Role: domain.RoleChild, Age: &age},
		},
		Goals: []domain.RecurringGoal{
			{ID: "g-run", MemberID: "m-alice", Name: "Running", FrequencyPerWeek: 3,
				PreferredDurationMin: 45, Priority: domain.PriorityHigh,
				PreferredTimes: []domain.TimeOfDay{domain.Morning}},
		},
	}
}

func TestLLMGenerator_Propose_ParsesArray(t *testing.T) {
	modelText := "Here you go:\n```json\n" +
		`[{"title":"Run","category":"activity","day":"monday","start_time":"06:30","end_time":"07:15","owner_id":"m-alice","goal_id":"g-run"}]` +
		"\n```"
	client := llmTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := json.Marshal(map[string]string{"model": "m", "response": modelText})
		w.Write(body)
	})

	gen := NewLLMGenerator(client)
	proposals, err := gen.Propose(context.Background(), sampleInput())
	require.NoError(t, err)
	require.Len(t, proposals, 1)
	assert.Equal(t, "Run", proposals[0].Title)
	assert.Equal(t, "m-alice", proposals[0].OwnerID)
}

func TestLLMGenerator_Propose_MalformedResponse(t *testing.T) {
	client := llmTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"model":"m","response":"I cannot plan this week, sorry."}`))
	})

	gen := NewLLMGenerator(client)
	_, err := gen.Propose(context.Background(), sampleInput())
	assert.ErrorIs(t, err, llm.ErrInvalidOutput)
}

func TestLLMGenerator_Propose_UpstreamErrorsPassThrough(t *testing.T) {
	client := llmTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	gen := NewLLMGenerator(client)
	_, err := gen.Propose(context.Background(), sampleInput())
	assert.ErrorIs(t, err, llm.ErrQuotaExceeded)
}

func TestBuildUserPrompt_IncludesContext(t *testing.T) {
	in := sampleInput()
	owner := "m-alice"
	in.ManualBlocks = []domain.TimeBlock{{
		Title:    "Dentist",
		Category: domain.CategoryOther,
		Start:    time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC),
		End:      time.Date(2025, time.March, 3, 10, 0, 0, 0, time.UTC),
		OwnerID:  &owner,
		Origin:   domain.OriginManual,
	}}

	prompt := buildUserPrompt(in)
	assert.Contains(t, prompt, "Week starting: 2025-03-03")
	assert.Contains(t, prompt, "Strategy: balanced")
	assert.Contains(t, prompt, "id=m-alice name=Alice role=primary")
	assert.Contains(t, prompt, "age=9")
	assert.Contains(t, prompt, "times_per_week=3")
	assert.Contains(t, prompt, "preferred=morning")
	assert.True(t, strings.Contains(prompt, `monday 09:00-10:00 owner=m-alice title="Dentist"`), prompt)
}
