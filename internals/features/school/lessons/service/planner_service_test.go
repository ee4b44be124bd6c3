package service

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateLessonPlan(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"prompt":"photosynthesis for grade 7"}`, string(body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"lessonPlan":"1. Intro\n2. Light reactions"}`))
	}))
	defer srv.Close()

	svc := &PlannerService{BaseURL: srv.URL, Client: srv.Client()}

	plan, err := svc.GenerateLessonPlan(context.Background(), "photosynthesis for grade 7")
	require.NoError(t, err)
	assert.Equal(t, "1. Intro\n2. Light reactions", plan)
}

func TestGenerateLessonPlanUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc := &PlannerService{BaseURL: srv.URL, Client: srv.Client()}

	_, err := svc.GenerateLessonPlan(context.Background(), "anything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestGenerateLessonPlanUnconfigured(t *testing.T) {
	svc := &PlannerService{Client: &http.Client{Timeout: time.Second}}

	_, err := svc.GenerateLessonPlan(context.Background(), "anything")
	assert.ErrorIs(t, err, ErrPlannerUnavailable)
}
