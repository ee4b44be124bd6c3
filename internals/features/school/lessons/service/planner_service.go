package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bytedance/sonic"

	"edulink_backend/internals/configs"
)

// PlannerService proxies lesson plan generation to the external planner
// endpoint. The upstream is an opaque collaborator; only the request and
// response shapes are pinned here.
type PlannerService struct {
	BaseURL string
	Client  *http.Client
}

var ErrPlannerUnavailable = errors.New("lesson planner is not configured")

func NewPlannerService() *PlannerService {
	return &PlannerService{
		BaseURL: configs.LessonPlannerURL,
		Client:  &http.Client{Timeout: 60 * time.Second},
	}
}

type plannerRequest struct {
	Prompt string `json:"prompt"`
}

type plannerResponse struct {
	LessonPlan string `json:"lessonPlan"`
}

func (s *PlannerService) GenerateLessonPlan(ctx context.Context, prompt string) (string, error) {
	if s.BaseURL == "" {
		return "", ErrPlannerUnavailable
	}

	body, err := sonic.Marshal(plannerRequest{Prompt: prompt})
	if err != nil {
		return "", fmt.Errorf("encode planner request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.BaseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build planner request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("call planner: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return "", fmt.Errorf("read planner response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("planner returned status %d", resp.StatusCode)
	}

	var out plannerResponse
	if err := sonic.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("decode planner response: %w", err)
	}
	return out.LessonPlan, nil
}
