package test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"github.com/2beens/fitplan/internal/fitness"
	"github.com/2beens/fitplan/internal/plans"
)

func (s *IntegrationTestSuite) TestRootAndVersion() {
	ctx := context.Background()

	resp := s.get(ctx, "/", nil)
	defer resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)

	versionResp := s.get(ctx, "/version", nil)
	defer versionResp.Body.Close()
	body, err := io.ReadAll(versionResp.Body)
	s.Require().NoError(err)
	s.Equal(testVersionString, string(body))
}

func (s *IntegrationTestSuite) TestGoalsAndPlans() {
	ctx := context.Background()

	resp := s.get(ctx, "/goals", nil)
	defer resp.Body.Close()
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	var goals []plans.GoalInfo
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&goals))
	s.Require().Len(goals, len(plans.AllGoals))

	for _, g := range goals {
		planResp := s.get(ctx, "/plans/"+string(g.ID), nil)
		s.Require().Equal(http.StatusOK, planResp.StatusCode)

		var plan fitness.PlanResponse
		s.Require().NoError(json.NewDecoder(planResp.Body).Decode(&plan))
		s.Require().NoError(planResp.Body.Close())
		s.Equal(g.ID, plan.Goal.ID)
		s.NotEmpty(plan.Plan.Workouts)

		// every exercise in a plan has a guide
		for _, day := range plan.Plan.Workouts {
			for _, ex := range day.Exercises {
				guideResp := s.get(ctx, "/exercises/"+url.PathEscape(ex.Name)+"/guide", nil)
				s.Equal(http.StatusOK, guideResp.StatusCode, ex.Name)
				s.Require().NoError(guideResp.Body.Close())
			}
		}
	}
}

func (s *IntegrationTestSuite) TestPlanNutrition() {
	resp := s.get(context.Background(), "/plans/muscle-gain/nutrition", nil)
	defer resp.Body.Close()
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var nutritionResp fitness.NutritionResponse
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&nutritionResp))
	s.Equal(3470, nutritionResp.Breakdown.DailyTarget)
	s.Equal(nutritionResp.Breakdown.DailyTarget, nutritionResp.Breakdown.Total)
	s.Equal("3,470", nutritionResp.DailyTargetDisplay)
}

func (s *IntegrationTestSuite) TestNotFound() {
	ctx := context.Background()

	resp := s.get(ctx, "/blog/all", nil)
	defer resp.Body.Close()
	s.Equal(http.StatusNotFound, resp.StatusCode)

	guideResp := s.get(ctx, "/exercises/Kettlebell%20Swing/guide", nil)
	defer guideResp.Body.Close()
	s.Equal(http.StatusNotFound, guideResp.StatusCode)
}

func (s *IntegrationTestSuite) TestCorsForbidden() {
	resp := s.get(context.Background(), "/goals", map[string]string{"Origin": "https://evil.example.com"})
	defer resp.Body.Close()
	s.Equal(http.StatusForbidden, resp.StatusCode)
}
