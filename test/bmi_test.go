package test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/2beens/fitplan/internal/bmi"
	"github.com/2beens/fitplan/internal/fitness"
)

func (s *IntegrationTestSuite) TestBmi() {
	ctx := context.Background()

	resp := s.get(ctx, "/bmi?height=160&weight=45", map[string]string{"X-Real-Ip": "10.20.0.1"})
	defer resp.Body.Close()
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.NotEmpty(resp.Header.Get("X-Request-ID"))

	var bmiResp fitness.BmiResponse
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&bmiResp))
	s.Equal(bmi.Underweight, bmiResp.Category)
	s.Equal("17.6", bmiResp.BMIDisplay)
	s.Equal(1896, bmiResp.Calories.Sedentary)
	s.Equal(2594, bmiResp.Calories.Active)
	s.Equal("1,896", bmiResp.CaloriesDisplay.Sedentary)
}

func (s *IntegrationTestSuite) TestBmi_Post() {
	ctx := context.Background()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, serverEndpoint+"/bmi", strings.NewReader(`{"height": 180, "weight": 110}`))
	s.Require().NoError(err)
	req.Header.Set("Origin", testCorsOrigin)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Real-Ip", "10.20.0.2")

	resp, err := s.httpClient.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var bmiResp fitness.BmiResponse
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&bmiResp))
	s.Equal(bmi.Obese, bmiResp.Category)
	s.Equal(2026, bmiResp.Calories.Sedentary)
}

func (s *IntegrationTestSuite) TestBmi_Invalid() {
	resp := s.get(context.Background(), "/bmi?height=-1&weight=501", map[string]string{"X-Real-Ip": "10.20.0.3"})
	defer resp.Body.Close()
	s.Require().Equal(http.StatusBadRequest, resp.StatusCode)

	var errResp fitness.ValidationErrorResponse
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&errResp))
	s.Equal("Enter a valid height", errResp.Errors["height"])
	s.Equal("Max 500 kg", errResp.Errors["weight"])
}

func (s *IntegrationTestSuite) TestBmi_RateLimited() {
	ctx := context.Background()
	headers := map[string]string{"X-Real-Ip": "10.20.0.99"}

	for i := 0; i < bmiAllowedPerMin; i++ {
		resp := s.get(ctx, "/bmi?height=175&weight=70", headers)
		s.Require().NoError(resp.Body.Close())
		s.Require().Equal(http.StatusOK, resp.StatusCode, "request %d", i)
	}

	resp := s.get(ctx, "/bmi?height=175&weight=70", headers)
	defer resp.Body.Close()
	s.Equal(http.StatusTooManyRequests, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	s.True(strings.HasPrefix(string(body), "retry after"))

	// other clients are not affected
	other := s.get(ctx, "/bmi?height=175&weight=70", map[string]string{"X-Real-Ip": "10.20.0.100"})
	defer other.Body.Close()
	s.Equal(http.StatusOK, other.StatusCode)
}

func (s *IntegrationTestSuite) TestMetricsEndpoint() {
	// make sure at least one calculation was counted
	bmiResp := s.get(context.Background(), "/bmi?height=175&weight=70", map[string]string{"X-Real-Ip": "10.20.0.4"})
	s.Require().NoError(bmiResp.Body.Close())

	resp, err := s.httpClient.Get(metricsEndpoint)
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	s.Contains(string(body), `fitplan_main_bmi_calculations{category="Healthy"}`)
	s.Contains(string(body), "fitplan_main_life_signal 1")
}
