package loadgen

import (
	"context"
	"testing"

	"github.com/secondwind/planner/pkg/logger"
	"github.com/smartystreets/goconvey/convey"
)

func validResponse(req Request) *Response {
	resp := &Response{Success: true}
	resp.Analysis.Assumptions.WithdrawalRate = 0.04
	resp.Analysis.Projections.RequiredCorpus = req.MonthlyPayoutRequired * 12 / 0.04
	resp.Analysis.Projections.WealthGap = 1
	resp.Analysis.Projections.RequiredMonthlySavings = 100
	resp.Analysis.Status.IsOnTrack = false
	resp.Analysis.Status.FeasibilityScore = 70
	resp.Analysis.Status.UrgencyLevel = "medium"
	return resp
}

func TestVerifyResponse(t *testing.T) {
	convey.Convey("Given a submitted request", t, func() {
		req := Request{
			Age:                   25,
			RetirementAge:         40,
			CurrentWealth:         100_000,
			CurrentIncome:         200_000,
			MonthlyPayoutRequired: 5_000,
			RequestID:             "req-1",
		}

		convey.Convey("Then a consistent response should verify", func() {
			convey.So(verifyResponse(req, validResponse(req)), convey.ShouldBeNil)
		})

		convey.Convey("Then a corpus mismatch should be rejected", func() {
			resp := validResponse(req)
			resp.Analysis.Projections.RequiredCorpus *= 2
			convey.So(verifyResponse(req, resp), convey.ShouldNotBeNil)
		})

		convey.Convey("Then an inconsistent on-track flag should be rejected", func() {
			resp := validResponse(req)
			resp.Analysis.Status.IsOnTrack = true
			convey.So(verifyResponse(req, resp), convey.ShouldNotBeNil)
		})

		convey.Convey("Then an out-of-range feasibility score should be rejected", func() {
			resp := validResponse(req)
			resp.Analysis.Status.FeasibilityScore = 120
			convey.So(verifyResponse(req, resp), convey.ShouldNotBeNil)
		})

		convey.Convey("Then an unknown urgency level should be rejected", func() {
			resp := validResponse(req)
			resp.Analysis.Status.UrgencyLevel = "moderate"
			convey.So(verifyResponse(req, resp), convey.ShouldNotBeNil)
		})
	})
}

func TestGenerateRequests(t *testing.T) {
	convey.Convey("Given a generator config", t, func() {
		convey.So(logger.Init(), convey.ShouldBeNil)
		cfg := &Config{NumRequests: 200}
		stats := &Stats{}
		requests := generateRequests(context.Background(), cfg, stats)

		convey.Convey("Then every generated profile should be valid input", func() {
			convey.So(len(requests), convey.ShouldEqual, 200)
			convey.So(stats.RequestsGenerated, convey.ShouldEqual, 200)
			for _, r := range requests {
				convey.So(r.Age, convey.ShouldBeBetweenOrEqual, 18, 100)
				convey.So(r.RetirementAge, convey.ShouldBeGreaterThan, r.Age)
				convey.So(r.RetirementAge, convey.ShouldBeLessThanOrEqualTo, 100)
				convey.So(r.CurrentWealth, convey.ShouldBeGreaterThanOrEqualTo, 0)
				convey.So(r.CurrentIncome, convey.ShouldBeGreaterThan, 0)
				convey.So(r.MonthlyPayoutRequired, convey.ShouldBeGreaterThan, 0)
				convey.So(r.RequestID, convey.ShouldNotBeEmpty)
			}
		})
	})
}
