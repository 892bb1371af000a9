package projection_test

import (
	"context"
	"math"
	"testing"

	"github.com/secondwind/planner/internal/domain/assumptions"
	"github.com/secondwind/planner/internal/domain/projection"
	. "github.com/smartystreets/goconvey/convey"
)

func TestComputeScenarios(t *testing.T) {
	Convey("Given an engine with default assumptions", t, func() {
		engine := projection.NewEngine()
		set := assumptions.Default()
		ctx := context.Background()

		Convey("When analyzing a young athlete with a large shortfall", func() {
			in := projection.Input{
				CurrentAge:            25,
				RetirementAge:         40,
				CurrentWealth:         100_000,
				CurrentIncome:         200_000,
				MonthlyPayoutRequired: 5_000,
			}
			res, err := engine.Compute(ctx, in, set)

			Convey("Then the headline numbers should follow the 4% rule", func() {
				So(err, ShouldBeNil)
				So(res.YearsToRetirement, ShouldEqual, 15)
				So(res.AnnualPayoutRequired, ShouldEqual, 60_000)
				So(res.RequiredCorpus, ShouldAlmostEqual, 1_500_000, 1e-6)
				So(res.ProjectedWealthAtRetirement, ShouldAlmostEqual, 100_000*math.Pow(1.05, 15), 1e-6)
				So(res.WealthGap, ShouldAlmostEqual, 1_500_000-100_000*math.Pow(1.05, 15), 1e-6)
			})

			Convey("And the plan should be off track with positive savings required", func() {
				So(res.IsOnTrack, ShouldBeFalse)
				So(res.RequiredMonthlySavings, ShouldBeGreaterThan, 0)
				So(res.RequiredAnnualSavings, ShouldAlmostEqual, res.RequiredMonthlySavings*12, 1e-9)
				So(res.SavingsRatePercentage, ShouldBeGreaterThan, 0)
				So(res.UrgencyLevel, ShouldEqual, projection.UrgencyHigh)
				So(res.FeasibilityScore, ShouldBeBetweenOrEqual, 0, 100)
				So(len(res.Recommendations), ShouldBeGreaterThan, 2)
			})
		})

		Convey("When analyzing a wealthy athlete already past the corpus", func() {
			in := projection.Input{
				CurrentAge:            30,
				RetirementAge:         45,
				CurrentWealth:         2_000_000,
				CurrentIncome:         150_000,
				MonthlyPayoutRequired: 4_000,
			}
			res, err := engine.Compute(ctx, in, set)

			Convey("Then the plan should be on track with no savings required", func() {
				So(err, ShouldBeNil)
				So(res.RequiredCorpus, ShouldAlmostEqual, 1_200_000, 1e-6)
				So(res.ProjectedWealthAtRetirement, ShouldAlmostEqual, 2_000_000*math.Pow(1.05, 15), 1e-6)
				So(res.WealthGap, ShouldBeLessThan, 0)
				So(res.IsOnTrack, ShouldBeTrue)
				So(res.RequiredMonthlySavings, ShouldEqual, 0)
				So(res.SavingsRatePercentage, ShouldEqual, 0)
				So(res.UrgencyLevel, ShouldEqual, projection.UrgencyLow)
				So(res.FeasibilityScore, ShouldEqual, 100)
			})
		})

		Convey("When retirement is a single year away", func() {
			in := projection.Input{
				CurrentAge:            40,
				RetirementAge:         41,
				CurrentWealth:         500_000,
				CurrentIncome:         300_000,
				MonthlyPayoutRequired: 3_000,
			}
			res, err := engine.Compute(ctx, in, set)

			Convey("Then the result should still be finite and positive", func() {
				So(err, ShouldBeNil)
				So(res.YearsToRetirement, ShouldEqual, 1)
				So(math.IsNaN(res.RequiredMonthlySavings), ShouldBeFalse)
				So(math.IsInf(res.RequiredMonthlySavings, 0), ShouldBeFalse)
				So(res.RequiredCorpus, ShouldBeGreaterThan, 0)
				So(res.UrgencyLevel, ShouldEqual, projection.UrgencyCritical)
			})
		})

		Convey("When the pre-retirement growth rate is zero", func() {
			zero := 0.0
			flat := assumptions.Resolve(assumptions.Overrides{GrowthRatePreRetirement: &zero})
			in := projection.Input{
				CurrentAge:            30,
				RetirementAge:         40,
				CurrentWealth:         0,
				CurrentIncome:         100_000,
				MonthlyPayoutRequired: 1_000,
			}
			res, err := engine.Compute(ctx, in, flat)

			Convey("Then the annuity inversion should reduce to straight division", func() {
				So(err, ShouldBeNil)
				So(res.RequiredCorpus, ShouldAlmostEqual, 300_000, 1e-6)
				So(res.RequiredMonthlySavings, ShouldAlmostEqual, 300_000/120.0, 1e-6)
			})
		})
	})
}

func TestComputeProperties(t *testing.T) {
	Convey("Given an engine and fixed default assumptions", t, func() {
		engine := projection.NewEngine()
		set := assumptions.Default()
		ctx := context.Background()
		base := projection.Input{
			CurrentAge:            28,
			RetirementAge:         42,
			CurrentWealth:         250_000,
			CurrentIncome:         180_000,
			MonthlyPayoutRequired: 4_500,
		}

		Convey("Then zero current wealth should project to zero", func() {
			in := base
			in.CurrentWealth = 0
			res, err := engine.Compute(ctx, in, set)
			So(err, ShouldBeNil)
			So(res.ProjectedWealthAtRetirement, ShouldEqual, 0)
		})

		Convey("Then raising the required payout should never lower corpus, gap or savings", func() {
			prev, err := engine.Compute(ctx, base, set)
			So(err, ShouldBeNil)
			for _, payout := range []float64{5_000, 6_000, 8_000, 12_000} {
				in := base
				in.MonthlyPayoutRequired = payout
				res, err := engine.Compute(ctx, in, set)
				So(err, ShouldBeNil)
				So(res.RequiredCorpus, ShouldBeGreaterThanOrEqualTo, prev.RequiredCorpus)
				So(res.WealthGap, ShouldBeGreaterThanOrEqualTo, prev.WealthGap)
				So(res.RequiredMonthlySavings, ShouldBeGreaterThanOrEqualTo, prev.RequiredMonthlySavings)
				prev = res
			}
		})

		Convey("Then raising current wealth should never raise gap or savings", func() {
			prev, err := engine.Compute(ctx, base, set)
			So(err, ShouldBeNil)
			for _, wealth := range []float64{400_000, 800_000, 1_500_000, 3_000_000} {
				in := base
				in.CurrentWealth = wealth
				res, err := engine.Compute(ctx, in, set)
				So(err, ShouldBeNil)
				So(res.WealthGap, ShouldBeLessThanOrEqualTo, prev.WealthGap)
				So(res.RequiredMonthlySavings, ShouldBeLessThanOrEqualTo, prev.RequiredMonthlySavings)
				prev = res
			}
		})

		Convey("Then on-track should hold exactly when the gap is non-positive", func() {
			for _, wealth := range []float64{0, 100_000, 700_000, 2_000_000, 5_000_000} {
				in := base
				in.CurrentWealth = wealth
				res, err := engine.Compute(ctx, in, set)
				So(err, ShouldBeNil)
				So(res.IsOnTrack, ShouldEqual, res.WealthGap <= 0)
			}
		})

		Convey("Then identical calls should yield identical results", func() {
			first, err := engine.Compute(ctx, base, set)
			So(err, ShouldBeNil)
			second, err := engine.Compute(ctx, base, set)
			So(err, ShouldBeNil)
			So(second, ShouldResemble, first)
		})
	})
}

func TestComputeValidation(t *testing.T) {
	Convey("Given an engine", t, func() {
		engine := projection.NewEngine()
		set := assumptions.Default()
		ctx := context.Background()

		Convey("When retirement age does not exceed current age", func() {
			in := projection.Input{
				CurrentAge:            45,
				RetirementAge:         40,
				CurrentWealth:         100_000,
				CurrentIncome:         100_000,
				MonthlyPayoutRequired: 2_000,
			}
			_, err := engine.Compute(ctx, in, set)

			Convey("Then validation should reject the age ordering", func() {
				So(err, ShouldNotBeNil)
				ve, ok := projection.AsValidation(err)
				So(ok, ShouldBeTrue)
				So(len(ve.Fields), ShouldEqual, 1)
				So(ve.Fields[0].Field, ShouldEqual, "retirement_age")
			})
		})

		Convey("When several fields are invalid at once", func() {
			in := projection.Input{
				CurrentAge:            17,
				RetirementAge:         101,
				CurrentWealth:         -1,
				CurrentIncome:         0,
				MonthlyPayoutRequired: -5,
			}
			_, err := engine.Compute(ctx, in, set)

			Convey("Then every offending field should be listed", func() {
				ve, ok := projection.AsValidation(err)
				So(ok, ShouldBeTrue)
				fields := make(map[string]bool, len(ve.Fields))
				for _, f := range ve.Fields {
					fields[f.Field] = true
				}
				So(fields["age"], ShouldBeTrue)
				So(fields["retirement_age"], ShouldBeTrue)
				So(fields["current_wealth"], ShouldBeTrue)
				So(fields["current_income"], ShouldBeTrue)
				So(fields["monthly_payout_required"], ShouldBeTrue)
			})
		})

		Convey("When the withdrawal rate is zero", func() {
			zero := 0.0
			bad := assumptions.Resolve(assumptions.Overrides{WithdrawalRate: &zero})
			in := projection.Input{
				CurrentAge:            30,
				RetirementAge:         50,
				CurrentWealth:         100_000,
				CurrentIncome:         100_000,
				MonthlyPayoutRequired: 2_000,
			}
			_, err := engine.Compute(ctx, in, bad)

			Convey("Then validation should reject before any division", func() {
				ve, ok := projection.AsValidation(err)
				So(ok, ShouldBeTrue)
				So(ve.Fields[0].Field, ShouldEqual, "withdrawal_rate")
			})
		})
	})
}

func TestPortfolioDuration(t *testing.T) {
	Convey("Given engines with different duration caps", t, func() {
		ctx := context.Background()
		in := projection.Input{
			CurrentAge:            30,
			RetirementAge:         45,
			CurrentWealth:         100_000,
			CurrentIncome:         150_000,
			MonthlyPayoutRequired: 4_000,
		}

		Convey("When post-retirement growth outpaces withdrawals and inflation", func() {
			growth := 0.20
			noInflation := 0.0
			set := assumptions.Resolve(assumptions.Overrides{
				GrowthRatePostRetirement: &growth,
				InflationRate:            &noInflation,
			})
			res, err := projection.NewEngine().Compute(ctx, in, set)

			Convey("Then the simulation should stop at the cap instead of looping", func() {
				So(err, ShouldBeNil)
				So(res.EstimatedYearsMoneyLasts, ShouldEqual, 100)
			})
		})

		Convey("When a custom cap is configured", func() {
			growth := 0.20
			set := assumptions.Resolve(assumptions.Overrides{GrowthRatePostRetirement: &growth})
			engine := projection.NewEngine(projection.WithMaxPortfolioYears(60))
			res, err := engine.Compute(ctx, in, set)

			Convey("Then the cap should bound the estimate", func() {
				So(err, ShouldBeNil)
				So(res.EstimatedYearsMoneyLasts, ShouldBeLessThanOrEqualTo, 60)
			})
		})

		Convey("When growth is modest and withdrawals grow with inflation", func() {
			res, err := projection.NewEngine().Compute(ctx, in, assumptions.Default())

			Convey("Then the portfolio should deplete before the cap", func() {
				So(err, ShouldBeNil)
				So(res.EstimatedYearsMoneyLasts, ShouldBeGreaterThan, 0)
				So(res.EstimatedYearsMoneyLasts, ShouldBeLessThan, 100)
			})
		})
	})
}

func TestRecommendations(t *testing.T) {
	Convey("Given contrasting situations", t, func() {
		engine := projection.NewEngine()
		set := assumptions.Default()
		ctx := context.Background()

		Convey("When the athlete is on track", func() {
			res, err := engine.Compute(ctx, projection.Input{
				CurrentAge:            30,
				RetirementAge:         45,
				CurrentWealth:         2_000_000,
				CurrentIncome:         150_000,
				MonthlyPayoutRequired: 4_000,
			}, set)

			Convey("Then advice should lead with the congratulation", func() {
				So(err, ShouldBeNil)
				So(res.Recommendations[0], ShouldContainSubstring, "on track")
			})

			Convey("And the athlete career-window tip should always appear", func() {
				joined := ""
				for _, r := range res.Recommendations {
					joined += r + "\n"
				}
				So(joined, ShouldContainSubstring, "career earnings trajectory")
			})
		})

		Convey("When the athlete is far behind", func() {
			res, err := engine.Compute(ctx, projection.Input{
				CurrentAge:            25,
				RetirementAge:         40,
				CurrentWealth:         0,
				CurrentIncome:         80_000,
				MonthlyPayoutRequired: 8_000,
			}, set)

			Convey("Then advice should state the gap and flag the savings rate", func() {
				So(err, ShouldBeNil)
				So(res.Recommendations[0], ShouldContainSubstring, "more to reach your retirement goal")
				joined := ""
				for _, r := range res.Recommendations {
					joined += r + "\n"
				}
				So(joined, ShouldContainSubstring, "savings rate is very high")
			})

			Convey("And a long horizon should include the inflation note", func() {
				joined := ""
				for _, r := range res.Recommendations {
					joined += r + "\n"
				}
				So(joined, ShouldContainSubstring, "inflation")
			})
		})
	})
}
