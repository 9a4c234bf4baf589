package content

// Basics is the quick reference for each input of the calculator.
const Basics = `## CAPM Basics

**Risk-Free Rate (rf).** The return of an investment with zero default
risk, usually proxied by short-term government bonds. It is the floor
of the Security Market Line: an asset with no market exposure should
still earn at least this much.

**Market Return (rm).** The expected return of the market portfolio as
a whole, typically proxied by a broad index. Together with the
risk-free rate it fixes the slope of the line.

**Beta (β).** How strongly an asset moves with the market:

| Beta | Behavior |
|------|----------|
| β = 0 | No market exposure; earns the risk-free rate |
| 0 < β < 1 | Defensive; dampens market swings |
| β = 1 | Moves one-for-one with the market |
| β > 1 | Aggressive; amplifies market swings |

**Market Risk Premium (rm − rf).** The extra return investors demand
for holding the market instead of the risk-free asset. Every unit of
beta earns one premium on top of the risk-free rate.
`

// Theory covers the model itself: formula, assumptions, limitations.
const Theory = `## The Capital Asset Pricing Model

The CAPM describes the relationship between systematic risk and
expected return. It was developed by William Sharpe in 1964, building
on Harry Markowitz's portfolio theory, and remains the standard first
model for pricing risky assets.

### The Formula

    E(Ri) = rf + βi × (rm − rf)

- **E(Ri)** is the expected return of asset i.
- **rf** is the risk-free rate.
- **βi** is the asset's sensitivity to market movements.
- **rm − rf** is the market risk premium.

The formula says an investor is only compensated for *systematic*
risk, the part that cannot be diversified away. Idiosyncratic risk
earns nothing because a diversified portfolio eliminates it.

### The Security Market Line

Plotting expected return against beta yields a straight line: the
Security Market Line (SML). It starts at the risk-free rate (β = 0)
and rises with slope equal to the market risk premium. In equilibrium
every fairly priced asset sits exactly on the line. A plot above the
line would be undervalued (too much return for its risk) and one below
it overvalued.

### Assumptions

1. Investors are rational and risk-averse.
2. Markets are efficient and frictionless: no taxes, no transaction
   costs.
3. All investors share a single-period horizon and identical
   expectations.
4. Everyone can borrow and lend at the risk-free rate.

### Limitations

The assumptions rarely hold in practice. Beta must be estimated from
historical data and is unstable over time, and a single factor cannot
explain the full cross-section of returns. Multi-factor models extend
the CAPM, but the single-factor form remains the baseline every
extension is measured against.
`

// Tutorial walks a new user through one full calculation.
const Tutorial = `## Interactive Tutorial

Work through one calculation end to end:

1. **Set the risk-free rate.** Start with 2% (0.02), a typical
   short-term government bond yield.
2. **Set the market return.** Start with 8% (0.08), a common long-run
   equity market estimate. The market risk premium is now
   8% − 2% = 6%.
3. **Pick a beta.** Try 1.5, an aggressive stock that amplifies market
   moves by half again.
4. **Read the result.** The expected return is

       2% + 1.5 × (8% − 2%) = 11%

5. **Find your asset on the chart.** The marker sits on the Security
   Market Line at β = 1.5. Drag beta toward 0 and watch the marker
   slide down toward the risk-free rate; push it past 1 and the
   expected return climbs above the market's.

Once the single-asset case feels natural, load one of the labs. Each
lab applies a preset and poses a scenario: beta sensitivity, the
market risk premium, portfolio construction, defensive versus
aggressive stocks, and high-risk environments.
`

// Disclaimer is shown verbatim in every client.
const Disclaimer = `This tool is for education only and is not investment advice. The CAPM
is a deliberately simplified model: real markets violate its
assumptions, and expected returns computed here say nothing about any
actual security. Do your own research before making investment
decisions.
`
