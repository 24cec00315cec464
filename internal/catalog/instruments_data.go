package catalog

import "github.com/Dan9191/finplan-service/internal/models"

// instruments is keyed by instrument id and never mutated after init.
var instruments = map[string]models.InstrumentRecord{
	"ppf": {
		ID:              "ppf",
		Icon:            "🏦",
		Name:            "Public Provident Fund (PPF)",
		ShortDesc:       "Government-backed long-term savings",
		ReturnRange:     "7.1% p.a.",
		ReturnLabel:     "Guaranteed",
		AllocationLabel: "Core Safety",
		LockIn:          "15 years",
		Liquidity:       "Partial after 7 years",
		TaxImplications: "EEE — fully tax-free",
		Docs: []string{
			"Aadhaar / PAN",
			"Passport-size photo",
			"Bank account details",
		},
		Steps: []string{
			"Visit your nearest SBI / India Post branch or use net banking",
			"Fill PPF account opening form or apply online",
			"Submit KYC documents (Aadhaar + PAN)",
			"Deposit a minimum of ₹500. Maximum ₹1.5L per year",
			"Get your PPF passbook and note your account number",
		},
		Risks:    "Very low — sovereign guarantee. Interest rate revised quarterly.",
		WhoAvoid: "Those who may need money before 15 years. Not for aggressive wealth creation.",
		ScamFlags: []string{
			"No \"PPF agents\" exist — never pay commission to open an account",
			"PPF cannot give returns above ~7–8%. Any higher claim is fake",
			"Only open through scheduled banks or India Post — avoid third-party apps",
		},
	},
	"fd": {
		ID:              "fd",
		Icon:            "🏧",
		Name:            "Fixed Deposits (FDs)",
		ShortDesc:       "Guaranteed returns from bank deposits",
		ReturnRange:     "6.5–7.5% p.a.",
		ReturnLabel:     "Guaranteed",
		AllocationLabel: "Low Risk",
		LockIn:          "7 days to 10 years",
		Liquidity:       "Premature withdrawal allowed (penalty)",
		TaxImplications: "Interest taxed as per income slab",
		Docs: []string{
			"PAN Card",
			"Aadhaar",
			"Bank account",
		},
		Steps: []string{
			"Log into your bank's net banking portal",
			"Go to \"Deposits\" → \"Open Fixed Deposit\"",
			"Enter amount, tenure, and choose interest payout frequency",
			"Confirm and note the FD receipt number",
			"For Tax-Saving FD: specify 5-year lock-in to claim 80C deduction",
		},
		Risks:    "Low. Risk of bank failure covered by DICGC up to ₹5 lakh.",
		WhoAvoid: "People in 30% tax slab (better alternatives like debt funds exist).",
		ScamFlags: []string{
			"Never share OTPs with anyone claiming to be from your bank",
			"Interest rates above 8–9% from unknown NBFCs are high-risk",
			"Official FDs don't need agents or referral fees",
		},
	},
	"elss": {
		ID:              "elss",
		Icon:            "📊",
		Name:            "ELSS Mutual Funds",
		ShortDesc:       "Tax-saving equity funds with 3-yr lock-in",
		ReturnRange:     "12–15% p.a.",
		ReturnLabel:     "Historical avg.",
		AllocationLabel: "Tax + Growth",
		LockIn:          "3 years (shortest under 80C)",
		Liquidity:       "After 3 years, fully liquid",
		TaxImplications: "Save up to ₹46,800 tax. LTCG taxed at 10% above ₹1L gain",
		Docs: []string{
			"PAN",
			"Aadhaar",
			"Bank account",
			"Cancelled cheque",
		},
		Steps: []string{
			"Complete KYC on Zerodha, Groww, Paytm Money, or MF Utility",
			"Search for top ELSS funds (Mirae Asset Tax Saver, Axis Long Term Equity)",
			"Invest lump sum or start SIP (min ₹500/month)",
			"Keep investment proof for tax filing",
			"After 3 years, choose to redeem or continue",
		},
		Risks:    "Market-linked — can fall 30–40% in bear markets. Long-term view needed.",
		WhoAvoid: "Those who cannot stay invested for minimum 3 years.",
		ScamFlags: []string{
			"No ELSS fund guarantees fixed returns",
			"Avoid \"assured return\" ELSS schemes — they don't exist",
			"Invest only through SEBI-registered platforms or AMCs directly",
		},
	},
	"mf_equity": {
		ID:              "mf_equity",
		Icon:            "📈",
		Name:            "Equity Mutual Funds (SIP)",
		ShortDesc:       "Diversified market exposure via monthly SIP",
		ReturnRange:     "12–18% p.a.",
		ReturnLabel:     "Long-term avg.",
		AllocationLabel: "Core Growth",
		LockIn:          "None (open-ended)",
		Liquidity:       "T+3 redemption",
		TaxImplications: "LTCG 10% (>1L), STCG 15% if held <1 year",
		Docs: []string{
			"PAN",
			"Aadhaar",
			"Bank account",
			"Photo",
		},
		Steps: []string{
			"Open a free account on Zerodha Coin, Groww, or Kuvera",
			"Complete Video KYC (takes ~10 minutes)",
			"Choose funds based on category: Large Cap / Flexi Cap / Mid Cap",
			"Set up a monthly SIP (Systematic Investment Plan) — even ₹500 works",
			"Review portfolio annually; avoid switching funds every few months",
		},
		Risks:    "Market risk — NAV fluctuates daily. Best held 5–10+ years.",
		WhoAvoid: "Those needing money in less than 3 years for specific goals.",
		ScamFlags: []string{
			"No mutual fund can \"double money in 1 year\" legally",
			"Cold calls selling MFs often involve mis-selling — always verify SEBI registration",
			"Never invest in mutual funds via WhatsApp groups or Telegram bots",
		},
	},
	"us_index": {
		ID:              "us_index",
		Icon:            "🌐",
		Name:            "US / International Index Funds",
		ShortDesc:       "Global diversification via S&P 500 index",
		ReturnRange:     "14–18% p.a.",
		ReturnLabel:     "USD returns + forex gain",
		AllocationLabel: "Global Hedge",
		LockIn:          "None",
		Liquidity:       "T+3 redemption",
		TaxImplications: "Taxed as debt fund: 20% with indexation after 3 years",
		Docs: []string{
			"PAN",
			"Aadhaar",
			"Bank account",
		},
		Steps: []string{
			"Open account on Kuvera, Groww, or Zerodha Coin",
			"Search for \"Motilal Oswal S&P 500 Index Fund\" or \"PPFAS Flexi Cap\"",
			"Start with minimum ₹500 SIP",
			"Note currency risk: INR weakening boosts returns in ₹",
			"Hold for 5+ years for best results",
		},
		Risks:    "Currency risk + US market risk. RBI may impose limits on fresh investments.",
		WhoAvoid: "Those with short investment horizon or averse to currency fluctuation.",
		ScamFlags: []string{
			"No US fund offers guaranteed NRI-level returns in India",
			"Beware of offshore funds not registered with SEBI",
			"Avoid platforms that aren't listed on AMFI / SEBI website",
		},
	},
	"gold": {
		ID:              "gold",
		Icon:            "🥇",
		Name:            "Gold ETF / Sovereign Gold Bonds",
		ShortDesc:       "Digital gold without storage risk",
		ReturnRange:     "8–10% p.a.",
		ReturnLabel:     "Historical 10yr",
		AllocationLabel: "Inflation Hedge",
		LockIn:          "SGBs: 8 years (exit after 5)",
		Liquidity:       "Gold ETF: T+2; SGB: listed on exchange",
		TaxImplications: "SGB: Capital gain tax-free at maturity. ETF: LTCG after 3 years",
		Docs: []string{
			"Demat account",
			"PAN",
			"Aadhaar",
		},
		Steps: []string{
			"Open a demat account with Zerodha / Groww / Angel One",
			"Search \"Gold ETF\" on the platform (HDFC Gold ETF, Nippon Gold ETF)",
			"Buy in units (1 unit ≈ 1 gram equivalent)",
			"For SGB: apply during RBI issue windows via bank or Zerodha",
			"SGB also gives 2.5% annual interest (bonus!)",
		},
		Risks:    "Gold is volatile short-term. No cash flow or dividends from physical-linked ETFs.",
		WhoAvoid: "Those seeking regular income or short-term trading.",
		ScamFlags: []string{
			"Physical gold buying doesn't apply here — Gold ETF is electronic only",
			"Never buy \"digital gold\" from unregulated platforms; use SEBI-registered brokers",
			"Multi-level marketing \"gold schemes\" are typically fraudulent",
		},
	},
	"direct_equity": {
		ID:              "direct_equity",
		Icon:            "💹",
		Name:            "Direct Stocks (Equity)",
		ShortDesc:       "Own shares of listed companies directly",
		ReturnRange:     "15–25%+ p.a.",
		ReturnLabel:     "Skill-dependent",
		AllocationLabel: "High Alpha",
		LockIn:          "None",
		Liquidity:       "T+2 settlement",
		TaxImplications: "STCG 15% (<1yr), LTCG 10% (>1yr, above ₹1L gain)",
		Docs: []string{
			"Demat account",
			"PAN",
			"Aadhaar",
			"Bank account",
		},
		Steps: []string{
			"Open a demat + trading account (Zerodha, Angel One, Upstox)",
			"Complete in-person verification or video KYC",
			"Fund the account and start with blue-chip companies (Nifty 50)",
			"Research companies: check quarterly results, debt, P/E ratio",
			"Place buy orders; hold for 1+ years for LTCG benefit",
		},
		Risks:    "High. Stocks can fall 50–80%. Requires research and emotional discipline.",
		WhoAvoid: "Absolute beginners without financial literacy. Start with MFs first.",
		ScamFlags: []string{
			"Never follow \"hot tips\" on Telegram / WhatsApp — SEBI calls this unauthorized advice",
			"Pump-and-dump schemes target penny stocks — avoid unresearched small caps",
			"No SEBI-registered advisor will ask for a cut of your profits",
		},
	},
	"smallcap": {
		ID:              "smallcap",
		Icon:            "🚀",
		Name:            "Small-Cap Mutual Funds",
		ShortDesc:       "High growth potential with higher volatility",
		ReturnRange:     "16–22% p.a.",
		ReturnLabel:     "Long-term avg.",
		AllocationLabel: "High Growth",
		LockIn:          "None (open-ended)",
		Liquidity:       "T+3 redemption",
		TaxImplications: "LTCG 10% (>1yr, above ₹1L), STCG 15%",
		Docs: []string{
			"PAN",
			"Aadhaar",
			"Bank account",
		},
		Steps: []string{
			"Open account on Groww, Zerodha Coin, or directly on AMC website",
			"Choose funds: Nippon India Small Cap, SBI Small Cap, Quant Small Cap",
			"Start SIP for at least ₹1,000/month",
			"Commit to a minimum 7–10 year horizon",
			"Don't check NAV every day — volatility is normal",
		},
		Risks:    "Very high volatility. Can fall 60–70% in bear markets. Must hold 7+ years.",
		WhoAvoid: "Anyone with investment horizon under 5 years or low risk tolerance.",
		ScamFlags: []string{
			"Small-cap \"guaranteed return\" schemes are always fraud",
			"Avoid advisor-pushed schemes with high commissions (check TER)",
			"Invest only through SEBI-regulated platforms",
		},
	},
	"reit": {
		ID:              "reit",
		Icon:            "🏗️",
		Name:            "REITs & InvITs",
		ShortDesc:       "Real estate & infrastructure income trusts",
		ReturnRange:     "8–12% p.a.",
		ReturnLabel:     "Dividend + growth",
		AllocationLabel: "Income",
		LockIn:          "None (exchange listed)",
		Liquidity:       "T+2 on NSE/BSE",
		TaxImplications: "Distributions taxed as per type: interest/dividend/capital gain",
		Docs: []string{
			"Demat account",
			"PAN",
		},
		Steps: []string{
			"Open a demat account with Zerodha or Angel One",
			"Search \"REITs\" on NSE: Embassy REIT, Mindspace REIT, Nexus Select Trust",
			"Buy units like shares (minimum 1 unit ≈ ₹200–400)",
			"Receive quarterly distributions (rental income equivalent)",
			"Hold for 3+ years for meaningful returns",
		},
		Risks:    "Lower than equity but market-linked. Interest rate sensitive.",
		WhoAvoid: "Those seeking very high growth. Better for income-seekers.",
		ScamFlags: []string{
			"Only 4–5 listed REITs in India — anything else is unregulated",
			"Fractional real estate apps without SEBI registration carry high risk",
			"Never invest in unlisted \"property bonds\" without due diligence",
		},
	},
}
