package catalog

import "github.com/Dan9191/finplan-service/internal/models"

// topicOrder is the display order of the education library.
var topicOrder = []string{"debit", "credit", "netbanking", "upi", "cheques", "loans", "emi", "docs"}

var topics = map[string]models.Topic{
	"debit": {
		ID:                  "debit",
		Category:            "Online Banking",
		Title:               "Debit Cards",
		Tag:                 "Everyday Banking",
		ExpertExplanation:   "A debit card is linked directly to your savings or current bank account. When you make a purchase, funds are immediately deducted from your account balance. They operate on payment networks like Visa, Mastercard, or RuPay. They do not offer credit and carry no interest obligation.",
		BeginnerExplanation: "A debit card is like a plastic key to your piggy bank. When you swipe it at a store or ATM, the money comes directly out of your bank account. You can only spend what you actually have.",
		RealExample:         "Riya goes to Big Bazaar and pays ₹1,200 using her SBI debit card. The amount is instantly deducted from her ₹15,000 savings account balance. She now has ₹13,800.",
		FraudTips:           "Never share your 4-digit PIN with anyone, including bank staff. Cover the keypad when entering your PIN at ATMs. Report lost/stolen cards immediately by calling 1800 111 109 (SBI helpline). Enable SMS alerts for every transaction. Avoid using debit cards on suspicious websites — use credit cards or UPI for online shopping instead.",
		FAQs: []models.FAQ{
			{
				Question: "What's the difference between a debit card and credit card?",
				Answer:   "Debit cards use your own money (from your bank account). Credit cards use the bank's money — you pay it back later, sometimes with interest.",
			},
			{
				Question: "What should I do if I see an unauthorized transaction?",
				Answer:   "Call your bank immediately (their 24/7 helpline is on the back of the card). Block your card via net banking or the mobile app. File a complaint within 3 days for zero liability coverage.",
			},
			{
				Question: "Can I use my debit card internationally?",
				Answer:   "Yes, if it has a Visa/Mastercard logo. Enable international transactions via net banking first. Note that foreign currency conversion fees (2–3.5%) apply.",
			},
		},
	},
	"credit": {
		ID:                  "credit",
		Category:            "Online Banking",
		Title:               "Credit Cards",
		Tag:                 "Borrow & Repay",
		ExpertExplanation:   "A credit card provides a revolving line of credit issued by a bank or NBFC. Purchases are made against a credit limit; the outstanding balance is due at month end. Unpaid balances attract interest typically ranging 36–42% annually. Credit cards offer purchase protection, reward points, and improve credit score when used responsibly.",
		BeginnerExplanation: "A credit card lets you borrow money from the bank to buy things now and pay later. The bank sets a limit (e.g. ₹50,000). If you pay the full amount by month end, it's free! But if you pay less, the bank charges very high interest — up to 3.5% per month.",
		RealExample:         "Amit buys a ₹30,000 laptop during a sale using his HDFC credit card with 10% cashback, saving ₹3,000. He pays the full bill before the due date, paying zero interest. The cashback gets credited next month.",
		FraudTips:           "Never give your card number, CVV, or OTP to anyone — banks never ask for these. Enable transaction alerts via SMS. If you receive a \"card blocked\" call asking for details, hang up immediately and call your bank's official number. Watch out for card skimming devices at petrol pumps and ATMs.",
		FAQs: []models.FAQ{
			{
				Question: "What is a minimum payment and is it safe to only pay that?",
				Answer:   "Minimum payment (usually 5% of outstanding) only avoids late fees but the remaining balance attracts 3–3.5% monthly interest, which compounds quickly. Always pay in full if possible.",
			},
			{
				Question: "How does credit score relate to credit cards?",
				Answer:   "Using your credit card and paying on time builds your CIBIL score (300–900). A score above 750 helps you get better loan rates. Maxing out your card or missing payments drops your score.",
			},
			{
				Question: "Which credit card should I get first?",
				Answer:   "Start with a secured credit card or an entry-level card from your own bank (where you have a savings account). Cards like SBI SimplyCLICK or HDFC MoneyBack are good starters.",
			},
		},
	},
	"netbanking": {
		ID:                  "netbanking",
		Category:            "Online Banking",
		Title:               "Net Banking",
		Tag:                 "Digital Finance",
		ExpertExplanation:   "Internet banking (net banking) is a secure digital platform provided by banks that allows customers to perform financial transactions, account management, and service requests via a browser or mobile app. Authentication uses multi-factor methods including login credentials and OTP verification.",
		BeginnerExplanation: "Net banking is your bank on your laptop or phone. You can check your balance, transfer money, pay bills, and open FDs — all from home, without visiting a branch. You need a login ID and password, and the bank sends a secret code (OTP) to your phone for every transaction.",
		RealExample:         "Priya forgot to pay her electricity bill. Instead of going to the office, she opens her ICICI net banking app, goes to \"Pay Bills,\" selects BESCOM, enters her account number, and pays ₹1,450 in under 2 minutes.",
		FraudTips:           "Never access net banking on public Wi-Fi. Always type your bank's URL directly — never click links from emails or SMS. Official bank websites have \"https\" and a lock icon. Banks will NEVER send you an email asking you to \"verify your account\" by clicking a link — these are phishing attacks.",
		FAQs: []models.FAQ{
			{
				Question: "What is NEFT, RTGS, and IMPS?",
				Answer:   "NEFT: Transfers in batches, takes 30 min–2 hours. RTGS: For large transfers (above ₹2L), instant. IMPS: Instant 24/7 transfer, even on holidays. UPI: Simplest instant transfer using a VPA (virtual payment address).",
			},
			{
				Question: "What should I do if I transfer money to the wrong account?",
				Answer:   "Call your bank immediately. They can raise a dispute. If the recipient's bank cooperates, money may be returned within 7 days. Act fast — there's no guarantee after 48 hours.",
			},
			{
				Question: "Is net banking safe?",
				Answer:   "Yes, if you follow basic precautions: use strong passwords, enable 2FA, never share OTPs, and log out after every session. Banks use 256-bit encryption.",
			},
		},
	},
	"upi": {
		ID:                  "upi",
		Category:            "Online Banking",
		Title:               "UPI Payments",
		Tag:                 "India's Superpower",
		ExpertExplanation:   "Unified Payments Interface (UPI) is a real-time interbank payment system developed by NPCI. It enables peer-to-peer and merchant transactions using virtual payment addresses (VPAs). Transactions settle in real-time 24/7/365. Daily limits: ₹1 lakh per transaction (up to ₹2L for some use cases).",
		BeginnerExplanation: "UPI is a magical way to send and receive money using just a phone number or a simple ID like \"yourname@okicici\". You link your bank account to apps like GPay, PhonePe, or Paytm. Scanning a QR code or entering a UPI ID sends money instantly — free of charge!",
		RealExample:         "Rohan is at a local sabzi vendor who has a GPay QR code. He scans it, enters ₹85, puts in his 4-digit UPI PIN, and the vendor gets the money in 3 seconds. No cash. No change. No hassle.",
		FraudTips:           "You NEVER need to enter your PIN to RECEIVE money — this is the #1 UPI scam. Scammers send \"collect requests\" pretending to send you money, but you actually pay them. Never scan QR codes sent by strangers promising cashback. Screen share scams: never install remote access apps while talking to someone about UPI issues.",
		FAQs: []models.FAQ{
			{
				Question: "What is the difference between UPI PIN and mPIN?",
				Answer:   "UPI PIN is a 4 or 6-digit code set by you to authorize UPI transactions. mPIN is for mobile banking apps. Both are different and must be kept secret.",
			},
			{
				Question: "Can I reverse a UPI payment made to the wrong person?",
				Answer:   "UPI payments cannot be automatically reversed. You need to contact your bank and file a dispute through your UPI app's \"Help\" section. Recovery isn't guaranteed.",
			},
			{
				Question: "Is UPI safe for large payments?",
				Answer:   "Yes, UPI is NPCI-regulated and uses bank-level encryption. For large amounts, double-check the UPI ID before confirming. Some banks also have cooling periods for new payees.",
			},
		},
	},
	"cheques": {
		ID:                  "cheques",
		Category:            "Offline Banking",
		Title:               "Cheques",
		Tag:                 "Paper Payments",
		ExpertExplanation:   "A cheque is a negotiable instrument directing a drawee bank to pay a specified sum to the payee. It contains MICR code, account number, IFSC, and signature. Cheques clear through the CTS (Cheque Truncation System), typically in 1 business day. Bounced cheques attract legal penalties under Section 138 of the Negotiable Instruments Act.",
		BeginnerExplanation: "A cheque is like a written promise. You write on a special paper from your bank: \"Please pay ₹10,000 to Rahul from my account.\" You sign it. Rahul takes it to his bank, and within a day, the money moves from your account to his.",
		RealExample:         "Sunita is paying her landlord ₹15,000 as rent. She writes a crossed cheque (two parallel lines at the top-left corner, meaning it can only be deposited, not encashed directly), hands it to her landlord, and the money transfers safely.",
		FraudTips:           "Never sign blank cheques — fill in the amount, payee name, and date first. Write \"A/C Payee Only\" on cheques for added security. Keep your cheque book locked. If a cheque goes missing, request your bank to \"stop payment\" immediately. Altered cheques (tampered amounts/dates) are illegal.",
		FAQs: []models.FAQ{
			{
				Question: "What does \"cheque bouncing\" mean?",
				Answer:   "When you issue a cheque but don't have enough balance, the cheque \"bounces.\" This is a criminal offence under Section 138 NI Act — you can be fined up to twice the cheque amount and even imprisoned for up to 2 years.",
			},
			{
				Question: "What is a post-dated cheque?",
				Answer:   "A cheque dated in the future. Banks cannot encash it before that date. Often used for EMI payments. Valid for 3 months from the date written on it.",
			},
			{
				Question: "How long is a cheque valid?",
				Answer:   "Cheques are valid for 3 months from the date written. After that, they become \"stale\" and banks will not accept them.",
			},
		},
	},
	"loans": {
		ID:                  "loans",
		Category:            "Offline Banking",
		Title:               "Bank Loans",
		Tag:                 "Borrow Responsibly",
		ExpertExplanation:   "A loan is a financial instrument where a lender disburses a principal amount to a borrower, who repays it with interest over an agreed tenure. Key types: Home Loan (10–30 years), Personal Loan (1–5 years), Vehicle Loan, Education Loan. Interest can be fixed or floating (linked to MCLR or RBI repo rate).",
		BeginnerExplanation: "A loan is when the bank lends you money that you don't have right now — like to buy a house or pay for college. You pay it back slowly every month (called EMI), along with extra money (interest) as the bank's \"fee\" for lending.",
		RealExample:         "Vikram takes a ₹10 lakh personal loan at 12% for 5 years. His monthly EMI is ₹22,244. Over 5 years, he pays ₹13.35 lakh total — ₹3.35 lakh as interest to the bank.",
		FraudTips:           "Guaranteed loan approvals without credit check are always scams. Never pay \"processing fees\" upfront to unknown agents — real fees are deducted from the loan amount. Avoid private moneylenders who charge 5–10% monthly interest. Always get a loan sanction letter from the bank directly. Check the lender's RBI registration.",
		FAQs: []models.FAQ{
			{
				Question: "What is CIBIL score and why does it matter for loans?",
				Answer:   "CIBIL score (300–900) measures your creditworthiness. Scores above 750 get best loan rates. Missing EMIs, high credit card usage, and multiple loan applications reduce your score.",
			},
			{
				Question: "Should I take a loan to invest?",
				Answer:   "Generally no — especially for market investments. If your loan interest (12–18%) exceeds expected investment returns, you lose money. Only exception: home loans, where you gain an asset and tax benefits.",
			},
			{
				Question: "What happens if I can't repay my loan EMI?",
				Answer:   "After 90 days of missed EMIs, the loan becomes NPA (Non-Performing Asset). The bank can legally recover assets (for secured loans), and your CIBIL score drops severely. Contact your bank proactively if you face difficulties.",
			},
		},
	},
	"emi": {
		ID:                  "emi",
		Category:            "Offline Banking",
		Title:               "EMI Structure",
		Tag:                 "Pay Over Time",
		ExpertExplanation:   "An Equated Monthly Installment (EMI) is a fixed monthly repayment consisting of principal and interest components. In the early tenure, interest dominates; principal repayment accelerates in later months (amortization effect). Formula: EMI = P × r × (1+r)^n / ((1+r)^n - 1). Part-prepayment can significantly reduce total interest outgo.",
		BeginnerExplanation: "EMI means \"Equal Monthly Installment.\" If you borrow ₹1 lakh for a phone, instead of paying everything at once, you pay ₹5,000 every month for 2 years. The total you pay back is more than ₹1 lakh because the bank charges interest — that's the cost of spreading payments.",
		RealExample:         "Anjali buys a ₹60,000 washing machine on \"No Cost EMI\" for 12 months — ₹5,000/month. There's no visible interest, but the product price is usually inflated upfront. True no-cost EMI exists only if the bank/brand subsidizes it.",
		FraudTips:           "\"No Cost EMI\" is often a marketing term — check if the original price has been inflated. Avoid EMI schemes from unregulated finance apps (many charge hidden fees). Read the loan agreement before signing any EMI documents — especially foreclosure charges. Never pay an EMI agent in cash; always transfer to the official bank account.",
		FAQs: []models.FAQ{
			{
				Question: "What happens if I miss an EMI?",
				Answer:   "A late fee is charged (usually ₹500–1,000 + 2–3% penalty). It also negatively impacts your CIBIL score. If you miss 3+ EMIs, legal recovery proceedings can begin for secured loans.",
			},
			{
				Question: "Is it better to prepay a loan or invest the extra money?",
				Answer:   "Compare your loan interest rate vs. expected investment return. If loan rate (e.g., 8.5% home loan) < expected returns (e.g., 12% equity MF), investing makes mathematical sense. But prepayment gives psychological peace.",
			},
			{
				Question: "What is a floating rate EMI?",
				Answer:   "Floating EMIs change when RBI changes repo rates. If RBI raises rates, your EMI increases. Fixed EMIs stay constant regardless of rate changes but are typically higher to compensate.",
			},
		},
	},
	"docs": {
		ID:                  "docs",
		Category:            "Offline Banking",
		Title:               "Bank Documentation",
		Tag:                 "Essential Paperwork",
		ExpertExplanation:   "Banking KYC (Know Your Customer) documentation includes identity proof, address proof, and income proof. The RBI-mandated e-KYC process uses Aadhaar-based OTP verification. For loan applications, additional documents like ITR, salary slips, and bank statements (6 months) are required. Original documents are never permanently kept by banks.",
		BeginnerExplanation: "Banks need to verify who you are (so they don't give your money to the wrong person). They ask for ID proof (Aadhaar, PAN) and address proof. This process is called KYC. You only need to do it once per bank, and it's usually free.",
		RealExample:         "Meera wants to open a savings account at Axis Bank. She brings her Aadhaar card and PAN card, fills a form with her basic details, gets photographed, and her account is activated in 30 minutes. She also gets an app for net banking.",
		FraudTips:           "Never share your Aadhaar OTP with anyone — not even \"bank officers\" calling you. Banks don't ask for passwords or PINs to verify your KYC. Watch out for fake \"KYC update\" SMS links — these steal your information. Aadhaar biometric lock (on UIDAI website) prevents misuse of your Aadhaar for unauthorized transactions.",
		FAQs: []models.FAQ{
			{
				Question: "What is the difference between KYC and e-KYC?",
				Answer:   "KYC = physical document submission at the branch. e-KYC = digital verification using your Aadhaar and OTP — can be done from home. Both are equally valid.",
			},
			{
				Question: "What documents do I need to open a basic savings account?",
				Answer:   "Aadhaar card (identity + address proof), PAN card, 2 passport photos, and an initial deposit (some banks have zero balance accounts like Jan Dhan Yojana).",
			},
			{
				Question: "Can my bank account be frozen if KYC is not updated?",
				Answer:   "Yes. RBI mandates periodic KYC updates. If overdue, accounts can be restricted for outward transactions. Contact your bank to update via app, video call, or branch visit.",
			},
		},
	},
}
