package models

// Topic represents one entry of the education library
type Topic struct {
	ID                  string `json:"id"`
	Category            string `json:"category"`
	Title               string `json:"title"`
	Tag                 string `json:"tag"`
	ExpertExplanation   string `json:"expert_explanation"`
	BeginnerExplanation string `json:"beginner_explanation"`
	RealExample         string `json:"real_example"`
	FraudTips           string `json:"fraud_tips"`
	FAQs                []FAQ  `json:"faqs"`
}

// FAQ is a question and its answer
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
