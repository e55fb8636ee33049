package dataset

// Source describes one upstream data provider cited by the analysis.
type Source struct {
	Key         string `json:"key" validate:"required"`
	Name        string `json:"name" validate:"required"`
	URL         string `json:"url" validate:"required,url"`
	Description string `json:"description" validate:"required"`
	DataUsed    string `json:"data_used" validate:"required"`
}

var sourceRegistry = []Source{
	{
		Key:         "NSE",
		Name:        "National Stock Exchange of India",
		URL:         "https://www.nseindia.com/",
		Description: "Official source for Nifty 50 index data and corporate announcements",
		DataUsed:    "5-year performance, Quarterly data, Sector weights",
	},
	{
		Key:         "RBI",
		Name:        "Reserve Bank of India",
		URL:         "https://www.rbi.org.in/",
		Description: "Central bank data on interest rates, monetary policy, and economic indicators",
		DataUsed:    "Economic context, Inflation data, Policy environment",
	},
	{
		Key:         "BSE",
		Name:        "Bombay Stock Exchange",
		URL:         "https://www.bseindia.com/",
		Description: "Alternative exchange data for validation and cross-checking",
		DataUsed:    "Sector indices, Corporate disclosures",
	},
	{
		Key:         "MCA",
		Name:        "Ministry of Corporate Affairs",
		URL:         "https://www.mca.gov.in/",
		Description: "Government repository for corporate filings and financial statements",
		DataUsed:    "Annual reports, Quarterly earnings",
	},
	{
		Key:         "SEBI",
		Name:        "Securities and Exchange Board of India",
		URL:         "https://www.sebi.gov.in/",
		Description: "Market regulator providing market data and company disclosures",
		DataUsed:    "Regulatory filings, Market circulars",
	},
	{
		Key:         "Business_Standard",
		Name:        "Business Standard (India)",
		URL:         "https://www.business-standard.com/",
		Description: "Financial news and analysis on Indian markets",
		DataUsed:    "Earnings estimates, Market analysis, Downgrades",
	},
	{
		Key:         "Economic_Times",
		Name:        "The Economic Times",
		URL:         "https://economictimes.indiatimes.com/",
		Description: "Indian business and financial news",
		DataUsed:    "Market trends, Sector updates",
	},
	{
		Key:         "Motilal_Oswal",
		Name:        "Motilal Oswal Financial Services",
		URL:         "https://www.motilaloswal.com/",
		Description: "Investment research and market analysis",
		DataUsed:    "Earnings estimates, Sector analysis",
	},
	{
		Key:         "ICICI_Securities",
		Name:        "ICICI Securities Research",
		URL:         "https://research.icicisecurities.com/",
		Description: "Equity research and market insights",
		DataUsed:    "Company analysis, Earnings revisions",
	},
	{
		Key:         "HDFC_Securities",
		Name:        "HDFC Securities Research",
		URL:         "https://www.hdfcsec.com/",
		Description: "Investment advisory and research",
		DataUsed:    "Market outlook, Sector recommendations",
	},
	{
		Key:         "Nomura",
		Name:        "Nomura India Research",
		URL:         "https://www.nomura.com/indices/india",
		Description: "Global investment bank research on Indian markets",
		DataUsed:    "Valuation analysis, Market trends",
	},
	{
		Key:         "Goldman_Sachs",
		Name:        "Goldman Sachs Research",
		URL:         "https://www.gs.com/",
		Description: "Global investment banking and research",
		DataUsed:    "Market forecasts, Scenario analysis",
	},
}

// Citation groups rendered on the dashboard's sources panel.
var (
	primarySources = []string{
		"NSE (https://www.nseindia.com/)",
		"RBI (https://www.rbi.org.in/)",
		"BSE (https://www.bseindia.com/)",
		"MCA (https://www.mca.gov.in/)",
	}
	researchSources = []string{
		"Business Standard (https://www.business-standard.com/)",
		"Economic Times (https://economictimes.indiatimes.com/)",
		"Motilal Oswal (https://www.motilaloswal.com/)",
	}
	globalResearch = []string{
		"Nomura (https://www.nomura.com/)",
		"Goldman Sachs (https://www.gs.com/)",
	}
)

// Sources returns the provider registry. Callers receive a copy.
func Sources() []Source {
	return append([]Source(nil), sourceRegistry...)
}

// PrimarySources returns the primary citation list.
func PrimarySources() []string {
	return append([]string(nil), primarySources...)
}

// ResearchSources returns the domestic research citation list.
func ResearchSources() []string {
	return append([]string(nil), researchSources...)
}

// GlobalResearch returns the global research citation list.
func GlobalResearch() []string {
	return append([]string(nil), globalResearch...)
}
