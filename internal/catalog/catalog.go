// Package catalog holds the hand-authored priority items that are not sourced
// from the tabular API. Entries are constant for the process lifetime and
// never pass through standard filtering.
package catalog

import (
	"time"

	"prioboard/internal/item"
)

func date(value string) *time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic("catalog: bad literal date " + value)
	}
	return &t
}

// TechnologySalesforceAI is prepended to the Technology view's primary bucket.
var TechnologySalesforceAI = item.Item{
	Project:    "Salesforce AI Support",
	Status:     "In Progress",
	Priority:   "1. Primary",
	StartDate:  date("2026-01-01"),
	EndDate:    date("2026-06-30"),
	Capability: []string{"All PRO Sales"},
	Owner:      "Lisa",
	IsStatic:   true,
}

// StrategySalesforceAI is prepended to the Strategy view's primary bucket.
var StrategySalesforceAI = item.Item{
	Project:    "Salesforce AI Support",
	Status:     "In Progress",
	Priority:   "1. Primary",
	StartDate:  date("2026-01-01"),
	EndDate:    date("2026-06-30"),
	Capability: []string{"All PRO Sales"},
	Owner:      "Kate",
	IsStatic:   true,
}

// TrainingEmpowerGuides joins the Training view's supervisor section.
var TrainingEmpowerGuides = item.Item{
	Project:   "As Needed Empower Guides",
	Status:    "In Progress",
	Priority:  "4. Ongoing",
	Notes:     "Empower Guides & Tools developed as needed to support relevant trainings launched to individual contributors",
	StartDate: date("2026-01-01"),
	EndDate:   date("2026-06-30"),
	Audience:  "Supervisor",
	IsStatic:  true,
}

// TrainingStrategicSelling joins the Training view's end-user section.
var TrainingStrategicSelling = item.Item{
	Project:    "Strategic Selling",
	Status:     "Not Started",
	Priority:   "3. Considering",
	Notes:      "Selling with Tech Across the Sales Cycle, Prospecting, Competitive Selling, Proposal, Overcoming Objections",
	StartDate:  date("2026-01-01"),
	EndDate:    date("2026-03-31"),
	Capability: []string{"End User - Market", "End User - National"},
	Owner:      "Nick/Jamie",
	IsStatic:   true,
}

// GPXpressItems is the full GPXpress view dataset; that view renders only
// these, never fetched rows.
var GPXpressItems = []item.Item{
	{
		Project:   "Quality & VOC Evolution",
		Status:    "In Progress",
		Priority:  "1. Primary",
		Notes:     "Rethinking our Quality role with a focus on amplifying the VOC with brand teams, sales and categories",
		StartDate: date("2026-01-01"),
		EndDate:   date("2026-04-17"),
		Owner:     "Olga",
		IsStatic:  true,
	},
	{
		Project:   "Interaction Elevation",
		Status:    "In Progress",
		Priority:  "1. Primary",
		Notes:     "POV on Interaction Elevation and subsequent experiments. Through service, elevate customer interactions to create leads and aid in retention/churn mitigation.",
		StartDate: date("2026-01-01"),
		EndDate:   date("2026-06-19"),
		Owner:     "Olga",
		IsStatic:  true,
	},
	{
		Project:   "GPXpress AI/Agentforce Q2",
		Status:    "In Progress",
		Priority:  "1. Primary",
		StartDate: date("2025-12-01"),
		EndDate:   date("2026-06-30"),
		Owner:     "Isabella",
		IsStatic:  true,
	},
	{
		Project:   "GPXpress PRO/Retail Chat Upgrade",
		Status:    "In Progress",
		Priority:  "1. Primary",
		StartDate: date("2025-09-29"),
		EndDate:   date("2026-02-14"),
		Owner:     "Isabella",
		IsStatic:  true,
	},
	{
		Project:   "GPXpress Catalog Enhancements",
		Status:    "In Progress",
		Priority:  "1. Primary",
		Notes:     "1. Search Bar (In Progress) 2. Sort Order (In Progress) 3. Discontinued (complete) 4. Missing Images (In Progress)",
		StartDate: date("2025-07-01"),
		EndDate:   date("2026-06-30"),
		Owner:     "Isabella",
		IsStatic:  true,
	},
	{
		Project:   "Drop Ship Process Enhancements",
		Status:    "In Progress",
		Priority:  "1. Primary",
		Notes:     "re-think and re-design the dropship intake process. cross functional project with BE, IT, SAP IT, Order Management. developing a better process for intake and execution of dropships",
		StartDate: date("2025-07-01"),
		EndDate:   date("2026-03-31"),
		Owner:     "Isabella",
		IsStatic:  true,
	},
	{
		Project:   "GPX Training and Onboarding Reset",
		Status:    "In Progress",
		Priority:  "1. Primary",
		Notes:     "GPX Training and Onboarding transformation. Includes Pro and Retail. Goal is to streamline ongoing training and rethink onboarding and create knowledge networks at their fingertips to enable productivity and execution.",
		StartDate: date("2026-01-01"),
		EndDate:   date("2026-06-19"),
		Owner:     "Isabella",
		IsStatic:  true,
	},
	{
		Project:   "GPXpress Mobile App 2.0",
		Status:    "In Progress",
		Priority:  "1. Primary",
		Notes:     "mobile app 2.0 enhancements. List of enhancements we would like to make which have all been prioritized for execution. Recently received an additional resource who is moving on the projects. Currently in flight: samples, prosearch, push notifications",
		StartDate: date("2025-03-03"),
		EndDate:   date("2026-08-03"),
		Owner:     "Isabella",
		IsStatic:  true,
	},
	{
		Project:   "SME Evolution",
		Status:    "In Progress",
		Priority:  "1. Primary",
		Notes:     "GPX SME protocol transformation",
		StartDate: date("2026-01-01"),
		EndDate:   date("2026-06-12"),
		Owner:     "Angela",
		IsStatic:  true,
	},
	{
		Project:   "GPXpress Online Re-Design",
		Status:    "In Progress",
		Priority:  "2. Secondary",
		Notes:     "GPX online re-design. Working on updating look and feel of the online platform so that it is more modern and cohesive with our mobile app. one brand look. working with Workfront team on design their project deadline is 12/1",
		StartDate: date("2025-09-15"),
		EndDate:   date("2026-06-30"),
		Owner:     "Isabella",
		IsStatic:  true,
	},
	{
		Project:   "GPXpress Genesys Enhancements",
		Status:    "In Progress",
		Priority:  "2. Secondary",
		StartDate: date("2025-11-01"),
		EndDate:   date("2026-06-30"),
		Owner:     "Isabella",
		IsStatic:  true,
	},
	{
		Project:   "Cross Reference Upgrade",
		Status:    "In Progress",
		Priority:  "2. Secondary",
		Notes:     "identified area of opportunity to reduce manual workload on gpxpress team. identifying where problem areas are in the current process and discovering ways to improve",
		StartDate: date("2025-12-08"),
		EndDate:   date("2026-01-30"),
		Owner:     "Isabella",
		IsStatic:  true,
	},
	{
		Project:   "Image Recognition MVP",
		Status:    "In Progress",
		Priority:  "2. Secondary",
		StartDate: date("2026-01-01"),
		EndDate:   date("2026-03-31"),
		Owner:     "Isabella",
		IsStatic:  true,
	},
}

// LDItems is the full L&D view dataset, grouped by person at render time.
var LDItems = []item.Item{
	{
		Project:   "Foundational & Role Specific Training",
		Status:    "In Progress",
		Priority:  "1. Primary",
		StartDate: date("2026-02-01"),
		EndDate:   date("2026-04-30"),
		Owner:     "Hannah",
		IsStatic:  true,
	},
	{
		Project:   "3rd Party Sales Training",
		Status:    "In Progress",
		Priority:  "1. Primary",
		StartDate: date("2026-01-01"),
		EndDate:   date("2026-03-31"),
		Owner:     "Hannah",
		IsStatic:  true,
	},
	{
		Project:   "Talent Planning Launch Plan",
		Status:    "In Progress",
		Priority:  "1. Primary",
		StartDate: date("2026-04-01"),
		EndDate:   date("2026-05-31"),
		Owner:     "Hannah",
		IsStatic:  true,
	},
	{
		Project:   "Strategic Selling/Insights Scoping",
		Status:    "In Progress",
		Priority:  "1. Primary",
		StartDate: date("2026-03-01"),
		EndDate:   date("2026-06-30"),
		Owner:     "Hannah",
		IsStatic:  true,
	},
	{
		Project:   "Galaxy Strategy, Migration, & Launch",
		Status:    "In Progress",
		Priority:  "1. Primary",
		StartDate: date("2026-03-01"),
		EndDate:   date("2026-06-30"),
		Owner:     "Allison",
		IsStatic:  true,
	},
	{
		Project:   "JumpStart Pathways",
		Status:    "In Progress",
		Priority:  "2. Secondary",
		StartDate: date("2026-04-01"),
		EndDate:   date("2026-06-30"),
		Owner:     "Allison/Donielle",
		IsStatic:  true,
	},
	{
		Project:   "LMS Administration",
		Status:    "In Progress",
		Priority:  "4. Ongoing / As Needed",
		StartDate: date("2026-01-01"),
		EndDate:   date("2026-06-30"),
		Owner:     "Allison",
		IsStatic:  true,
	},
	{
		Project:   "Facilitating Superior Meetings",
		Status:    "In Progress",
		Priority:  "2. Secondary",
		StartDate: date("2026-03-01"),
		EndDate:   date("2026-04-30"),
		Owner:     "Madison",
		IsStatic:  true,
	},
	{
		Project:   "ENGAGE Upgrades/Strategy",
		Status:    "In Progress",
		Priority:  "1. Primary",
		StartDate: date("2026-02-01"),
		EndDate:   date("2026-04-30"),
		Owner:     "Madison",
		IsStatic:  true,
	},
	{
		Project:   "Leveraging Tech Support (PRO- Dates Variable)",
		Status:    "In Progress",
		Priority:  "4. Ongoing / As Needed",
		StartDate: date("2026-01-01"),
		EndDate:   date("2026-06-30"),
		Owner:     "Madison",
		IsStatic:  true,
	},
	{
		Project:   "ENGAGE Facilitation & Management",
		Status:    "In Progress",
		Priority:  "4. Ongoing / As Needed",
		StartDate: date("2026-01-01"),
		EndDate:   date("2026-06-30"),
		Owner:     "Madison",
		IsStatic:  true,
	},
	{
		Project:   "Supply Chain Training",
		Status:    "In Progress",
		Priority:  "2. Secondary",
		StartDate: date("2026-05-01"),
		EndDate:   date("2026-06-30"),
		Owner:     "Donielle",
		IsStatic:  true,
	},
	{
		Project:   "Roleplay Software Evaluation",
		Status:    "In Progress",
		Priority:  "1. Primary",
		StartDate: date("2026-01-01"),
		EndDate:   date("2026-02-28"),
		Owner:     "Donielle",
		IsStatic:  true,
	},
	{
		Project:   "EMPOWER Growth App 2.0",
		Status:    "In Progress",
		Priority:  "1. Primary",
		StartDate: date("2026-03-01"),
		EndDate:   date("2026-04-30"),
		Owner:     "Donielle",
		IsStatic:  true,
	},
}
