// Package taxonomy provides the static field keyword registry used to
// classify careers and user profiles into fields. The registry is immutable
// after construction; consumers treat it as a lookup table.
package taxonomy

import (
	"sort"

	"github.com/jonathan/career-compass/internal/types"
)

// FieldProfile holds the keyword buckets and weight for one field.
type FieldProfile struct {
	// Primary keywords strongly indicate the field.
	Primary []string
	// Secondary keywords weakly indicate the field.
	Secondary []string
	// Exclusions are title keywords that indicate the text belongs to another
	// field (usually executive leadership) despite primary matches.
	Exclusions []string
	// SeniorityIndicators are seniority tags commonly seen in this field.
	SeniorityIndicators []string
	// RelatedFields are fields considered adjacent for transition purposes.
	RelatedFields []string
	// Weight scales all keyword contributions for this field.
	Weight float64
}

// Registry maps field tags to their profiles.
type Registry struct {
	fields map[string]FieldProfile
}

// Default returns the built-in field registry.
func Default() *Registry {
	return &Registry{fields: defaultFields}
}

// Lookup returns the profile for a field tag.
func (r *Registry) Lookup(field string) (FieldProfile, bool) {
	profile, ok := r.fields[field]
	return profile, ok
}

// Fields returns all registered field tags in sorted order.
func (r *Registry) Fields() []string {
	fields := make([]string, 0, len(r.fields))
	for field := range r.fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// Related reports whether two distinct fields are adjacent in either
// direction. Identical fields are not related, they are the same field.
func (r *Registry) Related(a, b string) bool {
	if a == b {
		return false
	}
	if profile, ok := r.fields[a]; ok {
		for _, related := range profile.RelatedFields {
			if related == b {
				return true
			}
		}
	}
	if profile, ok := r.fields[b]; ok {
		for _, related := range profile.RelatedFields {
			if related == a {
				return true
			}
		}
	}
	return false
}

var defaultFields = map[string]FieldProfile{
	types.FieldTechnology: {
		Primary: []string{
			"software", "developer", "programmer", "engineer", "devops", "sre",
			"data scientist", "machine learning", "backend", "frontend",
			"full stack", "cloud", "cybersecurity", "database", "qa engineer",
		},
		Secondary: []string{
			"python", "java", "javascript", "golang", "sql", "api", "agile",
			"linux", "kubernetes", "aws", "analytics", "automation", "coding",
		},
		Exclusions:          []string{"vp", "vice president", "chief", "ceo", "cto", "president"},
		SeniorityIndicators: []string{types.SeniorityJunior, types.SeniorityMid, types.SenioritySenior},
		RelatedFields:       []string{types.FieldBusinessFinance, types.FieldManufacturingIndustrial, types.FieldCreativeArts},
		Weight:              1.0,
	},
	types.FieldBusinessFinance: {
		Primary: []string{
			"accountant", "financial analyst", "auditor", "controller", "banker",
			"investment", "finance", "economist", "actuary", "data analyst",
			"business analyst", "consultant", "underwriter", "bookkeeper",
		},
		Secondary: []string{
			"budget", "forecasting", "accounting", "tax", "portfolio", "audit",
			"compliance", "excel", "reporting", "risk", "strategy", "operations",
		},
		Exclusions:          []string{"vp", "vice president", "chief", "ceo", "cfo", "president"},
		SeniorityIndicators: []string{types.SeniorityJunior, types.SeniorityMid, types.SenioritySenior},
		RelatedFields:       []string{types.FieldTechnology, types.FieldSalesMarketing, types.FieldLegalLaw},
		Weight:              1.0,
	},
	types.FieldExecutiveLeadership: {
		Primary: []string{
			"ceo", "cto", "cfo", "coo", "chief", "president", "vice president",
			"vp", "svp", "executive director", "managing director", "general manager",
		},
		Secondary: []string{
			"leadership", "strategy", "vision", "board", "stakeholder",
			"transformation", "p&l", "governance", "executive",
		},
		// For executive leadership the executive tokens reinforce rather than
		// exclude; the classifier treats this bucket as a boost.
		Exclusions:          []string{"ceo", "cto", "cfo", "coo", "chief", "president", "vp", "vice president"},
		SeniorityIndicators: []string{types.SeniorityExecutive},
		RelatedFields:       []string{types.FieldBusinessFinance, types.FieldTechnology},
		Weight:              1.1,
	},
	types.FieldSalesMarketing: {
		Primary: []string{
			"sales", "marketing", "account executive", "account manager",
			"brand", "growth", "advertising", "seo", "social media",
			"business development", "customer success", "public relations",
		},
		Secondary: []string{
			"campaign", "lead generation", "crm", "quota", "content",
			"copywriting", "market research", "pipeline", "outreach",
		},
		Exclusions:          []string{"vp", "vice president", "chief", "cmo", "president"},
		SeniorityIndicators: []string{types.SeniorityJunior, types.SeniorityMid, types.SenioritySenior},
		RelatedFields:       []string{types.FieldBusinessFinance, types.FieldCreativeArts, types.FieldHospitalityService},
		Weight:              1.0,
	},
	types.FieldHealthcare: {
		Primary: []string{
			"nurse", "physician", "doctor", "surgeon", "therapist", "pharmacist",
			"dentist", "paramedic", "clinician", "medical", "healthcare",
			"radiologist", "veterinarian", "caregiver",
		},
		Secondary: []string{
			"patient", "clinical", "hospital", "diagnosis", "treatment",
			"health", "care plan", "rehabilitation", "triage",
		},
		Exclusions:          []string{"chief", "vp", "vice president", "president"},
		SeniorityIndicators: []string{types.SeniorityJunior, types.SeniorityMid, types.SenioritySenior},
		RelatedFields:       []string{types.FieldEducation, types.FieldGovernmentPublicService},
		Weight:              1.0,
	},
	types.FieldEducation: {
		Primary: []string{
			"teacher", "professor", "instructor", "tutor", "educator",
			"principal", "curriculum", "lecturer", "trainer", "librarian",
		},
		Secondary: []string{
			"classroom", "students", "teaching", "school", "learning",
			"education", "lesson", "academic", "pedagogy",
		},
		Exclusions:          []string{"chief", "vp", "vice president", "president"},
		SeniorityIndicators: []string{types.SeniorityJunior, types.SeniorityMid, types.SenioritySenior},
		RelatedFields:       []string{types.FieldHealthcare, types.FieldGovernmentPublicService},
		Weight:              1.0,
	},
	types.FieldSkilledTrades: {
		Primary: []string{
			"electrician", "plumber", "carpenter", "welder", "mechanic",
			"technician", "hvac", "machinist", "driver", "installer",
			"locksmith", "roofer", "painter",
		},
		Secondary: []string{
			"repair", "maintenance", "apprentice", "tools", "blueprint",
			"construction", "equipment", "safety", "installation",
		},
		Exclusions:          []string{"chief", "vp", "vice president", "president"},
		SeniorityIndicators: []string{types.SeniorityJunior, types.SeniorityMid},
		RelatedFields:       []string{types.FieldManufacturingIndustrial, types.FieldAgricultureEnvironment},
		Weight:              1.0,
	},
	types.FieldGovernmentPublicService: {
		Primary: []string{
			"police", "firefighter", "civil servant", "government", "public service",
			"social worker", "policy analyst", "diplomat", "inspector", "military",
		},
		Secondary: []string{
			"public", "municipal", "federal", "regulation", "community",
			"agency", "civic", "administration", "permit",
		},
		Exclusions:          []string{"chief", "vp", "vice president", "president"},
		SeniorityIndicators: []string{types.SeniorityJunior, types.SeniorityMid, types.SenioritySenior},
		RelatedFields:       []string{types.FieldLegalLaw, types.FieldEducation, types.FieldHealthcare},
		Weight:              1.0,
	},
	types.FieldLegalLaw: {
		Primary: []string{
			"lawyer", "attorney", "paralegal", "judge", "counsel",
			"legal", "litigation", "solicitor", "notary",
		},
		Secondary: []string{
			"contract", "court", "compliance", "case law", "deposition",
			"regulatory", "intellectual property", "dispute",
		},
		Exclusions:          []string{"chief", "vp", "vice president", "president"},
		SeniorityIndicators: []string{types.SeniorityMid, types.SenioritySenior},
		RelatedFields:       []string{types.FieldBusinessFinance, types.FieldGovernmentPublicService},
		Weight:              1.0,
	},
	types.FieldCreativeArts: {
		Primary: []string{
			"designer", "artist", "writer", "photographer", "musician",
			"illustrator", "animator", "editor", "producer", "filmmaker",
			"ux designer", "graphic",
		},
		Secondary: []string{
			"creative", "portfolio", "visual", "storytelling", "typography",
			"branding", "studio", "composition", "media",
		},
		Exclusions:          []string{"chief", "vp", "vice president", "president"},
		SeniorityIndicators: []string{types.SeniorityJunior, types.SeniorityMid, types.SenioritySenior},
		RelatedFields:       []string{types.FieldSalesMarketing, types.FieldTechnology},
		Weight:              1.0,
	},
	types.FieldHospitalityService: {
		Primary: []string{
			"chef", "cook", "bartender", "server", "waiter", "barista",
			"hotel", "hospitality", "concierge", "housekeeper", "restaurant",
			"event planner", "flight attendant",
		},
		Secondary: []string{
			"guest", "customer service", "catering", "menu", "front desk",
			"reservation", "food", "tourism", "banquet",
		},
		Exclusions:          []string{"chief", "vp", "vice president", "president"},
		SeniorityIndicators: []string{types.SeniorityJunior, types.SeniorityMid},
		RelatedFields:       []string{types.FieldSalesMarketing},
		Weight:              1.0,
	},
	types.FieldAgricultureEnvironment: {
		Primary: []string{
			"farmer", "agronomist", "forester", "rancher", "horticulturist",
			"environmental", "conservation", "agricultural", "ecologist",
			"landscaper", "fisheries",
		},
		Secondary: []string{
			"crops", "soil", "sustainability", "wildlife", "irrigation",
			"harvest", "ecosystem", "climate", "outdoors",
		},
		Exclusions:          []string{"chief", "vp", "vice president", "president"},
		SeniorityIndicators: []string{types.SeniorityJunior, types.SeniorityMid},
		RelatedFields:       []string{types.FieldSkilledTrades, types.FieldGovernmentPublicService},
		Weight:              1.0,
	},
	types.FieldManufacturingIndustrial: {
		Primary: []string{
			"manufacturing", "assembler", "machine operator", "production",
			"industrial", "fabricator", "quality control", "plant", "warehouse",
			"logistics", "forklift", "supply chain",
		},
		Secondary: []string{
			"assembly line", "lean", "inventory", "shift", "factory",
			"packaging", "operations", "six sigma", "inspection",
		},
		Exclusions:          []string{"chief", "vp", "vice president", "president"},
		SeniorityIndicators: []string{types.SeniorityJunior, types.SeniorityMid},
		RelatedFields:       []string{types.FieldSkilledTrades, types.FieldTechnology},
		Weight:              1.0,
	},
}
