package catalog

// Default returns the built-in Sheraa catalog.
func Default() *Catalog {
	return New(DefaultQuestions(), DefaultPrograms())
}

// DefaultQuestions returns the built-in questions in display order.
// The persona question comes first; every other question hangs off one of
// its answers.
func DefaultQuestions() []Question {
	return []Question{
		{
			ID:   "persona",
			Text: "Which of these best describes you?",
			Kind: KindSingle,
			Options: []Option{
				{ID: "student", Label: "University student or recent graduate", PersonaTag: "student"},
				{ID: "founder", Label: "Startup founder", PersonaTag: "founder"},
				{ID: "sme", Label: "Small or medium business owner", PersonaTag: "sme"},
				{ID: "global", Label: "International startup expanding to the UAE", PersonaTag: "global"},
			},
		},

		// --- Student branch ---
		{
			ID:   "studentStage",
			Text: "How far along is your idea?",
			Kind: KindSingle,
			Options: []Option{
				{ID: "idea", Label: "I have an idea I want to explore"},
				{ID: "concept", Label: "I have a validated concept"},
				{ID: "prototype", Label: "I have a working prototype"},
			},
			DependsOn: &Dependency{QuestionID: "persona", RequiredAnswerID: "student"},
		},
		{
			ID:   "studentUniversity",
			Text: "Are you enrolled at, or did you graduate from, a university in Sharjah?",
			Kind: KindSingle,
			Options: []Option{
				{ID: "yes", Label: "Yes"},
				{ID: "no", Label: "No"},
			},
			DependsOn: &Dependency{QuestionID: "persona", RequiredAnswerID: "student"},
		},

		// --- Founder branch ---
		{
			ID:   "founderStage",
			Text: "What stage is your startup at?",
			Kind: KindSingle,
			Options: []Option{
				{ID: "idea", Label: "Idea or pre-product"},
				{ID: "mvp", Label: "MVP with first users"},
				{ID: "revenue", Label: "Generating revenue"},
				{ID: "scaling", Label: "Scaling across markets"},
			},
			DependsOn: &Dependency{QuestionID: "persona", RequiredAnswerID: "founder"},
		},
		{
			ID:   "founderSector",
			Text: "Which sectors does your startup work in?",
			Kind: KindMulti,
			Options: []Option{
				{ID: "tech", Label: "Technology"},
				{ID: "sustainability", Label: "Sustainability"},
				{ID: "creative", Label: "Creative industries"},
				{ID: "health", Label: "Health and wellbeing"},
				{ID: "other", Label: "Something else"},
			},
			DependsOn: &Dependency{QuestionID: "persona", RequiredAnswerID: "founder"},
		},
		{
			ID:   "founderFunding",
			Text: "How is your startup funded today?",
			Kind: KindSingle,
			Options: []Option{
				{ID: "bootstrapped", Label: "Bootstrapped"},
				{ID: "pre-seed", Label: "Pre-seed"},
				{ID: "seed", Label: "Seed"},
				{ID: "series-a", Label: "Series A or later"},
			},
			DependsOn: &Dependency{QuestionID: "persona", RequiredAnswerID: "founder"},
		},

		// --- SME branch ---
		{
			ID:   "smeSize",
			Text: "How many people does your business employ?",
			Kind: KindSingle,
			Options: []Option{
				{ID: "micro", Label: "Fewer than 10"},
				{ID: "small", Label: "10 to 49"},
				{ID: "medium", Label: "50 to 249"},
			},
			DependsOn: &Dependency{QuestionID: "persona", RequiredAnswerID: "sme"},
		},
		{
			ID:   "smeSector",
			Text: "Which sector is your business in?",
			Kind: KindSingle,
			Options: []Option{
				{ID: "retail", Label: "Retail and trade"},
				{ID: "manufacturing", Label: "Manufacturing"},
				{ID: "services", Label: "Professional services"},
				{ID: "tech", Label: "Technology"},
			},
			DependsOn: &Dependency{QuestionID: "persona", RequiredAnswerID: "sme"},
		},
		{
			ID:   "smeGoal",
			Text: "What do you want to achieve in the next year?",
			Kind: KindMulti,
			Options: []Option{
				{ID: "digital", Label: "Go digital"},
				{ID: "export", Label: "Reach export markets"},
				{ID: "financing", Label: "Access financing"},
				{ID: "mentorship", Label: "Find mentors"},
			},
			DependsOn: &Dependency{QuestionID: "persona", RequiredAnswerID: "sme"},
		},

		// --- Global branch ---
		{
			ID:   "globalPresence",
			Text: "Do you already operate in the UAE?",
			Kind: KindSingle,
			Options: []Option{
				{ID: "none", Label: "Not yet"},
				{ID: "planning", Label: "We are planning to enter"},
				{ID: "registered", Label: "We have a registered entity"},
			},
			DependsOn: &Dependency{QuestionID: "persona", RequiredAnswerID: "global"},
		},
		{
			ID:   "globalStage",
			Text: "What stage is your company at?",
			Kind: KindSingle,
			Options: []Option{
				{ID: "mvp", Label: "MVP"},
				{ID: "revenue", Label: "Generating revenue"},
				{ID: "scaling", Label: "Scaling"},
			},
			DependsOn: &Dependency{QuestionID: "persona", RequiredAnswerID: "global"},
		},
	}
}

// DefaultPrograms returns the built-in programs. Order is priority: the
// matcher returns the first program whose criteria pass, so narrower
// programs are declared before broader ones.
func DefaultPrograms() []Program {
	return []Program{
		{
			ID:          "startup-dojo",
			Title:       "Startup Dojo",
			Description: "An intensive summer program that turns student ideas into startups.",
			Link:        "/programs/startup-dojo",
			Criteria: Criteria{
				"persona":           Values("student"),
				"studentStage":      Values("idea", "concept"),
				"studentUniversity": Values("yes"),
			},
			Benefits: []string{
				"Eight weeks of hands-on startup training",
				"Mentorship from Sheraa founders",
				"Demo day in front of investors",
			},
		},
		{
			ID:          "startup-dojo-plus",
			Title:       "Startup Dojo+",
			Description: "Incubation for student teams that already have a prototype.",
			Link:        "/programs/startup-dojo-plus",
			Criteria: Criteria{
				"persona":           Values("student"),
				"studentStage":      Values("prototype"),
				"studentUniversity": Values("yes"),
			},
			Benefits: []string{
				"Three months of incubation",
				"Prototype grants",
				"Workspace at the Sheraa hub",
			},
		},
		{
			ID:          "student-membership",
			Title:       "Student Membership",
			Description: "Workshops and community access for students from any university.",
			Link:        "/programs/student-membership",
			Criteria: Criteria{
				"persona": Values("student"),
			},
			Benefits: []string{
				"Access to entrepreneurship workshops",
				"Invitations to community events",
			},
		},
		{
			ID:          "launchpad",
			Title:       "Launchpad",
			Description: "Pre-incubation for founders testing an early idea.",
			Link:        "/programs/launchpad",
			Criteria: Criteria{
				"persona":      Values("founder"),
				"founderStage": Values("idea"),
			},
			Benefits: []string{
				"Problem and customer discovery sessions",
				"Founder peer group",
			},
		},
		{
			ID:          "s3-accelerator",
			Title:       "Sheraa Startup Studio Accelerator",
			Description: "A six-month accelerator for tech-enabled startups with traction.",
			Link:        "/programs/s3",
			Criteria: Criteria{
				"persona":       Values("founder"),
				"founderStage":  Values("mvp", "revenue"),
				"founderSector": Values("tech", "sustainability", "health"),
			},
			Benefits: []string{
				"Equity-free funding",
				"Corporate and government pilot opportunities",
				"Access to the Sheraa investor network",
			},
		},
		{
			ID:          "scale-up",
			Title:       "Scale-Up Program",
			Description: "Growth support for funded startups scaling across the region.",
			Link:        "/programs/scale-up",
			Criteria: Criteria{
				"persona":        Values("founder"),
				"founderStage":   Values("scaling", "revenue"),
				"founderFunding": Values("seed", "series-a"),
			},
			Benefits: []string{
				"Market expansion advisory",
				"Investor readiness support",
			},
		},
		{
			ID:          "sme-digital",
			Title:       "SME Digital Transformation",
			Description: "Helps established businesses adopt digital tools and reach new markets.",
			Link:        "/programs/sme-digital",
			Criteria: Criteria{
				"persona":   Values("sme"),
				"smeSector": Values("services", "tech"),
				"smeGoal":   Values("digital", "export"),
			},
			Benefits: []string{
				"Digital maturity assessment",
				"Technology partner discounts",
			},
		},
		{
			ID:          "sme-support",
			Title:       "SME Support Program",
			Description: "Advisory, financing introductions and training for small businesses.",
			Link:        "/programs/sme-support",
			Criteria: Criteria{
				"persona":     Values("sme"),
				"smeSize":     Values("micro", "small", "medium"),
				"smeLicensed": Bool(true),
			},
			Benefits: []string{
				"One-to-one business advisory",
				"Introductions to financing partners",
				"Training workshops",
			},
		},
		{
			ID:          "access-sharjah",
			Title:       "Access Sharjah Challenge",
			Description: "Pilot opportunities in Sharjah for international startups.",
			Link:        "/programs/access-sharjah",
			Criteria: Criteria{
				"persona":        Values("global"),
				"globalPresence": Values("none", "planning"),
			},
			Benefits: []string{
				"Paid pilots with Sharjah entities",
				"Soft-landing support",
			},
		},
		{
			ID:          "global-soft-landing",
			Title:       "Global Soft Landing",
			Description: "Market entry services for companies already registered in the UAE.",
			Link:        "/programs/global-soft-landing",
			Criteria: Criteria{
				"persona":        Values("global"),
				"globalPresence": Values("registered"),
				"globalStage":    Values("revenue", "scaling"),
			},
			Benefits: []string{
				"Licensing and visa guidance",
				"Local partner introductions",
			},
		},
		{
			ID:          DefaultProgramID,
			Title:       "Sheraa Community Membership",
			Description: "Open membership with events, office hours and resources for everyone.",
			Link:        "/community",
			Criteria: Criteria{
				"persona": Values("student", "founder", "sme", "global"),
			},
			Benefits: []string{
				"Community events and office hours",
				"Newsletter and resource library",
			},
		},
	}
}
