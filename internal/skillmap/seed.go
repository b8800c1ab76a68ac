package skillmap

var seedDomains = []Domain{
	{ID: 0, Name: "Information and Ideas", Section: SectionReadingWriting, Representative: 0},
	{ID: 1, Name: "Craft and Structure", Section: SectionReadingWriting, Representative: 4},
	{ID: 2, Name: "Expression of Ideas", Section: SectionReadingWriting, Representative: 8},
	{ID: 3, Name: "Standard English Conventions", Section: SectionReadingWriting, Representative: 10},
	{ID: 4, Name: "Algebra", Section: SectionMath, Representative: 18},
	{ID: 5, Name: "Advanced Math", Section: SectionMath, Representative: 25},
	{ID: 6, Name: "Problem-Solving and Data Analysis", Section: SectionMath, Representative: 33},
	{ID: 7, Name: "Geometry and Trigonometry", Section: SectionMath, Representative: 41},
}

var seedSkills = []Skill{
	// Information and Ideas
	{ID: 0, Key: "central-ideas", Name: "Central Ideas and Details", Domain: 0},
	{ID: 1, Key: "textual-evidence", Name: "Command of Evidence: Textual", Domain: 0},
	{ID: 2, Key: "quantitative-evidence", Name: "Command of Evidence: Quantitative", Domain: 0},
	{ID: 3, Key: "inferences", Name: "Inferences", Domain: 0},

	// Craft and Structure
	{ID: 4, Key: "words-in-context", Name: "Words in Context", Domain: 1},
	{ID: 5, Key: "text-structure", Name: "Text Structure", Domain: 1},
	{ID: 6, Key: "text-purpose", Name: "Text Purpose", Domain: 1},
	{ID: 7, Key: "cross-text-connections", Name: "Cross-Text Connections", Domain: 1},

	// Expression of Ideas
	{ID: 8, Key: "rhetorical-synthesis", Name: "Rhetorical Synthesis", Domain: 2},
	{ID: 9, Key: "transitions", Name: "Transitions", Domain: 2},

	// Standard English Conventions
	{ID: 10, Key: "sentence-boundaries", Name: "Sentence Boundaries", Domain: 3},
	{ID: 11, Key: "within-sentence-punctuation", Name: "Punctuation Within Sentences", Domain: 3},
	{ID: 12, Key: "supplementary-elements", Name: "Supplementary Elements", Domain: 3},
	{ID: 13, Key: "subject-verb-agreement", Name: "Subject-Verb Agreement", Domain: 3},
	{ID: 14, Key: "pronoun-antecedent", Name: "Pronoun-Antecedent Agreement", Domain: 3},
	{ID: 15, Key: "verb-forms", Name: "Verb Tense and Form", Domain: 3},
	{ID: 16, Key: "plurals-possessives", Name: "Plurals and Possessives", Domain: 3},
	{ID: 17, Key: "modifier-placement", Name: "Modifier Placement", Domain: 3},

	// Algebra
	{ID: 18, Key: "linear-equations-one-variable", Name: "Linear Equations in One Variable", Domain: 4},
	{ID: 19, Key: "linear-equations-two-variables", Name: "Linear Equations in Two Variables", Domain: 4},
	{ID: 20, Key: "linear-functions", Name: "Linear Functions", Domain: 4},
	{ID: 21, Key: "systems-of-linear-equations", Name: "Systems of Linear Equations", Domain: 4},
	{ID: 22, Key: "linear-inequalities", Name: "Linear Inequalities", Domain: 4},
	{ID: 23, Key: "linear-modeling", Name: "Linear Modeling", Domain: 4},
	{ID: 24, Key: "interpreting-linear-graphs", Name: "Interpreting Linear Graphs", Domain: 4},

	// Advanced Math
	{ID: 25, Key: "equivalent-expressions", Name: "Equivalent Expressions", Domain: 5},
	{ID: 26, Key: "polynomial-operations", Name: "Polynomial Operations", Domain: 5},
	{ID: 27, Key: "rational-expressions", Name: "Rational Expressions", Domain: 5},
	{ID: 28, Key: "radicals-and-exponents", Name: "Radicals and Exponents", Domain: 5},
	{ID: 29, Key: "quadratic-equations", Name: "Quadratic Equations", Domain: 5},
	{ID: 30, Key: "nonlinear-systems", Name: "Nonlinear Equations and Systems", Domain: 5},
	{ID: 31, Key: "nonlinear-functions", Name: "Nonlinear Functions", Domain: 5},
	{ID: 32, Key: "exponential-functions", Name: "Exponential Functions", Domain: 5},

	// Problem-Solving and Data Analysis
	{ID: 33, Key: "ratios-and-rates", Name: "Ratios, Rates and Proportions", Domain: 6},
	{ID: 34, Key: "unit-conversion", Name: "Units and Unit Conversion", Domain: 6},
	{ID: 35, Key: "percentages", Name: "Percentages", Domain: 6},
	{ID: 36, Key: "one-variable-data", Name: "One-Variable Data", Domain: 6},
	{ID: 37, Key: "two-variable-data", Name: "Two-Variable Data", Domain: 6},
	{ID: 38, Key: "probability", Name: "Probability and Conditional Probability", Domain: 6},
	{ID: 39, Key: "sample-inference", Name: "Inference from Sample Statistics", Domain: 6},
	{ID: 40, Key: "statistical-claims", Name: "Evaluating Statistical Claims", Domain: 6},

	// Geometry and Trigonometry
	{ID: 41, Key: "area-and-volume", Name: "Area and Volume", Domain: 7},
	{ID: 42, Key: "lines-and-angles", Name: "Lines and Angles", Domain: 7},
	{ID: 43, Key: "triangles-and-similarity", Name: "Triangles and Similarity", Domain: 7},
	{ID: 44, Key: "right-triangles", Name: "Right Triangles", Domain: 7},
	{ID: 45, Key: "trigonometry", Name: "Trigonometry", Domain: 7},
	{ID: 46, Key: "circles", Name: "Circles", Domain: 7},
}
