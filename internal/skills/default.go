package skills

// defaultEntries is the built-in taxonomy used when no taxonomy file is configured.
// Order matters: ambiguous variants and partial matches resolve to the earliest entry.
var defaultEntries = []Entry{
	{Canonical: "JavaScript", Variants: []string{"javascript", "js", "ecmascript", "es6"}},
	{Canonical: "TypeScript", Variants: []string{"typescript", "ts"}},
	{Canonical: "Python", Variants: []string{"python", "py", "python3"}},
	{Canonical: "Java", Variants: []string{"java", "jvm"}},
	{Canonical: "Go", Variants: []string{"go", "golang"}},
	{Canonical: "React", Variants: []string{"react", "reactjs", "react.js"}},
	{Canonical: "Node.js", Variants: []string{"node.js", "nodejs", "node"}},
	{Canonical: "Express", Variants: []string{"express", "express.js", "expressjs"}},
	{Canonical: "Django", Variants: []string{"django"}},
	{Canonical: "SQL", Variants: []string{"sql", "mysql", "postgresql", "postgres", "sqlite"}},
	{Canonical: "MongoDB", Variants: []string{"mongodb", "mongo"}},
	{Canonical: "HTML/CSS", Variants: []string{"html", "css", "html/css", "tailwind"}},
	{Canonical: "Machine Learning", Variants: []string{"machine learning", "ml", "deep learning"}},
	{Canonical: "Data Analysis", Variants: []string{"data analysis", "data analytics", "pandas", "excel"}},
	{Canonical: "Blockchain", Variants: []string{"blockchain", "web3", "solidity", "ethereum"}},
	{Canonical: "UI/UX Design", Variants: []string{"ui/ux", "ux", "ui", "figma", "user experience"}},
	{Canonical: "Cloud", Variants: []string{"aws", "azure", "gcp", "cloud computing"}},
	{Canonical: "DevOps", Variants: []string{"devops", "docker", "kubernetes", "k8s", "ci/cd"}},
	{Canonical: "Communication", Variants: []string{"communication", "public speaking", "presentation"}},
	{Canonical: "Teaching", Variants: []string{"teaching", "mentoring", "tutoring", "instruction"}},
}

var defaultTaxonomy = MustTaxonomy(defaultEntries)

// Default returns the built-in taxonomy. It is shared and read-only.
func Default() *Taxonomy {
	return defaultTaxonomy
}
