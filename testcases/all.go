package testcases

// All contains all test cases, grouped by category.
// The category name is used as a prefix in output filenames.
var All = map[string][]Case{
	"lines":     lineCases,
	"closed":    closedCases,
	"modes":     modeCases,
	"wireframe": wireframeCases,
	"curves":    curveCases,
	"precision": precisionCases,
	"large":     largeCases,
}
