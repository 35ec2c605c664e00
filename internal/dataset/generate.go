package dataset

import "fmt"

var generatedRegions = []string{"us-east", "us-west", "eu-central", "ap-south"} //nolint:gochecknoglobals // Fixed demo values.

// Generate returns n synthetic rows with ids 1..n. The output is
// deterministic so demos and tests see the same data every run.
func Generate(n int) []Row {
	if n <= 0 {
		return []Row{}
	}
	rows := make([]Row, n)
	for i := range n {
		id := i + 1
		rows[i] = Row{
			IDField:  id,
			"name":   fmt.Sprintf("item-%04d", id),
			"region": generatedRegions[i%len(generatedRegions)],
			"qty":    (id*7)%50 + 1, //nolint:mnd // Arbitrary spread for demo data.
			"active": id%3 != 0,
		}
	}
	return rows
}
