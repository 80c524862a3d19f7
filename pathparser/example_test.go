package pathparser_test

import (
	"fmt"

	"github.com/carolinnerebelo/SPARQL-Paths/ast"
	"github.com/carolinnerebelo/SPARQL-Paths/pathparser"
)

// ExampleParse parses a property path mixing alternation, sequence, and an
// inverse-marked predicate, then prints its top-level shape.
func ExampleParse() {
	prefixes := map[string]string{"ex": "http://ex.org/"}
	node, err := pathparser.Parse("ex:knows/^ex:worksAt | ex:friendOf", prefixes)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	alt := node.(*ast.Alternative)
	fmt.Printf("%T\n", alt.Left())
	fmt.Printf("%T\n", alt.Right())
	// Output:
	// *ast.Sequence
	// *ast.Predicate
}
