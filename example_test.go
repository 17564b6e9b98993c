package scan_test

import (
	"fmt"
	"os"

	"github.com/scankit/scan"
	"github.com/scankit/scan/scanerr"
	"github.com/scankit/scan/source"
)

func ExampleDefault() {
	r := source.FromString("42 apples")

	var n int
	r, err := scan.Default(r, &n)
	if err != nil {
		panic(err)
	}

	var fruit string
	_, err = scan.Default(r, &fruit)
	if err != nil {
		panic(err)
	}

	fmt.Println(n, fruit)
	// Output: 42 apples
}

func ExampleScan() {
	var (
		key string
		val float64
	)
	rest, err := scan.Scan(source.FromString("threshold = 0.75 # comment"), "{} = {}", &key, &val)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%s=%g, rest %q\n", key, val, rest.String())
	// Output: threshold=0.75, rest " # comment"
}

func ExampleList() {
	var nums []int
	rest := scan.List(source.FromString("10 20 30 end"), &nums)

	fmt.Println(nums, "stopped at", rest.String())
	// Output: [10 20 30] stopped at  end
}

func ExampleGetline() {
	r := source.FromString("alpha\nbeta")

	var line string
	for {
		rest, err := scan.Getline(r, &line)
		if err != nil {
			break
		}
		fmt.Println(line)
		r = rest
	}
	// Output:
	// alpha
	// beta
}

func ExampleValue() {
	b, _, err := scan.Value[bool](source.FromString("true"))
	if err != nil {
		panic(err)
	}
	fmt.Println(b)
	// Output: true
}

func Example_errorReporting() {
	input := "count: ten"

	var n int
	_, err := scan.Scan(source.FromString(input), "count: {}", &n)
	if err != nil {
		scanerr.Fprint(os.Stdout, input, err, scanerr.PrinterConfig{})
	}
	// Output:
	// error: invalid scanned value: expected base-10 digits
	//   | count: ten
	//   |        ^
}
