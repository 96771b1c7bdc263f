// Command cointray searches for the coin system that minimises the number of
// coins a cashier holds while making change.
//
// Usage:
//
//	cointray search --prices prices.txt
//	cointray search --config search.yaml --workers 8 --top 10 --json
//	cointray simulate --denoms 1,5,10,25 --prices prices.txt --length 1000
//	cointray change --denoms 1,3,4 6 11
//	cointray config > search.yaml
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
