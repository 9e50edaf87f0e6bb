package rs63

import (
	"fmt"
)

// The sandbox buffer: 36 bytes with the parity bundled on the end, so 9 data
// symbols and 27 parity symbols.  It is not a codeword.

var demoBlock = []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}

func DemoMain() {
	var block = make([]byte, len(demoBlock))
	copy(block, demoBlock)

	fmt.Printf("Original:  %s\n", symbolList(block))

	var res, err = Decode(block, len(block), nil, nil, 0, nil)
	if err != nil {
		fmt.Printf("Error: %s\n", err)
		return
	}

	fmt.Printf("Corrected: %s\n", symbolList(block))

	fmt.Printf("%d\n", res)
}
