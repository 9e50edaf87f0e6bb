/* Decode RS(63,36) codewords given as hex lines */
package main

import (
	rs63 "github.com/doismellburning/rs63/src"
)

func main() {
	rs63.DecodeToolMain()
}
