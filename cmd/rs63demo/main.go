/* Decode the sandbox buffer and show it before and after */
package main

import (
	rs63 "github.com/doismellburning/rs63/src"
)

func main() {
	rs63.DemoMain()
}
