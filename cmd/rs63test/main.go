/* Randomized RS(63,36) encode / corrupt / decode self test */
package main

import (
	rs63 "github.com/doismellburning/rs63/src"
)

func main() {
	rs63.SelfTestMain()
}
