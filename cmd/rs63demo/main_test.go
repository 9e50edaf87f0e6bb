package main

import (
	"testing"

	rs63 "github.com/doismellburning/rs63/src"
)

func Test_Demo(t *testing.T) {
	rs63.AssertOutputContains(t, main, "Original:  1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 0")
	rs63.AssertOutputContains(t, main, "Corrected: ")
}
