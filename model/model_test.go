package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisteredSorted(t *testing.T) {
	Register("zz-test", NewLDA)
	Register("aa-test", NewLDA)
	defer delete(constructors, "zz-test")
	defer delete(constructors, "aa-test")

	assert.Equal(t, []string{"aa-test", "lda", "zz-test"}, Registered())
}
