package commands

import (
	"testing"

	"github.com/mjanumpa/magicsh/core/vos/vostest"
	"github.com/stretchr/testify/assert"
)

func TestEnviron_contents(t *testing.T) {
	cmd := vostest.Command(Environ, "environ")
	cmd.VOS.Setenv("C", "charlie")
	cmd.VOS.Setenv("A", "alpha")
	cmd.VOS.Setenv("B", "bravo")

	out, err := cmd.CombinedOutput()
	assert.Nil(t, err)
	assert.Equal(t, "A=alpha\nB=bravo\nC=charlie\nHOME=/\nPATH=\nPWD=/\nUSER=tester\n", string(out))
}

func TestEnviron_args(t *testing.T) {
	cmd := vostest.Command(Environ, "environ", "extra")

	_, err := cmd.CombinedOutput()
	assert.EqualError(t, err, "Usage: environ")
}
