package commands

import (
	"testing"

	"github.com/mjanumpa/magicsh/core/vos/vostest"
	"github.com/stretchr/testify/assert"
)

func TestDate(t *testing.T) {
	cmd := vostest.Command(Date, "date")

	out, err := cmd.CombinedOutput()
	assert.Nil(t, err)
	assert.Equal(t, "2006-01-02 03:04:05\n", string(out))
}

func TestClr(t *testing.T) {
	cmd := vostest.Command(Clr, "clr")

	out, err := cmd.CombinedOutput()
	assert.Nil(t, err)
	assert.Equal(t, "\x1b[2J\x1b[H", string(out))

	_, err = vostest.Command(Clr, "clr", "now").CombinedOutput()
	assert.EqualError(t, err, "Usage: clr")
}
