package commands

import (
	"testing"

	"github.com/mjanumpa/magicsh/core/vos/vostest"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
)

func TestTouch_create(t *testing.T) {
	cmd := vostest.Command(Touch, "touch", "/a.txt", "b.txt")

	out, err := cmd.CombinedOutput()
	assert.Nil(t, err)
	assert.Equal(t, "Created or updated: /a.txt\nCreated or updated: b.txt\n", string(out))

	for _, path := range []string{"/a.txt", "/b.txt"} {
		exists, err := afero.Exists(cmd.VOS, path)
		assert.Nil(t, err)
		assert.True(t, exists, path)
	}
}

func TestTouch_update(t *testing.T) {
	cmd := vostest.Command(Touch, "touch", "/a.txt")
	writeFiles(t, cmd.VOS, map[string]string{"/a.txt": "keep me"})

	_, err := cmd.CombinedOutput()
	assert.Nil(t, err)

	fi, err := cmd.VOS.Stat("/a.txt")
	assert.Nil(t, err)
	assert.True(t, fi.ModTime().Equal(vostest.ReferenceTime), "modification time updated")

	contents, err := afero.ReadFile(cmd.VOS, "/a.txt")
	assert.Nil(t, err)
	assert.Equal(t, "keep me", string(contents), "contents untouched")
}

func TestTouch_noArgs(t *testing.T) {
	cmd := vostest.Command(Touch, "touch")

	_, err := cmd.CombinedOutput()
	assert.EqualError(t, err, "Usage: touch <filename>...")
}
