package stderr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPump_SkipsBlankLines(t *testing.T) {
	in := "ALSA lib pcm.c:8545: underrun occurred\n\n   \nsecond line  \n"

	var got []string
	pump(strings.NewReader(in), func(line string) { got = append(got, line) })

	assert.Equal(t, []string{"ALSA lib pcm.c:8545: underrun occurred", "second line"}, got)
}
