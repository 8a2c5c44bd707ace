package sidebar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveIcon(t *testing.T) {
	assert.Equal(t, IconGauge, ResolveIcon("gauge"))
	assert.Equal(t, IconEnvelope, ResolveIcon("envelope"))
	assert.Equal(t, DefaultIcon, ResolveIcon("no-such-icon"))
	assert.Equal(t, DefaultIcon, ResolveIcon(""))
}
