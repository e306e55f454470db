package robot_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcodamonte/oop-concepts/robot"
)

func TestGreet(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, robot.New("R2", "Astromech").Greet(&buf))
	assert.Equal(t, "Hello World! I am R2, and my model is Astromech\n", buf.String())
}
