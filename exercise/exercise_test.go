package exercise_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcodamonte/oop-concepts/exercise"
	"github.com/marcodamonte/oop-concepts/record"
)

// golden holds the console output each demo must print.
var golden = map[string]string{
	"robot": "Hello World! I am Robbie, and my model is RB-34\n",
	"light": `The light is OFF at brightness level 0%.
The light is ON at brightness level 100%.
The light is ON at brightness level 25%.
The light is OFF at brightness level 0%.
`,
	"payment": `Charging $42 to card 4111-1111-1111-1111
Charging $42 to wallet 0x52908400098527886E0F7030069857D2E4169EE7
got error: cannot instantiate abstract type: PaymentMethod
`,
	"stack": `7
Present(Innit?)
Present(Day)
Present(Wonderfull)
Present(A)
Present(What)
Present(World!)
Present(Hello)
Absent
`,
	"shape": `got error: cannot instantiate abstract type: Shape
36 24
0.3183098861837907 2.0
`,
	"dbconn": `Connecting to DB...
Executing: SELECT name FROM users
Closing Connection safely.
Connecting to DB...
Closing Connection safely.
got error: execute: query must not be empty
`,
	"registry": `{
    'AudioPlugin': <plugin AudioPlugin>
    'VideoPlugin': <plugin VideoPlugin>
}
`,
	"temperature": `Temperature: 0.0
got value error: temperature cannot be below absolute zero: -274.15°C
Temperature: 30.0
`,
	"jobs": `Job Started.
Job is running
Job Finished.
got error: run job: cannot instantiate abstract type: BaseJob
`,
	"config": `Config(db_host='arcturus', db_port=255, debug_mode=false)
Got Error: cannot assign to field 'db_port'
`,
	"countdown": `Remaining: 2
Remaining: 1
Stopped Iteration
`,
	"json": `{"name":"Ron Weasley","age":20,"is_replaceable_by_ai":false}
{"name":"Draco Malfoy","age":20,"is_replaceable_by_ai":true}
`,
	"version": "true\ntrue\n",
}

func TestDemosMatchGolden(t *testing.T) {
	for _, ex := range exercise.All() {
		t.Run(ex.Name, func(t *testing.T) {
			want, ok := golden[ex.Name]
			require.True(t, ok, "no golden output for %q", ex.Name)

			var buf bytes.Buffer
			require.NoError(t, ex.Run(&buf, exercise.DefaultEnv()))
			assert.Equal(t, want, buf.String())
		})
	}
}

func TestEveryGoldenHasAnExercise(t *testing.T) {
	assert.Len(t, exercise.All(), len(golden))
	for name := range golden {
		_, ok := exercise.Lookup(name)
		assert.True(t, ok, "golden %q has no exercise", name)
	}
}

func TestConfigDemoUsesEnv(t *testing.T) {
	ex, ok := exercise.Lookup("config")
	require.True(t, ok)

	env := exercise.DefaultEnv()
	env.DB = record.NewConfig("vega", 5432, record.Debug(true))

	var buf bytes.Buffer
	require.NoError(t, ex.Run(&buf, env))
	assert.Contains(t, buf.String(), "Config(db_host='vega', db_port=5432, debug_mode=true)")
}

func TestLookupUnknown(t *testing.T) {
	_, ok := exercise.Lookup("metaclass")
	assert.False(t, ok)
}

func TestAllReturnsCopy(t *testing.T) {
	all := exercise.All()
	all[0].Name = "renamed"
	assert.Equal(t, "robot", exercise.All()[0].Name)
	assert.Equal(t, "robot", exercise.Names()[0])
}
