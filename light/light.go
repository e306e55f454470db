// Package light models a dimmable smart light: state and the methods that
// are allowed to change it live together on one struct.
package light

import "fmt"

// SmartLight starts off at brightness 0. maxBrightness is fixed at
// construction; brightness is expected to stay in [0, maxBrightness] but is
// not clamped.
type SmartLight struct {
	on            bool
	brightness    int
	maxBrightness int
}

func New(maxBrightness int) *SmartLight {
	return &SmartLight{maxBrightness: maxBrightness}
}

// TurnOn switches the light on at full brightness.
func (l *SmartLight) TurnOn() {
	l.on = true
	l.brightness = l.maxBrightness
}

func (l *SmartLight) TurnOff() {
	l.on = false
	l.brightness = 0
}

// SetBrightness changes the level only while the light is on. On an off
// light it is a no-op and reports nothing.
func (l *SmartLight) SetBrightness(level int) {
	if l.on {
		l.brightness = level
	}
}

func (l *SmartLight) IsOn() bool      { return l.on }
func (l *SmartLight) Brightness() int { return l.brightness }
func (l *SmartLight) Max() int        { return l.maxBrightness }

// Percent is brightness as a truncated integer percentage of the maximum,
// 0 when the maximum is 0.
func (l *SmartLight) Percent() int {
	if l.maxBrightness == 0 {
		return 0
	}
	return int(float64(l.brightness) / float64(l.maxBrightness) * 100)
}

func (l *SmartLight) String() string {
	state := "OFF"
	if l.on {
		state = "ON"
	}
	return fmt.Sprintf("The light is %s at brightness level %d%%.", state, l.Percent())
}
